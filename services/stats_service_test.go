package services

import (
	"testing"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storedPoints scores an interaction with whatever the log recorded.
func storedPoints(i models.Interaction) int { return i.Points }

func statsFixture() ([]models.Interaction, time.Time) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	log := []models.Interaction{
		{Date: "2026-09-15", Type: models.ActionConsumed, Points: 10},
		{Date: "2026-09-15", Type: models.ActionWasted, Points: -2},
		{Date: "2026-09-12", Type: models.ActionShared, Points: 8},
		{Date: "2026-09-01", Type: models.ActionSold, Points: 15},
		{Date: "2026-06-20", Type: models.ActionConsumed, Points: 5},
		{Date: "2025-01-10", Type: models.ActionConsumed, Points: 3},
	}
	return log, now
}

func TestComputeStatsBreakdown(t *testing.T) {
	log, now := statsFixture()
	stats := ComputeStats(log, now, storedPoints)

	assert.Equal(t, TypeBreakdown{Count: 3, TotalPoints: 18}, stats.Breakdown[models.ActionConsumed])
	assert.Equal(t, TypeBreakdown{Count: 1, TotalPoints: 8}, stats.Breakdown[models.ActionShared])
	assert.Equal(t, TypeBreakdown{Count: 1, TotalPoints: 15}, stats.Breakdown[models.ActionSold])
	assert.Equal(t, TypeBreakdown{Count: 1, TotalPoints: -2}, stats.Breakdown[models.ActionWasted])
}

func TestComputeStatsTimeWindows(t *testing.T) {
	log, now := statsFixture()
	stats := ComputeStats(log, now, storedPoints)

	assert.Equal(t, 8, stats.PointsToday)      // 10 - 2
	assert.Equal(t, 16, stats.PointsThisWeek)  // today + 09-12
	assert.Equal(t, 31, stats.PointsThisMonth) // + 09-01
	assert.Equal(t, 36, stats.PointsThisYear)  // + 06-20; 2025 entry outside
}

func TestComputeStatsBestDayAndAverage(t *testing.T) {
	log, now := statsFixture()
	stats := ComputeStats(log, now, storedPoints)

	// Best day is 09-01 (15); today nets only 8.
	assert.Equal(t, 15, stats.BestDayPoints)

	// Positive-sense points: 10+8+15+5+3 = 41 over 5 distinct active days.
	assert.InDelta(t, 8.2, stats.AveragePointsPerActiveDay, 1e-9)
}

func TestComputeStatsMonthlySeries(t *testing.T) {
	log, now := statsFixture()
	stats := ComputeStats(log, now, storedPoints)

	require.Len(t, stats.PointsByMonth, 6)
	assert.Equal(t, "2026-04", stats.PointsByMonth[0].Month, "oldest bucket first")
	assert.Equal(t, "2026-09", stats.PointsByMonth[5].Month, "current month last")
	assert.Equal(t, 31, stats.PointsByMonth[5].Points)
	assert.Equal(t, 5, stats.PointsByMonth[2].Points) // 2026-06
	assert.Equal(t, 0, stats.PointsByMonth[1].Points, "empty months stay zero")
}

func TestComputeStatsActivityDates(t *testing.T) {
	log, now := statsFixture()
	stats := ComputeStats(log, now, storedPoints)

	assert.Equal(t, "2025-01-10", stats.FirstActivityDate)
	assert.Equal(t, "2026-09-15", stats.LastActiveDate)
}

func TestComputeStatsIgnoresAddActions(t *testing.T) {
	now := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	log := []models.Interaction{
		{Date: "2026-09-15", Type: models.ActionAdd, Points: 0},
		{Date: "2026-09-15", Type: models.ActionConsumed, Points: 5},
	}
	stats := ComputeStats(log, now, storedPoints)

	assert.NotContains(t, stats.Breakdown, models.ActionAdd)
	assert.Equal(t, 5, stats.PointsToday)
}

func TestComputeStatsEmptyLog(t *testing.T) {
	now := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	stats := ComputeStats(nil, now, storedPoints)

	assert.Empty(t, stats.Breakdown)
	assert.Equal(t, 0, stats.BestDayPoints)
	assert.Equal(t, 0.0, stats.AveragePointsPerActiveDay)
	assert.Empty(t, stats.FirstActivityDate)
	require.Len(t, stats.PointsByMonth, 6)
}

func TestComputeStatsIsPure(t *testing.T) {
	log, now := statsFixture()

	first := ComputeStats(log, now, storedPoints)
	second := ComputeStats(log, now, storedPoints)
	assert.Equal(t, first, second, "same log, same clock, same output")
}
