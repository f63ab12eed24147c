package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/stretchr/testify/assert"
)

func interactionOn(date, actionType string) models.Interaction {
	return models.Interaction{Date: date, Type: actionType}
}

func TestNextStreakColdStart(t *testing.T) {
	log := []models.Interaction{interactionOn("2026-09-01", models.ActionConsumed)}

	streak, changed := NextStreak(log, 0, "2026-09-01", "2026-09-01")
	assert.True(t, changed)
	assert.Equal(t, 1, streak)
}

func TestNextStreakExtendsFromYesterday(t *testing.T) {
	log := []models.Interaction{
		interactionOn("2026-08-31", models.ActionConsumed),
		interactionOn("2026-09-01", models.ActionShared),
	}

	streak, changed := NextStreak(log, 1, "2026-09-01", "2026-09-01")
	assert.True(t, changed)
	assert.Equal(t, 2, streak)
}

func TestNextStreakResetsAfterGap(t *testing.T) {
	log := []models.Interaction{
		interactionOn("2026-08-25", models.ActionConsumed),
		interactionOn("2026-09-01", models.ActionConsumed),
	}

	streak, changed := NextStreak(log, 5, "2026-09-01", "2026-09-01")
	assert.True(t, changed)
	assert.Equal(t, 1, streak)
}

func TestNextStreakSameDayIdempotent(t *testing.T) {
	log := []models.Interaction{
		interactionOn("2026-08-31", models.ActionConsumed),
		interactionOn("2026-09-01", models.ActionConsumed),
		interactionOn("2026-09-01", models.ActionSold), // second action today
	}

	streak, changed := NextStreak(log, 2, "2026-09-01", "2026-09-01")
	assert.False(t, changed, "a day already processed never moves the streak again")
	assert.Equal(t, 2, streak)
}

func TestNextStreakIgnoresBackdatedEntries(t *testing.T) {
	// A week-old entry backfilled into an established streak must not rerun
	// the machine against its own date and wipe the live streak.
	log := []models.Interaction{
		interactionOn("2026-08-31", models.ActionConsumed),
		interactionOn("2026-09-01", models.ActionConsumed),
		interactionOn("2026-08-20", models.ActionConsumed), // backfilled
	}

	streak, changed := NextStreak(log, 2, "2026-08-20", "2026-09-01")
	assert.False(t, changed)
	assert.Equal(t, 2, streak)
}

func TestNextStreakIgnoresWastedWhenLookingBack(t *testing.T) {
	// Waste yesterday does not bridge the gap to the last qualifying day.
	log := []models.Interaction{
		interactionOn("2026-08-25", models.ActionConsumed),
		interactionOn("2026-08-31", models.ActionWasted),
		interactionOn("2026-09-01", models.ActionConsumed),
	}

	streak, changed := NextStreak(log, 3, "2026-09-01", "2026-09-01")
	assert.True(t, changed)
	assert.Equal(t, 1, streak)
}

func TestNextStreakConsecutiveDaysReachN(t *testing.T) {
	// One qualifying action per day for N consecutive days yields streak N.
	const n = 10
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	var log []models.Interaction
	streak := 0
	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, i).Format(DateLayout)
		log = append(log, interactionOn(day, models.ActionConsumed))
		next, changed := NextStreak(log, streak, day, day)
		assert.True(t, changed, fmt.Sprintf("day %d should advance", i+1))
		streak = next
	}
	assert.Equal(t, n, streak)
}

func TestLongestStreakEmptyLog(t *testing.T) {
	assert.Equal(t, 0, LongestStreak(nil))
}

func TestLongestStreakSingleDay(t *testing.T) {
	log := []models.Interaction{interactionOn("2026-09-01", models.ActionConsumed)}
	assert.Equal(t, 1, LongestStreak(log))
}

func TestLongestStreakFindsLongestRun(t *testing.T) {
	log := []models.Interaction{
		// 3-day run
		interactionOn("2026-08-01", models.ActionConsumed),
		interactionOn("2026-08-02", models.ActionShared),
		interactionOn("2026-08-03", models.ActionSold),
		// gap, then 2-day run
		interactionOn("2026-08-10", models.ActionConsumed),
		interactionOn("2026-08-11", models.ActionConsumed),
	}
	assert.Equal(t, 3, LongestStreak(log))
}

func TestLongestStreakUnsortedAndDuplicateDays(t *testing.T) {
	log := []models.Interaction{
		interactionOn("2026-08-03", models.ActionConsumed),
		interactionOn("2026-08-01", models.ActionConsumed),
		interactionOn("2026-08-02", models.ActionConsumed),
		interactionOn("2026-08-02", models.ActionSold), // same day twice
	}
	assert.Equal(t, 3, LongestStreak(log))
}

func TestLongestStreakIgnoresWasted(t *testing.T) {
	log := []models.Interaction{
		interactionOn("2026-08-01", models.ActionConsumed),
		interactionOn("2026-08-02", models.ActionWasted),
		interactionOn("2026-08-03", models.ActionConsumed),
	}
	assert.Equal(t, 1, LongestStreak(log), "wasted days never join a run")
}
