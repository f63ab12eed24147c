package services

import (
	"context"
	"sort"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/models"
	"github.com/YongHui-X/ecoplate-sub001/utils"
)

// AverageFoodPricePerKg is the flat estimate used for the "money saved"
// figure on the impact screen. No receipt data reaches this service.
const AverageFoodPricePerKg = 4.5

// monthLayout keys the trailing monthly series.
const monthLayout = "2006-01"

// TypeBreakdown is the per-action-kind slice of a user's history.
type TypeBreakdown struct {
	Count       int `json:"count"`
	TotalPoints int `json:"totalPoints"`
}

// MonthPoints is one bucket of the trailing 6-month series.
type MonthPoints struct {
	Month  string `json:"month"` // "2006-01"
	Points int    `json:"points"`
}

// UserStats is the stats block returned with the points snapshot. It is a
// pure function of the interaction log: recomputing it without new writes
// yields identical output.
type UserStats struct {
	Breakdown                 map[string]TypeBreakdown `json:"breakdown"`
	PointsToday               int                      `json:"pointsToday"`
	PointsThisWeek            int                      `json:"pointsThisWeek"`
	PointsThisMonth           int                      `json:"pointsThisMonth"`
	PointsThisYear            int                      `json:"pointsThisYear"`
	BestDayPoints             int                      `json:"bestDayPoints"`
	AveragePointsPerActiveDay float64                  `json:"averagePointsPerActiveDay"`
	PointsByMonth             []MonthPoints            `json:"pointsByMonth"`
	FirstActivityDate         string                   `json:"firstActivityDate,omitempty"`
	LastActiveDate            string                   `json:"lastActiveDate,omitempty"`
}

// ImpactSummary is the metrics snapshot for the impact screen.
type ImpactSummary struct {
	TotalConsumed       int     `json:"totalConsumed"`
	TotalShared         int     `json:"totalShared"`
	TotalSold           int     `json:"totalSold"`
	TotalWasted         int     `json:"totalWasted"`
	WasteReductionRate  float64 `json:"wasteReductionRate"`
	EstimatedCO2SavedKg float64 `json:"estimatedCo2SavedKg"`
	EstimatedMoneySaved float64 `json:"estimatedMoneySaved"`
}

// StatsService builds read-path aggregates over the interaction log.
type StatsService struct {
	Interactions *InteractionService
	Points       *PointsService
	Emission     *EmissionService
}

// BuildStats aggregates a user's full history in a single pass.
func (s *StatsService) BuildStats(ctx context.Context, userID string) (*UserStats, error) {
	interactions, err := s.Interactions.ListInteractions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ComputeStats(interactions, time.Now().UTC(), s.recalculate), nil
}

// recalculate rescores an interaction with the live Point Calculator so
// historical totals always match what live writes would award today.
func (s *StatsService) recalculate(interaction models.Interaction) int {
	return s.Points.CalculatePoints(
		interaction.Type,
		interaction.RawQuantity,
		interaction.Unit,
		interaction.ProductName,
		interaction.Category,
		interaction.EmissionFactor,
	)
}

// ComputeStats is the pure aggregation core. Day boundaries are calendar
// days in UTC, identical to the streak engine's.
func ComputeStats(interactions []models.Interaction, now time.Time, score func(models.Interaction) int) *UserStats {
	stats := &UserStats{
		Breakdown:     map[string]TypeBreakdown{},
		PointsByMonth: trailingMonths(now, 6),
	}

	today := now.Format(DateLayout)
	weekStart := now.AddDate(0, 0, -7).Format(DateLayout)
	monthStart := now.AddDate(0, -1, 0).Format(DateLayout)
	yearStart := now.AddDate(-1, 0, 0).Format(DateLayout)

	monthIndex := map[string]int{}
	for i, bucket := range stats.PointsByMonth {
		monthIndex[bucket.Month] = i
	}

	pointsByDay := map[string]int{}
	activeDays := map[string]bool{}
	positivePoints := 0
	var dates []string

	for _, interaction := range interactions {
		if interaction.Type == models.ActionAdd {
			continue
		}
		points := score(interaction)

		breakdown := stats.Breakdown[interaction.Type]
		breakdown.Count++
		breakdown.TotalPoints += points
		stats.Breakdown[interaction.Type] = breakdown

		if interaction.Date >= today {
			stats.PointsToday += points
		}
		if interaction.Date >= weekStart {
			stats.PointsThisWeek += points
		}
		if interaction.Date >= monthStart {
			stats.PointsThisMonth += points
		}
		if interaction.Date >= yearStart {
			stats.PointsThisYear += points
		}

		pointsByDay[interaction.Date] += points
		if models.IsQualifyingAction(interaction.Type) {
			activeDays[interaction.Date] = true
			positivePoints += points
		}

		if len(interaction.Date) >= len(monthLayout) {
			if i, ok := monthIndex[interaction.Date[:len(monthLayout)]]; ok {
				stats.PointsByMonth[i].Points += points
			}
		}

		dates = append(dates, interaction.Date)
	}

	for _, dayPoints := range pointsByDay {
		if dayPoints > stats.BestDayPoints {
			stats.BestDayPoints = dayPoints
		}
	}

	if len(activeDays) > 0 {
		stats.AveragePointsPerActiveDay = float64(positivePoints) / float64(len(activeDays))
	}

	if len(dates) > 0 {
		// Sort rather than trusting log iteration order.
		sort.Strings(dates)
		stats.FirstActivityDate = dates[0]
		stats.LastActiveDate = dates[len(dates)-1]
	}

	return stats
}

// trailingMonths builds n zero-filled month buckets, oldest first, ending at
// the current month.
func trailingMonths(now time.Time, n int) []MonthPoints {
	buckets := make([]MonthPoints, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		buckets = append(buckets, MonthPoints{Month: first.AddDate(0, i, 0).Format(monthLayout)})
	}
	return buckets
}

// BuildImpactSummary produces the per-type counts plus the estimated CO2 and
// money saved by not wasting food.
func (s *StatsService) BuildImpactSummary(ctx context.Context, userID string) (*ImpactSummary, error) {
	interactions, err := s.Interactions.ListInteractions(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &ImpactSummary{}
	co2Saved := 0.0
	moneySaved := 0.0
	for _, interaction := range interactions {
		switch interaction.Type {
		case models.ActionConsumed:
			summary.TotalConsumed++
		case models.ActionShared:
			summary.TotalShared++
		case models.ActionSold:
			summary.TotalSold++
		case models.ActionWasted:
			summary.TotalWasted++
		default:
			continue
		}
		if models.IsQualifyingAction(interaction.Type) {
			factor := s.Emission.Resolve(interaction.ProductName, interaction.Category, interaction.EmissionFactor)
			co2Saved += interaction.Quantity * factor
			moneySaved += interaction.Quantity * AverageFoodPricePerKg
		}
	}

	totalActions := summary.TotalConsumed + summary.TotalShared + summary.TotalSold
	totalItems := totalActions + summary.TotalWasted
	if totalItems > 0 {
		summary.WasteReductionRate = float64(totalActions) / float64(totalItems) * 100
	}
	summary.EstimatedCO2SavedKg = utils.Round2(co2Saved)
	summary.EstimatedMoneySaved = utils.Round2(moneySaved)

	return summary, nil
}
