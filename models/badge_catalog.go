package models

import "fmt"

// ✅ Badge Categories
const (
	BadgeCategoryGettingStarted = "getting_started"
	BadgeCategoryPoints         = "points"
	BadgeCategoryStreaks        = "streaks"
	BadgeCategoryActions        = "actions"
	BadgeCategoryWaste          = "waste"
)

func countProgress(current, target int) BadgeProgress {
	if current > target {
		current = target
	}
	pct := 0.0
	if target > 0 {
		pct = float64(current) / float64(target) * 100
	}
	if pct > 100 {
		pct = 100
	}
	return BadgeProgress{Current: current, Target: target, Percentage: pct}
}

func pointsBadge(code, name string, threshold, bonus, sortOrder int) BadgeDefinition {
	return BadgeDefinition{
		Code:          code,
		Name:          name,
		Description:   fmt.Sprintf("Earn %d sustainability points", threshold),
		Category:      BadgeCategoryPoints,
		PointsAwarded: bonus,
		SortOrder:     sortOrder,
		Condition:     func(m BadgeMetrics) bool { return m.TotalPoints >= threshold },
		Progress:      func(m BadgeMetrics) BadgeProgress { return countProgress(m.TotalPoints, threshold) },
	}
}

func streakBadge(code, name string, days, bonus, sortOrder int) BadgeDefinition {
	return BadgeDefinition{
		Code:          code,
		Name:          name,
		Description:   fmt.Sprintf("Keep a %d-day activity streak", days),
		Category:      BadgeCategoryStreaks,
		PointsAwarded: bonus,
		SortOrder:     sortOrder,
		Condition:     func(m BadgeMetrics) bool { return m.LongestStreak >= days },
		Progress:      func(m BadgeMetrics) BadgeProgress { return countProgress(m.LongestStreak, days) },
	}
}

// BadgeCatalog is the full static rule table, evaluated in SortOrder. It is
// immutable at runtime; adding a badge means adding a row here.
var BadgeCatalog = []BadgeDefinition{
	{
		Code:          "first-steps",
		Name:          "First Steps",
		Description:   "Log your first food action",
		Category:      BadgeCategoryGettingStarted,
		PointsAwarded: 10,
		SortOrder:     1,
		Condition:     func(m BadgeMetrics) bool { return m.TotalItems >= 1 },
		Progress:      func(m BadgeMetrics) BadgeProgress { return countProgress(m.TotalItems, 1) },
	},
	pointsBadge("eco-starter", "Eco Starter", 100, 20, 2),
	pointsBadge("eco-warrior", "Eco Warrior", 500, 50, 3),
	pointsBadge("eco-champion", "Eco Champion", 1500, 100, 4),
	streakBadge("streak-3", "On a Roll", 3, 15, 5),
	streakBadge("streak-7", "Week Strong", 7, 30, 6),
	streakBadge("streak-30", "Habit Formed", 30, 100, 7),
	{
		Code:          "generous-neighbor",
		Name:          "Generous Neighbor",
		Description:   "Share food 10 times",
		Category:      BadgeCategoryActions,
		PointsAwarded: 25,
		SortOrder:     8,
		Condition:     func(m BadgeMetrics) bool { return m.TotalShared >= 10 },
		Progress:      func(m BadgeMetrics) BadgeProgress { return countProgress(m.TotalShared, 10) },
	},
	{
		Code:          "market-mover",
		Name:          "Market Mover",
		Description:   "Sell surplus food 5 times",
		Category:      BadgeCategoryActions,
		PointsAwarded: 25,
		SortOrder:     9,
		Condition:     func(m BadgeMetrics) bool { return m.TotalSold >= 5 },
		Progress:      func(m BadgeMetrics) BadgeProgress { return countProgress(m.TotalSold, 5) },
	},
	{
		Code:          "clean-plate",
		Name:          "Clean Plate Club",
		Description:   "Finish 25 items without wasting them",
		Category:      BadgeCategoryActions,
		PointsAwarded: 40,
		SortOrder:     10,
		Condition:     func(m BadgeMetrics) bool { return m.TotalConsumed >= 25 },
		Progress:      func(m BadgeMetrics) BadgeProgress { return countProgress(m.TotalConsumed, 25) },
	},
	{
		Code:          "zero-waste-hero",
		Name:          "Zero Waste Hero",
		Description:   "Keep your waste reduction rate at 90% or better across 20+ items",
		Category:      BadgeCategoryWaste,
		PointsAwarded: 75,
		SortOrder:     11,
		Condition: func(m BadgeMetrics) bool {
			return m.TotalItems >= 20 && m.WasteReductionRate >= 90
		},
		Progress: func(m BadgeMetrics) BadgeProgress {
			// Progress tracks the rate once enough items exist to judge it.
			if m.TotalItems < 20 {
				return countProgress(m.TotalItems, 20)
			}
			return countProgress(int(m.WasteReductionRate), 90)
		},
	},
}
