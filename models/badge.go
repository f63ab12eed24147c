package models

// BadgeMetrics is the snapshot every badge rule is evaluated against. It is
// rebuilt fresh from the ledger and the interaction log on each evaluation.
type BadgeMetrics struct {
	TotalPoints        int     `json:"totalPoints"`
	CurrentStreak      int     `json:"currentStreak"`
	LongestStreak      int     `json:"longestStreak"`
	TotalConsumed      int     `json:"totalConsumed"`
	TotalShared        int     `json:"totalShared"`
	TotalSold          int     `json:"totalSold"`
	TotalWasted        int     `json:"totalWasted"`
	TotalActions       int     `json:"totalActions"`       // consumed + shared + sold
	TotalItems         int     `json:"totalItems"`         // totalActions + wasted
	WasteReductionRate float64 `json:"wasteReductionRate"` // totalActions / totalItems × 100
}

// BadgeProgress reports how far a user is toward a badge.
type BadgeProgress struct {
	Current    int     `json:"current"`
	Target     int     `json:"target"`
	Percentage float64 `json:"percentage"` // capped at 100
}

// BadgeDefinition is a static catalog entry. Condition and Progress are
// plain functions over the metrics snapshot so thresholds live in one table
// instead of being scattered through the award path.
type BadgeDefinition struct {
	Code          string                           `json:"code"`
	Name          string                           `json:"name"`
	Description   string                           `json:"description"`
	Category      string                           `json:"category"`
	PointsAwarded int                              `json:"pointsAwarded"`
	SortOrder     int                              `json:"-"`
	Condition     func(BadgeMetrics) bool          `json:"-"`
	Progress      func(BadgeMetrics) BadgeProgress `json:"-"`
}

// UserBadge records a single award. The (PK, SK) pair is unique in the
// store; a conditional put on SK is the only guarantee against concurrent
// double-awarding.
type UserBadge struct {
	PK       string `dynamodbav:"PK" json:"-"` // "USER#userId"
	SK       string `dynamodbav:"SK" json:"-"` // "BADGE#code"
	UserID   string `dynamodbav:"userId" json:"userId"`
	BadgeID  string `dynamodbav:"badgeId" json:"badgeId"`
	EarnedAt string `dynamodbav:"earnedAt" json:"earnedAt"`
}

// BadgeView is the badge-screen shape: a catalog entry annotated with the
// user's earned state and progress.
type BadgeView struct {
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	PointsAwarded int           `json:"pointsAwarded"`
	Earned        bool          `json:"earned"`
	EarnedAt      string        `json:"earnedAt,omitempty"`
	Progress      BadgeProgress `json:"progress"`
}

// ✅ Define table name
const UserBadgesTable = "UserBadges"

const BadgeKeyPrefix = "BADGE#"
