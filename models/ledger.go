package models

// PointsLedger is the single mutable row per user. It is only ever written
// through a compare-and-swap on Version; everything else in the system is
// derived fresh from the interaction log.
type PointsLedger struct {
	UserID        string `dynamodbav:"userId" json:"userId"`
	TotalPoints   int    `dynamodbav:"totalPoints" json:"totalPoints"`     // ✅ Clamped at 0 on every write
	CurrentStreak int    `dynamodbav:"currentStreak" json:"currentStreak"` // ✅ Consecutive qualifying days
	Version       int64  `dynamodbav:"version" json:"-"`                   // ✅ Optimistic concurrency token
}

// ✅ Define table name
const PointsLedgerTable = "PointsLedger"
