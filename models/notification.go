package models

// ✅ Notification Types
const (
	NotificationBadgeUnlocked   = "badge_unlocked"
	NotificationStreakMilestone = "streak_milestone"
)

type Notification struct {
	PK        string `dynamodbav:"PK" json:"-"` // "USER#userId"
	SK        string `dynamodbav:"SK" json:"-"` // "NOTIFICATION#createdAt#id"
	ID        string `dynamodbav:"id" json:"id"`
	UserID    string `dynamodbav:"userId" json:"userId"`
	Type      string `dynamodbav:"type" json:"type"`
	Title     string `dynamodbav:"title" json:"title"`
	Body      string `dynamodbav:"body" json:"body"`
	Read      bool   `dynamodbav:"read" json:"read"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// ✅ Define table name
const NotificationsTable = "Notifications"

const NotificationKeyPrefix = "NOTIFICATION#"
