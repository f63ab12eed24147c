package models

// Redemption rows are owned by the rewards service; this service only reads
// them to add spent points back for leaderboard ranking.
type Redemption struct {
	PK          string `dynamodbav:"PK" json:"-"` // "USER#userId"
	SK          string `dynamodbav:"SK" json:"-"` // "REDEMPTION#id"
	UserID      string `dynamodbav:"userId" json:"userId"`
	RewardID    string `dynamodbav:"rewardId" json:"rewardId"`
	PointsSpent int    `dynamodbav:"pointsSpent" json:"pointsSpent"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// ✅ Define table name
const RedemptionsTable = "Redemptions"

const RedemptionKeyPrefix = "REDEMPTION#"
