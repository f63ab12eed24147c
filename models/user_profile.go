package models

// UserProfile is owned by the auth/profile service; this service only reads
// display names for the leaderboard.
type UserProfile struct {
	UserID   string `dynamodbav:"userId,omitempty"`
	FullName string `dynamodbav:"fullName,omitempty"`
	EmailID  string `dynamodbav:"emailId,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
