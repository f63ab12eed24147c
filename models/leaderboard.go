package models

// LeaderboardEntry is derived at read time and never persisted. Points shown
// are lifetime points: the ledger total plus everything the user has already
// redeemed, so spending a reward never lowers rank.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Points        int    `json:"points"`
	CurrentStreak int    `json:"streak"`
}

// LeaderboardSize is the number of entries returned to clients.
const LeaderboardSize = 10
