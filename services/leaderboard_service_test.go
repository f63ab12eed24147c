package services

import (
	"testing"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifetimePointsAddsRedeemedBack(t *testing.T) {
	// Spending 30 of 80 earned points must not lower rank: 50 + 30 = 80.
	assert.Equal(t, 80, LifetimePoints(50, 30))
	assert.Equal(t, 50, LifetimePoints(50, 0))
}

func TestRankEntriesSortsDescending(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{UserID: "a", Points: 10},
		{UserID: "b", Points: 300},
		{UserID: "c", Points: 150},
	}

	ranked := RankEntries(entries, 10)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].UserID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "c", ranked[1].UserID)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "a", ranked[2].UserID)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankEntriesDenseRanksOnTies(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{UserID: "a", Points: 100},
		{UserID: "b", Points: 100},
		{UserID: "c", Points: 90},
	}

	ranked := RankEntries(entries, 10)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank, "equal points share a rank")
	assert.Equal(t, 2, ranked[2].Rank, "dense ranking has no gap after a tie")
}

func TestRankEntriesTruncatesToTopN(t *testing.T) {
	var entries []models.LeaderboardEntry
	for i := 0; i < 15; i++ {
		entries = append(entries, models.LeaderboardEntry{UserID: string(rune('a' + i)), Points: i})
	}

	ranked := RankEntries(entries, models.LeaderboardSize)
	require.Len(t, ranked, models.LeaderboardSize)
	assert.Equal(t, 14, ranked[0].Points)
}

func TestRankEntriesEmpty(t *testing.T) {
	assert.Empty(t, RankEntries(nil, 10))
}
