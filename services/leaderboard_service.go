package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/YongHui-X/ecoplate-sub001/models"
)

// LeaderboardService ranks users by lifetime points: the ledger total plus
// every point already spent on rewards. Redeeming never costs rank.
type LeaderboardService struct {
	Dynamo      *DynamoService
	Redemptions *RedemptionService
	Profiles    *UserProfileService
}

// GetLeaderboard builds the top-N board. Users without a ledger row are
// excluded entirely — absence means "never played", not last place.
func (ls *LeaderboardService) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var ledgers []models.PointsLedger
	if err := ls.Dynamo.ScanAllItems(ctx, models.PointsLedgerTable, &ledgers); err != nil {
		return nil, fmt.Errorf("failed to scan ledgers: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(ledgers))
	for _, ledger := range ledgers {
		redeemed, err := ls.Redemptions.SumRedeemedPoints(ctx, ledger.UserID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID:        ledger.UserID,
			Points:        LifetimePoints(ledger.TotalPoints, redeemed),
			CurrentStreak: ledger.CurrentStreak,
		})
	}

	ranked := RankEntries(entries, models.LeaderboardSize)
	for i := range ranked {
		ranked[i].Name = ls.Profiles.GetDisplayName(ctx, ranked[i].UserID)
	}

	log.Printf("🏆 Leaderboard built with %d of %d users", len(ranked), len(entries))
	return ranked, nil
}

// LifetimePoints is the ranking key: spent points are added back so
// redeeming a reward never erases sustainability credit.
func LifetimePoints(totalPoints, redeemedPoints int) int {
	return totalPoints + redeemedPoints
}

// RankEntries sorts descending by lifetime points, assigns dense 1-based
// ranks (ties share a rank), and truncates to the top n.
func RankEntries(entries []models.LeaderboardEntry, n int) []models.LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	rank := 0
	previousPoints := -1
	for i := range entries {
		if i == 0 || entries[i].Points != previousPoints {
			rank++
		}
		entries[i].Rank = rank
		previousPoints = entries[i].Points
	}

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
