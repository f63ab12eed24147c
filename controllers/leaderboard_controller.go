package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/services"
)

// LeaderboardController serves the top-10 board
type LeaderboardController struct {
	LeaderboardService *services.LeaderboardService
}

// GetLeaderboardHandler returns the ranked entries
func (c *LeaderboardController) GetLeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	entries, err := c.LeaderboardService.GetLeaderboard(ctx)
	if err != nil {
		log.Printf("❌ Failed to build leaderboard: %v", err)
		http.Error(w, "Failed to build leaderboard: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
