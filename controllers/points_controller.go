package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/services"
)

// PointsController serves the points snapshot and the transaction feed
type PointsController struct {
	PointsService      *services.PointsService
	StatsService       *services.StatsService
	InteractionService *services.InteractionService
}

// GetPointsHandler returns {total, currentStreak, longestStreak} plus the
// stats block, all derived fresh from the log.
func (c *PointsController) GetPointsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ledger, err := c.PointsService.GetLedger(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to fetch ledger for %s: %v", userID, err)
		http.Error(w, "Failed to fetch points: "+err.Error(), http.StatusInternalServerError)
		return
	}

	interactions, err := c.InteractionService.ListInteractions(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to fetch interactions for %s: %v", userID, err)
		http.Error(w, "Failed to fetch points: "+err.Error(), http.StatusInternalServerError)
		return
	}

	stats, err := c.StatsService.BuildStats(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to build stats for %s: %v", userID, err)
		http.Error(w, "Failed to build stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"total":         ledger.TotalPoints,
		"currentStreak": ledger.CurrentStreak,
		"longestStreak": services.LongestStreak(interactions),
		"stats":         stats,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetTransactionsHandler returns the user-facing points feed. An optional
// `limit` parameter bounds the page size.
func (c *PointsController) GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	var limit int32
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feed, err := c.InteractionService.ListTransactions(ctx, userID, limit)
	if err != nil {
		log.Printf("❌ Failed to build transaction feed for %s: %v", userID, err)
		http.Error(w, "Failed to fetch transactions: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feed)
}
