package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/services"
)

// BadgeController handles badge list and sync requests
type BadgeController struct {
	BadgeService *services.BadgeService
}

// GetBadgesHandler returns the full catalog with earned state and progress
func (c *BadgeController) GetBadgesHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	badges, err := c.BadgeService.ListBadges(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to list badges for %s: %v", userID, err)
		http.Error(w, "Failed to list badges: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(badges)
}

// SyncBadgesHandler re-evaluates the catalog and returns newly awarded
// badges only.
func (c *BadgeController) SyncBadgesHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("❌ Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awarded, err := c.BadgeService.SyncBadges(ctx, request.UserID)
	if err != nil {
		log.Printf("❌ Failed to sync badges for %s: %v", request.UserID, err)
		http.Error(w, "Failed to sync badges: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"newBadges": awarded})
}
