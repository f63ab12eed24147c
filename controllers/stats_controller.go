package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/services"
)

// StatsController serves the impact summary screen
type StatsController struct {
	StatsService *services.StatsService
}

// GetImpactSummaryHandler returns per-type counts, the waste reduction
// rate, and the estimated CO2/money saved.
func (c *StatsController) GetImpactSummaryHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summary, err := c.StatsService.BuildImpactSummary(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to build impact summary for %s: %v", userID, err)
		http.Error(w, "Failed to build impact summary: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
