package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/YongHui-X/ecoplate-sub001/models"
	"github.com/YongHui-X/ecoplate-sub001/services"
)

// WasteController serves per-meal waste metrics
type WasteController struct {
	WasteService *services.WasteService
}

// ComputeWasteMetricsHandler scores one meal from its ingredients and the
// waste recorded against them. Pure computation, no store access.
func (c *WasteController) ComputeWasteMetricsHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Ingredients []models.MealIngredient `json:"ingredients"`
		WasteItems  []models.WasteItem      `json:"wasteItems"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("❌ Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(request.Ingredients) == 0 {
		http.Error(w, "Missing ingredients", http.StatusBadRequest)
		return
	}

	metrics := c.WasteService.ComputeMealMetrics(request.Ingredients, request.WasteItems)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics)
}
