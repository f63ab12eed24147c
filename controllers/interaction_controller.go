package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/services"
)

// InteractionController handles API requests for the food action log
type InteractionController struct {
	InteractionService *services.InteractionService
}

// LogActionHandler records a food action and runs the full scoring path
// (points, streak, badges) before responding.
func (c *InteractionController) LogActionHandler(w http.ResponseWriter, r *http.Request) {
	var request services.LogActionRequest

	// Decode request body
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("❌ Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	// Validate required fields
	if request.UserID == "" || request.Type == "" || request.Quantity <= 0 {
		log.Println("⚠️ Missing required fields in request")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	// Set a timeout for database operations
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := c.InteractionService.LogAction(ctx, request)
	if err != nil {
		log.Printf("❌ Failed to log action: %v", err)
		http.Error(w, "Failed to log action: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetInteractionsHandler returns a user's full interaction history
func (c *InteractionController) GetInteractionsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	// Validate input
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	interactions, err := c.InteractionService.ListInteractions(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to fetch interactions for %s: %v", userID, err)
		http.Error(w, "Failed to fetch interactions: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(interactions)
}
