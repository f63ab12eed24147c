package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/services"
)

// NotificationController serves the in-app notification list
type NotificationController struct {
	NotificationService *services.NotificationService
}

// GetNotificationsHandler returns a user's notifications, newest first
func (c *NotificationController) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId parameter", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	notifications, err := c.NotificationService.ListNotifications(ctx, userID)
	if err != nil {
		log.Printf("❌ Failed to fetch notifications for %s: %v", userID, err)
		http.Error(w, "Failed to fetch notifications: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}

// MarkReadHandler flags a notification as read
func (c *NotificationController) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID    string `json:"userId"`
		CreatedAt string `json:"createdAt"`
		ID        string `json:"id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("❌ Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.CreatedAt == "" || request.ID == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.NotificationService.MarkNotificationRead(ctx, request.UserID, request.CreatedAt, request.ID); err != nil {
		log.Printf("❌ Failed to mark notification read: %v", err)
		http.Error(w, "Failed to mark notification read: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Notification marked as read"})
}
