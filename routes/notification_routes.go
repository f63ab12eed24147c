package routes

import (
	"github.com/YongHui-X/ecoplate-sub001/controllers"
	"github.com/YongHui-X/ecoplate-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes registers the in-app inbox under `/api/notifications`
func RegisterNotificationRoutes(router *mux.Router, notificationService *services.NotificationService) {
	controller := &controllers.NotificationController{NotificationService: notificationService}

	notificationRouter := router.PathPrefix("/api/notifications").Subrouter()

	// Notification Routes
	notificationRouter.HandleFunc("", controller.GetNotificationsHandler).Methods("GET")
	notificationRouter.HandleFunc("/read", controller.MarkReadHandler).Methods("POST")
}
