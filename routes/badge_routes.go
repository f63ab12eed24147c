package routes

import (
	"github.com/YongHui-X/ecoplate-sub001/controllers"
	"github.com/YongHui-X/ecoplate-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterBadgeRoutes registers badge list and sync under `/api/badges`
func RegisterBadgeRoutes(router *mux.Router, badgeService *services.BadgeService) {
	controller := &controllers.BadgeController{BadgeService: badgeService}

	badgeRouter := router.PathPrefix("/api/badges").Subrouter()

	// Badge Routes
	badgeRouter.HandleFunc("", controller.GetBadgesHandler).Methods("GET")
	badgeRouter.HandleFunc("/sync", controller.SyncBadgesHandler).Methods("POST")
}
