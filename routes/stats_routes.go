package routes

import (
	"github.com/YongHui-X/ecoplate-sub001/controllers"
	"github.com/YongHui-X/ecoplate-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterStatsRoutes registers the impact summary under `/api/stats`
func RegisterStatsRoutes(router *mux.Router, statsService *services.StatsService) {
	controller := &controllers.StatsController{StatsService: statsService}

	statsRouter := router.PathPrefix("/api/stats").Subrouter()

	statsRouter.HandleFunc("", controller.GetImpactSummaryHandler).Methods("GET")
}
