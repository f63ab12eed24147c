package routes

import (
	"github.com/YongHui-X/ecoplate-sub001/controllers"
	"github.com/YongHui-X/ecoplate-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterPointsRoutes registers the points snapshot and feed under `/api/points`
func RegisterPointsRoutes(router *mux.Router, pointsService *services.PointsService, statsService *services.StatsService, interactionService *services.InteractionService) {
	controller := &controllers.PointsController{
		PointsService:      pointsService,
		StatsService:       statsService,
		InteractionService: interactionService,
	}

	pointsRouter := router.PathPrefix("/api/points").Subrouter()

	// Points Routes
	pointsRouter.HandleFunc("", controller.GetPointsHandler).Methods("GET")
	pointsRouter.HandleFunc("/transactions", controller.GetTransactionsHandler).Methods("GET")
}
