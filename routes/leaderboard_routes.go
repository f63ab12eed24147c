package routes

import (
	"github.com/YongHui-X/ecoplate-sub001/controllers"
	"github.com/YongHui-X/ecoplate-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterLeaderboardRoutes registers the board under `/api/leaderboard`
func RegisterLeaderboardRoutes(router *mux.Router, leaderboardService *services.LeaderboardService) {
	controller := &controllers.LeaderboardController{LeaderboardService: leaderboardService}

	leaderboardRouter := router.PathPrefix("/api/leaderboard").Subrouter()

	leaderboardRouter.HandleFunc("", controller.GetLeaderboardHandler).Methods("GET")
}
