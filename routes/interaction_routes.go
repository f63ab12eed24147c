package routes

import (
	"github.com/YongHui-X/ecoplate-sub001/controllers"
	"github.com/YongHui-X/ecoplate-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterInteractionRoutes registers the food action log under `/api/interactions`
func RegisterInteractionRoutes(router *mux.Router, interactionService *services.InteractionService) {
	controller := &controllers.InteractionController{InteractionService: interactionService}

	interactionRouter := router.PathPrefix("/api/interactions").Subrouter()

	// Interaction Routes
	interactionRouter.HandleFunc("", controller.LogActionHandler).Methods("POST")
	interactionRouter.HandleFunc("", controller.GetInteractionsHandler).Methods("GET")
}
