package routes

import (
	"github.com/YongHui-X/ecoplate-sub001/controllers"
	"github.com/YongHui-X/ecoplate-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterWasteRoutes registers per-meal scoring under `/api/waste-metrics`
func RegisterWasteRoutes(router *mux.Router, wasteService *services.WasteService) {
	controller := &controllers.WasteController{WasteService: wasteService}

	wasteRouter := router.PathPrefix("/api/waste-metrics").Subrouter()

	wasteRouter.HandleFunc("", controller.ComputeWasteMetricsHandler).Methods("POST")
}
