package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/YongHui-X/ecoplate-sub001/models"
	"github.com/YongHui-X/ecoplate-sub001/routes"
	"github.com/YongHui-X/ecoplate-sub001/services"
	"github.com/YongHui-X/ecoplate-sub001/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Engine policy flags (points strategy, streak/waste behavior, feed)
	engineConfig := models.EngineConfigFromEnv()
	log.Printf("Engine config: strategy=%s wastedResetsStreak=%v sharedInFeed=%v",
		engineConfig.PointsStrategy, engineConfig.WastedResetsStreak, engineConfig.SharedInFeed)

	// Socket server for notification push
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("⚠️ Socket server stopped: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize Services
	emissionService := &services.EmissionService{}
	notificationService := &services.NotificationService{Dynamo: dynamoService, Socket: socketServer}
	pointsService := &services.PointsService{Dynamo: dynamoService, Emission: emissionService, Config: engineConfig}
	interactionService := &services.InteractionService{Dynamo: dynamoService, Points: pointsService, Config: engineConfig}
	streakService := &services.StreakService{
		Interactions:  interactionService,
		Points:        pointsService,
		Notifications: notificationService,
		Config:        engineConfig,
	}
	badgeService := &services.BadgeService{
		Dynamo:        dynamoService,
		Points:        pointsService,
		Interactions:  interactionService,
		Notifications: notificationService,
	}
	// The write path fans out from the interaction log to streaks and badges.
	interactionService.Streak = streakService
	interactionService.Badges = badgeService

	statsService := &services.StatsService{Interactions: interactionService, Points: pointsService, Emission: emissionService}
	redemptionService := &services.RedemptionService{Dynamo: dynamoService}
	profileService := &services.UserProfileService{Dynamo: dynamoService}
	leaderboardService := &services.LeaderboardService{
		Dynamo:      dynamoService,
		Redemptions: redemptionService,
		Profiles:    profileService,
	}
	wasteService := &services.WasteService{Emission: emissionService}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to EcoPlate")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Socket.IO endpoint
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterInteractionRoutes(r, interactionService)
	routes.RegisterPointsRoutes(r, pointsService, statsService, interactionService)
	routes.RegisterStatsRoutes(r, statsService)
	routes.RegisterBadgeRoutes(r, badgeService)
	routes.RegisterLeaderboardRoutes(r, leaderboardService)
	routes.RegisterWasteRoutes(r, wasteService)
	routes.RegisterNotificationRoutes(r, notificationService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
