package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IngridGit24/MeetingPlanner/internal/api"
	"github.com/IngridGit24/MeetingPlanner/internal/config"
	"github.com/IngridGit24/MeetingPlanner/internal/planner"
	"github.com/IngridGit24/MeetingPlanner/internal/repository"
	"github.com/IngridGit24/MeetingPlanner/internal/service"
	"github.com/IngridGit24/MeetingPlanner/internal/web"
)

func main() {
	// Load the reservation policy and validate it before anything starts
	plannerConfig := config.GetPlannerConfig()
	if err := plannerConfig.Validate(); err != nil {
		log.Fatalf("Invalid planner configuration: %v", err)
	}

	// Initialize the repository using the factory
	redisConfig := config.GetRedisConfig()
	repo, err := repository.NewRepository(redisConfig)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Check if we're using a Redis repository, and if so, close it properly on exit
	if redisRepo, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := redisRepo.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	// Initialize the service layer with the admission policy
	reservationService := service.NewReservationService(repo, planner.Policy{
		WorkdayStartHour: plannerConfig.WorkdayStartHour,
		WorkdayEndHour:   plannerConfig.WorkdayEndHour,
		BufferHours:      plannerConfig.BufferHours,
	})

	// Set up the reservation event stream and feed it from the service
	sseManager := web.NewSSEManager()
	reservationService.RegisterUpdateCallback(sseManager.NotifyReservation)

	// Set up API routes
	mux := api.SetupRoutes(repo, reservationService, plannerConfig)
	mux.Handle("/events", sseManager)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Configure the HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Printf("Starting meeting planner server on port %s", port)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until a signal is received or an error occurs
	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// First, close SSE connections so Shutdown does not wait on them
		sseManager.Shutdown()

		// Create a deadline to wait for
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Doesn't block if there are no connections, but will otherwise
		// wait until the timeout deadline.
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
