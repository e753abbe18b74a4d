package api

import (
	"net/http"

	"github.com/IngridGit24/MeetingPlanner/internal/config"
	"github.com/IngridGit24/MeetingPlanner/internal/repository"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(repo repository.Repository, reservations ReservationServicer, plannerCfg config.PlannerConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler)

	// Room management endpoints
	roomHandler := NewRoomHandler(repo, plannerCfg)
	mux.Handle("/api/rooms", roomHandler)
	mux.Handle("/api/rooms/", roomHandler)

	// Meeting request endpoints
	meetingHandler := NewMeetingHandler(repo)
	mux.Handle("/api/meetings", meetingHandler)
	mux.Handle("/api/meetings/", meetingHandler)

	// Reservation endpoints
	reservationHandler := NewReservationHandler(reservations)
	mux.Handle("/api/reservations", reservationHandler)

	return mux
}
