package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/IngridGit24/MeetingPlanner/internal/service"
	"github.com/IngridGit24/MeetingPlanner/internal/utils"
)

// ReservationHandler handles HTTP requests for room reservations
type ReservationHandler struct {
	reservations ReservationServicer
}

// NewReservationHandler creates a new reservation handler over the given service
func NewReservationHandler(reservations ReservationServicer) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
	}
}

// reservationRequest is the payload for POST /api/reservations
type reservationRequest struct {
	RoomID    string `json:"room_id"`
	MeetingID string `json:"meeting_id"`
}

// ServeHTTP handles HTTP requests for reservations
func (h *ReservationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Set common headers
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/reservations":
		h.reserve(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/api/reservations":
		h.listReservations(w, r)
	default:
		http.NotFound(w, r)
	}
}

// reserve handles POST /api/reservations: it pairs a room with a pending
// meeting request and asks the admission engine for a decision. Rule
// rejections come back as 409 with the reason; a missing room or request
// is 404, decided before the engine runs.
func (h *ReservationHandler) reserve(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Error decoding reservation request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.RoomID == "" || req.MeetingID == "" {
		http.Error(w, "room_id and meeting_id are required", http.StatusBadRequest)
		return
	}

	outcome, err := h.reservations.Reserve(r.Context(), req.RoomID, req.MeetingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			http.Error(w, "Room not found", http.StatusNotFound)
		case errors.Is(err, service.ErrMeetingNotFound):
			http.Error(w, "Meeting not found", http.StatusNotFound)
		default:
			log.Printf("Error reserving room %s: %v", utils.SanitizeLogString(req.RoomID), err)
			http.Error(w, "Error processing reservation", http.StatusInternalServerError)
		}
		return
	}

	if !outcome.Accepted {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(outcome)
		return
	}

	json.NewEncoder(w).Encode(outcome)
}

// listReservations handles GET /api/reservations: rooms currently committed
// to a meeting (availability flag down)
func (h *ReservationHandler) listReservations(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.reservations.ListReservations(r.Context())
	if err != nil {
		log.Printf("Error listing reservations: %v", err)
		http.Error(w, "Error retrieving reservations", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(rooms)
}
