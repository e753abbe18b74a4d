package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/IngridGit24/MeetingPlanner/internal/config"
	"github.com/IngridGit24/MeetingPlanner/internal/models"
	"github.com/IngridGit24/MeetingPlanner/internal/repository"
	"github.com/IngridGit24/MeetingPlanner/internal/utils"
	"github.com/google/uuid"
)

// RoomHandler handles HTTP requests for room management
type RoomHandler struct {
	repo       repository.Repository
	plannerCfg config.PlannerConfig
}

// NewRoomHandler creates a new room handler with the given repository and
// planner defaults
func NewRoomHandler(repo repository.Repository, plannerCfg config.PlannerConfig) *RoomHandler {
	return &RoomHandler{
		repo:       repo,
		plannerCfg: plannerCfg,
	}
}

// ServeHTTP handles HTTP requests for room management
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Set common headers
	w.Header().Set("Content-Type", "application/json")

	// Extract room ID from path if present
	// Path format: /api/rooms/{roomID}
	pathParts := strings.Split(r.URL.Path, "/")
	var roomID string

	if len(pathParts) >= 4 && pathParts[3] != "" {
		roomID = pathParts[3]
	}

	// Route based on HTTP method and path
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/rooms":
		h.listRooms(w, r)
	case r.Method == http.MethodGet && roomID != "":
		h.getRoom(w, r, roomID)
	case r.Method == http.MethodPost && r.URL.Path == "/api/rooms":
		h.createRoom(w, r)
	case r.Method == http.MethodPut && roomID != "":
		h.updateRoom(w, r, roomID)
	case r.Method == http.MethodDelete && roomID != "":
		h.deleteRoom(w, r, roomID)
	default:
		http.NotFound(w, r)
	}
}

// normalizeEquipment mints IDs for new equipment, validates kinds and ties
// every unit back to its room
func normalizeEquipment(room *models.Room) error {
	for i := range room.Equipment {
		if !room.Equipment[i].Kind.IsValid() {
			return errors.New("unknown equipment kind: " + string(room.Equipment[i].Kind))
		}
		if room.Equipment[i].ID == "" {
			room.Equipment[i].ID = uuid.NewString()
		}
		room.Equipment[i].RoomID = room.ID
	}
	return nil
}

// createRoom handles POST /api/rooms to register a new room.
// New rooms start available with the configured default open/close times.
func (h *RoomHandler) createRoom(w http.ResponseWriter, r *http.Request) {
	var room models.Room

	err := json.NewDecoder(r.Body).Decode(&room)
	if err != nil {
		log.Printf("Error decoding room request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if room.Capacity < 0 {
		http.Error(w, "Room capacity cannot be negative", http.StatusBadRequest)
		return
	}

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	// Creation defaults win over whatever the client sent
	room.Available = true
	room.OpenTime = h.plannerCfg.DefaultOpenTime
	room.CloseTime = h.plannerCfg.DefaultCloseTime

	if err := normalizeEquipment(&room); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.SaveRoom(r.Context(), &room); err != nil {
		log.Printf("Error saving room: %v", err)
		http.Error(w, "Error saving room", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(room)
}

// listRooms handles GET /api/rooms to list all rooms
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.repo.ListRooms(r.Context())
	if err != nil {
		log.Printf("Error listing rooms: %v", err)
		http.Error(w, "Error retrieving rooms", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(rooms)
}

// getRoom handles GET /api/rooms/{roomID} to get a specific room
func (h *RoomHandler) getRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	room, err := h.repo.GetRoom(r.Context(), roomID)
	if err != nil {
		log.Printf("Error getting room %s: %v", utils.SanitizeLogString(roomID), err)
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(room)
}

// updateRoom handles PUT /api/rooms/{roomID}. The submitted equipment list
// replaces the stored one entirely; equipment has no life of its own outside
// its room.
func (h *RoomHandler) updateRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	existing, err := h.repo.GetRoom(r.Context(), roomID)
	if err != nil {
		log.Printf("Error getting room %s: %v", utils.SanitizeLogString(roomID), err)
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	var updated models.Room
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		log.Printf("Error decoding room update: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if updated.Capacity < 0 {
		http.Error(w, "Room capacity cannot be negative", http.StatusBadRequest)
		return
	}

	// The ID is authoritative from the path; everything else comes from
	// the payload, falling back to the stored record where omitted
	updated.ID = existing.ID
	if updated.Name == "" {
		updated.Name = existing.Name
	}
	if updated.OpenTime.IsZero() {
		updated.OpenTime = existing.OpenTime
	}
	if updated.CloseTime.IsZero() {
		updated.CloseTime = existing.CloseTime
	}

	if err := normalizeEquipment(&updated); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.SaveRoom(r.Context(), &updated); err != nil {
		log.Printf("Error updating room: %v", err)
		http.Error(w, "Error updating room", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(updated)
}

// deleteRoom handles DELETE /api/rooms/{roomID}; the room's equipment is
// removed with it
func (h *RoomHandler) deleteRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	// Check if the room exists first
	exists, err := h.repo.RoomExists(r.Context(), roomID)
	if err != nil {
		log.Printf("Error checking room %s: %v", utils.SanitizeLogString(roomID), err)
		http.Error(w, "Error deleting room", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	if err := h.repo.DeleteRoom(r.Context(), roomID); err != nil {
		log.Printf("Error deleting room: %v", err)
		http.Error(w, "Error deleting room", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Room deleted successfully",
	})
}
