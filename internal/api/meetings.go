package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/IngridGit24/MeetingPlanner/internal/models"
	"github.com/IngridGit24/MeetingPlanner/internal/repository"
	"github.com/IngridGit24/MeetingPlanner/internal/utils"
	"github.com/google/uuid"
)

// MeetingHandler handles HTTP requests for meeting-request management
type MeetingHandler struct {
	repo repository.Repository
}

// NewMeetingHandler creates a new meeting handler with the given repository
func NewMeetingHandler(repo repository.Repository) *MeetingHandler {
	return &MeetingHandler{
		repo: repo,
	}
}

// ServeHTTP handles HTTP requests for meeting-request management
func (h *MeetingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Set common headers
	w.Header().Set("Content-Type", "application/json")

	// Extract meeting ID from path if present
	// Path format: /api/meetings/{meetingID}
	pathParts := strings.Split(r.URL.Path, "/")
	var meetingID string

	if len(pathParts) >= 4 && pathParts[3] != "" {
		meetingID = pathParts[3]
	}

	// Route based on HTTP method and path
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/meetings":
		h.listMeetings(w, r)
	case r.Method == http.MethodGet && meetingID != "":
		h.getMeeting(w, r, meetingID)
	case r.Method == http.MethodPost && r.URL.Path == "/api/meetings":
		h.createMeeting(w, r)
	case r.Method == http.MethodPut && meetingID != "":
		h.updateMeeting(w, r, meetingID)
	case r.Method == http.MethodDelete && meetingID != "":
		h.deleteMeeting(w, r, meetingID)
	default:
		http.NotFound(w, r)
	}
}

// createMeeting handles POST /api/meetings to file a new meeting request
func (h *MeetingHandler) createMeeting(w http.ResponseWriter, r *http.Request) {
	var meeting models.MeetingRequest

	err := json.NewDecoder(r.Body).Decode(&meeting)
	if err != nil {
		log.Printf("Error decoding meeting request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !meeting.Kind.IsValid() {
		http.Error(w, "Unknown meeting kind", http.StatusBadRequest)
		return
	}

	if meeting.Attendees < 0 {
		http.Error(w, "Attendee count cannot be negative", http.StatusBadRequest)
		return
	}

	if meeting.ID == "" {
		meeting.ID = uuid.NewString()
	}

	if err := h.repo.SaveMeeting(r.Context(), &meeting); err != nil {
		log.Printf("Error saving meeting: %v", err)
		http.Error(w, "Error saving meeting", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(meeting)
}

// listMeetings handles GET /api/meetings to list all pending requests
func (h *MeetingHandler) listMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.repo.ListMeetings(r.Context())
	if err != nil {
		log.Printf("Error listing meetings: %v", err)
		http.Error(w, "Error retrieving meetings", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(meetings)
}

// getMeeting handles GET /api/meetings/{meetingID} to get a specific request
func (h *MeetingHandler) getMeeting(w http.ResponseWriter, r *http.Request, meetingID string) {
	meeting, err := h.repo.GetMeeting(r.Context(), meetingID)
	if err != nil {
		log.Printf("Error getting meeting %s: %v", utils.SanitizeLogString(meetingID), err)
		http.Error(w, "Meeting not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(meeting)
}

// updateMeeting handles PUT /api/meetings/{meetingID} to modify a pending request
func (h *MeetingHandler) updateMeeting(w http.ResponseWriter, r *http.Request, meetingID string) {
	existing, err := h.repo.GetMeeting(r.Context(), meetingID)
	if err != nil {
		log.Printf("Error getting meeting %s: %v", utils.SanitizeLogString(meetingID), err)
		http.Error(w, "Meeting not found", http.StatusNotFound)
		return
	}

	var updated models.MeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		log.Printf("Error decoding meeting update: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !updated.Kind.IsValid() {
		http.Error(w, "Unknown meeting kind", http.StatusBadRequest)
		return
	}

	updated.ID = existing.ID

	if err := h.repo.SaveMeeting(r.Context(), &updated); err != nil {
		log.Printf("Error updating meeting: %v", err)
		http.Error(w, "Error updating meeting", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(updated)
}

// deleteMeeting handles DELETE /api/meetings/{meetingID} to abandon a request
func (h *MeetingHandler) deleteMeeting(w http.ResponseWriter, r *http.Request, meetingID string) {
	// Check if the meeting exists first
	if _, err := h.repo.GetMeeting(r.Context(), meetingID); err != nil {
		log.Printf("Error getting meeting %s: %v", utils.SanitizeLogString(meetingID), err)
		http.Error(w, "Meeting not found", http.StatusNotFound)
		return
	}

	if err := h.repo.DeleteMeeting(r.Context(), meetingID); err != nil {
		log.Printf("Error deleting meeting: %v", err)
		http.Error(w, "Error deleting meeting", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Meeting deleted successfully",
	})
}
