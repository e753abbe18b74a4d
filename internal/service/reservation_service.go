// Package service provides the business logic tying the admission engine to
// the storage and notification layers
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/IngridGit24/MeetingPlanner/internal/models"
	"github.com/IngridGit24/MeetingPlanner/internal/planner"
	"github.com/IngridGit24/MeetingPlanner/internal/repository"
	"github.com/IngridGit24/MeetingPlanner/internal/utils"
)

// ErrRoomNotFound is returned when the referenced room does not exist.
// It is a caller-layer condition, checked before the engine runs.
var ErrRoomNotFound = errors.New("room not found")

// ErrMeetingNotFound is returned when the referenced meeting request does not exist
var ErrMeetingNotFound = errors.New("meeting request not found")

// ReservationEvent describes one admission decision for notification listeners
type ReservationEvent struct {
	RoomID    string    `json:"room_id"`
	MeetingID string    `json:"meeting_id"`
	Accepted  bool      `json:"accepted"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ReservationUpdateCallback is a function type for reservation event callbacks
type ReservationUpdateCallback func(ReservationEvent)

// ReservationService provides business logic for reserving rooms
type ReservationService struct {
	repo            repository.Repository
	engine          *planner.Engine
	updateCallbacks []ReservationUpdateCallback
}

// NewReservationService creates a new ReservationService over the given
// repository with the given admission policy
func NewReservationService(repo repository.Repository, policy planner.Policy) *ReservationService {
	return &ReservationService{
		repo:            repo,
		engine:          planner.NewEngine(repo, repo, policy),
		updateCallbacks: make([]ReservationUpdateCallback, 0),
	}
}

// RegisterUpdateCallback registers a callback invoked on every admission decision
func (s *ReservationService) RegisterUpdateCallback(callback ReservationUpdateCallback) {
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

// notifyUpdate calls all registered callbacks with the reservation event
func (s *ReservationService) notifyUpdate(event ReservationEvent) {
	for _, callback := range s.updateCallbacks {
		callback(event)
	}
}

// Reserve loads the room and the pending meeting request and asks the
// engine for an admission decision. Missing entities surface as
// ErrRoomNotFound/ErrMeetingNotFound, never as rejections.
func (s *ReservationService) Reserve(ctx context.Context, roomID, meetingID string) (planner.Outcome, error) {
	exists, err := s.repo.RoomExists(ctx, roomID)
	if err != nil {
		return planner.Outcome{}, fmt.Errorf("failed to check room %s: %w", roomID, err)
	}
	if !exists {
		return planner.Outcome{}, ErrRoomNotFound
	}

	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return planner.Outcome{}, ErrRoomNotFound
	}

	meeting, err := s.repo.GetMeeting(ctx, meetingID)
	if err != nil {
		return planner.Outcome{}, ErrMeetingNotFound
	}

	outcome, err := s.engine.TryReserve(ctx, room, meeting)
	if err != nil {
		return planner.Outcome{}, err
	}

	event := ReservationEvent{
		RoomID:    roomID,
		MeetingID: meetingID,
		Accepted:  outcome.Accepted,
		Timestamp: time.Now(),
	}
	if outcome.Rejection != nil {
		event.Reason = outcome.Rejection.Reason
		log.Printf("Reservation rejected for room %s: %s", utils.SanitizeLogString(roomID), outcome.Rejection.Reason)
	} else {
		log.Printf("Reservation accepted: room %s taken by meeting %s, reopens at %s",
			utils.SanitizeLogString(roomID),
			utils.SanitizeLogString(meetingID),
			outcome.Room.OpenTime.Format("15:04"))
	}

	s.notifyUpdate(event)
	return outcome, nil
}

// ListReservations returns the rooms currently committed to a meeting
func (s *ReservationService) ListReservations(ctx context.Context) ([]*models.Room, error) {
	return s.repo.ListRoomsByAvailability(ctx, false)
}
