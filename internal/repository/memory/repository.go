// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/IngridGit24/MeetingPlanner/internal/models"
)

// ErrNotFound is returned when a requested entity is not found
var ErrNotFound = errors.New("entity not found")

// Repository implements the repository interface with in-memory storage.
// Rooms are copied on both read and write so callers always hold snapshots;
// nothing outside the repository can alias the stored equipment slices.
type Repository struct {
	rooms    map[string]*models.Room
	meetings map[string]*models.MeetingRequest
	mu       sync.RWMutex
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{
		rooms:    make(map[string]*models.Room),
		meetings: make(map[string]*models.MeetingRequest),
	}
}

// SaveRoom stores a copy of the room, replacing any previous record
func (r *Repository) SaveRoom(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[room.ID] = room.Clone()
	return nil
}

// GetRoom retrieves a room snapshot by ID
func (r *Repository) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}

	return room.Clone(), nil
}

// ListRooms returns snapshots of all rooms
func (r *Repository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room.Clone())
	}

	return rooms, nil
}

// ListRoomsByAvailability returns snapshots of rooms matching the availability flag
func (r *Repository) ListRoomsByAvailability(ctx context.Context, available bool) ([]*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if room.Available == available {
			rooms = append(rooms, room.Clone())
		}
	}

	return rooms, nil
}

// RoomExists reports whether a room with the given ID is stored
func (r *Repository) RoomExists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rooms[id]
	return ok, nil
}

// DeleteRoom removes a room by ID; its equipment goes with it since the
// room record owns the equipment list
func (r *Repository) DeleteRoom(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return ErrNotFound
	}

	delete(r.rooms, id)
	return nil
}

// SaveMeeting stores a copy of the meeting request
func (r *Repository) SaveMeeting(ctx context.Context, meeting *models.MeetingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *meeting
	r.meetings[meeting.ID] = &copied
	return nil
}

// GetMeeting retrieves a meeting request by ID
func (r *Repository) GetMeeting(ctx context.Context, id string) (*models.MeetingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *meeting
	return &copied, nil
}

// ListMeetings returns all pending meeting requests
func (r *Repository) ListMeetings(ctx context.Context) ([]*models.MeetingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meetings := make([]*models.MeetingRequest, 0, len(r.meetings))
	for _, meeting := range r.meetings {
		copied := *meeting
		meetings = append(meetings, &copied)
	}

	return meetings, nil
}

// DeleteMeeting removes a meeting request by ID
func (r *Repository) DeleteMeeting(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meetings[id]; !ok {
		return ErrNotFound
	}

	delete(r.meetings, id)
	return nil
}
