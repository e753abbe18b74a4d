// Package repository defines interfaces for data storage
package repository

import (
	"context"

	"github.com/IngridGit24/MeetingPlanner/internal/models"
)

// RoomRepository defines the interface for storing and retrieving rooms
type RoomRepository interface {
	SaveRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]*models.Room, error)
	// ListRoomsByAvailability returns rooms whose availability flag matches;
	// committed rooms (available=false) are the active reservations
	ListRoomsByAvailability(ctx context.Context, available bool) ([]*models.Room, error)
	RoomExists(ctx context.Context, id string) (bool, error)
	DeleteRoom(ctx context.Context, id string) error
}

// MeetingRepository defines the interface for storing and retrieving
// pending meeting requests
type MeetingRepository interface {
	SaveMeeting(ctx context.Context, meeting *models.MeetingRequest) error
	GetMeeting(ctx context.Context, id string) (*models.MeetingRequest, error)
	ListMeetings(ctx context.Context) ([]*models.MeetingRequest, error)
	DeleteMeeting(ctx context.Context, id string) error
}

// Repository combines room and meeting-request storage; both backends
// implement the full interface
type Repository interface {
	RoomRepository
	MeetingRepository
}
