package api

import (
	"context"

	"github.com/IngridGit24/MeetingPlanner/internal/models"
	"github.com/IngridGit24/MeetingPlanner/internal/planner"
)

// ReservationServicer defines the interface for reservation operations
// needed by API handlers
type ReservationServicer interface {
	Reserve(ctx context.Context, roomID, meetingID string) (planner.Outcome, error)
	ListReservations(ctx context.Context) ([]*models.Room, error)
}
