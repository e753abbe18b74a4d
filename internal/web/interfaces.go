package web

import "github.com/IngridGit24/MeetingPlanner/internal/service"

// ReservationNotifier is satisfied by the SSE manager; the service layer
// feeds it admission decisions through its callback registry
type ReservationNotifier interface {
	NotifyReservation(event service.ReservationEvent)
}
