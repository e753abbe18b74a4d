// Package planner implements the reservation admission engine: the rule set
// deciding whether a room may host a meeting request, and the commit that
// marks the room unavailable and consumes the request.
package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/IngridGit24/MeetingPlanner/internal/models"
)

// RoomStore is the narrow view of room storage the engine needs
type RoomStore interface {
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	SaveRoom(ctx context.Context, room *models.Room) error
	RoomExists(ctx context.Context, id string) (bool, error)
}

// RequestStore is the narrow view of meeting-request storage the engine needs
type RequestStore interface {
	DeleteMeeting(ctx context.Context, id string) error
}

// Policy carries the reservation rules' tunable values. The working-hours
// window and the turnover buffer are deployment policy; callers build a
// Policy from configuration instead of the engine hiding constants.
type Policy struct {
	WorkdayStartHour int
	WorkdayEndHour   int
	BufferHours      int
}

// DefaultPolicy is the historical 08:00-20:00 window with a one-hour
// turnover buffer between bookings
func DefaultPolicy() Policy {
	return Policy{
		WorkdayStartHour: 8,
		WorkdayEndHour:   20,
		BufferHours:      1,
	}
}

// Outcome reports the result of one admission decision
type Outcome struct {
	Accepted bool `json:"accepted"`
	// Rejection is set when Accepted is false
	Rejection *Rejection `json:"rejection,omitempty"`
	// Room is the committed snapshot when Accepted is true
	Room *models.Room `json:"room,omitempty"`
}

// Engine evaluates (room, meeting request) pairs against the admission rules
// and commits accepted reservations. Admission is serialized per room: two
// concurrent calls for the same room take the same lock and the second sees
// the first one's committed open-time advance.
type Engine struct {
	rooms    RoomStore
	requests RequestStore
	policy   Policy

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEngine creates an admission engine over the given stores
func NewEngine(rooms RoomStore, requests RequestStore, policy Policy) *Engine {
	return &Engine{
		rooms:    rooms,
		requests: requests,
		policy:   policy,
		locks:    make(map[string]*sync.Mutex),
	}
}

// roomLock returns the mutex serializing admission for the given room
func (e *Engine) roomLock(roomID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[roomID] = lock
	}
	return lock
}

// TryReserve decides whether the room may host the meeting request. The
// rules run in fixed order and stop at the first failure; a failed stage
// leaves room and request untouched. When every stage passes, the engine
// commits in one step: availability drops to false, the room's open time
// advances to the meeting's end, the room is saved and the request deleted.
//
// The room argument identifies the room; the engine re-reads the stored
// record under the per-room lock so a stale caller snapshot cannot shadow a
// concurrent acceptance. A non-nil error is a storage fault, never a rule
// rejection.
func (e *Engine) TryReserve(ctx context.Context, room *models.Room, request *models.MeetingRequest) (Outcome, error) {
	lock := e.roomLock(room.ID)
	lock.Lock()
	defer lock.Unlock()

	// Authoritative snapshot: the caller may hold a copy loaded before a
	// competing reservation committed
	current, err := e.rooms.GetRoom(ctx, room.ID)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to load room %s: %w", room.ID, err)
	}

	if rej := e.evaluate(current, request); rej != nil {
		return Outcome{Accepted: false, Rejection: rej}, nil
	}

	// Commit: the room is held by this meeting and reopens when it ends
	committed := current.Clone()
	committed.Available = false
	committed.OpenTime = request.EndTime

	if err := e.rooms.SaveRoom(ctx, committed); err != nil {
		return Outcome{}, fmt.Errorf("failed to save reserved room %s: %w", room.ID, err)
	}

	if err := e.requests.DeleteMeeting(ctx, request.ID); err != nil {
		return Outcome{}, fmt.Errorf("failed to consume meeting request %s: %w", request.ID, err)
	}

	return Outcome{Accepted: true, Room: committed}, nil
}

// evaluate runs the rule stages in order and returns the first rejection,
// or nil when the pair is admissible
func (e *Engine) evaluate(room *models.Room, request *models.MeetingRequest) *Rejection {
	if rej := e.checkDate(request.Date); rej != nil {
		return rej
	}
	if rej := e.checkWorkingHours(request.StartTime, request.EndTime); rej != nil {
		return rej
	}
	if rej := e.checkSlot(room, request.StartTime, request.EndTime); rej != nil {
		return rej
	}
	return e.checkEquipment(room, request.Kind)
}

// checkDate rejects meetings dated on a Saturday or Sunday
func (e *Engine) checkDate(date time.Time) *Rejection {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return ErrWeekend
	}
	return nil
}

// checkWorkingHours verifies the slot sits inside the workday window.
// Only the hour-of-day component is compared, minutes are discarded:
// a 19:59 end reads as hour 19 and passes, a 20:30 end reads as 20 and
// fails. Inherited behavior, kept until minute precision is agreed on.
func (e *Engine) checkWorkingHours(start, end time.Time) *Rejection {
	startHour := start.Hour()
	endHour := end.Hour()

	if !(startHour >= e.policy.WorkdayStartHour && endHour < e.policy.WorkdayEndHour) {
		return ErrOutsideHours
	}
	return nil
}

// checkSlot verifies the room is free for the slot: the meeting must start
// at least BufferHours past the room's current open time (turnover and
// cleaning between bookings) and end before the workday closes. Hour
// granularity as in checkWorkingHours.
func (e *Engine) checkSlot(room *models.Room, start, end time.Time) *Rejection {
	startHour := start.Hour()
	endHour := end.Hour()
	openHour := room.OpenTime.Hour()

	if !(startHour >= openHour+e.policy.BufferHours && endHour < e.policy.WorkdayEndHour) {
		return ErrSlotUnavailable
	}
	return nil
}

// checkEquipment verifies the room's equipment kinds cover everything the
// meeting kind demands. Unknown meeting kinds fail closed.
func (e *Engine) checkEquipment(room *models.Room, kind models.MeetingKind) *Rejection {
	required, ok := kind.RequiredEquipment()
	if !ok {
		return ErrMissingEquipment
	}

	if !room.HasEquipmentKinds(required) {
		return ErrMissingEquipment
	}
	return nil
}
