package models

import "time"

// EquipmentKind categorizes the fixed installations a room can carry.
// Meeting kinds are gated on these categories, never on individual units.
type EquipmentKind string

const (
	EquipmentScreen     EquipmentKind = "screen"
	EquipmentOctopusHub EquipmentKind = "octopus_hub"
	EquipmentWebcam     EquipmentKind = "webcam"
	EquipmentWhiteboard EquipmentKind = "whiteboard"
	EquipmentNone       EquipmentKind = "none"
)

// IsValid reports whether k is one of the known equipment kinds
func (k EquipmentKind) IsValid() bool {
	switch k {
	case EquipmentScreen, EquipmentOctopusHub, EquipmentWebcam, EquipmentWhiteboard, EquipmentNone:
		return true
	}
	return false
}

// Equipment is a single installation owned by exactly one room.
// Its lifecycle follows the room: it is deleted with the room and
// replaced wholesale when the room is updated.
type Equipment struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Kind        EquipmentKind `json:"kind"`
	RoomID      string        `json:"room_id,omitempty"`
}

// Room represents a physical meeting room
type Room struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Capacity  int         `json:"capacity"`
	OpenTime  time.Time   `json:"open_time"`
	CloseTime time.Time   `json:"close_time"`
	Available bool        `json:"available"`
	Equipment []Equipment `json:"equipment"`
}

// EquipmentKinds returns the set of equipment kinds present in the room
func (r *Room) EquipmentKinds() map[EquipmentKind]struct{} {
	kinds := make(map[EquipmentKind]struct{}, len(r.Equipment))
	for _, e := range r.Equipment {
		kinds[e.Kind] = struct{}{}
	}
	return kinds
}

// HasEquipmentKinds reports whether the room carries every kind in required
func (r *Room) HasEquipmentKinds(required []EquipmentKind) bool {
	kinds := r.EquipmentKinds()
	for _, k := range required {
		if _, ok := kinds[k]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the room so callers can hold a snapshot
// without aliasing the stored equipment slice
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	copied := *r
	copied.Equipment = make([]Equipment, len(r.Equipment))
	copy(copied.Equipment, r.Equipment)
	return &copied
}
