package models

import "time"

// MeetingKind represents the kind of meeting being requested
type MeetingKind string

const (
	// MeetingVideoConference needs a screen, an octopus hub and a webcam
	MeetingVideoConference MeetingKind = "VC"
	// MeetingRoundTable needs a whiteboard, a screen and an octopus hub
	MeetingRoundTable MeetingKind = "RC"
	// MeetingSpecial needs a whiteboard
	MeetingSpecial MeetingKind = "SPEC"
	// MeetingSimple has no equipment requirements
	MeetingSimple MeetingKind = "RS"
)

// IsValid reports whether k is one of the known meeting kinds
func (k MeetingKind) IsValid() bool {
	switch k {
	case MeetingVideoConference, MeetingRoundTable, MeetingSpecial, MeetingSimple:
		return true
	}
	return false
}

// requiredEquipment maps every meeting kind to the equipment kinds a room
// must carry before a meeting of that kind can be admitted. The map is kept
// total over MeetingKind: a new kind must be given an entry here or
// RequiredEquipment will report it as unknown.
var requiredEquipment = map[MeetingKind][]EquipmentKind{
	MeetingVideoConference: {EquipmentScreen, EquipmentOctopusHub, EquipmentWebcam},
	MeetingRoundTable:      {EquipmentWhiteboard, EquipmentScreen, EquipmentOctopusHub},
	MeetingSpecial:         {EquipmentWhiteboard},
	// Simple meetings run with whatever the room has
	MeetingSimple: {},
}

// RequiredEquipment returns the equipment kinds a room must carry for the
// given meeting kind. The second return value is false for unknown kinds.
func (k MeetingKind) RequiredEquipment() ([]EquipmentKind, bool) {
	required, ok := requiredEquipment[k]
	return required, ok
}

// MeetingRequest represents a pending request for a room. It is transient:
// it exists until a reservation consumes it or the caller deletes it.
type MeetingRequest struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Date      time.Time   `json:"date"`
	Attendees int         `json:"attendees"`
	Kind      MeetingKind `json:"kind"`
}
