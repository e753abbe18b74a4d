package planner

// RejectionCode identifies which rule stage refused a reservation
type RejectionCode string

const (
	RejectionWeekend          RejectionCode = "weekend"
	RejectionOutsideHours     RejectionCode = "outside_hours"
	RejectionSlotUnavailable  RejectionCode = "slot_unavailable"
	RejectionMissingEquipment RejectionCode = "missing_equipment"
)

// Rejection is a domain outcome, not a system fault: the room cannot host
// the requested meeting and the caller should surface the reason. It
// implements error so rule stages compose with the usual plumbing, but a
// Rejection never indicates broken storage or transport.
type Rejection struct {
	Code   RejectionCode `json:"code"`
	Reason string        `json:"reason"`
}

// Error implements the error interface
func (r *Rejection) Error() string {
	return r.Reason
}

// Rule stage outcomes. Reasons are fixed strings so a repeated evaluation of
// the same input yields the identical rejection.
var (
	ErrWeekend = &Rejection{
		Code:   RejectionWeekend,
		Reason: "weekend booking disallowed",
	}
	ErrOutsideHours = &Rejection{
		Code:   RejectionOutsideHours,
		Reason: "outside working-hours window",
	}
	ErrSlotUnavailable = &Rejection{
		Code:   RejectionSlotUnavailable,
		Reason: "room not free for this slot (buffer not satisfied)",
	}
	ErrMissingEquipment = &Rejection{
		Code:   RejectionMissingEquipment,
		Reason: "room lacks required equipment for meeting kind",
	}
)
