package policy

import (
	"hostel-be-svc/internal/models"
)

// AssignmentDecision is the outcome of a capacity check. When denied it
// carries the room number and capacity so callers can compose a message.
type AssignmentDecision struct {
	Allowed    bool
	Reason     string
	RoomNumber string
	Capacity   int
}

// CanAssign decides whether a tenant may occupy the target room.
// occupantCount is the number of tenants currently referencing the room,
// excluding the requesting tenant. A nil room is an unassignment and is
// always allowed. A tenant already in the target room stays allowed
// regardless of occupancy: the check runs only for new assignments, never
// retroactively, so tenants grandfathered into an over-capacity room (for
// example after an admin reduced the capacity) are not evicted.
func CanAssign(tenant *models.Tenant, room *models.Room, occupantCount int64) AssignmentDecision {
	if room == nil {
		return AssignmentDecision{Allowed: true}
	}

	if tenant != nil && tenant.RoomID != nil && *tenant.RoomID == room.ID {
		// no-op reassignment to the current room
		return AssignmentDecision{Allowed: true, RoomNumber: room.RoomNumber, Capacity: room.Capacity}
	}

	if occupantCount < int64(room.Capacity) {
		return AssignmentDecision{Allowed: true, RoomNumber: room.RoomNumber, Capacity: room.Capacity}
	}

	return AssignmentDecision{
		Allowed:    false,
		Reason:     "room at capacity",
		RoomNumber: room.RoomNumber,
		Capacity:   room.Capacity,
	}
}
