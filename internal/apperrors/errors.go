package apperrors

import (
	"errors"
	"fmt"
)

// PermissionError indicates the actor lacks the role or ownership required
// for an operation. No state is mutated when it is returned.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	if e.Message == "" {
		return "permission denied"
	}
	return e.Message
}

// ValidationError indicates a malformed or out-of-enum field value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError indicates a uniqueness violation, e.g. a duplicate bill
// for the same tenant and month, or a duplicate room number.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// CapacityError indicates the target room is at capacity. It carries the
// room number and its numeric capacity so a user-facing message can be
// composed.
type CapacityError struct {
	RoomNumber string
	Capacity   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("room %s is at capacity (%d)", e.RoomNumber, e.Capacity)
}

// NotFoundError indicates a referenced entity is absent
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NoOpSignal indicates an idempotent repeat action. It is not a failure:
// the operation already holds, nothing was mutated, and callers surface it
// as an informational outcome.
type NoOpSignal struct {
	Message string
}

func (e *NoOpSignal) Error() string {
	return e.Message
}

// IsPermission reports whether err is a PermissionError
func IsPermission(err error) bool {
	var target *PermissionError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsCapacity reports whether err is a CapacityError
func IsCapacity(err error) bool {
	var target *CapacityError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsNoOp reports whether err is a NoOpSignal
func IsNoOp(err error) bool {
	var target *NoOpSignal
	return errors.As(err, &target)
}
