package booking

import (
	"fmt"

	"roomify/models"
)

// Error codes returned by booking store operations.
const (
	CodeValidationFailed = "validation_failed"
	CodeSlotConflict     = "slot_conflict"
	CodeNotFound         = "not_found"
	CodeStorageError     = "storage_error"
)

// Error is a typed failure from a store operation.
type Error struct {
	Code       string
	Message    string
	Violations []models.ValidationError // set when Code is validation_failed
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(result models.ValidationResult) error {
	return &Error{
		Code:       CodeValidationFailed,
		Message:    "booking failed validation",
		Violations: result.Errors,
	}
}

func NewConflictError(roomID int, date, timeOfDay string) error {
	return &Error{
		Code:    CodeSlotConflict,
		Message: fmt.Sprintf("room %d is already booked on %s at %s", roomID, date, timeOfDay),
	}
}

func NewNotFoundError(id string) error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("no booking with id %s", id),
	}
}

func NewStorageError(op string, err error) error {
	return &Error{
		Code:    CodeStorageError,
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}
