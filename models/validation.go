package models

// Codes for structural validation failures.
const (
	ErrCodeInvalidRoom       = "invalid_room"
	ErrCodeInvalidDateFormat = "invalid_date_format"
	ErrCodeInvalidTimeFormat = "invalid_time_format"
	ErrCodePastDate          = "past_date"
)

// ValidationError is a single structural violation on a candidate booking.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult carries the outcome of structural checking. Errors is
// empty exactly when Valid is true.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}
