package booking

import (
	"regexp"
	"time"

	"roomify/models"
)

const dateLayout = "2006-01-02"

// Date and time strings are checked lexically against these fixed patterns
// before any parsing, so malformed input never reaches the temporal
// comparison.
var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidateBooking checks a candidate's structure against the offered slot
// catalog and the current day. Every violation is collected rather than
// short-circuited, so the caller sees all problems at once. The past-date
// check is date-only; time of day on the candidate is ignored.
func ValidateBooking(candidate models.Booking, slots []string, now time.Time) models.ValidationResult {
	var errs []models.ValidationError

	if candidate.RoomID <= 0 {
		errs = append(errs, models.ValidationError{
			Code:    models.ErrCodeInvalidRoom,
			Message: "room id must be a positive integer",
		})
	}

	dateShapeOK := datePattern.MatchString(candidate.Date)
	if !dateShapeOK {
		errs = append(errs, models.ValidationError{
			Code:    models.ErrCodeInvalidDateFormat,
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !timePattern.MatchString(candidate.Time) {
		errs = append(errs, models.ValidationError{
			Code:    models.ErrCodeInvalidTimeFormat,
			Message: "time must be in HH:MM format",
		})
	} else if !slotOffered(candidate.Time, slots) {
		errs = append(errs, models.ValidationError{
			Code:    models.ErrCodeInvalidTimeFormat,
			Message: "time is not an offered slot",
		})
	}

	if dateShapeOK {
		parsed, err := time.ParseInLocation(dateLayout, candidate.Date, now.Location())
		if err != nil {
			errs = append(errs, models.ValidationError{
				Code:    models.ErrCodeInvalidDateFormat,
				Message: "date is not a real calendar date",
			})
		} else {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if parsed.Before(today) {
				errs = append(errs, models.ValidationError{
					Code:    models.ErrCodePastDate,
					Message: "date is in the past",
				})
			}
		}
	}

	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func slotOffered(timeOfDay string, slots []string) bool {
	for _, s := range slots {
		if s == timeOfDay {
			return true
		}
	}
	return false
}
