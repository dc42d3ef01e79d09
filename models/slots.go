package models

// DefaultSlots returns the closed set of bookable start times. Times outside
// this catalog are rejected at validation, not stored.
func DefaultSlots() []string {
	return []string{
		"08:00", "09:00", "10:00", "11:00", "12:00",
		"13:00", "14:00", "15:00", "16:00", "17:00",
	}
}
