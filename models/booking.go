package models

import "time"

// Booking represents a confirmed reservation of a single room slot.
// Immutable once stored; there is no update path, only deletion by id.
type Booking struct {
	ID        string    `json:"id"`              // Unique booking identifier (UUID), set by the store
	RoomID    int       `json:"room_id"`         // Room being reserved
	Date      string    `json:"date"`            // Booking date in "YYYY-MM-DD" format
	Time      string    `json:"time"`            // Slot start in "HH:MM" format, one of the offered slots
	Duration  int       `json:"duration"`        // Duration in minutes, defaults to 60
	Owner     string    `json:"owner,omitempty"` // Optional label for who holds the booking
	CreatedAt time.Time `json:"created_at"`      // Set by the store on creation
}
