package booking

import (
	"context"

	"roomify/models"
)

// BookingService owns the authoritative booking collection and enforces the
// slot-uniqueness invariant on every write: no two stored bookings ever share
// the same (room, date, time) triple.
type BookingService interface {
	// Initialize stamps the schema version, migrating stored data when the
	// tag is absent or stale. Idempotent; must run before reads or writes.
	Initialize(ctx context.Context) error
	// List returns every stored booking in insertion order. Read failures
	// degrade to an empty collection.
	List(ctx context.Context) []models.Booking
	// ListForRoomAndDate filters List by exact room and date equality.
	ListForRoomAndDate(ctx context.Context, roomID int, date string) []models.Booking
	// IsAvailable reports whether the slot is free. Fails closed: any read
	// error counts as unavailable.
	IsAvailable(ctx context.Context, roomID int, date, timeOfDay string) bool
	// Save is the sole write path: validate, re-check availability, enrich,
	// persist. Returns the stored booking or a typed *Error.
	Save(ctx context.Context, candidate models.Booking) (*models.Booking, error)
	// Delete removes one booking by id, failing with not_found if absent.
	Delete(ctx context.Context, id string) error
	// Clear removes all bookings unconditionally.
	Clear(ctx context.Context) error
}
