package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomify/database/kv"
	"roomify/models"
	"roomify/utils"
)

// Storage envelope: one key for the serialized collection, one for the
// schema version tag that gates migrations.
const (
	bookingsKey      = "roomify:bookings"
	schemaVersionKey = "roomify:schema_version"
	schemaVersion    = "1"
)

const defaultDurationMinutes = 60

// DefaultBookingService implements BookingService over a kv.Store. The whole
// collection is written in a single Set, so a crash leaves either the prior
// collection intact or the new one fully written.
type DefaultBookingService struct {
	KV    kv.Store
	Rooms []models.Room
	Slots []string

	// Now is the clock used for created-at stamps and past-date checks.
	// Defaults to time.Now.
	Now func() time.Time

	mu          sync.Mutex
	initialized bool
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked(ctx)
}

func (s *DefaultBookingService) initLocked(ctx context.Context) error {
	if s.initialized {
		return nil
	}
	stored, err := s.KV.Get(ctx, schemaVersionKey)
	if err != nil && err != kv.ErrNotFound {
		return NewStorageError("read schema version", err)
	}
	if stored != schemaVersion {
		// Migration is just the version stamp for now; the defensive read
		// in loadAll drops whatever an older schema wrote that no longer
		// validates.
		if err := s.KV.Set(ctx, schemaVersionKey, schemaVersion); err != nil {
			return NewStorageError("write schema version", err)
		}
		if stored != "" {
			utils.GetLogger().Info("migrated booking storage",
				zap.String("from", stored), zap.String("to", schemaVersion))
		}
	}
	s.initialized = true
	return nil
}

// loadAll reads and decodes the stored collection. A missing key is an empty
// collection. Records that no longer decode or validate are dropped with a
// diagnostic rather than failing the whole read.
func (s *DefaultBookingService) loadAll(ctx context.Context) ([]models.Booking, error) {
	raw, err := s.KV.Get(ctx, bookingsKey)
	if err == kv.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, fmt.Errorf("decode booking collection: %w", err)
	}
	logger := utils.GetLogger()
	bookings := make([]models.Booking, 0, len(elements))
	for i, element := range elements {
		var b models.Booking
		if err := json.Unmarshal(element, &b); err != nil {
			logger.Warn("dropping undecodable booking record",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		if res := ValidateBooking(b, s.Slots, s.now()); !res.Valid {
			logger.Warn("dropping invalid booking record",
				zap.String("id", b.ID), zap.Any("violations", res.Errors))
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (s *DefaultBookingService) persistLocked(ctx context.Context, bookings []models.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return NewStorageError("encode booking collection", err)
	}
	if err := s.KV.Set(ctx, bookingsKey, string(data)); err != nil {
		return NewStorageError("write booking collection", err)
	}
	return nil
}

func (s *DefaultBookingService) List(ctx context.Context) []models.Booking {
	bookings, err := s.loadAll(ctx)
	if err != nil {
		utils.GetLogger().Warn("failed to read booking collection", zap.Error(err))
		return []models.Booking{}
	}
	return bookings
}

func (s *DefaultBookingService) ListForRoomAndDate(ctx context.Context, roomID int, date string) []models.Booking {
	all := s.List(ctx)
	matched := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if b.RoomID == roomID && b.Date == date {
			matched = append(matched, b)
		}
	}
	return matched
}

func (s *DefaultBookingService) IsAvailable(ctx context.Context, roomID int, date, timeOfDay string) bool {
	bookings, err := s.loadAll(ctx)
	if err != nil {
		// Unknown state counts as unavailable.
		return false
	}
	return slotFree(bookings, roomID, date, timeOfDay)
}

func slotFree(bookings []models.Booking, roomID int, date, timeOfDay string) bool {
	for _, b := range bookings {
		if b.RoomID == roomID && b.Date == date && b.Time == timeOfDay {
			return false
		}
	}
	return true
}

// Save validates the candidate, re-checks the slot and persists the grown
// collection in one write. The availability re-check runs here even when the
// caller queried earlier, since that earlier answer may be stale by the time
// the write lands; the mutex makes check-then-append a single critical
// section under concurrent callers.
func (s *DefaultBookingService) Save(ctx context.Context, candidate models.Booking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initLocked(ctx); err != nil {
		return nil, err
	}

	if res := s.validate(candidate); !res.Valid {
		return nil, NewValidationError(res)
	}

	bookings, err := s.loadAll(ctx)
	if err != nil {
		return nil, NewStorageError("read booking collection", err)
	}
	if !slotFree(bookings, candidate.RoomID, candidate.Date, candidate.Time) {
		return nil, NewConflictError(candidate.RoomID, candidate.Date, candidate.Time)
	}

	stored := candidate
	stored.ID = uuid.New().String()
	stored.CreatedAt = s.now()
	if stored.Duration <= 0 {
		stored.Duration = defaultDurationMinutes
	}

	if err := s.persistLocked(ctx, append(bookings, stored)); err != nil {
		return nil, err
	}
	return &stored, nil
}

// validate runs the structural checks and, when a room catalog is wired,
// rejects rooms the catalog doesn't know.
func (s *DefaultBookingService) validate(candidate models.Booking) models.ValidationResult {
	res := ValidateBooking(candidate, s.Slots, s.now())
	if candidate.RoomID > 0 && len(s.Rooms) > 0 && !s.roomKnown(candidate.RoomID) {
		res.Valid = false
		res.Errors = append(res.Errors, models.ValidationError{
			Code:    models.ErrCodeInvalidRoom,
			Message: fmt.Sprintf("room %d does not exist", candidate.RoomID),
		})
	}
	return res
}

func (s *DefaultBookingService) roomKnown(roomID int) bool {
	for _, r := range s.Rooms {
		if r.ID == roomID {
			return true
		}
	}
	return false
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initLocked(ctx); err != nil {
		return err
	}
	bookings, err := s.loadAll(ctx)
	if err != nil {
		return NewStorageError("read booking collection", err)
	}
	kept := make([]models.Booking, 0, len(bookings))
	found := false
	for _, b := range bookings {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return NewNotFoundError(id)
	}
	return s.persistLocked(ctx, kept)
}

func (s *DefaultBookingService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initLocked(ctx); err != nil {
		return err
	}
	if err := s.KV.Remove(ctx, bookingsKey); err != nil {
		return NewStorageError("clear booking collection", err)
	}
	return nil
}
