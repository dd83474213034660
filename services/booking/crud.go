package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"jiperaha/models"

	"go.uber.org/zap"
)

// GetAll returns every stored booking in insertion order. It fails open: an absent,
// unreadable or corrupt slot yields an empty slice.
func (s *DefaultBookingService) GetAll(ctx context.Context) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load(ctx)
	if err != nil {
		s.logger().Warn("Booking slot unreadable, treating as empty", zap.String("key", s.Key), zap.Error(err))
	}
	return bookings
}

// Latest returns the most recently inserted booking.
func (s *DefaultBookingService) Latest(ctx context.Context) (*models.Booking, bool) {
	all := s.GetAll(ctx)
	if len(all) == 0 {
		return nil, false
	}
	last := all[len(all)-1]
	return &last, true
}

// Create builds a booking from an already validated form, appends it and persists the
// whole collection.
func (s *DefaultBookingService) Create(ctx context.Context, form models.BookingForm) (*models.Booking, error) {
	form = form.Normalized()
	participants, err := strconv.Atoi(form.Participants)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", ErrInvalidParticipants)
	}

	requests := form.Requests
	if requests == "" {
		requests = models.RequestsNone
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var maxStored int64
	for _, b := range bookings {
		if b.ID > maxStored {
			maxStored = b.ID
		}
	}

	at := s.now()
	booking := models.Booking{
		ID:           s.nextID(at, maxStored),
		Name:         form.Name,
		Email:        form.Email,
		Date:         form.Date,
		Package:      form.Package,
		Participants: participants,
		Requests:     requests,
		Timestamp:    at.Format(TimestampLayout),
	}

	if err := s.save(ctx, append(bookings, booking)); err != nil {
		return nil, err
	}

	s.logger().Info("Booking created",
		zap.Int64("id", booking.ID),
		zap.String("package", booking.Package),
		zap.String("date", booking.Date),
	)
	return &booking, nil
}

// DeleteByID removes the booking with id. It reports false, without writing, when no
// booking matches.
func (s *DefaultBookingService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bookings) {
		return false, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return false, err
	}
	s.logger().Info("Booking deleted", zap.Int64("id", id))
	return true, nil
}

// ClearAll removes the storage slot unconditionally.
func (s *DefaultBookingService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.Repo.Remove(ctx, s.Key); err != nil {
		s.logger().Error("Failed to clear bookings", zap.String("key", s.Key), zap.Error(err))
		return &StorageError{Op: OpWrite, Err: err}
	}
	s.logger().Info("All bookings cleared", zap.String("key", s.Key))
	return nil
}

// load reads the slot. Absent or corrupt content is an empty collection; only a failed
// read is returned as an error, so writers never overwrite data they could not see.
// Caller must hold s.mu.
func (s *DefaultBookingService) load(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, found, err := s.Repo.Get(ctx, s.Key)
	if err != nil {
		return []models.Booking{}, &StorageError{Op: OpRead, Err: err}
	}
	if !found || raw == "" {
		return []models.Booking{}, nil
	}

	var bookings []models.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		s.logger().Warn("Booking slot corrupt, treating as empty",
			zap.String("key", s.Key),
			zap.Error(&StorageError{Op: OpRead, Err: err}),
		)
		return []models.Booking{}, nil
	}
	if bookings == nil {
		return []models.Booking{}, nil
	}
	return bookings, nil
}

// save writes the whole collection. Caller must hold s.mu.
func (s *DefaultBookingService) save(ctx context.Context, bookings []models.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return &StorageError{Op: OpWrite, Err: fmt.Errorf("failed to marshal bookings: %w", err)}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.Repo.Set(ctx, s.Key, string(data)); err != nil {
		s.logger().Error("Failed to save bookings", zap.String("key", s.Key), zap.Error(err))
		return &StorageError{Op: OpWrite, Err: err}
	}
	return nil
}
