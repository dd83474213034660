package booking

import (
	"context"
	"sync"
	"time"

	slotRepo "jiperaha/database/repository/slot"
	"jiperaha/models"

	"go.uber.org/zap"
)

// BookingService is CRUD over the booking collection persisted in one storage slot.
type BookingService interface {
	GetAll(ctx context.Context) []models.Booking
	Latest(ctx context.Context) (*models.Booking, bool)
	Create(ctx context.Context, form models.BookingForm) (*models.Booking, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	ClearAll(ctx context.Context) error
}

// DefaultBookingService implements BookingService.
//
// Calls are serialized within one process. Processes sharing the same slot are not
// coordinated, and the last writer wins.
type DefaultBookingService struct {
	Repo    slotRepo.SlotRepository
	Key     string
	Timeout time.Duration
	Clock   func() time.Time
	Logger  *zap.Logger

	mu     sync.Mutex
	lastID int64
}

// NewBookingService returns a DefaultBookingService writing to key in repo.
func NewBookingService(repo slotRepo.SlotRepository, key string, timeout time.Duration, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:    repo,
		Key:     key,
		Timeout: timeout,
		Clock:   time.Now,
		Logger:  logger,
	}
}
