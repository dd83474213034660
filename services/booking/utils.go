package booking

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TimestampLayout renders the informational creation time.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

func (s *DefaultBookingService) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}

func (s *DefaultBookingService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Timeout)
}

// nextID returns the creation time in ms, bumped past every id already issued or stored.
// Caller must hold s.mu.
func (s *DefaultBookingService) nextID(at time.Time, maxStored int64) int64 {
	id := at.UnixMilli()
	floor := s.lastID
	if maxStored > floor {
		floor = maxStored
	}
	if id <= floor {
		id = floor + 1
	}
	s.lastID = id
	return id
}
