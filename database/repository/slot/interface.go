package slotRepo

import (
	"context"
	"fmt"
)

// SlotRepository is a key-value string store holding whole serialized values per key.
// Get reports found=false, with a nil error, for an absent key.
type SlotRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Drivers accepted by repository.NewSlotRepoFromConfig.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

// UnknownDriverError is returned for an unsupported STORAGE_DRIVER.
type UnknownDriverError struct {
	Driver string
}

func (e UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown storage driver %q (want memory, redis or mongo)", e.Driver)
}
