package slotRepo

import (
	"context"
	"sync"
)

type memorySlotRepo struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemorySlotRepo returns a process-local SlotRepository. Contents are lost on restart.
func NewMemorySlotRepo() SlotRepository {
	return &memorySlotRepo{slots: make(map[string]string)}
}

func (r *memorySlotRepo) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.slots[key]
	return v, ok, nil
}

func (r *memorySlotRepo) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.slots[key] = value
	r.mu.Unlock()
	return nil
}

func (r *memorySlotRepo) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.slots, key)
	r.mu.Unlock()
	return nil
}

func (r *memorySlotRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}
