package booking

import (
	"errors"
	"fmt"
)

// Storage operations reported by StorageError.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// StorageError is a failure at the storage boundary. GetAll swallows read failures;
// Create and DeleteByID return them instead of writing over unseen data.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("booking storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrInvalidParticipants is returned by Create when participants is not a whole number.
var ErrInvalidParticipants = errors.New("participants must be a whole number")
