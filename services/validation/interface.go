package validation

import (
	"time"

	"jiperaha/models"
)

// Validator checks raw reservation form values. Implementations must not touch storage.
type Validator interface {
	ValidateField(field, raw string) FieldResult
	ValidateForm(form models.BookingForm) FormResult
	Config() Config
}

// Config holds the configurable form rules.
type Config struct {
	MinNameLength   int      `validate:"min=1"`
	MaxParticipants int      `validate:"min=1"`
	Packages        []string `validate:"omitempty,dive,required"`
}

// DefaultConfig matches the rules of the reservation widget.
func DefaultConfig() Config {
	return Config{MinNameLength: 2, MaxParticipants: 10}
}

// FieldResult is the verdict for one field. Kind and Message are empty when IsValid.
type FieldResult struct {
	IsValid bool
	Kind    ErrorKind
	Message string
}

// FormResult aggregates every field verdict of a form.
type FormResult struct {
	IsValid bool
	Errors  map[string]FieldError
}

// Option customises a DefaultValidator.
type Option func(*DefaultValidator)

// WithClock overrides the source of "today".
func WithClock(clock func() time.Time) Option {
	return func(v *DefaultValidator) {
		v.clock = clock
	}
}
