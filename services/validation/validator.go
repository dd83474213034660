package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"jiperaha/models"

	playground "github.com/go-playground/validator/v10"
	"github.com/jinzhu/now"
)

// Field names understood by ValidateField.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldDate         = "date"
	FieldPackage      = "package"
	FieldParticipants = "participants"
	FieldRequests     = "requests"
)

// DateLayout is the ISO date format submitted by the date input.
const DateLayout = "2006-01-02"

// formFields are validated by ValidateForm, in display order.
var formFields = []string{FieldName, FieldEmail, FieldDate, FieldPackage, FieldParticipants}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var configValidate = playground.New()

// DefaultValidator implements Validator.
type DefaultValidator struct {
	cfg      Config
	packages map[string]struct{}
	clock    func() time.Time
}

// NewValidator returns a DefaultValidator after checking cfg.
func NewValidator(cfg Config, opts ...Option) (*DefaultValidator, error) {
	if err := configValidate.Struct(cfg); err != nil {
		return nil, &ConfigError{Err: err}
	}

	v := &DefaultValidator{
		cfg:   cfg,
		clock: time.Now,
	}
	if len(cfg.Packages) > 0 {
		v.packages = make(map[string]struct{}, len(cfg.Packages))
		for _, p := range cfg.Packages {
			v.packages[p] = struct{}{}
		}
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

func (v *DefaultValidator) Config() Config {
	return v.cfg
}

// ValidateField dispatches on field. Unknown fields are treated as required text.
func (v *DefaultValidator) ValidateField(field, raw string) FieldResult {
	switch field {
	case FieldName:
		return v.validateName(raw)
	case FieldEmail:
		return validateEmail(raw)
	case FieldDate:
		return v.validateDate(raw)
	case FieldParticipants:
		return v.validateParticipants(raw)
	case FieldPackage:
		return v.validatePackage(raw)
	case FieldRequests:
		return valid()
	default:
		if raw == "" {
			return invalid(Required, "This field is required.")
		}
		return valid()
	}
}

// ValidateForm validates every form field. It does not stop at the first failure.
func (v *DefaultValidator) ValidateForm(form models.BookingForm) FormResult {
	values := form.Fields()
	result := FormResult{IsValid: true, Errors: make(map[string]FieldError)}

	for _, field := range formFields {
		r := v.ValidateField(field, values[field])
		if r.IsValid {
			continue
		}
		result.IsValid = false
		result.Errors[field] = FieldError{Field: field, Kind: r.Kind, Message: r.Message}
	}
	return result
}

func (v *DefaultValidator) validateName(raw string) FieldResult {
	if raw == "" {
		return invalid(Required, "Full name is required.")
	}
	if utf8.RuneCountInString(raw) < v.cfg.MinNameLength {
		return invalid(TooShort, fmt.Sprintf("Name must be at least %d characters.", v.cfg.MinNameLength))
	}
	return valid()
}

func validateEmail(raw string) FieldResult {
	if raw == "" {
		return invalid(Required, "Email address is required.")
	}
	if !emailPattern.MatchString(raw) {
		return invalid(InvalidFormat, "Please enter a valid email address (e.g., user@example.com).")
	}
	return valid()
}

func (v *DefaultValidator) validateDate(raw string) FieldResult {
	if raw == "" {
		return invalid(Required, "Please select your preferred date.")
	}
	today := now.With(v.clock()).BeginningOfDay()
	date, err := time.ParseInLocation(DateLayout, raw, today.Location())
	if err != nil {
		return invalid(InvalidFormat, "Please enter the date as YYYY-MM-DD.")
	}
	if date.Before(today) {
		return invalid(PastDate, "Please select a future date.")
	}
	return valid()
}

// validateParticipants treats unparsable input as fewer than one participant.
func (v *DefaultValidator) validateParticipants(raw string) FieldResult {
	if raw == "" {
		return invalid(Required, "Number of participants is required.")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return invalid(TooFew, "At least one participant is required.")
	}
	if n > v.cfg.MaxParticipants {
		return invalid(TooMany, fmt.Sprintf("Maximum %d participants allowed.", v.cfg.MaxParticipants))
	}
	return valid()
}

func (v *DefaultValidator) validatePackage(raw string) FieldResult {
	if raw == "" {
		return invalid(Required, "Please select a package.")
	}
	if v.packages != nil {
		if _, ok := v.packages[raw]; !ok {
			return invalid(UnknownPackage, "Please select one of the available packages.")
		}
	}
	return valid()
}

func valid() FieldResult {
	return FieldResult{IsValid: true}
}

func invalid(kind ErrorKind, msg string) FieldResult {
	return FieldResult{Kind: kind, Message: msg}
}
