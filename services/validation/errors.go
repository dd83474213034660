package validation

import "fmt"

// ErrorKind classifies why a field failed validation.
type ErrorKind string

const (
	Required       ErrorKind = "Required"
	TooShort       ErrorKind = "TooShort"
	TooFew         ErrorKind = "TooFew"
	TooMany        ErrorKind = "TooMany"
	InvalidFormat  ErrorKind = "InvalidFormat"
	PastDate       ErrorKind = "PastDate"
	UnknownPackage ErrorKind = "UnknownPackage"
)

// FieldError is a validation failure on a single form field. It is returned as data, never raised.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigError reports an unusable validation Config.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid validation config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
