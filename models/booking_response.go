// models/booking_response.go
package models

// FieldValidation is the verdict for a single form field.
type FieldValidation struct {
	Field   string `json:"field"`
	IsValid bool   `json:"isValid"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// BookingResponse is returned by the JSON booking API.
type BookingResponse struct {
	// Booking is set when the booking was stored.
	Booking *Booking `json:"booking,omitempty"`
	// Errors is set when the form failed validation, keyed by field.
	Errors map[string]FieldValidation `json:"errors,omitempty"`
}

// FormConfig is what the UI needs to build the reservation form.
type FormConfig struct {
	ResortName      string   `json:"resortName"`
	Packages        []string `json:"packages"`
	MinNameLength   int      `json:"minNameLength"`
	MaxParticipants int      `json:"maxParticipants"`
}
