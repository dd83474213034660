package models

// RequestsNone is stored when a booking is created without special requests.
const RequestsNone = "None"

// Booking represents a confirmed resort reservation. Records are immutable once stored.
type Booking struct {
	ID           int64  `json:"id"`           // Creation time in ms, bumped to stay unique
	Name         string `json:"name"`         // Guest full name
	Email        string `json:"email"`        // Contact email
	Date         string `json:"date"`         // Stay date in "YYYY-MM-DD" format
	Package      string `json:"package"`      // Selected resort package
	Participants int    `json:"participants"` // Number of guests
	Requests     string `json:"requests"`     // Free text, RequestsNone when blank
	Timestamp    string `json:"timestamp"`    // Human-readable creation time
}
