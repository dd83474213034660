package display

import (
	"time"

	"jiperaha/models"
)

// LongDateLayout renders stay dates for guests.
const LongDateLayout = "Monday, January 2, 2006"

// EmptyMessage is shown when no bookings exist.
const EmptyMessage = "No bookings found. Please make a reservation."

// Card is one booking prepared for the bookings page.
type Card struct {
	ID           int64
	Name         string
	Email        string
	Date         string
	LongDate     string
	Package      string
	Participants int
	Requests     string
	Timestamp    string
}

// Page is the view model of the bookings page.
type Page struct {
	Cards   []Card
	Summary *Card
	Empty   bool
	Total   int
}

// NewestFirst returns a reversed copy of bookings. The input is left untouched.
func NewestFirst(bookings []models.Booking) []models.Booking {
	out := make([]models.Booking, len(bookings))
	for i, b := range bookings {
		out[len(bookings)-1-i] = b
	}
	return out
}

// LongDate formats an ISO date as e.g. "Wednesday, March 11, 2026".
// Values that do not parse are returned unchanged.
func LongDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format(LongDateLayout)
}

// NewCard converts a stored booking for display.
func NewCard(b models.Booking) Card {
	return Card{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Date:         b.Date,
		LongDate:     LongDate(b.Date),
		Package:      b.Package,
		Participants: b.Participants,
		Requests:     b.Requests,
		Timestamp:    b.Timestamp,
	}
}

// BuildPage orders bookings newest first and picks the last inserted one as the summary.
func BuildPage(bookings []models.Booking) Page {
	page := Page{Total: len(bookings), Empty: len(bookings) == 0}
	if page.Empty {
		return page
	}

	for _, b := range NewestFirst(bookings) {
		page.Cards = append(page.Cards, NewCard(b))
	}
	summary := NewCard(bookings[len(bookings)-1])
	page.Summary = &summary
	return page
}
