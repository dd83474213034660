package models

import "strings"

// BookingForm holds the raw values submitted from the reservation form.
type BookingForm struct {
	Name         string `form:"name" json:"name"`
	Email        string `form:"email" json:"email"`
	Date         string `form:"date" json:"date"`
	Package      string `form:"package" json:"package"`
	Participants string `form:"participants" json:"participants"`
	Requests     string `form:"requests" json:"requests"`
}

// Normalized trims surrounding whitespace from the text fields. Date is taken as submitted.
func (f BookingForm) Normalized() BookingForm {
	return BookingForm{
		Name:         NormalizeField("name", f.Name),
		Email:        NormalizeField("email", f.Email),
		Date:         NormalizeField("date", f.Date),
		Package:      NormalizeField("package", f.Package),
		Participants: NormalizeField("participants", f.Participants),
		Requests:     NormalizeField("requests", f.Requests),
	}
}

// NormalizeField applies the Normalized rule to a single field value.
func NormalizeField(field, value string) string {
	switch field {
	case "date", "package":
		return value
	default:
		return strings.TrimSpace(value)
	}
}

// Fields returns the form as a field-name keyed map.
func (f BookingForm) Fields() map[string]string {
	return map[string]string{
		"name":         f.Name,
		"email":        f.Email,
		"date":         f.Date,
		"package":      f.Package,
		"participants": f.Participants,
		"requests":     f.Requests,
	}
}
