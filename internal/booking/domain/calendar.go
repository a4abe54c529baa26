package domain

import "time"

// Calendar is a user's event calendar entry. Each user owns at most one
// calendar; creation for a user that already has one fails.
type Calendar struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	EventTitle   string    `json:"eventTitle"`
	Description  string    `json:"description,omitempty"`
	EventVenue   string    `json:"eventVenue,omitempty"`
	EventCity    string    `json:"eventCity,omitempty"`
	EventCountry string    `json:"eventCountry,omitempty"`
	EventDate    string    `json:"eventDate,omitempty"`
	EventTime    string    `json:"eventTime,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
