package domain

import "time"

// Agency is a booking agency profile owned by a user account.
type Agency struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	AgencyName string    `json:"agencyName"`
	RegNumber  string    `json:"regNumber,omitempty"`
	Industry   string    `json:"industry,omitempty"`
	Address    string    `json:"address,omitempty"`
	State      string    `json:"state,omitempty"`
	Country    string    `json:"country,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
