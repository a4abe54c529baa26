package domain

import "time"

// Manager is a talent manager profile, optionally attached to an agency.
type Manager struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	AgencyID   string    `json:"agencyId,omitempty"`
	AgencyName string    `json:"agencyName,omitempty"`
	RegNumber  string    `json:"regNumber,omitempty"`
	Industry   string    `json:"industry,omitempty"`
	Address    string    `json:"address,omitempty"`
	State      string    `json:"state,omitempty"`
	Country    string    `json:"country,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
