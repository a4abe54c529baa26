package domain

import "time"

// AgencyManager links a manager to an agency on behalf of a user account.
type AgencyManager struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	AgencyID  string    `json:"agencyId"`
	ManagerID string    `json:"managerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
