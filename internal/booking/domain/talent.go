package domain

import "time"

// Talent is a performer profile owned by a user account.
type Talent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StageName string    `json:"stageName"`
	Category  string    `json:"category,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	FeeRange  string    `json:"feeRange,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
