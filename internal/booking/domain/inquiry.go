package domain

import "time"

// InquiryStatus tracks the lifecycle of a booking inquiry.
type InquiryStatus string

const (
	InquiryPending  InquiryStatus = "PENDING"
	InquiryAccepted InquiryStatus = "ACCEPTED"
	InquiryDeclined InquiryStatus = "DECLINED"
)

// Inquiry is a booking request from a user for a talent.
type Inquiry struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	TalentID  string        `json:"talentId"`
	EventType string        `json:"eventType,omitempty"`
	EventDate string        `json:"eventDate,omitempty"`
	Venue     string        `json:"venue,omitempty"`
	City      string        `json:"city,omitempty"`
	Country   string        `json:"country,omitempty"`
	Budget    string        `json:"budget,omitempty"`
	Message   string        `json:"message,omitempty"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
