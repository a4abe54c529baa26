package domain

import "time"

// Invoice is a bill raised against a booking, tying together the talent,
// agency, and manager sides of an engagement.
type Invoice struct {
	ID           string    `json:"id"`
	TalentID     string    `json:"talentId"`
	AgencyID     string    `json:"agencyId,omitempty"`
	ManagerID    string    `json:"managerId,omitempty"`
	ClientName   string    `json:"clientName"`
	ClientEmail  string    `json:"clientEmail,omitempty"`
	EventType    string    `json:"eventType,omitempty"`
	EventDate    string    `json:"eventDate,omitempty"`
	BillOption   string    `json:"billOption,omitempty"`
	Fee          int64     `json:"fee"`
	LogisticInfo string    `json:"logisticInfo,omitempty"`
	LogisticFee  int64     `json:"logisticFee"`
	Terms        string    `json:"terms,omitempty"`
	TotalFee     int64     `json:"totalFee"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
