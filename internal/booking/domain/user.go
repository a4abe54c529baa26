package domain

import "time"

// Role is the account role assigned at registration. It decides which
// capability set (if any) the account carries; see rights.go.
type Role string

const (
	RoleAgency        Role = "AGENCY"
	RoleManager       Role = "MANAGER"
	RoleTalent        Role = "TALENT"
	RoleAgencyManager Role = "AGENCYMANAGER"
	RoleUser          Role = "USER"
	RoleAdmin         Role = "ADMIN"
)

// Roles lists every valid role, for validation at the boundary.
var Roles = []Role{RoleAgency, RoleManager, RoleTalent, RoleAgencyManager, RoleUser, RoleAdmin}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is the identity record. Email and Telephone are each optional but
// unique when present; at least one must be set so the account can log in.
// PasswordHash is never serialized.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email,omitempty"`
	Telephone       string    `json:"telephone,omitempty"`
	PasswordHash    string    `json:"-"`
	FullName        string    `json:"fullName,omitempty"`
	MobileNumber    string    `json:"mobileNumber,omitempty"`
	Role            Role      `json:"role"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	IsPhoneVerified bool      `json:"isPhoneVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
