package domain

// Capability names a right that a role can carry. Routes declare which
// capabilities they require; the authorization gate checks them against the
// caller's role before falling back to resource ownership.
type Capability string

const (
	CapGetUsers             Capability = "getUsers"
	CapManageUsers          Capability = "manageUsers"
	CapGetAgencies          Capability = "getAgencies"
	CapManageAgencies       Capability = "manageAgencies"
	CapGetManagers          Capability = "getManagers"
	CapManageManagers       Capability = "manageManagers"
	CapGetTalents           Capability = "getTalents"
	CapManageTalents        Capability = "manageTalents"
	CapGetAgencyManagers    Capability = "getAgencyManagers"
	CapManageAgencyManagers Capability = "manageAgencyManagers"
	CapGetCalendars         Capability = "getCalendars"
	CapManageCalendars      Capability = "manageCalendars"
	CapGetInquiries         Capability = "getInquiries"
	CapManageInquiries      Capability = "manageInquiries"
	CapGetInvoices          Capability = "getInvoices"
	CapManageInvoices       Capability = "manageInvoices"
)

// Rights is the immutable role→capability table, built once at startup and
// passed to the gate. A role absent from the table carries no capabilities;
// a capability absent from a role's set is a deny. Non-admin roles rely
// purely on resource-ownership checks.
type Rights struct {
	byRole map[Role][]Capability
}

// DefaultRights returns the standard table: only ADMIN carries capabilities.
func DefaultRights() *Rights {
	return NewRights(map[Role][]Capability{
		RoleAdmin: {
			CapGetUsers, CapManageUsers,
			CapGetAgencies, CapManageAgencies,
			CapGetManagers, CapManageManagers,
			CapGetTalents, CapManageTalents,
			CapGetAgencyManagers, CapManageAgencyManagers,
			CapGetCalendars, CapManageCalendars,
			CapGetInquiries, CapManageInquiries,
			CapGetInvoices, CapManageInvoices,
		},
	})
}

// NewRights copies the given table so later mutation of the argument cannot
// leak into the gate.
func NewRights(table map[Role][]Capability) *Rights {
	byRole := make(map[Role][]Capability, len(table))
	for role, caps := range table {
		byRole[role] = append([]Capability(nil), caps...)
	}
	return &Rights{byRole: byRole}
}

// HasAll reports whether the role carries every required capability.
// An empty required list is vacuously true.
func (r *Rights) HasAll(role Role, required []Capability) bool {
	caps := r.byRole[role]
	have := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		have[c] = struct{}{}
	}
	for _, req := range required {
		if _, ok := have[req]; !ok {
			return false
		}
	}
	return true
}

// CapabilitiesFor returns a copy of the role's capability set.
func (r *Rights) CapabilitiesFor(role Role) []Capability {
	return append([]Capability(nil), r.byRole[role]...)
}
