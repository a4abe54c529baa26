package http

import (
	"net/http"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/httpx"
	"github.com/castlinehq/castline/pkg/jwtx"
)

// OwnerLookup resolves the route's target resource to its owning user id.
// It is the per-resource half of the authorization gate: when a caller's role
// lacks the required capabilities, ownership of the specific resource is the
// only remaining way in.
type OwnerLookup func(r *http.Request) (string, error)

// Gate authenticates bearer access tokens and authorizes requests.
//
// Decision order:
//  1. invalid/missing/expired token, or token for a deleted user → 401
//  2. route requires no capabilities → allow
//  3. caller's role carries every required capability → allow
//  4. ownership fallback (when the route has one) → allow on match
//  5. otherwise → 403
type Gate struct {
	Verifier jwtx.Verifier
	Store    store.Store
	Rights   *domain.Rights
}

// Require enforces authentication plus the given capability set.
func (g *Gate) Require(caps ...domain.Capability) httpx.Middleware {
	return g.RequireOwned(nil, caps...)
}

// RequireOwned is Require with an ownership fallback for the route's resource.
func (g *Gate) RequireOwned(lookup OwnerLookup, caps ...domain.Capability) httpx.Middleware {
	authn := httpx.AuthnMiddleware(g.Verifier)

	authz := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := g.Store.Users().GetUserByID(ctx, httpx.UserIDFromContext(ctx))
			if err != nil {
				writeServiceError(w, r, service.ErrUnauthorized)
				return
			}

			if len(caps) == 0 || g.Rights.HasAll(user.Role, caps) {
				next.ServeHTTP(w, r)
				return
			}

			if lookup != nil {
				if ownerID, err := lookup(r); err == nil && ownerID == user.ID {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeServiceError(w, r, service.ErrForbidden)
		})
	}

	return func(next http.Handler) http.Handler {
		return authn(authz(next))
	}
}

// SelfOwner treats the {id} path segment as the owning user id, so accounts
// can operate on their own user record.
func SelfOwner() OwnerLookup {
	return func(r *http.Request) (string, error) {
		return r.PathValue("id"), nil
	}
}

// AgencyOwner resolves {id} to the agency's owning user.
func AgencyOwner(st store.Store) OwnerLookup {
	return func(r *http.Request) (string, error) {
		a, err := st.Agencies().GetAgencyByID(r.Context(), r.PathValue("id"))
		return a.UserID, err
	}
}

// ManagerOwner resolves {id} to the manager profile's owning user.
func ManagerOwner(st store.Store) OwnerLookup {
	return func(r *http.Request) (string, error) {
		m, err := st.Managers().GetManagerByID(r.Context(), r.PathValue("id"))
		return m.UserID, err
	}
}

// TalentOwner resolves {id} to the talent profile's owning user.
func TalentOwner(st store.Store) OwnerLookup {
	return func(r *http.Request) (string, error) {
		t, err := st.Talents().GetTalentByID(r.Context(), r.PathValue("id"))
		return t.UserID, err
	}
}

// AgencyManagerOwner resolves {id} to the link record's owning user.
func AgencyManagerOwner(st store.Store) OwnerLookup {
	return func(r *http.Request) (string, error) {
		am, err := st.AgencyManagers().GetAgencyManagerByID(r.Context(), r.PathValue("id"))
		return am.UserID, err
	}
}

// CalendarOwner resolves {id} to the calendar's owning user.
func CalendarOwner(st store.Store) OwnerLookup {
	return func(r *http.Request) (string, error) {
		c, err := st.Calendars().GetCalendarByID(r.Context(), r.PathValue("id"))
		return c.UserID, err
	}
}

// InquiryOwner resolves {id} to the inquiry's creator.
func InquiryOwner(st store.Store) OwnerLookup {
	return func(r *http.Request) (string, error) {
		i, err := st.Inquiries().GetInquiryByID(r.Context(), r.PathValue("id"))
		return i.UserID, err
	}
}

// InvoiceOwner resolves {id} through the invoice's talent to its owning user.
func InvoiceOwner(st store.Store) OwnerLookup {
	return func(r *http.Request) (string, error) {
		inv, err := st.Invoices().GetInvoiceByID(r.Context(), r.PathValue("id"))
		if err != nil {
			return "", err
		}
		t, err := st.Talents().GetTalentByID(r.Context(), inv.TalentID)
		return t.UserID, err
	}
}
