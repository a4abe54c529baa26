package store

import (
	"context"
	"errors"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Page bounds list queries. Zero values fall back to driver defaults.
type Page struct {
	Limit  int
	Offset int
}

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Tokens() Tokens
	Agencies() Agencies
	Managers() Managers
	Talents() Talents
	AgencyManagers() AgencyManagers
	Calendars() Calendars
	Inquiries() Inquiries
	Invoices() Invoices

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., refresh
	// rotation). The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Duplicate email or telephone returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByTelephone(ctx context.Context, telephone string) (domain.User, error)

	ListUsers(ctx context.Context, p Page) ([]domain.User, error)
	CountUsers(ctx context.Context) (int, error)

	// UpdateUser overwrites the mutable profile fields and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	MarkEmailVerified(ctx context.Context, userID string) error
	MarkPhoneVerified(ctx context.Context, userID string) error

	// DeleteUser cascades to tokens and owned profiles (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type Tokens interface {
	// CreateToken stores a new token record keyed by its SHA-256 fingerprint.
	CreateToken(ctx context.Context, t domain.Token) error

	// GetTokenByHash returns the record for a fingerprint and kind.
	GetTokenByHash(ctx context.Context, hash string, kind domain.TokenKind) (domain.Token, error)

	// DeleteTokenByHash removes a single record; ErrNotFound when absent.
	DeleteTokenByHash(ctx context.Context, hash string, kind domain.TokenKind) error

	// DeleteUserTokens purges every record of a kind for a user
	// (single-use consumption, password reset revocation).
	DeleteUserTokens(ctx context.Context, userID string, kind domain.TokenKind) error

	// BlacklistToken flips blacklisted=1 without deleting the record.
	BlacklistToken(ctx context.Context, hash string) error

	// DeleteExpiredTokens is housekeeping: removes records past cutoff.
	DeleteExpiredTokens(ctx context.Context, cutoff time.Time) error
}

type Agencies interface {
	CreateAgency(ctx context.Context, a domain.Agency) error
	GetAgencyByID(ctx context.Context, id string) (domain.Agency, error)
	ListAgencies(ctx context.Context, p Page) ([]domain.Agency, error)
	UpdateAgency(ctx context.Context, a domain.Agency) error
	DeleteAgency(ctx context.Context, id string) error
}

type Managers interface {
	CreateManager(ctx context.Context, m domain.Manager) error
	GetManagerByID(ctx context.Context, id string) (domain.Manager, error)
	ListManagers(ctx context.Context, p Page) ([]domain.Manager, error)
	UpdateManager(ctx context.Context, m domain.Manager) error
	DeleteManager(ctx context.Context, id string) error
}

type Talents interface {
	CreateTalent(ctx context.Context, t domain.Talent) error
	GetTalentByID(ctx context.Context, id string) (domain.Talent, error)
	ListTalents(ctx context.Context, p Page) ([]domain.Talent, error)
	UpdateTalent(ctx context.Context, t domain.Talent) error
	DeleteTalent(ctx context.Context, id string) error
}

type AgencyManagers interface {
	CreateAgencyManager(ctx context.Context, am domain.AgencyManager) error
	GetAgencyManagerByID(ctx context.Context, id string) (domain.AgencyManager, error)
	ListAgencyManagers(ctx context.Context, p Page) ([]domain.AgencyManager, error)
	UpdateAgencyManager(ctx context.Context, am domain.AgencyManager) error
	DeleteAgencyManager(ctx context.Context, id string) error
}

type Calendars interface {
	// CreateCalendar inserts a calendar; a second calendar for the same user
	// returns ErrAlreadyExists (user_id is unique).
	CreateCalendar(ctx context.Context, c domain.Calendar) error

	GetCalendarByID(ctx context.Context, id string) (domain.Calendar, error)
	GetCalendarByUserID(ctx context.Context, userID string) (domain.Calendar, error)
	ListCalendars(ctx context.Context, p Page) ([]domain.Calendar, error)
	UpdateCalendar(ctx context.Context, c domain.Calendar) error
	DeleteCalendar(ctx context.Context, id string) error
}

type Inquiries interface {
	CreateInquiry(ctx context.Context, i domain.Inquiry) error
	GetInquiryByID(ctx context.Context, id string) (domain.Inquiry, error)
	ListInquiries(ctx context.Context, p Page) ([]domain.Inquiry, error)
	ListInquiriesByTalent(ctx context.Context, talentID string, p Page) ([]domain.Inquiry, error)
	UpdateInquiry(ctx context.Context, i domain.Inquiry) error
	DeleteInquiry(ctx context.Context, id string) error
}

type Invoices interface {
	CreateInvoice(ctx context.Context, inv domain.Invoice) error
	GetInvoiceByID(ctx context.Context, id string) (domain.Invoice, error)
	ListInvoices(ctx context.Context, p Page) ([]domain.Invoice, error)
	ListInvoicesByTalent(ctx context.Context, talentID string, p Page) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, inv domain.Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
}
