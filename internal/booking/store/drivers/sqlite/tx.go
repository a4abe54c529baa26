package sqlite

import (
	"context"
	"database/sql"

	"github.com/castlinehq/castline/internal/booking/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // nothing to close; outer DB stays open

// Ping is a no-op for transactions. The connection is already established
// when the transaction is created, so we just return nil.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                   { return &usersRepo{db: t.tx} }
func (t *txStore) Tokens() store.Tokens                 { return &tokensRepo{db: t.tx} }
func (t *txStore) Agencies() store.Agencies             { return &agenciesRepo{db: t.tx} }
func (t *txStore) Managers() store.Managers             { return &managersRepo{db: t.tx} }
func (t *txStore) Talents() store.Talents               { return &talentsRepo{db: t.tx} }
func (t *txStore) AgencyManagers() store.AgencyManagers { return &agencyManagersRepo{db: t.tx} }
func (t *txStore) Calendars() store.Calendars           { return &calendarsRepo{db: t.tx} }
func (t *txStore) Inquiries() store.Inquiries           { return &inquiriesRepo{db: t.tx} }
func (t *txStore) Invoices() store.Invoices             { return &invoicesRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations run before any tx
