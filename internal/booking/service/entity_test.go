package service

import (
	"context"
	"testing"
	"time"

	"github.com/castlinehq/castline/internal/booking/calendarsync"
	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/internal/booking/store/drivers/sqlite"
	"github.com/castlinehq/castline/pkg/cryptox"
	"github.com/castlinehq/castline/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	now := time.Now()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

type recordingScheduler struct {
	events []calendarsync.Event
}

func (r *recordingScheduler) ScheduleEvent(_ context.Context, ev calendarsync.Event) error {
	r.events = append(r.events, ev)
	return nil
}

func TestCalendarIsUniquePerUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedUser(t, st, "alice@example.com")

	sched := &recordingScheduler{}
	svc := &CalendarService{Store: st, Scheduler: sched}

	created, err := svc.Create(ctx, domain.Calendar{UserID: user.ID, EventTitle: "Launch Party"})
	require.NoError(t, err)
	require.Len(t, sched.events, 1)
	require.Equal(t, created.ID, sched.events[0].CalendarID)

	_, err = svc.Create(ctx, domain.Calendar{UserID: user.ID, EventTitle: "Second"})
	require.ErrorIs(t, err, ErrCalendarExists)

	byUser, err := svc.GetByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, byUser.ID)
}

func TestInquiryRequiresExistingTalent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedUser(t, st, "alice@example.com")

	inquiries := &InquiryService{Store: st}
	_, err := inquiries.Create(ctx, domain.Inquiry{UserID: user.ID, TalentID: idx.New().String()})
	require.ErrorIs(t, err, ErrNotFound)

	talents := &TalentService{Store: st}
	talent, err := talents.Create(ctx, domain.Talent{UserID: user.ID, StageName: "DJ Nova"})
	require.NoError(t, err)

	created, err := inquiries.Create(ctx, domain.Inquiry{UserID: user.ID, TalentID: talent.ID})
	require.NoError(t, err)
	require.Equal(t, domain.InquiryPending, created.Status)

	byTalent, err := inquiries.ListByTalent(ctx, talent.ID, store.Page{})
	require.NoError(t, err)
	require.Len(t, byTalent, 1)
}

func TestInvoiceDerivesTotalFee(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedUser(t, st, "alice@example.com")

	talents := &TalentService{Store: st}
	talent, err := talents.Create(ctx, domain.Talent{UserID: user.ID, StageName: "DJ Nova"})
	require.NoError(t, err)

	invoices := &InvoiceService{Store: st}
	inv, err := invoices.Create(ctx, domain.Invoice{
		TalentID:    talent.ID,
		ClientName:  "Acme Corp",
		Fee:         50000,
		LogisticFee: 7500,
	})
	require.NoError(t, err)
	require.EqualValues(t, 57500, inv.TotalFee)
}

func TestUserServiceUpdateRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice@example.com")
	bob := seedUser(t, st, "bob@example.com")

	users := &UserService{Store: st}
	taken := "alice@example.com"
	_, err := users.Update(ctx, bob.ID, UpdateUserInput{Email: &taken})
	require.ErrorIs(t, err, ErrEmailTaken)

	// Keeping your own email is not a conflict.
	keep := "bob@example.com"
	_, err = users.Update(ctx, bob.ID, UpdateUserInput{Email: &keep})
	require.NoError(t, err)
}

func TestUserServiceDeleteCascadesTokens(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedUser(t, st, "alice@example.com")

	record := domain.Token{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken("some-refresh-token"),
		Kind:      domain.TokenRefresh,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, st.Tokens().CreateToken(ctx, record))

	users := &UserService{Store: st}
	require.NoError(t, users.Delete(ctx, user.ID))

	_, err := st.Tokens().GetTokenByHash(ctx, record.TokenHash, domain.TokenRefresh)
	require.ErrorIs(t, err, store.ErrNotFound)
}
