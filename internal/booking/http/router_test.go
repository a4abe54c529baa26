package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/castlinehq/castline/internal/booking/calendarsync"
	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/notify"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/internal/booking/store/drivers/sqlite"
	"github.com/castlinehq/castline/pkg/cryptox"
	"github.com/castlinehq/castline/pkg/idx"
	"github.com/castlinehq/castline/pkg/jwtx"
	"github.com/castlinehq/castline/pkg/otpx"
)

const testOTPSecret = "test-otp-secret"

func newTestRouter(t *testing.T) (*Router, *service.TokenService, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens := &service.TokenService{
		JWT:              jwtx.NewHS256([]byte("test-secret"), "test-issuer"),
		Store:            st,
		Issuer:           "test-issuer",
		AccessTTL:        30 * time.Minute,
		RefreshTTL:       30 * 24 * time.Hour,
		ResetPasswordTTL: 10 * time.Minute,
		VerifyEmailTTL:   10 * time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(tokens.JWT, "test", st, domain.DefaultRights(), logger)

	r.AuthService = &service.AuthService{
		Store:  st,
		Tokens: tokens,
		OTP:    &otpx.Engine{Secret: []byte(testOTPSecret)},
		Mailer: notify.LogMailer{},
		SMS:    notify.LogSMSSender{},
	}
	r.UserService = &service.UserService{Store: st}
	r.AgencyService = &service.AgencyService{Store: st}
	r.ManagerService = &service.ManagerService{Store: st}
	r.TalentService = &service.TalentService{Store: st}
	r.AgencyManagerService = &service.AgencyManagerService{Store: st}
	r.CalendarService = &service.CalendarService{Store: st, Scheduler: calendarsync.LogScheduler{}}
	r.InquiryService = &service.InquiryService{Store: st}
	r.InvoiceService = &service.InvoiceService{Store: st}

	r.ApplyRoutes()
	return r, tokens, st
}

func seedRouterUser(t *testing.T, st store.Store, role domain.Role, email, telephone string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword("password123")
	require.NoError(t, err)

	now := time.Now()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Telephone:    telephone,
		PasswordHash: hash,
		FullName:     "Test User",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func accessTokenFor(t *testing.T, tokens *service.TokenService, user domain.User) string {
	t.Helper()
	pair, err := tokens.IssueAuthTokens(context.Background(), user)
	require.NoError(t, err)
	return pair.Access.Token
}

// reqSeq gives every test request its own client IP so the per-IP rate
// limiters never interfere with the assertions under test.
var reqSeq int

func doJSON(t *testing.T, r *Router, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	reqSeq++
	req.Header.Set("X-Forwarded-For", "10.1."+strconv.Itoa(reqSeq/250)+"."+strconv.Itoa(reqSeq%250))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	r, _, st := newTestRouter(t)

	w := doJSON(t, r, "POST", "/v1/auth/register-as-talent", "", map[string]any{
		"email":     "talent@example.com",
		"password":  "password123",
		"fullName":  "Nina Ode",
		"stageName": "Nina O",
		"category":  "Music",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reg authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	require.Equal(t, domain.RoleTalent, reg.User.Role)
	require.NotEmpty(t, reg.Tokens.Access.Token)
	require.NotEmpty(t, reg.Tokens.Refresh.Token)

	// The registration also created the talent profile.
	talents, err := st.Talents().ListTalents(context.Background(), store.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, talents, 1)
	require.Equal(t, reg.User.ID, talents[0].UserID)
	require.Equal(t, "Nina O", talents[0].StageName)

	w = doJSON(t, r, "POST", "/v1/auth/login", "", map[string]any{
		"email":    "Talent@Example.com", // case-folded on the way in
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/v1/auth/login", "", map[string]any{
		"email":    "talent@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Incorrect email or password", decodeError(t, w).Message)
}

func TestGateRejectsBadTokens(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, "GET", "/v1/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Please authenticate", decodeError(t, w).Message)

	w = doJSON(t, r, "GET", "/v1/users", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Please authenticate", decodeError(t, w).Message)
}

func TestGateRejectsRefreshTokenAsBearer(t *testing.T) {
	r, tokens, st := newTestRouter(t)
	user := seedRouterUser(t, st, domain.RoleTalent, "ref@example.com", "")

	pair, err := tokens.IssueAuthTokens(context.Background(), user)
	require.NoError(t, err)

	w := doJSON(t, r, "GET", "/v1/users/"+user.ID, pair.Refresh.Token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Please authenticate", decodeError(t, w).Message)
}

func TestGateCapabilitiesAndOwnership(t *testing.T) {
	r, tokens, st := newTestRouter(t)

	admin := seedRouterUser(t, st, domain.RoleAdmin, "admin@example.com", "")
	alice := seedRouterUser(t, st, domain.RoleTalent, "alice@example.com", "")
	bob := seedRouterUser(t, st, domain.RoleTalent, "bob@example.com", "")

	adminTok := accessTokenFor(t, tokens, admin)
	aliceTok := accessTokenFor(t, tokens, alice)

	// Admin carries getUsers and may list.
	w := doJSON(t, r, "GET", "/v1/users", adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// A talent cannot list users...
	w = doJSON(t, r, "GET", "/v1/users", aliceTok, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Forbidden", decodeError(t, w).Message)

	// ...but reaches their own record through the ownership fallback.
	w = doJSON(t, r, "GET", "/v1/users/"+alice.ID, aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Someone else's record stays out of reach.
	w = doJSON(t, r, "GET", "/v1/users/"+bob.ID, aliceTok, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Admin reads anyone.
	w = doJSON(t, r, "GET", "/v1/users/"+bob.ID, adminTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGateEntityOwnershipFallback(t *testing.T) {
	r, tokens, st := newTestRouter(t)

	owner := seedRouterUser(t, st, domain.RoleAgency, "owner@example.com", "")
	stranger := seedRouterUser(t, st, domain.RoleAgency, "stranger@example.com", "")
	admin := seedRouterUser(t, st, domain.RoleAdmin, "root@example.com", "")

	ownerTok := accessTokenFor(t, tokens, owner)
	strangerTok := accessTokenFor(t, tokens, stranger)
	adminTok := accessTokenFor(t, tokens, admin)

	// Any authenticated account may create its own profile.
	w := doJSON(t, r, "POST", "/v1/agencies", ownerTok, map[string]any{
		"agencyName": "Northside Talent",
		"country":    "AU",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var agency domain.Agency
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agency))
	require.Equal(t, owner.ID, agency.UserID)

	update := map[string]any{"agencyName": "Northside Talent Group"}

	w = doJSON(t, r, "PATCH", "/v1/agencies/"+agency.ID, strangerTok, update)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "PATCH", "/v1/agencies/"+agency.ID, ownerTok, update)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "PATCH", "/v1/agencies/"+agency.ID, adminTok, update)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshRotationAndLogout(t *testing.T) {
	r, _, st := newTestRouter(t)
	seedRouterUser(t, st, domain.RoleTalent, "session@example.com", "")

	w := doJSON(t, r, "POST", "/v1/auth/login", "", map[string]any{
		"email":    "session@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	oldRefresh := login.Tokens.Refresh.Token

	// Rotate: the old refresh token is spent.
	w = doJSON(t, r, "POST", "/v1/auth/refresh-tokens", "", map[string]any{
		"refreshToken": oldRefresh,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var pair domain.TokenPair
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	require.NotEqual(t, oldRefresh, pair.Refresh.Token)

	w = doJSON(t, r, "POST", "/v1/auth/refresh-tokens", "", map[string]any{
		"refreshToken": oldRefresh,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Please authenticate", decodeError(t, w).Message)

	// Logout kills the live session; a second logout has nothing to revoke.
	w = doJSON(t, r, "POST", "/v1/auth/logout", "", map[string]any{
		"refreshToken": pair.Refresh.Token,
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, "POST", "/v1/auth/logout", "", map[string]any{
		"refreshToken": pair.Refresh.Token,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Not found", decodeError(t, w).Message)
}

func TestOTPEndpoints(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, "POST", "/v1/auth/create-otp", "", map[string]any{
		"telephone": "+61412345678",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var challenge createOTPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &challenge))
	require.NotEmpty(t, challenge.Capsule)
	require.Greater(t, challenge.ExpiresAt, time.Now().UnixMilli())

	// The code never appears in the response, so a guess must fail.
	w = doJSON(t, r, "POST", "/v1/auth/verify-otp", "", map[string]any{
		"telephone": "+61412345678",
		"otp":       "0000",
		"capsule":   challenge.Capsule,
	})
	if w.Code != http.StatusNoContent { // 1-in-10000 lucky guess
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Invalid OTP", decodeError(t, w).Message)
	}

	// A stale capsule reports expiry before anything else.
	past := time.Now().Add(-time.Hour)
	engine := &otpx.Engine{Secret: []byte(testOTPSecret), Now: func() time.Time { return past }}
	stale, err := engine.CreateChallenge("+61412345678")
	require.NoError(t, err)

	w = doJSON(t, r, "POST", "/v1/auth/verify-otp", "", map[string]any{
		"telephone": "+61412345678",
		"otp":       stale.Code,
		"capsule":   stale.Capsule,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "OTP expired", decodeError(t, w).Message)
}

func TestCalendarRoutes(t *testing.T) {
	r, tokens, st := newTestRouter(t)
	user := seedRouterUser(t, st, domain.RoleTalent, "cal@example.com", "")
	tok := accessTokenFor(t, tokens, user)

	w := doJSON(t, r, "POST", "/v1/calendars", tok, map[string]any{
		"eventTitle": "Album launch",
		"eventCity":  "Sydney",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// One calendar per account.
	w = doJSON(t, r, "POST", "/v1/calendars", tok, map[string]any{
		"eventTitle": "Second calendar",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Calendar already exists", decodeError(t, w).Message)

	w = doJSON(t, r, "GET", "/v1/calendars/me", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cal domain.Calendar
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cal))
	require.Equal(t, user.ID, cal.UserID)
	require.Equal(t, "Album launch", cal.EventTitle)
}

func TestHealthEndpoints(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, "GET", "/livez", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/readyz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health healthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
