package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/pkg/httpx"
	"github.com/castlinehq/castline/pkg/jwtx"
	"github.com/castlinehq/castline/pkg/slogx"

	_ "github.com/castlinehq/castline/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	gate  *Gate

	AuthService          *service.AuthService
	UserService          *service.UserService
	AgencyService        *service.AgencyService
	ManagerService       *service.ManagerService
	TalentService        *service.TalentService
	AgencyManagerService *service.AgencyManagerService
	CalendarService      *service.CalendarService
	InquiryService       *service.InquiryService
	InvoiceService       *service.InvoiceService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	rights *domain.Rights,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		gate:         &Gate{Verifier: verifier, Store: st, Rights: rights},
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerAgencies()
	r.registerManagers()
	r.registerTalents()
	r.registerAgencyManagers()
	r.registerCalendars()
	r.registerInquiries()
	r.registerInvoices()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Castline Booking Administration API
//	@version		0.1.0
//	@description	Talent-booking agency administration API: accounts, sessions, OTP
//	@description	challenges, and the agency/manager/talent booking entities.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Auth:     r.AuthService,
		Agencies: r.AgencyService,
		Managers: r.ManagerService,
		Talents:  r.TalentService,
	}

	strict := httpx.RateLimitByIP(httpx.StrictLimit)

	r.Mux.Handle("POST /v1/auth/register-as-agency",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterAgency), strict))
	r.Mux.Handle("POST /v1/auth/register-as-manager",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterManager), strict))
	r.Mux.Handle("POST /v1/auth/register-as-talent",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterTalent), strict))

	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), strict))
	r.Mux.Handle("POST /v1/auth/login-with-phone",
		httpx.Chain(http.HandlerFunc(h.HandleLoginWithPhone), strict))

	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("POST /v1/auth/refresh-tokens",
		httpx.Chain(http.HandlerFunc(h.HandleRefreshTokens),
			httpx.RateLimitByIP(httpx.ModerateLimit)))

	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword), strict))
	r.Mux.Handle("POST /v1/auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword), strict))

	r.Mux.Handle("POST /v1/auth/send-verification-email",
		httpx.Chain(http.HandlerFunc(h.HandleSendVerificationEmail),
			r.gate.Require(),
			httpx.RateLimitByUser(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/auth/verify-email",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyEmail), strict))

	r.Mux.Handle("POST /v1/auth/create-otp",
		httpx.Chain(http.HandlerFunc(h.HandleCreateOTP), strict))
	r.Mux.Handle("POST /v1/auth/verify-otp",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyOTP), strict))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Users: r.UserService}
	moderate := httpx.RateLimitByUser(httpx.ModerateLimit)

	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.gate.Require(domain.CapManageUsers), moderate))
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.gate.Require(domain.CapGetUsers), moderate))
	r.Mux.Handle("GET /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.gate.RequireOwned(SelfOwner(), domain.CapGetUsers), moderate))
	r.Mux.Handle("PATCH /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.gate.RequireOwned(SelfOwner(), domain.CapManageUsers), moderate))
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.gate.RequireOwned(SelfOwner(), domain.CapManageUsers), moderate))
}

func (r *Router) registerAgencies() {
	h := &AgenciesHandler{Agencies: r.AgencyService}
	moderate := httpx.RateLimitByUser(httpx.ModerateLimit)
	owner := AgencyOwner(r.store)

	r.Mux.Handle("POST /v1/agencies",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.gate.Require(), moderate))
	r.Mux.Handle("GET /v1/agencies",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.gate.Require(domain.CapGetAgencies), moderate))
	r.Mux.Handle("GET /v1/agencies/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.gate.RequireOwned(owner, domain.CapGetAgencies), moderate))
	r.Mux.Handle("PATCH /v1/agencies/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.gate.RequireOwned(owner, domain.CapManageAgencies), moderate))
	r.Mux.Handle("DELETE /v1/agencies/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.gate.RequireOwned(owner, domain.CapManageAgencies), moderate))
}

func (r *Router) registerManagers() {
	h := &ManagersHandler{Managers: r.ManagerService}
	moderate := httpx.RateLimitByUser(httpx.ModerateLimit)
	owner := ManagerOwner(r.store)

	r.Mux.Handle("POST /v1/managers",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.gate.Require(), moderate))
	r.Mux.Handle("GET /v1/managers",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.gate.Require(domain.CapGetManagers), moderate))
	r.Mux.Handle("GET /v1/managers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.gate.RequireOwned(owner, domain.CapGetManagers), moderate))
	r.Mux.Handle("PATCH /v1/managers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.gate.RequireOwned(owner, domain.CapManageManagers), moderate))
	r.Mux.Handle("DELETE /v1/managers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.gate.RequireOwned(owner, domain.CapManageManagers), moderate))
}

func (r *Router) registerTalents() {
	h := &TalentsHandler{Talents: r.TalentService}
	moderate := httpx.RateLimitByUser(httpx.ModerateLimit)
	owner := TalentOwner(r.store)

	r.Mux.Handle("POST /v1/talents",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.gate.Require(), moderate))
	r.Mux.Handle("GET /v1/talents",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.gate.Require(domain.CapGetTalents), moderate))
	r.Mux.Handle("GET /v1/talents/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.gate.RequireOwned(owner, domain.CapGetTalents), moderate))
	r.Mux.Handle("PATCH /v1/talents/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.gate.RequireOwned(owner, domain.CapManageTalents), moderate))
	r.Mux.Handle("DELETE /v1/talents/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.gate.RequireOwned(owner, domain.CapManageTalents), moderate))
}

func (r *Router) registerAgencyManagers() {
	h := &AgencyManagersHandler{AgencyManagers: r.AgencyManagerService}
	moderate := httpx.RateLimitByUser(httpx.ModerateLimit)
	owner := AgencyManagerOwner(r.store)

	r.Mux.Handle("POST /v1/agency-managers",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.gate.Require(), moderate))
	r.Mux.Handle("GET /v1/agency-managers",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.gate.Require(domain.CapGetAgencyManagers), moderate))
	r.Mux.Handle("GET /v1/agency-managers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.gate.RequireOwned(owner, domain.CapGetAgencyManagers), moderate))
	r.Mux.Handle("PATCH /v1/agency-managers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.gate.RequireOwned(owner, domain.CapManageAgencyManagers), moderate))
	r.Mux.Handle("DELETE /v1/agency-managers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.gate.RequireOwned(owner, domain.CapManageAgencyManagers), moderate))
}

func (r *Router) registerCalendars() {
	h := &CalendarsHandler{Calendars: r.CalendarService}
	moderate := httpx.RateLimitByUser(httpx.ModerateLimit)
	owner := CalendarOwner(r.store)

	r.Mux.Handle("POST /v1/calendars",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.gate.Require(), moderate))
	r.Mux.Handle("GET /v1/calendars",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.gate.Require(domain.CapGetCalendars), moderate))
	r.Mux.Handle("GET /v1/calendars/me",
		httpx.Chain(http.HandlerFunc(h.HandleGetMine), r.gate.Require(), moderate))
	r.Mux.Handle("GET /v1/calendars/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.gate.RequireOwned(owner, domain.CapGetCalendars), moderate))
	r.Mux.Handle("PATCH /v1/calendars/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.gate.RequireOwned(owner, domain.CapManageCalendars), moderate))
	r.Mux.Handle("DELETE /v1/calendars/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.gate.RequireOwned(owner, domain.CapManageCalendars), moderate))
}

func (r *Router) registerInquiries() {
	h := &InquiriesHandler{Inquiries: r.InquiryService}
	moderate := httpx.RateLimitByUser(httpx.ModerateLimit)
	owner := InquiryOwner(r.store)

	r.Mux.Handle("POST /v1/inquiries",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.gate.Require(), moderate))
	r.Mux.Handle("GET /v1/inquiries",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.gate.Require(domain.CapGetInquiries), moderate))
	r.Mux.Handle("GET /v1/inquiries/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.gate.RequireOwned(owner, domain.CapGetInquiries), moderate))
	r.Mux.Handle("PATCH /v1/inquiries/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.gate.RequireOwned(owner, domain.CapManageInquiries), moderate))
	r.Mux.Handle("DELETE /v1/inquiries/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.gate.RequireOwned(owner, domain.CapManageInquiries), moderate))
}

func (r *Router) registerInvoices() {
	h := &InvoicesHandler{Invoices: r.InvoiceService}
	moderate := httpx.RateLimitByUser(httpx.ModerateLimit)
	owner := InvoiceOwner(r.store)

	r.Mux.Handle("POST /v1/invoices",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.gate.Require(), moderate))
	r.Mux.Handle("GET /v1/invoices",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.gate.Require(domain.CapGetInvoices), moderate))
	r.Mux.Handle("GET /v1/invoices/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.gate.RequireOwned(owner, domain.CapGetInvoices), moderate))
	r.Mux.Handle("PATCH /v1/invoices/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.gate.RequireOwned(owner, domain.CapManageInvoices), moderate))
	r.Mux.Handle("DELETE /v1/invoices/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.gate.RequireOwned(owner, domain.CapManageInvoices), moderate))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
