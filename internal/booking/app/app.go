package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/castlinehq/castline/internal/booking/calendarsync"
	"github.com/castlinehq/castline/internal/booking/domain"
	httpapi "github.com/castlinehq/castline/internal/booking/http"
	"github.com/castlinehq/castline/internal/booking/notify"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/internal/booking/store"
	"github.com/castlinehq/castline/internal/booking/store/drivers/sqlite"
	"github.com/castlinehq/castline/pkg/cryptox"
	"github.com/castlinehq/castline/pkg/jwtx"
	"github.com/castlinehq/castline/pkg/otpx"
	"github.com/castlinehq/castline/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the booking API with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db  store.Store
	jwt *jwtx.HS256

	// Services
	tokenService         *service.TokenService
	authService          *service.AuthService
	userService          *service.UserService
	agencyService        *service.AgencyService
	managerService       *service.ManagerService
	talentService        *service.TalentService
	agencyManagerService *service.AgencyManagerService
	calendarService      *service.CalendarService
	inquiryService       *service.InquiryService
	invoiceService       *service.InvoiceService
	housekeepingService  *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "booking-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.jwt = jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("booking api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down booking api...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("booking api stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		JWT:              app.jwt,
		Store:            app.db,
		Issuer:           app.cfg.Issuer,
		AccessTTL:        app.cfg.AccessTokenTTL,
		RefreshTTL:       app.cfg.RefreshTokenTTL,
		ResetPasswordTTL: app.cfg.ResetPasswordTTL,
		VerifyEmailTTL:   app.cfg.VerifyEmailTTL,
	}

	app.authService = &service.AuthService{
		Store:  app.db,
		Tokens: app.tokenService,
		OTP:    &otpx.Engine{Secret: []byte(app.cfg.OTPSecret)},
		Mailer: notify.LogMailer{},
		SMS:    notify.LogSMSSender{},
	}

	app.userService = &service.UserService{Store: app.db}
	app.agencyService = &service.AgencyService{Store: app.db}
	app.managerService = &service.ManagerService{Store: app.db}
	app.talentService = &service.TalentService{Store: app.db}
	app.agencyManagerService = &service.AgencyManagerService{Store: app.db}
	app.calendarService = &service.CalendarService{
		Store:     app.db,
		Scheduler: calendarsync.LogScheduler{},
	}
	app.inquiryService = &service.InquiryService{Store: app.db}
	app.invoiceService = &service.InvoiceService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.jwt,
		BuildVersion,
		app.db,
		domain.DefaultRights(),
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.AgencyService = app.agencyService
	router.ManagerService = app.managerService
	router.TalentService = app.talentService
	router.AgencyManagerService = app.agencyManagerService
	router.CalendarService = app.calendarService
	router.InquiryService = app.inquiryService
	router.InvoiceService = app.invoiceService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
