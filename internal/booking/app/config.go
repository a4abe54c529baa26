package app

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Issuer claim stamped into and enforced on every token
	JWTSecret string // HMAC secret for token signing (generated when unset)
	OTPSecret string // HMAC secret for OTP capsules (defaults to JWTSecret)

	AccessTokenTTL   time.Duration // Access token lifetime (default: 30m)
	RefreshTokenTTL  time.Duration // Refresh token lifetime (default: 30 days)
	ResetPasswordTTL time.Duration // Reset-password token lifetime (default: 10m)
	VerifyEmailTTL   time.Duration // Verify-email token lifetime (default: 10m)

	DatabaseFile string // Path to SQLite database file (default: ./castline.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired token sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:    getEnvOrDefault("CASTLINE_ISSUER", "castline-api"),
		JWTSecret: os.Getenv("CASTLINE_JWT_SECRET"),
		OTPSecret: os.Getenv("CASTLINE_OTP_SECRET"),

		AccessTokenTTL:   getEnvDurationOrDefault("CASTLINE_ACCESS_TTL", 30*time.Minute),
		RefreshTokenTTL:  getEnvDurationOrDefault("CASTLINE_REFRESH_TTL", 30*24*time.Hour),
		ResetPasswordTTL: getEnvDurationOrDefault("CASTLINE_RESET_PASSWORD_TTL", 10*time.Minute),
		VerifyEmailTTL:   getEnvDurationOrDefault("CASTLINE_VERIFY_EMAIL_TTL", 10*time.Minute),

		DatabaseFile: getEnvOrDefault("CASTLINE_DATABASE_FILE", "castline.db"),
		PepperFile:   getEnvOrDefault("CASTLINE_PEPPER_FILE", "pepper"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	// An unset signing secret means ephemeral sessions: everything signed
	// before a restart stops verifying after it.
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = randomSecret()
	}
	if cfg.OTPSecret == "" {
		cfg.OTPSecret = cfg.JWTSecret
	}

	return cfg
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("config: unable to generate ephemeral secret: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Durations like "1h", "30m", "90s"; bare integers count as minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
