package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/validator"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	JWT      JWTConfig
	Pay      PayPolicy
	Search   SearchConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port         int
	Env          string
	LogLevel     string
	DashboardURL string
}

// UpstreamConfig holds connection settings for the remote HR API.
type UpstreamConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// PayPolicy holds the business constants used to derive pay figures from a
// monthly base salary. These are policy, not math: payroll counts 26 working
// days to a month and an 8 hour standard day unless configured otherwise.
type PayPolicy struct {
	WorkingDaysPerMonth int
	StandardHoursPerDay float64
	OvertimeMultiplier  float64
	ExpectedClockIn     string
	ExpectedClockOut    string
}

// SearchConfig holds roster search behaviour.
type SearchConfig struct {
	DebounceWindow time.Duration
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:         appPort,
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DashboardURL: getEnv("DASHBOARD_URL", "http://localhost:3000"),
	}

	// Upstream HR API configuration
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: getEnv("UPSTREAM_BASE_URL", ""),
		Token:   getEnv("UPSTREAM_API_TOKEN", ""),
		Timeout: upstreamTimeout,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Pay policy configuration
	workingDays, err := strconv.Atoi(getEnv("PAY_WORKING_DAYS_PER_MONTH", "26"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAY_WORKING_DAYS_PER_MONTH: %w", err)
	}

	standardHours, err := strconv.ParseFloat(getEnv("PAY_STANDARD_HOURS_PER_DAY", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAY_STANDARD_HOURS_PER_DAY: %w", err)
	}

	overtimeMultiplier, err := strconv.ParseFloat(getEnv("PAY_OVERTIME_MULTIPLIER", "1.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAY_OVERTIME_MULTIPLIER: %w", err)
	}

	config.Pay = PayPolicy{
		WorkingDaysPerMonth: workingDays,
		StandardHoursPerDay: standardHours,
		OvertimeMultiplier:  overtimeMultiplier,
		ExpectedClockIn:     getEnv("PAY_EXPECTED_CLOCK_IN", "09:00:00"),
		ExpectedClockOut:    getEnv("PAY_EXPECTED_CLOCK_OUT", "18:00:00"),
	}

	// Search configuration
	debounceWindow, err := time.ParseDuration(getEnv("SEARCH_DEBOUNCE_WINDOW", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_DEBOUNCE_WINDOW: %w", err)
	}
	config.Search = SearchConfig{DebounceWindow: debounceWindow}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if validator.IsEmpty(c.Upstream.BaseURL) {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if validator.IsEmpty(c.Upstream.Token) {
		return fmt.Errorf("UPSTREAM_API_TOKEN is required")
	}
	if validator.IsEmpty(c.JWT.Secret) {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, ok := validator.IsValidClock(c.Pay.ExpectedClockIn); !ok {
		return fmt.Errorf("PAY_EXPECTED_CLOCK_IN must be an HH:MM:SS clock")
	}
	if _, ok := validator.IsValidClock(c.Pay.ExpectedClockOut); !ok {
		return fmt.Errorf("PAY_EXPECTED_CLOCK_OUT must be an HH:MM:SS clock")
	}
	if c.Pay.WorkingDaysPerMonth <= 0 {
		return fmt.Errorf("PAY_WORKING_DAYS_PER_MONTH must be positive")
	}
	if c.Pay.StandardHoursPerDay <= 0 {
		return fmt.Errorf("PAY_STANDARD_HOURS_PER_DAY must be positive")
	}
	if c.Pay.OvertimeMultiplier < 1 {
		return fmt.Errorf("PAY_OVERTIME_MULTIPLIER must be at least 1")
	}
	if c.Search.DebounceWindow <= 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_WINDOW must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
