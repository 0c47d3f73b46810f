package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the portfolio service.
// Environment variables are parsed from the PORTFOLIO_ prefix,
// e.g. PORTFOLIO_HTTP_PORT, PORTFOLIO_ADMIN_PASSWORD.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"3000"`

	// Shared admin secret required by every mutating endpoint. The default
	// mirrors the original deployment; override it anywhere that matters.
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"federica2024"`

	// Store driver: file, sqlite or postgres
	StoreDriver string `envconfig:"STORE_DRIVER" default:"file"`
	DataDir     string `envconfig:"DATA_DIR" default:"data"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/portfolio.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Uploaded images are stored here and served under /uploads/.
	UploadsDir string `envconfig:"UPLOADS_DIR" default:"public/uploads"`

	// Assistant (Gemini) configuration
	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY" default:""`
	GeminiModel   string `envconfig:"GEMINI_MODEL" default:"gemini-3-flash-preview"`
	GeminiBaseURL string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`

	// Per-subscriber event buffer for the refresh broadcast bus.
	EventBuffer int `envconfig:"EVENT_BUFFER" default:"16"`
}

// New creates a Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PORTFOLIO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks driver selection and driver-specific settings.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "file":
		if c.DataDir == "" {
			return fmt.Errorf("PORTFOLIO_DATA_DIR must be set for the file driver")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("PORTFOLIO_SQLITE_PATH must be set for the sqlite driver")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("PORTFOLIO_POSTGRES_DSN must be set for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported PORTFOLIO_STORE_DRIVER: %s", c.StoreDriver)
	}
	if c.EventBuffer <= 0 {
		return fmt.Errorf("PORTFOLIO_EVENT_BUFFER must be positive")
	}
	return nil
}

// GetHTTPAddr returns the HTTP server listen address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// NewForTesting returns a config suitable for unit tests.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:      3000,
		AdminPassword: "test-password",
		StoreDriver:   "file",
		DataDir:       "data",
		SQLitePath:    "data/portfolio.db",
		UploadsDir:    "public/uploads",
		GeminiModel:   "gemini-3-flash-preview",
		GeminiBaseURL: "https://generativelanguage.googleapis.com",
		EventBuffer:   16,
	}
}
