package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Plaid bank feed
	PlaidClientID    string
	PlaidSecret      string
	PlaidAccessToken string
	PlaidEnvironment string

	// Google Sheets expense log
	GoogleSpreadsheetID      string
	GoogleSheetName          string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string

	// Revenue simulation
	RevenueSampleCount int

	// Render pipeline
	FetchTimeout   time.Duration
	LedgerCacheTTL time.Duration

	// Backend selection ("live" or "memory")
	DataBackend string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		PlaidClientID:    getEnv("PLAID_CLIENT_ID", ""),
		PlaidSecret:      getEnv("PLAID_SECRET", ""),
		PlaidAccessToken: getEnv("PLAID_ACCESS_TOKEN", ""),
		PlaidEnvironment: getEnv("PLAID_ENV", "sandbox"),

		GoogleSpreadsheetID:      getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:          getEnv("GOOGLE_SHEET_NAME", ""),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),

		RevenueSampleCount: getEnvInt("REVENUE_SAMPLE_COUNT", 40),

		FetchTimeout:   getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		LedgerCacheTTL: getEnvDuration("LEDGER_CACHE_TTL", 30*time.Second),

		DataBackend: getEnv("DATA_BACKEND", "live"),
	}
}

// HasPlaid reports whether the Plaid adapter can be constructed. Missing
// credentials degrade that source, they never fail startup.
func (c *Config) HasPlaid() bool {
	return c.PlaidClientID != "" && c.PlaidSecret != "" && c.PlaidAccessToken != ""
}

// HasSheets reports whether the spreadsheet adapter can be constructed.
func (c *Config) HasSheets() bool {
	return c.GoogleSpreadsheetID != "" &&
		(c.GoogleServiceAccountJSON != "" || c.GoogleServiceAccountFile != "")
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate backend selection
	switch c.DataBackend {
	case "live", "memory":
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [live memory]", c.DataBackend))
	}

	// Validate Plaid environment
	switch strings.ToLower(c.PlaidEnvironment) {
	case "sandbox", "production":
	default:
		errors = append(errors, fmt.Sprintf("invalid Plaid environment '%s': must be 'sandbox' or 'production'", c.PlaidEnvironment))
	}

	// Check the service account file exists (if specified)
	if c.GoogleServiceAccountFile != "" {
		if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
		}
	}

	// Validate simulation count
	if c.RevenueSampleCount < 1 {
		errors = append(errors, fmt.Sprintf("invalid revenue sample count %d: must be at least 1", c.RevenueSampleCount))
	} else if c.RevenueSampleCount > 1000 {
		errors = append(errors, fmt.Sprintf("invalid revenue sample count %d: must be at most 1000", c.RevenueSampleCount))
	}

	// Validate durations
	if c.FetchTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid fetch timeout %v: must be at least 1 second", c.FetchTimeout))
	} else if c.FetchTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid fetch timeout %v: must be at most 1 minute", c.FetchTimeout))
	}
	if c.LedgerCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid ledger cache TTL %v: must be at least 1 second", c.LedgerCacheTTL))
	} else if c.LedgerCacheTTL > time.Hour {
		errors = append(errors, fmt.Sprintf("invalid ledger cache TTL %v: must be at most 1 hour", c.LedgerCacheTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
