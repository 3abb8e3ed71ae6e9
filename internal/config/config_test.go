package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "PLAID_CLIENT_ID", "PLAID_SECRET", "PLAID_ACCESS_TOKEN", "PLAID_ENV",
		"GOOGLE_SPREADSHEET_ID", "GOOGLE_SHEET_NAME",
		"GOOGLE_SERVICE_ACCOUNT_JSON", "GOOGLE_SERVICE_ACCOUNT_FILE",
		"REVENUE_SAMPLE_COUNT", "FETCH_TIMEOUT", "LEDGER_CACHE_TTL", "DATA_BACKEND",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	if cfg.Port != "8081" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.PlaidEnvironment != "sandbox" {
		t.Fatalf("plaid env = %q", cfg.PlaidEnvironment)
	}
	if cfg.RevenueSampleCount != 40 {
		t.Fatalf("revenue count = %d", cfg.RevenueSampleCount)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("fetch timeout = %v", cfg.FetchTimeout)
	}
	if cfg.LedgerCacheTTL != 30*time.Second {
		t.Fatalf("cache TTL = %v", cfg.LedgerCacheTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

// Missing credentials must not fail validation; only the dependent adapter
// degrades.
func TestMissingCredentialsDoNotFailStartup(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	if cfg.HasPlaid() || cfg.HasSheets() {
		t.Fatal("adapters should be unavailable without credentials")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validation must pass without credentials: %v", err)
	}
}

func TestHasPlaidRequiresAllThree(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLAID_CLIENT_ID", "id")
	t.Setenv("PLAID_SECRET", "secret")
	if Load().HasPlaid() {
		t.Fatal("access token missing, HasPlaid must be false")
	}
	t.Setenv("PLAID_ACCESS_TOKEN", "token")
	if !Load().HasPlaid() {
		t.Fatal("expected HasPlaid")
	}
}

func TestHasSheets(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_SPREADSHEET_ID", "sheet-1")
	if Load().HasSheets() {
		t.Fatal("credentials missing, HasSheets must be false")
	}
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "{}")
	if !Load().HasSheets() {
		t.Fatal("expected HasSheets")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		key    string
		value  string
		substr string
	}{
		{"bad port", "PORT", "not-a-port", "invalid port"},
		{"port out of range", "PORT", "70000", "between 1 and 65535"},
		{"bad backend", "DATA_BACKEND", "sqlite", "invalid data backend"},
		{"bad plaid env", "PLAID_ENV", "staging", "invalid Plaid environment"},
		{"revenue count too small", "REVENUE_SAMPLE_COUNT", "0", "at least 1"},
		{"revenue count too big", "REVENUE_SAMPLE_COUNT", "5000", "at most 1000"},
		{"fetch timeout too small", "FETCH_TIMEOUT", "100ms", "at least 1 second"},
		{"cache TTL too big", "LEDGER_CACHE_TTL", "2h", "at most 1 hour"},
		{"missing credentials file", "GOOGLE_SERVICE_ACCOUNT_FILE", "/nonexistent/creds.json", "does not exist"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			err := Load().Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Fatalf("error %q does not mention %q", err, tc.substr)
			}
		})
	}
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "bad")
	t.Setenv("PLAID_ENV", "staging")
	err := Load().Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid port") || !strings.Contains(err.Error(), "Plaid environment") {
		t.Fatalf("expected both problems reported, got: %v", err)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	clearEnv(t)
	t.Setenv("REVENUE_SAMPLE_COUNT", "lots")
	if got := Load().RevenueSampleCount; got != 40 {
		t.Fatalf("expected default 40, got %d", got)
	}
}
