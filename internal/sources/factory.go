package sources

import (
	"context"
	"log/slog"

	"clinicdash/internal/config"
	applog "clinicdash/internal/log"
	"clinicdash/internal/sources/gsheet"
	"clinicdash/internal/sources/memory"
	"clinicdash/internal/sources/plaid"
)

// Build constructs the expense sources the configuration allows. A missing
// or broken credential degrades that one source with a warning instead of
// failing startup; the dashboard renders from whatever remains.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) []ExpenseSource {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(applog.FieldComponent, applog.ComponentSources)

	if cfg.DataBackend == "memory" {
		logger.Info("Using seeded in-memory expense source", "backend", cfg.DataBackend)
		return []ExpenseSource{memory.Seeded()}
	}

	var out []ExpenseSource

	if cfg.HasPlaid() {
		client, err := plaid.New(plaid.Config{
			ClientID:    cfg.PlaidClientID,
			Secret:      cfg.PlaidSecret,
			AccessToken: cfg.PlaidAccessToken,
			Environment: cfg.PlaidEnvironment,
			Timeout:     cfg.FetchTimeout,
		})
		if err != nil {
			logger.Warn("Plaid adapter unavailable", applog.FieldError, err)
		} else {
			out = append(out, client)
			logger.Info("Initialized Plaid bank feed", "environment", cfg.PlaidEnvironment)
		}
	} else {
		logger.Warn("Plaid credentials not configured, bank feed disabled")
	}

	if cfg.HasSheets() {
		client, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			SheetName:       cfg.GoogleSheetName,
			CredentialsJSON: cfg.GoogleServiceAccountJSON,
			CredentialsFile: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			logger.Warn("Google Sheets adapter unavailable", applog.FieldError, err)
		} else {
			out = append(out, client)
			logger.Info("Initialized Google Sheets expense log", "spreadsheet_id", cfg.GoogleSpreadsheetID)
		}
	} else {
		logger.Warn("Google Sheets credentials not configured, spreadsheet expenses disabled")
	}

	return out
}
