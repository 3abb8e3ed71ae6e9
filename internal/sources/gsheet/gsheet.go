// Package gsheet adapts a Google Sheets worksheet of manually entered
// expenses into the common ledger schema.
package gsheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"clinicdash/internal/core"
)

// Config carries everything needed to open the expense worksheet.
// Exactly one of CredentialsJSON or CredentialsFile must be set.
type Config struct {
	SpreadsheetID   string
	SheetName       string // optional; first worksheet when empty
	CredentialsJSON string
	CredentialsFile string
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	now           func() time.Time
}

// New creates a Sheets client from service-account credentials. The client
// is constructed once at process start and injected into the render path.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}

	var raw []byte
	switch {
	case strings.TrimSpace(cfg.CredentialsJSON) != "":
		raw = []byte(cfg.CredentialsJSON)
	case strings.TrimSpace(cfg.CredentialsFile) != "":
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		raw = b
	default:
		return nil, errors.New("missing service account credentials")
	}

	creds, err := normalizeCredentials(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize credentials: %w", err)
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(creds),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     strings.TrimSpace(cfg.SheetName),
		now:           time.Now,
	}, nil
}

func (c *Client) Name() string { return string(core.SourceSpreadsheet) }

// FetchExpenses reads all rows of the worksheet and maps them into ledger
// records. Individual malformed rows are skipped or field-defaulted; an
// unreachable API or a header row that doesn't match the expected schema is
// returned as an error so the caller can surface the source as degraded.
func (c *Client) FetchExpenses(ctx context.Context) ([]core.LedgerRecord, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}

	sheet := c.sheetName
	if sheet == "" {
		name, err := c.firstSheetName(ctx)
		if err != nil {
			return nil, err
		}
		sheet = name
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	records, skipped, err := parseRows(resp.Values, c.now())
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	if skipped > 0 {
		slog.WarnContext(ctx, "Skipped malformed spreadsheet rows",
			"sheet", sheet, "skipped", skipped, "kept", len(records))
	}
	return records, nil
}

func (c *Client) firstSheetName(ctx context.Context) (string, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 || meta.Sheets[0].Properties == nil {
		return "", errors.New("spreadsheet has no worksheets")
	}
	return meta.Sheets[0].Properties.Title, nil
}

// normalizeCredentials fixes service-account JSON whose private key carries
// literal `\n` sequences instead of real newlines, as happens when the key
// is pasted through an env var or a secret store.
func normalizeCredentials(raw []byte) ([]byte, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("parse credentials JSON: %w", err)
	}
	pk, ok := fields["private_key"].(string)
	if !ok || !strings.Contains(pk, `\n`) {
		return raw, nil
	}
	fields["private_key"] = strings.ReplaceAll(pk, `\n`, "\n")
	fixed, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("re-encode credentials JSON: %w", err)
	}
	return fixed, nil
}
