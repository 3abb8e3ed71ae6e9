// Package plaid adapts the Plaid transactions-sync feed into the common
// ledger schema.
package plaid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	plaidapi "github.com/plaid/plaid-go/v31/plaid"
	"github.com/shopspring/decimal"

	"clinicdash/internal/core"
)

// Config carries the Plaid credentials. All three values are required;
// Environment defaults to sandbox.
type Config struct {
	ClientID    string
	Secret      string
	AccessToken string
	Environment string // "sandbox" or "production"
	Timeout     time.Duration
}

const defaultTimeout = 10 * time.Second

type Client struct {
	api         *plaidapi.APIClient
	accessToken string
	timeout     time.Duration
	now         func() time.Time
}

// New builds a Plaid API client. Constructed once at startup and injected
// into the render path.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("missing Plaid client ID or secret")
	}
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("missing Plaid access token")
	}

	env, err := environment(cfg.Environment)
	if err != nil {
		return nil, err
	}

	conf := plaidapi.NewConfiguration()
	conf.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	conf.AddDefaultHeader("PLAID-SECRET", cfg.Secret)
	conf.UseEnvironment(env)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		api:         plaidapi.NewAPIClient(conf),
		accessToken: cfg.AccessToken,
		timeout:     timeout,
		now:         time.Now,
	}, nil
}

func environment(name string) (plaidapi.Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sandbox":
		return plaidapi.Sandbox, nil
	case "production":
		return plaidapi.Production, nil
	}
	return "", fmt.Errorf("unknown Plaid environment %q", name)
}

func (c *Client) Name() string { return string(core.SourceBankFeed) }

// FetchExpenses calls the transactions-sync operation and maps the added
// transactions into expense records. Connectivity, auth and API failures
// come back as a wrapped error with a nil record set; the caller keeps
// rendering with whatever other sources produced.
func (c *Client) FetchExpenses(ctx context.Context) ([]core.LedgerRecord, error) {
	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := plaidapi.NewTransactionsSyncRequest(c.accessToken)
	resp, _, err := c.api.PlaidApi.TransactionsSync(cctx).TransactionsSyncRequest(*req).Execute()
	if err != nil {
		return nil, fmt.Errorf("transactions sync: %w", err)
	}

	added := resp.GetAdded()
	rows := make([]bankRow, 0, len(added))
	for _, tx := range added {
		rows = append(rows, bankRow{
			Date:   tx.GetDate(),
			Name:   tx.GetName(),
			Amount: tx.GetAmount(),
		})
	}
	return mapRows(rows, c.now()), nil
}

// bankRow is the slice of a Plaid transaction the mapping cares about,
// split out so the mapping stays testable without the SDK.
type bankRow struct {
	Date   string
	Name   string
	Amount float64
}

// mapRows normalizes raw bank transactions into ledger records. Rows with a
// blank name are dropped; an unparseable date defaults to today. Plaid signs
// amounts by direction, so the magnitude is taken and the flow fixed to
// Expense.
func mapRows(rows []bankRow, today time.Time) []core.LedgerRecord {
	var out []core.LedgerRecord
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		date, ok := core.ParseDate(row.Date)
		if !ok {
			date = today
		}
		out = append(out, core.LedgerRecord{
			Date:        date,
			Description: name,
			Amount:      decimal.NewFromFloat(row.Amount).Abs(),
			Category:    core.Classify(name),
			Source:      core.SourceBankFeed,
			Flow:        core.FlowExpense,
		})
	}
	return out
}
