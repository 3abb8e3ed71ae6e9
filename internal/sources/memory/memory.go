// Package memory provides an in-memory expense source used by tests and the
// credential-free development backend.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"clinicdash/internal/core"
)

type Store struct {
	mu    sync.Mutex
	name  string
	items []core.LedgerRecord
	err   error
}

// New creates a store pre-seeded with the given records.
func New(name string, items []core.LedgerRecord) *Store {
	return &Store{name: name, items: items}
}

// Seeded returns a store with a small fixed set of expenses, enough for the
// dashboard to render something meaningful without external credentials.
func Seeded() *Store {
	records := []core.LedgerRecord{
		{
			Description: "Uber 072515 SF**POOL**",
			Amount:      dec("6.33"),
			Category:    core.Classify("Uber 072515 SF**POOL**"),
			Source:      core.SourceBankFeed,
			Flow:        core.FlowExpense,
		},
		{
			Description: "SparkFun",
			Amount:      dec("89.40"),
			Category:    core.Classify("SparkFun"),
			Source:      core.SourceBankFeed,
			Flow:        core.FlowExpense,
		},
		{
			Description: "AUTOMATIC PAYMENT - THANK",
			Amount:      dec("2078.50"),
			Category:    core.Classify("AUTOMATIC PAYMENT - THANK"),
			Source:      core.SourceBankFeed,
			Flow:        core.FlowExpense,
		},
	}
	for i := range records {
		records[i].Date = daysAgo(i * 3)
	}
	return New(string(core.SourceBankFeed), records)
}

func (s *Store) Name() string { return s.name }

// FetchExpenses returns a copy of the seeded records, or the forced error.
func (s *Store) FetchExpenses(_ context.Context) ([]core.LedgerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]core.LedgerRecord, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Fail makes every subsequent fetch return err. Used to simulate adapter
// outages in tests.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Append adds a record to the store.
func (s *Store) Append(r core.LedgerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, r)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}
