package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	FlowRevenue Flow = "Revenue"
	FlowExpense Flow = "Expense"

	SourceBankFeed    Source = "Bank Feed"
	SourceSpreadsheet Source = "Spreadsheet"
	SourceSimulator   Source = "Simulator"
)

type (
	// Flow is the direction of money movement.
	Flow string

	// Source tags which upstream system originated a record.
	Source string

	// LedgerRecord is the single normalized entry every source maps into.
	// Amount is always non-negative; direction is carried by Flow.
	// Receipt is an optional reference to supporting documentation,
	// empty string meaning absent.
	LedgerRecord struct {
		Date        time.Time
		Description string
		Amount      decimal.Decimal
		Category    string
		Source      Source
		Flow        Flow
		Receipt     string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNegativeAmount   = errors.New("negative amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrInvalidFlow      = errors.New("invalid flow")
	ErrInvalidSource    = errors.New("invalid source")
	ErrZeroDate         = errors.New("date cannot be zero")
)

func (f Flow) Validate() error {
	switch f {
	case FlowRevenue, FlowExpense:
		return nil
	}
	return ErrInvalidFlow
}

func (s Source) Validate() error {
	switch s {
	case SourceBankFeed, SourceSpreadsheet, SourceSimulator:
		return nil
	}
	return ErrInvalidSource
}

func (r LedgerRecord) Validate() error {
	if r.Date.IsZero() {
		return ErrZeroDate
	}
	if len(strings.TrimSpace(r.Description)) == 0 {
		return ErrEmptyDescription
	}
	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if err := r.Source.Validate(); err != nil {
		return err
	}
	return r.Flow.Validate()
}

// HasReceipt reports whether the record carries a receipt reference.
func (r LedgerRecord) HasReceipt() bool {
	return strings.TrimSpace(r.Receipt) != ""
}
