// Package core provides amount and date parsing utilities.
//
// This file contains functions for coercing monetary amounts and calendar
// dates out of the loosely typed values external sources hand us.
package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to a non-negative decimal amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// tolerates a leading currency symbol and surrounding whitespace. Negative
// values are rejected: direction lives on the record's Flow, never on the
// sign of the amount.
//
// Examples:
//
//	ParseAmount("45.00")  -> 45.00, nil
//	ParseAmount("12,34")  -> 12.34, nil
//	ParseAmount("$ 9.99") -> 9.99, nil
//	ParseAmount("-1")     -> error
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"2.1.2006",
}

// ParseDate parses a calendar date from the formats the upstream sources
// are known to emit. The boolean reports success; callers are expected to
// fall back to the current processing date rather than fail a whole batch.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
