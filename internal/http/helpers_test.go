package http

import (
	"testing"

	"github.com/shopspring/decimal"

	"clinicdash/internal/core"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"45", "$45.00"},
		{"12.5", "$12.50"},
		{"0", "$0.00"},
		{"-3.2", "-$3.20"},
		{"1234.567", "$1234.57"},
	}
	for _, tc := range cases {
		if got := formatUSD(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Fatalf("formatUSD(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(decimal.RequireFromString("42.55")); got != "42.6%" {
		t.Fatalf("formatPercent = %q", got)
	}
	if got := formatPercent(decimal.Zero); got != "0.0%" {
		t.Fatalf("formatPercent zero = %q", got)
	}
}

func TestBreakdownRowWidths(t *testing.T) {
	rows := breakdownRows([]core.CategoryAmount{
		{Name: "EMG Tech Svc", Amount: decimal.RequireFromString("200")},
		{Name: "Retail Product", Amount: decimal.RequireFromString("100")},
		{Name: "Tiny", Amount: decimal.RequireFromString("1")},
	})
	if rows[0].Width != 100 {
		t.Fatalf("largest category width = %d, want 100", rows[0].Width)
	}
	if rows[1].Width != 50 {
		t.Fatalf("half category width = %d, want 50", rows[1].Width)
	}
	// Very small values stay visible.
	if rows[2].Width < 2 {
		t.Fatalf("tiny category width = %d, want >= 2", rows[2].Width)
	}
}

func TestBreakdownRowsEmpty(t *testing.T) {
	if rows := breakdownRows(nil); len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}
}
