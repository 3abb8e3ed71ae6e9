package http

import "github.com/shopspring/decimal"

var (
	decimalZero = decimal.Zero
	hundred     = decimal.NewFromInt(100)
)

// formatUSD formats an amount as a dollar string (e.g., "$1234.56").
func formatUSD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// formatPercent formats a percentage with one decimal (e.g., "42.5%").
func formatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}
