package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// Metrics are the aggregate figures derived from a consolidated ledger.
// ProfitMargin is a percentage and defined as zero when there is no revenue.
type Metrics struct {
	TotalRevenue      decimal.Decimal
	TotalExpense      decimal.Decimal
	NetProfit         decimal.Decimal
	ProfitMargin      decimal.Decimal
	RevenueByCategory []CategoryAmount
	ExpenseByCategory []CategoryAmount
}

var hundred = decimal.NewFromInt(100)

// ComputeMetrics reduces the ledger into totals and per-category sums for
// charting. Category order within each flow follows first appearance in the
// ledger.
func ComputeMetrics(records []LedgerRecord) Metrics {
	m := Metrics{
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
		NetProfit:    decimal.Zero,
		ProfitMargin: decimal.Zero,
	}
	revenue := newCategoryTotals()
	expense := newCategoryTotals()
	for _, r := range records {
		switch r.Flow {
		case FlowRevenue:
			m.TotalRevenue = m.TotalRevenue.Add(r.Amount)
			revenue.add(r.Category, r.Amount)
		case FlowExpense:
			m.TotalExpense = m.TotalExpense.Add(r.Amount)
			expense.add(r.Category, r.Amount)
		}
	}
	m.NetProfit = m.TotalRevenue.Sub(m.TotalExpense)
	if m.TotalRevenue.IsPositive() {
		m.ProfitMargin = m.NetProfit.Div(m.TotalRevenue).Mul(hundred)
	}
	m.RevenueByCategory = revenue.list()
	m.ExpenseByCategory = expense.list()
	return m
}

// categoryTotals accumulates per-category sums preserving first-seen order.
type categoryTotals struct {
	byName map[string]decimal.Decimal
	order  []string
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{byName: map[string]decimal.Decimal{}}
}

func (c *categoryTotals) add(name string, amount decimal.Decimal) {
	if _, seen := c.byName[name]; !seen {
		c.order = append(c.order, name)
	}
	c.byName[name] = c.byName[name].Add(amount)
}

func (c *categoryTotals) list() []CategoryAmount {
	out := make([]CategoryAmount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, CategoryAmount{Name: name, Amount: c.byName[name]})
	}
	return out
}
