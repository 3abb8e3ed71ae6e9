package core

import (
	"testing"
	"time"
)

func metricRec(t *testing.T, flow Flow, category, amount string) LedgerRecord {
	t.Helper()
	return LedgerRecord{
		Date:        time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		Description: "x",
		Amount:      mustDecimal(t, amount),
		Category:    category,
		Source:      SourceSimulator,
		Flow:        flow,
	}
}

func TestComputeMetrics(t *testing.T) {
	records := []LedgerRecord{
		metricRec(t, FlowRevenue, "EMG Tech Svc", "75.00"),
		metricRec(t, FlowRevenue, "Retail Product", "45.00"),
		metricRec(t, FlowRevenue, "EMG Tech Svc", "90.00"),
		metricRec(t, FlowExpense, "Meals", "10.00"),
		metricRec(t, FlowExpense, "Travel", "40.00"),
	}
	m := ComputeMetrics(records)

	if !m.TotalRevenue.Equal(mustDecimal(t, "210")) {
		t.Fatalf("total revenue = %s", m.TotalRevenue)
	}
	if !m.TotalExpense.Equal(mustDecimal(t, "50")) {
		t.Fatalf("total expense = %s", m.TotalExpense)
	}
	if !m.NetProfit.Equal(mustDecimal(t, "160")) {
		t.Fatalf("net profit = %s", m.NetProfit)
	}
	// 160 / 210 * 100
	wantMargin := mustDecimal(t, "160").Div(mustDecimal(t, "210")).Mul(mustDecimal(t, "100"))
	if !m.ProfitMargin.Equal(wantMargin) {
		t.Fatalf("margin = %s, want %s", m.ProfitMargin, wantMargin)
	}

	if len(m.RevenueByCategory) != 2 {
		t.Fatalf("revenue categories = %v", m.RevenueByCategory)
	}
	// First-seen order preserved.
	if m.RevenueByCategory[0].Name != "EMG Tech Svc" || !m.RevenueByCategory[0].Amount.Equal(mustDecimal(t, "165")) {
		t.Fatalf("unexpected revenue breakdown: %v", m.RevenueByCategory)
	}
	if len(m.ExpenseByCategory) != 2 || m.ExpenseByCategory[0].Name != "Meals" {
		t.Fatalf("unexpected expense breakdown: %v", m.ExpenseByCategory)
	}
}

func TestComputeMetricsEmptyLedger(t *testing.T) {
	m := ComputeMetrics(nil)
	if !m.TotalRevenue.IsZero() || !m.TotalExpense.IsZero() || !m.NetProfit.IsZero() {
		t.Fatalf("expected zero totals, got %+v", m)
	}
	if !m.ProfitMargin.IsZero() {
		t.Fatalf("margin on empty ledger must be 0, got %s", m.ProfitMargin)
	}
	if len(m.RevenueByCategory) != 0 || len(m.ExpenseByCategory) != 0 {
		t.Fatalf("expected empty breakdowns, got %+v", m)
	}
}

// Expense-only ledgers have zero revenue; the margin guard must avoid a
// division fault and report 0.
func TestComputeMetricsNoRevenue(t *testing.T) {
	m := ComputeMetrics([]LedgerRecord{metricRec(t, FlowExpense, "Travel", "12.50")})
	if !m.ProfitMargin.IsZero() {
		t.Fatalf("margin = %s, want 0", m.ProfitMargin)
	}
	if !m.NetProfit.Equal(mustDecimal(t, "-12.5")) {
		t.Fatalf("net profit = %s", m.NetProfit)
	}
}
