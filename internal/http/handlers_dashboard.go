package http

import (
	"encoding/json"
	"net/http"
	"time"

	"clinicdash/internal/core"
	applog "clinicdash/internal/log"
	"clinicdash/internal/services"
)

// handleIndex renders the dashboard shell; the ledger partial is loaded by
// the page itself.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", nil); err != nil {
		s.logger.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// breakdownRow is one bar of a category chart.
type breakdownRow struct {
	Name   string
	Amount string
	Width  int
}

// ledgerRow is one line of the ledger table.
type ledgerRow struct {
	Date        string
	Description string
	Amount      string
	Category    string
	Source      string
	Flow        string
	IsRevenue   bool
	Receipt     string
	HasReceipt  bool
}

type ledgerPageData struct {
	Empty        bool
	TotalRevenue string
	TotalExpense string
	NetProfit    string
	ProfitMargin string
	Revenue      []breakdownRow
	Expenses     []breakdownRow
	Rows         []ledgerRow
	Warnings     []string
	GeneratedAt  string
}

// handleLedgerPartial renders the KPI tiles, category charts and ledger
// table as an HTML fragment.
func (s *Server) handleLedgerPartial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	view := s.ledger.BuildView(r.Context())
	data := buildLedgerPageData(view)

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="ledger"><div class="placeholder">Net profit: ` + data.NetProfit + `</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "ledger.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Ledger template execution failed", applog.FieldError, err, "template", "ledger.html")
		_, _ = w.Write([]byte(`<section id="ledger"><div class="placeholder">Error rendering ledger</div></section>`))
	}
}

func buildLedgerPageData(view services.DashboardView) ledgerPageData {
	m := view.Metrics
	data := ledgerPageData{
		Empty:        view.Ledger.Empty(),
		TotalRevenue: formatUSD(m.TotalRevenue),
		TotalExpense: formatUSD(m.TotalExpense),
		NetProfit:    formatUSD(m.NetProfit),
		ProfitMargin: formatPercent(m.ProfitMargin),
		Revenue:      breakdownRows(m.RevenueByCategory),
		Expenses:     breakdownRows(m.ExpenseByCategory),
		GeneratedAt:  view.GeneratedAt.Format(time.RFC3339),
	}
	for _, warn := range view.Warnings {
		data.Warnings = append(data.Warnings, warn.Source+" unavailable: showing remaining sources")
	}
	for _, rec := range view.Ledger.Records {
		data.Rows = append(data.Rows, ledgerRow{
			Date:        rec.Date.Format("2006-01-02"),
			Description: rec.Description,
			Amount:      formatUSD(rec.Amount),
			Category:    rec.Category,
			Source:      string(rec.Source),
			Flow:        string(rec.Flow),
			IsRevenue:   rec.Flow == core.FlowRevenue,
			Receipt:     rec.Receipt,
			HasReceipt:  rec.HasReceipt(),
		})
	}
	return data
}

// breakdownRows scales each category against the largest one, the same
// rounded-percent idiom the bar chart template expects.
func breakdownRows(categories []core.CategoryAmount) []breakdownRow {
	var max = decimalZero
	for _, c := range categories {
		if c.Amount.GreaterThan(max) {
			max = c.Amount
		}
	}
	rows := make([]breakdownRow, 0, len(categories))
	for _, c := range categories {
		width := 0
		if max.IsPositive() && c.Amount.IsPositive() {
			width = int(c.Amount.Mul(hundred).Div(max).Round(0).IntPart())
			if width > 0 && width < 2 { // ensure visibility for very small values
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		rows = append(rows, breakdownRow{Name: c.Name, Amount: formatUSD(c.Amount), Width: width})
	}
	return rows
}

// API types mirror the partial but with machine-friendly fields.
type apiRecord struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	Flow        string `json:"flow"`
	Receipt     string `json:"receipt,omitempty"`
}

type apiLedger struct {
	Empty        bool        `json:"empty"`
	TotalRevenue string      `json:"total_revenue"`
	TotalExpense string      `json:"total_expense"`
	NetProfit    string      `json:"net_profit"`
	ProfitMargin string      `json:"profit_margin"`
	Records      []apiRecord `json:"records"`
	Warnings     []string    `json:"warnings,omitempty"`
	GeneratedAt  string      `json:"generated_at"`
}

// handleLedgerJSON serves the consolidated ledger and metrics as JSON.
func (s *Server) handleLedgerJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	view := s.ledger.BuildView(r.Context())
	m := view.Metrics
	out := apiLedger{
		Empty:        view.Ledger.Empty(),
		TotalRevenue: m.TotalRevenue.StringFixed(2),
		TotalExpense: m.TotalExpense.StringFixed(2),
		NetProfit:    m.NetProfit.StringFixed(2),
		ProfitMargin: m.ProfitMargin.StringFixed(1),
		GeneratedAt:  view.GeneratedAt.Format(time.RFC3339),
	}
	for _, warn := range view.Warnings {
		out.Warnings = append(out.Warnings, warn.Source)
	}
	for _, rec := range view.Ledger.Records {
		out.Records = append(out.Records, apiRecord{
			Date:        rec.Date.Format("2006-01-02"),
			Description: rec.Description,
			Amount:      rec.Amount.StringFixed(2),
			Category:    rec.Category,
			Source:      string(rec.Source),
			Flow:        string(rec.Flow),
			Receipt:     rec.Receipt,
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.ErrorContext(r.Context(), "Ledger JSON encoding failed", applog.FieldError, err)
	}
}
