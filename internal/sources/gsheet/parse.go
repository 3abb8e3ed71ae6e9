package gsheet

import (
	"fmt"
	"strings"
	"time"

	"clinicdash/internal/core"
)

// columnIndex holds the resolved position of each expected column, -1 when
// the column is absent.
type columnIndex struct {
	date        int
	description int
	amount      int
	category    int
	receipt     int
}

// mapHeader resolves the expected columns from the worksheet's header row.
// Date, Description and Amount are required; Category and receipts are
// optional. Header matching is case-insensitive.
func mapHeader(headers []string) (columnIndex, error) {
	idx := columnIndex{
		date:        indexOf(headers, "Date"),
		description: indexOf(headers, "Description"),
		amount:      indexOf(headers, "Amount"),
		category:    indexOf(headers, "Category"),
		receipt:     indexOf(headers, "receipts"),
	}
	missing := make([]string, 0, 3)
	if idx.date == -1 {
		missing = append(missing, "Date")
	}
	if idx.description == -1 {
		missing = append(missing, "Description")
	}
	if idx.amount == -1 {
		missing = append(missing, "Amount")
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("unexpected sheet header: missing %s; got headers=%v",
			strings.Join(missing, ","), headers)
	}
	return idx, nil
}

// parseRows maps the values matrix (as returned by the Sheets API) into
// ledger records. The first row is the header. Per-row policy: an
// unparseable date defaults to today; a missing or unparseable amount skips
// the row; a blank category falls back to the description classifier; an
// empty receipts cell is normalized to absent. Returns the records and the
// count of skipped rows. A header row that doesn't match the expected schema
// is an error: without a usable header every row would be guesswork, so the
// whole sheet is rejected rather than mis-mapped.
func parseRows(values [][]interface{}, today time.Time) ([]core.LedgerRecord, int, error) {
	if len(values) < 2 {
		return nil, 0, nil
	}
	idx, err := mapHeader(toStrings(values[0]))
	if err != nil {
		return nil, 0, err
	}

	var out []core.LedgerRecord
	skipped := 0
	for _, row := range values[1:] {
		cols := toStrings(row)
		rec, ok := parseRow(cols, idx, today)
		if !ok {
			skipped++
			continue
		}
		out = append(out, rec)
	}
	return out, skipped, nil
}

func parseRow(cols []string, idx columnIndex, today time.Time) (core.LedgerRecord, bool) {
	desc := safeGet(cols, idx.description)
	amountStr := safeGet(cols, idx.amount)
	if desc == "" && amountStr == "" {
		// Blank filler row, not worth a warning.
		return core.LedgerRecord{}, false
	}

	amount, err := core.ParseAmount(amountStr)
	if err != nil {
		return core.LedgerRecord{}, false
	}

	date, ok := core.ParseDate(safeGet(cols, idx.date))
	if !ok {
		date = today
	}

	category := safeGet(cols, idx.category)
	if category == "" {
		category = core.Classify(desc)
	}

	rec := core.LedgerRecord{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Category:    category,
		Source:      core.SourceSpreadsheet,
		Flow:        core.FlowExpense,
		Receipt:     safeGet(cols, idx.receipt),
	}
	if err := rec.Validate(); err != nil {
		return core.LedgerRecord{}, false
	}
	return rec, true
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func indexOf(arr []string, target string) int {
	for i, v := range arr {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return i
		}
	}
	return -1
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}
