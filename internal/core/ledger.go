package core

import "sort"

// Ledger is the consolidated, date-ordered view over all record sources.
// A Ledger built from only empty sets is explicitly Empty so the caller can
// render an empty state instead of misleading zero metrics.
type Ledger struct {
	Records []LedgerRecord
}

// Empty reports whether no source contributed any record.
func (l Ledger) Empty() bool {
	return len(l.Records) == 0
}

// Consolidate merges the given record sets into a single ledger. Empty sets
// are skipped; the rest are concatenated preserving per-source order and then
// stably sorted by date descending, so records tied on date keep the relative
// order of their inputs.
func Consolidate(sets ...[]LedgerRecord) Ledger {
	total := 0
	for _, set := range sets {
		total += len(set)
	}
	if total == 0 {
		return Ledger{}
	}
	merged := make([]LedgerRecord, 0, total)
	for _, set := range sets {
		if len(set) == 0 {
			continue
		}
		merged = append(merged, set...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	return Ledger{Records: merged}
}
