// Package simulator generates synthetic clinic revenue records by sampling
// from the clinic's fixed service price list.
package simulator

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"clinicdash/internal/core"
)

// priceEntry is one sellable service or product with its fixed price.
type priceEntry struct {
	item     string
	cents    int64
	category string
}

// priceList is the clinic's service menu. Amounts are fixed per entry;
// generated records only ever draw from this list.
var priceList = []priceEntry{
	// Tech work
	{"NCS Tech Fee (Upper Limb)", 7500, "EMG Tech Svc"},
	{"NCS Tech Fee (Lower Limb)", 9000, "EMG Tech Svc"},
	{"Bilateral Carpal Tunnel Study", 11000, "EMG Tech Svc"},

	// Passive income
	{"Facility Fee Split (Dr. Smith)", 15000, "Facility Split"},
	{"Facility Fee Split (Dr. Patel)", 20000, "Facility Split"},

	// Retail sales
	{"Wrist Splint (Retail)", 4500, "Retail Product"},
	{"TENS Unit", 12000, "Retail Product"},
	{"Lumbar Roll", 3000, "Retail Product"},
}

// maxDaysBack bounds how far in the past a generated record may fall.
const maxDaysBack = 30

// Generator produces synthetic revenue records. The random source and clock
// are injected so tests can pin both down.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a Generator backed by the given random source. A nil rng gets
// a time-seeded one; a nil clock defaults to time.Now.
func New(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

// Generate returns count synthetic revenue records, each drawn uniformly
// from the price list and dated 0 to 30 days before today. A non-positive
// count yields nil.
func (g *Generator) Generate(count int) []core.LedgerRecord {
	if count <= 0 {
		return nil
	}
	today := g.now()
	out := make([]core.LedgerRecord, 0, count)
	for i := 0; i < count; i++ {
		sale := priceList[g.rng.Intn(len(priceList))]
		daysAgo := g.rng.Intn(maxDaysBack + 1)
		out = append(out, core.LedgerRecord{
			Date:        today.AddDate(0, 0, -daysAgo),
			Description: sale.item,
			Amount:      decimal.New(sale.cents, -2),
			Category:    sale.category,
			Source:      core.SourceSimulator,
			Flow:        core.FlowRevenue,
		})
	}
	return out
}

// PriceListSize is exposed for sanity checks in callers and tests.
func PriceListSize() int {
	return len(priceList)
}
