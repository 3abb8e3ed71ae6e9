// Package services orchestrates the ledger build: fetching every expense
// source, generating simulated revenue, consolidating and deriving metrics.
package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"clinicdash/internal/cache"
	"clinicdash/internal/core"
	"clinicdash/internal/log"
	"clinicdash/internal/simulator"
	"clinicdash/internal/sources"
)

// SourceWarning records a non-fatal source failure surfaced to the UI.
type SourceWarning struct {
	Source string
	Err    error
}

// DashboardView is everything one dashboard render needs. It is rebuilt
// from scratch on every refresh and never mutated afterwards.
type DashboardView struct {
	Ledger      core.Ledger
	Metrics     core.Metrics
	Warnings    []SourceWarning
	GeneratedAt time.Time
}

// Options tune the ledger build.
type Options struct {
	RevenueCount int
	FetchTimeout time.Duration
	CacheTTL     time.Duration
	Logger       *log.Logger
}

const viewCacheKey = "dashboard"

// LedgerService builds dashboard views from injected sources. All external
// clients are constructed once at process start and passed in here; the
// service itself holds no credentials.
type LedgerService struct {
	sources      []sources.ExpenseSource
	generator    *simulator.Generator
	revenueCount int
	fetchTimeout time.Duration
	viewCache    *cache.TTLCache[DashboardView]
	logger       *log.Logger
}

func NewLedgerService(srcs []sources.ExpenseSource, gen *simulator.Generator, opts Options) *LedgerService {
	// Zero means unset; a negative count deliberately disables simulation.
	if opts.RevenueCount == 0 {
		opts.RevenueCount = 40
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 10 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Config{Component: log.ComponentLedger})
	}
	return &LedgerService{
		sources:      srcs,
		generator:    gen,
		revenueCount: opts.RevenueCount,
		fetchTimeout: opts.FetchTimeout,
		viewCache:    cache.New[DashboardView](opts.CacheTTL, nil),
		logger:       logger.WithComponent(log.ComponentLedger),
	}
}

// BuildView assembles the dashboard view, serving a cached one while the
// TTL window holds. A render is idempotent given the same source responses
// and random sequence.
func (s *LedgerService) BuildView(ctx context.Context) DashboardView {
	if view, ok := s.viewCache.Get(viewCacheKey); ok {
		s.logger.DebugContext(ctx, "Dashboard view cache hit", log.FieldCacheHit, true)
		return view
	}

	expenseSets, warnings := s.fetchAll(ctx)
	revenue := s.generator.Generate(s.revenueCount)

	sets := append(expenseSets, revenue)
	ledger := core.Consolidate(sets...)
	view := DashboardView{
		Ledger:      ledger,
		Metrics:     core.ComputeMetrics(ledger.Records),
		Warnings:    warnings,
		GeneratedAt: time.Now(),
	}

	s.logger.InfoContext(ctx, "Dashboard view built",
		log.FieldRecordCount, len(ledger.Records),
		log.FieldWarnings, len(warnings))

	s.viewCache.Set(viewCacheKey, view)
	return view
}

// fetchAll queries every source concurrently. The sources are independent
// and order-insensitive; results keep the configured source order so ledger
// tie-breaking stays deterministic. A failed source contributes an empty set
// and a warning, never an aborted build.
func (s *LedgerService) fetchAll(ctx context.Context) ([][]core.LedgerRecord, []SourceWarning) {
	results := make([][]core.LedgerRecord, len(s.sources))
	errs := make([]error, len(s.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		i, src := i, src
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, s.fetchTimeout)
			defer cancel()
			records, err := src.FetchExpenses(cctx)
			if err != nil {
				// Recorded, not returned: one broken source must not
				// cancel the siblings.
				errs[i] = err
				return nil
			}
			results[i] = records
			return nil
		})
	}
	_ = g.Wait()

	var warnings []SourceWarning
	for i, err := range errs {
		if err == nil {
			continue
		}
		name := s.sources[i].Name()
		s.logger.WarnContext(ctx, "Expense source failed",
			log.FieldSource, name, log.FieldError, err)
		warnings = append(warnings, SourceWarning{Source: name, Err: err})
	}
	return results, warnings
}
