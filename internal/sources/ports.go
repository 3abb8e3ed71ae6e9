// Package sources defines the ports implemented by the expense source
// adapters and the factory that builds them from configuration.
package sources

import (
	"context"

	"clinicdash/internal/core"
)

// ExpenseSource is the outbound port every expense adapter implements.
// A failing fetch returns a nil record set plus an error; callers degrade
// to the remaining sources instead of aborting the render.
type ExpenseSource interface {
	// Name identifies the source in warnings and logs.
	Name() string

	// FetchExpenses returns the normalized expense records for this source.
	FetchExpenses(ctx context.Context) ([]core.LedgerRecord, error)
}
