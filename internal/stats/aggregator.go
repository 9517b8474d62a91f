// Package stats computes monthly financial summaries from the
// transaction store. The aggregator holds no state of its own: every
// request re-reads the month, which is cheap enough that no caching
// layer sits in between.
package stats

import (
	"context"

	"masroufi/internal/core"
)

// Lister is the slice of the store the aggregator needs.
type Lister interface {
	ListByMonth(ctx context.Context, year, month int) []core.Transaction
}

type Aggregator struct {
	store Lister
}

func New(store Lister) *Aggregator {
	return &Aggregator{store: store}
}

// ComputeStats reduces one calendar month of transactions into totals,
// balance and per-category sums. Category buckets combine income and
// expense amounts for the same category id; ids are type-scoped in the
// catalog so the combined figure is what the charts expect. A degraded
// or empty store yields all-zero figures.
func (a *Aggregator) ComputeStats(ctx context.Context, year, month int) core.MonthlyStats {
	transactions := a.store.ListByMonth(ctx, year, month)

	s := core.MonthlyStats{
		Year:          year,
		Month:         month,
		CategoryStats: make(map[string]float64),
	}

	for _, t := range transactions {
		switch t.Type {
		case core.Income:
			s.TotalIncome += t.Amount
		case core.Expense:
			s.TotalExpense += t.Amount
		}
		s.CategoryStats[t.Category] += t.Amount
	}

	s.Balance = s.TotalIncome - s.TotalExpense
	s.TransactionCount = len(transactions)

	return s
}
