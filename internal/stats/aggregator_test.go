package stats

import (
	"context"
	"math"
	"testing"

	"masroufi/internal/core"
	"masroufi/internal/storage/memory"
)

func seed(t *testing.T, store *memory.Store, typ core.TransactionType, amount float64, category, date string) {
	t.Helper()
	d, err := core.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date %s: %v", date, err)
	}
	if _, err := store.Add(context.Background(), core.Transaction{
		Type:     typ,
		Amount:   amount,
		Category: category,
		Date:     d,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestComputeStats(t *testing.T) {
	store := memory.New()
	seed(t, store, core.Income, 1000, "9", "2024-04-05")
	seed(t, store, core.Income, 500, "10", "2024-04-12")
	seed(t, store, core.Expense, 300, "1", "2024-04-20")
	// outside the month, must not count
	seed(t, store, core.Expense, 999, "1", "2024-05-01")

	s := New(store).ComputeStats(context.Background(), 2024, 4)

	if s.TotalIncome != 1500 {
		t.Fatalf("totalIncome: got %v want 1500", s.TotalIncome)
	}
	if s.TotalExpense != 300 {
		t.Fatalf("totalExpense: got %v want 300", s.TotalExpense)
	}
	if s.Balance != 1200 {
		t.Fatalf("balance: got %v want 1200", s.Balance)
	}
	if s.TransactionCount != 3 {
		t.Fatalf("transactionCount: got %d want 3", s.TransactionCount)
	}
	if s.Year != 2024 || s.Month != 4 {
		t.Fatalf("year/month mismatch: %d-%d", s.Year, s.Month)
	}
}

func TestComputeStatsCategoryBuckets(t *testing.T) {
	store := memory.New()
	seed(t, store, core.Expense, 100, "1", "2024-04-01")
	seed(t, store, core.Expense, 50, "1", "2024-04-02")
	seed(t, store, core.Income, 2000, "9", "2024-04-03")

	s := New(store).ComputeStats(context.Background(), 2024, 4)

	if got := s.CategoryStats["1"]; got != 150 {
		t.Fatalf("category 1: got %v want 150", got)
	}
	if got := s.CategoryStats["9"]; got != 2000 {
		t.Fatalf("category 9: got %v want 2000", got)
	}

	// buckets are type-agnostic: their sum covers every transaction
	var total float64
	for _, v := range s.CategoryStats {
		total += v
	}
	if math.Abs(total-(s.TotalIncome+s.TotalExpense)) > 1e-9 {
		t.Fatalf("category sum %v != income+expense %v", total, s.TotalIncome+s.TotalExpense)
	}
}

func TestComputeStatsSharedCategoryID(t *testing.T) {
	// Same category id on both types combines into one bucket; the
	// catalog scopes ids by type so this never happens in practice,
	// but the aggregator itself does not filter.
	store := memory.New()
	seed(t, store, core.Income, 100, "7", "2024-04-01")
	seed(t, store, core.Expense, 40, "7", "2024-04-02")

	s := New(store).ComputeStats(context.Background(), 2024, 4)
	if got := s.CategoryStats["7"]; got != 140 {
		t.Fatalf("combined bucket: got %v want 140", got)
	}
}

func TestComputeStatsEmptyMonth(t *testing.T) {
	store := memory.New()
	seed(t, store, core.Income, 100, "9", "2024-04-01")
	store.ClearAll(context.Background())

	s := New(store).ComputeStats(context.Background(), 2024, 4)
	if s.TotalIncome != 0 || s.TotalExpense != 0 || s.Balance != 0 || s.TransactionCount != 0 {
		t.Fatalf("expected all-zero stats, got %+v", s)
	}
	if len(s.CategoryStats) != 0 {
		t.Fatalf("expected no category buckets, got %v", s.CategoryStats)
	}
	if s.CategoryStats == nil {
		t.Fatalf("categoryStats must be non-nil even when empty")
	}
}

func TestComputeStatsNegativeBalance(t *testing.T) {
	store := memory.New()
	seed(t, store, core.Income, 100, "9", "2024-04-01")
	seed(t, store, core.Expense, 250, "1", "2024-04-02")

	s := New(store).ComputeStats(context.Background(), 2024, 4)
	if s.Balance != -150 {
		t.Fatalf("balance: got %v want -150", s.Balance)
	}
}
