package storage

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"masroufi/internal/core"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func add(t *testing.T, store *SQLiteStore, typ core.TransactionType, amount float64, category, date string) string {
	t.Helper()
	d, err := core.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date %s: %v", date, err)
	}
	id, err := store.Add(context.Background(), core.Transaction{
		Type:     typ,
		Amount:   amount,
		Category: category,
		Date:     d,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == "" {
		t.Fatalf("add returned empty id")
	}
	// createdAt has millisecond precision; spacing inserts keeps the
	// tie-break deterministic
	time.Sleep(2 * time.Millisecond)
	return id
}

func TestNewSQLiteStore_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	add(t, first, core.Income, 100, "9", "2024-04-01")
	first.Close()

	// Re-opening re-runs migrations as a no-op and keeps existing data
	second, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()

	if got := len(second.ListAll(context.Background())); got != 1 {
		t.Fatalf("expected 1 record after reopen, got %d", got)
	}
}

func TestAddThenListAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d, _ := core.ParseDate("2024-04-15")
	id, err := store.Add(ctx, core.Transaction{
		Type:     core.Expense,
		Amount:   42.50,
		Category: "1",
		Date:     d,
		Note:     "groceries",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	all := store.ListAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
	got := all[0]
	if got.ID != id {
		t.Fatalf("id mismatch: got %s want %s", got.ID, id)
	}
	if got.Type != core.Expense || got.Amount != 42.50 || got.Category != "1" ||
		got.Date.String() != "2024-04-15" || got.Note != "groceries" {
		t.Fatalf("record fields mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("createdAt not persisted")
	}
}

func TestListAllOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := add(t, store, core.Expense, 10, "1", "2024-04-10")
	sameDayFirst := add(t, store, core.Expense, 20, "1", "2024-04-20")
	sameDaySecond := add(t, store, core.Expense, 30, "1", "2024-04-20")

	all := store.ListAll(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	// date DESC, then most recently created first
	wantOrder := []string{sameDaySecond, sameDayFirst, older}
	for i, want := range wantOrder {
		if all[i].ID != want {
			t.Fatalf("position %d: got %s want %s", i, all[i].ID, want)
		}
	}
}

func TestListByMonthBounds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// one dataset spanning a 31-day, a 28-day and a 30-day month
	add(t, store, core.Expense, 1, "1", "2024-01-01")
	add(t, store, core.Expense, 2, "1", "2024-01-31")
	add(t, store, core.Expense, 3, "1", "2023-02-28") // non-leap February
	add(t, store, core.Expense, 4, "1", "2023-03-01")
	add(t, store, core.Expense, 5, "1", "2024-04-01")
	add(t, store, core.Expense, 6, "1", "2024-04-30")
	add(t, store, core.Expense, 7, "1", "2024-05-01")

	cases := []struct {
		year, month, want int
	}{
		{2024, 1, 2},
		{2023, 2, 1},
		{2023, 3, 1},
		{2024, 4, 2},
		{2024, 5, 1},
		{2024, 6, 0},
	}
	for _, tc := range cases {
		got := store.ListByMonth(ctx, tc.year, tc.month)
		if len(got) != tc.want {
			t.Fatalf("%d-%02d: expected %d records, got %d", tc.year, tc.month, tc.want, len(got))
		}
		start, end := core.MonthRange(tc.year, tc.month)
		for _, tr := range got {
			if d := tr.Date.String(); d < start || d >= end {
				t.Fatalf("%d-%02d: record %s outside month bounds", tc.year, tc.month, d)
			}
		}
	}
}

func TestDeleteOne(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	keep := add(t, store, core.Income, 100, "9", "2024-04-01")
	gone := add(t, store, core.Expense, 50, "1", "2024-04-02")

	store.DeleteOne(ctx, gone)

	all := store.ListAll(ctx)
	if len(all) != 1 || all[0].ID != keep {
		t.Fatalf("expected only %s to remain, got %+v", keep, all)
	}

	// missing id is a no-op, not an error
	store.DeleteOne(ctx, "does-not-exist")
	if got := len(store.ListAll(ctx)); got != 1 {
		t.Fatalf("delete of missing id changed the set: %d records", got)
	}
}

func TestDeleteOneLogsOnlyActualDeletes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id := add(t, store, core.Income, 100, "9", "2024-04-01")

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	store.DeleteOne(ctx, "does-not-exist")
	if strings.Contains(buf.String(), "Transaction deleted") {
		t.Fatalf("no-op delete must not log a deletion: %s", buf.String())
	}

	store.DeleteOne(ctx, id)
	if !strings.Contains(buf.String(), "Transaction deleted") {
		t.Fatalf("real delete must log a deletion: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "transaction_id="+id) {
		t.Fatalf("deletion log must carry the transaction id: %s", buf.String())
	}
}

func TestClearAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	add(t, store, core.Income, 100, "9", "2024-04-01")
	add(t, store, core.Expense, 50, "1", "2024-04-02")

	store.ClearAll(ctx)

	if got := store.ListAll(ctx); len(got) != 0 {
		t.Fatalf("expected empty store after clear, got %d records", len(got))
	}
}

func TestReadsAfterCloseReturnEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	add(t, store, core.Income, 100, "9", "2024-04-01")
	store.Close()

	// reads never propagate storage faults
	if got := store.ListAll(ctx); got != nil {
		t.Fatalf("expected empty result from closed store, got %d records", len(got))
	}
	if got := store.ListByMonth(ctx, 2024, 4); got != nil {
		t.Fatalf("expected empty month result from closed store, got %d records", len(got))
	}

	// add must surface the fault
	d, _ := core.ParseDate("2024-04-01")
	if _, err := store.Add(ctx, core.Transaction{Type: core.Income, Amount: 1, Category: "9", Date: d}); err == nil {
		t.Fatalf("expected add on closed store to fail")
	}

	// cleanup writes stay best-effort
	store.DeleteOne(ctx, "x")
	store.ClearAll(ctx)
}
