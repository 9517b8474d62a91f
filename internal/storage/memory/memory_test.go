package memory

import (
	"context"
	"testing"
	"time"

	"masroufi/internal/core"
)

func add(t *testing.T, store *Store, typ core.TransactionType, amount float64, category, date string) string {
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
	time.Sleep(time.Millisecond)
	return id
}

func TestStartsEmpty(t *testing.T) {
	store := New()
	if got := store.ListAll(context.Background()); len(got) != 0 {
		t.Fatalf("fresh store must read empty, got %d records", len(got))
	}
}

func TestAddAndListOrdering(t *testing.T) {
	store := New()
	ctx := context.Background()

	older := add(t, store, core.Expense, 10, "1", "2024-04-10")
	first := add(t, store, core.Income, 20, "9", "2024-04-20")
	second := add(t, store, core.Expense, 30, "1", "2024-04-20")

	all := store.ListAll(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	wantOrder := []string{second, first, older}
	for i, want := range wantOrder {
		if all[i].ID != want {
			t.Fatalf("position %d: got %s want %s", i, all[i].ID, want)
		}
	}
}

func TestListByMonth(t *testing.T) {
	store := New()
	ctx := context.Background()

	add(t, store, core.Expense, 1, "1", "2024-01-31")
	add(t, store, core.Expense, 2, "1", "2024-02-29") // leap day
	add(t, store, core.Expense, 3, "1", "2024-03-01")

	if got := store.ListByMonth(ctx, 2024, 2); len(got) != 1 || got[0].Date.String() != "2024-02-29" {
		t.Fatalf("unexpected February listing: %+v", got)
	}
	if got := store.ListByMonth(ctx, 2024, 4); len(got) != 0 {
		t.Fatalf("expected empty April, got %d", len(got))
	}
}

func TestDeleteAndClear(t *testing.T) {
	store := New()
	ctx := context.Background()

	keep := add(t, store, core.Income, 100, "9", "2024-04-01")
	gone := add(t, store, core.Expense, 50, "1", "2024-04-02")

	store.DeleteOne(ctx, gone)
	store.DeleteOne(ctx, "missing") // no-op

	all := store.ListAll(ctx)
	if len(all) != 1 || all[0].ID != keep {
		t.Fatalf("expected only %s to remain, got %+v", keep, all)
	}

	store.ClearAll(ctx)
	if got := store.ListAll(ctx); len(got) != 0 {
		t.Fatalf("expected empty store after clear, got %d", len(got))
	}
}
