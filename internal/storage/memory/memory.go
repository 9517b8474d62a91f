// Package memory implements the fallback transaction store used when
// the embedded SQLite engine is unavailable. Records live in process
// memory only: the application keeps working, data does not survive
// exit. The selection path logs that trade-off once at startup.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"masroufi/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New() *Store {
	return &Store{}
}

// Add stores the record in memory and returns a generated id. Memory
// writes cannot fail, so the error is always nil; the signature
// matches the durable store.
func (s *Store) Add(_ context.Context, t core.Transaction) (string, error) {
	now := time.Now().UTC()
	t.ID = core.NewTransactionID(now.UnixMilli())
	t.CreatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	return t.ID, nil
}

// ListAll returns every stored transaction, date descending with
// newest creation first on equal dates.
func (s *Store) ListAll(_ context.Context) []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.items)
}

// ListByMonth filters to the half-open range
// [first of month, first of next month), same ordering as ListAll.
func (s *Store) ListByMonth(_ context.Context, year, month int) []core.Transaction {
	start, end := core.MonthRange(year, month)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []core.Transaction
	for _, t := range s.items {
		d := t.Date.String()
		if d >= start && d < end {
			matched = append(matched, t)
		}
	}
	return sorted(matched)
}

// DeleteOne removes the record with the given id; missing ids are a
// no-op.
func (s *Store) DeleteOne(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// ClearAll removes every record.
func (s *Store) ClearAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func sorted(in []core.Transaction) []core.Transaction {
	out := append([]core.Transaction(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
