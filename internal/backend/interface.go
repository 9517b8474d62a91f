package backend

import (
	"context"

	"masroufi/internal/core"
)

// TransactionAdder persists new records. Add ignores the incoming ID
// and CreatedAt; the store generates both and returns the id.
type TransactionAdder interface {
	Add(ctx context.Context, t core.Transaction) (string, error)
}

// TransactionLister reads stored records. Both listings are total:
// a storage fault yields an empty result, never an error.
type TransactionLister interface {
	ListAll(ctx context.Context) []core.Transaction
	ListByMonth(ctx context.Context, year, month int) []core.Transaction
}

// TransactionDeleter covers the best-effort destructive operations.
type TransactionDeleter interface {
	DeleteOne(ctx context.Context, id string)
	ClearAll(ctx context.Context)
}

// Store is the unified persistence interface the rest of the
// application programs against; callers never know which backend
// they were given.
type Store interface {
	TransactionAdder
	TransactionLister
	TransactionDeleter
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the selected store, which backend type actually
// serves it, and an optional cleanup function.
type Result struct {
	Store   Store
	Type    BackendType
	Cleanup CleanupFunc
}

// BackendType identifies a storage backend.
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
