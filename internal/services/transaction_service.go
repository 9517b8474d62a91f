package services

import (
	"context"
	"fmt"
	"log/slog"

	"masroufi/internal/backend"
	"masroufi/internal/core"
	"masroufi/internal/log"
)

// EventPublisher announces transaction changes to an external broker.
// *amqp.Client satisfies it; a nil publisher disables events.
type EventPublisher interface {
	PublishTransactionAdded(ctx context.Context, transactionID string) error
	PublishTransactionDeleted(ctx context.Context, transactionID string) error
	Close() error
}

// TransactionService orchestrates transaction operations: validation
// in front of the store, change events behind it. Event publishing is
// best-effort and never fails the user operation.
type TransactionService struct {
	store  backend.Store
	events EventPublisher
}

func NewTransactionService(store backend.Store, events EventPublisher) *TransactionService {
	return &TransactionService{
		store:  store,
		events: events,
	}
}

// Add validates and persists a new transaction, returning its id.
// Validation and write failures propagate so the caller can tell the
// user; only the event publish is swallowed.
func (s *TransactionService) Add(ctx context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("validate transaction: %w", err)
	}

	id, err := s.store.Add(ctx, t)
	if err != nil {
		return "", fmt.Errorf("save transaction: %w", err)
	}

	if s.events != nil {
		if err := s.events.PublishTransactionAdded(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish transaction added event",
				log.FieldTransactionID, id, log.FieldError, err)
			// Transaction is saved locally; the event is lost, not the data
		}
	}

	return id, nil
}

// Delete removes a transaction by id, best-effort like the store
// operation it wraps. Missing ids are a no-op.
func (s *TransactionService) Delete(ctx context.Context, id string) {
	s.store.DeleteOne(ctx, id)

	if s.events != nil {
		if err := s.events.PublishTransactionDeleted(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish transaction deleted event",
				log.FieldTransactionID, id, log.FieldError, err)
		}
	}
}

// Clear removes every stored transaction.
func (s *TransactionService) Clear(ctx context.Context) {
	s.store.ClearAll(ctx)
}

// List returns all stored transactions, newest first.
func (s *TransactionService) List(ctx context.Context) []core.Transaction {
	return s.store.ListAll(ctx)
}

// ListMonth returns the transactions for one calendar month, newest
// first.
func (s *TransactionService) ListMonth(ctx context.Context, year, month int) []core.Transaction {
	return s.store.ListByMonth(ctx, year, month)
}

// Close releases the event publisher connection, if any.
func (s *TransactionService) Close() error {
	if s.events != nil {
		if err := s.events.Close(); err != nil {
			return fmt.Errorf("close event publisher: %w", err)
		}
	}
	return nil
}
