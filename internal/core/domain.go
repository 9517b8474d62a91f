package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Transaction is the sole persisted entity: one recorded income or
	// expense event. ID is generated at creation and never changes;
	// records are never updated in place.
	Transaction struct {
		ID        string
		Type      TransactionType
		Amount    float64
		Category  string
		Date      Date
		Note      string
		CreatedAt time.Time
	}
)

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyCategory = errors.New("empty category")
)

func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

// Validate enforces the caller-side contract before a transaction
// reaches the store: known type, positive amount, valid date and a
// non-empty category. The store itself does not re-check these.
func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	// NaN compares false against everything, so the non-finite check
	// cannot be folded into the <= 0 guard
	if t.Amount <= 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return ErrInvalidAmount
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if len(t.Note) > 200 {
		return errors.New("note too long (max 200 characters)")
	}
	return nil
}
