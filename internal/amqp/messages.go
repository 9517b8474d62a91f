package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ActionAdded   = "added"
	ActionDeleted = "deleted"
)

// TransactionEventMessage announces a change to the local transaction
// set. It carries only the transaction id; any consumer interested in
// the full record reads it from its own copy of the store.
type TransactionEventMessage struct {
	EventID       string    `json:"event_id"`
	Action        string    `json:"action"` // "added" | "deleted"
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewTransactionEventMessage creates an event for the given action and
// transaction id.
func NewTransactionEventMessage(action, transactionID string) *TransactionEventMessage {
	return &TransactionEventMessage{
		EventID:       uuid.NewString(),
		Action:        action,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionEventMessageFromJSON creates a message from JSON bytes
func TransactionEventMessageFromJSON(data []byte) (*TransactionEventMessage, error) {
	var msg TransactionEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
