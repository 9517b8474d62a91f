package amqp

import (
	"testing"
	"time"
)

func TestNewTransactionEventMessage(t *testing.T) {
	msg := NewTransactionEventMessage(ActionAdded, "1714000000000abc")

	if msg.EventID == "" {
		t.Fatalf("event id must be generated")
	}
	if msg.Action != ActionAdded {
		t.Fatalf("action: got %s want %s", msg.Action, ActionAdded)
	}
	if msg.TransactionID != "1714000000000abc" {
		t.Fatalf("transaction id mismatch: %s", msg.TransactionID)
	}
	if msg.Timestamp.IsZero() || time.Since(msg.Timestamp) > time.Minute {
		t.Fatalf("unexpected timestamp: %v", msg.Timestamp)
	}

	other := NewTransactionEventMessage(ActionDeleted, "x")
	if other.EventID == msg.EventID {
		t.Fatalf("event ids must be unique")
	}
}

func TestTransactionEventMessageRoundTrip(t *testing.T) {
	msg := NewTransactionEventMessage(ActionDeleted, "someid")

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := TransactionEventMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.EventID != msg.EventID || got.Action != msg.Action || got.TransactionID != msg.TransactionID {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, msg)
	}

	if _, err := TransactionEventMessageFromJSON([]byte("{broken")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
