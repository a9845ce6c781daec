package amqp

import (
	"testing"
	"time"
)

func TestNewTransactionRecordedMessage(t *testing.T) {
	before := time.Now()
	msg := NewTransactionRecordedMessage("alice", 42.50, "expense", "food", "2024-03-15")
	after := time.Now()

	if msg.Username != "alice" {
		t.Errorf("Username = %q, want alice", msg.Username)
	}
	if msg.Amount != 42.50 {
		t.Errorf("Amount = %v, want 42.50", msg.Amount)
	}
	if msg.Type != "expense" || msg.Category != "food" || msg.Date != "2024-03-15" {
		t.Errorf("message = %+v", msg)
	}
	if msg.Timestamp.Before(before) || msg.Timestamp.After(after) {
		t.Errorf("Timestamp %v not between %v and %v", msg.Timestamp, before, after)
	}
}

func TestTransactionRecordedMessage_RoundTrip(t *testing.T) {
	msg := NewTransactionRecordedMessage("alice", 1000, "income", "salary", "2024-03-01")

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	got, err := TransactionRecordedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("TransactionRecordedMessageFromJSON() error = %v", err)
	}
	if got.Username != msg.Username || got.Amount != msg.Amount ||
		got.Type != msg.Type || got.Category != msg.Category || got.Date != msg.Date {
		t.Errorf("round trip = %+v, want %+v", got, msg)
	}
}

func TestTransactionRecordedMessageFromJSON_Invalid(t *testing.T) {
	if _, err := TransactionRecordedMessageFromJSON([]byte("not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
