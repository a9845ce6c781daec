package amqp

import (
	"encoding/json"
	"time"
)

// TransactionRecordedMessage is the event published after a transaction row
// is stored. Consumers receive a copy of the stored values; the row itself
// is never mutated afterwards, so no version field is needed.
type TransactionRecordedMessage struct {
	Username  string    `json:"username"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionRecordedMessage(username string, amount float64, txType, category, date string) *TransactionRecordedMessage {
	return &TransactionRecordedMessage{
		Username:  username,
		Amount:    amount,
		Type:      txType,
		Category:  category,
		Date:      date,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedMessageFromJSON creates a message from JSON bytes
func TransactionRecordedMessageFromJSON(data []byte) (*TransactionRecordedMessage, error) {
	var msg TransactionRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
