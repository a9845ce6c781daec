package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

// TransactionService records and lists transactions for their owning user.
// Rows are append-only: no update or delete operation exists.
type TransactionService struct {
	store  Store
	events EventPublisher
}

// NewTransactionService creates the service. events may be nil, in which
// case no transaction events are published.
func NewTransactionService(store Store, events EventPublisher) *TransactionService {
	return &TransactionService{store: store, events: events}
}

// Add appends a transaction for username. Values are stored as given; the
// service does not police amount sign, type vocabulary or date format.
func (s *TransactionService) Add(ctx context.Context, username string, t core.Transaction) error {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}

	id, err := s.store.CreateTransaction(ctx, user.ID, t)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"username", username,
		"type", t.Type,
		"category", t.Category,
		"date", t.Date)

	if s.events != nil {
		if err := s.events.TransactionRecorded(ctx, username, t); err != nil {
			// Best-effort: the row is already stored.
			slog.WarnContext(ctx, "Failed to publish transaction event",
				"error", err, "username", username)
		}
	}

	return nil
}

// List returns all of username's transactions, date-descending.
func (s *TransactionService) List(ctx context.Context, username string) ([]core.Transaction, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return s.store.ListTransactions(ctx, user.ID)
}

// ListMonth returns username's transactions whose date carries the given
// two-digit month code. The code is passed through unvalidated; codes
// outside 01-12 yield an empty list.
func (s *TransactionService) ListMonth(ctx context.Context, username, month string) ([]core.MonthEntry, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return s.store.ListTransactionsForMonth(ctx, user.ID, month)
}
