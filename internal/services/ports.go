// Package services implements the application services: authentication,
// transaction recording, settings, and CSV export. Services depend on the
// Store port rather than the SQLite repository directly.
package services

import (
	"context"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

// Store is the persistence port the services operate against. The SQLite
// repository is the only production implementation.
type Store interface {
	CreateUser(ctx context.Context, u core.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (core.User, error)
	UpdateSettings(ctx context.Context, username string, estIncome, savingsGoal float64) error

	CreateTransaction(ctx context.Context, userID int64, t core.Transaction) (int64, error)
	ListTransactions(ctx context.Context, userID int64) ([]core.Transaction, error)
	ListTransactionsForMonth(ctx context.Context, userID int64, month string) ([]core.MonthEntry, error)
}

// EventPublisher receives a notification after each recorded transaction.
// Publishing is best-effort; failures never fail the recording.
type EventPublisher interface {
	TransactionRecorded(ctx context.Context, username string, t core.Transaction) error
}
