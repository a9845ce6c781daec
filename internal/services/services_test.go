package services

import (
	"context"
	"errors"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

// fakeStore is an in-memory Store for service tests, mirroring the
// repository's sentinel-error contract.
type fakeStore struct {
	users        map[string]core.User
	transactions map[int64][]core.Transaction
	nextID       int64

	createTransactionErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[string]core.User),
		transactions: make(map[int64][]core.Transaction),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, u core.User) (int64, error) {
	if _, ok := f.users[u.Username]; ok {
		return 0, core.ErrUsernameTaken
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.Username] = u
	return u.ID, nil
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (core.User, error) {
	u, ok := f.users[username]
	if !ok {
		return core.User{}, core.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) UpdateSettings(_ context.Context, username string, estIncome, savingsGoal float64) error {
	u, ok := f.users[username]
	if !ok {
		return core.ErrUserNotFound
	}
	u.EstIncome = estIncome
	u.SavingsGoal = savingsGoal
	f.users[username] = u
	return nil
}

func (f *fakeStore) CreateTransaction(_ context.Context, userID int64, t core.Transaction) (int64, error) {
	if f.createTransactionErr != nil {
		return 0, f.createTransactionErr
	}
	t.UserID = userID
	f.transactions[userID] = append(f.transactions[userID], t)
	return int64(len(f.transactions[userID])), nil
}

func (f *fakeStore) ListTransactions(_ context.Context, userID int64) ([]core.Transaction, error) {
	return append([]core.Transaction{}, f.transactions[userID]...), nil
}

func (f *fakeStore) ListTransactionsForMonth(_ context.Context, userID int64, month string) ([]core.MonthEntry, error) {
	entries := []core.MonthEntry{}
	for _, t := range f.transactions[userID] {
		if len(t.Date) >= 7 && t.Date[5:7] == month {
			entries = append(entries, core.MonthEntry{
				Amount: t.Amount, Type: t.Type, Category: t.Category, Date: t.Date,
			})
		}
	}
	return entries, nil
}

// fakePublisher records published events and optionally fails.
type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) TransactionRecorded(_ context.Context, username string, _ core.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, username)
	return nil
}

var errStoreDown = errors.New("store down")
