package services

import (
	"context"
	"errors"
	"testing"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

func seedUser(t *testing.T, store *fakeStore, username string) {
	t.Helper()

	_, err := store.CreateUser(context.Background(), core.User{
		Username: username,
		Password: core.PasswordHash("hash"),
	})
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
}

func TestTransactionService_Add(t *testing.T) {
	store := newFakeStore()
	events := &fakePublisher{}
	svc := NewTransactionService(store, events)
	ctx := context.Background()

	seedUser(t, store, "alice")

	err := svc.Add(ctx, "alice", core.Transaction{
		Amount: 42.50, Type: "expense", Category: "food", Description: "lunch", Date: "2024-03-15",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	rows, err := svc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("List() returned %d rows, want 1", len(rows))
	}
	got := rows[0]
	if got.Amount != 42.50 || got.Type != "expense" || got.Category != "food" ||
		got.Description != "lunch" || got.Date != "2024-03-15" {
		t.Errorf("stored transaction = %+v", got)
	}

	if len(events.published) != 1 || events.published[0] != "alice" {
		t.Errorf("published events = %v, want one for alice", events.published)
	}
}

func TestTransactionService_Add_UnknownUser(t *testing.T) {
	store := newFakeStore()
	svc := NewTransactionService(store, nil)

	err := svc.Add(context.Background(), "nobody", core.Transaction{Amount: 1})
	if !errors.Is(err, core.ErrUserNotFound) {
		t.Fatalf("Add() error = %v, want ErrUserNotFound", err)
	}
}

func TestTransactionService_Add_PublisherFailureIsBestEffort(t *testing.T) {
	store := newFakeStore()
	events := &fakePublisher{err: errors.New("broker down")}
	svc := NewTransactionService(store, events)
	ctx := context.Background()

	seedUser(t, store, "alice")

	// A failed publish must not fail the write.
	if err := svc.Add(ctx, "alice", core.Transaction{Amount: 1, Date: "2024-01-01"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	rows, err := svc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("List() returned %d rows, want 1", len(rows))
	}
}

func TestTransactionService_Add_StoreFailureSkipsPublish(t *testing.T) {
	store := newFakeStore()
	store.createTransactionErr = errStoreDown
	events := &fakePublisher{}
	svc := NewTransactionService(store, events)

	seedUser(t, store, "alice")

	err := svc.Add(context.Background(), "alice", core.Transaction{Amount: 1})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("Add() error = %v, want store failure", err)
	}
	if len(events.published) != 0 {
		t.Errorf("published %d events for a failed write, want 0", len(events.published))
	}
}

func TestTransactionService_ListMonth(t *testing.T) {
	store := newFakeStore()
	svc := NewTransactionService(store, nil)
	ctx := context.Background()

	seedUser(t, store, "alice")
	for _, date := range []string{"2024-02-01", "2024-03-15", "2023-02-28"} {
		if err := svc.Add(ctx, "alice", core.Transaction{Amount: 1, Type: "expense", Category: "misc", Date: date}); err != nil {
			t.Fatalf("Add(%s) error = %v", date, err)
		}
	}

	entries, err := svc.ListMonth(ctx, "alice", "02")
	if err != nil {
		t.Fatalf("ListMonth() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ListMonth(02) returned %d entries, want 2 (year is ignored)", len(entries))
	}

	entries, err = svc.ListMonth(ctx, "alice", "13")
	if err != nil {
		t.Fatalf("ListMonth(13) error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("ListMonth(13) returned %d entries, want 0", len(entries))
	}
}

func TestSettingsService(t *testing.T) {
	store := newFakeStore()
	svc := NewSettingsService(store)
	ctx := context.Background()

	seedUser(t, store, "alice")

	if err := svc.Update(ctx, "alice", 60000, 12000); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	settings, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if settings.Username != "alice" || settings.EstIncome != 60000 || settings.SavingsGoal != 12000 {
		t.Errorf("Get() = %+v", settings)
	}

	if err := svc.Update(ctx, "nobody", 1, 2); !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("Update(nobody) error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.Get(ctx, "nobody"); !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("Get(nobody) error = %v, want ErrUserNotFound", err)
	}
}
