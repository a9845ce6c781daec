package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

func TestAuthService_Register(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, bcrypt.MinCost)
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw1", 50000, 10000); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := store.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if string(user.Password) == "pw1" {
		t.Error("password stored as plaintext")
	}
	if user.EstIncome != 50000 || user.SavingsGoal != 10000 {
		t.Errorf("settings = (%v, %v), want (50000, 10000)", user.EstIncome, user.SavingsGoal)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, bcrypt.MinCost)
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw1", 50000, 10000); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	err := svc.Register(ctx, "alice", "pw2", 1, 2)
	if !errors.Is(err, core.ErrUsernameTaken) {
		t.Fatalf("second Register() error = %v, want ErrUsernameTaken", err)
	}

	// First registration is unaffected: the original password still works.
	if _, err := svc.Login(ctx, "alice", "pw1"); err != nil {
		t.Errorf("Login() with original password error = %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, bcrypt.MinCost)
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw1", 50000, 10000); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Login(ctx, "alice", "pw1")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if user.Username != "alice" {
			t.Errorf("Login() username = %q, want alice", user.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		if !errors.Is(err, core.ErrInvalidCredentials) {
			t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		// Indistinguishable from a wrong password.
		_, err := svc.Login(ctx, "mallory", "pw1")
		if !errors.Is(err, core.ErrInvalidCredentials) {
			t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}
