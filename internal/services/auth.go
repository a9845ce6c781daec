package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/petrusjohannesmaas/zaimu/internal/auth"
	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

// AuthService registers users and checks credentials. Session lifecycle is
// handled by the HTTP layer; this service only answers "who is this".
type AuthService struct {
	store      Store
	bcryptCost int
}

func NewAuthService(store Store, bcryptCost int) *AuthService {
	return &AuthService{store: store, bcryptCost: bcryptCost}
}

// Register creates a new user with a hashed password. A taken username
// returns core.ErrUsernameTaken and leaves the existing row untouched.
func (s *AuthService) Register(ctx context.Context, username, password string, estIncome, savingsGoal float64) error {
	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return core.ErrUsernameTaken
	} else if !errors.Is(err, core.ErrUserNotFound) {
		return fmt.Errorf("check existing user: %w", err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	// The UNIQUE constraint backs the existence check above, so a racing
	// duplicate still comes back as ErrUsernameTaken.
	_, err = s.store.CreateUser(ctx, core.User{
		Username:    username,
		Password:    hash,
		EstIncome:   estIncome,
		SavingsGoal: savingsGoal,
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "User registered", "username", username)
	return nil
}

// Login verifies the credentials and returns the user. Unknown usernames
// and wrong passwords are indistinguishable to the caller: both return
// core.ErrInvalidCredentials. There is deliberately no rate limiting or
// lockout.
func (s *AuthService) Login(ctx context.Context, username, password string) (core.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, core.ErrUserNotFound) {
		return core.User{}, core.ErrInvalidCredentials
	}
	if err != nil {
		return core.User{}, fmt.Errorf("look up user: %w", err)
	}

	if !auth.VerifyPassword(user.Password, password) {
		return core.User{}, core.ErrInvalidCredentials
	}

	return user, nil
}
