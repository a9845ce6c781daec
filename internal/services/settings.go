package services

import (
	"context"
	"log/slog"

	"github.com/petrusjohannesmaas/zaimu/internal/core"
)

// SettingsService reads and updates a user's estimated income and savings
// goal.
type SettingsService struct {
	store Store
}

func NewSettingsService(store Store) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context, username string) (core.Settings, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return core.Settings{}, err
	}
	return core.Settings{
		Username:    user.Username,
		EstIncome:   user.EstIncome,
		SavingsGoal: user.SavingsGoal,
	}, nil
}

// Update overwrites both fields unconditionally; prior values are not kept.
func (s *SettingsService) Update(ctx context.Context, username string, estIncome, savingsGoal float64) error {
	if err := s.store.UpdateSettings(ctx, username, estIncome, savingsGoal); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Settings updated", "username", username)
	return nil
}
