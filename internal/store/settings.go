package store

import (
	"context"
	"log/slog"
	"sync"

	"spendlog/internal/core"
	"spendlog/internal/storage"
)

// SettingsPatch carries the fields a partial update sets. Nil means "leave
// as is". No validation happens here: budget sign and email shape are the
// presentation layer's business.
type SettingsPatch struct {
	Name             *string
	Email            *string
	Budget           *float64
	BudgetAlerts     *bool
	ExpenseReminders *bool
	MonthlyReports   *bool
	Theme            *string
}

// SettingsStore owns the singleton settings record. Same persistence
// pattern as the expense store, without toasts.
type SettingsStore struct {
	mu       sync.Mutex
	gw       storage.Gateway
	settings core.Settings
}

// NewSettingsStore loads persisted settings or the defaults.
func NewSettingsStore(ctx context.Context, gw storage.Gateway) *SettingsStore {
	s := &SettingsStore{gw: gw}
	s.settings = storage.Load(ctx, gw, storage.KeySettings, core.DefaultSettings())
	return s
}

// Settings returns the current value.
func (s *SettingsStore) Settings() core.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Update merges the set fields of the patch into the current settings and
// persists the merged record.
func (s *SettingsStore) Update(ctx context.Context, patch SettingsPatch) core.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Name != nil {
		s.settings.Name = *patch.Name
	}
	if patch.Email != nil {
		s.settings.Email = *patch.Email
	}
	if patch.Budget != nil {
		s.settings.Budget = *patch.Budget
	}
	if patch.BudgetAlerts != nil {
		s.settings.BudgetAlerts = *patch.BudgetAlerts
	}
	if patch.ExpenseReminders != nil {
		s.settings.ExpenseReminders = *patch.ExpenseReminders
	}
	if patch.MonthlyReports != nil {
		s.settings.MonthlyReports = *patch.MonthlyReports
	}
	if patch.Theme != nil {
		s.settings.Theme = *patch.Theme
	}

	storage.Save(ctx, s.gw, storage.KeySettings, s.settings)
	slog.InfoContext(ctx, "Settings updated")
	return s.settings
}
