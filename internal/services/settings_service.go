package services

import (
	"context"

	"github.com/xvierd/pomodomate/internal/domain"
)

// SettingsService validates, persists and applies duration changes.
type SettingsService struct {
	store *StateStore
	modes *ModeController
}

// NewSettingsService creates a settings service.
func NewSettingsService(store *StateStore, modes *ModeController) *SettingsService {
	return &SettingsService{store: store, modes: modes}
}

// Save coerces raw form input and applies the result.
func (s *SettingsService) Save(ctx context.Context, input domain.SettingsInput) domain.Settings {
	return s.SaveSettings(ctx, input.Settings())
}

// SaveSettings bounds settings, persists them and resets the timer to the new duration.
func (s *SettingsService) SaveSettings(ctx context.Context, settings domain.Settings) domain.Settings {
	settings = settings.Normalize()
	s.store.SaveSettings(ctx, settings)
	s.modes.ApplySettings(settings)
	return settings
}
