package service

import (
	"context"
	"journal-service/internal/domain/entity"
)

// SettingsService defines the interface for reminder settings persistence.
// It is a plain passthrough over the persistent store's settings key.
type SettingsService interface {
	// Get returns the persisted settings, or defaults when nothing valid
	// has been stored yet. It never fails.
	Get(ctx context.Context) entity.Settings

	// Update persists new settings.
	Update(ctx context.Context, settings entity.Settings) error
}
