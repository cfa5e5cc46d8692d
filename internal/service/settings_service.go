package service

import (
	"context"
	"encoding/json"
	"fmt"

	"journal-service/internal/domain/entity"
	"journal-service/internal/domain/repository"
	"journal-service/internal/domain/service"

	"go.uber.org/zap"
)

type settingsService struct {
	store  repository.KeyValueStore
	logger *zap.Logger
}

// NewSettingsService creates the reminder settings passthrough.
func NewSettingsService(store repository.KeyValueStore, logger *zap.Logger) service.SettingsService {
	return &settingsService{
		store:  store,
		logger: logger,
	}
}

// Get returns the persisted settings. Missing or malformed bytes are treated
// as absent and yield the defaults.
func (s *settingsService) Get(ctx context.Context) entity.Settings {
	raw, err := s.store.Read(ctx, repository.KeySettings)
	if err != nil {
		s.logger.Warn("failed to read settings, using defaults", zap.Error(err))
		return entity.DefaultSettings()
	}
	if len(raw) == 0 {
		return entity.DefaultSettings()
	}

	var settings entity.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logger.Warn("malformed settings, using defaults", zap.Error(err))
		return entity.DefaultSettings()
	}
	return settings
}

func (s *settingsService) Update(ctx context.Context, settings entity.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := s.store.Write(ctx, repository.KeySettings, raw); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}
