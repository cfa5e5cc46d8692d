package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"journal-service/internal/config"
	cronpkg "journal-service/internal/infrastructure/cron"
	"journal-service/internal/infrastructure/gemini"
	"journal-service/internal/infrastructure/smtp"
	"journal-service/internal/infrastructure/sqlite"
	"journal-service/internal/logging"

	"journal-service/internal/domain/entity"
	"journal-service/internal/domain/repository"
	domainservice "journal-service/internal/domain/service"
	"journal-service/internal/service"

	"go.uber.org/zap"
)

// App represents the application
type App struct {
	config          *config.Config
	logger          *zap.Logger
	kvStore         repository.KeyValueStore
	journal         domainservice.JournalService
	settings        domainservice.SettingsService
	reframer        domainservice.ThoughtReframer
	reminderChecker *cronpkg.ReminderChecker
}

// New creates a new application
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	logger.Info("configuration loaded",
		zap.String("service", cfg.Service.Name),
		zap.String("environment", cfg.Service.Environment))

	kvStore, err := sqlite.NewKeyValueStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open persistent store: %w", err)
	}
	logger.Info("persistent store opened", zap.String("path", cfg.Storage.Path))

	ctx := context.Background()
	journal := service.NewJournalService(ctx, kvStore, logger)
	settings := service.NewSettingsService(kvStore, logger)

	// Without an API key every reframing request resolves to the fallback text.
	var reframer domainservice.ThoughtReframer
	if cfg.Generation.APIKey != "" {
		reframer, err = gemini.NewReframer(ctx, &cfg.Generation)
		if err != nil {
			return nil, fmt.Errorf("failed to create reframer: %w", err)
		}
		logger.Info("generation capability initialized", zap.String("model", cfg.Generation.Model))
	} else {
		reframer = unavailableReframer{}
		logger.Warn("no generation API key configured, reframing will use the fallback suggestion")
	}

	var reminderChecker *cronpkg.ReminderChecker
	if cfg.Scheduler.Enabled {
		var notifier cronpkg.Notifier
		if cfg.SMTP.Enabled {
			mailer, err := smtp.NewClient(&cfg.SMTP, cfg.Service.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to create reminder mailer: %w", err)
			}
			notifier = mailer
		} else {
			notifier = logNotifier{logger: logger}
		}
		reminderChecker = cronpkg.NewReminderChecker(settings, notifier, logger)
	} else {
		logger.Info("reminder checker is disabled in configuration")
	}

	return &App{
		config:          cfg,
		logger:          logger,
		kvStore:         kvStore,
		journal:         journal,
		settings:        settings,
		reframer:        reframer,
		reminderChecker: reminderChecker,
	}, nil
}

// Journal exposes the entry store to the composing UI.
func (a *App) Journal() domainservice.JournalService {
	return a.journal
}

// Settings exposes the reminder settings passthrough.
func (a *App) Settings() domainservice.SettingsService {
	return a.settings
}

// NewReframingSession starts a reframing pipeline for one entry composition.
func (a *App) NewReframingSession(mood entity.Mood) *service.ReframingSession {
	return service.NewReframingSession(a.reframer, a.logger, mood)
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	if a.reminderChecker != nil {
		if err := a.reminderChecker.Start(); err != nil {
			return fmt.Errorf("failed to start reminder checker: %w", err)
		}
	}

	a.logger.Info("journal service started", zap.String("name", a.config.Service.Name))

	<-quit
	a.logger.Info("shutting down")

	if a.reminderChecker != nil {
		a.reminderChecker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.journal.Close(shutdownCtx); err != nil {
		a.logger.Error("failed to flush entry history", zap.Error(err))
	}

	if err := a.kvStore.Close(); err != nil {
		a.logger.Error("failed to close persistent store", zap.Error(err))
	}

	_ = a.logger.Sync()
	return nil
}

// unavailableReframer stands in when no generation capability is configured.
type unavailableReframer struct{}

func (unavailableReframer) Reframe(ctx context.Context, mood entity.Mood, thought string) (string, error) {
	return "", errors.New("generation capability is not configured")
}

// logNotifier delivers reminders to the log only.
type logNotifier struct {
	logger *zap.Logger
}

func (n logNotifier) NotifyReminder(ctx context.Context) error {
	n.logger.Info("time to check in with yourself")
	return nil
}
