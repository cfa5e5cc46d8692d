package cron

import (
	"context"
	"fmt"
	"sync"
	"time"

	"journal-service/internal/domain/entity"
	"journal-service/internal/domain/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Notifier delivers the journaling nudge when the reminder fires.
type Notifier interface {
	NotifyReminder(ctx context.Context) error
}

// ReminderChecker ticks once a minute and fires the notifier when the local
// wall-clock time matches the configured reminder time. Reading the settings
// on every tick means settings changes take effect without rescheduling.
type ReminderChecker struct {
	settings service.SettingsService
	notifier Notifier
	logger   *zap.Logger
	cron     *cron.Cron

	mu           sync.Mutex
	lastFiredDay string
}

// NewReminderChecker creates a new reminder checker.
func NewReminderChecker(settings service.SettingsService, notifier Notifier, logger *zap.Logger) *ReminderChecker {
	return &ReminderChecker{
		settings: settings,
		notifier: notifier,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start starts the reminder checker.
func (r *ReminderChecker) Start() error {
	_, err := r.cron.AddFunc("* * * * *", func() {
		r.tick(time.Now())
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	r.cron.Start()
	r.logger.Info("reminder checker started")
	return nil
}

// Stop stops the reminder checker and waits for a running tick to finish.
func (r *ReminderChecker) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("reminder checker stopped")
}

func (r *ReminderChecker) tick(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	settings := r.settings.Get(ctx)
	if !r.shouldFire(settings, now) {
		return
	}

	r.logger.Info("reminder due", zap.String("reminder_time", settings.ReminderTime))
	if err := r.notifier.NotifyReminder(ctx); err != nil {
		r.logger.Error("failed to deliver reminder", zap.Error(err))
	}
}

// shouldFire reports whether the reminder is due, firing at most once per day.
func (r *ReminderChecker) shouldFire(settings entity.Settings, now time.Time) bool {
	if !settings.ReminderEnabled {
		return false
	}
	if _, err := time.Parse("15:04", settings.ReminderTime); err != nil {
		return false
	}
	if now.Format("15:04") != settings.ReminderTime {
		return false
	}

	day := now.Format("2006-01-02")

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastFiredDay == day {
		return false
	}
	r.lastFiredDay = day
	return true
}
