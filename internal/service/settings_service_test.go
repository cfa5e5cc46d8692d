package service_test

import (
	"context"
	"testing"

	"journal-service/internal/domain/entity"
	"journal-service/internal/domain/repository"
	"journal-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSettingsDefaultWhenAbsent(t *testing.T) {
	svc := service.NewSettingsService(newFakeKVStore(), zap.NewNop())

	assert.Equal(t, entity.DefaultSettings(), svc.Get(context.Background()))
}

func TestSettingsDefaultWhenMalformed(t *testing.T) {
	store := newFakeKVStore()
	store.put(repository.KeySettings, []byte("###"))
	svc := service.NewSettingsService(store, zap.NewNop())

	assert.Equal(t, entity.DefaultSettings(), svc.Get(context.Background()))
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := service.NewSettingsService(newFakeKVStore(), zap.NewNop())

	want := entity.Settings{ReminderTime: "08:30", ReminderEnabled: true}
	require.NoError(t, svc.Update(ctx, want))

	assert.Equal(t, want, svc.Get(ctx))
}
