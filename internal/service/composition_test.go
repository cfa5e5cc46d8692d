package service_test

import (
	"context"
	"testing"

	"journal-service/internal/domain/entity"
	"journal-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDraftCommitPlainEntry(t *testing.T) {
	ctx := context.Background()
	journal := service.NewJournalService(ctx, newFakeKVStore(), zap.NewNop())

	draft := service.NewEntryDraft(journal, nil)
	draft.SetContent("a quiet day")
	draft.SetMood(entity.MoodHappy)

	entry, err := draft.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a quiet day", entry.Content)
	assert.Equal(t, entity.MoodHappy, entry.Mood)
	assert.Nil(t, entry.NegativeThought)
	assert.Nil(t, entry.SourcePromptID)

	require.Len(t, journal.All(), 1)
}

func TestDraftCommitWithPromptSeed(t *testing.T) {
	ctx := context.Background()
	journal := service.NewJournalService(ctx, newFakeKVStore(), zap.NewNop())

	prompt := &entity.Prompt{ID: "three-good-things", Title: "Three good things"}
	draft := service.NewEntryDraft(journal, prompt)
	draft.SetContent("coffee, sunlight, a finished book")
	draft.SetMood(entity.MoodVeryHappy)

	entry, err := draft.Commit(ctx)
	require.NoError(t, err)
	require.NotNil(t, entry.SourcePromptID)
	assert.Equal(t, "three-good-things", *entry.SourcePromptID)
}

func TestDraftCommitWithResolvedReframing(t *testing.T) {
	ctx := context.Background()
	journal := service.NewJournalService(ctx, newFakeKVStore(), zap.NewNop())

	draft := service.NewEntryDraft(journal, nil)
	draft.SetContent("rough day at work")
	draft.SetMood(entity.MoodSad)
	draft.AttachReframing("我总是做不好", service.ReframeOutcome{Text: "one mistake is not a pattern", FellBack: false})

	entry, err := draft.Commit(ctx)
	require.NoError(t, err)
	require.NotNil(t, entry.NegativeThought)
	require.NotNil(t, entry.CBTSuggestion)
	assert.Equal(t, "我总是做不好", *entry.NegativeThought)
	assert.Equal(t, "one mistake is not a pattern", *entry.CBTSuggestion)
}

func TestDraftCommitWithAbandonedReframing(t *testing.T) {
	ctx := context.Background()
	journal := service.NewJournalService(ctx, newFakeKVStore(), zap.NewNop())

	draft := service.NewEntryDraft(journal, nil)
	draft.SetContent("rough day")
	draft.SetMood(entity.MoodSad)
	draft.AttachThought("我总是做不好")

	// The thought was entered but the pipeline never resolved.
	entry, err := draft.Commit(ctx)
	require.NoError(t, err)
	require.NotNil(t, entry.NegativeThought)
	assert.Nil(t, entry.CBTSuggestion)
}

func TestDraftTrimsAttachedThought(t *testing.T) {
	ctx := context.Background()
	journal := service.NewJournalService(ctx, newFakeKVStore(), zap.NewNop())

	draft := service.NewEntryDraft(journal, nil)
	draft.SetContent("rough day")
	draft.SetMood(entity.MoodSad)
	draft.AttachThought("  我总是做不好  ")

	entry, err := draft.Commit(ctx)
	require.NoError(t, err)
	require.NotNil(t, entry.NegativeThought)
	assert.Equal(t, "我总是做不好", *entry.NegativeThought)
}

func TestDraftWhitespaceThoughtTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	journal := service.NewJournalService(ctx, newFakeKVStore(), zap.NewNop())

	draft := service.NewEntryDraft(journal, nil)
	draft.SetContent("quiet day")
	draft.SetMood(entity.MoodNeutral)
	draft.AttachThought("   \n\t ")

	entry, err := draft.Commit(ctx)
	require.NoError(t, err)
	assert.Nil(t, entry.NegativeThought)
	assert.Nil(t, entry.CBTSuggestion)
}

func TestDraftCommitEmptyContentRejected(t *testing.T) {
	ctx := context.Background()
	journal := service.NewJournalService(ctx, newFakeKVStore(), zap.NewNop())

	draft := service.NewEntryDraft(journal, nil)
	draft.SetMood(entity.MoodNeutral)

	_, err := draft.Commit(ctx)
	assert.ErrorIs(t, err, service.ErrEmptyContent)
	assert.Empty(t, journal.All())
}
