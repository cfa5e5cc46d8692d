package service_test

import (
	"fmt"
	"testing"

	"journal-service/internal/domain/entity"
	"journal-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []*entity.JournalEntry {
	entries := make([]*entity.JournalEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, entity.NewJournalEntry(fmt.Sprintf("entry %d", i), entity.MoodNeutral))
	}
	return entries
}

func unlockedSet(entries []*entity.JournalEntry) map[entity.BadgeID]bool {
	return service.UnlockedBadgeIDs(entries)
}

func TestEvaluateEmptyHistoryUnlocksNothing(t *testing.T) {
	for _, badge := range service.EvaluateBadges(nil) {
		assert.False(t, badge.Unlocked, "badge %s should be locked for empty history", badge.ID)
	}
}

func TestEvaluateFirstEntry(t *testing.T) {
	unlocked := unlockedSet(makeEntries(1))

	assert.Equal(t, map[entity.BadgeID]bool{entity.BadgeFirstEntry: true}, unlocked)
}

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		entries int
		want    map[entity.BadgeID]bool
	}{
		{entries: 0, want: map[entity.BadgeID]bool{}},
		{entries: 1, want: map[entity.BadgeID]bool{entity.BadgeFirstEntry: true}},
		{entries: 2, want: map[entity.BadgeID]bool{entity.BadgeFirstEntry: true}},
		{entries: 3, want: map[entity.BadgeID]bool{
			entity.BadgeFirstEntry:     true,
			entity.BadgeThreeDayStreak: true,
		}},
		{entries: 9, want: map[entity.BadgeID]bool{
			entity.BadgeFirstEntry:     true,
			entity.BadgeThreeDayStreak: true,
		}},
		{entries: 10, want: map[entity.BadgeID]bool{
			entity.BadgeFirstEntry:     true,
			entity.BadgeThreeDayStreak: true,
			entity.BadgeTenEntries:     true,
		}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d entries", tt.entries), func(t *testing.T) {
			assert.Equal(t, tt.want, unlockedSet(makeEntries(tt.entries)))
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	entries := makeEntries(5)
	suggestion := "a kinder view"
	thought := "I always mess up"
	entries[2].NegativeThought = &thought
	entries[2].CBTSuggestion = &suggestion

	first := service.EvaluateBadges(entries)
	second := service.EvaluateBadges(entries)

	require.Equal(t, first, second)
}

func TestReframingExplorerRequiresSuggestion(t *testing.T) {
	thought := "我总是做不好"
	entries := makeEntries(2)
	entries[0].NegativeThought = &thought

	// A thought alone must not unlock the badge.
	assert.False(t, unlockedSet(entries)[entity.BadgeReframingExplorer])

	suggestion := "it went wrong once, not always"
	entries[0].CBTSuggestion = &suggestion
	assert.True(t, unlockedSet(entries)[entity.BadgeReframingExplorer])
}

func TestEvaluateBadgesKeepsStaticIdentity(t *testing.T) {
	badges := service.EvaluateBadges(nil)

	require.Len(t, badges, 4)
	for _, badge := range badges {
		assert.NotEmpty(t, badge.Name)
		assert.NotEmpty(t, badge.Description)
	}
}
