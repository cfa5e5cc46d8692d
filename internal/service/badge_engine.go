package service

import (
	"journal-service/internal/domain/entity"
)

// badgePredicate decides whether a badge is unlocked for a given entry history.
// Predicates are independent of each other and must be deterministic.
type badgePredicate func(entries []*entity.JournalEntry) bool

type badgeDefinition struct {
	ID          entity.BadgeID
	Name        string
	Description string
	unlocked    badgePredicate
}

// badgeDefinitions is the static badge catalog. Order here is presentation
// order only; evaluation does not depend on it.
var badgeDefinitions = []badgeDefinition{
	{
		ID:          entity.BadgeFirstEntry,
		Name:        "First Entry",
		Description: "Write your first journal entry.",
		unlocked:    hasAtLeastEntries(1),
	},
	{
		ID:          entity.BadgeThreeDayStreak,
		Name:        "Three-Day Streak",
		Description: "Journal three days in a row.",
		unlocked:    threeDayStreak,
	},
	{
		ID:          entity.BadgeReframingExplorer,
		Name:        "Reframing Explorer",
		Description: "Complete a thought reframing.",
		unlocked:    hasReframedEntry,
	},
	{
		ID:          entity.BadgeTenEntries,
		Name:        "Ten Entries",
		Description: "Write ten journal entries.",
		unlocked:    hasAtLeastEntries(10),
	},
}

func hasAtLeastEntries(n int) badgePredicate {
	return func(entries []*entity.JournalEntry) bool {
		return len(entries) >= n
	}
}

// threeDayStreak approximates a streak by entry count alone: three entries
// unlock it even when written on the same day. Kept behind its own predicate
// so a real calendar-based check can replace it without touching the engine.
func threeDayStreak(entries []*entity.JournalEntry) bool {
	return len(entries) >= 3
}

// hasReframedEntry unlocks when any entry carries a non-empty suggestion.
// A negative thought without a suggestion does not count.
func hasReframedEntry(entries []*entity.JournalEntry) bool {
	for _, e := range entries {
		if e.HasSuggestion() {
			return true
		}
	}
	return false
}

// EvaluateBadges recomputes the full badge set from the entry history.
// It is a pure function: same history in, same badges out.
func EvaluateBadges(entries []*entity.JournalEntry) []entity.Badge {
	badges := make([]entity.Badge, 0, len(badgeDefinitions))
	for _, def := range badgeDefinitions {
		badges = append(badges, entity.Badge{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Unlocked:    def.unlocked(entries),
		})
	}
	return badges
}

// UnlockedBadgeIDs returns the set of unlocked badge ids for the history.
func UnlockedBadgeIDs(entries []*entity.JournalEntry) map[entity.BadgeID]bool {
	unlocked := make(map[entity.BadgeID]bool)
	for _, def := range badgeDefinitions {
		if def.unlocked(entries) {
			unlocked[def.ID] = true
		}
	}
	return unlocked
}
