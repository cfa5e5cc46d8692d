package entity

// BadgeID identifies an achievement badge.
type BadgeID string

const (
	BadgeFirstEntry        BadgeID = "first_entry"
	BadgeThreeDayStreak    BadgeID = "three_day_streak"
	BadgeReframingExplorer BadgeID = "reframing_explorer"
	BadgeTenEntries        BadgeID = "ten_entries"
)

// Badge represents an achievement derived from the entry history.
// Unlocked is a pure projection of the history and is never persisted:
// if the history ever shrinks, a badge can lock again.
type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unlocked    bool    `json:"unlocked"`
}
