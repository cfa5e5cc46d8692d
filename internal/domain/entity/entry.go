package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mood represents how the user felt when writing an entry.
// The five values are ordered from lowest to highest.
type Mood string

const (
	MoodVerySad   Mood = "very_sad"
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
	MoodHappy     Mood = "happy"
	MoodVeryHappy Mood = "very_happy"
)

// moodOrder maps each mood to its position on the 1..5 scale.
var moodOrder = map[Mood]int{
	MoodVerySad:   1,
	MoodSad:       2,
	MoodNeutral:   3,
	MoodHappy:     4,
	MoodVeryHappy: 5,
}

// moodLabels are the human-readable labels used in generation prompts.
var moodLabels = map[Mood]string{
	MoodVerySad:   "very sad",
	MoodSad:       "sad",
	MoodNeutral:   "neutral",
	MoodHappy:     "happy",
	MoodVeryHappy: "very happy",
}

// IsValid returns true if the mood is one of the five known values.
func (m Mood) IsValid() bool {
	_, ok := moodOrder[m]
	return ok
}

// Score returns the mood's position on the 1..5 scale (0 for unknown moods).
func (m Mood) Score() int {
	return moodOrder[m]
}

// Label returns the human-readable label for the mood.
func (m Mood) Label() string {
	if label, ok := moodLabels[m]; ok {
		return label
	}
	return string(m)
}

// JournalEntry represents a single journaling record. Entries are immutable
// once created: ID and CreatedAt are assigned at construction and never change,
// and the store never updates or deletes them.
type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Content is the free-text body of the entry, never empty for a stored entry.
	Content string `json:"content"`
	Mood    Mood   `json:"mood"`

	// Reframing data. A suggestion is only ever present together with the
	// thought that produced it; a thought without a suggestion is allowed
	// (the user abandoned the reframing flow before it resolved).
	NegativeThought *string `json:"negative_thought,omitempty"`
	CBTSuggestion   *string `json:"cbt_suggestion,omitempty"`

	// SourcePromptID references the guided-exercise prompt this entry answers, if any.
	SourcePromptID *string `json:"source_prompt_id,omitempty"`
}

// NewJournalEntry creates a new entry with a fresh ID and creation timestamp.
func NewJournalEntry(content string, mood Mood) *JournalEntry {
	return &JournalEntry{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Content:   content,
		Mood:      mood,
	}
}

// HasSuggestion returns true if the entry carries a non-empty reframing suggestion.
func (e *JournalEntry) HasSuggestion() bool {
	return e.CBTSuggestion != nil && *e.CBTSuggestion != ""
}
