package service

import (
	"context"
	"strings"

	"journal-service/internal/domain/entity"
	"journal-service/internal/domain/service"
)

// EntryDraft assembles a new journal entry from user input before committing
// it to the store. The optional guided-exercise prompt is passed explicitly at
// construction; there is no shared navigation state between views.
type EntryDraft struct {
	journal service.JournalService
	prompt  *entity.Prompt

	content string
	mood    entity.Mood

	thought    string
	suggestion string
}

// NewEntryDraft starts a new composition, optionally seeded with a prompt.
func NewEntryDraft(journal service.JournalService, prompt *entity.Prompt) *EntryDraft {
	return &EntryDraft{
		journal: journal,
		prompt:  prompt,
		mood:    entity.MoodNeutral,
	}
}

// SetContent sets the entry body.
func (d *EntryDraft) SetContent(content string) {
	d.content = content
}

// SetMood sets the entry mood.
func (d *EntryDraft) SetMood(mood entity.Mood) {
	d.mood = mood
}

// Mood returns the currently selected mood.
func (d *EntryDraft) Mood() entity.Mood {
	return d.mood
}

// AttachThought records the negative thought from the reframing flow, trimmed
// the same way the pipeline trims it; a whitespace-only thought is treated as
// absent. The suggestion stays empty until a pipeline outcome is attached,
// which matches an abandoned reframing.
func (d *EntryDraft) AttachThought(thought string) {
	d.thought = strings.TrimSpace(thought)
}

// AttachReframing records the resolved pipeline outcome for the thought.
func (d *EntryDraft) AttachReframing(thought string, outcome ReframeOutcome) {
	d.thought = strings.TrimSpace(thought)
	d.suggestion = outcome.Text
}

// Commit constructs the immutable entry and appends it to the store. A
// suggestion is only attached when a thought is present.
func (d *EntryDraft) Commit(ctx context.Context) (*entity.JournalEntry, error) {
	entry := entity.NewJournalEntry(d.content, d.mood)

	if d.thought != "" {
		thought := d.thought
		entry.NegativeThought = &thought
		if d.suggestion != "" {
			suggestion := d.suggestion
			entry.CBTSuggestion = &suggestion
		}
	}
	if d.prompt != nil {
		promptID := d.prompt.ID
		entry.SourcePromptID = &promptID
	}

	return d.journal.Append(ctx, entry)
}
