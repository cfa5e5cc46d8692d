package service

import (
	"context"
	"journal-service/internal/domain/entity"
)

// JournalService defines the interface for the append-only entry store.
type JournalService interface {
	// Append validates and stores a new entry at the head of the history.
	// It triggers a full persistence write and a badge recompute.
	Append(ctx context.Context, entry *entity.JournalEntry) (*entity.JournalEntry, error)

	// All returns the entry history, most recent first. The returned slice
	// is a snapshot and safe to hold.
	All() []*entity.JournalEntry

	// Badges recomputes the badge set from the current history.
	Badges() []entity.Badge

	// Close flushes pending persistence writes.
	Close(ctx context.Context) error
}
