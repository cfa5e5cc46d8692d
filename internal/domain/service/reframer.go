package service

import (
	"context"
	"journal-service/internal/domain/entity"
)

// ThoughtReframer is the text-generation capability consumed by the reframing
// pipeline. Implementations collapse all failure kinds (network, timeout,
// malformed response) into a single returned error; the pipeline absorbs it
// into a fixed fallback suggestion.
type ThoughtReframer interface {
	// Reframe produces a CBT-style reframing suggestion for a negative
	// thought, given the mood of the surrounding entry.
	Reframe(ctx context.Context, mood entity.Mood, thought string) (string, error)
}
