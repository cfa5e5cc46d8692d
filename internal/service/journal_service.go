package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"journal-service/internal/domain/entity"
	"journal-service/internal/domain/repository"
	"journal-service/internal/domain/service"

	"go.uber.org/zap"
)

var (
	// ErrEmptyContent is returned when an entry has no content after trimming.
	ErrEmptyContent = errors.New("entry content is empty")

	// ErrInvalidMood is returned when an entry's mood is not one of the five known values.
	ErrInvalidMood = errors.New("entry mood is invalid")

	// ErrSuggestionWithoutThought is returned when an entry carries a reframing
	// suggestion but no negative thought. The converse (thought without
	// suggestion, abandoned reframing) is allowed.
	ErrSuggestionWithoutThought = errors.New("entry has a suggestion without a negative thought")
)

type journalService struct {
	store  repository.KeyValueStore
	logger *zap.Logger

	mu      sync.Mutex
	entries []*entity.JournalEntry

	writes sync.WaitGroup

	// writeMu serializes persistence writes; snapshots carry a sequence
	// number so a stale snapshot is never written over a newer one.
	writeMu     sync.Mutex
	writeSeq    uint64
	lastWritten uint64
}

// NewJournalService creates the entry store, hydrating it from the persistent
// store. Malformed or missing persisted bytes yield an empty history rather
// than a startup failure.
func NewJournalService(ctx context.Context, store repository.KeyValueStore, logger *zap.Logger) service.JournalService {
	s := &journalService{
		store:  store,
		logger: logger,
	}
	s.hydrate(ctx)
	return s
}

func (s *journalService) hydrate(ctx context.Context) {
	raw, err := s.store.Read(ctx, repository.KeyEntries)
	if err != nil {
		s.logger.Warn("failed to read entry history, starting empty", zap.Error(err))
		return
	}
	if len(raw) == 0 {
		return
	}

	var entries []*entity.JournalEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("malformed entry history, starting empty", zap.Error(err))
		return
	}

	s.entries = entries
	s.logger.Info("entry history hydrated", zap.Int("entries", len(entries)))
}

func (s *journalService) Append(ctx context.Context, entry *entity.JournalEntry) (*entity.JournalEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	s.mu.Lock()
	before := UnlockedBadgeIDs(s.entries)

	// Most recent first.
	s.entries = append([]*entity.JournalEntry{entry}, s.entries...)

	after := UnlockedBadgeIDs(s.entries)
	snapshot, err := json.Marshal(s.entries)
	s.writeSeq++
	seq := s.writeSeq
	s.mu.Unlock()

	for id := range after {
		if !before[id] {
			s.logger.Info("badge unlocked", zap.String("badge_id", string(id)))
		}
	}

	if err != nil {
		// The entry is still saved for the session; only persistence is lost.
		s.logger.Error("failed to serialize entry history", zap.Error(err))
		return entry, nil
	}

	// Fire-and-forget: the write is not required to complete before Append
	// returns, but Close waits for it before shutdown.
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		s.persist(context.WithoutCancel(ctx), seq, snapshot)
	}()

	return entry, nil
}

// persist writes one history snapshot. Writes run one at a time, and a
// snapshot older than the last one written is dropped, so the persisted
// history never regresses even when an earlier write is slow.
func (s *journalService) persist(ctx context.Context, seq uint64, snapshot []byte) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if seq <= s.lastWritten {
		// A newer snapshot already landed.
		return
	}
	s.lastWritten = seq

	if err := s.store.Write(ctx, repository.KeyEntries, snapshot); err != nil {
		s.logger.Error("failed to persist entry history", zap.Error(err))
	}
}

func validateEntry(entry *entity.JournalEntry) error {
	if entry == nil {
		return ErrEmptyContent
	}
	if strings.TrimSpace(entry.Content) == "" {
		return ErrEmptyContent
	}
	if !entry.Mood.IsValid() {
		return ErrInvalidMood
	}
	if entry.CBTSuggestion != nil && entry.NegativeThought == nil {
		return ErrSuggestionWithoutThought
	}
	return nil
}

func (s *journalService) All() []*entity.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*entity.JournalEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

func (s *journalService) Badges() []entity.Badge {
	return EvaluateBadges(s.All())
}

// Close waits for in-flight persistence writes so the latest entry is not
// lost on shutdown.
func (s *journalService) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.writes.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
