package service

import (
	"context"
	"strings"
	"sync"

	"journal-service/internal/domain/entity"
	"journal-service/internal/domain/service"

	"go.uber.org/zap"
)

// ReframeState is the state of one reframing attempt within an entry composition.
type ReframeState int

const (
	// StateIdle: no negative thought entered yet.
	StateIdle ReframeState = iota
	// StateReady: a non-empty thought is set, no request in flight.
	StateReady
	// StateRequesting: exactly one request is in flight.
	StateRequesting
	// StateResolved: suggestion text is available, from the service or the fallback.
	StateResolved
)

func (s ReframeState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateRequesting:
		return "requesting"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// FallbackSuggestion is stored whenever the generation request fails for any
// reason. The pipeline never surfaces an error to the user.
const FallbackSuggestion = "Whatever you are carrying right now, it makes sense " +
	"that it feels heavy. Thoughts like this tend to speak in absolutes, and " +
	"absolutes are rarely the whole truth. Try asking what you would tell a " +
	"close friend who shared this same thought, and let yourself hear it too."

// ReframeOutcome is the terminal result of one reframing request. FellBack
// distinguishes the failure path even though the user-visible handling of the
// text is the same.
type ReframeOutcome struct {
	Text     string
	FellBack bool
}

// ReframingSession drives the reframing state machine for one in-progress
// entry composition. It is safe for concurrent use; at most one request is in
// flight at a time.
type ReframingSession struct {
	reframer service.ThoughtReframer
	logger   *zap.Logger
	mood     entity.Mood

	mu      sync.Mutex
	state   ReframeState
	thought string
	outcome *ReframeOutcome
	epoch   int

	// inFlight stays true from trigger until the generation call returns,
	// even if SetThought moves the visible state back to Ready meanwhile.
	// It is what enforces the one-request-at-a-time guarantee.
	inFlight bool
}

// NewReframingSession creates a session in the Idle state for an entry being
// composed with the given mood.
func NewReframingSession(reframer service.ThoughtReframer, logger *zap.Logger, mood entity.Mood) *ReframingSession {
	return &ReframingSession{
		reframer: reframer,
		logger:   logger,
		mood:     mood,
		state:    StateIdle,
	}
}

// SetThought records the negative thought being reframed. An empty thought
// moves the session back to Idle; a non-empty one makes it Ready. Changing the
// thought discards any stored outcome and invalidates an in-flight request;
// a new request cannot fire until that in-flight call has returned.
func (s *ReframingSession) SetThought(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.thought = strings.TrimSpace(text)
	s.outcome = nil
	s.epoch++
	if s.thought == "" {
		s.state = StateIdle
	} else {
		s.state = StateReady
	}
}

// State returns the current pipeline state.
func (s *ReframingSession) State() ReframeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Thought returns the current negative thought text.
func (s *ReframingSession) Thought() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thought
}

// Outcome returns the resolved suggestion, if the session has reached Resolved.
func (s *ReframingSession) Outcome() (ReframeOutcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome == nil {
		return ReframeOutcome{}, false
	}
	return *s.outcome, true
}

// Request performs one reframing attempt. It only fires from Ready: a call
// while a request is already in flight, or before a thought is set, is a no-op
// returning ok=false. The session always reaches Resolved after a fired
// request; a failed generation resolves to the fixed fallback text. If the
// session was discarded or regenerated while the request was in flight, the
// late result is dropped and ok=false is returned.
func (s *ReframingSession) Request(ctx context.Context) (ReframeOutcome, bool) {
	s.mu.Lock()
	if s.state != StateReady || s.inFlight {
		s.mu.Unlock()
		return ReframeOutcome{}, false
	}
	s.state = StateRequesting
	s.inFlight = true
	epoch := s.epoch
	mood := s.mood
	thought := s.thought
	s.mu.Unlock()

	outcome := s.generate(ctx, mood, thought)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if s.epoch != epoch {
		// The composition moved on while the request was in flight.
		return ReframeOutcome{}, false
	}
	s.state = StateResolved
	s.outcome = &outcome
	return outcome, true
}

func (s *ReframingSession) generate(ctx context.Context, mood entity.Mood, thought string) ReframeOutcome {
	text, err := s.reframer.Reframe(ctx, mood, thought)
	if err != nil {
		s.logger.Warn("reframing request failed, using fallback", zap.Error(err))
		return ReframeOutcome{Text: FallbackSuggestion, FellBack: true}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warn("reframing request returned empty text, using fallback")
		return ReframeOutcome{Text: FallbackSuggestion, FellBack: true}
	}
	return ReframeOutcome{Text: text, FellBack: false}
}

// Regenerate clears a resolved suggestion and returns to Ready so the user can
// request a new one. It is a no-op unless the session is Resolved.
func (s *ReframingSession) Regenerate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateResolved {
		return
	}
	s.outcome = nil
	s.epoch++
	s.state = StateReady
}

// Discard abandons the session. An in-flight request is not interrupted; its
// result is simply dropped on arrival.
func (s *ReframingSession) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thought = ""
	s.outcome = nil
	s.epoch++
	s.state = StateIdle
}
