package availability

import (
	"context"
	"errors"
)

// SessionState tracks one editor session through
// Idle -> Editing -> Saving -> Saved | Failed.
type SessionState int

const (
	StateIdle SessionState = iota
	StateEditing
	StateSaving
	StateSaved
	StateFailed
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

var ErrInvalidTransition = errors.New("invalid editor session transition")

// EditorSession holds the mutable draft for one schedule edit. Every edit is
// a pure transform over the draft value, applied sequentially; nothing
// touches the stored schedule until Save succeeds, so a failed save never
// leaves partial state behind.
type EditorSession struct {
	state SessionState
	draft Schedule
	err   error
}

func NewEditorSession() *EditorSession {
	return &EditorSession{state: StateIdle}
}

func (s *EditorSession) State() SessionState { return s.state }

// Err returns the failure left behind by the last save attempt.
func (s *EditorSession) Err() error { return s.err }

// Draft returns a deep copy of the working draft.
func (s *EditorSession) Draft() Schedule { return s.draft.Clone() }

// Begin opens an editing session over a deep copy of sch. A Failed session
// may begin again (discarding the stale draft), as may Idle and Saved.
func (s *EditorSession) Begin(sch Schedule) error {
	switch s.state {
	case StateIdle, StateSaved, StateFailed:
	default:
		return ErrInvalidTransition
	}

	s.draft = sch.Clone()
	s.state = StateEditing
	s.err = nil
	return nil
}

// Apply runs one pure transform over the draft. Only legal while editing.
func (s *EditorSession) Apply(transform func(Schedule) Schedule) error {
	if s.state != StateEditing {
		return ErrInvalidTransition
	}
	s.draft = transform(s.draft)
	return nil
}

// Save validates the draft and persists it through the repository. On
// success the session moves to Saved and returns the stored schedule. On
// failure it moves to Failed keeping the draft, so the user's edits survive
// a validation message or a network error.
func (s *EditorSession) Save(ctx context.Context, repo Repository) (Schedule, error) {
	if s.state != StateEditing {
		return Schedule{}, ErrInvalidTransition
	}
	s.state = StateSaving

	draft := s.draft.Normalize()
	if fields := draft.Validate(); fields != nil {
		s.state = StateFailed
		s.err = NewValidationError(fields)
		return Schedule{}, s.err
	}

	if err := repo.Update(ctx, &draft); err != nil {
		s.state = StateFailed
		s.err = err
		return Schedule{}, err
	}

	s.state = StateSaved
	s.draft = draft
	s.err = nil
	return draft.Clone(), nil
}
