// Package helper implements the AI helper dialog: a single problem
// description goes to a Diagnoser and the answer becomes a category filter.
package helper

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/fwojciec/skilledhelpers"
	"golang.org/x/sync/semaphore"
)

// State is the visible state of a Session.
type State string

const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateResult   State = "result"
	StateNoResult State = "no-result"
)

// Session holds one helper dialog. At most one diagnosis is outstanding
// at a time.
type Session struct {
	diagnoser skilledhelpers.Diagnoser
	logger    *slog.Logger
	inflight  *semaphore.Weighted

	mu     sync.Mutex
	state  State
	result *skilledhelpers.Diagnosis
	gen    uint64
	closed bool
}

// NewSession creates an idle session. A nil logger discards diagnosis
// failures.
func NewSession(diagnoser skilledhelpers.Diagnoser, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		diagnoser: diagnoser,
		logger:    logger,
		inflight:  semaphore.NewWeighted(1),
		state:     StateIdle,
	}
}

// Submit asks the diagnoser about problem and records the answer.
//
// A blank problem does nothing. Diagnoser failures are logged and reported
// as a nil result with state StateNoResult; they never reach the caller.
// A submit while another is outstanding returns ECONFLICT. An answer that
// arrives after Reset or Close is dropped.
func (s *Session) Submit(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
	if strings.TrimSpace(problem) == "" {
		return nil, nil
	}

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, skilledhelpers.Errorf(skilledhelpers.EINVALID, "helper session is closed")
	}

	if !s.inflight.TryAcquire(1) {
		return nil, skilledhelpers.Errorf(skilledhelpers.ECONFLICT, "a diagnosis is already in progress")
	}
	defer s.inflight.Release(1)

	s.mu.Lock()
	s.state = StateLoading
	s.result = nil
	gen := s.gen
	s.mu.Unlock()

	d, err := s.diagnoser.Diagnose(ctx, problem)
	if err != nil {
		s.logger.Error("diagnosis failed",
			"code", skilledhelpers.ErrorCode(err),
			"err", err,
		)
		d = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.gen != gen {
		return nil, nil
	}
	s.result = d
	if d == nil {
		s.state = StateNoResult
	} else {
		s.state = StateResult
	}
	return d, nil
}

// Reset discards the current result and any outstanding answer.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.result = nil
	s.state = StateIdle
}

// Close ends the session. Later submits return EINVALID.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.gen++
	s.result = nil
	s.state = StateIdle
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the current diagnosis, or nil.
func (s *Session) Result() *skilledhelpers.Diagnosis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Apply returns the filter selecting the diagnosed category. It reports
// false and the wildcard when there is no result.
func (s *Session) Apply() (skilledhelpers.CategoryFilter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return skilledhelpers.AllCategories, false
	}
	return skilledhelpers.Only(s.result.Category), true
}
