package hooks

import (
	"context"
	"sync"
	"time"
)

// SubmitState mirrors a form's write lifecycle.
type SubmitState struct {
	Submitting bool   `json:"submitting"`
	Submitted  bool   `json:"submitted"`
	Error      string `json:"error,omitempty"`
}

// Submitter performs one write per Submit call. Submitted turns true only after
// a successful write and turns false again once window has elapsed.
type Submitter[P any] struct {
	write  func(ctx context.Context, payload P) error
	window time.Duration

	mu       sync.Mutex
	state    SubmitState
	inFlight int
	gen      uint64
	timer    *time.Timer
}

// NewSubmitter wraps write. A window of zero or less keeps Submitted set until
// the next Submit.
func NewSubmitter[P any](write func(ctx context.Context, payload P) error, window time.Duration) *Submitter[P] {
	return &Submitter[P]{write: write, window: window}
}

// Submit runs write once and returns its error.
func (s *Submitter[P]) Submit(ctx context.Context, payload P) error {
	s.mu.Lock()
	s.stopTimer()
	s.inFlight++
	s.state = SubmitState{Submitting: true}
	s.mu.Unlock()

	err := s.write(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	s.state.Submitting = s.inFlight > 0
	if err != nil {
		s.state.Submitted = false
		s.state.Error = err.Error()
		return err
	}

	s.state.Submitted = true
	s.state.Error = ""
	if s.window > 0 {
		s.gen++
		gen := s.gen
		s.timer = time.AfterFunc(s.window, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.gen == gen {
				s.state.Submitted = false
				s.timer = nil
			}
		})
	}
	return nil
}

// State returns a copy of the current state.
func (s *Submitter[P]) State() SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Window is the display time of the submitted flag.
func (s *Submitter[P]) Window() time.Duration {
	return s.window
}

// Close stops the pending reset timer.
func (s *Submitter[P]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
}

func (s *Submitter[P]) stopTimer() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
