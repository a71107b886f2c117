// Package hooks holds the request lifecycle shared by every resource: a Loader
// for reads with a stale-response guard and a Submitter for single-shot writes.
package hooks

import (
	"context"
	"errors"
	"sync"
)

// Fetch loads the value for one parameter set.
type Fetch[P comparable, T any] func(ctx context.Context, params P) (T, error)

// State is what a page renders from. Error is the failure message of the
// current parameter set, empty on success or while loading.
type State[P comparable, T any] struct {
	Data    T
	Loading bool
	Error   string
	Params  P
}

// Loader runs a Fetch whenever its parameters change. Each Load starts a new
// epoch; an outcome is applied only if its epoch is still current, so the last
// requested parameters win regardless of which response arrives first.
type Loader[P comparable, T any] struct {
	fetch Fetch[P, T]
	empty T

	mu      sync.Mutex
	epoch   uint64
	state   State[P, T]
	err     error
	settled chan struct{}
	pending bool
	cancel  context.CancelFunc
	closed  bool
}

// NewLoader returns an idle Loader. empty is the Data value before the first
// success and after any failure; pass an empty slice for collections.
func NewLoader[P comparable, T any](fetch Fetch[P, T], empty T) *Loader[P, T] {
	return &Loader[P, T]{
		fetch: fetch,
		empty: empty,
		state: State[P, T]{Data: empty},
	}
}

// Load starts a request cycle for params. It never blocks on the fetch.
func (l *Loader[P, T]) Load(params P) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}

	l.supersede()
	l.epoch++
	epoch := l.epoch
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	settled := make(chan struct{})
	l.settled = settled
	l.pending = true

	l.state.Loading = true
	l.state.Error = ""
	l.state.Params = params
	l.err = nil

	go func() {
		data, err := l.fetch(ctx, params)
		l.finish(epoch, settled, data, err)
	}()
}

// supersede releases waiters and aborts the in-flight fetch of the current epoch.
// Callers hold mu.
func (l *Loader[P, T]) supersede() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.pending {
		close(l.settled)
		l.pending = false
	}
}

func (l *Loader[P, T]) finish(epoch uint64, settled chan struct{}, data T, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || epoch != l.epoch {
		return
	}

	if err != nil {
		l.state.Data = l.empty
		l.state.Error = err.Error()
		l.err = err
	} else {
		l.state.Data = data
	}
	l.state.Loading = false
	l.cancel = nil
	l.pending = false
	close(settled)
}

// State returns a copy of the current state.
func (l *Loader[P, T]) State() State[P, T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Wait blocks until the current epoch settles or ctx is done and returns the
// state at that point. A Load issued while waiting extends the wait.
func (l *Loader[P, T]) Wait(ctx context.Context) (State[P, T], error) {
	for {
		l.mu.Lock()
		ch, pending := l.settled, l.pending
		l.mu.Unlock()
		if !pending {
			return l.State(), nil
		}

		select {
		case <-ch:
		case <-ctx.Done():
			return l.State(), ctx.Err()
		}
	}
}

// Err returns the failure of the current parameter set, if any.
func (l *Loader[P, T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// ErrorIs reports whether the current failure matches target.
func (l *Loader[P, T]) ErrorIs(target error) bool {
	return errors.Is(l.Err(), target)
}

// Close drops every outcome that arrives later and releases waiters.
func (l *Loader[P, T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.supersede()
	l.state.Loading = false
	l.closed = true
}
