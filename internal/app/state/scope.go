package state

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scope ties in-flight requests to the lifetime of a view. Closing the scope
// cancels the requests and guarantees no result is applied afterwards.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  errgroup.Group

	mu     sync.Mutex
	closed bool

	// applyMu serializes apply calls and is held by Close while it marks the scope closed
	applyMu sync.Mutex
}

// NewScope creates a scope bound to parent
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context is cancelled when the scope closes
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Closed reports whether Close has been called
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close cancels outstanding work and waits for it to return. Results arriving
// after Close are discarded.
func (s *Scope) Close() error {
	s.applyMu.Lock()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.applyMu.Unlock()

	s.cancel()
	return s.group.Wait()
}

// Wait blocks until every started fetch returns and reports the first error
func (s *Scope) Wait() error {
	return s.group.Wait()
}

// Go runs fetch in the background and hands its result to apply unless the
// scope was closed in the meantime. Applies never run concurrently with each
// other. apply may call Closed but must not call Close.
func Go[T any](s *Scope, fetch func(ctx context.Context) (T, error), apply func(T, error)) {
	s.group.Go(func() error {
		v, err := fetch(s.ctx)

		s.applyMu.Lock()
		defer s.applyMu.Unlock()
		if s.Closed() {
			return nil
		}
		apply(v, err)
		return err
	})
}
