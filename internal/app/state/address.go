package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

// AddressResolver performs the one-shot discovery of the backend base URL
type AddressResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// ResolverFunc adapts a function to AddressResolver
type ResolverFunc func(ctx context.Context) (string, error)

// Resolve calls f(ctx)
func (f ResolverFunc) Resolve(ctx context.Context) (string, error) {
	return f(ctx)
}

// AddressStore holds the resolved backend base URL for the lifetime of the
// process. Resolution happens at most once and is never retried.
type AddressStore struct {
	resolver AddressResolver
	logger   zerolog.Logger

	once sync.Once
	done chan struct{}

	mu  sync.RWMutex
	url string
	err error
}

// NewAddressStore creates an unresolved AddressStore
func NewAddressStore(resolver AddressResolver, logger zerolog.Logger) *AddressStore {
	return &AddressStore{
		resolver: resolver,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Initialize starts resolution in the background. Only the first call has an
// effect. Cancelling ctx after the call does not abort resolution.
func (s *AddressStore) Initialize(ctx context.Context) {
	s.once.Do(func() {
		ctx := context.WithoutCancel(ctx)
		go func() {
			defer close(s.done)

			url, err := s.resolver.Resolve(ctx)
			s.mu.Lock()
			s.url, s.err = url, err
			s.mu.Unlock()

			if err != nil {
				s.logger.Error().Err(err).Msg("Failed to resolve server address")
			}
		}()
	})
}

// Get returns the current address; empty while resolving or after a failure
func (s *AddressStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// Resolved reports whether resolution has finished, successfully or not
func (s *AddressStore) Resolved() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until resolution finishes or ctx is done
func (s *AddressStore) Wait(ctx context.Context) (string, error) {
	select {
	case <-s.done:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

// BaseURL initializes the store if needed and waits for the address.
// A failed resolution yields a state error so no request goes out with an
// empty base URL.
func (s *AddressStore) BaseURL(ctx context.Context) (string, error) {
	s.Initialize(ctx)

	url, err := s.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", apperrors.NewStateError("resolveServerAddress",
			fmt.Errorf("%w: %v", apperrors.ErrAddressUnresolved, err), apperrors.MsgNotResolved)
	}
	if url == "" {
		return "", apperrors.NewStateError("resolveServerAddress", apperrors.ErrAddressUnresolved, apperrors.MsgNotResolved)
	}
	return url, nil
}
