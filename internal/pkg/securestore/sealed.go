package securestore

import (
	"context"
	"fmt"

	"github.com/urbanhive/urbanhive-client/internal/pkg/auth"
)

// SealedStore signs every value before handing it to the backing store and
// verifies it on read. A value that fails verification reads as ErrNotFound
// after being purged, so a tampered session is simply forgotten.
type SealedStore struct {
	backing Store
	sealer  *auth.Sealer
}

// NewSealedStore wraps backing with sealer
func NewSealedStore(backing Store, sealer *auth.Sealer) *SealedStore {
	return &SealedStore{backing: backing, sealer: sealer}
}

func (s *SealedStore) Get(ctx context.Context, key string) (string, error) {
	sealed, err := s.backing.Get(ctx, key)
	if err != nil {
		return "", err
	}

	value, err := s.sealer.Open(key, sealed)
	if err != nil {
		if delErr := s.backing.Delete(ctx, key); delErr != nil {
			return "", fmt.Errorf("failed to purge invalid value: %w", delErr)
		}
		return "", ErrNotFound
	}
	return value, nil
}

func (s *SealedStore) Set(ctx context.Context, key, value string) error {
	sealed, err := s.sealer.Seal(key, value)
	if err != nil {
		return err
	}
	return s.backing.Set(ctx, key, sealed)
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.backing.Delete(ctx, key)
}

func (s *SealedStore) Close() error {
	return s.backing.Close()
}
