package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sealing errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrKeyMismatch  = errors.New("token sealed for a different key")
)

// SealerConfig defines how persisted values are sealed
type SealerConfig struct {
	SecretKey string
	Issuer    string
}

// Sealer signs values before they are persisted so tampering with the
// local store is detected on read.
type Sealer struct {
	config SealerConfig
}

// NewSealer creates a new Sealer
func NewSealer(config SealerConfig) *Sealer {
	if config.Issuer == "" {
		config.Issuer = "urbanhive-client"
	}
	return &Sealer{config: config}
}

// SealedClaims carries one persisted key/value pair
type SealedClaims struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	jwt.RegisteredClaims
}

// Seal returns a signed token carrying key and value
func (s *Sealer) Seal(key, value string) (string, error) {
	now := time.Now()
	claims := &SealedClaims{
		Key:   key,
		Value: value,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   s.config.Issuer,
			Subject:  key,
			ID:       uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to seal value: %w", err)
	}
	return signed, nil
}

// Open verifies a sealed token and returns the value stored under key
func (s *Sealer) Open(key, sealed string) (string, error) {
	token, err := jwt.ParseWithClaims(sealed, &SealedClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithIssuer(s.config.Issuer))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SealedClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Key != key {
		return "", ErrKeyMismatch
	}
	return claims.Value, nil
}
