package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
)

// OpResolve names the discovery operation in errors
const OpResolve = "resolveServerAddress"

// ResolverConfig holds the discovery endpoint and the port of the backend it points to
type ResolverConfig struct {
	// URL of the discovery endpoint, e.g. http://192.168.1.235:5000/get_server_ip
	URL         string
	BackendPort string
	Timeout     time.Duration
}

// Resolver asks the discovery endpoint where the backend lives
type Resolver struct {
	url         string
	backendPort string
	http        *http.Client
	logger      zerolog.Logger
}

// NewResolver creates a new Resolver
func NewResolver(cfg ResolverConfig, logger zerolog.Logger) *Resolver {
	port := cfg.BackendPort
	if port == "" {
		port = "5000"
	}
	return &Resolver{
		url:         cfg.URL,
		backendPort: port,
		http:        &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

// Resolve performs one discovery request and returns the backend base URL
// http://<server_ip>:<backend port>. It never retries.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", apperrors.NewTransportError(OpResolve, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		r.logger.Warn().Err(err).Str("url", r.url).Msg("Discovery request failed")
		return "", apperrors.NewTransportError(OpResolve, err)
	}
	defer resp.Body.Close()

	var body struct {
		dto.ServerAddressResponse
		dto.ErrorBody
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", apperrors.NewTransportError(OpResolve, fmt.Errorf("failed to decode discovery response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		message := body.Text()
		if message == "" {
			message = "Failed to get the server address"
		}
		return "", apperrors.NewStatusError(OpResolve, resp.StatusCode, message)
	}

	ip := net.ParseIP(body.ServerIP)
	if ip == nil {
		return "", apperrors.NewTransportError(OpResolve, errors.New("discovery response has no valid server_ip"))
	}

	base := BaseURL(ip.String(), r.backendPort)
	r.logger.Info().Str("base_url", base).Msg("Server address resolved")
	return base, nil
}

// BaseURL composes http://<ip>:<port>
func BaseURL(ip, port string) string {
	return "http://" + net.JoinHostPort(ip, port)
}
