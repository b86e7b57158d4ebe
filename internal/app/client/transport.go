package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
	"github.com/urbanhive/urbanhive-client/internal/pkg/apperrors"
	"github.com/urbanhive/urbanhive-client/internal/pkg/validation"
)

// RequestIDHeader carries a per-request id for correlating client and server logs
const RequestIDHeader = "X-Request-ID"

// AddressProvider supplies the resolved backend base URL, e.g. http://10.0.0.18:5000.
// Implementations block until the address is known or ctx is done.
type AddressProvider interface {
	BaseURL(ctx context.Context) (string, error)
}

// StaticAddress is an AddressProvider with a fixed base URL
type StaticAddress string

// BaseURL returns the address, or ErrAddressUnresolved when empty
func (a StaticAddress) BaseURL(context.Context) (string, error) {
	if a == "" {
		return "", apperrors.ErrAddressUnresolved
	}
	return string(a), nil
}

// Options tunes the HTTP behaviour of a Client
type Options struct {
	// Timeout bounds every request; zero means no deadline
	Timeout time.Duration
	// UserAgent is sent with every request when set
	UserAgent string
	// HTTPClient replaces the default client; Timeout is ignored when set
	HTTPClient *http.Client
}

// Client issues the UrbanHive backend operations. It never notifies the user;
// every failure is returned as an *apperrors.APIError.
type Client struct {
	address   AddressProvider
	http      *http.Client
	userAgent string
	validator *validation.Validator
	logger    zerolog.Logger
	now       func() time.Time
}

// New creates a new Client
func New(address AddressProvider, opts Options, logger zerolog.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		address:   address,
		http:      httpClient,
		userAgent: opts.UserAgent,
		validator: validation.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// fallbacks maps a status code to the message shown when the body explains nothing.
// Key 0 is the generic message of the operation.
type fallbacks map[int]string

func (f fallbacks) message(status int) string {
	if msg, ok := f[status]; ok {
		return msg
	}
	if status >= http.StatusInternalServerError {
		return apperrors.MsgServerFault
	}
	if msg, ok := f[0]; ok {
		return msg
	}
	return apperrors.MsgUnexpected
}

// call describes one request of the endpoint catalog
type call struct {
	op        string
	method    string
	path      string
	query     url.Values
	body      interface{}
	fallbacks fallbacks
}

// validate runs the local rules of req and returns a validation error on failure
func (c *Client) validate(op string, req interface{}) error {
	if msg, ok := c.validator.Struct(req); !ok {
		return apperrors.NewValidationError(op, msg)
	}
	return nil
}

// do sends the request and decodes a 2xx body into out (which may be nil).
// The body is parsed as JSON before the status is looked at, so server text
// is available for every failure.
func (c *Client) do(ctx context.Context, r call, out interface{}) (int, error) {
	base, err := c.address.BaseURL(ctx)
	if err != nil {
		var apiErr *apperrors.APIError
		if errors.As(err, &apiErr) {
			stamped := *apiErr
			stamped.Op = r.op
			return 0, &stamped
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, apperrors.NewTransportError(r.op, err)
		}
		return 0, apperrors.NewStateError(r.op, apperrors.ErrAddressUnresolved, apperrors.MsgNotResolved)
	}

	target := strings.TrimRight(base, "/") + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var payload io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return 0, apperrors.NewTransportError(r.op, fmt.Errorf("failed to encode request: %w", err))
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, payload)
	if err != nil {
		return 0, apperrors.NewTransportError(r.op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("op", r.op).
			Str("method", r.method).
			Str("path", r.path).
			Str("request_id", requestID).
			Msg("Request failed")
		return 0, apperrors.NewTransportError(r.op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, apperrors.NewTransportError(r.op, fmt.Errorf("failed to read response: %w", err))
	}

	c.logger.Debug().
		Str("op", r.op).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("Request completed")

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && !json.Valid(raw) {
		c.logger.Warn().
			Str("op", r.op).
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Msg("Response is not valid JSON")
		return resp.StatusCode, apperrors.NewTransportError(r.op, errors.New("malformed JSON response"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body dto.ErrorBody
		if len(raw) > 0 {
			// Non-object bodies simply carry no explanation
			_ = json.Unmarshal(raw, &body)
		}
		message := body.Text()
		if message == "" {
			message = r.fallbacks.message(resp.StatusCode)
		}
		c.logger.Warn().
			Str("op", r.op).
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Str("message", message).
			Msg("Request rejected")
		return resp.StatusCode, apperrors.NewStatusError(r.op, resp.StatusCode, message)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, apperrors.NewTransportError(r.op, fmt.Errorf("failed to decode response: %w", err))
		}
	}
	return resp.StatusCode, nil
}
