package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/discovery"
)

// Options configures the development server
type Options struct {
	Port           string
	DiscoveryPort  string
	DiscoveryPath  string
	AdvertiseIP    string
	AllowedOrigins []string
}

// Server runs the backend and the discovery endpoint side by side
type Server struct {
	opts      Options
	logger    zerolog.Logger
	backend   *http.Server
	discovery *http.Server
}

// NewServer creates a server around a fresh in-memory Backend
func NewServer(opts Options, logger zerolog.Logger) *Server {
	b := NewBackend(logger)

	return &Server{
		opts:   opts,
		logger: logger,
		backend: &http.Server{
			Addr:         ":" + opts.Port,
			Handler:      NewHandler(b, opts.AllowedOrigins, logger),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		discovery: &http.Server{
			Addr:        ":" + opts.DiscoveryPort,
			Handler:     discovery.NewHandler(opts.AdvertiseIP, logger).Router(opts.DiscoveryPath),
			ReadTimeout: 5 * time.Second,
		},
	}
}

// Run starts both listeners and blocks until a signal or a listener error,
// then shuts down gracefully.
func (s *Server) Run() error {
	serverErrors := make(chan error, 2)

	go func() {
		s.logger.Info().Str("addr", s.backend.Addr).Msg("Backend listening")
		serverErrors <- s.backend.ListenAndServe()
	}()
	go func() {
		s.logger.Info().Str("addr", s.discovery.Addr).Str("advertise_ip", s.opts.AdvertiseIP).Msg("Discovery listening")
		serverErrors <- s.discovery.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	if err := s.Shutdown(context.Background()); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown gracefully stops both listeners
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var errs []error
	for name, srv := range map[string]*http.Server{"backend": s.backend, "discovery": s.discovery} {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Str("listener", name).Msg("Shutdown error")
			errs = append(errs, err)
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	return errors.Join(errs...)
}
