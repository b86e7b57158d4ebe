package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/urbanhive/urbanhive-client/internal/app/client"
	"github.com/urbanhive/urbanhive-client/internal/app/session"
	"github.com/urbanhive/urbanhive-client/internal/app/state"
	"github.com/urbanhive/urbanhive-client/internal/config"
	"github.com/urbanhive/urbanhive-client/internal/discovery"
	"github.com/urbanhive/urbanhive-client/internal/pkg/auth"
	"github.com/urbanhive/urbanhive-client/internal/pkg/helpers"
	"github.com/urbanhive/urbanhive-client/internal/pkg/logger"
	"github.com/urbanhive/urbanhive-client/internal/pkg/securestore"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Secure   securestore.Store
	Address  client.AddressProvider
	Client   *client.Client
	Sessions *state.SessionStore
	Manager  *session.Manager
}

// Close releases the secure store
func (d *Dependencies) Close() error {
	if d.Secure == nil {
		return nil
	}
	return d.Secure.Close()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupSecureStore opens the store that persists the logged-in user id.
// Durable stores are sealed with the configured signing key.
func SetupSecureStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (securestore.Store, error) {
	var backing securestore.Store
	switch cfg.Session.Store {
	case config.StoreMemory:
		lgr.Debug().Msg("Using in-memory session store")
		return securestore.NewMemoryStore(), nil
	case config.StoreSQLite:
		store, err := securestore.NewSQLiteStore(cfg.Session.SQLitePath, lgr)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite session store: %w", err)
		}
		backing = store
	case config.StoreRedis:
		store, err := securestore.NewRedisStore(ctx, securestore.RedisOptions{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis session store: %w", err)
		}
		backing = store
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}

	lgr.Debug().Str("store", cfg.Session.Store).Msg("Session store ready")
	sealer := auth.NewSealer(auth.SealerConfig{SecretKey: cfg.Session.SigningKey})
	return securestore.NewSealedStore(backing, sealer), nil
}

// SetupAddress returns the provider of the backend base URL. A configured
// base URL skips discovery entirely.
func SetupAddress(cfg *config.Config, lgr zerolog.Logger) client.AddressProvider {
	if cfg.Client.BaseURL != "" {
		lgr.Debug().Str("base_url", cfg.Client.BaseURL).Msg("Using static backend address")
		return client.StaticAddress(strings.TrimRight(cfg.Client.BaseURL, "/"))
	}

	resolver := discovery.NewResolver(discovery.ResolverConfig{
		URL:         cfg.DiscoveryURL(),
		BackendPort: cfg.Client.BackendPort,
		Timeout:     helpers.ParseDuration(cfg.Discovery.Timeout, 5*time.Second),
	}, logger.WithComponent("discovery"))

	return state.NewAddressStore(resolver, lgr)
}

// BuildDependencies wires the secure store, the address provider, the API
// client and the session manager.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg, Logger: lgr}

	secure, err := SetupSecureStore(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize session store")
		return nil, err
	}
	deps.Secure = secure

	deps.Address = SetupAddress(cfg, lgr)
	if store, ok := deps.Address.(*state.AddressStore); ok {
		store.Initialize(ctx)
	}

	deps.Client = client.New(deps.Address, client.Options{
		Timeout:   helpers.ParseDuration(cfg.Client.Timeout, 15*time.Second),
		UserAgent: cfg.Client.UserAgent,
	}, logger.WithComponent("client"))

	deps.Sessions = state.NewSessionStore()
	deps.Manager = session.NewManager(deps.Client, deps.Sessions, deps.Secure, logger.WithComponent("session"))

	return deps, nil
}
