package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Session store backends
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// DefaultPath is where the config file is looked up when no --config flag is given
const DefaultPath = "configs/urbanhive.yaml"

// Config structure represents the application configuration
type Config struct {
	Discovery struct {
		BootstrapHost string `yaml:"bootstrap_host" env:"URBANHIVE_BOOTSTRAP_HOST"`
		Port          string `yaml:"port" env:"URBANHIVE_DISCOVERY_PORT"`
		Path          string `yaml:"path" env:"URBANHIVE_DISCOVERY_PATH"`
		Timeout       string `yaml:"timeout" env:"URBANHIVE_DISCOVERY_TIMEOUT"`
	} `yaml:"discovery"`

	Client struct {
		BackendPort string `yaml:"backend_port" env:"URBANHIVE_BACKEND_PORT"`
		BaseURL     string `yaml:"base_url" env:"URBANHIVE_BASE_URL"`
		Timeout     string `yaml:"timeout" env:"URBANHIVE_CLIENT_TIMEOUT"`
		UserAgent   string `yaml:"user_agent" env:"URBANHIVE_USER_AGENT"`
	} `yaml:"client"`

	Session struct {
		Store         string `yaml:"store" env:"URBANHIVE_SESSION_STORE"`
		SQLitePath    string `yaml:"sqlite_path" env:"URBANHIVE_SQLITE_PATH"`
		RedisAddr     string `yaml:"redis_addr" env:"URBANHIVE_REDIS_ADDR"`
		RedisDB       int    `yaml:"redis_db" env:"URBANHIVE_REDIS_DB"`
		RedisPassword string `yaml:"redis_password" env:"URBANHIVE_REDIS_PASSWORD"`
		SigningKey    string `yaml:"signing_key" env:"URBANHIVE_SIGNING_KEY"`
	} `yaml:"session"`

	DevServer struct {
		Port           string   `yaml:"port" env:"URBANHIVE_DEV_PORT"`
		DiscoveryPort  string   `yaml:"discovery_port" env:"URBANHIVE_DEV_DISCOVERY_PORT"`
		AdvertiseIP    string   `yaml:"advertise_ip" env:"URBANHIVE_DEV_ADVERTISE_IP"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"URBANHIVE_DEV_ALLOWED_ORIGINS"`
	} `yaml:"devserver"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is normal; only a malformed one is an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Discovery.Port = "5000"
	config.Discovery.Path = "/get_server_ip"
	config.Discovery.Timeout = "5s"

	config.Client.BackendPort = "5000"
	config.Client.Timeout = "15s"
	config.Client.UserAgent = "urbanhive-client/1.0"

	config.Session.Store = StoreSQLite
	config.Session.SQLitePath = "urbanhive.db"

	config.DevServer.Port = "5000"
	config.DevServer.DiscoveryPort = "5001"
	config.DevServer.AdvertiseIP = "127.0.0.1"
	config.DevServer.AllowedOrigins = []string{"*"}

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Discovery.BootstrapHost == "" {
		return fmt.Errorf("discovery bootstrap host is required")
	}
	if strings.Contains(config.Discovery.BootstrapHost, "://") {
		return fmt.Errorf("discovery bootstrap host must be a bare host, got %q", config.Discovery.BootstrapHost)
	}
	if !strings.HasPrefix(config.Discovery.Path, "/") {
		return fmt.Errorf("discovery path must start with /")
	}

	if _, err := time.ParseDuration(config.Discovery.Timeout); err != nil {
		return fmt.Errorf("invalid discovery timeout format: %w", err)
	}
	if _, err := time.ParseDuration(config.Client.Timeout); err != nil {
		return fmt.Errorf("invalid client timeout format: %w", err)
	}
	if u := config.Client.BaseURL; u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return fmt.Errorf("client base url must start with http:// or https://, got %q", u)
	}

	switch config.Session.Store {
	case StoreMemory:
	case StoreSQLite:
		if config.Session.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required for the sqlite session store")
		}
		if config.Session.SigningKey == "" {
			return fmt.Errorf("session signing key is required")
		}
	case StoreRedis:
		if config.Session.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the redis session store")
		}
		if config.Session.SigningKey == "" {
			return fmt.Errorf("session signing key is required")
		}
	default:
		return fmt.Errorf("unknown session store %q", config.Session.Store)
	}

	if ip := config.DevServer.AdvertiseIP; ip != "" && net.ParseIP(ip) == nil {
		return fmt.Errorf("invalid devserver advertise ip %q", ip)
	}

	return nil
}

// DiscoveryURL returns the full URL of the discovery endpoint
func (c *Config) DiscoveryURL() string {
	return "http://" + net.JoinHostPort(c.Discovery.BootstrapHost, c.Discovery.Port) + c.Discovery.Path
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
