package config

import (
	"fmt"
	"log"

	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application's configuration values, populated from
// environment variables (see the envconfig tags for names and defaults).
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	HttpServer ServerConfig
	Storage    StorageConfig
	Sim        SimConfig
}

// ServerConfig holds HTTP server-specific configurations.
type ServerConfig struct {
	Port         string        `envconfig:"HTTP_SERVER_PORT" default:"8080"`
	TimeoutRead  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_READ" default:"15s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_WRITE" default:"15s"`
	TimeoutIdle  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_IDLE" default:"60s"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	// Backend is one of "memory", "file", or "redis".
	Backend string `envconfig:"STORAGE_BACKEND" default:"file"`
	// DataDir is the document directory for the file backend.
	DataDir string `envconfig:"STORAGE_DATA_DIR" default:"./data"`
	// RedisAddr is the host:port for the redis backend.
	RedisAddr string `envconfig:"STORAGE_REDIS_ADDR" default:"localhost:6379"`
	// RedisPrefix namespaces this instance's keys in a shared redis.
	RedisPrefix string `envconfig:"STORAGE_REDIS_PREFIX" default:"techstore"`
}

// SimConfig tunes the simulated-backend behavior.
type SimConfig struct {
	// LatencyScale multiplies every operation's nominal delay. 1.0 is
	// realistic network timing; 0 disables latency simulation.
	LatencyScale float64 `envconfig:"SIM_LATENCY_SCALE" default:"1.0"`
	// FailuresEnabled toggles randomized failure injection.
	FailuresEnabled bool `envconfig:"SIM_FAILURES_ENABLED" default:"true"`
	// Seed fixes the RNG seed for reproducible runs; 0 seeds from the clock.
	Seed int64 `envconfig:"SIM_SEED" default:"0"`
}

var cfg Config

// Load initializes the configuration from environment variables.
// It should be called once during application startup.
func Load() (*Config, error) {
	log.Println("Loading service configuration...")
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	switch cfg.Storage.Backend {
	case "memory", "file", "redis":
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be memory, file, or redis", cfg.Storage.Backend)
	}
	if cfg.Sim.LatencyScale < 0 {
		return nil, fmt.Errorf("invalid SIM_LATENCY_SCALE %v: must be >= 0", cfg.Sim.LatencyScale)
	}

	log.Printf("Configuration loaded successfully for APP_ENV: %s", cfg.AppEnv)
	return &cfg, nil
}
