package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	JWT         JWTConfig
	Context     ContextConfig
	Logger      LoggerConfig
	Async       AsyncConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// JWTConfig enables bearer authentication on the operation routes when
// Secret is set.
type JWTConfig struct {
	Secret string
	Issuer string
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// AsyncHeadroom is the slack REQUEST_TIMEOUT_SECONDS must leave above
// ASYNC_MAX_DELAY so a capped delay still finishes inside the request.
const AsyncHeadroom = 100 * time.Millisecond

type AsyncConfig struct {
	DefaultDelay time.Duration
	MaxDelay     time.Duration
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "valueops"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Issuer: getString("JWT_ISSUER", "valueops"),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
		Async: AsyncConfig{
			DefaultDelay: getMillis("ASYNC_DEFAULT_DELAY", 100*time.Millisecond),
			MaxDelay:     getMillis("ASYNC_MAX_DELAY", 4*time.Second),
		},
	}

	if cfg.Async.DefaultDelay > cfg.Async.MaxDelay {
		return nil, fmt.Errorf("ASYNC_DEFAULT_DELAY (%s) exceeds ASYNC_MAX_DELAY (%s)", cfg.Async.DefaultDelay, cfg.Async.MaxDelay)
	}
	if cfg.Async.MaxDelay+AsyncHeadroom > cfg.Context.RequestTimeout {
		return nil, fmt.Errorf("ASYNC_MAX_DELAY (%s) must stay at least %s below REQUEST_TIMEOUT_SECONDS (%s)",
			cfg.Async.MaxDelay, AsyncHeadroom, cfg.Context.RequestTimeout)
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// getMillis is getDuration with bare integers read as milliseconds.
func getMillis(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if ms, err := strconv.Atoi(val); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}

// AuthEnabled reports whether the operation routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWT.Secret != ""
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}
