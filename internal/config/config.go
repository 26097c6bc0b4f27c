package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Transport selects how the MCP server is exposed.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Auth mode selects where Syncro credentials come from.
//
// In "env" mode the process-wide SYNCRO_API_KEY/SYNCRO_SUBDOMAIN pair is
// used for every call. In "header" mode (HTTP transport only) every
// request to the protocol path must carry its own credentials in the
// X-Syncro-Api-Key / X-Syncro-Subdomain headers.
const (
	AuthModeEnv    = "env"
	AuthModeHeader = "header"
)

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config is the process-wide configuration, sourced from the environment
// with an optional YAML file underneath and cobra flags on top.
type Config struct {
	APIKey    string `env:"SYNCRO_API_KEY" yaml:"api_key"`
	Subdomain string `env:"SYNCRO_SUBDOMAIN" yaml:"subdomain"`

	Transport string `env:"SYNCRO_MCP_TRANSPORT" yaml:"transport"`
	AuthMode  string `env:"SYNCRO_MCP_AUTH_MODE" yaml:"auth_mode"`
	Addr      string `env:"SYNCRO_MCP_ADDR" yaml:"addr"`

	SessionStore   string        `env:"SYNCRO_SESSION_STORE" yaml:"session_store"`
	SessionTimeout time.Duration `env:"SYNCRO_SESSION_TIMEOUT" yaml:"session_timeout"`

	RedisAddr     string `env:"SYNCRO_REDIS_ADDR" yaml:"redis_addr"`
	RedisPassword string `env:"SYNCRO_REDIS_PASSWORD" yaml:"redis_password"`
	RedisDB       int    `env:"SYNCRO_REDIS_DB" yaml:"redis_db"`

	LogLevel string `env:"SYNCRO_LOG_LEVEL" yaml:"log_level"`
}

// Default returns the configuration with every default applied.
func Default() *Config {
	return &Config{
		Transport:      TransportStdio,
		AuthMode:       AuthModeEnv,
		Addr:           ":8080",
		SessionStore:   SessionStoreMemory,
		SessionTimeout: 30 * time.Minute,
		RedisAddr:      "localhost:6379",
		LogLevel:       "info",
	}
}

// Load builds the configuration with defaults < YAML file < environment
// precedence. The file is only read when path is non-empty.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// Validate checks mode combinations that cannot work.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q (supported: %s, %s)", c.Transport, TransportStdio, TransportHTTP)
	}

	switch c.AuthMode {
	case AuthModeEnv, AuthModeHeader:
	default:
		return fmt.Errorf("unknown auth mode %q (supported: %s, %s)", c.AuthMode, AuthModeEnv, AuthModeHeader)
	}

	if c.AuthMode == AuthModeHeader && c.Transport != TransportHTTP {
		return fmt.Errorf("auth mode %q requires the %s transport", AuthModeHeader, TransportHTTP)
	}

	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unknown session store %q (supported: %s, %s)", c.SessionStore, SessionStoreMemory, SessionStoreRedis)
	}

	return nil
}

// HasCredentials reports whether process-wide credentials are configured.
// Header auth mode works without them; env mode surfaces the absence as a
// tool error on first navigate, never as a startup failure.
func (c *Config) HasCredentials() bool {
	return c.APIKey != ""
}
