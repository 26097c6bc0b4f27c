package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyre-technology/syncro-mcp/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.TransportStdio, cfg.Transport)
	assert.Equal(t, config.AuthModeEnv, cfg.AuthMode)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, config.SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, 30*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.HasCredentials())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SYNCRO_API_KEY", "env-key")
	t.Setenv("SYNCRO_SUBDOMAIN", "acme")
	t.Setenv("SYNCRO_MCP_TRANSPORT", "http")
	t.Setenv("SYNCRO_MCP_AUTH_MODE", "header")
	t.Setenv("SYNCRO_SESSION_TIMEOUT", "5m")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "acme", cfg.Subdomain)
	assert.Equal(t, config.TransportHTTP, cfg.Transport)
	assert.Equal(t, config.AuthModeHeader, cfg.AuthMode)
	assert.Equal(t, 5*time.Minute, cfg.SessionTimeout)
	assert.True(t, cfg.HasCredentials())
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_key: file-key\ntransport: http\naddr: \":9090\"\n"), 0o644))

	t.Setenv("SYNCRO_API_KEY", "env-key")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	// Environment wins over the file; the file wins over defaults.
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, config.TransportHTTP, cfg.Transport)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, config.AuthModeEnv, cfg.AuthMode)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *config.Config) {},
		},
		{
			name: "header auth over http is valid",
			mutate: func(c *config.Config) {
				c.Transport = config.TransportHTTP
				c.AuthMode = config.AuthModeHeader
			},
		},
		{
			name:    "unknown transport",
			mutate:  func(c *config.Config) { c.Transport = "grpc" },
			wantErr: "unknown transport",
		},
		{
			name:    "unknown auth mode",
			mutate:  func(c *config.Config) { c.AuthMode = "oauth" },
			wantErr: "unknown auth mode",
		},
		{
			name:    "header auth requires http",
			mutate:  func(c *config.Config) { c.AuthMode = config.AuthModeHeader },
			wantErr: "requires the http transport",
		},
		{
			name:    "unknown session store",
			mutate:  func(c *config.Config) { c.SessionStore = "etcd" },
			wantErr: "unknown session store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
