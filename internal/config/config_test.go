package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORTFOLIO_API_URL",
		"PORTFOLIO_API_TIMEOUT_SECONDS",
		"PORTFOLIO_ADMIN_TOKEN",
		"PORTFOLIO_ICON_CATALOG",
		"LOG_LEVEL",
		"LOG_FILE",
	} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Empty(t, cfg.API.AdminToken)
	assert.Empty(t, cfg.Icons.CatalogPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_API_URL", "https://api.example.com/v1")
	t.Setenv("PORTFOLIO_API_TIMEOUT_SECONDS", "15")
	t.Setenv("PORTFOLIO_ADMIN_TOKEN", "secret123")
	t.Setenv("PORTFOLIO_ICON_CATALOG", "icons.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "secret123", cfg.API.AdminToken)
	assert.Equal(t, "icons.yaml", cfg.Icons.CatalogPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadIgnoresMalformedTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_API_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.API.Timeout)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		baseURL string
		timeout time.Duration
		wantErr bool
	}{
		{name: "valid", baseURL: "http://localhost:8080", wantErr: false},
		{name: "empty url", baseURL: "", wantErr: true},
		{name: "relative url", baseURL: "/api", wantErr: true},
		{name: "missing host", baseURL: "http://", wantErr: true},
		{name: "negative timeout", baseURL: "http://localhost:8080", timeout: -time.Second, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{API: APIConfig{BaseURL: tc.baseURL, Timeout: tc.timeout}}
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
