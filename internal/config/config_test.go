package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/config"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, domain.AuthModeLocal, cfg.Mode())
	require.NoError(t, cfg.Validate())
}

func TestLoadReadsTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_url = "https://agency.example.com"
auth_mode = "hosted"
provider_key = "pk_test_Zm9vLmJhci5iYXo"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://agency.example.com", cfg.APIBaseURL)
	assert.Equal(t, domain.AuthModeHosted, cfg.Mode())
	assert.Equal(t, "pk_test_Zm9vLmJhci5iYXo", cfg.ProviderKey)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_url = [broken"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_url = "http://from-file:8000"`), 0o644))

	t.Setenv("OPENCLAW_API_URL", "http://from-env:8000")
	t.Setenv("OPENCLAW_AUTH_MODE", "hosted")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.APIBaseURL)
	assert.Equal(t, domain.AuthModeHosted, cfg.Mode())
}

func TestValidateRejectsUnknownAuthMode(t *testing.T) {
	cfg := config.Default()
	cfg.AuthMode = "saml"
	assert.Error(t, cfg.Validate())
}
