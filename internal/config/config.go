// Package config loads dashboard configuration from an optional TOML file
// in the user config directory, with environment variables taking
// precedence over the file and CLI flags over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
)

const configFileName = "config.toml"

type Config struct {
	// APIBaseURL is the root URL of the coordination backend.
	APIBaseURL string `toml:"api_url"`

	// AuthMode is "local" (shared bearer token) or "hosted" (identity
	// provider).
	AuthMode string `toml:"auth_mode"`

	// ProviderKey is the hosted provider's publishable key. Only
	// meaningful in hosted mode.
	ProviderKey string `toml:"provider_key"`

	// ProviderSessionToken is the session token issued by the hosted
	// provider, when one is available in the environment.
	ProviderSessionToken string `toml:"provider_session_token"`

	// DBPath overrides the local state database location.
	DBPath string `toml:"db_path"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

func Default() Config {
	return Config{
		APIBaseURL: "http://localhost:8000",
		AuthMode:   string(domain.AuthModeLocal),
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// DefaultPath returns the config file location under the user config
// directory.
func DefaultPath(appName string) (string, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(cfgDir, appName, configFileName), nil
}

// Load reads the TOML file at path when it exists and applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func (c Config) Mode() domain.AuthMode {
	return domain.AuthMode(strings.TrimSpace(strings.ToLower(c.AuthMode)))
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("api_url is required")
	}
	if !c.Mode().Valid() {
		return fmt.Errorf("auth_mode must be %q or %q, got %q",
			domain.AuthModeLocal, domain.AuthModeHosted, c.AuthMode)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.APIBaseURL, "OPENCLAW_API_URL")
	setFromEnv(&cfg.AuthMode, "OPENCLAW_AUTH_MODE")
	setFromEnv(&cfg.ProviderKey, "OPENCLAW_PROVIDER_KEY")
	setFromEnv(&cfg.ProviderSessionToken, "OPENCLAW_PROVIDER_SESSION_TOKEN")
	setFromEnv(&cfg.DBPath, "OPENCLAW_DB_PATH")
	setFromEnv(&cfg.LogLevel, "OPENCLAW_LOG_LEVEL")
	setFromEnv(&cfg.LogFormat, "OPENCLAW_LOG_FORMAT")
}

func setFromEnv(target *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*target = value
	}
}
