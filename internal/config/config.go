// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/mikkon/tiktok-oauth-webhook/internal/errors"
)

// Config holds all settings for the webhook. It is loaded once at startup and
// read-only afterwards.
type Config struct {
	ClientKey    string `env:"TIKTOK_CLIENT_KEY"`
	ClientSecret string `env:"TIKTOK_CLIENT_SECRET"`
	RedirectURI  string `env:"TIKTOK_REDIRECT_URI"`
	DatabasePath string `env:"DATABASE_PATH"`

	Scopes        []string      `env:"TIKTOK_SCOPES"        envSeparator:"," envDefault:"user.info.basic"`
	EndpointsFile string        `env:"TIKTOK_ENDPOINTS_FILE"`
	HTTPTimeout   time.Duration `env:"TIKTOK_HTTP_TIMEOUT"  envDefault:"10s"`
	Host          string        `env:"HOST"                 envDefault:"0.0.0.0"`
	Port          string        `env:"PORT"                 envDefault:"5000"`
	Debug         bool          `env:"DEBUG"                envDefault:"false"`
}

// Load parses configuration from environment variables. Missing required
// values are reported together so the operator can fix them in one pass.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	required := map[string]string{
		"TIKTOK_CLIENT_KEY":    cfg.ClientKey,
		"TIKTOK_CLIENT_SECRET": cfg.ClientSecret,
		"TIKTOK_REDIRECT_URI":  cfg.RedirectURI,
		"DATABASE_PATH":        cfg.DatabasePath,
	}

	var missing []string
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Config{}, apperrors.Wrapf(apperrors.ErrConfigurationMissing, "%s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
