package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mikkon/tiktok-oauth-webhook/internal/errors"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TIKTOK_CLIENT_KEY", "key")
	t.Setenv("TIKTOK_CLIENT_SECRET", "secret")
	t.Setenv("TIKTOK_REDIRECT_URI", "https://cb.example/webhook")
	t.Setenv("DATABASE_PATH", "tokens.db")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "key", cfg.ClientKey)
	require.Equal(t, []string{"user.info.basic"}, cfg.Scopes)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "0.0.0.0:5000", cfg.Addr())
	require.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TIKTOK_SCOPES", "user.info.basic,video.list")
	t.Setenv("TIKTOK_HTTP_TIMEOUT", "3s")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"user.info.basic", "video.list"}, cfg.Scopes)
	require.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
	require.True(t, cfg.Debug)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TIKTOK_CLIENT_SECRET", "")
	t.Setenv("DATABASE_PATH", "  ")

	_, err := Load()
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.ErrConfigurationMissing))
	require.Contains(t, err.Error(), "TIKTOK_CLIENT_SECRET")
	require.Contains(t, err.Error(), "DATABASE_PATH")
	require.NotContains(t, err.Error(), "TIKTOK_CLIENT_KEY")
}
