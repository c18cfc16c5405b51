package main

import (
	"net/http"

	"github.com/mikkon/tiktok-oauth-webhook/internal/config"
	"github.com/mikkon/tiktok-oauth-webhook/internal/db"
	"github.com/mikkon/tiktok-oauth-webhook/internal/logging"
	"github.com/mikkon/tiktok-oauth-webhook/internal/server"
	"github.com/mikkon/tiktok-oauth-webhook/internal/tiktok"
	"github.com/mikkon/tiktok-oauth-webhook/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The config decides the log level, so the bootstrap logger runs at info.
		bootstrap := logging.New(false)
		bootstrap.Fatal().Err(err).Msg("configuration incomplete")
	}

	logger := logging.New(cfg.Debug)
	logger.Info().
		Str("version", version.Version).
		Bool("debug", cfg.Debug).
		Msg("starting tiktok oauth webhook")

	database, err := db.InitDB(cfg.DatabasePath, cfg.Debug)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to initialize database")
	}
	store := db.NewStore(database, logger)

	endpoints, err := tiktok.LoadEndpoints(cfg.EndpointsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load provider endpoints")
	}
	client := tiktok.NewClient(cfg.ClientKey, cfg.ClientSecret, cfg.RedirectURI, cfg.Scopes, endpoints, cfg.HTTPTimeout, logger)

	handler := server.New(cfg, client, store, logger)

	logger.Info().
		Str("addr", cfg.Addr()).
		Str("redirect_uri", cfg.RedirectURI).
		Msg("listening")
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
