// Package server wires the HTTP surface of the webhook.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/mikkon/tiktok-oauth-webhook/internal/config"
	"github.com/mikkon/tiktok-oauth-webhook/internal/db"
	"github.com/mikkon/tiktok-oauth-webhook/internal/logging"
	"github.com/mikkon/tiktok-oauth-webhook/internal/tiktok"
)

// Exchanger is the provider-facing surface the handlers need.
// *tiktok.Client implements it; tests substitute a stub.
type Exchanger interface {
	AuthorizeURL(state string) string
	Exchange(ctx context.Context, code string) (*tiktok.TokenResult, error)
	FetchCreatorInfo(ctx context.Context, accessToken string) (*tiktok.CreatorInfo, error)
}

// New builds the router with all routes registered.
func New(cfg config.Config, client Exchanger, store *db.Store, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(logging.Middleware(logger))

	r.Get("/", HomeHandler())
	r.Get("/oauth", OAuthHandler(client, logger))
	r.Get("/webhook", WebhookHandler(client, store, logger))
	r.Post("/webhook", WebhookHandler(client, store, logger))
	r.Get("/health", HealthHandler(store, cfg.Debug))
	r.Get("/user/profile", ProfileHandler(store, logger))
	r.Post("/logout", LogoutHandler(store, logger))

	return r
}
