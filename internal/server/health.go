package server

import (
	"net/http"
	"time"

	"github.com/mikkon/tiktok-oauth-webhook/internal/db"
	"github.com/mikkon/tiktok-oauth-webhook/internal/version"
)

// HealthHandler reports service and storage status. The response is always
// HTTP 200; degradation is carried in the body so infra probes stay simple.
func HealthHandler(store *db.Store, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbStatus := "connected"
		count, err := store.Health()
		if err != nil {
			dbStatus = "error"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "tiktok-oauth-webhook",
			"version":   version.Version,
			"database": map[string]any{
				"status":      dbStatus,
				"token_count": count,
			},
			"debug_mode": debug,
		})
	}
}
