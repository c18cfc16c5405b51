package server

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mikkon/tiktok-oauth-webhook/internal/db"
)

// ProfileHandler returns the display fields of the active credential, or 401
// when no credential is active.
func ProfileHandler(store *db.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := store.ActiveProfile()
		if err != nil {
			logger.Error().Err(err).Msg("profile lookup failed")
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Erreur interne",
			})
			return
		}
		if record == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"error":   "Non authentifié",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"open_id":    record.OpenID,
			"nickname":   record.Nickname,
			"avatar_url": record.AvatarURL,
		})
	}
}

// LogoutHandler deactivates every active credential. Idempotent: a second
// call succeeds with zero effect.
func LogoutHandler(store *db.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := store.DeactivateAll()
		if err != nil {
			logger.Error().Err(err).Msg("logout failed")
			writeError(w, http.StatusInternalServerError, "persistence_failed", "Erreur lors de la déconnexion")
			return
		}

		logger.Info().Int64("deactivated", count).Msg("logout")
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
