package server

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mikkon/tiktok-oauth-webhook/internal/util"
)

const (
	csrfCookieName = "csrf_state"
	// One authorize -> callback round trip; the cookie never outlives an hour.
	csrfCookieMaxAge  = 3600
	stateEntropyBytes = 32
)

// OAuthHandler starts the consent flow: it issues a CSRF state bound to the
// browser via a short-lived cookie and returns the provider authorization URL
// for the client to navigate.
func OAuthHandler(client Exchanger, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := generateState()
		if err != nil {
			logger.Error().Err(err).Msg("state generation failed")
			writeError(w, http.StatusInternalServerError, "state_generation_failed", "Impossible de générer l'état CSRF")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     csrfCookieName,
			Value:    state,
			Path:     "/",
			MaxAge:   csrfCookieMaxAge,
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		logger.Info().
			Str("state", util.SecretPrefix(state, util.DefaultSecretPrefixLen)).
			Msg("authorization flow started")
		writeJSON(w, http.StatusOK, map[string]string{
			"redirect_url": client.AuthorizeURL(state),
		})
	}
}

func generateState() (string, error) {
	b := make([]byte, stateEntropyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func clearCSRFCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
