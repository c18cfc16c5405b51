package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mikkon/tiktok-oauth-webhook/internal/db"
	apperrors "github.com/mikkon/tiktok-oauth-webhook/internal/errors"
	"github.com/mikkon/tiktok-oauth-webhook/internal/util"
)

// WebhookHandler receives the authorization code and runs the exchange and
// persistence flow. The GET leg is the browser redirect and must present a
// state matching the csrf_state cookie; the POST leg is server-to-server JSON
// and carries no browser cookie jar, so it is exempt from the CSRF check.
func WebhookHandler(client Exchanger, store *db.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, err := extractCode(r)
		if err != nil {
			logger.Warn().Err(err).Str("method", r.Method).Msg("callback rejected")
			if apperrors.Is(err, apperrors.ErrInvalidCSRFState) {
				writeError(w, http.StatusBadRequest, "invalid_csrf_state", "État CSRF invalide")
			} else {
				writeError(w, http.StatusBadRequest, "missing_authorization_code", "Code d'autorisation manquant")
			}
			return
		}

		result, err := client.Exchange(r.Context(), code)
		if err != nil {
			logger.Error().Err(err).Msg("token exchange failed")
			writeError(w, http.StatusInternalServerError, "token_exchange_failed", "Erreur lors de l'obtention du token")
			return
		}

		info, err := client.FetchCreatorInfo(r.Context(), result.AccessToken)
		if err != nil {
			// Best effort: the credential is stored without creator metadata.
			logger.Warn().Err(err).Msg("continuing without creator info")
			info = nil
		}

		if _, err := store.Save(result, info); err != nil {
			// The token was obtained; the caller must know persistence is what failed.
			logger.Error().Err(err).Msg("persistence failed after successful exchange")
			writeError(w, http.StatusInternalServerError, "persistence_failed", "Token obtenu mais erreur lors de la sauvegarde")
			return
		}

		clearCSRFCookie(w)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Token obtenu et sauvegardé avec succès",
			"data": map[string]any{
				"access_token": util.SecretPrefix(result.AccessToken, 20),
				"expires_in":   result.ExpiresIn,
				"open_id":      result.OpenID,
			},
		})
	}
}

// extractCode pulls the authorization code out of the request for the given
// delivery method, enforcing the CSRF contract on the GET leg.
func extractCode(r *http.Request) (string, error) {
	if r.Method == http.MethodGet {
		state := r.URL.Query().Get("state")
		cookie, err := r.Cookie(csrfCookieName)
		if err != nil || cookie.Value == "" || cookie.Value != state {
			return "", apperrors.ErrInvalidCSRFState
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			return "", apperrors.ErrMissingAuthorizationCode
		}
		return code, nil
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", apperrors.Tag(err, apperrors.ErrMissingAuthorizationCode)
	}
	if body.Code == "" {
		return "", apperrors.ErrMissingAuthorizationCode
	}
	return body.Code, nil
}
