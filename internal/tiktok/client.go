// Package tiktok implements the provider-facing OAuth calls.
package tiktok

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/mikkon/tiktok-oauth-webhook/internal/errors"
	"github.com/mikkon/tiktok-oauth-webhook/internal/util"
)

const defaultTimeout = 10 * time.Second

// Client performs the authorization-code exchange and the optional
// creator-info lookup against the TikTok open API.
type Client struct {
	clientKey    string
	clientSecret string
	redirectURI  string
	scopes       []string
	endpoints    Endpoints
	httpClient   *http.Client
	logger       zerolog.Logger
}

// NewClient builds a provider client. A non-positive timeout falls back to
// the 10s default so no outbound call can block indefinitely.
func NewClient(clientKey, clientSecret, redirectURI string, scopes []string, endpoints Endpoints, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		clientKey:    clientKey,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		scopes:       scopes,
		endpoints:    endpoints,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger.With().Str("component", "tiktok").Logger(),
	}
}

// AuthorizeURL builds the consent-screen URL for the given CSRF state.
func (c *Client) AuthorizeURL(state string) string {
	params := url.Values{
		"client_key":    {c.clientKey},
		"scope":         {strings.Join(c.scopes, ",")},
		"response_type": {"code"},
		"redirect_uri":  {c.redirectURI},
		"state":         {state},
	}
	return c.endpoints.AuthURL + "?" + params.Encode()
}

// Exchange trades an authorization code for a token pair. The POST is
// form-encoded; TikTok identifies the application via client_key rather than
// the standard client_id field, so the request is built by hand.
func (c *Client) Exchange(ctx context.Context, code string) (*TokenResult, error) {
	form := url.Values{
		"client_key":    {c.clientKey},
		"client_secret": {c.clientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {c.redirectURI},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoints.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrTokenExchangeFailed)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cache-Control", "no-cache")

	c.logger.Debug().
		Str("code", util.SecretPrefix(code, util.DefaultSecretPrefixLen)).
		Str("url", c.endpoints.TokenURL).
		Msg("exchanging authorization code")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrTokenExchangeFailed)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrTokenExchangeFailed)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", util.TruncateLog(string(body), util.DefaultLogMaxLen)).
			Msg("token endpoint error")
		return nil, apperrors.Wrapf(apperrors.ErrTokenExchangeFailed, "status %d", resp.StatusCode)
	}

	var result TokenResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrTokenExchangeFailed)
	}
	if result.ErrorCode != "" || result.AccessToken == "" {
		c.logger.Error().
			Str("error", result.ErrorCode).
			Str("description", result.ErrorDescription).
			Str("log_id", result.LogID).
			Msg("token endpoint rejected code")
		return nil, apperrors.Wrapf(apperrors.ErrTokenExchangeFailed, "provider error %q", result.ErrorCode)
	}

	c.logger.Info().
		Str("open_id", result.OpenID).
		Str("access_token", util.SecretPrefix(result.AccessToken, util.DefaultSecretPrefixLen)).
		Int64("expires_in", result.ExpiresIn).
		Msg("token obtained")
	return &result, nil
}

// FetchCreatorInfo queries creator metadata with a freshly obtained access
// token. Enrichment is best effort: callers treat any error as "absent" and
// persist the credential without the optional fields.
func (c *Client) FetchCreatorInfo(ctx context.Context, accessToken string) (*CreatorInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoints.CreatorInfoURL, nil)
	if err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrEnrichmentUnavailable)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrEnrichmentUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrEnrichmentUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("body", util.TruncateLog(string(body), util.DefaultLogMaxLen)).
			Msg("creator info unavailable")
		return nil, apperrors.Wrapf(apperrors.ErrEnrichmentUnavailable, "status %d", resp.StatusCode)
	}

	var decoded creatorInfoResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrEnrichmentUnavailable)
	}
	if decoded.Error.Code != "" && decoded.Error.Code != "ok" {
		c.logger.Warn().
			Str("code", decoded.Error.Code).
			Str("message", decoded.Error.Message).
			Str("log_id", decoded.Error.LogID).
			Msg("creator info unavailable")
		return nil, apperrors.Wrapf(apperrors.ErrEnrichmentUnavailable, "provider error %q", decoded.Error.Code)
	}

	return &CreatorInfo{
		Nickname:         decoded.Data.CreatorNickname,
		AvatarURL:        decoded.Data.CreatorAvatarURL,
		Username:         decoded.Data.CreatorUsername,
		CommentDisabled:  decoded.Data.CommentDisabled,
		DuetDisabled:     decoded.Data.DuetDisabled,
		StitchDisabled:   decoded.Data.StitchDisabled,
		MaxVideoDuration: decoded.Data.MaxVideoPostDurationSec,
	}, nil
}
