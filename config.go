package pixiv

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ClientConfig holds all configuration for the API client.
type ClientConfig struct {
	// RefreshToken enables refresh-token auth: the access token is obtained
	// and renewed on demand. Takes precedence over AccessToken.
	RefreshToken string

	// AccessToken enables fixed-token auth: used verbatim, never refreshed.
	AccessToken string

	// BaseURL overrides the API host, e.g. to point at a reverse proxy.
	// Default: https://app-api.pixiv.net. When overridden, requests still
	// carry a Host: app-api.pixiv.net header.
	BaseURL string

	// AuthURL overrides the OAuth token endpoint. Default: AuthTokenURL.
	AuthURL string

	// UserAgent overrides the mobile-app User-Agent on API requests.
	UserAgent string

	// HTTPClient is the transport used for all requests.
	// Default: a client with a 60 second timeout.
	HTTPClient *http.Client

	// Logger receives debug/info lines. Default: a no-op logger.
	Logger *zerolog.Logger
}

// defaults fills in zero-value config fields.
func (cfg *ClientConfig) defaults() {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = AuthTokenURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
}
