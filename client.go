package pixiv

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://app-api.pixiv.net"

// Client is the App-API client. All methods are safe for concurrent use.
type Client struct {
	cfg    ClientConfig
	http   *http.Client
	tokens *tokenSource
	log    zerolog.Logger
}

// NewClient creates a client from an explicit configuration. The auth mode is
// derived from the credential fields: RefreshToken wins over AccessToken;
// with neither set the client is unauthenticated and sends no Authorization
// header.
func NewClient(cfg ClientConfig) *Client {
	cfg.defaults()

	ts := &tokenSource{
		authURL: cfg.AuthURL,
		httpc:   cfg.HTTPClient,
		log:     *cfg.Logger,
		now:     time.Now,
	}
	switch {
	case cfg.RefreshToken != "":
		ts.mode = authRefresh
		ts.refreshToken = cfg.RefreshToken
	case cfg.AccessToken != "":
		ts.mode = authFixed
		ts.accessToken = cfg.AccessToken
	default:
		ts.mode = authNone
	}

	return &Client{
		cfg:    cfg,
		http:   cfg.HTTPClient,
		tokens: ts,
		log:    *cfg.Logger,
	}
}

// NewFromRefreshToken creates a client that obtains and renews its access
// token from the given refresh token on demand.
func NewFromRefreshToken(refreshToken string) *Client {
	return NewClient(ClientConfig{RefreshToken: refreshToken})
}

// NewFromAccessToken creates a client that sends the given access token
// verbatim on every request and never refreshes it.
func NewFromAccessToken(accessToken string) *Client {
	return NewClient(ClientConfig{AccessToken: accessToken})
}

// NewNoAuth creates an unauthenticated client. Requests are sent without an
// Authorization header; endpoints that require auth will fail server-side.
func NewNoAuth() *Client {
	return NewClient(ClientConfig{})
}

// BaseURL returns the API host the client talks to.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }
