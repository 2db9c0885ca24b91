package pixiv

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// AuthTokenURL is the OAuth token endpoint of the mobile apps.
const AuthTokenURL = "https://oauth.secure.pixiv.net/auth/token"

// OAuth credentials of the official mobile apps, shared by pixivpy and its ports.
const (
	clientID      = "MOBrBDS8blbauoSck0ZfDbtuzpyT"
	clientSecret  = "lsACyCD94FhDUtGTXi3QzcFE2uU1hqtDaKeqrdwj"
	authUserAgent = "PixivAndroidApp/5.0.234 (Android 11; Pixel 5)"
)

const (
	// defaultExpiresIn is assumed when the server omits expires_in.
	defaultExpiresIn = 3600 * time.Second
	// refreshSafeMargin is subtracted from the reported lifetime so a token
	// is refreshed shortly before the server would reject it.
	refreshSafeMargin = 300 * time.Second
)

// ErrNoRefreshToken is returned by Authenticate on clients constructed
// without a refresh token.
var ErrNoRefreshToken = errors.New("pixiv: client has no refresh token")

type authMode int

const (
	authNone authMode = iota
	authFixed
	authRefresh
)

// tokenSource owns the credential state of a client: the refresh token, the
// current access token, and its expiry. In refresh mode expired tokens are
// renewed on demand; concurrent renewals collapse into a single exchange via
// singleflight.
type tokenSource struct {
	mode         authMode
	refreshToken string
	authURL      string
	httpc        *http.Client
	log          zerolog.Logger
	now          func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	group singleflight.Group
}

// cached returns the stored access token if it has not expired yet.
func (ts *tokenSource) cached() (string, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.accessToken != "" && ts.now().Before(ts.expiresAt) {
		return ts.accessToken, true
	}
	return "", false
}

// Token returns the access token to use for the next request. In no-auth mode
// it returns the empty string and the request goes out without an
// Authorization header. Fixed tokens are returned verbatim, never refreshed.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	switch ts.mode {
	case authNone:
		return "", nil
	case authFixed:
		return ts.accessToken, nil
	}

	if tok, ok := ts.cached(); ok {
		return tok, nil
	}

	v, err, _ := ts.group.Do("refresh", func() (any, error) {
		// Another caller may have refreshed while we queued.
		if tok, ok := ts.cached(); ok {
			return tok, nil
		}
		res, err := ts.refresh(ctx)
		if err != nil {
			return "", err
		}
		return res.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// refresh exchanges the refresh token for a new access token and stores it.
func (ts *tokenSource) refresh(ctx context.Context) (*AuthResponse, error) {
	form := url.Values{
		"client_id":      {clientID},
		"client_secret":  {clientSecret},
		"grant_type":     {"refresh_token"},
		"include_policy": {"true"},
		"refresh_token":  {ts.refreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", authUserAgent)

	ts.log.Debug().Str("url", ts.authURL).Msg("refreshing access token")

	resp, err := ts.httpc.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: ts.authURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: ts.authURL, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var res AuthResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	if res.AccessToken == "" {
		return nil, &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	expiresIn := defaultExpiresIn
	if res.ExpiresIn > 0 {
		expiresIn = time.Duration(res.ExpiresIn) * time.Second
	}

	ts.mu.Lock()
	ts.accessToken = res.AccessToken
	ts.expiresAt = ts.now().Add(expiresIn - refreshSafeMargin)
	if res.RefreshToken != "" {
		ts.refreshToken = res.RefreshToken
	}
	ts.mu.Unlock()

	ts.log.Info().Time("expires_at", ts.expiresAt).Msg("access token refreshed")
	return &res, nil
}

// Authenticate forces a refresh-token exchange and returns the server
// response. Clients built from a fixed access token or without credentials
// return ErrNoRefreshToken.
func (c *Client) Authenticate(ctx context.Context) (*AuthResponse, error) {
	if c.tokens.mode != authRefresh {
		return nil, ErrNoRefreshToken
	}
	return c.tokens.refresh(ctx)
}

// AccessToken returns the access token the client would use for its next
// request, refreshing it first if needed. In no-auth mode it returns "".
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	return c.tokens.Token(ctx)
}
