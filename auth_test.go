package pixiv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newAuthServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestTokenRefreshedOnceUntilExpiry(t *testing.T) {
	var calls atomic.Int64
	srv := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		if got := r.PostForm.Get("grant_type"); got != "refresh_token" {
			t.Errorf("grant_type = %q", got)
		}
		if got := r.PostForm.Get("refresh_token"); got != "refresh-1" {
			t.Errorf("refresh_token = %q", got)
		}
		n := calls.Add(1)
		fmt.Fprintf(w, `{"access_token":"tok-%d","refresh_token":"refresh-1","expires_in":3600}`, n)
	})

	now := time.Now()
	c := NewClient(ClientConfig{RefreshToken: "refresh-1", AuthURL: srv.URL})
	c.tokens.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		tok, err := c.AccessToken(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if tok != "tok-1" {
			t.Fatalf("token = %q, want tok-1", tok)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 refresh, got %d", calls.Load())
	}

	// Past the safety margin the cached token is stale.
	now = now.Add(3600 * time.Second)
	tok, err := c.AccessToken(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if tok != "tok-2" {
		t.Fatalf("token = %q, want tok-2", tok)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 refreshes, got %d", calls.Load())
	}
}

func TestConcurrentRefreshCollapses(t *testing.T) {
	var calls atomic.Int64
	srv := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		fmt.Fprint(w, `{"access_token":"tok","expires_in":3600}`)
	})

	c := NewClient(ClientConfig{RefreshToken: "refresh-1", AuthURL: srv.URL})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := c.AccessToken(context.Background())
			if err != nil {
				t.Error(err)
			}
			if tok != "tok" {
				t.Errorf("token = %q", tok)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected 1 refresh for 8 concurrent callers, got %d", calls.Load())
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	srv := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok","refresh_token":"rotated","expires_in":3600}`)
	})

	c := NewClient(ClientConfig{RefreshToken: "original", AuthURL: srv.URL})
	if _, err := c.Authenticate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.tokens.refreshToken != "rotated" {
		t.Fatalf("refreshToken = %q, want rotated", c.tokens.refreshToken)
	}
}

func TestFixedTokenNeverRefreshed(t *testing.T) {
	srv := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("fixed-token client must not hit the auth endpoint")
	})

	c := NewClient(ClientConfig{AccessToken: "fixed-token", AuthURL: srv.URL})
	tok, err := c.AccessToken(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if tok != "fixed-token" {
		t.Fatalf("token = %q, want fixed-token", tok)
	}
}

func TestNoAuthToken(t *testing.T) {
	c := NewNoAuth()
	tok, err := c.AccessToken(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if tok != "" {
		t.Fatalf("token = %q, want empty", tok)
	}
}

func TestAuthenticateRequiresRefreshToken(t *testing.T) {
	for _, c := range []*Client{NewNoAuth(), NewFromAccessToken("tok")} {
		if _, err := c.Authenticate(context.Background()); !errors.Is(err, ErrNoRefreshToken) {
			t.Fatalf("expected ErrNoRefreshToken, got %v", err)
		}
	}
}

func TestRefreshErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"rejected refresh token", 400, `{"errors":{"system":{"message":"Invalid refresh token"}}}`, func(err error) bool {
			var ae *AuthError
			return errors.As(err, &ae) && ae.StatusCode == 400
		}},
		{"html error page", 502, `<html>bad gateway</html>`, func(err error) bool {
			var ae *AuthError
			return errors.As(err, &ae) && ae.StatusCode == 502
		}},
		{"invalid json on 200", 200, `{invalid`, func(err error) bool {
			var de *DecodeError
			return errors.As(err, &de)
		}},
		{"missing access token", 200, `{"expires_in":3600}`, func(err error) bool {
			var ae *AuthError
			return errors.As(err, &ae)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})
			c := NewClient(ClientConfig{RefreshToken: "refresh-1", AuthURL: srv.URL})
			_, err := c.Authenticate(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Fatalf("unexpected error type: %v", err)
			}
		})
	}
}
