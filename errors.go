package pixiv

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// AuthError is returned when the OAuth endpoint rejects a token refresh.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("pixiv: auth failed (status %d): %s", e.StatusCode, truncate(e.Body, 200))
}

// NetworkError wraps a transport-level failure (DNS, TLS, connection reset, ...).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("pixiv: request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is returned when the API answers with a non-2xx status.
// Message holds the error message extracted from the JSON body, if any.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("pixiv: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("pixiv: HTTP %d: %s", e.StatusCode, truncate(string(e.Body), 200))
}

// DecodeError is returned when a response body does not match the declared
// response shape.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pixiv: decode response: %v (body: %s)", e.Err, truncate(string(e.Body), 200))
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether err is an HTTPError with status 429.
func IsRateLimited(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusTooManyRequests
}

// apiErrorMessage probes a response body for the error message fields the API
// uses. App-API errors look like {"error":{"user_message":..,"message":..}},
// the OAuth endpoint uses {"errors":{"system":{"message":..}}}.
func apiErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{
		"error.user_message",
		"error.message",
		"errors.system.message",
	} {
		if msg := gjson.GetBytes(body, path).String(); msg != "" {
			return msg
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
