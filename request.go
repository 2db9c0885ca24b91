package pixiv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("response is not valid JSON")

// call executes a cataloged operation: it validates the caller arguments
// against the endpoint's parameter layout, applies declared defaults, and
// dispatches the request. out receives the decoded response (see decodeInto).
func (c *Client) call(ctx context.Context, op string, args url.Values, out any) error {
	ep, ok := Endpoints[op]
	if !ok {
		return fmt.Errorf("pixiv: unknown operation %q", op)
	}

	path := ep.Path
	query := url.Values{}
	form := url.Values{}

	for _, p := range ep.Params {
		vals := args[p.Name]
		if len(vals) == 0 || vals[0] == "" {
			if p.Required {
				return fmt.Errorf("pixiv: %s: missing required parameter %q", op, p.Name)
			}
			if p.Default == "" {
				continue
			}
			vals = []string{p.Default}
		}
		switch p.In {
		case InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(vals[0]))
		case InQuery:
			query[p.Name] = vals
		case InForm:
			form[p.Name] = vals
		}
	}
	if i := strings.IndexByte(path, '{'); i >= 0 {
		return fmt.Errorf("pixiv: %s: unresolved placeholder in path %q", op, path)
	}

	urlStr := path
	if !strings.HasPrefix(urlStr, "http") {
		urlStr = c.cfg.BaseURL + urlStr
	}
	return c.doRequest(ctx, ep.Method, urlStr, query, form, ep.Headers, ep.Auth, out)
}

// doRequest builds and sends a single HTTP request and decodes the response.
// No retries happen at this layer.
func (c *Client) doRequest(
	ctx context.Context,
	method, urlStr string,
	query, form url.Values,
	headers map[string]string,
	withAuth bool,
	out any,
) error {
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(urlStr, "?") {
			sep = "&"
		}
		urlStr += sep + query.Encode()
	}

	var body io.Reader
	if len(form) > 0 {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, body)
	if err != nil {
		return fmt.Errorf("pixiv: build request: %w", err)
	}
	c.setAppHeaders(req)
	if len(form) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if withAuth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug().Str("method", method).Str("url", urlStr).Msg("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{URL: urlStr, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: urlStr, Err: err}
	}

	c.log.Debug().Int("status", resp.StatusCode).Int("bytes", len(respBody)).Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Message:    apiErrorMessage(respBody),
		}
	}
	return decodeInto(respBody, out)
}

// decodeInto unmarshals a response body into out. Three sinks are supported:
// *json.RawMessage keeps the payload as-is (validated), *[]byte keeps raw
// bytes without validation (for HTML responses), anything else goes through
// encoding/json. A shape mismatch surfaces as DecodeError, never as a silent
// zero value.
func decodeInto(body []byte, out any) error {
	switch v := out.(type) {
	case nil:
		return nil
	case *[]byte:
		*v = append((*v)[:0], body...)
		return nil
	case *json.RawMessage:
		if !gjson.ValidBytes(body) {
			return &DecodeError{Body: body, Err: errInvalidJSON}
		}
		*v = append((*v)[:0], body...)
		return nil
	default:
		if err := json.Unmarshal(body, out); err != nil {
			return &DecodeError{Body: body, Err: err}
		}
		return nil
	}
}
