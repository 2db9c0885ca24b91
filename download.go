package pixiv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

const defaultReferer = "https://app-api.pixiv.net/"

// DownloadOptions control where and how Download writes the file.
type DownloadOptions struct {
	// Name overrides the file name; by default the last path segment of the
	// URL is used.
	Name string
	// Replace overwrites an existing file instead of skipping it.
	Replace bool
	// Referer overrides the Referer header. Image hosts reject requests
	// without a pixiv referer.
	Referer string
}

// Download fetches an image or zip URL into dir. It reports whether a file
// was written; a false result with a nil error means the file already existed
// and was left alone.
func (c *Client) Download(ctx context.Context, rawURL, dir string, opts *DownloadOptions) (bool, error) {
	name := ""
	referer := defaultReferer
	replace := false
	if opts != nil {
		name = opts.Name
		replace = opts.Replace
		if opts.Referer != "" {
			referer = opts.Referer
		}
	}
	if name == "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return false, &NetworkError{URL: rawURL, Err: err}
		}
		name = path.Base(u.Path)
	}
	dest := filepath.Join(dir, name)

	if !replace {
		if _, err := os.Stat(dest); err == nil {
			c.log.Debug().Str("path", dest).Msg("download skipped, file exists")
			return false, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false, &NetworkError{URL: rawURL, Err: err}
	}
	req.Header.Set("Referer", referer)
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, &HTTPError{StatusCode: resp.StatusCode, Body: body, Message: apiErrorMessage(body)}
	}

	tmp, err := os.CreateTemp(dir, name+".part*")
	if err != nil {
		return false, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return false, &NetworkError{URL: rawURL, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return false, err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return false, err
	}
	c.log.Debug().Str("path", dest).Msg("download complete")
	return true, nil
}
