package pixiv

import (
	"net/http"
	"strings"
)

// defaultUserAgent mimics the official iOS app; the API rejects unknown clients.
const defaultUserAgent = "PixivIOSApp/7.13.3 (iOS 14.6; iPhone13,2)"

const (
	appOS        = "ios"
	appOSVersion = "14.6"
	apiHost      = "app-api.pixiv.net"
)

// setAppHeaders attaches the mobile-app identification headers. When the
// client is pointed at a proxy host, the Host header still names the real API
// so the proxy can forward it.
func (c *Client) setAppHeaders(req *http.Request) {
	req.Header.Set("App-OS", appOS)
	req.Header.Set("App-OS-Version", appOSVersion)
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	if c.cfg.BaseURL != defaultBaseURL && strings.HasPrefix(req.URL.String(), c.cfg.BaseURL) {
		req.Host = apiHost
	}
}
