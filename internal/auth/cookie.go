package auth

import (
	"net/url"
	"strings"
)

// CSRFCookieName is the cookie the server sets with the anti-forgery token.
const CSRFCookieName = "csrftoken"

// SessionCookieName is the server session cookie.
const SessionCookieName = "sessionid"

// CookieValue looks up name in a "; "-delimited cookie string (the format
// of a Cookie header) and returns its percent-decoded value. The first
// occurrence wins. Values that fail to decode are returned raw.
func CookieValue(header, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	prefix := name + "="
	for _, part := range strings.Split(header, "; ") {
		part = strings.TrimLeft(part, " ")
		if !strings.HasPrefix(part, prefix) {
			continue
		}
		raw := part[len(prefix):]
		if i := strings.IndexByte(raw, ';'); i >= 0 {
			raw = raw[:i]
		}
		if v, err := url.PathUnescape(raw); err == nil {
			return v, true
		}
		return raw, true
	}
	return "", false
}
