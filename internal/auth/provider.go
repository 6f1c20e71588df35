package auth

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// ErrNoCSRFToken means the provider has no anti-forgery token to offer.
var ErrNoCSRFToken = errors.New("no csrftoken cookie")

// CredentialProvider supplies the anti-forgery token for mutating requests.
type CredentialProvider interface {
	CSRFToken() (string, error)
}

// Static always returns the same token.
type Static string

func (s Static) CSRFToken() (string, error) {
	if s == "" {
		return "", ErrNoCSRFToken
	}
	return string(s), nil
}

// CookieHeader reads the token out of a raw cookie string such as
// "sessionid=abc; csrftoken=xyz".
type CookieHeader string

func (h CookieHeader) CSRFToken() (string, error) {
	v, ok := CookieValue(string(h), CSRFCookieName)
	if !ok || v == "" {
		return "", ErrNoCSRFToken
	}
	return v, nil
}

// JarProvider reads the token from a cookie jar, so a rotated csrftoken set
// by the server is picked up on the next request.
type JarProvider struct {
	Jar http.CookieJar
	URL *url.URL
}

func NewJarProvider(jar http.CookieJar, baseURL string) (*JarProvider, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &JarProvider{Jar: jar, URL: u}, nil
}

func (p *JarProvider) CSRFToken() (string, error) {
	if p == nil || p.Jar == nil {
		return "", ErrNoCSRFToken
	}
	parts := make([]string, 0, 2)
	for _, c := range p.Jar.Cookies(p.URL) {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return CookieHeader(strings.Join(parts, "; ")).CSRFToken()
}
