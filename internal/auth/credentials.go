package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Makepad-fr/liser/internal/config"
)

const credFileName = "credentials.json"

// ErrNotLoggedIn is returned when neither the environment nor the
// credentials file provide a session.
var ErrNotLoggedIn = errors.New("not logged in: run `liser login --session ... --csrftoken ...`")

// Credentials are the two cookies a browser would hold for the site.
type Credentials struct {
	SessionID string    `json:"sessionid"`
	CSRFToken string    `json:"csrftoken"`
	Source    string    `json:"source"`     // "env" | "file"
	CreatedAt time.Time `json:"created_at"` // when we saved to file
}

func credFilePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credFileName), nil
}

// LoadCredentials returns the stored credentials, preferring LISER_SESSION
// and LISER_CSRFTOKEN over the file. It returns ErrNotLoggedIn when nothing
// is configured.
func LoadCredentials() (*Credentials, error) {
	// 1) env override
	envSession := strings.TrimSpace(os.Getenv("LISER_SESSION"))
	envToken := strings.TrimSpace(os.Getenv("LISER_CSRFTOKEN"))
	if envSession != "" || envToken != "" {
		return &Credentials{SessionID: envSession, CSRFToken: envToken, Source: "env"}, nil
	}

	// 2) file
	p, err := credFilePath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	c.Source = "file"
	return &c, nil
}

// SaveCredentials writes the session and token to the credentials file
// with owner-only permissions.
func SaveCredentials(session, token string) error {
	session = strings.TrimSpace(session)
	token = strings.TrimSpace(token)
	if session == "" || token == "" {
		return fmt.Errorf("empty session or csrftoken")
	}
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	// ensure ~/.liser exists with 0700
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	c := Credentials{
		SessionID: session,
		CSRFToken: token,
		Source:    "file",
		CreatedAt: time.Now(),
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	p, _ := credFilePath()
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// DeleteCredentials removes the credentials file. A missing file is not an error.
func DeleteCredentials() error {
	p, err := credFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// Jar seeds a cookie jar for baseURL with the session and csrf cookies, so
// that requests carry them the way a browser would.
func (c *Credentials) Jar(baseURL string) (http.CookieJar, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	var cookies []*http.Cookie
	if c.SessionID != "" {
		cookies = append(cookies, &http.Cookie{Name: SessionCookieName, Value: c.SessionID, Path: "/"})
	}
	if c.CSRFToken != "" {
		cookies = append(cookies, &http.Cookie{Name: CSRFCookieName, Value: c.CSRFToken, Path: "/"})
	}
	jar.SetCookies(u, cookies)
	return jar, nil
}
