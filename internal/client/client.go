// Package client talks to the bag-list server over its htmx endpoints. All
// mutations are form-encoded POSTs carrying the csrftoken and answer with a
// {"success": bool, ...} envelope; the search and sections endpoints return
// server-rendered HTML fragments.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/liser/internal/auth"
)

const (
	headerCSRF      = "X-CSRFToken"
	headerRequestID = "X-Request-ID"
	formContentType = "application/x-www-form-urlencoded"
)

// Client issues requests against one server.
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	Credentials auth.CredentialProvider
	Endpoints   map[Op]string
	Logger      *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithJar attaches a cookie jar so the session cookie travels with requests.
func WithJar(jar http.CookieJar) Option {
	return func(c *Client) { c.HTTPClient.Jar = jar }
}

// WithTimeout sets the HTTP timeout. Zero keeps the default of no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithLogger sets where failures are reported.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithEndpoints overrides endpoint paths by operation name. Unknown names
// are ignored.
func WithEndpoints(overrides map[string]string) Option {
	return func(c *Client) {
		for k, v := range overrides {
			op := Op(k)
			if _, ok := c.Endpoints[op]; ok && strings.TrimSpace(v) != "" {
				c.Endpoints[op] = v
			}
		}
	}
}

// New creates a client for baseURL.
func New(baseURL string, creds auth.CredentialProvider, opts ...Option) *Client {
	c := &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		HTTPClient:  &http.Client{},
		Credentials: creds,
		Endpoints:   DefaultEndpoints(),
		Logger:      slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) url(op Op) string {
	return c.BaseURL + c.Endpoints[op]
}

func (c *Client) csrfToken(log *slog.Logger) string {
	if c.Credentials == nil {
		log.Warn("no credential provider; sending request without csrftoken")
		return ""
	}
	tok, err := c.Credentials.CSRFToken()
	if err != nil {
		// The server rejects the request; that surfaces as success=false or a 403.
		log.Warn("csrftoken unavailable", "err", err)
		return ""
	}
	return tok
}

// Send POSTs form to the endpoint of op and decodes the result envelope.
// A success=false envelope is returned together with a *ServerError;
// transport, decode and non-2xx failures return a wrapped error. Every
// failure is logged; nothing is retried.
func (c *Client) Send(ctx context.Context, op Op, form Form) (Result, error) {
	reqID := uuid.NewString()
	log := c.Logger.With("op", string(op), "request_id", reqID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(op), strings.NewReader(form.Encode()))
	if err != nil {
		log.Error("build request", "err", err)
		return Result{}, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set(headerCSRF, c.csrfToken(log))
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set(headerRequestID, reqID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Error("request failed", "err", err)
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("read response", "err", err)
		return Result{}, fmt.Errorf("%s: read response: %w", op, err)
	}

	var res Result
	if err := json.Unmarshal(body, &res); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			serr := &StatusError{Op: op, Status: resp.StatusCode, Body: string(body)}
			log.Error("request failed", "status", resp.StatusCode)
			return Result{}, serr
		}
		log.Error("decode response", "err", err)
		return Result{}, fmt.Errorf("%s: decode response: %w", op, err)
	}

	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = fallbackError(op)
		}
		log.Error(msg, "status", resp.StatusCode)
		return res, &ServerError{Op: op, Status: resp.StatusCode, Message: msg}
	}
	log.Debug("ok", "status", resp.StatusCode)
	return res, nil
}

// fetch GETs a fragment endpoint and returns the body verbatim.
func (c *Client) fetch(ctx context.Context, op Op, q url.Values) (string, error) {
	reqID := uuid.NewString()
	log := c.Logger.With("op", string(op), "request_id", reqID)

	u := c.url(op)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Error("build request", "err", err)
		return "", fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set(headerRequestID, reqID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Error("request failed", "err", err)
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("read response", "err", err)
		return "", fmt.Errorf("%s: read response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("request failed", "status", resp.StatusCode)
		return "", &StatusError{Op: op, Status: resp.StatusCode, Body: string(body)}
	}
	return string(body), nil
}

// UpdateSectionTitle calls POST /htmx/update-section-title/.
func (c *Client) UpdateSectionTitle(ctx context.Context, sectionID, title string) (Result, error) {
	res, err := c.Send(ctx, OpUpdateSectionTitle, Form{{"section_id", sectionID}, {"title", title}})
	if err == nil {
		c.Logger.Info("section title updated", "section_id", sectionID, "title", res.String("title"))
	}
	return res, err
}

// UpdateSectionDescription calls POST /htmx/update-section-description/.
func (c *Client) UpdateSectionDescription(ctx context.Context, sectionID, description string) (Result, error) {
	return c.Send(ctx, OpUpdateSectionDescription, Form{{"section_id", sectionID}, {"description", description}})
}

// UpdateSectionPosition calls POST /htmx/update-section-position/.
func (c *Client) UpdateSectionPosition(ctx context.Context, sectionID, position string) (Result, error) {
	return c.Send(ctx, OpUpdateSectionPosition, Form{{"section_id", sectionID}, {"position", position}})
}

// RemoveItemFromSection calls POST /htmx/remove-item-from-section/.
func (c *Client) RemoveItemFromSection(ctx context.Context, sectionID, itemID string) (Result, error) {
	return c.Send(ctx, OpRemoveItemFromSection, Form{{"section_id", sectionID}, {"item_id", itemID}})
}

// DeleteSection calls POST /htmx/delete-section/.
func (c *Client) DeleteSection(ctx context.Context, sectionID string) (Result, error) {
	return c.Send(ctx, OpDeleteSection, Form{{"section_id", sectionID}})
}

// AssociateItem calls POST /htmx/associate-item/.
func (c *Client) AssociateItem(ctx context.Context, sectionID, itemID string) (Result, error) {
	return c.Send(ctx, OpAssociateItem, Form{{"section_id", sectionID}, {"item_id", itemID}})
}

// SearchItems calls GET /htmx/item-picker-search/?q=&section_id= and returns
// the HTML fragment untouched.
func (c *Client) SearchItems(ctx context.Context, query, sectionID string) (string, error) {
	return c.fetch(ctx, OpSearchItems, url.Values{"q": {query}, "section_id": {sectionID}})
}

// LoadSections fetches the sections fragment of one bag list.
func (c *Client) LoadSections(ctx context.Context, bagListID string) (string, error) {
	if strings.TrimSpace(bagListID) == "" {
		return "", errors.New("load sections: empty baglist id")
	}
	return c.fetch(ctx, OpLoadSections, url.Values{"baglist_id": {bagListID}})
}

// EditorPage fetches the editor page listing the user's bag lists.
func (c *Client) EditorPage(ctx context.Context) (string, error) {
	return c.fetch(ctx, OpEditor, nil)
}
