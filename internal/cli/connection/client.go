// Package connection provides the authenticated HTTP client for the
// Bullhorn CLI.
package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bullhorn-tools/bh-cli/internal/telemetry/logger"
)

// Refresher mints a new session token when the current one is rejected.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

// Client is the authenticated HTTP client for the Bullhorn REST API.
type Client struct {
	baseURL   string
	token     string
	client    *http.Client
	refresher Refresher
	log       logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.client = c }
}

// WithRefresher enables the 401 refresh-and-retry interceptor.
func WithRefresher(r Refresher) Option {
	return func(cl *Client) { cl.refresher = r }
}

// WithLogger overrides the logger.
func WithLogger(l logger.Logger) Option {
	return func(cl *Client) { cl.log = l }
}

// NewClient creates a client rooted at the tenant REST URL with the
// current session token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the session token currently attached to requests.
func (c *Client) Token() string {
	return c.token
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (*http.Response, error) {
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
	}
	return c.do(ctx, http.MethodPost, path, query, data)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues the request, refreshing the session and retrying exactly
// once on the first 401. The retried flag is local to this call, so
// every logical request gets its own one-shot retry.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Response, error) {
	retried := false

	for {
		req, err := c.newRequest(ctx, method, path, query, body)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}

		c.log.Debug("api request", "method", method, "path", path, "status", resp.StatusCode)

		if resp.StatusCode != http.StatusUnauthorized || retried || c.refresher == nil {
			return resp, nil
		}

		// First 401: refresh the session and re-issue this one request.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		retried = true

		c.log.Debug("session token rejected, refreshing")
		token, err := c.refresher.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		c.token = token
	}
}

// newRequest builds a request with the session token attached. The body
// is rebuilt from the buffered bytes so a retry can replay it.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("BhRestToken", c.token)
	req.Header.Set("User-Agent", "bh-cli/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// ParseResponse decodes a JSON response body into target. Non-2xx
// responses become an *APIError carrying the status and the server's
// message when one is present.
func ParseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newAPIError(resp)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}
