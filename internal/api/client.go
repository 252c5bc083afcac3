// Package api is the thin gateway to the complaint backend: one method per
// endpoint, one attempt per call, no retries and no client-side timeout.
// Callers own applying results to their state; nothing here mutates shared
// state beyond the request itself.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotAuthenticated is returned before any network I/O when an
// admin-scoped call is attempted without a stored token.
var ErrNotAuthenticated = errors.New("not authenticated: please login again")

// ErrNoToken marks a login that returned success without a token body.
var ErrNoToken = errors.New("login succeeded but no token was returned by the server")

// TokenSource supplies the bearer token for admin-scoped calls.
type TokenSource interface {
	Token() string
}

// Client talks to one backend origin.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New returns a Client for baseURL. tokens may be nil for a purely public
// client; admin-scoped calls then fail fast with ErrNotAuthenticated.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// bearer returns the token or fails fast when none is stored.
func (c *Client) bearer() (string, error) {
	if c.tokens == nil {
		return "", ErrNotAuthenticated
	}
	tok := c.tokens.Token()
	if tok == "" {
		return "", ErrNotAuthenticated
	}
	return tok, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do performs the single attempt and maps any non-2xx status to an error
// carrying the server's plain-text body verbatim when one is present.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, data)
	}
	if readErr != nil {
		return nil, readErr
	}
	return data, nil
}

func statusError(code int, body []byte) error {
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return errors.New(msg)
	}
	return fmt.Errorf("request failed with status %d", code)
}
