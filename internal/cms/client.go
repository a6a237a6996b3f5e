package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds every request made by the client
const DefaultTimeout = 10 * time.Second

var (
	ErrNotFound     = errors.New("cms: not found")
	ErrUnauthorized = errors.New("cms: unauthorized")
)

// Client talks to the showroom content API (Strapi-style REST)
type Client struct {
	base    string
	hc      *http.Client
	tok     string
	log     zerolog.Logger
	timeout time.Duration
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTimeout sets the per-request timeout. It applies on top of any client
// given with WithHTTPClient, which is copied rather than changed.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger attaches a logger for request tracing
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the API at baseURL authenticated with token
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("API token is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid CMS URL %q: %w", baseURL, err)
	}

	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: DefaultTimeout},
		tok:  token,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hc == nil {
		c.hc = &http.Client{Timeout: DefaultTimeout}
	}
	if c.timeout > 0 && c.hc.Timeout != c.timeout {
		hc := *c.hc
		hc.Timeout = c.timeout
		c.hc = &hc
	}
	return c, nil
}

// apiError is the error envelope returned by the CMS
type apiError struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

// do sends one request and returns the raw response body. There are no
// retries: a failed call is reported to the caller as is.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.tok)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("url", u).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("cms request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(method, path, resp.StatusCode, data)
	}
	return data, nil
}

func statusError(method, path string, status int, body []byte) error {
	msg := http.StatusText(status)
	var env apiError
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		msg = env.Error.Message
	} else if trimmed := strings.TrimSpace(string(body)); trimmed != "" && len(trimmed) < 512 {
		msg = trimmed
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s %s → %d %s: %w", method, path, status, msg, ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s %s → %d %s: %w", method, path, status, msg, ErrNotFound)
	default:
		return fmt.Errorf("%s %s → %d %s", method, path, status, msg)
	}
}
