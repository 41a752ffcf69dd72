// Package api is the typed HTTP client for the care planner REST API.
// It owns the wire contract: requests are encoded and responses decoded
// here, so the rest of the program only sees domain types or errors.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource func() string

// Client talks to the care planner API. All methods take a context and
// apply the configured per-request timeout; there are no retries.
type Client struct {
	baseURL  string
	http     *http.Client
	token    TokenSource
	timeout  time.Duration
	observer Observer
}

// Option configures a Client.
type Option func(*Client)

// WithObserver installs an Observer for call telemetry.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithHTTPClient swaps the underlying *http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Client for the API at baseURL. token may be nil for
// a client used only for signup/login.
func NewClient(baseURL string, timeoutMs int, token TokenSource, opts ...Option) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		token:    token,
		timeout:  time.Duration(timeoutMs) * time.Millisecond,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the FastAPI-style error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// do performs one JSON request and decodes the 2xx body into out (skipped
// when out is nil). query may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	status, err := c.doOnce(ctx, method, path, query, body, out)

	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := sonic.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, transportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if err := checkStatus(resp.StatusCode, respBody); err != nil {
		return resp.StatusCode, err
	}

	if out != nil {
		if err := sonic.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}
	return resp.StatusCode, nil
}

// newRequest builds a request with auth and tracing headers applied.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

func checkStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		var eb errorBody
		if err := sonic.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
			return fmt.Errorf("%w: status %d: %s", ErrAPI, status, eb.Detail)
		}
		return fmt.Errorf("%w: status %d", ErrAPI, status)
	}
}

func transportError(ctx context.Context, err error) error {
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return ErrTimeout
	case context.Canceled:
		return context.Canceled
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// daysQuery builds the ?days=N query used by the log window endpoints.
func daysQuery(days int) url.Values {
	if days <= 0 {
		days = 7
	}
	return url.Values{"days": []string{strconv.Itoa(days)}}
}
