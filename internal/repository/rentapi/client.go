// Package rentapi implements the repository ports against the remote rental
// REST API. Every upstream response carries a "status" discriminant; any
// other shape is treated as a failure.
package rentapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Error taxonomy. Transport failures, non-2xx statuses, "fail" discriminants
// and malformed payloads stay distinguishable here even though the workflow
// layer collapses them into the same degraded rendering.
var (
	ErrTransport = errors.New("rentapi: request failed")
	ErrStatus    = errors.New("rentapi: unexpected http status")
	ErrFail      = errors.New("rentapi: upstream reported failure")
	ErrPayload   = errors.New("rentapi: malformed response")
)

const defaultTimeout = 10 * time.Second

// Client is the HTTP client for the rental API. Outgoing calls share one
// rate limiter so a busy page cannot flood the upstream.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	observe    func(endpoint, outcome string)
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithRateLimit caps outgoing calls at rps requests per second with the
// given burst. Zero rps disables the limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithObserver installs a per-call hook, used for metrics.
func WithObserver(fn func(endpoint, outcome string)) Option {
	return func(c *Client) {
		c.observe = fn
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the discriminant every upstream response carries.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statusCarrier interface {
	status() (string, string)
}

func (e envelope) status() (string, string) {
	return e.Status, e.Message
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out statusCarrier) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// do issues one request and decodes the enveloped response. The form values,
// when present, are sent urlencoded in the body; the upstream otherwise
// takes its parameters from the query string regardless of method.
func (c *Client) do(ctx context.Context, method, path string, query, form url.Values, out statusCarrier) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrTransport, err)
		}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(path, "transport_error")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.record(path, "http_error")
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(path, "transport_error")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.record(path, "bad_payload")
		return fmt.Errorf("%w: %v", ErrPayload, err)
	}

	status, message := out.status()
	if status != "success" {
		c.record(path, "upstream_fail")
		if message == "" {
			message = "no message"
		}
		return fmt.Errorf("%w: %s", ErrFail, message)
	}

	c.record(path, "ok")
	return nil
}

func (c *Client) record(endpoint, outcome string) {
	if c.observe != nil {
		c.observe(endpoint, outcome)
	}
}
