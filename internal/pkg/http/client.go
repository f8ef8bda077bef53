package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	nrpkg "github.com/piresc/tripdash/internal/pkg/newrelic"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// RequestIDHeader carries the caller's request or query ID upstream
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID returns a context whose outgoing requests carry id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Config configures a Client
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a small JSON HTTP client bound to one base URL
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the base URL requests are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request. Every key in query is sent, empty values included.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*nethttp.Response, error) {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
