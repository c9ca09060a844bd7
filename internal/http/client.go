// Package http provides the HTTP transport used by the Relay API clients.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/relaywire/relay-go/internal/constants"
)

const defaultUserAgent = "relay-go-client/1.0"

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is an HTTP client bound to an API base URL.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     Logger
	debug      bool
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithHTTPTimeout sets the per-request timeout on the underlying client.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client bound to the given base URL.
// Retries are disabled unless enabled via WithRetryConfig.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the API root the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetBaseURL repoints the client at a different API root. It is intended for
// configuration before use, chiefly to target test servers; it is not safe to
// call while requests are in flight.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// Request represents an HTTP request to the API.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Do executes a request and returns the response. Responses with a 5xx status
// are returned as *ServerStatusError carrying the raw body; other non-2xx
// statuses as *StatusError. Network-level failures are returned as-is.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	fullURL := c.baseURL + req.Path

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
		})
	}

	switch {
	case httpResp.StatusCode >= 200 && httpResp.StatusCode < 300:
		return &Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       respBody,
		}, nil
	case httpResp.StatusCode >= 500:
		return nil, &ServerStatusError{
			StatusCode: httpResp.StatusCode,
			Body:       respBody,
		}
	default:
		return nil, &StatusError{
			StatusCode: httpResp.StatusCode,
			Body:       respBody,
		}
	}
}

// Post executes a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   body,
	})
}
