// Package rest implements the authenticated JSON transport shared by every
// Driftmail resource service.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/driftmail/driftmail-go/ratelimit"
)

const (
	userAgent = "driftmail-go/1.0"

	// maxErrorBody caps how much of an error response is read into memory.
	maxErrorBody = 4096

	// limiterKey is the single token bucket all requests share.
	limiterKey = "api"
)

// Config holds transport-level settings.
type Config struct {
	// BaseURL is the API origin, without a trailing slash.
	BaseURL string

	// Timeout is the per-request timeout. Ignored when HTTPClient is set.
	Timeout time.Duration

	// Headers are custom headers attached to every request.
	Headers map[string]string

	// RequestsPerSecond throttles outgoing requests client-side.
	// 0 disables throttling.
	RequestsPerSecond int

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
}

// Client issues authenticated JSON requests against the Driftmail API.
type Client struct {
	baseURL string
	apiKey  string
	headers map[string]string
	http    *http.Client
	limiter *ratelimit.Limiter
	rps     int
	logger  *slog.Logger
	tracer  *tracer
}

// NewClient creates a transport for the given API key.
func NewClient(apiKey string, cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  apiKey,
		headers: cfg.Headers,
		http:    httpClient,
		limiter: ratelimit.New(),
		rps:     cfg.RequestsPerSecond,
		logger:  logger,
		tracer:  newTracer(),
	}
}

// Request describes a single API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// Headers are per-request headers, e.g. Idempotency-Key.
	Headers map[string]string
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

// Patch issues a PATCH request with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body}, out)
}

// Delete issues a DELETE request, discarding any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, nil)
}

// Do performs req and, when out is non-nil, decodes the JSON response into it.
// Non-2xx responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if err := c.limiter.Wait(ctx, limiterKey, c.rps); err != nil {
		return fmt.Errorf("rest: rate limit wait: %w", err)
	}

	var bodyReader io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("rest: marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("rest: create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	ctx, span := c.tracer.startRequestSpan(ctx, req.Method, req.Path)
	httpReq = httpReq.WithContext(ctx)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	latency := time.Since(start)

	if err != nil {
		c.tracer.endRequestSpan(span, 0, err.Error())
		return fmt.Errorf("rest: %s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	c.tracer.endRequestSpan(span, resp.StatusCode, "")
	c.logger.Debug("api request",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"latency_ms", latency.Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decode response: %w", err)
	}
	return nil
}

// apiError decodes the server's error envelope, falling back to the raw body
// when the envelope is absent.
func (c *Client) apiError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "unreadable error response"}
	}

	var envelope struct {
		Error APIError `json:"error"`
	}
	if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil && envelope.Error.Message != "" {
		apiErr := envelope.Error
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(raw)),
	}
}
