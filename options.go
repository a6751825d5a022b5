package driftmail

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL overrides the API origin, e.g. to target a staging environment.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
		}
		c.config.BaseURL = baseURL
		return nil
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		c.config.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely. The configured
// timeout is left to the supplied client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = httpClient
		return nil
	}
}

// WithHeader attaches a custom header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if c.config.Headers == nil {
			c.config.Headers = make(map[string]string)
		}
		c.config.Headers[key] = value
		return nil
	}
}

// WithRateLimit sets the client-side requests-per-second throttle.
// 0 disables throttling.
func WithRateLimit(perSecond int) Option {
	return func(c *Client) error {
		c.config.RequestsPerSecond = perSecond
		return nil
	}
}

// WithLogger sets the structured logger for the Client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}
