package driftmail

import "time"

// DefaultBaseURL is the production API origin.
const DefaultBaseURL = "https://api.driftmail.com"

// Config holds the configuration for a Client.
type Config struct {
	// BaseURL is the API origin, without a trailing slash.
	BaseURL string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// RequestsPerSecond throttles requests client-side to stay inside the
	// API rate budget. 0 disables throttling.
	RequestsPerSecond int

	// Headers are custom headers attached to every request.
	Headers map[string]string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		Timeout:           30 * time.Second,
		RequestsPerSecond: 10,
	}
}
