package driftmail

import "errors"

// Sentinel errors returned by Client construction.
var (
	// ErrNoAPIKey is returned when a Client is created without an API key.
	ErrNoAPIKey = errors.New("driftmail: api key is required")

	// ErrInvalidBaseURL is returned when a configured base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("driftmail: invalid base URL")
)
