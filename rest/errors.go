package rest

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the Driftmail API. Code and Message are
// whatever the server reported in its error envelope; Message falls back to
// the raw body when no envelope was sent.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("driftmail: api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("driftmail: api error %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an *APIError when one is present in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
