// Package subscriptions provides the webhook subscription resource.
//
// A subscription's signing secret is generated server-side and disclosed
// exactly once, in the Create response. The SDK never persists it; hand it to
// webhooks.NewVerifier and manage its lifecycle in your own configuration.
package subscriptions

import (
	"time"

	"github.com/driftmail/driftmail-go/webhooks"
)

// Subscription is a registered webhook delivery target.
type Subscription struct {
	ID string `json:"id"`

	// URL is the delivery endpoint.
	URL string `json:"url"`

	// EventTypes are the subscribed event types.
	EventTypes []webhooks.EventType `json:"eventTypes"`

	// Enabled indicates whether deliveries are active.
	Enabled bool `json:"enabled"`

	CreatedAt time.Time `json:"createdAt"`
}

// Created is the Create response. It is the only place the signing secret
// ever appears.
type Created struct {
	Subscription

	// Secret is the HMAC signing secret for this subscription. Disclosed
	// once; subsequent reads return the subscription without it.
	Secret string `json:"secret"`
}

// Input is the creation/update payload for subscriptions.
type Input struct {
	URL        string               `json:"url,omitempty"`
	EventTypes []webhooks.EventType `json:"eventTypes,omitempty"`
	Enabled    *bool                `json:"enabled,omitempty"`
}

// ListOptions configures pagination for subscription listing.
type ListOptions struct {
	Limit  int
	Cursor string
}

// List is one page of subscriptions.
type List struct {
	Data       []Subscription `json:"data"`
	NextCursor string         `json:"nextCursor"`
}
