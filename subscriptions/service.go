package subscriptions

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/driftmail/driftmail-go/rest"
	"github.com/driftmail/driftmail-go/webhooks"
)

const basePath = "/v1/webhook-subscriptions"

// Service provides webhook subscription management operations.
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// NewService creates a new subscription service.
func NewService(client *rest.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Create registers a new webhook subscription. The response carries the
// signing secret; it is not retrievable afterwards.
func (svc *Service) Create(ctx context.Context, in Input) (*Created, error) {
	if _, err := url.ParseRequestURI(in.URL); err != nil {
		return nil, &ValidationError{Field: "url", Message: "invalid URL"}
	}
	if len(in.EventTypes) == 0 {
		return nil, &ValidationError{Field: "eventTypes", Message: "at least one event type required"}
	}
	if err := validateEventTypes(in.EventTypes); err != nil {
		return nil, err
	}

	var out Created
	if err := svc.client.Post(ctx, basePath, in, &out); err != nil {
		return nil, err
	}

	// Secret deliberately left out of the log record.
	svc.logger.Debug("webhook subscription created", "subscription_id", out.ID, "url", out.URL)
	return &out, nil
}

// Get fetches a subscription by ID. The secret is never included.
func (svc *Service) Get(ctx context.Context, subscriptionID string) (*Subscription, error) {
	if subscriptionID == "" {
		return nil, &ValidationError{Field: "id", Message: "required"}
	}

	var out Subscription
	if err := svc.client.Get(ctx, basePath+"/"+url.PathEscape(subscriptionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of subscriptions.
func (svc *Service) List(ctx context.Context, opts ListOptions) (*List, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		q.Set("cursor", opts.Cursor)
	}

	var out List
	if err := svc.client.Get(ctx, basePath, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifies an existing subscription. Only set fields change.
func (svc *Service) Update(ctx context.Context, subscriptionID string, in Input) (*Subscription, error) {
	if subscriptionID == "" {
		return nil, &ValidationError{Field: "id", Message: "required"}
	}
	if in.URL != "" {
		if _, err := url.ParseRequestURI(in.URL); err != nil {
			return nil, &ValidationError{Field: "url", Message: "invalid URL"}
		}
	}
	if err := validateEventTypes(in.EventTypes); err != nil {
		return nil, err
	}

	var out Subscription
	if err := svc.client.Patch(ctx, basePath+"/"+url.PathEscape(subscriptionID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a subscription. Deliveries stop and its secret is revoked.
func (svc *Service) Delete(ctx context.Context, subscriptionID string) error {
	if subscriptionID == "" {
		return &ValidationError{Field: "id", Message: "required"}
	}
	return svc.client.Delete(ctx, basePath+"/"+url.PathEscape(subscriptionID))
}

// validateEventTypes rejects anything outside the closed event set, so typos
// fail locally instead of as a server round trip.
func validateEventTypes(types []webhooks.EventType) error {
	known := make(map[webhooks.EventType]bool)
	for _, typ := range webhooks.EventTypes() {
		known[typ] = true
	}
	for _, typ := range types {
		if !known[typ] {
			return &ValidationError{Field: "eventTypes", Message: fmt.Sprintf("unknown event type %q", typ)}
		}
	}
	return nil
}

// ValidationError indicates invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("driftmail: invalid %s: %s", e.Field, e.Message)
}
