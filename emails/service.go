package emails

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/driftmail/driftmail-go/id"
	"github.com/driftmail/driftmail-go/rest"
)

const basePath = "/v1/emails"

// Service provides email operations.
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// NewService creates a new email service.
func NewService(client *rest.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Send submits an email for delivery. Every send carries an Idempotency-Key
// header; one is generated when the request does not supply its own, so a
// caller retrying after a network failure can reuse the request value to
// avoid duplicate sends.
func (svc *Service) Send(ctx context.Context, req SendRequest) (*SendResponse, error) {
	if req.From == "" {
		return nil, &ValidationError{Field: "from", Message: "required"}
	}
	if len(req.To) == 0 && len(req.Recipients) == 0 {
		return nil, &ValidationError{Field: "to", Message: "at least one recipient required"}
	}

	key := req.IdempotencyKey
	if key == "" {
		key = id.NewIdempotencyKey()
	}

	var out SendResponse
	err := svc.client.Do(ctx, rest.Request{
		Method:  http.MethodPost,
		Path:    basePath,
		Body:    req,
		Headers: map[string]string{"Idempotency-Key": key},
	}, &out)
	if err != nil {
		return nil, err
	}

	svc.logger.Debug("email accepted", "email_id", out.ID)
	return &out, nil
}

// Get fetches a sent email by ID.
func (svc *Service) Get(ctx context.Context, emailID string) (*Email, error) {
	if emailID == "" {
		return nil, &ValidationError{Field: "id", Message: "required"}
	}

	var out Email
	if err := svc.client.Get(ctx, basePath+"/"+url.PathEscape(emailID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of emails. Pagination values pass through to the API.
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

// ValidationError indicates invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("driftmail: invalid %s: %s", e.Field, e.Message)
}
