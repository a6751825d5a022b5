package templates

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/driftmail/driftmail-go/rest"
)

const basePath = "/v1/templates"

// Service provides template management operations.
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// NewService creates a new template service.
func NewService(client *rest.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Create stores a new template.
func (svc *Service) Create(ctx context.Context, in Input) (*Template, error) {
	if in.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "required"}
	}

	var out Template
	if err := svc.client.Post(ctx, basePath, in, &out); err != nil {
		return nil, err
	}

	svc.logger.Debug("template created", "template_id", out.ID)
	return &out, nil
}

// Get fetches a template by ID.
func (svc *Service) Get(ctx context.Context, templateID string) (*Template, error) {
	if templateID == "" {
		return nil, &ValidationError{Field: "id", Message: "required"}
	}

	var out Template
	if err := svc.client.Get(ctx, basePath+"/"+url.PathEscape(templateID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of templates.
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

// Update modifies an existing template. Only set fields change.
func (svc *Service) Update(ctx context.Context, templateID string, in Input) (*Template, error) {
	if templateID == "" {
		return nil, &ValidationError{Field: "id", Message: "required"}
	}

	var out Template
	if err := svc.client.Patch(ctx, basePath+"/"+url.PathEscape(templateID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a template.
func (svc *Service) Delete(ctx context.Context, templateID string) error {
	if templateID == "" {
		return &ValidationError{Field: "id", Message: "required"}
	}
	return svc.client.Delete(ctx, basePath+"/"+url.PathEscape(templateID))
}

// ValidationError indicates invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("driftmail: invalid %s: %s", e.Field, e.Message)
}
