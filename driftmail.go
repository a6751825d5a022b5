package driftmail

import (
	"log/slog"
	"net/http"

	"github.com/driftmail/driftmail-go/emails"
	"github.com/driftmail/driftmail-go/rest"
	"github.com/driftmail/driftmail-go/subscriptions"
	"github.com/driftmail/driftmail-go/templates"
)

// Client is the root Driftmail API client.
type Client struct {
	config     Config
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	rest             *rest.Client
	emailsSvc        *emails.Service
	templatesSvc     *templates.Service
	subscriptionsSvc *subscriptions.Service
}

// New creates a Client for the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	c := &Client{
		config: DefaultConfig(),
		apiKey: apiKey,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wireServices()
	return c, nil
}

// wireServices initializes the transport and resource services after options
// have been applied.
func (c *Client) wireServices() {
	c.rest = rest.NewClient(c.apiKey, rest.Config{
		BaseURL:           c.config.BaseURL,
		Timeout:           c.config.Timeout,
		Headers:           c.config.Headers,
		RequestsPerSecond: c.config.RequestsPerSecond,
		HTTPClient:        c.httpClient,
	}, c.logger)

	c.emailsSvc = emails.NewService(c.rest, c.logger)
	c.templatesSvc = templates.NewService(c.rest, c.logger)
	c.subscriptionsSvc = subscriptions.NewService(c.rest, c.logger)
}

// Emails returns the transactional email service.
func (c *Client) Emails() *emails.Service {
	return c.emailsSvc
}

// Templates returns the template management service.
func (c *Client) Templates() *templates.Service {
	return c.templatesSvc
}

// Subscriptions returns the webhook subscription service.
func (c *Client) Subscriptions() *subscriptions.Service {
	return c.subscriptionsSvc
}
