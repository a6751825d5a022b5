// Package emails provides the transactional email resource.
package emails

import "time"

// SendRequest is the payload for sending an email. The structure is forwarded
// to the API as-is; per-recipient variable merging happens server-side.
type SendRequest struct {
	// From is the sender address, optionally with a display name
	// ("Ada <ada@example.com>").
	From string `json:"from"`

	// To lists recipient addresses for a single send.
	To []string `json:"to,omitempty"`

	// Recipients lists recipients for a bulk send, each with its own
	// variables. Mutually exclusive with To on the server side.
	Recipients []Recipient `json:"recipients,omitempty"`

	Cc      []string `json:"cc,omitempty"`
	Bcc     []string `json:"bcc,omitempty"`
	ReplyTo string   `json:"replyTo,omitempty"`

	// Subject is required unless TemplateID supplies one.
	Subject string `json:"subject,omitempty"`

	// HTML and Text are the message bodies. At least one is required
	// unless TemplateID is set.
	HTML string `json:"html,omitempty"`
	Text string `json:"text,omitempty"`

	// TemplateID renders a stored template server-side.
	TemplateID string `json:"templateId,omitempty"`

	// Variables are substituted into the template or body server-side.
	Variables map[string]any `json:"variables,omitempty"`

	// Headers are custom SMTP headers attached to the message.
	Headers map[string]string `json:"headers,omitempty"`

	// IdempotencyKey deduplicates retried sends. Sent as a request header,
	// not in the body; auto-generated when empty.
	IdempotencyKey string `json:"-"`
}

// Recipient is one target of a bulk send.
type Recipient struct {
	Email     string         `json:"email"`
	Variables map[string]any `json:"variables,omitempty"`
}

// SendResponse acknowledges an accepted send.
type SendResponse struct {
	// ID is the email identifier ("em_...").
	ID string `json:"id"`
}

// Email is the stored representation of a sent message.
type Email struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        []string  `json:"to"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListOptions configures pagination for email listing. Values are passed
// through to the API untouched.
type ListOptions struct {
	Limit  int
	Cursor string
}

// List is one page of emails.
type List struct {
	Data []Email `json:"data"`

	// NextCursor is the opaque cursor for the next page; empty on the
	// last page.
	NextCursor string `json:"nextCursor"`
}
