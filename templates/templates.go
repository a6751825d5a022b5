// Package templates provides the stored email template resource. Rendering
// happens server-side; the SDK only manages template definitions.
package templates

import "time"

// Template is a stored email template.
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	HTML      string    `json:"html,omitempty"`
	Text      string    `json:"text,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input is the creation/update payload for templates. Zero-valued fields are
// omitted so updates only touch what the caller set.
type Input struct {
	Name    string `json:"name,omitempty"`
	Subject string `json:"subject,omitempty"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
}

// ListOptions configures pagination for template listing.
type ListOptions struct {
	Limit  int
	Cursor string
}

// List is one page of templates.
type List struct {
	Data       []Template `json:"data"`
	NextCursor string     `json:"nextCursor"`
}
