package webhooks

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType identifies a webhook event variant.
type EventType string

// The closed set of event types Driftmail delivers.
const (
	EventEmailSent          EventType = "email.sent"
	EventEmailDelivered     EventType = "email.delivered"
	EventEmailOpened        EventType = "email.opened"
	EventEmailClicked       EventType = "email.clicked"
	EventEmailBounced       EventType = "email.bounced"
	EventUnsubscribeCreated EventType = "unsubscribe.created"
)

// EventTypes lists every known event type, in delivery-lifecycle order.
func EventTypes() []EventType {
	return []EventType{
		EventEmailSent,
		EventEmailDelivered,
		EventEmailOpened,
		EventEmailClicked,
		EventEmailBounced,
		EventUnsubscribeCreated,
	}
}

// Event is a verified webhook delivery decoded into its typed variant.
type Event struct {
	// ID is the unique event identifier (e.g. "evt_01h455vb4pex5vskn").
	ID string

	// Type discriminates the Data variant.
	Type EventType

	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Data is the variant payload. Type-switch on it (or on Type) for
	// typed access.
	Data EventData
}

// EventData is implemented by every event payload variant. The set is closed:
// only types in this package satisfy it.
type EventData interface {
	eventData()
}

// EmailSentData accompanies email.sent events.
type EmailSentData struct {
	EmailID string `json:"emailId"`
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
}

// EmailDeliveredData accompanies email.delivered events.
type EmailDeliveredData struct {
	EmailID string `json:"emailId"`
	To      string `json:"to"`
}

// EmailOpenedData accompanies email.opened events.
type EmailOpenedData struct {
	EmailID   string `json:"emailId"`
	To        string `json:"to,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// EmailClickedData accompanies email.clicked events.
type EmailClickedData struct {
	EmailID   string `json:"emailId"`
	To        string `json:"to,omitempty"`
	URL       string `json:"url"`
	UserAgent string `json:"userAgent,omitempty"`
}

// EmailBouncedData accompanies email.bounced events.
type EmailBouncedData struct {
	EmailID      string `json:"emailId"`
	BounceReason string `json:"bounceReason"`
}

// UnsubscribeCreatedData accompanies unsubscribe.created events.
type UnsubscribeCreatedData struct {
	Email   string `json:"email"`
	EmailID string `json:"emailId,omitempty"`
}

func (*EmailSentData) eventData()          {}
func (*EmailDeliveredData) eventData()     {}
func (*EmailOpenedData) eventData()        {}
func (*EmailClickedData) eventData()       {}
func (*EmailBouncedData) eventData()       {}
func (*UnsubscribeCreatedData) eventData() {}

// envelope mirrors the wire shape before the variant is known.
type envelope struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// DecodeEvent parses a payload into its typed event. Decoding is strict: the
// common fields id, type and timestamp are required, and the data object is
// validated against the shape expected for its variant before it is
// unmarshaled. Returns ErrInvalidPayload or ErrUnknownEventType.
//
// DecodeEvent performs no authenticity check. Use Verifier.Verify so that
// events are only ever constructed from verified input.
func DecodeEvent(payload []byte) (*Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("%w: missing type field", ErrUnknownEventType)
	}
	if env.ID == "" {
		return nil, fmt.Errorf("%w: missing id field", ErrInvalidPayload)
	}
	if env.Timestamp.IsZero() {
		return nil, fmt.Errorf("%w: missing timestamp field", ErrInvalidPayload)
	}

	data, err := decodeEventData(EventType(env.Type), env.Data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        env.ID,
		Type:      EventType(env.Type),
		Timestamp: env.Timestamp,
		Data:      data,
	}, nil
}

func decodeEventData(typ EventType, raw json.RawMessage) (EventData, error) {
	var data EventData
	switch typ {
	case EventEmailSent:
		data = &EmailSentData{}
	case EventEmailDelivered:
		data = &EmailDeliveredData{}
	case EventEmailOpened:
		data = &EmailOpenedData{}
	case EventEmailClicked:
		data = &EmailClickedData{}
	case EventEmailBounced:
		data = &EmailBouncedData{}
	case EventUnsubscribeCreated:
		data = &UnsubscribeCreatedData{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, typ)
	}

	if err := validateEventData(typ, raw); err != nil {
		return nil, fmt.Errorf("%w: %s data: %v", ErrInvalidPayload, typ, err)
	}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("%w: %s data: %v", ErrInvalidPayload, typ, err)
	}
	return data, nil
}
