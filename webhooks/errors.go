package webhooks

import "errors"

// Sentinel errors returned by webhook verification and decoding. Each failure
// mode is a distinct value so handlers can alert differently on a probable
// forgery attempt (ErrSignatureMismatch) versus clock skew
// (ErrTimestampOutOfTolerance) versus an integration bug
// (ErrMalformedSignatureHeader).
var (
	// ErrMissingSignatureHeader is returned when the signature header value is absent or empty.
	ErrMissingSignatureHeader = errors.New("driftmail: missing signature header")

	// ErrMalformedSignatureHeader is returned when the signature header is present but unparsable.
	ErrMalformedSignatureHeader = errors.New("driftmail: malformed signature header")

	// ErrTimestampOutOfTolerance is returned when the signing timestamp falls outside the freshness window.
	ErrTimestampOutOfTolerance = errors.New("driftmail: signature timestamp outside tolerance")

	// ErrSignatureMismatch is returned when no candidate signature matches the recomputed MAC.
	ErrSignatureMismatch = errors.New("driftmail: signature mismatch")

	// ErrInvalidPayload is returned when the payload is not well-formed or fails shape validation.
	ErrInvalidPayload = errors.New("driftmail: invalid webhook payload")

	// ErrUnknownEventType is returned when the type discriminator is absent or not a known variant.
	ErrUnknownEventType = errors.New("driftmail: unknown webhook event type")
)
