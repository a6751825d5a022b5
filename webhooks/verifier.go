package webhooks

import (
	"crypto/hmac"
	"fmt"
	"time"
)

// DefaultTolerance is the maximum clock drift accepted between signing and
// verification when no explicit tolerance is configured.
const DefaultTolerance = 5 * time.Minute

// Verifier authenticates inbound webhook deliveries against a single signing
// secret. It holds no state between calls; verifying concurrent deliveries
// needs no coordination.
type Verifier struct {
	secret    string
	tolerance time.Duration
	now       func() time.Time
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithTolerance overrides the freshness window for signing timestamps.
func WithTolerance(d time.Duration) VerifierOption {
	return func(v *Verifier) { v.tolerance = d }
}

// WithNow overrides the clock used for the freshness check. Intended for tests.
func WithNow(now func() time.Time) VerifierOption {
	return func(v *Verifier) { v.now = now }
}

// NewVerifier creates a Verifier for the given subscription secret.
func NewVerifier(secret string, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		secret:    secret,
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify authenticates payload against the raw signature header value and, on
// success, decodes it into a typed event. payload must be the exact request
// body bytes as received. Failures surface as one of the package's sentinel
// errors; no event is ever produced from an unverified payload.
func (v *Verifier) Verify(payload []byte, header string) (*Event, error) {
	if err := v.VerifySignature(payload, header); err != nil {
		return nil, err
	}
	return DecodeEvent(payload)
}

// VerifySignature runs the authenticity pipeline without decoding the payload:
// parse header, check timestamp freshness, recompute the expected MAC, and
// compare it against every candidate in constant time. Any single match
// accepts the delivery, so an endpoint keeps working while two secrets are
// active during rotation.
func (v *Verifier) VerifySignature(payload []byte, header string) error {
	hdr, err := ParseSignatureHeader(header)
	if err != nil {
		return err
	}

	if err := checkFreshness(hdr.Timestamp, v.tolerance, v.now()); err != nil {
		return err
	}

	expected := computeMAC(hdr.Timestamp, payload, v.secret)
	for _, candidate := range hdr.Signatures {
		// hmac.Equal scans the full length regardless of where the
		// first differing byte occurs.
		if hmac.Equal(candidate, expected) {
			return nil
		}
	}
	return ErrSignatureMismatch
}

// checkFreshness rejects timestamps outside the tolerance window in either
// direction: stale ones replay captured deliveries, future ones abuse clock skew.
func checkFreshness(timestamp int64, tolerance time.Duration, now time.Time) error {
	drift := now.Sub(time.Unix(timestamp, 0))
	if drift < 0 {
		drift = -drift
	}
	if drift > tolerance {
		return fmt.Errorf("%w: drift %s exceeds %s", ErrTimestampOutOfTolerance, drift, tolerance)
	}
	return nil
}

// Verify authenticates and decodes a delivery with the default tolerance.
func Verify(payload []byte, header, secret string) (*Event, error) {
	return NewVerifier(secret).Verify(payload, header)
}
