// Package webhooks verifies the authenticity of inbound Driftmail webhook
// deliveries and decodes their payloads into typed events.
package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// HeaderName is the HTTP header carrying the delivery signature.
const HeaderName = "x-driftmail-signature"

// SignatureScheme is the version tag under which signatures are currently
// published. Unknown tags in a header are skipped so that a future scheme can
// be introduced without breaking existing verifiers.
const SignatureScheme = "v1"

// macSize is the byte length of an HMAC-SHA256 digest.
const macSize = sha256.Size

// SignatureHeader is the parsed form of a signature header value such as
// "t=1700000000,v1=5257a869...". A header may carry more than one v1 entry
// during secret rotation, or when several subscriptions share one delivery.
type SignatureHeader struct {
	// Timestamp is the unix-seconds signing time from the "t" element.
	Timestamp int64

	// Signatures holds the hex-decoded candidate MACs from the "v1" elements.
	Signatures [][]byte
}

// ComputeSignature returns the lowercase hex HMAC-SHA256 over
// "{timestamp}.{payload}" keyed with secret. It is pure: identical inputs
// always produce identical output. The payload must be the raw signed bytes;
// re-serializing a parsed JSON document changes whitespace and key order and
// with them the MAC.
func ComputeSignature(timestamp int64, payload []byte, secret string) string {
	return hex.EncodeToString(computeMAC(timestamp, payload, secret))
}

func computeMAC(timestamp int64, payload []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return mac.Sum(nil)
}

// ParseSignatureHeader parses a raw signature header value into its timestamp
// and candidate MACs. The value is a comma-separated list of key=value
// elements; surrounding whitespace is tolerated and unknown keys are ignored.
// Returns ErrMissingSignatureHeader for an empty value, and
// ErrMalformedSignatureHeader when the timestamp element is missing or
// non-numeric, or when no usable v1 element is present. A v1 value that is not
// well-formed hex of HMAC-SHA256 length can never match and is dropped.
func ParseSignatureHeader(value string) (SignatureHeader, error) {
	if strings.TrimSpace(value) == "" {
		return SignatureHeader{}, ErrMissingSignatureHeader
	}

	var (
		hdr          SignatureHeader
		sawTimestamp bool
	)
	for _, element := range strings.Split(value, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(element), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		switch key {
		case "t":
			ts, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return SignatureHeader{}, fmt.Errorf("%w: non-numeric timestamp %q", ErrMalformedSignatureHeader, val)
			}
			hdr.Timestamp = ts
			sawTimestamp = true
		case SignatureScheme:
			mac, err := hex.DecodeString(val)
			if err != nil || len(mac) != macSize {
				continue
			}
			hdr.Signatures = append(hdr.Signatures, mac)
		}
	}

	if !sawTimestamp {
		return SignatureHeader{}, fmt.Errorf("%w: missing timestamp element", ErrMalformedSignatureHeader)
	}
	if len(hdr.Signatures) == 0 {
		return SignatureHeader{}, fmt.Errorf("%w: no %s signature element", ErrMalformedSignatureHeader, SignatureScheme)
	}
	return hdr, nil
}
