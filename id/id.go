// Package id generates client-side identifiers for the Driftmail SDK.
//
// Server-owned identifiers (emails "em_", events "evt_", templates "tpl_",
// subscriptions "sub_") are minted by the API and handled as opaque strings.
// The only identifier the client mints itself is the idempotency key attached
// to email sends.
package id

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// PrefixIdempotency tags idempotency keys generated for email sends.
const PrefixIdempotency = "idem"

// NewIdempotencyKey returns a globally unique, K-sortable (UUIDv7-based)
// idempotency key in the form "idem_<suffix>". It panics only if the static
// prefix is invalid, which is a programming error.
func NewIdempotencyKey() string {
	tid, err := typeid.Generate(PrefixIdempotency)
	if err != nil {
		panic(fmt.Sprintf("id: generate idempotency key: %v", err))
	}
	return tid.String()
}

// IsIdempotencyKey reports whether s is a well-formed key produced by
// NewIdempotencyKey.
func IsIdempotencyKey(s string) bool {
	tid, err := typeid.Parse(s)
	return err == nil && tid.Prefix() == PrefixIdempotency
}
