// Package id generates collision-resistant identifiers for store entities.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Entity prefixes. Identifiers only need to be unique within their own
// collection, but the prefix makes a raw id readable in exports and logs.
const (
	PrefixCandidate   = "cand"
	PrefixNote        = "note"
	PrefixInteraction = "int"
	PrefixTag         = "tag"
)

// Generate creates a prefixed unique ID using NanoID,
// e.g. "cand-V1StGXR8_Z5jdHi6B-myT".
//
// NanoIDs are URL-safe and compact (21 characters), which keeps the
// persisted snapshot small. Returns an error only when the system
// cannot supply entropy.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics on failure. Store mutations
// use it: identifier generation has no error condition in their
// contract, and an entropy-starved host is not worth limping through.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
