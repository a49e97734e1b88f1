package store

import (
	"crypto/rand"
	"encoding/hex"
)

// newID returns a fresh entity identifier: 24 lowercase hex characters.
// The format keeps IDs inside the [0-9a-z]{8,24} shape the HTTP router
// recognises as a single-resource path segment.
func newID() string {
	var buf [12]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}

	return hex.EncodeToString(buf[:])
}
