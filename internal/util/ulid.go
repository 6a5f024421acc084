package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string using the package's default
// monotonic entropy source, which is safe for concurrent use.
func NewULID() string {
	return ulid.Make().String()
}

// IsULID reports whether s is a canonical 26 character ULID.
func IsULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
