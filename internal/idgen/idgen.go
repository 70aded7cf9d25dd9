// Package idgen generates client-side entity IDs: a millisecond
// timestamp plus a short nanoid suffix, unique for the lifetime of the
// application without any server round-trip.
package idgen

import (
	"fmt"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet defines the character set used for the random suffix.
var Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// SuffixLength is the number of random characters after the timestamp.
var SuffixLength = 7

// now is swapped out in tests.
var now = time.Now

// New returns a new unique ID with the given entity prefix,
// e.g. New("nuts") -> "nuts-1756709312456-x3k9q0m".
func New(prefix string) (string, error) {
	suffix, err := nanoid.Generate(Alphabet, SuffixLength)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return fmt.Sprintf("%s-%d-%s", prefix, now().UnixMilli(), suffix), nil
}

// MustNew is New for call sites that cannot fail meaningfully; the
// only error path is the system entropy source going away.
func MustNew(prefix string) string {
	id, err := New(prefix)
	if err != nil {
		panic(err)
	}
	return id
}
