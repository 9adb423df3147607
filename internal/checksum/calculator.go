package checksum

import (
	"strconv"

	"github.com/zeebo/xxh3"
)

// Calculator is an interface for computing content fingerprints.
type Calculator interface {
	Fingerprint(content []byte) string
}

// XXH3 implements Calculator with the 64-bit xxh3 hash.
// It is a zero-size type and is safe for concurrent use by multiple goroutines.
type XXH3 struct{}

// New creates a new xxh3 based calculator.
func New() XXH3 {
	return XXH3{}
}

// Fingerprint returns xxh3-64 of content as 16 lowercase hex digits.
func (XXH3) Fingerprint(content []byte) string {
	return pad16(strconv.FormatUint(xxh3.Hash(content), 16))
}

func pad16(s string) string {
	const zeros = "0000000000000000"
	if len(s) >= len(zeros) {
		return s
	}
	return zeros[len(s):] + s
}
