// Package internal contains helper functions for handling sensitive buffers.
//
// The subpackages of internal contain the steps of the HMAC construction.
package internal

import (
	"crypto/subtle"
)

// Copy returns a copy of the given slice so callers' buffers are never modified.
func Copy(b []byte) []byte {
	c := make([]byte, len(b))

	copy(c, b)

	return c
}

// Wipe overwrites each of the given slices with zeros.
func Wipe(slices ...[]byte) {
	for _, b := range slices {
		if len(b) == 0 {
			continue
		}

		// ConstantTimeCopy keeps the compiler from eliding the write.
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
}
