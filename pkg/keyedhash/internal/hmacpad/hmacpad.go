// Package hmacpad implements the key padding steps of the HMAC construction.
//
// Keys are exactly Size bytes and are not padded to the primitive's block size.
package hmacpad

import (
	"crypto/subtle"
	"fmt"

	"github.com/codahale/keyedhash/pkg/keyedhash/internal"
)

// Size is the length of HMAC keys and pads in bytes.
const Size = 32

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

var (
	ipad = fill(ipadByte)
	opad = fill(opadByte)
)

// Pads returns copies of the inner and outer pads.
func Pads() (inner, outer [Size]byte) {
	return ipad, opad
}

func fill(b byte) (pad [Size]byte) {
	for i := range pad {
		pad[i] = b
	}

	return
}

// XORInto sets dst to dst XOR src in constant time. It panics if the lengths differ.
func XORInto(dst, src []byte) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("hmacpad: length mismatch %d != %d", len(dst), len(src)))
	}

	subtle.XORBytes(dst, dst, src)
}

// InnerKey returns key XOR IPAD in a new buffer. It panics unless key is Size bytes.
func InnerKey(key []byte) []byte {
	return padKey(key, &ipad)
}

// OuterKey returns key XOR OPAD in a new buffer. It panics unless key is Size bytes.
func OuterKey(key []byte) []byte {
	return padKey(key, &opad)
}

func padKey(key []byte, pad *[Size]byte) []byte {
	if len(key) != Size {
		panic(fmt.Sprintf("hmacpad: invalid key size %d", len(key)))
	}

	// Copy the key so the caller's buffer is untouched.
	k := internal.Copy(key)

	XORInto(k, pad[:])

	return k
}
