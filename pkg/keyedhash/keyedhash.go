// Package keyedhash derives a hash function, a MAC, and an HMAC from a single keyed hash
// primitive.
//
// All three operations are built on BLAKE2b as exposed by libsodium's crypto_generichash: Hash
// calls it without a key, MAC calls it with a 32-byte key, and HMAC nests two MAC calls with keys
// padded by the classic inner and outer pad bytes. Keys and outputs have fixed sizes. Passing a
// wrongly sized buffer is a programming error and panics.
//
// Key-exchange protocols which need to interoperate with the libsodium-based construction should
// use the package-level functions. A Suite can be built around any other generichash.Primitive.
package keyedhash

import (
	"errors"
	"fmt"

	"github.com/codahale/keyedhash/pkg/generichash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	KeySize   = 32                         // KeySize is the size of MAC, HMAC, and AEAD keys in bytes.
	HashSize  = 32                         // HashSize is the size of hash, MAC, and HMAC digests in bytes.
	MACSize   = 16                         // MACSize is the size of short MAC tags in bytes.
	NonceSize = chacha20poly1305.NonceSize // NonceSize is the size of AEAD nonces in bytes.
)

// The fixed sizes must agree with the AEAD and the primitive's default digest size.
var (
	_ = [1]struct{}{}[KeySize-chacha20poly1305.KeySize]
	_ = [1]struct{}{}[KeySize-blake2b.Size256]
	_ = [1]struct{}{}[HashSize-blake2b.Size256]
)

var (
	// ErrKeySize is returned when an HMAC key is not KeySize bytes long.
	ErrKeySize = errors.New("keyedhash: invalid key size")

	// ErrTagSize is returned when a tag to be verified has an unsupported length.
	ErrTagSize = errors.New("keyedhash: invalid tag size")
)

// Nonce0 returns the all-zero AEAD nonce.
func Nonce0() [NonceSize]byte {
	return [NonceSize]byte{}
}

// Nothing returns an empty, non-nil byte slice for inputs which are present but empty.
func Nothing() []byte {
	return []byte{}
}

// Suite provides Hash, MAC, and HMAC operations over a single primitive. It holds no mutable
// state and is safe for concurrent use.
type Suite struct {
	p generichash.Primitive
}

// New returns a Suite which uses p for every operation.
func New(p generichash.Primitive) *Suite {
	return &Suite{p: p}
}

var blake2bSuite = New(generichash.BLAKE2b)

// Default returns the BLAKE2b Suite used by the package-level functions.
func Default() *Suite {
	return blake2bSuite
}

func mustSize(op, name string, b []byte, size int) {
	if len(b) != size {
		panic(fmt.Sprintf("keyedhash: %s: %s must be %d bytes, got %d", op, name, size, len(b)))
	}
}
