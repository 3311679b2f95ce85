package generichash

import (
	"golang.org/x/crypto/blake2b"
)

type blake2bPrimitive struct{}

// BLAKE2b is the BLAKE2b Primitive, compatible with libsodium's crypto_generichash.
var BLAKE2b Primitive = blake2bPrimitive{}

func (blake2bPrimitive) GenericHash(out, data []byte, key Key) error {
	// An absent key has nil Bytes, which selects unkeyed BLAKE2b.
	h, err := blake2b.New(len(out), key.Bytes())
	if err != nil {
		return err
	}

	_, _ = h.Write(data)

	// Write the digest into out's backing array.
	h.Sum(out[:0])

	return nil
}
