package keyedhash

import (
	"fmt"

	"github.com/codahale/keyedhash/pkg/keyedhash/internal"
	"github.com/codahale/keyedhash/pkg/keyedhash/internal/hmacpad"
)

// HMACInto writes the HMAC of data under key to out. Keys are not padded to the primitive's block
// size. It returns ErrKeySize unless key is KeySize bytes long, and panics unless out is HashSize
// bytes long.
func (s *Suite) HMACInto(out, key, data []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrKeySize, len(key), KeySize)
	}

	mustSize("hmac", "output", out, HashSize)

	var outerData [HashSize]byte
	defer internal.Wipe(outerData[:])

	// MAC the data with the inner key.
	inner := hmacpad.InnerKey(key)
	defer internal.Wipe(inner)

	if err := s.macInto("hmac", outerData[:], inner, data); err != nil {
		return err
	}

	// MAC the inner tag with the outer key.
	outer := hmacpad.OuterKey(key)
	defer internal.Wipe(outer)

	return s.macInto("hmac", out, outer, outerData[:])
}

// HMAC returns the HMAC of data under key. It returns ErrKeySize unless key is KeySize bytes long.
func (s *Suite) HMAC(key, data []byte) ([HashSize]byte, error) {
	var digest [HashSize]byte

	if err := s.HMACInto(digest[:], key, data); err != nil {
		return [HashSize]byte{}, err
	}

	return digest, nil
}

// HMACInto writes the HMAC-BLAKE2b-256 of data under key to out.
func HMACInto(out, key, data []byte) error {
	return blake2bSuite.HMACInto(out, key, data)
}

// HMAC returns the HMAC-BLAKE2b-256 of data under key.
func HMAC(key, data []byte) ([HashSize]byte, error) {
	return blake2bSuite.HMAC(key, data)
}
