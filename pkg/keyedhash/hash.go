package keyedhash

import (
	"github.com/codahale/keyedhash/pkg/generichash"
)

// HashInto writes the HashSize-byte unkeyed digest of data to out. It panics unless out is
// HashSize bytes long.
func (s *Suite) HashInto(out, data []byte) error {
	mustSize("hash", "output", out, HashSize)

	// An empty key selects the primitive's unkeyed mode.
	return generichash.Compute(s.p, "hash", out, Nothing(), data)
}

// Hash returns the HashSize-byte unkeyed digest of data.
func (s *Suite) Hash(data []byte) ([HashSize]byte, error) {
	var digest [HashSize]byte

	if err := s.HashInto(digest[:], data); err != nil {
		return [HashSize]byte{}, err
	}

	return digest, nil
}

// HashInto writes the BLAKE2b-256 digest of data to out. It panics unless out is HashSize bytes
// long.
func HashInto(out, data []byte) error {
	return blake2bSuite.HashInto(out, data)
}

// Hash returns the BLAKE2b-256 digest of data.
func Hash(data []byte) ([HashSize]byte, error) {
	return blake2bSuite.Hash(data)
}
