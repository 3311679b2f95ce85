package keyedhash

import (
	"github.com/codahale/keyedhash/pkg/generichash"
)

// MACInto writes the HashSize-byte tag of data under key to out. It panics unless key is KeySize
// bytes long and out is HashSize bytes long.
func (s *Suite) MACInto(out, key, data []byte) error {
	return s.macInto("mac", out, key, data)
}

// MAC returns the HashSize-byte tag of data under key. It panics unless key is KeySize bytes long.
func (s *Suite) MAC(key, data []byte) ([HashSize]byte, error) {
	var tag [HashSize]byte

	if err := s.macInto("mac", tag[:], key, data); err != nil {
		return [HashSize]byte{}, err
	}

	return tag, nil
}

// MAC16 returns the MACSize-byte tag of data under key. The primitive is asked for a MACSize-byte
// output, so the result is not a prefix of MAC's. It panics unless key is KeySize bytes long.
func (s *Suite) MAC16(key, data []byte) ([MACSize]byte, error) {
	mustSize("mac16", "key", key, KeySize)

	var tag [MACSize]byte

	if err := generichash.Compute(s.p, "mac16", tag[:], key, data); err != nil {
		return [MACSize]byte{}, err
	}

	return tag, nil
}

func (s *Suite) macInto(op string, out, key, data []byte) error {
	mustSize(op, "output", out, HashSize)
	mustSize(op, "key", key, KeySize)

	return generichash.Compute(s.p, op, out, key, data)
}

// MACInto writes the keyed BLAKE2b-256 tag of data to out. It panics unless key is KeySize bytes
// long and out is HashSize bytes long.
func MACInto(out, key, data []byte) error {
	return blake2bSuite.MACInto(out, key, data)
}

// MAC returns the keyed BLAKE2b-256 tag of data. It panics unless key is KeySize bytes long.
func MAC(key, data []byte) ([HashSize]byte, error) {
	return blake2bSuite.MAC(key, data)
}

// MAC16 returns the keyed BLAKE2b-128 tag of data. It panics unless key is KeySize bytes long.
func MAC16(key, data []byte) ([MACSize]byte, error) {
	return blake2bSuite.MAC16(key, data)
}
