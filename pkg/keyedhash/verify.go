package keyedhash

import (
	"crypto/subtle"
	"fmt"
)

// VerifyMAC returns true if tag is the MAC (HashSize bytes) or the MAC16 (MACSize bytes) of data
// under key. Tags of any other length return ErrTagSize.
func (s *Suite) VerifyMAC(key, data, tag []byte) (bool, error) {
	switch len(tag) {
	case HashSize:
		t, err := s.MAC(key, data)
		if err != nil {
			return false, err
		}

		return subtle.ConstantTimeCompare(t[:], tag) == 1, nil
	case MACSize:
		t, err := s.MAC16(key, data)
		if err != nil {
			return false, err
		}

		return subtle.ConstantTimeCompare(t[:], tag) == 1, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrTagSize, len(tag))
	}
}

// VerifyHMAC returns true if tag is the HMAC of data under key.
func (s *Suite) VerifyHMAC(key, data, tag []byte) (bool, error) {
	if len(tag) != HashSize {
		return false, fmt.Errorf("%w: %d", ErrTagSize, len(tag))
	}

	t, err := s.HMAC(key, data)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(t[:], tag) == 1, nil
}

// VerifyMAC returns true if tag is the BLAKE2b MAC or MAC16 of data under key.
func VerifyMAC(key, data, tag []byte) (bool, error) {
	return blake2bSuite.VerifyMAC(key, data, tag)
}

// VerifyHMAC returns true if tag is the HMAC-BLAKE2b-256 of data under key.
func VerifyHMAC(key, data, tag []byte) (bool, error) {
	return blake2bSuite.VerifyHMAC(key, data, tag)
}
