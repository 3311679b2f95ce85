package keyedhash

import (
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVerifyMAC(t *testing.T) {
	t.Parallel()

	tag, err := MAC(testKey, testData)
	if err != nil {
		t.Fatal(err)
	}

	short, err := MAC16(testKey, testData)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyMAC(testKey, testData, tag[:])
	assert.Equal(t, "error", nil, err)
	assert.Equal(t, "valid tag", true, ok)

	ok, err = VerifyMAC(testKey, testData, short[:])
	assert.Equal(t, "error", nil, err)
	assert.Equal(t, "valid short tag", true, ok)

	ok, err = VerifyMAC(testKey, []byte("tset"), tag[:])
	assert.Equal(t, "error", nil, err)
	assert.Equal(t, "wrong data", false, ok)

	// A truncated full tag is not a valid short tag.
	ok, err = VerifyMAC(testKey, testData, tag[:MACSize])
	assert.Equal(t, "error", nil, err)
	assert.Equal(t, "truncated tag", false, ok)

	_, err = VerifyMAC(testKey, testData, tag[:20])
	assert.Equal(t, "error", ErrTagSize, err, cmpopts.EquateErrors())
}

func TestVerifyHMAC(t *testing.T) {
	t.Parallel()

	digest, err := HMAC(testKey, testData)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := VerifyHMAC(testKey, testData, digest[:])
	assert.Equal(t, "error", nil, err)
	assert.Equal(t, "valid", true, ok)

	digest[0] ^= 1

	ok, err = VerifyHMAC(testKey, testData, digest[:])
	assert.Equal(t, "error", nil, err)
	assert.Equal(t, "modified", false, ok)

	_, err = VerifyHMAC(testKey, testData, digest[:MACSize])
	assert.Equal(t, "error", ErrTagSize, err, cmpopts.EquateErrors())

	_, err = VerifyHMAC(testKey[:8], testData, digest[:])
	assert.Equal(t, "error", ErrKeySize, err, cmpopts.EquateErrors())
}

func TestVerifyFailure(t *testing.T) {
	t.Parallel()

	s := New(failingPrimitive{})

	_, err := s.VerifyMAC(testKey, testData, make([]byte, HashSize))
	assertPrimitiveError(t, "mac", err)

	_, err = s.VerifyMAC(testKey, testData, make([]byte, MACSize))
	assertPrimitiveError(t, "mac16", err)

	_, err = s.VerifyHMAC(testKey, testData, make([]byte, HashSize))
	assertPrimitiveError(t, "hmac", err)
}
