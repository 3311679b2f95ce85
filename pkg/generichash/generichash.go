// Package generichash adapts a variable-length keyed hash primitive to fixed-size callers.
//
// It is the only point of contact with the underlying primitive. Sizes are checked against the
// primitive's supported ranges, and an empty key is always dispatched as an absent key.
package generichash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const (
	KeyMin = 16           // KeyMin is the shortest key accepted in keyed mode.
	KeyMax = blake2b.Size // KeyMax is the longest key accepted in keyed mode.
	OutMin = 16           // OutMin is the shortest digest the primitive will produce.
	OutMax = blake2b.Size // OutMax is the longest digest the primitive will produce.
)

// ErrPrimitive is matched by every error returned from a failing Primitive.
var ErrPrimitive = errors.New("generichash: underlying primitive failed")

// PrimitiveError records a failed call into the underlying primitive and the operation which made
// it.
type PrimitiveError struct {
	Op  string
	Err error
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("generichash: underlying primitive failed in %s: %v", e.Op, e.Err)
}

func (e *PrimitiveError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrPrimitive.
func (e *PrimitiveError) Is(target error) bool {
	return target == ErrPrimitive
}

// Key is either absent, selecting the primitive's unkeyed mode, or a present, non-empty key.
type Key struct {
	b []byte
}

// NoKey is the absent key.
var NoKey = Key{}

// KeyOf returns b as a present key. A zero-length b yields NoKey.
func KeyOf(b []byte) Key {
	if len(b) == 0 {
		return NoKey
	}

	return Key{b: b}
}

// Absent returns true if the key selects unkeyed mode.
func (k Key) Absent() bool {
	return k.b == nil
}

// Bytes returns the key material, or nil if the key is absent.
func (k Key) Bytes() []byte {
	return k.b
}

// Len returns the length of the key material.
func (k Key) Len() int {
	return len(k.b)
}

// Primitive is a keyed hash which fills out with a len(out)-byte digest of data.
type Primitive interface {
	GenericHash(out, data []byte, key Key) error
}

// Compute fills out with a digest of data under key using p. An empty key is passed to p as
// NoKey. Key and output sizes outside the primitive's supported ranges cause a panic. A failure of
// p is returned as a *PrimitiveError tagged with op.
func Compute(p Primitive, op string, out, key, data []byte) error {
	if len(key) != 0 && (len(key) < KeyMin || len(key) > KeyMax) {
		panic(fmt.Sprintf("generichash: %s: invalid key size %d", op, len(key)))
	}

	if len(out) < OutMin || len(out) > OutMax {
		panic(fmt.Sprintf("generichash: %s: invalid output size %d", op, len(out)))
	}

	if err := p.GenericHash(out, data, KeyOf(key)); err != nil {
		return &PrimitiveError{Op: op, Err: err}
	}

	return nil
}
