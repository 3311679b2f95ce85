package internal

import (
	"bytes"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestCopy(t *testing.T) {
	t.Parallel()

	a := []byte("this is a key")
	b := Copy(a)
	b[0] = 'T'

	assert.Equal(t, "original", []byte("this is a key"), a)
	assert.Equal(t, "copy", []byte("This is a key"), b)
}

func TestWipe(t *testing.T) {
	t.Parallel()

	a := bytes.Repeat([]byte{0xff}, 32)
	b := []byte{1, 2, 3}

	Wipe(a, nil, b, []byte{})

	assert.Equal(t, "a", make([]byte, 32), a)
	assert.Equal(t, "b", make([]byte, 3), b)
}
