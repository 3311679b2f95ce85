package keyedhash

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/codahale/keyedhash/pkg/generichash"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	testKey  = bytes.Repeat([]byte{0x0b}, KeySize)
	testData = []byte("test")
)

type call struct {
	key    []byte
	absent bool
	out    int
	data   []byte
}

// recordingPrimitive records each call and writes a fixed pattern to the output.
type recordingPrimitive struct {
	mu    sync.Mutex
	calls []call
}

func (r *recordingPrimitive) GenericHash(out, data []byte, key generichash.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, call{
		key:    append([]byte(nil), key.Bytes()...),
		absent: key.Absent(),
		out:    len(out),
		data:   append([]byte(nil), data...),
	})

	for i := range out {
		out[i] = byte(len(r.calls))
	}

	return nil
}

type failingPrimitive struct{}

var errStatus = errors.New("status -1")

func (failingPrimitive) GenericHash(_, _ []byte, _ generichash.Key) error {
	return errStatus
}

func assertPrimitiveError(t *testing.T, op string, err error) {
	t.Helper()

	assert.Equal(t, "sentinel", generichash.ErrPrimitive, err, cmpopts.EquateErrors())
	assert.Equal(t, "cause", errStatus, err, cmpopts.EquateErrors())

	var pe *generichash.PrimitiveError
	if !errors.As(err, &pe) {
		t.Fatalf("%v is not a PrimitiveError", err)
	}

	assert.Equal(t, "op", op, pe.Op)
}

func TestNonce0(t *testing.T) {
	t.Parallel()

	n := Nonce0()

	assert.Equal(t, "nonce", make([]byte, NonceSize), n[:])
	assert.Equal(t, "nonce size", 12, NonceSize)
}

func TestNothing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "length", 0, len(Nothing()))
	assert.Equal(t, "non-nil", false, Nothing() == nil)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default suite", true, Default() == Default())

	a, err := Default().Hash(testData)
	if err != nil {
		t.Fatal(err)
	}

	b, err := New(generichash.BLAKE2b).Hash(testData)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "digest", a, b)
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	want, err := HMAC(testKey, testData)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup

	results := make([][HashSize]byte, 16)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			results[i], _ = HMAC(testKey, testData)
		}(i)
	}

	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "hmac", want, got)
	}
}
