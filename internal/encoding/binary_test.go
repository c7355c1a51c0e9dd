package encoding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes32(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, ToBytes32(0x01020304))
	assert.Equal(t, uint32(0x01020304), FromBytes32([]byte{0x01, 0x02, 0x03, 0x04}))
}

func TestReaderRoundTrip(t *testing.T) {
	buf := []byte{}
	for _, v := range []int{0, 1, -1, 640, -480, 1 << 30} {
		buf = AppendInt32(buf, v)
	}

	r := NewReader(buf)
	for _, want := range []int{0, 1, -1, 640, -480, 1 << 30} {
		got, err := r.Int32()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, r.Remaining())

	_, err := r.Int32()
	assert.True(t, errors.Is(err, ErrShortBuffer))
}
