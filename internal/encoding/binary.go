package encoding

import (
	"encoding/binary"
	"fmt"
)

// ErrShortBuffer is returned when reading past the end of the data.
var ErrShortBuffer = fmt.Errorf("buffer too short")

// FromBytes32 turns []byte into uint32
func FromBytes32(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

// ToBytes32 turns a uint32 into []byte len 4
func ToBytes32(in uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, in)
	return buf
}

// AppendInt32 appends the 4 byte form of a signed value.
// Negative sentinels (eg. -1) survive the round trip.
func AppendInt32(buf []byte, in int) []byte {
	return append(buf, ToBytes32(uint32(int32(in)))...)
}

// Reader walks a buffer of 4 byte values.
type Reader struct {
	data []byte
	off  int
}

// NewReader reads from the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Int32 reads the next signed value.
func (r *Reader) Int32() (int, error) {
	if r.off+4 > len(r.data) {
		return 0, fmt.Errorf("%w: need 4 bytes at offset %d of %d", ErrShortBuffer, r.off, len(r.data))
	}
	v := int32(FromBytes32(r.data[r.off : r.off+4]))
	r.off += 4
	return int(v), nil
}

// Remaining is the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}
