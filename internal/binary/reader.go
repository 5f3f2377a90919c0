// Package binary provides the byte-stream collaborators fields parse from
// and render to: a sequential bounded reader and a position-tracking writer.
package binary

import (
	"encoding/binary"

	"github.com/simonhull/id3tag/internal/types"
)

// Reader is a sequential, forward-only reader over one field's share of a
// frame payload. Every read is bounds-checked against the remaining length,
// and errors carry a description of what was being read.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Consumed returns the number of bytes read so far.
func (r *Reader) Consumed() int {
	return r.off
}

// Peek returns the unread bytes without consuming them. The returned slice
// aliases the reader's data and must not be modified.
func (r *Reader) Peek() []byte {
	return r.data[r.off:]
}

// Skip consumes n bytes. Skipping past the end consumes everything left.
func (r *Reader) Skip(n int) {
	if n > r.Remaining() {
		n = r.Remaining()
	}
	r.off += n
}

// ReadBytes reads exactly n bytes, copying them out of the reader.
func (r *Reader) ReadBytes(n int, what string) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, &types.TruncatedError{What: what, Need: n, Have: r.Remaining()}
	}
	out := make([]byte, n)
	copy(out, r.data[r.off:])
	r.off += n
	return out, nil
}

// ReadRest consumes and returns a copy of all unread bytes.
func (r *Reader) ReadRest() []byte {
	out := make([]byte, r.Remaining())
	copy(out, r.data[r.off:])
	r.off = len(r.data)
	return out
}

// ReadUint reads a big-endian unsigned integer of the given byte width
// (1 to 4).
func (r *Reader) ReadUint(width int, what string) (uint32, error) {
	if width < 1 || width > 4 {
		return 0, &types.TruncatedError{What: what, Need: width, Have: r.Remaining()}
	}
	b, err := r.ReadBytes(width, what)
	if err != nil {
		return 0, err
	}
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v, nil
}

// ReadValue reads a big-endian value of type T.
func ReadValue[T uint8 | uint16 | uint32](r *Reader, what string) (T, error) {
	var zero T
	var size int
	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	}

	b, err := r.ReadBytes(size, what)
	if err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(b[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(b))
	case uint32:
		val = T(binary.BigEndian.Uint32(b))
	}
	return val, nil
}
