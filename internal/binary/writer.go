package binary

import (
	"encoding/binary"
	"io"
)

// Writer wraps an io.Writer with position tracking. Fields render raw bytes
// through it; frame-level headers are the caller's concern.
type Writer struct {
	w      io.Writer
	offset int64
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Offset returns the number of bytes written.
func (w *Writer) Offset() int64 {
	return w.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (w *Writer) WriteBytes(b []byte) error {
	n, err := w.w.Write(b)
	w.offset += int64(n)
	return err
}

// WriteString writes a string as raw bytes.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

// WriteUint writes v as a big-endian unsigned integer of the given byte
// width (1 to 4). Values wider than the width are truncated to it.
func (w *Writer) WriteUint(v uint32, width int) error {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return w.WriteBytes(buf)
}

// WriteValue writes a value of type T in big-endian byte order.
func WriteValue[T uint8 | uint16 | uint32](w *Writer, val T) error {
	var buf []byte
	switch v := any(val).(type) {
	case uint8:
		buf = []byte{v}
	case uint16:
		buf = make([]byte, 2)
		binary.BigEndian.PutUint16(buf, v)
	case uint32:
		buf = make([]byte, 4)
		binary.BigEndian.PutUint32(buf, v)
	}
	return w.WriteBytes(buf)
}

// WriteValueLE writes a value of type T in little-endian byte order.
// Used for UTF-16LE code units following a little-endian byte order mark.
func WriteValueLE[T uint8 | uint16 | uint32](w *Writer, val T) error {
	var buf []byte
	switch v := any(val).(type) {
	case uint8:
		buf = []byte{v}
	case uint16:
		buf = make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, v)
	case uint32:
		buf = make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, v)
	}
	return w.WriteBytes(buf)
}
