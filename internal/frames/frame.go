package frames

import (
	"fmt"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/field"
	"github.com/simonhull/id3tag/internal/types"
)

// Frame owns the ordered list of fields that compose one frame, built from
// the registry descriptor for its identifier. Fields parse and render in
// descriptor order; fields out of scope for the requested version are
// skipped on both paths.
//
// The frame owns the text encoding byte: the value parsed from (and
// rendered into) the TextEncoding field always mirrors the frame's current
// encoding, and changing it propagates to every encodable field.
type Frame struct {
	id     FrameID
	fields []*field.Field
	enc    types.TextEncoding
}

// Option configures a new Frame.
type Option func(*Frame)

// WithEncoding presets the frame's text encoding. Equivalent to calling
// SetEncoding after construction, except the fields stay unmodified and
// report HasChanged() == false.
func WithEncoding(enc types.TextEncoding) Option {
	return func(fr *Frame) {
		if enc.Valid() {
			fr.enc = enc
			fr.applyEncoding(enc)
		}
	}
}

// New creates a Frame with one field per registry descriptor.
func New(id FrameID, opts ...Option) (*Frame, error) {
	if !valid(id) {
		return nil, &types.UnknownFrameError{Name: id.String()}
	}

	desc := frameTable[id]
	fr := &Frame{
		id:     id,
		fields: make([]*field.Field, len(desc.fields)),
	}
	for i, cfg := range desc.fields {
		fr.fields[i] = field.New(cfg)
	}

	for _, opt := range opts {
		opt(fr)
	}
	return fr, nil
}

// ID returns the frame's identifier.
func (fr *Frame) ID() FrameID {
	return fr.id
}

// Fields returns the frame's fields in descriptor order. The slice is the
// frame's own; callers mutate fields through it deliberately.
func (fr *Frame) Fields() []*field.Field {
	return fr.fields
}

// Field returns the first field with the given identity, or nil if the
// frame has none.
func (fr *Frame) Field(id types.FieldID) *field.Field {
	for _, f := range fr.fields {
		if f.ID() == id {
			return f
		}
	}
	return nil
}

// Encoding returns the frame's current text encoding.
func (fr *Frame) Encoding() types.TextEncoding {
	return fr.enc
}

// SetEncoding changes the frame's text encoding, propagating it to every
// encodable field and to the TextEncoding field's stored value.
func (fr *Frame) SetEncoding(enc types.TextEncoding) bool {
	if !enc.Valid() {
		return false
	}
	fr.enc = enc
	fr.applyEncoding(enc)
	if f := fr.Field(types.FieldTextEncoding); f != nil {
		_ = f.SetInteger(uint32(enc))
	}
	return true
}

// applyEncoding sets the presentation encoding of every encodable field.
func (fr *Frame) applyEncoding(enc types.TextEncoding) {
	for _, f := range fr.fields {
		if f.Flags().Has(types.FlagEncodable) {
			f.SetEncoding(enc)
		}
	}
}

// HasChanged reports whether any field has been mutated.
func (fr *Frame) HasChanged() bool {
	for _, f := range fr.fields {
		if f.HasChanged() {
			return true
		}
	}
	return false
}

// Size returns the exact number of bytes Render will produce for version v.
func (fr *Frame) Size(v types.Version) int {
	n := 0
	for _, f := range fr.fields {
		if !f.InScope(v) {
			continue
		}
		n += f.BinSize()
	}
	return n
}

// Parse populates the frame's fields from a raw frame payload of version
// v. The text encoding byte is read first and propagated to the encodable
// fields before they parse. Trailing padding bytes are tolerated.
//
// A field error aborts the parse; fields already parsed keep their values,
// and the owning layer decides whether to discard the frame.
func (fr *Frame) Parse(data []byte, v types.Version) error {
	if !v.Valid() {
		return &types.FieldParseError{Field: types.FieldNone, Reason: fmt.Sprintf("invalid version %s", v)}
	}

	r := binary.NewReader(data)
	for _, f := range fr.fields {
		if !f.InScope(v) {
			continue
		}

		if f.ID() == types.FieldTextEncoding {
			b, err := binary.ReadValue[uint8](r, "text encoding byte")
			if err != nil {
				return err
			}
			enc, err := encodingFromByte(b)
			if err != nil {
				return err
			}
			fr.enc = enc
			fr.applyEncoding(enc)
			// Store the normalized value so the field reflects the wire.
			_ = f.SetInteger(uint32(enc))
			continue
		}

		if err := f.Parse(r); err != nil {
			return fmt.Errorf("frame %s: %w", fr.id, err)
		}
	}
	return nil
}

// Render serializes the frame's in-scope fields into w in descriptor
// order. It writes exactly Size(v) bytes and adds no frame header; that is
// the tag layer's responsibility.
func (fr *Frame) Render(w *binary.Writer, v types.Version) error {
	if !v.Valid() {
		return &types.FieldParseError{Field: types.FieldNone, Reason: fmt.Sprintf("invalid version %s", v)}
	}

	for _, f := range fr.fields {
		if !f.InScope(v) {
			continue
		}

		if f.ID() == types.FieldTextEncoding {
			if err := binary.WriteValue(w, uint8(fr.enc)); err != nil {
				return err
			}
			continue
		}

		if err := f.Render(w); err != nil {
			return fmt.Errorf("frame %s: %w", fr.id, err)
		}
	}
	return nil
}

// encodingFromByte maps a wire encoding byte onto the supported closed
// set. ISO-8859-1 and both UTF-16 forms are accepted; the BOM-less
// big-endian form (byte 2) normalizes to EncodingUTF16.
func encodingFromByte(b uint8) (types.TextEncoding, error) {
	switch b {
	case 0:
		return types.EncodingLatin1, nil
	case 1, 2:
		return types.EncodingUTF16, nil
	default:
		return types.EncodingLatin1, &types.FieldParseError{
			Field:  types.FieldTextEncoding,
			Reason: fmt.Sprintf("unsupported text encoding %d", b),
		}
	}
}
