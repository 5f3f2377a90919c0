package field

import (
	"fmt"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// effectiveEncoding returns the encoding used on the wire. ASCII-kind
// fields are restricted to ISO-8859-1 regardless of the presentation
// encoding; Unicode-kind fields follow it.
func (f *Field) effectiveEncoding() types.TextEncoding {
	if f.cfg.Kind == types.KindASCIIText {
		return types.EncodingLatin1
	}
	return f.enc
}

// wireText builds the serialized form of a text field: fixed-size fields
// render exactly Fixed bytes (truncated or NUL-padded), list fields join
// items with the encoding's terminator, C-string fields append one
// terminator, and plain variable fields render the single item raw.
func (f *Field) wireText() []byte {
	enc := f.effectiveEncoding()

	if f.cfg.Fixed > 0 {
		var first string
		if len(f.items) > 0 {
			first = f.items[0]
		}
		b := encodeLatin1(first)
		if len(b) > f.cfg.Fixed {
			return b[:f.cfg.Fixed]
		}
		return append(b, make([]byte, f.cfg.Fixed-len(b))...)
	}

	if f.cfg.Flags.Has(types.FlagList) {
		var out []byte
		for i, item := range f.items {
			if i > 0 {
				out = append(out, terminator(enc)...)
			}
			out = append(out, encodeText(item, enc)...)
		}
		return out
	}

	var first string
	if len(f.items) > 0 {
		first = f.items[0]
	}
	out := encodeText(first, enc)
	if f.cfg.Flags.Has(types.FlagCString) {
		out = append(out, terminator(enc)...)
	}
	return out
}

// BinSize returns the exact number of bytes Render will produce for the
// current value, encoding, and descriptor. It is derived from the same
// serializer Render uses, so the two cannot disagree.
func (f *Field) BinSize() int {
	switch f.cfg.Kind {
	case types.KindInteger:
		return f.intWidth()
	case types.KindBinary:
		if f.cfg.Fixed > 0 {
			return f.cfg.Fixed
		}
		return len(f.buf)
	case types.KindASCIIText, types.KindUnicodeText:
		return len(f.wireText())
	default:
		return 0
	}
}

// Render serializes the current value into w. It writes exactly BinSize()
// bytes and never mutates the field; frame-level headers and flags are the
// caller's responsibility.
func (f *Field) Render(w *binary.Writer) error {
	switch f.cfg.Kind {
	case types.KindInteger:
		return w.WriteUint(f.integer, f.intWidth())

	case types.KindBinary:
		if f.cfg.Fixed > 0 {
			b := f.buf
			if len(b) > f.cfg.Fixed {
				b = b[:f.cfg.Fixed]
			}
			if err := w.WriteBytes(b); err != nil {
				return err
			}
			if pad := f.cfg.Fixed - len(b); pad > 0 {
				return w.WriteBytes(make([]byte, pad))
			}
			return nil
		}
		return w.WriteBytes(f.buf)

	case types.KindASCIIText, types.KindUnicodeText:
		return w.WriteBytes(f.wireText())

	default:
		return &types.KindError{Op: "Render", Kind: f.cfg.Kind, Want: types.KindInteger}
	}
}

// Parse consumes exactly the bytes belonging to this field from r and
// populates storage. On failure the field keeps its prior state. A
// successful parse marks the field dirty.
func (f *Field) Parse(r *binary.Reader) error {
	switch f.cfg.Kind {
	case types.KindInteger:
		v, err := r.ReadUint(f.intWidth(), fmt.Sprintf("%s integer", f.cfg.ID))
		if err != nil {
			return err
		}
		f.integer = v

	case types.KindBinary:
		var b []byte
		if f.cfg.Fixed > 0 {
			var err error
			b, err = r.ReadBytes(f.cfg.Fixed, fmt.Sprintf("%s data", f.cfg.ID))
			if err != nil {
				return err
			}
		} else {
			b = r.ReadRest()
		}
		f.buf = b

	case types.KindASCIIText, types.KindUnicodeText:
		items, err := f.parseText(r)
		if err != nil {
			return err
		}
		f.items = items

	default:
		return &types.FieldParseError{Field: f.cfg.ID, Reason: "field has no kind"}
	}

	f.dirty = true
	return nil
}

// parseText reads a text field's bytes per its descriptor and returns the
// decoded item list without touching the field.
func (f *Field) parseText(r *binary.Reader) ([]string, error) {
	enc := f.effectiveEncoding()

	if f.cfg.Fixed > 0 {
		b, err := r.ReadBytes(f.cfg.Fixed, fmt.Sprintf("%s text", f.cfg.ID))
		if err != nil {
			return nil, err
		}
		return []string{decodeLatin1(b)}, nil
	}

	if f.cfg.Flags.Has(types.FlagList) {
		return splitItems(r.ReadRest(), enc), nil
	}

	if f.cfg.Flags.Has(types.FlagCString) {
		rest := r.Peek()
		idx := findTerminator(rest, enc)
		if idx < 0 {
			// Missing terminator: tolerate by taking everything left.
			return []string{decodeText(r.ReadRest(), enc)}, nil
		}
		b, err := r.ReadBytes(idx, fmt.Sprintf("%s text", f.cfg.ID))
		if err != nil {
			return nil, err
		}
		r.Skip(enc.TerminatorLen())
		return []string{decodeText(b, enc)}, nil
	}

	return []string{decodeText(r.ReadRest(), enc)}, nil
}

// splitItems splits serialized list data on the encoding's terminator.
// One trailing terminator is allowed and does not produce an empty item.
func splitItems(data []byte, enc types.TextEncoding) []string {
	if len(data) == 0 {
		return nil
	}

	var items []string
	for {
		idx := findTerminator(data, enc)
		if idx < 0 {
			items = append(items, decodeText(data, enc))
			return items
		}
		items = append(items, decodeText(data[:idx], enc))
		data = data[idx+enc.TerminatorLen():]
		if len(data) == 0 {
			return items
		}
	}
}
