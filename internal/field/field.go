// Package field implements the polymorphic tag field: a single value cell
// that holds an unsigned integer, a list of text items, or a binary buffer,
// and that parses itself from and renders itself to the binary tag format.
//
// All text is normalized into canonical UTF-8 storage at the Set/Add/Parse
// boundary; every read-side conversion derives from that single source of
// truth. Switching the presentation encoding never changes stored content.
package field

import (
	"strings"

	"github.com/simonhull/id3tag/internal/types"
)

// Config describes a field the way a frame descriptor does: identity, kind,
// fixed size (0 for variable), parse/render flags, and the version range
// the field applies to.
type Config struct {
	ID    types.FieldID
	Kind  types.FieldKind
	Fixed int
	Flags types.FieldFlags
	Since types.Version
	Until types.Version
}

// Field is a self-describing, type-tagged value cell. Its kind is fixed at
// construction; calling an accessor group that does not match the kind
// returns a *types.KindError.
//
// A Field owns its storage exclusively and is not safe for concurrent
// mutation. The dirty flag starts false and is set by any mutation; the
// core never clears it.
type Field struct {
	cfg   Config
	enc   types.TextEncoding
	dirty bool

	integer uint32
	items   []string
	buf     []byte
}

// New creates a Field bound to the given descriptor. Text fields start in
// ISO-8859-1 encoding. An unset version range defaults to every supported
// version.
func New(cfg Config) *Field {
	if cfg.Since == 0 {
		cfg.Since = types.VersionEarliest
	}
	if cfg.Until == 0 {
		cfg.Until = types.VersionLatest
	}
	return &Field{cfg: cfg}
}

// ID returns the field's identity within its frame.
func (f *Field) ID() types.FieldID {
	return f.cfg.ID
}

// Kind returns the field's data kind.
func (f *Field) Kind() types.FieldKind {
	return f.cfg.Kind
}

// Flags returns the field's descriptor flags.
func (f *Field) Flags() types.FieldFlags {
	return f.cfg.Flags
}

// InScope reports whether the field applies to tags of version v.
func (f *Field) InScope(v types.Version) bool {
	return v >= f.cfg.Since && v <= f.cfg.Until
}

// HasChanged reports whether the field has been mutated since construction.
func (f *Field) HasChanged() bool {
	return f.dirty
}

// IsEncodable reports whether the field holds text and therefore accepts
// a presentation encoding.
func (f *Field) IsEncodable() bool {
	return f.cfg.Kind.IsText()
}

// Encoding returns the current presentation encoding. It is meaningless
// for non-text kinds.
func (f *Field) Encoding() types.TextEncoding {
	return f.enc
}

// SetEncoding changes the presentation encoding. It succeeds only for text
// kinds and valid encodings, and never alters stored content.
func (f *Field) SetEncoding(enc types.TextEncoding) bool {
	if !f.cfg.Kind.IsText() || !enc.Valid() {
		return false
	}
	f.enc = enc
	return true
}

// Clear resets storage to the kind's empty value and marks the field dirty.
func (f *Field) Clear() {
	f.integer = 0
	f.items = nil
	f.buf = nil
	f.dirty = true
}

// Size returns the logical size of the value: the byte width for integers,
// the number of characters (separators included) for text, and the byte
// length for binary data.
func (f *Field) Size() int {
	switch f.cfg.Kind {
	case types.KindInteger:
		return f.intWidth()
	case types.KindASCIIText, types.KindUnicodeText:
		n := 0
		for i, item := range f.items {
			if i > 0 {
				n++
			}
			n += len([]rune(item))
		}
		return n
	case types.KindBinary:
		return len(f.buf)
	default:
		return 0
	}
}

// NumTextItems returns the number of stored text items, 0 for an empty
// list or a non-text field.
func (f *Field) NumTextItems() int {
	if !f.cfg.Kind.IsText() {
		return 0
	}
	return len(f.items)
}

// Assign deep-copies the value, encoding, and identity of src into f and
// marks f dirty. The source's dirty history is not copied. Assigning
// across kinds is a usage error.
func (f *Field) Assign(src *Field) error {
	if src.cfg.Kind != f.cfg.Kind {
		return &types.KindError{Op: "Assign", Kind: src.cfg.Kind, Want: f.cfg.Kind}
	}
	f.cfg.ID = src.cfg.ID
	f.enc = src.enc
	f.integer = src.integer
	f.items = append([]string(nil), src.items...)
	f.buf = append([]byte(nil), src.buf...)
	f.dirty = true
	return nil
}

// intWidth returns the rendered byte width of an integer field.
func (f *Field) intWidth() int {
	if f.cfg.Fixed >= 1 && f.cfg.Fixed <= 4 {
		return f.cfg.Fixed
	}
	return 4
}

// requireKind returns a KindError unless the field's kind is in kinds.
func (f *Field) requireKind(op string, kinds ...types.FieldKind) error {
	for _, k := range kinds {
		if f.cfg.Kind == k {
			return nil
		}
	}
	return &types.KindError{Op: op, Kind: f.cfg.Kind, Want: kinds[0]}
}

// SetInteger stores an integer value.
func (f *Field) SetInteger(v uint32) error {
	if err := f.requireKind("SetInteger", types.KindInteger); err != nil {
		return err
	}
	f.integer = v
	f.dirty = true
	return nil
}

// Integer returns the stored integer value.
func (f *Field) Integer() (uint32, error) {
	if err := f.requireKind("Integer", types.KindInteger); err != nil {
		return 0, err
	}
	return f.integer, nil
}

// SetText replaces the text item list with the single canonical item s and
// returns the number of bytes stored.
func (f *Field) SetText(s string) (int, error) {
	if err := f.requireKind("SetText", types.KindUnicodeText, types.KindASCIIText); err != nil {
		return 0, err
	}
	f.items = []string{s}
	f.dirty = true
	return len(s), nil
}

// AddText appends a canonical text item, preserving item order, and
// returns the number of bytes stored.
func (f *Field) AddText(s string) (int, error) {
	if err := f.requireKind("AddText", types.KindUnicodeText, types.KindASCIIText); err != nil {
		return 0, err
	}
	f.items = append(f.items, s)
	f.dirty = true
	return len(s), nil
}

// Text returns the whole stored text. Multiple items are joined by NUL,
// mirroring the separator used in the serialized form.
func (f *Field) Text() (string, error) {
	if err := f.requireKind("Text", types.KindUnicodeText, types.KindASCIIText); err != nil {
		return "", err
	}
	return strings.Join(f.items, "\x00"), nil
}

// TextItem returns the canonical text item at index i.
func (f *Field) TextItem(i int) (string, error) {
	if err := f.requireKind("TextItem", types.KindUnicodeText, types.KindASCIIText); err != nil {
		return "", err
	}
	if i < 0 || i >= len(f.items) {
		return "", &types.IndexError{What: "text item", Index: i, Count: len(f.items)}
	}
	return f.items[i], nil
}

// CopyText copies the UTF-8 bytes of the whole stored text into dst,
// truncating at len(dst), and returns the number of bytes copied.
func (f *Field) CopyText(dst []byte) (int, error) {
	s, err := f.Text()
	if err != nil {
		return 0, err
	}
	return copy(dst, s), nil
}

// CopyTextItem copies the UTF-8 bytes of item i into dst, truncating at
// len(dst), and returns the number of bytes copied.
func (f *Field) CopyTextItem(dst []byte, i int) (int, error) {
	s, err := f.TextItem(i)
	if err != nil {
		return 0, err
	}
	return copy(dst, s), nil
}

// SetLatin1 replaces the text item list with s, interpreting the bytes of
// s as ISO-8859-1, and returns the number of bytes consumed.
func (f *Field) SetLatin1(s string) (int, error) {
	if err := f.requireKind("SetLatin1", types.KindASCIIText, types.KindUnicodeText); err != nil {
		return 0, err
	}
	f.items = []string{decodeLatin1([]byte(s))}
	f.dirty = true
	return len(s), nil
}

// AddLatin1 appends a text item, interpreting the bytes of s as
// ISO-8859-1, and returns the number of bytes consumed.
func (f *Field) AddLatin1(s string) (int, error) {
	if err := f.requireKind("AddLatin1", types.KindASCIIText, types.KindUnicodeText); err != nil {
		return 0, err
	}
	f.items = append(f.items, decodeLatin1([]byte(s)))
	f.dirty = true
	return len(s), nil
}

// Latin1 returns the whole stored text as seen through ISO-8859-1: runes
// without a single-byte mapping come back as '?'. Multiple items are
// joined by NUL.
func (f *Field) Latin1() (string, error) {
	s, err := f.Text()
	if err != nil {
		return "", err
	}
	return decodeLatin1(encodeLatin1(s)), nil
}

// Latin1Item returns item i as seen through ISO-8859-1, with '?'
// substituted for unmappable runes.
func (f *Field) Latin1Item(i int) (string, error) {
	s, err := f.TextItem(i)
	if err != nil {
		return "", err
	}
	return decodeLatin1(encodeLatin1(s)), nil
}

// CopyLatin1 copies the ISO-8859-1 bytes of the whole stored text into
// dst, truncating at len(dst), and returns the number of bytes copied.
// Unmappable runes are substituted with '?'.
func (f *Field) CopyLatin1(dst []byte) (int, error) {
	s, err := f.Text()
	if err != nil {
		return 0, err
	}
	return copy(dst, encodeLatin1(s)), nil
}

// CopyLatin1Item copies the ISO-8859-1 bytes of item i into dst,
// truncating at len(dst), and returns the number of bytes copied.
func (f *Field) CopyLatin1Item(dst []byte, i int) (int, error) {
	s, err := f.TextItem(i)
	if err != nil {
		return 0, err
	}
	return copy(dst, encodeLatin1(s)), nil
}

// SetBinary replaces the binary buffer with a copy of b.
func (f *Field) SetBinary(b []byte) error {
	if err := f.requireKind("SetBinary", types.KindBinary); err != nil {
		return err
	}
	f.buf = append([]byte(nil), b...)
	f.dirty = true
	return nil
}

// Binary returns a copy of the binary buffer. The field keeps exclusive
// ownership of its storage.
func (f *Field) Binary() ([]byte, error) {
	if err := f.requireKind("Binary", types.KindBinary); err != nil {
		return nil, err
	}
	return append([]byte(nil), f.buf...), nil
}

// CopyBinary copies the binary buffer into dst, truncating at len(dst),
// and returns the number of bytes copied.
func (f *Field) CopyBinary(dst []byte) (int, error) {
	if err := f.requireKind("CopyBinary", types.KindBinary); err != nil {
		return 0, err
	}
	return copy(dst, f.buf), nil
}
