package field

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// render serializes f into a fresh buffer.
func render(t *testing.T, f *Field) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Render(binary.NewWriter(&buf)))
	return buf.Bytes()
}

// parse decodes data into a fresh field built from cfg.
func parse(t *testing.T, cfg Config, data []byte) *Field {
	t.Helper()
	f := New(cfg)
	require.NoError(t, f.Parse(binary.NewReader(data)))
	return f
}

func TestRender_Integer(t *testing.T) {
	tests := []struct {
		name  string
		fixed int
		val   uint32
		want  []byte
	}{
		{"one byte", 1, 0x42, []byte{0x42}},
		{"default four bytes", 0, 0x12345678, []byte{0x12, 0x34, 0x56, 0x78}},
		{"truncates to width", 1, 0x1FF, []byte{0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(Config{ID: types.FieldCounter, Kind: types.KindInteger, Fixed: tt.fixed})
			require.NoError(t, f.SetInteger(tt.val))

			assert.Equal(t, tt.want, render(t, f))
		})
	}
}

func TestRoundTrip_Integer(t *testing.T) {
	cfg := Config{ID: types.FieldCounter, Kind: types.KindInteger, Fixed: 4}
	f := New(cfg)
	require.NoError(t, f.SetInteger(0xDEADBEEF))

	got := parse(t, cfg, render(t, f))
	v, err := got.Integer()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)
	assert.True(t, got.HasChanged())
}

func TestRoundTrip_Binary(t *testing.T) {
	cfg := Config{ID: types.FieldData, Kind: types.KindBinary}
	f := New(cfg)
	require.NoError(t, f.SetBinary([]byte{0x00, 0x01, 0xFF, 0x00}))

	got := parse(t, cfg, render(t, f))
	b, err := got.Binary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xFF, 0x00}, b)
}

func TestRender_BinaryFixed_PadsAndTruncates(t *testing.T) {
	cfg := Config{ID: types.FieldData, Kind: types.KindBinary, Fixed: 4}

	short := New(cfg)
	require.NoError(t, short.SetBinary([]byte{0xAA}))
	assert.Equal(t, []byte{0xAA, 0x00, 0x00, 0x00}, render(t, short))

	long := New(cfg)
	require.NoError(t, long.SetBinary([]byte{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, []byte{1, 2, 3, 4}, render(t, long))
}

func TestRoundTrip_TextLatin1(t *testing.T) {
	cfg := Config{ID: types.FieldText, Kind: types.KindUnicodeText, Flags: types.FlagTextList}
	f := New(cfg)
	_, err := f.SetText("héllo")
	require.NoError(t, err)

	wire := render(t, f)
	// ISO-8859-1: one byte per rune, no terminator on a single item.
	assert.Equal(t, []byte{'h', 0xE9, 'l', 'l', 'o'}, wire)

	got := parse(t, cfg, wire)
	s, err := got.Text()
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)
}

func TestRoundTrip_TextUTF16(t *testing.T) {
	cfg := Config{ID: types.FieldText, Kind: types.KindUnicodeText, Flags: types.FlagTextList}
	f := New(cfg)
	_, err := f.SetText("héllo")
	require.NoError(t, err)
	require.True(t, f.SetEncoding(types.EncodingUTF16))

	wire := render(t, f)
	// Little-endian byte order mark, then LE code units.
	assert.Equal(t, byte(0xFF), wire[0])
	assert.Equal(t, byte(0xFE), wire[1])
	assert.Len(t, wire, 2+5*2)

	got := New(cfg)
	got.SetEncoding(types.EncodingUTF16)
	require.NoError(t, got.Parse(binary.NewReader(wire)))
	s, err := got.Text()
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)
}

func TestParse_UTF16_BigEndianDefault(t *testing.T) {
	cfg := Config{ID: types.FieldText, Kind: types.KindUnicodeText}
	f := New(cfg)
	f.SetEncoding(types.EncodingUTF16)

	// No byte order mark: big-endian is assumed.
	require.NoError(t, f.Parse(binary.NewReader([]byte{0x00, 'h', 0x00, 'i'})))
	s, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestParse_UTF16_BigEndianBOM(t *testing.T) {
	cfg := Config{ID: types.FieldText, Kind: types.KindUnicodeText}
	f := New(cfg)
	f.SetEncoding(types.EncodingUTF16)

	require.NoError(t, f.Parse(binary.NewReader([]byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'})))
	s, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

// unmappable runes collapse to '?' deterministically on the Latin-1 wire
func TestRender_Latin1Substitution(t *testing.T) {
	cfg := Config{ID: types.FieldText, Kind: types.KindASCIIText}
	f := New(cfg)
	_, err := f.SetText("a☃b")
	require.NoError(t, err)

	first := render(t, f)
	assert.Equal(t, []byte("a?b"), first)
	assert.Equal(t, first, render(t, f))
}

// ASCII-kind fields stay ISO-8859-1 on the wire even with the frame
// encoding switched to UTF-16
func TestRender_ASCIIKindIgnoresUTF16(t *testing.T) {
	cfg := Config{ID: types.FieldURL, Kind: types.KindASCIIText}
	f := New(cfg)
	_, err := f.SetText("http://x")
	require.NoError(t, err)
	f.SetEncoding(types.EncodingUTF16)

	assert.Equal(t, []byte("http://x"), render(t, f))
}

func TestRoundTrip_MultiItemList(t *testing.T) {
	cfg := Config{ID: types.FieldText, Kind: types.KindUnicodeText, Flags: types.FlagTextList}
	f := New(cfg)
	_, _ = f.AddText("a")
	_, _ = f.AddText("b")
	_, _ = f.AddText("c")

	wire := render(t, f)
	assert.Equal(t, []byte{'a', 0, 'b', 0, 'c'}, wire)

	got := parse(t, cfg, wire)
	assert.Equal(t, 3, got.NumTextItems())
	for i, want := range []string{"a", "b", "c"} {
		item, err := got.TextItem(i)
		require.NoError(t, err)
		assert.Equal(t, want, item)
	}
}

func TestParse_List_TrailingTerminatorTolerated(t *testing.T) {
	cfg := Config{ID: types.FieldText, Kind: types.KindUnicodeText, Flags: types.FlagTextList}

	got := parse(t, cfg, []byte{'a', 0, 'b', 0})
	assert.Equal(t, 2, got.NumTextItems())
}

func TestRoundTrip_CString(t *testing.T) {
	cfg := Config{ID: types.FieldDescription, Kind: types.KindUnicodeText, Flags: types.FlagCString | types.FlagEncodable}
	f := New(cfg)
	_, err := f.SetText("desc")
	require.NoError(t, err)

	wire := render(t, f)
	assert.Equal(t, []byte{'d', 'e', 's', 'c', 0}, wire)

	// A C-string consumes its terminator and leaves the rest untouched.
	r := binary.NewReader(append(wire, 'x', 'y'))
	got := New(cfg)
	require.NoError(t, got.Parse(r))
	s, err := got.Text()
	require.NoError(t, err)
	assert.Equal(t, "desc", s)
	assert.Equal(t, 2, r.Remaining())
}

func TestParse_CString_MissingTerminator(t *testing.T) {
	cfg := Config{ID: types.FieldDescription, Kind: types.KindUnicodeText, Flags: types.FlagCString}

	got := parse(t, cfg, []byte("no nul here"))
	s, err := got.Text()
	require.NoError(t, err)
	assert.Equal(t, "no nul here", s)
}

func TestRoundTrip_CStringUTF16(t *testing.T) {
	cfg := Config{ID: types.FieldDescription, Kind: types.KindUnicodeText, Flags: types.FlagCString | types.FlagEncodable}
	f := New(cfg)
	_, err := f.SetText("dé")
	require.NoError(t, err)
	f.SetEncoding(types.EncodingUTF16)

	wire := render(t, f)
	// BOM + two code units + double-NUL terminator.
	assert.Len(t, wire, 2+2*2+2)
	assert.Equal(t, []byte{0, 0}, wire[len(wire)-2:])

	r := binary.NewReader(append(wire, 0xAA))
	got := New(cfg)
	got.SetEncoding(types.EncodingUTF16)
	require.NoError(t, got.Parse(r))
	s, err := got.Text()
	require.NoError(t, err)
	assert.Equal(t, "dé", s)
	assert.Equal(t, 1, r.Remaining())
}

func TestRoundTrip_FixedText(t *testing.T) {
	cfg := Config{ID: types.FieldLanguage, Kind: types.KindASCIIText, Fixed: 3}

	f := New(cfg)
	_, err := f.SetText("en")
	require.NoError(t, err)
	wire := render(t, f)
	assert.Equal(t, []byte{'e', 'n', 0}, wire)

	long := New(cfg)
	_, err = long.SetText("english")
	require.NoError(t, err)
	assert.Equal(t, []byte("eng"), render(t, long))

	// A fixed field consumes exactly its width.
	r := binary.NewReader([]byte{'e', 'n', 'g', 'x'})
	got := New(cfg)
	require.NoError(t, got.Parse(r))
	assert.Equal(t, 1, r.Remaining())
}

// BinSize always equals the rendered byte count
func TestBinSize_MatchesRender(t *testing.T) {
	configs := []struct {
		name string
		cfg  Config
		fill func(f *Field)
	}{
		{"integer", Config{ID: types.FieldCounter, Kind: types.KindInteger, Fixed: 4}, func(f *Field) { _ = f.SetInteger(7) }},
		{"empty text", Config{ID: types.FieldText, Kind: types.KindUnicodeText, Flags: types.FlagTextList}, func(f *Field) {}},
		{"latin1 list", Config{ID: types.FieldText, Kind: types.KindUnicodeText, Flags: types.FlagTextList}, func(f *Field) {
			_, _ = f.AddText("one")
			_, _ = f.AddText("two")
		}},
		{"utf16 cstring", Config{ID: types.FieldDescription, Kind: types.KindUnicodeText, Flags: types.FlagCString}, func(f *Field) {
			_, _ = f.SetText("héllo")
			f.SetEncoding(types.EncodingUTF16)
		}},
		{"fixed text", Config{ID: types.FieldLanguage, Kind: types.KindASCIIText, Fixed: 3}, func(f *Field) { _, _ = f.SetText("e") }},
		{"binary", Config{ID: types.FieldData, Kind: types.KindBinary}, func(f *Field) { _ = f.SetBinary([]byte{1, 2, 3}) }},
		{"fixed binary short", Config{ID: types.FieldData, Kind: types.KindBinary, Fixed: 8}, func(f *Field) { _ = f.SetBinary([]byte{1}) }},
	}

	for _, tt := range configs {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.cfg)
			tt.fill(f)
			assert.Equal(t, f.BinSize(), len(render(t, f)))
		})
	}
}

// a parse failure leaves the field exactly as it was
func TestParse_FailureLeavesFieldUnchanged(t *testing.T) {
	cfg := Config{ID: types.FieldCounter, Kind: types.KindInteger, Fixed: 4}
	f := New(cfg)
	require.NoError(t, f.SetInteger(99))

	err := f.Parse(binary.NewReader([]byte{0x01, 0x02}))
	require.Error(t, err)

	var te *types.TruncatedError
	assert.ErrorAs(t, err, &te)

	v, _ := f.Integer()
	assert.Equal(t, uint32(99), v)
}

// render then parse then render again is byte-identical
func TestRoundTrip_Stable(t *testing.T) {
	cfg := Config{ID: types.FieldText, Kind: types.KindUnicodeText, Flags: types.FlagTextList}
	f := New(cfg)
	_, _ = f.AddText("héllo")
	_, _ = f.AddText("wörld")
	f.SetEncoding(types.EncodingUTF16)

	first := render(t, f)

	got := New(cfg)
	got.SetEncoding(types.EncodingUTF16)
	require.NoError(t, got.Parse(binary.NewReader(first)))

	assert.Equal(t, first, render(t, got))
}
