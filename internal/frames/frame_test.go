package frames

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

func renderFrame(t *testing.T, fr *Frame, v types.Version) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fr.Render(binary.NewWriter(&buf), v))
	return buf.Bytes()
}

func TestNew_BuildsDescriptorFields(t *testing.T) {
	fr, err := New(FrameTIT2)
	require.NoError(t, err)

	assert.Equal(t, FrameTIT2, fr.ID())
	require.Len(t, fr.Fields(), 2)
	assert.Equal(t, types.KindInteger, fr.Fields()[0].Kind())
	assert.Equal(t, types.KindUnicodeText, fr.Fields()[1].Kind())
	assert.False(t, fr.HasChanged())
	assert.Equal(t, types.EncodingLatin1, fr.Encoding())
}

func TestNew_UnknownFrame(t *testing.T) {
	var ue *types.UnknownFrameError
	_, err := New(FrameUnknown)
	assert.ErrorAs(t, err, &ue)

	_, err = New(MaxFrameID() + 1)
	assert.ErrorAs(t, err, &ue)
}

// WithEncoding presets the encoding without dirtying any field
func TestWithEncoding(t *testing.T) {
	fr, err := New(FrameTIT2, WithEncoding(types.EncodingUTF16))
	require.NoError(t, err)

	assert.Equal(t, types.EncodingUTF16, fr.Encoding())
	assert.False(t, fr.HasChanged())
	assert.Equal(t, types.EncodingUTF16, fr.Field(types.FieldText).Encoding())
}

func TestSetEncoding_Propagates(t *testing.T) {
	fr, err := New(FrameCOMM)
	require.NoError(t, err)

	require.True(t, fr.SetEncoding(types.EncodingUTF16))
	assert.Equal(t, types.EncodingUTF16, fr.Field(types.FieldDescription).Encoding())
	assert.Equal(t, types.EncodingUTF16, fr.Field(types.FieldText).Encoding())

	// The stored encoding byte mirrors the frame encoding.
	v, err := fr.Field(types.FieldTextEncoding).Integer()
	require.NoError(t, err)
	assert.Equal(t, uint32(types.EncodingUTF16), v)

	assert.False(t, fr.SetEncoding(types.TextEncoding(7)))
}

func TestField_Lookup(t *testing.T) {
	fr, err := New(FrameAPIC)
	require.NoError(t, err)

	require.NotNil(t, fr.Field(types.FieldData))
	assert.Equal(t, types.KindBinary, fr.Field(types.FieldData).Kind())
	assert.Nil(t, fr.Field(types.FieldLanguage))
}

func TestRender_TextFrame(t *testing.T) {
	fr, err := New(FrameTIT2)
	require.NoError(t, err)
	_, err = fr.Field(types.FieldText).SetText("Title")
	require.NoError(t, err)

	wire := renderFrame(t, fr, types.V2_3)
	assert.Equal(t, append([]byte{0}, []byte("Title")...), wire)
	assert.Equal(t, len(wire), fr.Size(types.V2_3))
}

func TestRoundTrip_TextFrame(t *testing.T) {
	fr, err := New(FrameTIT2, WithEncoding(types.EncodingUTF16))
	require.NoError(t, err)
	_, err = fr.Field(types.FieldText).AddText("héllo")
	require.NoError(t, err)
	_, err = fr.Field(types.FieldText).AddText("wörld")
	require.NoError(t, err)

	wire := renderFrame(t, fr, types.V2_4)
	assert.Equal(t, byte(1), wire[0])

	got, err := New(FrameTIT2)
	require.NoError(t, err)
	require.NoError(t, got.Parse(wire, types.V2_4))

	assert.Equal(t, types.EncodingUTF16, got.Encoding())
	assert.Equal(t, 2, got.Field(types.FieldText).NumTextItems())
	s, err := got.Field(types.FieldText).TextItem(1)
	require.NoError(t, err)
	assert.Equal(t, "wörld", s)
}

func TestRoundTrip_CommentFrame(t *testing.T) {
	fr, err := New(FrameCOMM)
	require.NoError(t, err)
	_, err = fr.Field(types.FieldLanguage).SetText("eng")
	require.NoError(t, err)
	_, err = fr.Field(types.FieldDescription).SetText("note")
	require.NoError(t, err)
	_, err = fr.Field(types.FieldText).SetText("body text")
	require.NoError(t, err)

	wire := renderFrame(t, fr, types.V2_3)
	assert.Equal(t, len(wire), fr.Size(types.V2_3))

	got, err := New(FrameCOMM)
	require.NoError(t, err)
	require.NoError(t, got.Parse(wire, types.V2_3))

	lang, _ := got.Field(types.FieldLanguage).Text()
	assert.Equal(t, "eng", lang)
	desc, _ := got.Field(types.FieldDescription).Text()
	assert.Equal(t, "note", desc)
	body, _ := got.Field(types.FieldText).Text()
	assert.Equal(t, "body text", body)
}

// the image format field of v2.2 and the MIME type of v2.3+ never coexist
func TestPictureFrame_VersionScoping(t *testing.T) {
	fr, err := New(FrameAPIC)
	require.NoError(t, err)
	_, err = fr.Field(types.FieldImageFormat).SetText("PNG")
	require.NoError(t, err)
	_, err = fr.Field(types.FieldMimeType).SetText("image/png")
	require.NoError(t, err)
	require.NoError(t, fr.Field(types.FieldPictureType).SetInteger(3))
	_, err = fr.Field(types.FieldDescription).SetText("cover")
	require.NoError(t, err)
	require.NoError(t, fr.Field(types.FieldData).SetBinary([]byte{0x89, 0x50}))

	v22 := renderFrame(t, fr, types.V2_2)
	v23 := renderFrame(t, fr, types.V2_3)

	// enc(1) + format(3) + type(1) + desc(5)+NUL + data(2)
	assert.Len(t, v22, 1+3+1+6+2)
	// enc(1) + mime(9)+NUL + type(1) + desc(5)+NUL + data(2)
	assert.Len(t, v23, 1+10+1+6+2)
	assert.Equal(t, len(v22), fr.Size(types.V2_2))
	assert.Equal(t, len(v23), fr.Size(types.V2_3))

	got, err := New(FrameAPIC)
	require.NoError(t, err)
	require.NoError(t, got.Parse(v23, types.V2_3))
	mime, _ := got.Field(types.FieldMimeType).Text()
	assert.Equal(t, "image/png", mime)
	data, _ := got.Field(types.FieldData).Binary()
	assert.Equal(t, []byte{0x89, 0x50}, data)

	got22, err := New(FrameAPIC)
	require.NoError(t, err)
	require.NoError(t, got22.Parse(v22, types.V2_2))
	format, _ := got22.Field(types.FieldImageFormat).Text()
	assert.Equal(t, "PNG", format)
}

// byte 2 (BOM-less big-endian) normalizes onto the UTF-16 encoding
func TestParse_EncodingByteNormalization(t *testing.T) {
	payload := []byte{2, 0x00, 'h', 0x00, 'i'}

	fr, err := New(FrameTIT2)
	require.NoError(t, err)
	require.NoError(t, fr.Parse(payload, types.V2_4))

	assert.Equal(t, types.EncodingUTF16, fr.Encoding())
	s, _ := fr.Field(types.FieldText).Text()
	assert.Equal(t, "hi", s)

	v, _ := fr.Field(types.FieldTextEncoding).Integer()
	assert.Equal(t, uint32(types.EncodingUTF16), v)
}

func TestParse_UnsupportedEncodingByte(t *testing.T) {
	fr, err := New(FrameTIT2)
	require.NoError(t, err)

	var pe *types.FieldParseError
	assert.ErrorAs(t, fr.Parse([]byte{3, 'x'}, types.V2_4), &pe)
}

func TestParse_InvalidVersion(t *testing.T) {
	fr, err := New(FrameTIT2)
	require.NoError(t, err)

	assert.Error(t, fr.Parse([]byte{0}, types.Version(0)))
	assert.Error(t, fr.Render(binary.NewWriter(&bytes.Buffer{}), types.Version(99)))
}

func TestParse_TruncatedPayload(t *testing.T) {
	fr, err := New(FramePCNT)
	require.NoError(t, err)

	var te *types.TruncatedError
	assert.ErrorAs(t, fr.Parse([]byte{0x00, 0x01}, types.V2_3), &te)
}

func TestParse_TrailingBytesTolerated(t *testing.T) {
	fr, err := New(FramePCNT)
	require.NoError(t, err)
	require.NoError(t, fr.Parse([]byte{0x00, 0x00, 0x00, 0x07, 0x00, 0x00}, types.V2_3))

	v, errInt := fr.Field(types.FieldCounter).Integer()
	require.NoError(t, errInt)
	assert.Equal(t, uint32(7), v)
}

func TestHasChanged(t *testing.T) {
	fr, err := New(FrameTALB)
	require.NoError(t, err)
	assert.False(t, fr.HasChanged())

	_, err = fr.Field(types.FieldText).SetText("Album")
	require.NoError(t, err)
	assert.True(t, fr.HasChanged())
}

// rendering is stable across a parse/render cycle
func TestRoundTrip_Stable(t *testing.T) {
	fr, err := New(FrameWXXX, WithEncoding(types.EncodingUTF16))
	require.NoError(t, err)
	_, err = fr.Field(types.FieldDescription).SetText("homepage")
	require.NoError(t, err)
	_, err = fr.Field(types.FieldURL).SetText("http://example.com")
	require.NoError(t, err)

	first := renderFrame(t, fr, types.V2_3)

	got, err := New(FrameWXXX)
	require.NoError(t, err)
	require.NoError(t, got.Parse(first, types.V2_3))

	assert.Equal(t, first, renderFrame(t, got, types.V2_3))
}
