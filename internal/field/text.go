package field

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"github.com/simonhull/id3tag/internal/types"
)

// substituteByte replaces runes that have no ISO-8859-1 mapping when text is
// transcoded to the single-byte form. The substitution is deterministic:
// the same input always yields the same bytes.
const substituteByte = '?'

// encodeLatin1 transcodes canonical text to ISO-8859-1 bytes, replacing
// unmappable runes with substituteByte.
func encodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = substituteByte
		}
		out = append(out, b)
	}
	return out
}

// decodeLatin1 transcodes ISO-8859-1 bytes to canonical text.
func decodeLatin1(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(b))
	}
	return sb.String()
}

// encodeUTF16 transcodes canonical text to UTF-16 with a little-endian
// byte order mark.
func encodeUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, 2+len(units)*2)
	out = append(out, 0xFF, 0xFE)
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

// decodeUTF16 decodes UTF-16 text, honoring a byte order mark when present
// and defaulting to big-endian without one.
func decodeUTF16(data []byte) string {
	if len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			return decodeUTF16LE(data[2:])
		}
		if data[0] == 0xFE && data[1] == 0xFF {
			return decodeUTF16BE(data[2:])
		}
	}
	return decodeUTF16BE(data)
}

// decodeUTF16LE decodes UTF-16 little-endian code units. A trailing odd
// byte is dropped.
func decodeUTF16LE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}
	return string(utf16.Decode(u16))
}

// decodeUTF16BE decodes UTF-16 big-endian code units. A trailing odd byte
// is dropped.
func decodeUTF16BE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
	}
	return string(utf16.Decode(u16))
}

// encodeText transcodes one text item to its wire form in the given
// encoding. The byte order mark is included for UTF-16.
func encodeText(s string, enc types.TextEncoding) []byte {
	if enc == types.EncodingUTF16 {
		return encodeUTF16(s)
	}
	return encodeLatin1(s)
}

// decodeText transcodes one wire-form text item to canonical text.
func decodeText(data []byte, enc types.TextEncoding) string {
	if enc == types.EncodingUTF16 {
		return decodeUTF16(data)
	}
	return decodeLatin1(data)
}

// terminator returns the NUL terminator bytes for the encoding.
func terminator(enc types.TextEncoding) []byte {
	if enc == types.EncodingUTF16 {
		return []byte{0, 0}
	}
	return []byte{0}
}

// findTerminator returns the index of the first NUL terminator in data for
// the given encoding, or -1 if none is present. UTF-16 terminators are
// scanned on code unit boundaries.
func findTerminator(data []byte, enc types.TextEncoding) int {
	if enc == types.EncodingUTF16 {
		for i := 0; i+1 < len(data); i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1
	}
	for i, b := range data {
		if b == 0 {
			return i
		}
	}
	return -1
}
