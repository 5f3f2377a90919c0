package id3tag

import (
	"io"

	"github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/field"
	"github.com/simonhull/id3tag/internal/types"
)

// Field is an alias to field.Field, the polymorphic tag field.
type Field = field.Field

// FieldConfig is an alias to field.Config, the descriptor a field is
// constructed from.
type FieldConfig = field.Config

// NewField creates a standalone field from a descriptor. Fields belonging
// to a frame are built by NewFrame instead.
func NewField(cfg FieldConfig) *Field {
	return field.New(cfg)
}

// FieldKind is an alias to types.FieldKind.
type FieldKind = types.FieldKind

// Re-export all field kinds.
const (
	KindNone        = types.KindNone
	KindInteger     = types.KindInteger
	KindASCIIText   = types.KindASCIIText
	KindUnicodeText = types.KindUnicodeText
	KindBinary      = types.KindBinary
)

// TextEncoding is an alias to types.TextEncoding.
type TextEncoding = types.TextEncoding

// Re-export the supported text encodings.
const (
	EncodingLatin1 = types.EncodingLatin1
	EncodingUTF16  = types.EncodingUTF16
)

// FieldID is an alias to types.FieldID.
type FieldID = types.FieldID

// Re-export all field identifiers.
const (
	FieldNone            = types.FieldNone
	FieldTextEncoding    = types.FieldTextEncoding
	FieldText            = types.FieldText
	FieldURL             = types.FieldURL
	FieldData            = types.FieldData
	FieldDescription     = types.FieldDescription
	FieldOwner           = types.FieldOwner
	FieldEmail           = types.FieldEmail
	FieldRating          = types.FieldRating
	FieldFilename        = types.FieldFilename
	FieldLanguage        = types.FieldLanguage
	FieldPictureType     = types.FieldPictureType
	FieldImageFormat     = types.FieldImageFormat
	FieldMimeType        = types.FieldMimeType
	FieldCounter         = types.FieldCounter
	FieldIdentifier      = types.FieldIdentifier
	FieldTimestampFormat = types.FieldTimestampFormat
	FieldContentType     = types.FieldContentType
)

// FieldFlags is an alias to types.FieldFlags.
type FieldFlags = types.FieldFlags

// Re-export the field flags.
const (
	FlagNone      = types.FlagNone
	FlagCString   = types.FlagCString
	FlagList      = types.FlagList
	FlagEncodable = types.FlagEncodable
	FlagTextList  = types.FlagTextList
)

// Version is an alias to types.Version.
type Version = types.Version

// Re-export the supported tag format versions.
const (
	V2_2 = types.V2_2
	V2_3 = types.V2_3
	V2_4 = types.V2_4

	VersionEarliest = types.VersionEarliest
	VersionLatest   = types.VersionLatest
)

// Reader is an alias to binary.Reader, the sequential byte source fields
// parse from.
type Reader = binary.Reader

// NewReader creates a Reader over a raw frame payload.
func NewReader(data []byte) *Reader {
	return binary.NewReader(data)
}

// Writer is an alias to binary.Writer, the byte sink fields render into.
type Writer = binary.Writer

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return binary.NewWriter(w)
}
