// Package types defines the shared vocabulary of the tag field core:
// field kinds, text encodings, format versions, and the error types
// returned by field and registry operations.
package types

// FieldKind identifies the data shape a field holds.
//
// A field's kind is fixed at construction and never changes. Exactly one
// storage slot (integer, text item list, or binary buffer) is valid per kind.
type FieldKind int

const (
	// KindNone represents an uninitialized field.
	KindNone FieldKind = iota
	// KindInteger holds a fixed-width unsigned integer.
	KindInteger
	// KindASCIIText holds text restricted to ISO-8859-1 on the wire.
	KindASCIIText
	// KindUnicodeText holds text rendered in the field's current encoding.
	KindUnicodeText
	// KindBinary holds an opaque byte buffer.
	KindBinary
)

// IsText reports whether the kind is one of the two text kinds.
func (k FieldKind) IsText() bool {
	return k == KindASCIIText || k == KindUnicodeText
}

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindASCIIText:
		return "ASCIIText"
	case KindUnicodeText:
		return "UnicodeText"
	case KindBinary:
		return "Binary"
	default:
		return "None"
	}
}

// TextEncoding selects the wire representation of text fields.
//
// Numeric values match the ID3v2 text encoding byte, so an encoding can be
// written to and read from a frame without translation. Text is always
// stored internally as UTF-8; the encoding only affects Set/Get/Parse/Render
// at the field boundary.
type TextEncoding int

const (
	// EncodingLatin1 is single-byte ISO-8859-1 text.
	EncodingLatin1 TextEncoding = 0
	// EncodingUTF16 is UTF-16 text with a byte order mark.
	EncodingUTF16 TextEncoding = 1
)

// Valid reports whether the encoding is a member of the closed set.
func (e TextEncoding) Valid() bool {
	return e == EncodingLatin1 || e == EncodingUTF16
}

// TerminatorLen returns the width in bytes of the NUL terminator that
// separates and ends strings in this encoding.
func (e TextEncoding) TerminatorLen() int {
	if e == EncodingUTF16 {
		return 2
	}
	return 1
}

// String returns the encoding name.
func (e TextEncoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	default:
		return "Unknown"
	}
}

// FieldID names a logical field within a frame, orthogonal to its kind.
// The same FieldID (e.g. FieldDescription) may appear in several frame
// descriptors with different flags or sizes.
type FieldID int

const (
	// FieldNone represents no field.
	FieldNone FieldID = iota
	// FieldTextEncoding is the leading encoding byte of encodable frames.
	FieldTextEncoding
	// FieldText is the main text payload.
	FieldText
	// FieldURL is an ISO-8859-1 URL.
	FieldURL
	// FieldData is an opaque binary payload.
	FieldData
	// FieldDescription is a short content description.
	FieldDescription
	// FieldOwner identifies the owner or originator of a frame.
	FieldOwner
	// FieldEmail is an email address (popularimeter).
	FieldEmail
	// FieldRating is a one-byte rating (popularimeter).
	FieldRating
	// FieldFilename is an original filename (encapsulated objects).
	FieldFilename
	// FieldLanguage is a three-character ISO-639-2 language code.
	FieldLanguage
	// FieldPictureType is the attached picture type byte.
	FieldPictureType
	// FieldImageFormat is the three-character v2.2 image format.
	FieldImageFormat
	// FieldMimeType is a MIME type string.
	FieldMimeType
	// FieldCounter is a play or popularity counter.
	FieldCounter
	// FieldIdentifier is a frame-scoped identifier (linked info, groups).
	FieldIdentifier
	// FieldTimestampFormat is the synchronised lyrics timestamp format byte.
	FieldTimestampFormat
	// FieldContentType is the synchronised lyrics content type byte.
	FieldContentType
)

// String returns the field name.
func (id FieldID) String() string {
	names := [...]string{
		FieldNone:            "None",
		FieldTextEncoding:    "TextEncoding",
		FieldText:            "Text",
		FieldURL:             "URL",
		FieldData:            "Data",
		FieldDescription:     "Description",
		FieldOwner:           "Owner",
		FieldEmail:           "Email",
		FieldRating:          "Rating",
		FieldFilename:        "Filename",
		FieldLanguage:        "Language",
		FieldPictureType:     "PictureType",
		FieldImageFormat:     "ImageFormat",
		FieldMimeType:        "MimeType",
		FieldCounter:         "Counter",
		FieldIdentifier:      "Identifier",
		FieldTimestampFormat: "TimestampFormat",
		FieldContentType:     "ContentType",
	}
	if id < 0 || int(id) >= len(names) {
		return "None"
	}
	return names[id]
}

// FieldFlags modify how a field is parsed and rendered.
type FieldFlags uint8

const (
	// FlagNone marks a field with default behavior for its kind.
	FlagNone FieldFlags = 0
	// FlagCString marks a NUL-terminated string field.
	FlagCString FieldFlags = 1 << iota
	// FlagList marks a field that may hold multiple NUL-separated items.
	FlagList
	// FlagEncodable marks a text field whose wire form follows the frame's
	// text encoding byte. Fields without this flag stay ISO-8859-1.
	FlagEncodable

	// FlagTextList combines the flags of a standard multi-item text payload.
	FlagTextList = FlagCString | FlagList | FlagEncodable
)

// Has reports whether all bits of mask are set.
func (f FieldFlags) Has(mask FieldFlags) bool {
	return f&mask == mask
}
