// Package frames holds the frame descriptor registry and the frame
// container that instantiates one field per descriptor.
//
// The registry is a fixed table covering the known ID3v2 frame types across
// versions 2.2 through 2.4. It is built once at init and never mutated, so
// concurrent readers need no locking.
package frames

import (
	"github.com/simonhull/id3tag/internal/field"
	"github.com/simonhull/id3tag/internal/types"
)

// FrameID identifies a frame type. The zero value is FrameUnknown; valid
// identifiers run from 1 to MaxFrameID().
type FrameID int

const (
	// FrameUnknown is not a valid frame.
	FrameUnknown FrameID = iota
	FrameAENC
	FrameAPIC
	FrameASPI
	FrameCOMM
	FrameCOMR
	FrameENCR
	FrameEQU2
	FrameEQUA
	FrameETCO
	FrameGEOB
	FrameGRID
	FrameIPLS
	FrameLINK
	FrameMCDI
	FrameMLLT
	FrameOWNE
	FramePCNT
	FramePOPM
	FramePOSS
	FramePRIV
	FrameRBUF
	FrameRVA2
	FrameRVAD
	FrameRVRB
	FrameSEEK
	FrameSIGN
	FrameSYLT
	FrameSYTC
	FrameTALB
	FrameTBPM
	FrameTCOM
	FrameTCON
	FrameTCOP
	FrameTDAT
	FrameTDEN
	FrameTDLY
	FrameTDOR
	FrameTDRC
	FrameTDRL
	FrameTDTG
	FrameTENC
	FrameTEXT
	FrameTFLT
	FrameTIME
	FrameTIPL
	FrameTIT1
	FrameTIT2
	FrameTIT3
	FrameTKEY
	FrameTLAN
	FrameTLEN
	FrameTMCL
	FrameTMED
	FrameTMOO
	FrameTOAL
	FrameTOFN
	FrameTOLY
	FrameTOPE
	FrameTORY
	FrameTOWN
	FrameTPE1
	FrameTPE2
	FrameTPE3
	FrameTPE4
	FrameTPOS
	FrameTPRO
	FrameTPUB
	FrameTRCK
	FrameTRDA
	FrameTRSN
	FrameTRSO
	FrameTSIZ
	FrameTSOA
	FrameTSOP
	FrameTSOT
	FrameTSRC
	FrameTSSE
	FrameTSST
	FrameTXXX
	FrameTYER
	FrameUFID
	FrameUSER
	FrameUSLT
	FrameWCOM
	FrameWCOP
	FrameWOAF
	FrameWOAR
	FrameWOAS
	FrameWORS
	FrameWPAY
	FrameWPUB
	FrameWXXX

	frameIDCount
)

// MaxFrameID returns the highest valid frame identifier. Callers can
// enumerate all known frames from 1 to MaxFrameID() inclusive.
func MaxFrameID() FrameID {
	return frameIDCount - 1
}

// String returns the frame's long (four-character) identifier.
func (id FrameID) String() string {
	if id <= FrameUnknown || id >= frameIDCount {
		return "????"
	}
	return frameTable[id].long
}

// frameDescriptor describes one frame type: its v2.2 and v2.3/v2.4
// identifiers, a human-readable description, and the ordered field list.
type frameDescriptor struct {
	short       string // three-character v2.2 identifier, empty if none
	long        string // four-character v2.3/v2.4 identifier
	description string
	fields      []field.Config
}

// fd builds a field descriptor valid across every supported version.
func fd(id types.FieldID, kind types.FieldKind, fixed int, flags types.FieldFlags) field.Config {
	return field.Config{
		ID: id, Kind: kind, Fixed: fixed, Flags: flags,
		Since: types.VersionEarliest, Until: types.VersionLatest,
	}
}

// fdv builds a field descriptor restricted to a version range.
func fdv(id types.FieldID, kind types.FieldKind, fixed int, flags types.FieldFlags, since, until types.Version) field.Config {
	cfg := fd(id, kind, fixed, flags)
	cfg.Since, cfg.Until = since, until
	return cfg
}

// scoped copies a field set with every field's range overridden.
func scoped(fields []field.Config, since, until types.Version) []field.Config {
	out := make([]field.Config, len(fields))
	for i, f := range fields {
		f.Since, f.Until = since, until
		out[i] = f
	}
	return out
}

// Shared field sets, one per frame family.
var (
	// Standard text frames: encoding byte plus a multi-item text payload.
	textFields = []field.Config{
		fd(types.FieldTextEncoding, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldText, types.KindUnicodeText, 0, types.FlagTextList),
	}

	// User-defined text (TXXX): description plus a single value.
	userTextFields = []field.Config{
		fd(types.FieldTextEncoding, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldDescription, types.KindUnicodeText, 0, types.FlagCString|types.FlagEncodable),
		fd(types.FieldText, types.KindUnicodeText, 0, types.FlagEncodable),
	}

	// Language-tagged text (COMM, USLT).
	langTextFields = []field.Config{
		fd(types.FieldTextEncoding, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldLanguage, types.KindASCIIText, 3, types.FlagNone),
		fd(types.FieldDescription, types.KindUnicodeText, 0, types.FlagCString|types.FlagEncodable),
		fd(types.FieldText, types.KindUnicodeText, 0, types.FlagEncodable),
	}

	// Terms of use (USER): language-tagged text without a description.
	termsFields = []field.Config{
		fd(types.FieldTextEncoding, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldLanguage, types.KindASCIIText, 3, types.FlagNone),
		fd(types.FieldText, types.KindUnicodeText, 0, types.FlagEncodable),
	}

	// URL frames (W***).
	urlFields = []field.Config{
		fd(types.FieldURL, types.KindASCIIText, 0, types.FlagNone),
	}

	// User-defined URL (WXXX).
	userURLFields = []field.Config{
		fd(types.FieldTextEncoding, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldDescription, types.KindUnicodeText, 0, types.FlagCString|types.FlagEncodable),
		fd(types.FieldURL, types.KindASCIIText, 0, types.FlagNone),
	}

	// Attached picture (APIC). The three-character image format of v2.2
	// became a MIME type in v2.3, so both fields exist with disjoint
	// version ranges.
	pictureFields = []field.Config{
		fd(types.FieldTextEncoding, types.KindInteger, 1, types.FlagNone),
		fdv(types.FieldImageFormat, types.KindASCIIText, 3, types.FlagNone, types.V2_2, types.V2_2),
		fdv(types.FieldMimeType, types.KindASCIIText, 0, types.FlagCString, types.V2_3, types.V2_4),
		fd(types.FieldPictureType, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldDescription, types.KindUnicodeText, 0, types.FlagCString|types.FlagEncodable),
		fd(types.FieldData, types.KindBinary, 0, types.FlagNone),
	}

	// General encapsulated object (GEOB).
	objectFields = []field.Config{
		fd(types.FieldTextEncoding, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldMimeType, types.KindASCIIText, 0, types.FlagCString),
		fd(types.FieldFilename, types.KindUnicodeText, 0, types.FlagCString|types.FlagEncodable),
		fd(types.FieldDescription, types.KindUnicodeText, 0, types.FlagCString|types.FlagEncodable),
		fd(types.FieldData, types.KindBinary, 0, types.FlagNone),
	}

	// Owner-scoped binary payload (UFID, AENC, PRIV).
	ownerDataFields = []field.Config{
		fd(types.FieldOwner, types.KindASCIIText, 0, types.FlagCString),
		fd(types.FieldData, types.KindBinary, 0, types.FlagNone),
	}

	// Play counter (PCNT).
	counterFields = []field.Config{
		fd(types.FieldCounter, types.KindInteger, 4, types.FlagNone),
	}

	// Popularimeter (POPM).
	popularimeterFields = []field.Config{
		fd(types.FieldEmail, types.KindASCIIText, 0, types.FlagCString),
		fd(types.FieldRating, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldCounter, types.KindInteger, 4, types.FlagNone),
	}

	// Method/group registration (ENCR, GRID), v2.3 onward.
	registrationFields = []field.Config{
		fdv(types.FieldOwner, types.KindASCIIText, 0, types.FlagCString, types.V2_3, types.V2_4),
		fdv(types.FieldIdentifier, types.KindInteger, 1, types.FlagNone, types.V2_3, types.V2_4),
		fdv(types.FieldData, types.KindBinary, 0, types.FlagNone, types.V2_3, types.V2_4),
	}

	// Linked information (LINK). The frame identifier field grew from
	// three to four characters in v2.3.
	linkedFields = []field.Config{
		fdv(types.FieldIdentifier, types.KindASCIIText, 3, types.FlagNone, types.V2_2, types.V2_2),
		fdv(types.FieldIdentifier, types.KindASCIIText, 4, types.FlagNone, types.V2_3, types.V2_4),
		fd(types.FieldURL, types.KindASCIIText, 0, types.FlagCString),
		fd(types.FieldText, types.KindASCIIText, 0, types.FlagNone),
	}

	// Synchronised lyrics (SYLT).
	syncLyricsFields = []field.Config{
		fd(types.FieldTextEncoding, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldLanguage, types.KindASCIIText, 3, types.FlagNone),
		fd(types.FieldTimestampFormat, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldContentType, types.KindInteger, 1, types.FlagNone),
		fd(types.FieldDescription, types.KindUnicodeText, 0, types.FlagCString|types.FlagEncodable),
		fd(types.FieldData, types.KindBinary, 0, types.FlagNone),
	}

	// Frames carried as an opaque payload.
	dataFields = []field.Config{
		fd(types.FieldData, types.KindBinary, 0, types.FlagNone),
	}
)

// frameTable maps every FrameID to its descriptor. Indexed by FrameID;
// the FrameUnknown slot stays zero.
var frameTable = [frameIDCount]frameDescriptor{
	FrameAENC: {"CRA", "AENC", "Audio encryption", ownerDataFields},
	FrameAPIC: {"PIC", "APIC", "Attached picture", pictureFields},
	FrameASPI: {"", "ASPI", "Audio seek point index", scoped(dataFields, types.V2_4, types.V2_4)},
	FrameCOMM: {"COM", "COMM", "Comments", langTextFields},
	FrameCOMR: {"", "COMR", "Commercial", scoped(dataFields, types.V2_3, types.V2_4)},
	FrameENCR: {"", "ENCR", "Encryption method registration", registrationFields},
	FrameEQU2: {"", "EQU2", "Equalisation (2)", scoped(dataFields, types.V2_4, types.V2_4)},
	FrameEQUA: {"EQU", "EQUA", "Equalization", scoped(dataFields, types.V2_2, types.V2_3)},
	FrameETCO: {"ETC", "ETCO", "Event timing codes", dataFields},
	FrameGEOB: {"GEO", "GEOB", "General encapsulated object", objectFields},
	FrameGRID: {"", "GRID", "Group identification registration", registrationFields},
	FrameIPLS: {"IPL", "IPLS", "Involved people list", scoped(textFields, types.V2_2, types.V2_3)},
	FrameLINK: {"LNK", "LINK", "Linked information", linkedFields},
	FrameMCDI: {"MCI", "MCDI", "Music CD identifier", dataFields},
	FrameMLLT: {"MLL", "MLLT", "MPEG location lookup table", dataFields},
	FrameOWNE: {"", "OWNE", "Ownership frame", scoped(dataFields, types.V2_3, types.V2_4)},
	FramePCNT: {"CNT", "PCNT", "Play counter", counterFields},
	FramePOPM: {"POP", "POPM", "Popularimeter", popularimeterFields},
	FramePOSS: {"", "POSS", "Position synchronisation frame", scoped(dataFields, types.V2_3, types.V2_4)},
	FramePRIV: {"", "PRIV", "Private frame", scoped(ownerDataFields, types.V2_3, types.V2_4)},
	FrameRBUF: {"BUF", "RBUF", "Recommended buffer size", dataFields},
	FrameRVA2: {"", "RVA2", "Relative volume adjustment (2)", scoped(dataFields, types.V2_4, types.V2_4)},
	FrameRVAD: {"RVA", "RVAD", "Relative volume adjustment", scoped(dataFields, types.V2_2, types.V2_3)},
	FrameRVRB: {"REV", "RVRB", "Reverb", dataFields},
	FrameSEEK: {"", "SEEK", "Seek frame", scoped(dataFields, types.V2_4, types.V2_4)},
	FrameSIGN: {"", "SIGN", "Signature frame", scoped(dataFields, types.V2_4, types.V2_4)},
	FrameSYLT: {"SLT", "SYLT", "Synchronised lyrics/text", syncLyricsFields},
	FrameSYTC: {"STC", "SYTC", "Synchronised tempo codes", dataFields},
	FrameTALB: {"TAL", "TALB", "Album/Movie/Show title", textFields},
	FrameTBPM: {"TBP", "TBPM", "BPM (beats per minute)", textFields},
	FrameTCOM: {"TCM", "TCOM", "Composer", textFields},
	FrameTCON: {"TCO", "TCON", "Content type", textFields},
	FrameTCOP: {"TCR", "TCOP", "Copyright message", textFields},
	FrameTDAT: {"TDA", "TDAT", "Date", scoped(textFields, types.V2_2, types.V2_3)},
	FrameTDEN: {"", "TDEN", "Encoding time", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTDLY: {"TDY", "TDLY", "Playlist delay", textFields},
	FrameTDOR: {"", "TDOR", "Original release time", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTDRC: {"", "TDRC", "Recording time", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTDRL: {"", "TDRL", "Release time", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTDTG: {"", "TDTG", "Tagging time", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTENC: {"TEN", "TENC", "Encoded by", textFields},
	FrameTEXT: {"TXT", "TEXT", "Lyricist/Text writer", textFields},
	FrameTFLT: {"TFT", "TFLT", "File type", textFields},
	FrameTIME: {"TIM", "TIME", "Time", scoped(textFields, types.V2_2, types.V2_3)},
	FrameTIPL: {"", "TIPL", "Involved people list", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTIT1: {"TT1", "TIT1", "Content group description", textFields},
	FrameTIT2: {"TT2", "TIT2", "Title/songname/content description", textFields},
	FrameTIT3: {"TT3", "TIT3", "Subtitle/Description refinement", textFields},
	FrameTKEY: {"TKE", "TKEY", "Initial key", textFields},
	FrameTLAN: {"TLA", "TLAN", "Language(s)", textFields},
	FrameTLEN: {"TLE", "TLEN", "Length", textFields},
	FrameTMCL: {"", "TMCL", "Musician credits list", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTMED: {"TMT", "TMED", "Media type", textFields},
	FrameTMOO: {"", "TMOO", "Mood", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTOAL: {"TOT", "TOAL", "Original album/movie/show title", textFields},
	FrameTOFN: {"TOF", "TOFN", "Original filename", textFields},
	FrameTOLY: {"TOL", "TOLY", "Original lyricist(s)/text writer(s)", textFields},
	FrameTOPE: {"TOA", "TOPE", "Original artist(s)/performer(s)", textFields},
	FrameTORY: {"TOR", "TORY", "Original release year", scoped(textFields, types.V2_2, types.V2_3)},
	FrameTOWN: {"", "TOWN", "File owner/licensee", scoped(textFields, types.V2_3, types.V2_4)},
	FrameTPE1: {"TP1", "TPE1", "Lead performer(s)/Soloist(s)", textFields},
	FrameTPE2: {"TP2", "TPE2", "Band/orchestra/accompaniment", textFields},
	FrameTPE3: {"TP3", "TPE3", "Conductor/performer refinement", textFields},
	FrameTPE4: {"TP4", "TPE4", "Interpreted, remixed, or otherwise modified by", textFields},
	FrameTPOS: {"TPA", "TPOS", "Part of a set", textFields},
	FrameTPRO: {"", "TPRO", "Produced notice", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTPUB: {"TPB", "TPUB", "Publisher", textFields},
	FrameTRCK: {"TRK", "TRCK", "Track number/Position in set", textFields},
	FrameTRDA: {"TRD", "TRDA", "Recording dates", scoped(textFields, types.V2_2, types.V2_3)},
	FrameTRSN: {"", "TRSN", "Internet radio station name", scoped(textFields, types.V2_3, types.V2_4)},
	FrameTRSO: {"", "TRSO", "Internet radio station owner", scoped(textFields, types.V2_3, types.V2_4)},
	FrameTSIZ: {"TSI", "TSIZ", "Size", scoped(textFields, types.V2_2, types.V2_3)},
	FrameTSOA: {"", "TSOA", "Album sort order", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTSOP: {"", "TSOP", "Performer sort order", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTSOT: {"", "TSOT", "Title sort order", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTSRC: {"TRC", "TSRC", "ISRC (international standard recording code)", textFields},
	FrameTSSE: {"TSS", "TSSE", "Software/Hardware and settings used for encoding", textFields},
	FrameTSST: {"", "TSST", "Set subtitle", scoped(textFields, types.V2_4, types.V2_4)},
	FrameTXXX: {"TXX", "TXXX", "User defined text information", userTextFields},
	FrameTYER: {"TYE", "TYER", "Year", scoped(textFields, types.V2_2, types.V2_3)},
	FrameUFID: {"UFI", "UFID", "Unique file identifier", ownerDataFields},
	FrameUSER: {"", "USER", "Terms of use", scoped(termsFields, types.V2_3, types.V2_4)},
	FrameUSLT: {"ULT", "USLT", "Unsynchronised lyrics/text transcription", langTextFields},
	FrameWCOM: {"WCM", "WCOM", "Commercial information", urlFields},
	FrameWCOP: {"WCP", "WCOP", "Copyright/Legal information", urlFields},
	FrameWOAF: {"WAF", "WOAF", "Official audio file webpage", urlFields},
	FrameWOAR: {"WAR", "WOAR", "Official artist/performer webpage", urlFields},
	FrameWOAS: {"WAS", "WOAS", "Official audio source webpage", urlFields},
	FrameWORS: {"", "WORS", "Official internet radio station homepage", scoped(urlFields, types.V2_3, types.V2_4)},
	FrameWPAY: {"", "WPAY", "Payment", scoped(urlFields, types.V2_3, types.V2_4)},
	FrameWPUB: {"WPB", "WPUB", "Publishers official webpage", urlFields},
	FrameWXXX: {"WXX", "WXXX", "User defined URL link", userURLFields},
}

// Reverse lookups, built once at init. The table is never mutated after
// this, which keeps all lookup functions safe for concurrent use.
var (
	byLongName  = make(map[string]FrameID, frameIDCount)
	byShortName = make(map[string]FrameID, frameIDCount)
)

func init() {
	for id := FrameUnknown + 1; id < frameIDCount; id++ {
		desc := frameTable[id]
		byLongName[desc.long] = id
		if desc.short != "" {
			byShortName[desc.short] = id
		}
	}
}

// valid reports whether id has a descriptor.
func valid(id FrameID) bool {
	return id > FrameUnknown && id < frameIDCount
}

// ShortName returns the three-character v2.2 identifier of a frame, or ""
// for frames introduced after v2.2 and for unknown identifiers.
func ShortName(id FrameID) string {
	if !valid(id) {
		return ""
	}
	return frameTable[id].short
}

// LongName returns the four-character v2.3/v2.4 identifier of a frame, or
// "" for unknown identifiers.
func LongName(id FrameID) string {
	if !valid(id) {
		return ""
	}
	return frameTable[id].long
}

// Description returns the human-readable frame description, or "" for
// unknown identifiers.
func Description(id FrameID) string {
	if !valid(id) {
		return ""
	}
	return frameTable[id].description
}

// NumFields returns the number of field descriptors in a frame, 0 for
// unknown identifiers.
func NumFields(id FrameID) int {
	if !valid(id) {
		return 0
	}
	return len(frameTable[id].fields)
}

// fieldAt returns the descriptor at index i with bounds checking.
func fieldAt(id FrameID, i int, what string) (field.Config, error) {
	if !valid(id) {
		return field.Config{}, &types.UnknownFrameError{Name: id.String()}
	}
	fields := frameTable[id].fields
	if i < 0 || i >= len(fields) {
		return field.Config{}, &types.IndexError{What: what, Index: i, Count: len(fields)}
	}
	return fields[i], nil
}

// FieldType returns the kind of field i of a frame.
func FieldType(id FrameID, i int) (types.FieldKind, error) {
	cfg, err := fieldAt(id, i, "field type")
	if err != nil {
		return types.KindNone, err
	}
	return cfg.Kind, nil
}

// FieldSize returns the fixed size of field i of a frame, 0 for variable
// fields.
func FieldSize(id FrameID, i int) (int, error) {
	cfg, err := fieldAt(id, i, "field size")
	if err != nil {
		return 0, err
	}
	return cfg.Fixed, nil
}

// FieldFlags returns the flags of field i of a frame.
func FieldFlags(id FrameID, i int) (types.FieldFlags, error) {
	cfg, err := fieldAt(id, i, "field flags")
	if err != nil {
		return types.FlagNone, err
	}
	return cfg.Flags, nil
}

// ByLongName resolves a four-character identifier to a FrameID.
func ByLongName(name string) (FrameID, bool) {
	id, ok := byLongName[name]
	return id, ok
}

// ByShortName resolves a three-character v2.2 identifier to a FrameID.
func ByShortName(name string) (FrameID, bool) {
	id, ok := byShortName[name]
	return id, ok
}
