package types

// Version identifies a revision of the binary tag format. The set is
// ordered: a later version compares greater than an earlier one. The zero
// value is not a valid version.
type Version int

const (
	// V2_2 is ID3v2.2, with three-character frame identifiers.
	V2_2 Version = iota + 1
	// V2_3 is ID3v2.3, with four-character frame identifiers.
	V2_3
	// V2_4 is ID3v2.4.
	V2_4
)

// VersionEarliest and VersionLatest bound the supported version range.
const (
	VersionEarliest = V2_2
	VersionLatest   = V2_4
)

// Valid reports whether v is a supported version.
func (v Version) Valid() bool {
	return v >= VersionEarliest && v <= VersionLatest
}

// String returns the version in "2.N" form.
func (v Version) String() string {
	switch v {
	case V2_2:
		return "2.2"
	case V2_3:
		return "2.3"
	case V2_4:
		return "2.4"
	default:
		return "unknown"
	}
}
