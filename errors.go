package id3tag

import (
	"github.com/simonhull/id3tag/internal/types"
)

// KindError is an alias to types.KindError.
// Re-exporting from internal/types to keep the public API in one place.
type KindError = types.KindError

// TruncatedError is an alias to types.TruncatedError.
// Re-exporting from internal/types to keep the public API in one place.
type TruncatedError = types.TruncatedError

// FieldParseError is an alias to types.FieldParseError.
// Re-exporting from internal/types to keep the public API in one place.
type FieldParseError = types.FieldParseError

// IndexError is an alias to types.IndexError.
// Re-exporting from internal/types to keep the public API in one place.
type IndexError = types.IndexError

// UnknownFrameError is an alias to types.UnknownFrameError.
// Re-exporting from internal/types to keep the public API in one place.
type UnknownFrameError = types.UnknownFrameError
