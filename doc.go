// Package id3tag provides the field and frame-registry core of an ID3v2
// tag codec.
//
// A Field is a single polymorphic value cell: it holds an unsigned
// integer, ISO-8859-1 text, Unicode text (possibly several items), or an
// opaque binary blob, and it knows how to parse itself from and render
// itself back to the versioned binary tag format. The frame registry maps
// every known frame identifier to the ordered list of field descriptors
// that compose it, plus its short/long names and description.
//
// # Quick Start
//
// Building a title frame and rendering it:
//
//	frame, err := id3tag.NewFrame(id3tag.FrameTIT2)
//	if err != nil {
//		log.Fatal(err)
//	}
//	frame.Field(id3tag.FieldText).SetText("Dancing Queen")
//
//	var buf bytes.Buffer
//	if err := frame.Render(id3tag.NewWriter(&buf), id3tag.V2_3); err != nil {
//		log.Fatal(err)
//	}
//
// Parsing raw frame payloads, many at once:
//
//	frames, err := id3tag.ParseAll(ctx, id3tag.V2_4, raw)
//
// # Text handling
//
// All text is stored internally as UTF-8, regardless of the encoding used
// to set or retrieve it. Encodings (ISO-8859-1 and UTF-16) apply only at
// the field boundary: Set, Get, Parse, and Render. Converting text to the
// single-byte form replaces unmappable runes with '?', deterministically.
//
// # Versions
//
// Frames and fields carry version applicability. The picture frame, for
// example, has a three-character image format field in v2.2 that became a
// MIME type in v2.3; a frame renders only the fields in scope for the
// requested version.
//
// # Error Handling
//
// Calling an accessor that does not match a field's kind returns a typed
// *KindError rather than a silent zero. Parse failures leave fields in
// their prior state. Bounded Copy accessors never write past the provided
// buffer.
//
// # Concurrency
//
// The registry is immutable after package initialization and safe for
// concurrent readers. Fields and frames are not safe for concurrent
// mutation; callers running them across goroutines must serialize access.
package id3tag
