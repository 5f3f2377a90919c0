package types

import "fmt"

// KindError is returned when an accessor is called on a field of the wrong
// kind, e.g. reading the integer value of a binary field. It signals a
// caller/descriptor mismatch, never a data problem.
type KindError struct {
	Op   string
	Kind FieldKind
	Want FieldKind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: field kind is %s, want %s", e.Op, e.Kind, e.Want)
}

// TruncatedError is returned when a read would pass the end of the data
// belonging to a field.
type TruncatedError struct {
	What string
	Need int
	Have int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated data: need %d bytes for %s, have %d",
		e.Need, e.What, e.Have)
}

// FieldParseError is returned when a field's bytes are malformed for its
// kind. The field is left in its prior state.
type FieldParseError struct {
	Field  FieldID
	Reason string
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("parse field %s: %s", e.Field, e.Reason)
}

// IndexError is returned by indexed lookups with an out-of-range index.
type IndexError struct {
	What  string
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (count: %d)", e.What, e.Index, e.Count)
}

// UnknownFrameError is returned when a frame identifier has no registry
// descriptor.
type UnknownFrameError struct {
	Name string
}

func (e *UnknownFrameError) Error() string {
	return fmt.Sprintf("unknown frame %q", e.Name)
}
