package field

import (
	"fmt"
	"os"

	"github.com/simonhull/id3tag/internal/types"
)

// FromFile replaces the binary buffer with the contents of the named file.
// The field is left unchanged if the file cannot be read.
func (f *Field) FromFile(path string) error {
	if err := f.requireKind("FromFile", types.KindBinary); err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	f.buf = b
	f.dirty = true
	return nil
}

// ToFile writes the binary buffer to the named file. It is a read-only
// operation on the field: storage and the dirty flag are untouched.
func (f *Field) ToFile(path string) error {
	if err := f.requireKind("ToFile", types.KindBinary); err != nil {
		return err
	}
	if err := os.WriteFile(path, f.buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
