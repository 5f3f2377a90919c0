// Decode command: parse a raw frame payload from a file and print its
// fields.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tag"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <frame> <file>",
	Short: "Decode a raw frame payload (header already stripped) from a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := tagVersion()
		if err != nil {
			return err
		}

		id, ok := id3tag.FrameByLongName(args[0])
		if !ok {
			id, ok = id3tag.FrameByShortName(args[0])
		}
		if !ok {
			return fmt.Errorf("unknown frame %q", args[0])
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		frame, err := id3tag.NewFrame(id)
		if err != nil {
			return err
		}
		if err := frame.Parse(data, version); err != nil {
			return err
		}

		fmt.Printf("%s (%d bytes, encoding %s)\n", frame.ID(), len(data), frame.Encoding())
		for _, f := range frame.Fields() {
			if !f.InScope(version) {
				continue
			}
			printField(f)
		}
		return nil
	},
}

func printField(f *id3tag.Field) {
	switch f.Kind() {
	case id3tag.KindInteger:
		v, _ := f.Integer()
		fmt.Printf("  %-15s %d\n", f.ID(), v)
	case id3tag.KindASCIIText, id3tag.KindUnicodeText:
		for i := 0; i < f.NumTextItems(); i++ {
			item, _ := f.TextItem(i)
			fmt.Printf("  %-15s %q\n", f.ID(), item)
		}
	case id3tag.KindBinary:
		fmt.Printf("  %-15s %d bytes\n", f.ID(), f.Size())
	}
}
