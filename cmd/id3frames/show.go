// Show command: print the field descriptors of one frame.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tag"
)

var showCmd = &cobra.Command{
	Use:   "show <frame>",
	Short: "Show the field descriptors of a frame (e.g. APIC)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := id3tag.FrameByLongName(args[0])
		if !ok {
			id, ok = id3tag.FrameByShortName(args[0])
		}
		if !ok {
			return fmt.Errorf("unknown frame %q", args[0])
		}

		fmt.Printf("%s (%s): %s\n", id3tag.LongName(id), orDash(id3tag.ShortName(id)), id3tag.Description(id))
		for i := 0; i < id3tag.NumFields(id); i++ {
			kind, err := id3tag.FieldType(id, i)
			if err != nil {
				return err
			}
			size, err := id3tag.FieldSize(id, i)
			if err != nil {
				return err
			}
			flags, err := id3tag.FrameFieldFlags(id, i)
			if err != nil {
				return err
			}
			fmt.Printf("  [%d] kind=%-11s size=%-2d flags=%s\n", i, kind, size, flagNames(flags))
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func flagNames(f id3tag.FieldFlags) string {
	var names []string
	if f.Has(id3tag.FlagCString) {
		names = append(names, "cstring")
	}
	if f.Has(id3tag.FlagList) {
		names = append(names, "list")
	}
	if f.Has(id3tag.FlagEncodable) {
		names = append(names, "encodable")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
