// List command: enumerate every frame known to the registry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tag"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all frames known to the registry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for id := id3tag.FrameUnknown + 1; id <= id3tag.MaxFrameID(); id++ {
			short := id3tag.ShortName(id)
			if short == "" {
				short = "-"
			}
			fmt.Printf("%-4s  %-4s  %s\n", id3tag.LongName(id), short, id3tag.Description(id))
		}
	},
}
