// Root command for the id3frames inspection CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tag"
)

// Global flag values.
var (
	flagVersion string
)

var rootCmd = &cobra.Command{
	Use:     "id3frames",
	Short:   "id3frames inspects the ID3v2 frame registry and raw frame payloads",
	Version: id3tag.LibraryVersion,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVersion, "tag-version", "2.4", "tag format version (2.2, 2.3, or 2.4)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(decodeCmd)
}

// tagVersion resolves the --tag-version flag to a Version.
func tagVersion() (id3tag.Version, error) {
	switch flagVersion {
	case "2.2":
		return id3tag.V2_2, nil
	case "2.3":
		return id3tag.V2_3, nil
	case "2.4":
		return id3tag.V2_4, nil
	default:
		return id3tag.V2_4, fmt.Errorf("unknown tag version %q", flagVersion)
	}
}
