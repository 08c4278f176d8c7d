package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umn-libraries/drumcurate/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available document formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := format.List()
		if len(names) == 0 {
			fmt.Println("No formats registered")
			return nil
		}

		fmt.Println("Available formats:")
		for _, name := range names {
			f, _ := format.Get(name)
			fmt.Printf("  %-12s .%-4s %s\n", name, f.Extension(), f.Description())
		}
		return nil
	},
}
