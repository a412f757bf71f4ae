package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/moviepeek/view"
)

// fieldsCmd represents the fields command
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the fields shown for a movie",
	// no config needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		layout := view.DefaultLayout()

		fmt.Println(strings.Repeat("━", 50))
		fmt.Printf("%-14s %-14s %-6s %s\n", "ID", "LABEL", "KIND", "SECTION")
		fmt.Println(strings.Repeat("━", 50))
		fmt.Printf("%-14s %-14s %-6s %s\n", layout.Image, "Poster", "image", "main")

		for _, el := range layout.Elements {
			section := "main"
			if el.Extended {
				section = "extended"
			}
			fmt.Printf("%-14s %-14s %-6s %s\n", el.ID, el.Label, el.Kind, section)
		}
		return nil
	},
}
