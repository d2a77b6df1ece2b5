package cli

import (
	"fmt"
	"os"

	"github.com/ewgtools/ewgpal/internal/imgenc"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported output image formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, "Supported output extensions:")
		for _, ext := range imgenc.Formats() {
			fmt.Fprintf(os.Stdout, "  - %s\n", ext)
		}
	},
}
