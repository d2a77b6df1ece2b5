package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ewgtools/ewgpal/internal/biome"
	"github.com/ewgtools/ewgpal/internal/log"
	"github.com/ewgtools/ewgpal/internal/palette"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured biomes and their colors",
	RunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if flagDebug {
			level = "debug"
		}
		log.Configure(log.Config{Level: level})

		entries, err := biome.LoadWorld(flagWorldDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitLoadError
			return nil
		}

		pal := palette.Build(entries)
		for _, g := range pal.Groups {
			fmt.Fprintf(os.Stdout, "%s (%d swatches):\n", g.Type, g.Swatches())
			for _, b := range g.Biomes {
				status := "enabled"
				if !b.Enabled {
					status = "disabled"
				}
				hexes := make([]string, len(b.Colors))
				for i, c := range b.Colors {
					hexes[i] = c.Hex()
				}
				fmt.Fprintf(os.Stdout, "  - %-30s %-8s %s\n", b.Name, status, strings.Join(hexes, " "))
			}
		}
		return nil
	},
}

func init() {
	addWorldDirFlags(listCmd)
}
