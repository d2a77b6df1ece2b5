package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ewgtools/ewgpal/internal/biome"
	"github.com/ewgtools/ewgpal/internal/config"
	"github.com/ewgtools/ewgpal/internal/imgenc"
	"github.com/ewgtools/ewgpal/internal/log"
	"github.com/ewgtools/ewgpal/internal/palette"
	"github.com/ewgtools/ewgpal/internal/render"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	flagWorldDir string
	flagOutput   string
	flagView     bool
	flagTypes    string
	flagFontSize float64
	flagDebug    bool
)

// addWorldDirFlags binds the flags shared by every command that reads a
// world directory.
func addWorldDirFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagWorldDir, "world-dir", "w", "", "Path to the world directory containing settings/biomes")
	_ = cmd.MarkFlagRequired("world-dir")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", `Output image path; the extension selects the format (default "ewgpal.png")`)
	cmd.Flags().BoolVarP(&flagView, "view", "v", false, "Open the generated image in the system viewer")
	cmd.Flags().StringVar(&flagTypes, "types", "", "Render only these biome types (comma-separated)")
	cmd.Flags().Float64Var(&flagFontSize, "font-size", 0, "Label font size in points")
}

// buildOverrides converts set flags into config overrides.
func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagOutput != "" {
		m["output"] = flagOutput
	}
	if flagTypes != "" {
		m["types"] = flagTypes
	}
	if flagFontSize > 0 {
		m["fontSize"] = strconv.FormatFloat(flagFontSize, 'f', -1, 64)
	}
	if flagView {
		m["view"] = "true"
	}
	if flagDebug {
		m["logLevel"] = "debug"
	}
	return m
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the palette image for a world",
	Long:  "Render reads every biome definition under <world-dir>/settings/biomes and writes a single image of labeled color swatches grouped by biome type.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		log.Configure(log.Config{Level: cfg.LogLevel})
		runRender(flagWorldDir, cfg)
		return nil
	},
}

func runRender(worldDir string, cfg config.Config) {
	logger := log.WithComponent("cli")

	// Reject a bad output extension before any loading or rendering work.
	if _, err := imgenc.ForPath(cfg.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}

	entries, err := biome.LoadWorld(worldDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitLoadError
		return
	}

	pal := palette.Build(entries)
	if len(cfg.Types) > 0 {
		pal, err = pal.Filter(cfg.Types)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return
		}
	}

	img, err := render.Render(pal, render.Options{FontSize: cfg.FontSize})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering palette: %v\n", err)
		exitCode = ExitRenderError
		return
	}

	if err := imgenc.WriteFile(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRenderError
		return
	}

	logger.Info().
		Str("output", cfg.Output).
		Int("types", len(pal.Groups)).
		Int("biomes", pal.Biomes()).
		Int("swatches", pal.Swatches()).
		Msg("palette written")

	if cfg.View {
		if err := browser.OpenFile(cfg.Output); err != nil {
			logger.Warn().Err(err).Str("output", cfg.Output).Msg("could not launch image viewer")
		}
	}
}

func init() {
	addWorldDirFlags(renderCmd)
	addRenderFlags(renderCmd)
}
