package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes. Per-file load warnings and viewer launch failures never change
// the exit code.
const (
	ExitSuccess     = 0
	ExitUsageError  = 2
	ExitLoadError   = 3
	ExitRenderError = 4
)

var rootCmd = &cobra.Command{
	Use:   "ewgpal",
	Short: "Biome palette image generator",
	Long:  "Ewgpal reads the biome definitions of a world directory and renders one composite image enumerating every configured biome color, grouped by biome type.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print ewgpal version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "ewgpal version %s\n", version)
	},
}
