// Imagexplorer is a terminal picture explorer.
//
// It shows one picture with its caption and a Next button that cycles
// through a fixed catalog, wrapping from the last picture back to the
// first. The catalog is either the built-in set or a YAML manifest.
//
// Usage:
//
//	imagexplorer [command] [flags]
//
// Running without arguments launches the full-screen explorer.
// See 'imagexplorer --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/imagexplorer/internal/logging"
	"github.com/muurk/imagexplorer/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "imagexplorer",
	Short: "Terminal picture explorer",
	Long: `Browse a fixed catalog of pictures in the terminal.

One picture is shown at a time with its caption. Press Next (enter, space,
n or →) to move to the following picture; after the last one the explorer
wraps around to the first.

If no command is specified, the full-screen explorer launches.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runExplorer,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "imagexplorer %s\n", version.Full())
	},
}
