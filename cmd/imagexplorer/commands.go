package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muurk/imagexplorer/internal/config"
	"github.com/muurk/imagexplorer/internal/explorer"
	"github.com/muurk/imagexplorer/internal/navigator"
	"github.com/muurk/imagexplorer/internal/ui"
)

var (
	advanceCount int
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runExplorer(cmd *cobra.Command, args []string) error {
	c, bundle, _, err := loadCatalog()
	if err != nil {
		return reportLoadError(cmd, err)
	}

	nav := navigator.New(c)

	return explorer.Run(nav, bundle, explorer.Options{
		PictureWidth: settings.PictureWidth,
		ShowPosition: settings.ShowPosition,
	})
}

// listCmd prints the catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pictures in the catalog",
	Example: `  # Built-in pictures
  imagexplorer list

  # Pictures from a manifest
  imagexplorer list --catalog ./pictures/catalog.yaml`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	c, bundle, source, err := loadCatalog()
	if err != nil {
		return reportLoadError(cmd, err)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Catalog", "imagexplorer list",
		ui.Param{Key: "Source", Value: source},
		ui.Param{Key: "Pictures", Value: strconv.Itoa(c.Len())},
	)
	p.PrintCatalog(c.All(), bundle, 0)

	return nil
}

// showCmd prints one picture without entering the explorer
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the picture reached after pressing Next a number of times",
	Long: `Print the picture the explorer would show after pressing Next the
given number of times from the start. Positions wrap around, so with five
pictures --advance 5 shows the first picture again.`,
	Example: `  # First picture
  imagexplorer show

  # Third picture
  imagexplorer show --advance 2`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&advanceCount, "advance", 0, "Number of Next presses to apply")
}

func runShow(cmd *cobra.Command, args []string) error {
	if advanceCount < 0 {
		return fmt.Errorf("--advance must not be negative, got %d", advanceCount)
	}

	c, bundle, _, err := loadCatalog()
	if err != nil {
		return reportLoadError(cmd, err)
	}

	nav := navigator.New(c)
	for i := 0; i < advanceCount; i++ {
		if _, err := nav.Advance(); err != nil {
			return err
		}
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	cols := settings.PictureWidth
	if cols > p.Width()-4 {
		cols = p.Width() - 4
	}
	frame := ui.Compose(nav.State(), bundle, cols, cols/2)
	p.PrintFrame(frame, settings.ShowPosition)

	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	// Overrides the root hook: these commands must work on a settings file
	// that does not validate, so nothing is read here.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
		}

		if err := config.Default().Save(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func settingsPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.GetConfigPath()
}
