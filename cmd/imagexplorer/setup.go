package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/muurk/imagexplorer/internal/catalog"
	"github.com/muurk/imagexplorer/internal/config"
	"github.com/muurk/imagexplorer/internal/logging"
	"github.com/muurk/imagexplorer/internal/manifest"
	"github.com/muurk/imagexplorer/internal/resources"
	"github.com/muurk/imagexplorer/internal/ui"
)

// Global flags
var (
	cfgFile      string
	catalogPath  string
	pictureWidth int
	showPosition bool
	logLevel     string
	logFile      string
	logFormat    string
)

// settings is populated by setup before any command runs.
var settings *config.Settings

// builtinSource names the catalog when no manifest is configured.
const builtinSource = "built-in"

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Settings file (default is the platform config dir)")
	flags.StringVar(&catalogPath, "catalog", "", "Catalog manifest (YAML); empty uses the built-in pictures")
	flags.IntVar(&pictureWidth, "picture-width", 64, "Maximum picture width in columns")
	flags.BoolVar(&showPosition, "show-position", true, "Show the position indicator under the caption")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.StringVar(&logFormat, "log-format", config.LogFormatConsole, "Log encoding (console, json)")
}

// setup resolves settings from file, environment and flags, in increasing
// priority, and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}

	bindFlags(v, cmd.Flags())

	settings, err = config.FromViper(v)
	if err != nil {
		return err
	}

	logOpts := logging.Options{
		Level: settings.LogLevel,
		File:  settings.LogFile,
		JSON:  settings.LogFormat == config.LogFormatJSON,
	}
	if err := logging.Initialize(logOpts); err != nil {
		return err
	}

	logging.Debug("Settings resolved",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("catalog", settings.Catalog),
		zap.Int("picture_width", settings.PictureWidth),
	)

	return nil
}

// bindFlags lets explicitly set flags override config file and environment
// values. Flag names map to settings keys by replacing hyphens with
// underscores.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed {
			v.Set(key, f.Value.String())
		}
	})
}

// loadCatalog returns the configured catalog and the bundle resolving it.
func loadCatalog() (*catalog.Catalog, *resources.Bundle, string, error) {
	if settings == nil || settings.Catalog == "" {
		c := catalog.Default()
		logging.LogCatalogLoaded(builtinSource, c.Len())
		return c, resources.DefaultBundle(), builtinSource, nil
	}

	c, bundle, err := manifest.Load(settings.Catalog)
	if err != nil {
		return nil, nil, "", err
	}

	logging.LogCatalogLoaded(settings.Catalog, c.Len())
	return c, bundle, settings.Catalog, nil
}

// reportLoadError prints a styled box for manifest errors before returning
// the error to cobra.
func reportLoadError(cmd *cobra.Command, err error) error {
	if kind, ok := manifest.KindOf(err); ok {
		logging.Error("Catalog rejected", zap.Stringer("kind", kind), zap.Error(err))
		ui.NewPrinter(cmd.ErrOrStderr()).PrintError(loadErrorTitle(kind), err, kind.Troubleshooting())
	}
	return fmt.Errorf("failed to load catalog: %w", err)
}

func loadErrorTitle(kind manifest.ErrorKind) string {
	switch kind {
	case manifest.ErrKindRead:
		return "Catalog file could not be read"
	case manifest.ErrKindImage:
		return "Catalog picture could not be decoded"
	default:
		return "Catalog could not be loaded"
	}
}
