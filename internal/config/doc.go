// Package config provides user settings management for imagexplorer.
//
// Settings live in a YAML file stored in the platform configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/imagexplorer/config.yaml or $HOME/.config/imagexplorer/config.yaml
//   - macOS: $HOME/.config/imagexplorer/config.yaml
//   - Windows: %LOCALAPPDATA%\imagexplorer\config.yaml
//
// The file is read through viper so that every key can be overridden by an
// IMAGEXPLORER_* environment variable (IMAGEXPLORER_CATALOG,
// IMAGEXPLORER_PICTURE_WIDTH, ...). Writes go through yaml.v3 with an
// atomic temp-file rename.
//
// The settings file never records which picture was last shown; every run
// starts at the first catalog item.
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if settings.Catalog != "" {
//	    // load a manifest instead of the built-in catalog
//	}
package config
