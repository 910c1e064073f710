package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "imagexplorer"
	configFile = "config.yaml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "IMAGEXPLORER"

	// CurrentVersion is the settings file format version.
	CurrentVersion = 1
)

// Log encodings accepted by the log_format key.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// Settings represents the whole user settings file.
type Settings struct {
	Version      int    `yaml:"version" mapstructure:"version"`
	Catalog      string `yaml:"catalog,omitempty" mapstructure:"catalog"`     // Manifest path, empty for the built-in catalog
	PictureWidth int    `yaml:"picture_width" mapstructure:"picture_width"`   // Maximum picture width in terminal columns
	ShowPosition bool   `yaml:"show_position" mapstructure:"show_position"`   // Show "2 / 5" under the caption
	LogLevel     string `yaml:"log_level,omitempty" mapstructure:"log_level"` // debug, info, warn, error
	LogFile      string `yaml:"log_file,omitempty" mapstructure:"log_file"`   // Log destination, empty for stderr
	LogFormat    string `yaml:"log_format" mapstructure:"log_format"`         // console or json
}

// Default returns settings with default values.
func Default() *Settings {
	return &Settings{
		Version:      CurrentVersion,
		PictureWidth: 64,
		ShowPosition: true,
		LogFormat:    LogFormatConsole,
	}
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if s.PictureWidth < 8 {
		return fmt.Errorf("picture_width must be at least 8, got %d", s.PictureWidth)
	}
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", s.LogLevel)
	}
	switch s.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("log_format must be %s or %s, got %q", LogFormatConsole, LogFormatJSON, s.LogFormat)
	}
	return nil
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the settings file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// NewViper returns a viper instance preloaded with defaults and environment
// bindings. path may be empty to use GetConfigPath.
func NewViper(path string) (*viper.Viper, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("picture_width", d.PictureWidth)
	v.SetDefault("show_position", d.ShowPosition)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_format", d.LogFormat)

	return v, nil
}

// Load reads settings from path (or the default location when empty). A
// missing file yields defaults with environment overrides applied.
func Load(path string) (*Settings, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper reads the config file behind v, if present, and decodes it.
func FromViper(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Save writes settings to path (or the default location when empty).
// Performs an atomic write to prevent corruption on crash.
func (s *Settings) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# imagexplorer settings
#
# Every key can be overridden with an IMAGEXPLORER_<KEY> environment variable.
# Leave 'catalog' empty to browse the built-in pictures.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
