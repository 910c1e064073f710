package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "imagexplorer") {
		t.Errorf("GetConfigDir() = %v, should contain 'imagexplorer'", configDir)
	}

	if runtime.GOOS == "linux" && configDir != filepath.Join("/tmp/xdg", "imagexplorer") {
		t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME based path", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if *s != *want {
		t.Errorf("Load() = %+v, want %+v", s, want)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	s := Default()
	s.Catalog = "/srv/pictures/catalog.yaml"
	s.PictureWidth = 40
	s.ShowPosition = false
	s.LogLevel = "debug"

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after Save()")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# imagexplorer settings") {
		t.Error("saved file is missing header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *s {
		t.Errorf("Load() = %+v, want %+v", loaded, s)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Default().Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Setenv("IMAGEXPLORER_CATALOG", "/env/catalog.yaml")
	t.Setenv("IMAGEXPLORER_PICTURE_WIDTH", "24")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Catalog != "/env/catalog.yaml" {
		t.Errorf("Catalog = %q, want env override", s.Catalog)
	}
	if s.PictureWidth != 24 {
		t.Errorf("PictureWidth = %d, want 24", s.PictureWidth)
	}
}

func TestLogFormatDefaultsToConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.LogFormat != LogFormatConsole {
		t.Errorf("LogFormat = %q, want %q", s.LogFormat, LogFormatConsole)
	}

	t.Setenv("IMAGEXPLORER_LOG_FORMAT", LogFormatJSON)
	s, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.LogFormat != LogFormatJSON {
		t.Errorf("LogFormat = %q, want env override %q", s.LogFormat, LogFormatJSON)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"version":       "version: 7\n",
		"picture width": "version: 1\npicture_width: 2\n",
		"log level":     "version: 1\nlog_level: chatty\n",
		"log format":    "version: 1\nlog_format: xml\n",
		"malformed":     "version: [\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(body), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}
