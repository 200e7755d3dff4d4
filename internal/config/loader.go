package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "sysutil"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
	// EnvConfigPath overrides the dotfile location when set.
	EnvConfigPath = "SYSUTIL_CONFIG"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
	Getenv(key string) string
}

// osReader implements FileSystem using the real OS
type osReader struct{}

func (osReader) UserHomeDir() (string, error)         { return os.UserHomeDir() }
func (osReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (osReader) Getenv(key string) string             { return os.Getenv(key) }

// Loader resolves and parses the configuration dotfile.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: osReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Path returns the dotfile location: $SYSUTIL_CONFIG if set, otherwise
// ~/.config/sysutil/config.json. An empty string means no home directory.
func (l *Loader) Path() string {
	if p := l.fs.Getenv(EnvConfigPath); p != "" {
		return p
	}
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)
}

// Load reads the dotfile returned by Path and unmarshals it over DefaultConfig.
// A missing dotfile yields the defaults.
func (l *Loader) Load() (*Config, error) {
	path := l.Path()
	if path == "" {
		return DefaultConfig(), nil
	}
	return l.LoadFrom(path, false)
}

// LoadFrom reads an explicit config file. When required is false a missing
// file yields the defaults instead of an error.
func (l *Loader) LoadFrom(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// Present keys overwrite defaults (even if zero), missing keys keep them.
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
