package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Tools ToolsConfig `json:"tools"`
	Log   LogConfig   `json:"log"`
}

type ToolsConfig struct {
	// mkdir
	DefaultDirMode string `json:"default_dir_mode"` // Default: "0777" (octal, umask still applies)

	// cat
	CatBufferSize int `json:"cat_buffer_size"` // Default: 2048

	// find
	DefaultFindMaxDepth int `json:"default_find_max_depth"` // Default: 0 (unbounded)
	MaxFindMaxDepth     int `json:"max_find_max_depth"`     // Default: 4096

	// Sibling order in directory listings. BCP 47 tag, empty for the root locale.
	SortLocale string `json:"sort_locale"`

	// which
	WindowsExeSuffixes []string `json:"windows_exe_suffixes"` // Used when PATHEXT is unset
}

type LogConfig struct {
	Level string `json:"level"` // Default: "warn"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			DefaultDirMode:      "0777",
			CatBufferSize:       2048,
			DefaultFindMaxDepth: 0,
			MaxFindMaxDepth:     4096,
			WindowsExeSuffixes:  []string{".exe", ".bat", ".cmd", ".com"},
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
