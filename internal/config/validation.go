package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if _, err := strconv.ParseUint(c.Tools.DefaultDirMode, 8, 32); err != nil {
		errs = append(errs, "tools.default_dir_mode must be an octal mode such as 0755")
	}
	if c.Tools.CatBufferSize < 1 {
		errs = append(errs, "tools.cat_buffer_size must be >= 1")
	}
	if c.Tools.DefaultFindMaxDepth < 0 {
		errs = append(errs, "tools.default_find_max_depth must be >= 0")
	}
	if c.Tools.MaxFindMaxDepth < 1 {
		errs = append(errs, "tools.max_find_max_depth must be >= 1")
	}
	if c.Tools.DefaultFindMaxDepth > c.Tools.MaxFindMaxDepth {
		errs = append(errs, "tools.default_find_max_depth must be <= tools.max_find_max_depth")
	}
	if c.Tools.SortLocale != "" {
		if _, err := language.Parse(c.Tools.SortLocale); err != nil {
			errs = append(errs, fmt.Sprintf("tools.sort_locale %q is not a valid language tag", c.Tools.SortLocale))
		}
	}
	for _, suffix := range c.Tools.WindowsExeSuffixes {
		if !strings.HasPrefix(suffix, ".") {
			errs = append(errs, fmt.Sprintf("tools.windows_exe_suffixes entry %q must start with a dot", suffix))
		}
	}

	level := strings.ToLower(c.Log.Level)
	valid := false
	for _, l := range validLogLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, fmt.Sprintf("log.level must be one of %v", validLogLevels))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

// DirMode returns DefaultDirMode parsed as an octal permission value.
// Call Validate first; an unparsable value yields 0o777.
func (c *Config) DirMode() uint32 {
	mode, err := strconv.ParseUint(c.Tools.DefaultDirMode, 8, 32)
	if err != nil {
		return 0o777
	}
	return uint32(mode)
}

// Locale returns SortLocale as a language tag, or language.Und when it is
// empty or unparsable.
func (c *Config) Locale() language.Tag {
	if c.Tools.SortLocale == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Tools.SortLocale)
	if err != nil {
		return language.Und
	}
	return tag
}
