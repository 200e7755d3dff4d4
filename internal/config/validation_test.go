package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Tools(t *testing.T) {
	t.Run("Non Octal Dir Mode Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.DefaultDirMode = "0999"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "default_dir_mode")
	})

	t.Run("Zero Cat Buffer Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.CatBufferSize = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cat_buffer_size")
	})

	t.Run("Default Depth Above Max Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.DefaultFindMaxDepth = 10
		cfg.Tools.MaxFindMaxDepth = 5
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "default_find_max_depth must be <=")
	})

	t.Run("Suffix Without Dot Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.WindowsExeSuffixes = []string{"exe"}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "windows_exe_suffixes")
	})
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "INFO"
	assert.NoError(t, cfg.Validate())

	cfg.Log.Level = "verbose"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestDirMode(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint32(0o777), cfg.DirMode())

	cfg.Tools.DefaultDirMode = "0750"
	assert.Equal(t, uint32(0o750), cfg.DirMode())
}

func TestLocale(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, language.Und, cfg.Locale())

	cfg.Tools.SortLocale = "de"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, language.German, cfg.Locale())

	cfg.Tools.SortLocale = "not a tag"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sort_locale")
	assert.Equal(t, language.Und, cfg.Locale())
}
