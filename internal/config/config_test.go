package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/contentdb/internal/core/observability/log"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvDir, EnvFormat, EnvLocale, EnvStrings} {
		if old, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, old) })
		}
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := "log_level: debug\ncontent_dir: /srv/game\nformat: yaml\nlocale: de-DE\nstrings_file: strings.json\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:    "debug",
		ContentDir:  "/srv/game",
		Format:      "yaml",
		Locale:      "de-DE",
		StringsFile: "strings.json",
	}, cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content_dir: /from/file\n"), 0o644))
	t.Setenv(EnvDir, "/from/env")
	t.Setenv(EnvFormat, "yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.ContentDir)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFormat, "xml")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg := Default()
	cfg.Locale = "not a locale!"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.ContentDir = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestMalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogLevelsMatchLogger(t *testing.T) {
	for _, level := range log.Levels {
		cfg := Default()
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), level)
	}

	for _, level := range []string{"", "fatal", "warning", "INFO"} {
		cfg := Default()
		cfg.LogLevel = level
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, level)

		_, err := log.ParseLevel(level)
		assert.Error(t, err, level)
	}
}
