package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Environment overrides, applied after the config file.
const (
	EnvLogLevel = "CONTENT_LOG_LEVEL"
	EnvDir      = "CONTENT_DIR"
	EnvFormat   = "CONTENT_FORMAT"
	EnvLocale   = "CONTENT_LOCALE"
	EnvStrings  = "CONTENT_STRINGS"
)

// Config holds the settings of the content tools.
type Config struct {
	LogLevel   string `yaml:"log_level" validate:"oneof=debug info warn error"`
	ContentDir string `yaml:"content_dir" validate:"required"`
	Format     string `yaml:"format" validate:"oneof=json yaml"`
	Locale     string `yaml:"locale" validate:"required,bcp47_language_tag"`
	// StringsFile optionally overrides editor strings.
	StringsFile string `yaml:"strings_file"`
}

func Default() *Config {
	return &Config{
		LogLevel:   "info",
		ContentDir: "resources",
		Format:     "json",
		Locale:     "en",
	}
}

// Load reads path (if not empty) over the defaults, then .env and the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	// .env is optional, real environment variables work too
	_ = godotenv.Load()

	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.ContentDir = getEnv(EnvDir, cfg.ContentDir)
	cfg.Format = getEnv(EnvFormat, cfg.Format)
	cfg.Locale = getEnv(EnvLocale, cfg.Locale)
	cfg.StringsFile = getEnv(EnvStrings, cfg.StringsFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
