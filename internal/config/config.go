// Package config loads tool settings from defaults, an optional
// .tpom/config.yaml, TPOM_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names (TPOM_LOG_LEVEL, ...).
const EnvPrefix = "TPOM"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds tool settings.
type Config struct {
	// File is the build description, relative to Dir.
	File string `mapstructure:"file"`
	// Dir is the project directory.
	Dir string `mapstructure:"dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is text or json.
	LogFormat string `mapstructure:"log_format"`
	// Reproducible pins jar entry timestamps.
	Reproducible bool `mapstructure:"reproducible"`
}

// Defaults returns the default settings.
func Defaults() Config {
	return Config{
		File:         "tpom.yaml",
		Dir:          ".",
		LogLevel:     "info",
		LogFormat:    FormatText,
		Reproducible: true,
	}
}

// Load reads settings into v and returns them. An explicit cfgFile must
// exist; otherwise <dir>/.tpom/config.yaml is used when present.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	defaults := Defaults()
	v.SetDefault("file", defaults.File)
	v.SetDefault("dir", defaults.Dir)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("reproducible", defaults.Reproducible)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Join(v.GetString("dir"), ".tpom"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings.
func (c Config) Validate() error {
	if _, ok := levels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel)
	}

	if !slices.Contains([]string{FormatText, FormatJSON}, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("invalid log_format %q (want text or json)", c.LogFormat)
	}

	if c.File == "" {
		return errors.New("file is required")
	}

	return nil
}

// Level returns the slog level of LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	if l, ok := levels[strings.ToLower(c.LogLevel)]; ok {
		return l
	}

	return slog.LevelInfo
}

// BuildFilePath returns File resolved against Dir.
func (c Config) BuildFilePath() string {
	if filepath.IsAbs(c.File) {
		return c.File
	}

	return filepath.Join(c.Dir, c.File)
}

// NewLogger creates the logger described by the settings.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}

	if strings.EqualFold(c.LogFormat, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
