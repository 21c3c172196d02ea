package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("dir", t.TempDir())

	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, "tpom.yaml", cfg.File)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.LogFormat)
	assert.True(t, cfg.Reproducible)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_ProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".tpom"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tpom", "config.yaml"),
		[]byte("log_level: debug\nfile: build/tpom.yaml\nreproducible: false\n"), 0o644))

	v := viper.New()
	v.Set("dir", dir)

	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "build/tpom.yaml", cfg.File)
	assert.False(t, cfg.Reproducible)
	assert.Equal(t, filepath.Join(dir, "build", "tpom.yaml"), cfg.BuildFilePath())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TPOM_LOG_FORMAT", "json")
	t.Setenv("TPOM_LOG_LEVEL", "warn")

	v := viper.New()
	v.Set("dir", t.TempDir())

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidLevel(t *testing.T) {
	v := viper.New()
	v.Set("dir", t.TempDir())
	v.Set("log_level", "loud")

	_, err := Load(v, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	cfg.LogFormat = "xml"
	require.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.File = ""
	require.Error(t, cfg.Validate())
}

func TestBuildFilePath_Absolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.yaml")
	cfg := Config{Dir: "/elsewhere", File: abs}
	assert.Equal(t, abs, cfg.BuildFilePath())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := Defaults()
	cfg.LogFormat = FormatJSON
	cfg.LogLevel = "debug"

	cfg.NewLogger(&buf).Debug("hello", slog.String("k", "v"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	buf.Reset()
	cfg.LogLevel = "error"
	cfg.LogFormat = FormatText
	cfg.NewLogger(&buf).Info("hidden")
	assert.Empty(t, buf.String())
}
