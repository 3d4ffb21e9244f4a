package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syshealth/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "syshealth.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-dir", ".", "")
	fs.Bool("no-color", false, "")
	fs.BoolP("verbose", "v", false, "")
	fs.String("config", "", "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv("SYSHEALTH_LOG_DIR", "")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.LogDir)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "log_dir = \"/var/log/syshealth\"\nno_color = true\nverbose = true\n")
	t.Setenv(config.EnvConfigFile, path)

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/syshealth", cfg.LogDir)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Verbose)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "log_dir = [unclosed\n")
	t.Setenv(config.EnvConfigFile, path)

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadRejectsMissingExplicitFile(t *testing.T) {
	t.Setenv(config.EnvConfigFile, filepath.Join(t.TempDir(), "absent.toml"))

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_dir = \"/from/file\"\n")
	t.Setenv(config.EnvConfigFile, path)
	t.Setenv("SYSHEALTH_LOG_DIR", "/from/env")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.LogDir)
}

func TestChangedFlagOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_dir = \"/from/file\"\nno_color = true\n")
	t.Setenv(config.EnvConfigFile, path)
	t.Setenv("SYSHEALTH_LOG_DIR", "")

	fs := newFlags(t)
	require.NoError(t, fs.Set("log-dir", "/from/flag"))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.LogDir)
	assert.True(t, cfg.NoColor, "an unchanged flag does not mask the file value")
}

func TestConfigFlagOverridesEnvPath(t *testing.T) {
	envPath := writeConfig(t, "log_dir = \"/from/env/file\"\n")
	flagPath := writeConfig(t, "log_dir = \"/from/flag/file\"\n")
	t.Setenv(config.EnvConfigFile, envPath)
	t.Setenv("SYSHEALTH_LOG_DIR", "")

	fs := newFlags(t)
	require.NoError(t, fs.Set("config", flagPath))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "/from/flag/file", cfg.LogDir)
}
