// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, used, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
	assert.Empty(t, used)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	writeFile(t, dir, "deck2md.yaml", "output_dir: out/md\nfront_matter: true\nlog_level: debug\n")

	cfg, used, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "out/md", cfg.OutputDir)
	assert.True(t, cfg.FrontMatter)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "deck2md.yaml", filepath.Base(used))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	writeFile(t, dir, "deck2md.yaml", "output_dir: from-file\n")
	t.Setenv("DECK2MD_OUTPUT_DIR", "from-env")

	cfg, _, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	// Registered so the variable is restored after godotenv sets it.
	t.Setenv("DECK2MD_LOG_LEVEL", "")
	os.Unsetenv("DECK2MD_LOG_LEVEL")
	writeFile(t, dir, ".env", "DECK2MD_LOG_LEVEL=warn\n")

	cfg, _, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	_, _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
