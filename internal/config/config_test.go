package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Grades", cfg.Title)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "", cfg.StagingDir)
	assert.Empty(t, cfg.Periods)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Verbose)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradexl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Report
output_dir: out
periods: [1Nin, 2Nin]
color: false
`), 0666))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Report", cfg.Title)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, []string{"1Nin", "2Nin"}, cfg.Periods)
	assert.False(t, cfg.Color)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GRADEXL_TITLE", "FromEnv")
	t.Setenv("GRADEXL_VERBOSE", "true")

	path := filepath.Join(t.TempDir(), "gradexl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: FromFile\n"), 0666))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", cfg.Title)
	assert.True(t, cfg.Verbose)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
