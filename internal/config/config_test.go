package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadValues(t *testing.T) {
	path := writeConfig(t, `
[scan]
extensions = [".md", ".markdown"]
follow-links = false
front-matter = true

[output]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".md", ".markdown"}, cfg.Scan.Extensions)
	require.NotNil(t, cfg.Scan.FollowLinks)
	assert.False(t, *cfg.Scan.FollowLinks)
	require.NotNil(t, cfg.Scan.FrontMatter)
	assert.True(t, *cfg.Scan.FrontMatter)
	require.NotNil(t, cfg.Output.Format)
	assert.Equal(t, "json", *cfg.Output.Format)
	assert.Nil(t, cfg.Output.Output)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[scan]\nwords-per-minute = 300\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "words-per-minute")
}

func TestLoadTemplateDecodes(t *testing.T) {
	cfg, err := Load(writeConfig(t, Template()))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)
}

func TestDefaultPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "cwim", "config.toml"), DefaultPath())
}
