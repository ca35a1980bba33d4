package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cwim/internal/model"
)

// writeFixtureFile 是测试辅助函数，用于在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// runCommand 以隔离的配置文件执行命令，返回 stdout 与 stderr。
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd := newRootCmd("v0.0.0-test")
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cwim version v0.0.0-test\n", stdout)
}

func TestCountTable(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "a.md"), "hello world\n\n中文\n")
	writeFixtureFile(t, filepath.Join(tempDir, "skip.txt"), "ignored words")

	stdout, _, err := runCommand(t, "count", tempDir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Found 1 markdown file(s).")
	assert.Contains(t, stdout, "github.com/spencerwooo/cwim  v0.0.0-test  T=")
	assert.Contains(t, stdout, "| a.md      | 3         | 1           | 4     | less than 1 minute |")
	assert.Contains(t, stdout, "| SUM       | 3         | 1           | 4     | less than 1 minute |")
}

func TestCountJSONAndExport(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "docs", "b.md"), strings.Repeat("word ", 250))
	writeFixtureFile(t, filepath.Join(tempDir, "docs", "a.md"), "see [doc](./b.md) here")
	outputPath := filepath.Join(tempDir, "out", "result.json")

	stdout, stderr, err := runCommand(t, "count", filepath.Join(tempDir, "docs"), "--format", "JSON", "--output", outputPath)
	require.NoError(t, err)

	var result model.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Documents, 2)
	assert.Equal(t, "a.md", result.Documents[0].Path)
	assert.Equal(t, int64(3), result.Documents[0].Stat.Words)
	assert.Equal(t, "1 mins", result.Documents[1].Stat.ReadingTime)
	assert.Equal(t, int64(253), result.Total.Words)
	assert.Equal(t, "1 mins", result.Total.ReadingTime)

	assert.FileExists(t, outputPath)
	assert.Contains(t, stderr, "JSON exported to "+outputPath)
}

func TestCountVerboseEchoesDocuments(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "a.md"), "hello world")

	_, stderr, err := runCommand(t, "count", tempDir, "-vv")
	require.NoError(t, err)

	assert.Contains(t, stderr, "msg=document id=a.md")
	assert.Contains(t, stderr, `words="hello / world"`)
}

func TestCountRejectsUnknownFormat(t *testing.T) {
	_, _, err := runCommand(t, "count", t.TempDir(), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestCountInvalidPath(t *testing.T) {
	stdout, _, err := runCommand(t, "count", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
	assert.NotContains(t, stdout, "SUM")
}

func TestCountUsesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "a.markdown"), "alpha beta")
	writeFixtureFile(t, filepath.Join(tempDir, "b.md"), "gamma")
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeFixtureFile(t, configPath, "[scan]\nextensions = [\".markdown\"]\n\n[output]\nformat = \"json\"\n")

	stdout, _, err := runCommand(t, "count", tempDir, "--config", configPath)
	require.NoError(t, err)

	var result model.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "a.markdown", result.Documents[0].Path)

	stdout, _, err = runCommand(t, "count", tempDir, "--config", configPath, "--ext", ".md", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "| b.md ")
}

func TestExtensionsCmd(t *testing.T) {
	stdout, _, err := runCommand(t, "extensions", "--ext", "md,markdown")
	require.NoError(t, err)

	assert.Contains(t, stdout, "EXTENSION")
	assert.Contains(t, stdout, ".markdown")
	assert.Contains(t, stdout, ".md ")
}

func TestConfigInitWritesTemplate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "cwim", "config.toml")

	stdout, _, err := runCommand(t, "config", "--init", "--config", configPath)
	require.NoError(t, err)

	assert.FileExists(t, configPath)
	assert.Contains(t, stdout, "follow-links")
	assert.Contains(t, stdout, "table")
}
