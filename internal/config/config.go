// Package config 提供 cwim 的配置文件读取能力。
// 配置文件为 TOML 格式，所有字段都是可选的，只有显式写出的键才会覆盖默认值。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig 对应整个 TOML 配置文件。
type FileConfig struct {
	Scan   ScanConfig   `toml:"scan"`
	Output OutputConfig `toml:"output"`
}

// ScanConfig 对应 [scan] 段。
type ScanConfig struct {
	Extensions  []string `toml:"extensions"`
	FollowLinks *bool    `toml:"follow-links"`
	FrontMatter *bool    `toml:"front-matter"`
}

// OutputConfig 对应 [output] 段。
type OutputConfig struct {
	Format *string `toml:"format"`
	Output *string `toml:"output"`
}

// Load 读取指定路径的 TOML 配置。文件不存在不视为错误。
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}

	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("decode config %s: unknown key %s", path, undecoded[0].String())
	}
	return cfg, nil
}

// XDGConfigHome 返回 XDG 配置目录，未设置时回退到 ~/.config。
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultPath 返回默认配置文件路径。
func DefaultPath() string {
	return filepath.Join(XDGConfigHome(), "cwim", "config.toml")
}

// Template 返回带注释的默认配置内容，供 config --init 写入。
func Template() string {
	return `# cwim configuration
[scan]
# extensions = [".md"]
# follow-links = true
# front-matter = false

[output]
# format = "table"
# output = ""
`
}
