package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cwim/internal/config"
	"cwim/internal/discovery"
)

// countOptions 存放 count 命令的可配置参数。
// 优先级：显式传入的 flag > 配置文件 > 默认值。
type countOptions struct {
	configPath  string
	format      string
	output      string
	extensions  []string
	followLinks bool
	frontMatter bool
	verbose     int
}

func defaultCountOptions() countOptions {
	return countOptions{
		configPath:  config.DefaultPath(),
		format:      "table",
		extensions:  append([]string(nil), discovery.DefaultExtensions...),
		followLinks: true,
	}
}

// bindFlags 注册 count 与 config 共用的参数。
func (o *countOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", o.configPath, "配置文件路径")
	flags.StringVar(&o.format, "format", o.format, "输出格式: table 或 json")
	flags.StringVar(&o.output, "output", o.output, "json 导出文件路径，为空时不导出")
	flags.StringSliceVar(&o.extensions, "ext", o.extensions, "目录扫描时识别的文件后缀")
	flags.BoolVar(&o.followLinks, "follow-links", o.followLinks, "跟随符号链接")
	flags.BoolVar(&o.frontMatter, "front-matter", o.frontMatter, "跳过文档开头的 front matter")
}

// applyConfig 读取配置文件，并把未显式传入的 flag 替换为配置值。
func (o *countOptions) applyConfig(cmd *cobra.Command) error {
	fileCfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if len(fileCfg.Scan.Extensions) > 0 && !cmd.Flags().Changed("ext") {
		o.extensions = append([]string(nil), fileCfg.Scan.Extensions...)
	}
	applyConfigValue(cmd, "follow-links", &o.followLinks, fileCfg.Scan.FollowLinks)
	applyConfigValue(cmd, "front-matter", &o.frontMatter, fileCfg.Scan.FrontMatter)
	applyConfigValue(cmd, "format", &o.format, fileCfg.Output.Format)
	applyConfigValue(cmd, "output", &o.output, fileCfg.Output.Output)
	return nil
}

// validate 校验并归一化参数。
func (o *countOptions) validate() error {
	o.format = strings.ToLower(strings.TrimSpace(o.format))
	if o.format != "table" && o.format != "json" {
		return fmt.Errorf("unsupported format %q, allowed values: table, json", o.format)
	}
	o.output = strings.TrimSpace(o.output)
	return nil
}

func applyConfigValue[T any](cmd *cobra.Command, name string, target *T, value *T) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
