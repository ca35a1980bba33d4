package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cwim/internal/config"
)

// newConfigCmd 创建 config 子命令。
// 展示生效的配置；--init 会在配置文件不存在时写入带注释的模板。
func newConfigCmd() *cobra.Command {
	options := defaultCountOptions()
	var initFile bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "展示生效配置或创建配置文件",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if initFile {
				if err := writeConfigTemplate(options.configPath); err != nil {
					return err
				}
			}

			if err := options.applyConfig(cmd); err != nil {
				return err
			}
			if err := options.validate(); err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			rows := [][2]string{
				{"config", options.configPath},
				{"extensions", strings.Join(options.extensions, ", ")},
				{"follow-links", fmt.Sprint(options.followLinks)},
				{"front-matter", fmt.Sprint(options.frontMatter)},
				{"format", options.format},
				{"output", options.output},
			}
			for _, row := range rows {
				if _, err := fmt.Fprintf(writer, "%s\t%s\n", row[0], row[1]); err != nil {
					return err
				}
			}
			return writer.Flush()
		},
	}

	options.bindFlags(configCmd)
	configCmd.Flags().BoolVar(&initFile, "init", false, "配置文件不存在时写入默认模板")
	return configCmd
}

// writeConfigTemplate 在 path 不存在时写入模板，已存在则保持不变。
func writeConfigTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.Template()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
