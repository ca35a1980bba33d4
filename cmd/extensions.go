package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cwim/internal/discovery"
)

// newExtensionsCmd 创建 extensions 子命令。
// 命令用于展示目录扫描时会被统计的文件后缀（已合并配置文件与 --ext）。
func newExtensionsCmd() *cobra.Command {
	options := defaultCountOptions()

	extensionsCmd := &cobra.Command{
		Use:   "extensions",
		Short: "展示目录扫描识别的文件后缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := options.applyConfig(cmd); err != nil {
				return err
			}

			registry, err := discovery.NewRegistry(options.extensions...)
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if _, err := fmt.Fprintln(writer, "EXTENSION\tKIND"); err != nil {
				return err
			}
			for _, ext := range registry.Extensions() {
				if _, err := fmt.Fprintf(writer, "%s\t%s\n", ext, "markdown"); err != nil {
					return err
				}
			}
			return writer.Flush()
		},
	}

	options.bindFlags(extensionsCmd)
	return extensionsCmd
}
