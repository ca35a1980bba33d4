// Package cmd 提供 cwim 的命令行入口与子命令编排。
package cmd

import (
	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cwim",
		Short: "Count Words Inside a Markdown file. (CJK compatible)",
		Long: "cwim 统计 markdown 文档的总行数、空行数、字数与预估阅读时长，\n" +
			"分词遵循 Unicode 文本分段规则，中日韩文字无需额外配置。",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newExtensionsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCountCmd(version))

	return rootCmd
}
