package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cwim/internal/discovery"
	"cwim/internal/logging"
	"cwim/internal/report"
	"cwim/internal/scanner"
	"cwim/internal/wordcount"
)

// newCountCmd 创建 count 子命令。
// 示例：
//
//	cwim count README.md
//	cwim count ./docs --format json --output result.json
//	cwim count ./docs -vv
func newCountCmd(version string) *cobra.Command {
	options := defaultCountOptions()

	countCmd := &cobra.Command{
		Use:   "count [path...]",
		Short: "统计文件或目录中 markdown 文档的行数、字数与阅读时长",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := options.applyConfig(cmd); err != nil {
				return err
			}
			if err := options.validate(); err != nil {
				return err
			}

			registry, err := discovery.NewRegistry(options.extensions...)
			if err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), options.verbose)
			observer := logging.NewObserver(logger, options.verbose)

			counterOptions := []wordcount.Option{wordcount.WithFrontMatter(options.frontMatter)}
			if observer.TokensEnabled() {
				counterOptions = append(counterOptions, wordcount.WithObserver(observer))
			}

			service := scanner.NewService(
				discovery.NewDiscoverer(registry, options.followLinks),
				wordcount.NewCounter(counterOptions...),
			).WithDiscoveryObserver(observer)

			start := time.Now()
			result, err := service.Run(args...)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			switch options.format {
			case "table":
				if err := report.PrintHeader(cmd.OutOrStdout(), version, result.Total, elapsed); err != nil {
					return err
				}
				if err := report.PrintTable(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			}

			if options.output != "" {
				if err := report.WriteJSONFile(options.output, result); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "JSON exported to %s\n", options.output)
			}
			return nil
		},
	}

	options.bindFlags(countCmd)
	countCmd.Flags().CountVarP(&options.verbose, "verbose", "v", "诊断输出（-v 回显文档，-vv 回显分词与单文档统计）")

	return countCmd
}
