// Package report 提供 cwim 的输出能力。
// 当前实现支持 table 控制台格式和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cwim/internal/model"
)

// Title 是输出头部的工具说明。
const Title = "cwim - Count Words Inside a Markdown file. (CJK compatible)"

// ProjectPath 是吞吐信息行中展示的项目地址。
const ProjectPath = "github.com/spencerwooo/cwim"

// PrintHeader 输出工具说明、文件数量以及耗时与吞吐信息。
func PrintHeader(writer io.Writer, version string, total model.Totals, elapsed time.Duration) error {
	seconds := elapsed.Seconds()
	var filesPerSecond, wordsPerSecond float64
	if seconds > 0 {
		filesPerSecond = float64(total.Files) / seconds
		wordsPerSecond = float64(total.Words) / seconds
	}

	_, err := fmt.Fprintf(
		writer,
		"%s\n\n  Found %d markdown file(s).\n\n  %s  %s  T=%.3fs  (%.1f files/s %.1f words/s)\n\n",
		Title,
		total.Files,
		ProjectPath,
		displayVersion(version),
		seconds,
		filesPerSecond,
		wordsPerSecond,
	)
	return err
}

// displayVersion 统一加上 v 前缀，已带前缀的版本号保持不变。
func displayVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// PrintJSON 把统计结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.Result) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, result model.Result) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
