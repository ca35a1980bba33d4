package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cwim/internal/model"
)

func sampleResult() model.Result {
	result := model.Result{
		ScannedPaths: []string{"/tmp/docs"},
		Documents: []model.DocumentStat{
			{Path: "a.md", Stat: model.NewStat(1, 1, 3)},
			{Path: "中文.md", Stat: model.NewStat(1, 0, 4)},
		},
	}
	for _, item := range result.Documents {
		result.Total.Add(item.Stat)
	}
	result.Total.Finalize()
	return result
}

// TestPrintTableAlignsCJKNames 验证中文文件名按显示宽度对齐，且保持文档顺序。
func TestPrintTableAlignsCJKNames(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintTable(&buffer, sampleResult()))

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	separator := "+-----------+-----------+-------------+-------+--------------------+"
	assert.Equal(t, separator, lines[0])
	assert.Equal(t, "| File name | all lines | blank lines | words | reading time       |", lines[1])
	assert.Equal(t, separator, lines[2])
	assert.Equal(t, "| a.md      | 2         | 1           | 3     | less than 1 minute |", lines[3])
	assert.Equal(t, "| 中文.md   | 1         | 0           | 4     | less than 1 minute |", lines[4])
	assert.Equal(t, "| SUM       | 3         | 1           | 7     | less than 1 minute |", lines[5])
	assert.Equal(t, separator, lines[6])

	for _, line := range lines {
		assert.Equal(t, runewidth.StringWidth(separator), runewidth.StringWidth(line), "line=%q", line)
	}
}

// TestPrintHeader 验证头部包含文件数量与吞吐信息。
func TestPrintHeader(t *testing.T) {
	var buffer bytes.Buffer
	total := model.Totals{Files: 2, Words: 7}

	require.NoError(t, PrintHeader(&buffer, "v1.0.0", total, 2*time.Second))

	output := buffer.String()
	assert.True(t, strings.HasPrefix(output, Title))
	assert.Contains(t, output, "Found 2 markdown file(s).")
	assert.Contains(t, output, "  github.com/spencerwooo/cwim  v1.0.0  T=2.000s  (1.0 files/s 3.5 words/s)")
}

// TestPrintHeaderAddsVersionPrefix 验证未带 v 前缀的版本号会被补齐。
func TestPrintHeaderAddsVersionPrefix(t *testing.T) {
	var buffer bytes.Buffer

	require.NoError(t, PrintHeader(&buffer, "1.2.3", model.Totals{}, time.Second))
	assert.Contains(t, buffer.String(), "  "+ProjectPath+"  v1.2.3  T=1.000s")

	buffer.Reset()
	require.NoError(t, PrintHeader(&buffer, "dev", model.Totals{}, time.Second))
	assert.Contains(t, buffer.String(), ProjectPath+"  vdev  T=")
}

// TestPrintHeaderZeroElapsed 验证耗时为 0 时不会出现除零结果。
func TestPrintHeaderZeroElapsed(t *testing.T) {
	var buffer bytes.Buffer

	require.NoError(t, PrintHeader(&buffer, "dev", model.Totals{Files: 1, Words: 1}, 0))
	assert.Contains(t, buffer.String(), "(0.0 files/s 0.0 words/s)")
}

// TestPrintJSON 验证 JSON 输出保留文档顺序与汇总字段。
func TestPrintJSON(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, PrintJSON(&buffer, sampleResult()))

	var decoded model.Result
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	assert.Equal(t, sampleResult(), decoded)
	assert.Contains(t, buffer.String(), `"reading_time": "less than 1 minute"`)
}

// TestWriteJSONFileCreatesDirectory 验证导出时自动创建目录。
func TestWriteJSONFileCreatesDirectory(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "nested", "result.json")

	require.NoError(t, WriteJSONFile(outputPath, sampleResult()))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	var decoded model.Result
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, int64(7), decoded.Total.Words)
}
