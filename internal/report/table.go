package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cwim/internal/model"
)

var tableHeaders = []string{"File name", "all lines", "blank lines", "words", "reading time"}

// PrintTable 使用表格展示统计结果，最后一行为 SUM 汇总。
//
// 列宽按终端显示宽度计算，中日韩文件名也能对齐；
// 样式渲染器绑定到 writer，输出到非终端时不会带颜色控制符。
func PrintTable(writer io.Writer, result model.Result) error {
	renderer := lipgloss.NewRenderer(writer)
	headerStyle := renderer.NewStyle().Bold(true)
	sumStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))

	rows := make([][]string, 0, len(result.Documents))
	for _, item := range result.Documents {
		rows = append(rows, statRow(item.Path, item.Stat.TotalLines, item.Stat.BlankLines, item.Stat.Words, item.Stat.ReadingTime))
	}
	sum := statRow("SUM", result.Total.TotalLines, result.Total.BlankLines, result.Total.Words, result.Total.ReadingTime)

	widths := columnWidths(tableHeaders, append(rows, sum))
	separator := separatorLine(widths)

	lines := make([]string, 0, len(rows)+5)
	lines = append(lines, separator)
	lines = append(lines, formatRow(tableHeaders, widths, headerStyle))
	lines = append(lines, separator)
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, renderer.NewStyle()))
	}
	lines = append(lines, formatRow(sum, widths, sumStyle))
	lines = append(lines, separator)

	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

func statRow(name string, totalLines int64, blankLines int64, words int64, readingTime string) []string {
	return []string{
		name,
		strconv.FormatInt(totalLines, 10),
		strconv.FormatInt(blankLines, 10),
		strconv.FormatInt(words, 10),
		readingTime,
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// separatorLine 生成 +-----+----+ 形式的分隔线。
func separatorLine(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteByte('+')
	}
	return b.String()
}

// formatRow 先按显示宽度补齐再上样式，避免控制符干扰对齐。
func formatRow(row []string, widths []int, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		b.WriteByte(' ')
		b.WriteString(style.Render(runewidth.FillRight(cell, width)))
		b.WriteString(" |")
	}
	return b.String()
}
