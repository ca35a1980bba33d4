// Package wordcount 实现 cwim 的文本规范化与分词计数引擎。
//
// 处理流程（逐行）：
//
//	原始行 -> Classify -> (非空行) Normalizer -> 分词 -> 计入文档统计
//
// 该包只负责“文本进、结构化统计出”，不关心文件如何被发现，也不负责输出展示。
package wordcount

import "strings"

// LineRecord 是单行分类结果，仅在处理过程中短暂存在。
type LineRecord struct {
	// Text 是去掉首尾空白后的文本。
	Text string
	// Blank 表示去掉首尾空白后是否为空。
	Blank bool
}

// Classify 去掉行首尾空白并判断是否为空行。
// 任意字符串都是合法输入，不会失败。
func Classify(line string) LineRecord {
	trimmed := strings.TrimSpace(line)
	return LineRecord{
		Text:  trimmed,
		Blank: trimmed == "",
	}
}
