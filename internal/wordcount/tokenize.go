package wordcount

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Tokenize 按 Unicode 文本分段规则（UAX #29）切分单词并返回全部词元。
// 只保留至少包含一个字母或数字的片段，纯标点与空白会被丢弃。
// 中日韩表意文字在该规则下通常每个字单独成词。
func Tokenize(line string) []string {
	var tokens []string
	eachWord(line, func(word string) {
		tokens = append(tokens, word)
	})
	return tokens
}

// CountWords 只计数不保留词元，用于常规统计路径。
func CountWords(line string) int {
	count := 0
	eachWord(line, func(string) {
		count++
	})
	return count
}

// eachWord 遍历 line 中的每个单词片段。
func eachWord(text string, visit func(word string)) {
	state := -1
	var segment string
	for len(text) > 0 {
		segment, text, state = uniseg.FirstWordInString(text, state)
		if isWordLike(segment) {
			visit(segment)
		}
	}
}

// isWordLike 判断片段是否包含字母或数字字符。
func isWordLike(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r) {
			return true
		}
	}
	return false
}
