package model

import "strconv"

// WordsPerMinute 是估算阅读时长使用的固定阅读速度。
const WordsPerMinute = 250

// LessThanOneMinute 是阅读时长不足 1 分钟时的显示文本。
const LessThanOneMinute = "less than 1 minute"

// ReadingMinutes 按整数除法（向下取整）计算阅读分钟数。
func ReadingMinutes(words int64) int64 {
	if words <= 0 {
		return 0
	}
	return words / WordsPerMinute
}

// FormatReadingTime 把字数转换为阅读时长文本。
// 不足 1 分钟返回 LessThanOneMinute，否则返回 "<n> mins"（包括 1 分钟）。
func FormatReadingTime(words int64) string {
	minutes := ReadingMinutes(words)
	if minutes < 1 {
		return LessThanOneMinute
	}
	return strconv.FormatInt(minutes, 10) + " mins"
}

// NewStat 根据行计数与字数构造不可变的 Stat。
func NewStat(nonBlankLines int64, blankLines int64, words int64) Stat {
	return Stat{
		TotalLines:     nonBlankLines + blankLines,
		BlankLines:     blankLines,
		Words:          words,
		ReadingMinutes: ReadingMinutes(words),
		ReadingTime:    FormatReadingTime(words),
	}
}
