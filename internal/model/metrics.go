// Package model 定义 cwim 的核心数据模型。
// 这些结构会被统计引擎、扫描器、输出层和命令层共同使用。
package model

// Stat 表示单个文档的统计结果。
//
// 注意：
// - TotalLines = 非空行 + 空行，因此 TotalLines >= BlankLines >= 0
// - ReadingTime 是已经格式化好的阅读时长字符串
// - Stat 生成后不再修改
type Stat struct {
	TotalLines     int64  `json:"total_lines"`
	BlankLines     int64  `json:"blank_lines"`
	Words          int64  `json:"words"`
	ReadingMinutes int64  `json:"reading_minutes"`
	ReadingTime    string `json:"reading_time"`
}

// NonBlankLines 返回非空行数量。
func (s Stat) NonBlankLines() int64 {
	return s.TotalLines - s.BlankLines
}

// DocumentStat 表示单文档统计明细。
// 使用 (Path, Stat) 有序对而不是 map，保证输出顺序与发现顺序一致。
type DocumentStat struct {
	Path string `json:"path"`
	Stat Stat   `json:"stat"`
}

// Totals 表示全部文档的汇总。
// 阅读时长基于总字数重新计算，而不是把每个文档的字符串相加。
type Totals struct {
	Files          int64  `json:"files"`
	TotalLines     int64  `json:"total_lines"`
	BlankLines     int64  `json:"blank_lines"`
	Words          int64  `json:"words"`
	ReadingMinutes int64  `json:"reading_minutes"`
	ReadingTime    string `json:"reading_time"`
}

// Add 将一个文档的统计值累加到汇总中。
func (t *Totals) Add(stat Stat) {
	t.Files++
	t.TotalLines += stat.TotalLines
	t.BlankLines += stat.BlankLines
	t.Words += stat.Words
}

// Finalize 在全部文档处理完成后写入汇总阅读时长。
// 与单文档使用同一套取整与哨兵规则。
func (t *Totals) Finalize() {
	t.ReadingMinutes = ReadingMinutes(t.Words)
	t.ReadingTime = FormatReadingTime(t.Words)
}

// Result 是 count 命令的完整输出模型。
// 包含扫描根路径、按发现顺序排列的文档明细以及全局汇总。
type Result struct {
	ScannedPaths []string       `json:"scanned_paths"`
	Documents    []DocumentStat `json:"documents"`
	Total        Totals         `json:"total"`
}
