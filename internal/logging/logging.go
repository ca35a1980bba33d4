// Package logging 负责构造 slog 日志器，并把统计过程中的诊断信息写入日志。
package logging

import (
	"io"
	"log/slog"
	"strings"

	"cwim/internal/discovery"
	"cwim/internal/model"
)

// New 根据 -v 次数创建日志器。
// 0: 只输出 warn 及以上；1 及以上: 输出 debug。
func New(writer io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	if verbosity > 0 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
}

// Observer 把文档发现、分词与单文档统计写入 debug 日志。
//
// verbosity >= 1 时回显发现的文档标识；
// verbosity >= 2 时额外回显每行词元与单文档统计。
type Observer struct {
	logger    *slog.Logger
	verbosity int
}

// NewObserver 创建诊断观察者。
func NewObserver(logger *slog.Logger, verbosity int) *Observer {
	return &Observer{
		logger:    logger,
		verbosity: verbosity,
	}
}

// TokensEnabled 表示是否需要逐行词元，调用方据此决定是否挂载观察者。
func (o *Observer) TokensEnabled() bool {
	return o.verbosity > 1
}

// DocumentDiscovered 回显即将统计的文档。
func (o *Observer) DocumentDiscovered(document discovery.Document) {
	if o.verbosity < 1 {
		return
	}
	o.logger.Debug("document", "id", document.ID, "path", document.Path)
}

// DocumentStarted 标记文档开始统计。
func (o *Observer) DocumentStarted(id string) {
	if o.verbosity < 2 {
		return
	}
	o.logger.Debug("counting", "id", id)
}

// LineTokens 回显一行的分词结果。
func (o *Observer) LineTokens(id string, tokens []string) {
	if o.verbosity < 2 {
		return
	}
	o.logger.Debug("tokens", "id", id, "count", len(tokens), "words", strings.Join(tokens, " / "))
}

// DocumentCounted 回显单文档统计结果。
func (o *Observer) DocumentCounted(id string, stat model.Stat) {
	if o.verbosity < 2 {
		return
	}
	o.logger.Debug(
		"counted",
		"id", id,
		"all_lines", stat.TotalLines,
		"blank_lines", stat.BlankLines,
		"words", stat.Words,
		"reading_time", stat.ReadingTime,
	)
}
