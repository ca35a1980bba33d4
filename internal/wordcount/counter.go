package wordcount

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"cwim/internal/model"
)

// ErrInvalidUTF8 表示文档内容不是合法的 UTF-8 文本。
var ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

// Observer 接收诊断信息（对应命令行的 -v / -vv）。
// 观察者只读取中间结果，不会影响计数。
type Observer interface {
	// DocumentStarted 在开始统计某个文档前调用。
	DocumentStarted(id string)
	// LineTokens 在每个非空行分词完成后调用。
	LineTokens(id string, tokens []string)
	// DocumentCounted 在文档统计完成后调用。
	DocumentCounted(id string, stat model.Stat)
}

// Option 用于定制 Counter。
type Option func(*Counter)

// WithObserver 设置诊断观察者，nil 表示不输出诊断信息。
func WithObserver(observer Observer) Option {
	return func(c *Counter) {
		c.observer = observer
	}
}

// WithFrontMatter 控制是否跳过文档开头的 front matter。
func WithFrontMatter(skip bool) Option {
	return func(c *Counter) {
		c.skipFrontMatter = skip
	}
}

// Counter 是单文档累加器。
// Normalizer 在构造时创建一次，之后被所有文档共享。
type Counter struct {
	normalizer      *Normalizer
	observer        Observer
	skipFrontMatter bool
}

// NewCounter 创建累加器。
func NewCounter(opts ...Option) *Counter {
	counter := &Counter{normalizer: NewNormalizer()}
	for _, opt := range opts {
		opt(counter)
	}
	return counter
}

// Count 一次性读取文档全部内容后逐行统计。
// 内容必须是合法的 UTF-8 文本，否则返回 ErrInvalidUTF8。
// id 只用于诊断输出，错误信息中的文档标识由调用方附加。
func (c *Counter) Count(id string, reader io.Reader) (model.Stat, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return model.Stat{}, fmt.Errorf("read: %w", err)
	}
	if !utf8.Valid(content) {
		return model.Stat{}, fmt.Errorf("read: %w", ErrInvalidUTF8)
	}

	if c.skipFrontMatter {
		content, err = stripFrontMatter(content)
		if err != nil {
			return model.Stat{}, err
		}
	}

	return c.countText(id, string(content)), nil
}

// countText 执行逐行分类、规范化与分词，并生成不可变的 Stat。
func (c *Counter) countText(id string, content string) model.Stat {
	if c.observer != nil {
		c.observer.DocumentStarted(id)
	}

	var nonBlank, blank, words int64
	eachLine(content, func(line string) {
		record := Classify(line)
		if record.Blank {
			blank++
			return
		}

		nonBlank++
		normalized := c.normalizer.Normalize(record.Text)
		if c.observer == nil {
			words += int64(CountWords(normalized))
			return
		}

		tokens := Tokenize(normalized)
		words += int64(len(tokens))
		c.observer.LineTokens(id, tokens)
	})

	stat := model.NewStat(nonBlank, blank, words)
	if c.observer != nil {
		c.observer.DocumentCounted(id, stat)
	}
	return stat
}

// eachLine 按 \n 切分文本，并去掉行尾的 \r。
// 末尾换行不会产生额外空行，空文本没有任何行。
func eachLine(content string, visit func(line string)) {
	for len(content) > 0 {
		var line string
		if index := strings.IndexByte(content, '\n'); index >= 0 {
			line, content = content[:index], content[index+1:]
		} else {
			line, content = content, ""
		}
		visit(strings.TrimSuffix(line, "\r"))
	}
}
