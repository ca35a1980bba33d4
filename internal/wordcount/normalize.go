package wordcount

import "regexp"

// whitespaceClass 覆盖 Unicode White_Space 属性。
// RE2 的 \s 只匹配 ASCII 空白，这里补上 \v、U+0085 与 Z 类分隔符。
const whitespaceClass = `[\s\v\x{85}\p{Z}]`

// decorativePattern 用于去除标签附近的装饰性空白。
// 该表达式保持原有字面语义：^ 出现在已消费字符之后，实际上几乎不会命中。
const decorativePattern = `(<([^>]+)<)-^` + whitespaceClass + whitespaceClass + `*-` +
	whitespaceClass + whitespaceClass + `*$`

// Normalizer 负责非空行的规范化。
// 三个正则在构造时编译一次，之后只读共享，可以在所有文档和行之间复用。
type Normalizer struct {
	decorative *regexp.Regexp
	spaces     *regexp.Regexp
	linkTarget *regexp.Regexp
}

// NewNormalizer 编译规范化所需的全部正则。
func NewNormalizer() *Normalizer {
	return &Normalizer{
		decorative: regexp.MustCompile(decorativePattern),
		spaces:     regexp.MustCompile(whitespaceClass + `+`),
		linkTarget: regexp.MustCompile(`\]\((.*?)\)`),
	}
}

// Normalize 依次执行：
//  1. 去除装饰性空白；
//  2. 把连续空白折叠为一个空格；
//  3. 删除 markdown 链接目标，只保留 "]" 作为链接标记。
//
// 纯函数，对已经规范化的文本再次执行结果不变。
func (n *Normalizer) Normalize(line string) string {
	line = n.decorative.ReplaceAllLiteralString(line, "")
	line = n.spaces.ReplaceAllLiteralString(line, " ")
	return n.linkTarget.ReplaceAllLiteralString(line, "]")
}
