package wordcount

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// stripFrontMatter 去掉文档开头的 YAML/TOML/JSON front matter，返回正文。
// 没有 front matter 时原样返回。
func stripFrontMatter(source []byte) ([]byte, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	return body, nil
}
