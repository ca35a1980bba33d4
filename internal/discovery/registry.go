// Package discovery 负责把用户给出的路径展开为有序的文档列表。
// 该层只负责“找到哪些文档”，不读取文档内容，也不参与统计。
package discovery

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions 是默认识别的 markdown 后缀。
var DefaultExtensions = []string{".md"}

// Registry 管理允许统计的文件后缀。
type Registry struct {
	extensions map[string]struct{}
}

// NewRegistry 创建后缀注册表。
// 后缀区分大小写，缺少点号时自动补齐；传入空列表时使用 DefaultExtensions。
func NewRegistry(extensions ...string) (*Registry, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	registry := &Registry{extensions: make(map[string]struct{}, len(extensions))}
	for _, ext := range extensions {
		normalized := strings.TrimSpace(ext)
		if normalized == "" || normalized == "." {
			return nil, errors.New("extension must not be empty")
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.ContainsAny(normalized, `/\`) {
			return nil, fmt.Errorf("invalid extension: %s", ext)
		}
		registry.extensions[normalized] = struct{}{}
	}

	return registry, nil
}

// Matches 判断文件是否属于已注册后缀，大小写必须完全一致。
func (r *Registry) Matches(path string) bool {
	_, ok := r.extensions[filepath.Ext(path)]
	return ok
}

// Extensions 返回排序后的后缀清单。
func (r *Registry) Extensions() []string {
	result := make([]string, 0, len(r.extensions))
	for ext := range r.extensions {
		result = append(result, ext)
	}
	sort.Strings(result)
	return result
}
