package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Document 表示一个待统计文档的引用。
type Document struct {
	// ID 是展示用标识：目录扫描时为相对扫描根的路径，单文件时为文件名。
	ID string
	// Path 是可直接读取的绝对路径。
	Path string
}

// InvalidPathError 表示路径既不是文件也不是目录，或者无法获取元信息。
type InvalidPathError struct {
	Path   string
	Reason string
	Err    error
}

// Error 实现 error 接口。
func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid path %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid path %s: %s", e.Path, e.Reason)
}

// Unwrap 返回底层错误，便于 errors.Is 判断。
func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// Discoverer 按确定顺序展开路径。
type Discoverer struct {
	registry    *Registry
	followLinks bool
}

// NewDiscoverer 创建发现器。
// followLinks 为 true 时会进入符号链接指向的目录。
func NewDiscoverer(registry *Registry, followLinks bool) *Discoverer {
	return &Discoverer{
		registry:    registry,
		followLinks: followLinks,
	}
}

// Discover 展开单个路径。
// 目录按字典序递归遍历，只保留已注册后缀的文件；单文件路径不做后缀过滤。
func (d *Discoverer) Discover(targetPath string) (string, []Document, error) {
	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return "", nil, &InvalidPathError{Path: targetPath, Reason: "path is empty"}
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return "", nil, &InvalidPathError{Path: trimmedPath, Reason: "resolve absolute path", Err: err}
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return "", nil, &InvalidPathError{Path: trimmedPath, Reason: "stat path", Err: err}
	}

	switch {
	case info.IsDir():
		documents := make([]Document, 0)
		visited := make(map[string]struct{})
		if err := d.walkDirectory(absoluteTarget, absoluteTarget, visited, &documents); err != nil {
			return "", nil, err
		}
		return absoluteTarget, documents, nil
	case info.Mode().IsRegular():
		return absoluteTarget, []Document{{
			ID:   filepath.Base(absoluteTarget),
			Path: absoluteTarget,
		}}, nil
	default:
		return "", nil, &InvalidPathError{Path: trimmedPath, Reason: "neither a file nor a directory"}
	}
}

// walkDirectory 遍历 directory 并把匹配的文件追加到 documents。
// 遍历在解析后的真实目录上进行，展示路径仍按 directory 相对 root 计算；
// visited 记录已进入的真实目录，防止符号链接成环。
func (d *Discoverer) walkDirectory(root string, directory string, visited map[string]struct{}, documents *[]Document) error {
	realDirectory, err := filepath.EvalSymlinks(directory)
	if err != nil {
		return fmt.Errorf("resolve directory %s: %w", directory, err)
	}
	if _, seen := visited[realDirectory]; seen {
		return nil
	}
	visited[realDirectory] = struct{}{}

	return filepath.WalkDir(realDirectory, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		logicalPath := directory
		if relativePath, relErr := filepath.Rel(realDirectory, path); relErr == nil {
			logicalPath = filepath.Join(directory, relativePath)
		}

		if entry.IsDir() {
			if path == realDirectory {
				return nil
			}
			if _, seen := visited[path]; seen {
				return filepath.SkipDir
			}
			visited[path] = struct{}{}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.visitSymlink(root, path, logicalPath, visited, documents)
		}

		if !entry.Type().IsRegular() || !d.registry.Matches(path) {
			return nil
		}

		*documents = append(*documents, Document{
			ID:   displayPath(root, logicalPath),
			Path: path,
		})
		return nil
	})
}

// visitSymlink 处理目录遍历中遇到的符号链接。
func (d *Discoverer) visitSymlink(root string, path string, logicalPath string, visited map[string]struct{}, documents *[]Document) error {
	if !d.followLinks {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// 悬空链接
			return nil
		}
		return fmt.Errorf("stat symlink %s: %w", path, err)
	}

	if info.IsDir() {
		return d.walkDirectory(root, logicalPath, visited, documents)
	}

	if info.Mode().IsRegular() && d.registry.Matches(path) {
		*documents = append(*documents, Document{
			ID:   displayPath(root, logicalPath),
			Path: path,
		})
	}
	return nil
}

// displayPath 计算相对扫描根的展示路径。
func displayPath(root string, path string) string {
	relativePath, err := filepath.Rel(root, path)
	if err != nil {
		relativePath = path
	}
	return filepath.ToSlash(relativePath)
}
