package scanner

import "fmt"

// ReadError 表示某个文档无法读取（不存在、权限不足或 I/O 故障）。
// 该错误会终止整次运行，调用方不会拿到任何部分汇总。
type ReadError struct {
	ID  string
	Err error
}

// Error 实现 error 接口。
func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read file `%s`: %v", e.ID, e.Err)
}

// Unwrap 返回底层错误，便于 errors.Is 判断。
func (e *ReadError) Unwrap() error {
	return e.Err
}
