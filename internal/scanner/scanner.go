// Package scanner 提供一次完整统计运行的调度能力。
// 该层负责路径展开、逐个读取文档、调用统计引擎和结果汇总，不负责文本解析细节。
//
// 整个运行严格串行：文档按发现顺序逐个处理，任何错误都会立即终止运行。
package scanner

import (
	"errors"
	"fmt"
	"os"

	"cwim/internal/discovery"
	"cwim/internal/model"
	"cwim/internal/wordcount"
)

// DiscoveryObserver 接收已发现文档的诊断回显（对应 -v）。
type DiscoveryObserver interface {
	DocumentDiscovered(document discovery.Document)
}

// Service 是统计服务对象。
// counter 在构造时创建一次，内部的规范化正则在所有文档间共享。
type Service struct {
	discoverer *discovery.Discoverer
	counter    *wordcount.Counter
	observer   DiscoveryObserver
}

// NewService 创建统计服务。
func NewService(discoverer *discovery.Discoverer, counter *wordcount.Counter) *Service {
	return &Service{
		discoverer: discoverer,
		counter:    counter,
	}
}

// WithDiscoveryObserver 设置发现阶段的诊断观察者。
func (s *Service) WithDiscoveryObserver(observer DiscoveryObserver) *Service {
	s.observer = observer
	return s
}

// Run 展开全部路径并按顺序统计。
// 任何路径无效或文档不可读都会直接返回错误，此时 Result 为零值。
func (s *Service) Run(paths ...string) (model.Result, error) {
	if len(paths) == 0 {
		return model.Result{}, errors.New("no path given")
	}

	var documents []discovery.Document
	scannedPaths := make([]string, 0, len(paths))
	for _, path := range paths {
		root, found, err := s.discoverer.Discover(path)
		if err != nil {
			return model.Result{}, err
		}
		scannedPaths = append(scannedPaths, root)
		documents = append(documents, found...)
	}

	result, err := s.Process(documents)
	if err != nil {
		return model.Result{}, err
	}
	result.ScannedPaths = scannedPaths
	return result, nil
}

// Process 按给定顺序统计一组文档并返回最终汇总。
func (s *Service) Process(documents []discovery.Document) (model.Result, error) {
	result := model.Result{
		Documents: make([]model.DocumentStat, 0, len(documents)),
	}

	for _, document := range documents {
		if s.observer != nil {
			s.observer.DocumentDiscovered(document)
		}

		stat, err := s.countDocument(document)
		if err != nil {
			return model.Result{}, err
		}

		result.Documents = append(result.Documents, model.DocumentStat{
			Path: document.ID,
			Stat: stat,
		})
		result.Total.Add(stat)
	}

	result.Total.Finalize()
	return result, nil
}

// countDocument 读取单个文档并交给统计引擎。
func (s *Service) countDocument(document discovery.Document) (model.Stat, error) {
	file, openErr := os.Open(document.Path)
	if openErr != nil {
		return model.Stat{}, &ReadError{ID: document.ID, Err: openErr}
	}

	stat, countErr := s.counter.Count(document.ID, file)
	closeErr := file.Close()

	if countErr != nil {
		return model.Stat{}, &ReadError{ID: document.ID, Err: countErr}
	}
	if closeErr != nil {
		return model.Stat{}, &ReadError{ID: document.ID, Err: fmt.Errorf("close: %w", closeErr)}
	}
	return stat, nil
}
