// Copyright 2026 肖其顿 (XIAO QI DUN)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ofdmeta 纯 Go 语言 OFD 文档容器与元数据解析库
package ofdmeta

import (
	"archive/zip"
	"io"
)

// Open 打开OFD文件
// 入参: path 文件路径
// 返回: *Reader 阅读器实例, error 错误信息
func Open(path string) (*Reader, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ContainerError{Entry: path, Err: err}
	}
	reader := &Reader{
		Path:   path,
		Zip:    &r.Reader,
		Closer: r,
	}
	if err := reader.init(); err != nil {
		reader.Close()
		return nil, err
	}
	return reader, nil
}

// NewReader 从流创建一个 OFD 阅读器
// 入参: r IO读取器, size 数据大小
// 返回: *Reader 阅读器实例, error 错误信息
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &ContainerError{Err: err}
	}
	reader := &Reader{
		Zip: zr,
	}
	if err := reader.init(); err != nil {
		return nil, err
	}
	return reader, nil
}

// PageCount 获取文档总页数
// 入参: reader 阅读器
// 返回: int 页数
func PageCount(reader *Reader) int {
	doc := reader.Doc()
	if doc == nil {
		return 0
	}
	return len(doc.Pages.Page)
}
