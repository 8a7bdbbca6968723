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

package ofdmeta

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound 压缩包内条目不存在
var ErrEntryNotFound = errors.New("entry not found")

// ErrInvalidFormat 微语言格式错误(字段数不符、未知指令或缺少操作数)
var ErrInvalidFormat = errors.New("invalid format")

// ContainerError 容器错误
// 打开压缩包失败或包内条目缺失
type ContainerError struct {
	Entry string
	Err   error
}

// Error 实现error接口
// 返回: string 错误描述
func (e *ContainerError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("ofdmeta: container: %v", e.Err)
	}
	return fmt.Sprintf("ofdmeta: container %s: %v", e.Entry, e.Err)
}

// Unwrap 返回底层错误
// 返回: error 底层错误
func (e *ContainerError) Unwrap() error {
	return e.Err
}

// StructuralDecodeError XML结构解码错误
type StructuralDecodeError struct {
	Entry string
	Err   error
}

// Error 实现error接口
// 返回: string 错误描述
func (e *StructuralDecodeError) Error() string {
	return fmt.Sprintf("ofdmeta: decode %s: %v", e.Entry, e.Err)
}

// Unwrap 返回底层错误
// 返回: error 底层错误
func (e *StructuralDecodeError) Unwrap() error {
	return e.Err
}

// FloatParseError 数值解析错误, 携带出错的原始token
type FloatParseError struct {
	Token string
	Err   error
}

// Error 实现error接口
// 返回: string 错误描述
func (e *FloatParseError) Error() string {
	return fmt.Sprintf("ofdmeta: parse float %q: %v", e.Token, e.Err)
}

// Unwrap 返回底层错误
// 返回: error 底层错误
func (e *FloatParseError) Unwrap() error {
	return e.Err
}
