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
	"bytes"
	"encoding/xml"

	"golang.org/x/net/html/charset"
)

// decodeXML 解码包内XML条目
// 按XML声明自动转换GBK/GB18030等字符集
// 入参: entry 包内条目名, data XML数据, v 目标结构
// 返回: error 错误信息
func decodeXML(entry string, data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(v); err != nil {
		return &StructuralDecodeError{Entry: entry, Err: err}
	}
	return nil
}
