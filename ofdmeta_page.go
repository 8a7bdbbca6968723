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

import "encoding/xml"

// PageContent 页面内容
type PageContent struct {
	XMLName  xml.Name   `xml:"Page"`
	ID       string     `xml:"-"`
	Area     PageArea   `xml:"Area"`
	Template []Template `xml:"Template"`
	Content  Content    `xml:"Content"`
}

// Template 页面模板引用
type Template struct {
	TemplateID string `xml:"TemplateID,attr"`
	ZOrder     string `xml:"ZOrder,attr"`
}

// Content 页面内容节点
type Content struct {
	Layer []Layer `xml:"Layer"`
}

// Layer 图层
type Layer struct {
	ID          string        `xml:"ID,attr"`
	DrawParam   string        `xml:"DrawParam,attr"`
	TextObject  []TextObject  `xml:"TextObject"`
	PathObject  []PathObject  `xml:"PathObject"`
	ImageObject []ImageObject `xml:"ImageObject"`
}

// TextObject 文本对象
type TextObject struct {
	ID       string     `xml:"ID,attr"`
	Boundary string     `xml:"Boundary,attr"`
	Font     string     `xml:"Font,attr"`
	Size     float64    `xml:"Size,attr"`
	TextCode []TextCode `xml:"TextCode"`
}

// TextCode 文本内容节点
type TextCode struct {
	X      string `xml:"X,attr"`
	Y      string `xml:"Y,attr"`
	DeltaX string `xml:"DeltaX,attr"`
	DeltaY string `xml:"DeltaY,attr"`
	Value  string `xml:",chardata"`
}

// PathObject 路径对象
type PathObject struct {
	ID              string  `xml:"ID,attr"`
	Boundary        string  `xml:"Boundary,attr"`
	LineWidth       float64 `xml:"LineWidth,attr"`
	AbbreviatedData string  `xml:"AbbreviatedData"`
}

// ImageObject 图片对象
type ImageObject struct {
	ID         string `xml:"ID,attr"`
	Boundary   string `xml:"Boundary,attr"`
	ResourceID string `xml:"ResourceID,attr"`
}

// GetDeltaX 获取X轴偏移量数组
// 返回: []float64 偏移量数组, error 错误信息
func (tc *TextCode) GetDeltaX() ([]float64, error) {
	return ParseDeltas(tc.DeltaX)
}

// GetDeltaY 获取Y轴偏移量数组
// 返回: []float64 偏移量数组, error 错误信息
func (tc *TextCode) GetDeltaY() ([]float64, error) {
	return ParseDeltas(tc.DeltaY)
}

// BoundaryBox 解析文本对象外接框
// 返回: Box 矩形对象, error 错误信息
func (t *TextObject) BoundaryBox() (Box, error) {
	return ParseBox(t.Boundary)
}

// BoundaryBox 解析路径对象外接框
// 返回: Box 矩形对象, error 错误信息
func (p *PathObject) BoundaryBox() (Box, error) {
	return ParseBox(p.Boundary)
}

// Path 解析路径对象的绘制指令序列
// 返回: []PathOp 操作序列, error 错误信息
func (p *PathObject) Path() ([]PathOp, error) {
	return ParsePath(p.AbbreviatedData)
}
