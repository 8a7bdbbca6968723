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

// Res 资源文件结构
type Res struct {
	XMLName     xml.Name    `xml:"Res"`
	BaseLoc     string      `xml:"BaseLoc,attr"`
	ColorSpaces ColorSpaces `xml:"ColorSpaces"`
	MultiMedias MultiMedias `xml:"MultiMedias"`
	DrawParams  DrawParams  `xml:"DrawParams"`
}

// ColorSpaces 颜色空间集合
type ColorSpaces struct {
	ColorSpace []ColorSpace `xml:"ColorSpace"`
}

// ColorSpace 颜色空间定义
type ColorSpace struct {
	ID   string `xml:"ID,attr"`
	Type string `xml:"Type,attr"`
}

// MultiMedias 多媒体集合
type MultiMedias struct {
	MultiMedia []MultiMedia `xml:"MultiMedia"`
}

// MultiMedia 多媒体定义
type MultiMedia struct {
	ID        string `xml:"ID,attr"`
	Type      string `xml:"Type,attr"`
	Format    string `xml:"Format,attr"`
	MediaFile string `xml:"MediaFile"`
}

// DrawParams 绘制参数集合
type DrawParams struct {
	DrawParam []DrawParam `xml:"DrawParam"`
}

// DrawParam 绘制参数
type DrawParam struct {
	ID        string  `xml:"ID,attr"`
	Relative  string  `xml:"Relative,attr"`
	LineWidth float64 `xml:"LineWidth,attr"`
}
