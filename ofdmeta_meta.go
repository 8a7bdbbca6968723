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
	"encoding/xml"
	"strings"
)

// OFD OFD入口结构
// 代表OFD文档的根节点
type OFD struct {
	XMLName xml.Name  `xml:"OFD"`
	Version string    `xml:"Version,attr"`
	DocType string    `xml:"DocType,attr"`
	DocBody []DocBody `xml:"DocBody"`
}

// DocBody 文档体信息
// 包含文档元数据和根节点路径
type DocBody struct {
	DocInfo    DocInfo `xml:"DocInfo"`
	DocRoot    string  `xml:"DocRoot"`
	Signatures string  `xml:"Signatures"`
}

// DocInfo 文档元数据
type DocInfo struct {
	DocID          string       `xml:"DocID"`
	Title          string       `xml:"Title"`
	Author         string       `xml:"Author"`
	Subject        string       `xml:"Subject"`
	Abstract       string       `xml:"Abstract"`
	CreationDate   string       `xml:"CreationDate"`
	ModDate        string       `xml:"ModDate"`
	DocUsage       string       `xml:"DocUsage"`
	Cover          string       `xml:"Cover"`
	Keywords       *Keywords    `xml:"Keywords"`
	Creator        string       `xml:"Creator"`
	CreatorVersion string       `xml:"CreatorVersion"`
	CustomDatas    *CustomDatas `xml:"CustomDatas"`
}

// Keywords 关键字集合
type Keywords struct {
	Keyword []string `xml:"Keyword"`
}

// CustomDatas 自定义数据集合
type CustomDatas struct {
	CustomData []CustomData `xml:"CustomData"`
}

// CustomData 自定义数据项
type CustomData struct {
	Name  string `xml:"Name,attr"`
	Value string `xml:",chardata"`
}

// AttributeMap 将文档元数据展平为字符串映射
// 空的标量字段不写入映射; Keywords节点存在时总是写入(可为空串)
// 返回: map[string]string 元数据映射
func (d *DocInfo) AttributeMap() map[string]string {
	m := make(map[string]string)
	addAttr(m, "DocId", d.DocID)
	addAttr(m, "Title", d.Title)
	addAttr(m, "Author", d.Author)
	addAttr(m, "Subject", d.Subject)
	addAttr(m, "Abstract", d.Abstract)
	addAttr(m, "CreationDate", d.CreationDate)
	addAttr(m, "ModDate", d.ModDate)
	addAttr(m, "DocUsage", d.DocUsage)
	addAttr(m, "Cover", d.Cover)
	addAttr(m, "Creator", d.Creator)
	addAttr(m, "CreatorVersion", d.CreatorVersion)
	if d.Keywords != nil {
		m["Keywords"] = strings.Join(d.Keywords.Keyword, ",")
	}
	return m
}

// addAttr 仅在值非空时写入映射
// 入参: m 目标映射, key 键名, val 值
func addAttr(m map[string]string, key, val string) {
	if val != "" {
		m[key] = val
	}
}

// Map 将自定义数据展平为字符串映射
// 无Name属性的数据项丢弃; 同名数据项保留最先声明的值
// (逆序遍历写入, 后写覆盖先写, 最终留下最早声明者)
// 返回: map[string]string 自定义数据映射
func (c *CustomDatas) Map() map[string]string {
	m := make(map[string]string)
	if c == nil {
		return m
	}
	for i := len(c.CustomData) - 1; i >= 0; i-- {
		data := c.CustomData[i]
		if data.Name == "" {
			continue
		}
		m[data.Name] = data.Value
	}
	return m
}
