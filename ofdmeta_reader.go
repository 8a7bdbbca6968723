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
	"archive/zip"
	"encoding/json"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Reader OFD文件阅读器
// 独占持有压缩包句柄, 生命周期内不可变
type Reader struct {
	Path            string
	Zip             *zip.Reader
	Closer          io.Closer
	OFD             *OFD
	RootDir         string
	ResMap          map[string]string
	colorSpaceCache map[string]*ColorSpace
	drawParamCache  map[string]*DrawParam
	doc             *Document
}

// Close 关闭阅读器
// 返回: error 错误信息
func (r *Reader) Close() error {
	if r.Closer != nil {
		return r.Closer.Close()
	}
	return nil
}

// init 解析容器引用链: OFD.xml -> DocRoot -> 资源文件
// 任一环节失败则整体失败, 不保留部分结果
// 返回: error 错误信息
func (r *Reader) init() error {
	r.Zip.RegisterDecompressor(zip.Deflate, flate.NewReader)
	data, err := r.readFile("OFD.xml")
	if err != nil {
		return err
	}
	var ofd OFD
	if err := decodeXML("OFD.xml", data, &ofd); err != nil {
		return err
	}
	if len(ofd.DocBody) == 0 {
		return &StructuralDecodeError{Entry: "OFD.xml", Err: errors.New("no DocBody")}
	}
	r.OFD = &ofd
	r.ResMap = make(map[string]string)
	r.colorSpaceCache = make(map[string]*ColorSpace)
	r.drawParamCache = make(map[string]*DrawParam)
	return r.initDoc()
}

// initDoc 读取主文档结构并加载资源描述
// 返回: error 错误信息
func (r *Reader) initDoc() error {
	docRootPath := r.OFD.DocBody[0].DocRoot
	r.RootDir = path.Dir(docRootPath)
	data, err := r.readFile(docRootPath)
	if err != nil {
		return err
	}
	var doc Document
	if err := decodeXML(docRootPath, data, &doc); err != nil {
		return err
	}
	r.doc = &doc
	if doc.CommonData.DocumentRes != "" {
		r.loadRes(doc.CommonData.DocumentRes)
	}
	if doc.CommonData.PublicRes != "" {
		r.loadRes(doc.CommonData.PublicRes)
	}
	return nil
}

// readFile 读取压缩包内的文件
// 入参: name 文件名(区分大小写)
// 返回: []byte 文件内容, error 错误信息
func (r *Reader) readFile(name string) ([]byte, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimPrefix(name, "/")
	for _, f := range r.Zip.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, &ContainerError{Entry: name, Err: err}
			}
			data, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, &ContainerError{Entry: name, Err: err}
			}
			return data, nil
		}
	}
	return nil, &ContainerError{Entry: name, Err: ErrEntryNotFound}
}

// loadRes 加载资源描述文件, 解码失败时跳过
// 入参: resPath 相对文档根目录的资源路径
func (r *Reader) loadRes(resPath string) {
	fullPath := path.Join(r.RootDir, resPath)
	data, err := r.readFile(fullPath)
	if err != nil {
		return
	}
	var res Res
	if err := decodeXML(fullPath, data, &res); err != nil {
		return
	}
	baseDir := path.Dir(fullPath)
	if res.BaseLoc != "" {
		baseDir = path.Join(baseDir, res.BaseLoc)
	}
	for _, mm := range res.MultiMedias.MultiMedia {
		p := strings.TrimSpace(mm.MediaFile)
		if p == "" {
			continue
		}
		r.ResMap[mm.ID] = path.Join(baseDir, p)
	}
	for i := range res.ColorSpaces.ColorSpace {
		cs := &res.ColorSpaces.ColorSpace[i]
		r.colorSpaceCache[cs.ID] = cs
	}
	for i := range res.DrawParams.DrawParam {
		dp := &res.DrawParams.DrawParam[i]
		r.drawParamCache[dp.ID] = dp
	}
}

// Doc 获取主文档结构
// 返回: *Document 文档结构
func (r *Reader) Doc() *Document {
	return r.doc
}

// DocInfo 获取文档元数据
// 返回: *DocInfo 元数据
func (r *Reader) DocInfo() *DocInfo {
	if r.OFD == nil || len(r.OFD.DocBody) == 0 {
		return nil
	}
	return &r.OFD.DocBody[0].DocInfo
}

// Version 获取OFD版本号
// 返回: string 版本号
func (r *Reader) Version() string {
	if r.OFD == nil {
		return ""
	}
	return r.OFD.Version
}

// DocType 获取文档类型
// 返回: string 文档类型
func (r *Reader) DocType() string {
	if r.OFD == nil {
		return ""
	}
	return r.OFD.DocType
}

// DocRoots 获取所有文档根路径
// 返回: []string 路径列表
func (r *Reader) DocRoots() []string {
	var roots []string
	if r.OFD == nil {
		return roots
	}
	for _, body := range r.OFD.DocBody {
		roots = append(roots, body.DocRoot)
	}
	return roots
}

// Attributes 获取展平的文档元数据映射
// 返回: map[string]string 元数据映射
func (r *Reader) Attributes() map[string]string {
	info := r.DocInfo()
	if info == nil {
		return map[string]string{}
	}
	return info.AttributeMap()
}

// CustomData 获取展平的自定义数据映射
// 返回: map[string]string 自定义数据映射
func (r *Reader) CustomData() map[string]string {
	info := r.DocInfo()
	if info == nil {
		return map[string]string{}
	}
	return info.CustomDatas.Map()
}

// CustomDatas 获取自定义数据原始列表
// 返回: []CustomData 自定义数据列表
func (r *Reader) CustomDatas() []CustomData {
	info := r.DocInfo()
	if info == nil || info.CustomDatas == nil {
		return nil
	}
	return info.CustomDatas.CustomData
}

// metaSnapshot 元数据快照
type metaSnapshot struct {
	Attributes  map[string]string `json:"attributes"`
	CustomDatas map[string]string `json:"custom_datas"`
}

// Snapshot 序列化元数据快照
// 返回: []byte JSON数据, error 错误信息
func (r *Reader) Snapshot() ([]byte, error) {
	return json.Marshal(metaSnapshot{
		Attributes:  r.Attributes(),
		CustomDatas: r.CustomData(),
	})
}

// PageContent 获取页面内容
// 入参: page 页面引用
// 返回: *PageContent 页面内容, error 错误信息
func (r *Reader) PageContent(page Page) (*PageContent, error) {
	fullPath := path.Join(r.RootDir, page.BaseLoc)
	data, err := r.readFile(fullPath)
	if err != nil {
		return nil, err
	}
	var content PageContent
	if err := decodeXML(fullPath, data, &content); err != nil {
		return nil, err
	}
	content.ID = page.ID
	return &content, nil
}

// Pages 获取页面引用列表
// 返回: []Page 页面引用列表
func (r *Reader) Pages() []Page {
	if r.doc == nil {
		return nil
	}
	return r.doc.Pages.Page
}

// ColorSpace 按ID查找颜色空间
// 入参: id 颜色空间ID
// 返回: *ColorSpace 颜色空间, bool 是否存在
func (r *Reader) ColorSpace(id string) (*ColorSpace, bool) {
	cs, ok := r.colorSpaceCache[id]
	return cs, ok
}

// DrawParam 按ID查找绘制参数
// 入参: id 绘制参数ID
// 返回: *DrawParam 绘制参数, bool 是否存在
func (r *Reader) DrawParam(id string) (*DrawParam, bool) {
	dp, ok := r.drawParamCache[id]
	return dp, ok
}

// MediaPath 获取多媒体资源的包内完整路径
// 入参: id 资源ID
// 返回: string 完整路径
func (r *Reader) MediaPath(id string) string {
	return r.ResMap[id]
}
