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
	"fmt"
	"strconv"
	"strings"
)

// Pos 坐标点
type Pos struct {
	X, Y float64
}

// Box 矩形区域
type Box struct {
	X, Y, W, H float64
}

// ParsePos 解析ST_Pos字符串
// 入参: s 字符串(两个空白分隔的数值)
// 返回: Pos 坐标对象, error 错误信息
func ParsePos(s string) (Pos, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Pos{}, fmt.Errorf("%w: ST_Pos expects 2 fields, got %d", ErrInvalidFormat, len(parts))
	}
	x, err := parseFloat(parts[0])
	if err != nil {
		return Pos{}, err
	}
	y, err := parseFloat(parts[1])
	if err != nil {
		return Pos{}, err
	}
	return Pos{X: x, Y: y}, nil
}

// ParseBox 解析ST_Box字符串
// 入参: s 字符串(x y w h)
// 返回: Box 矩形对象, error 错误信息
func ParseBox(s string) (Box, error) {
	parts := strings.Fields(s)
	if len(parts) != 4 {
		return Box{}, fmt.Errorf("%w: ST_Box expects 4 fields, got %d", ErrInvalidFormat, len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := parseFloat(p)
		if err != nil {
			return Box{}, err
		}
		vals[i] = v
	}
	return Box{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// 路径绘制指令
const (
	OpStart = "S" // 定义子路径起点, 不落笔
	OpMove  = "M" // 移动画笔, 开始新子路径
	OpLine  = "L" // 直线
	OpQuad  = "Q" // 二次贝塞尔曲线
	OpCubic = "B" // 三次贝塞尔曲线
	OpArc   = "A" // 椭圆弧
	OpClose = "C" // 闭合子路径
)

// pathOpArity 指令到操作数个数的分发表
var pathOpArity = map[string]int{
	OpStart: 2,
	OpMove:  2,
	OpLine:  2,
	OpQuad:  4,
	OpCubic: 6,
	OpArc:   7,
	OpClose: 0,
}

// PathOp 路径绘制操作
// Args长度由指令决定: S/M/L为2, Q为4, B为6, A为7, C为0
type PathOp struct {
	Op   string
	Args []float64
}

// ParsePath 解析AbbreviatedData路径字符串
// 入参: s 字符串(空白分隔的指令与操作数序列)
// 返回: []PathOp 操作序列, error 错误信息
func ParsePath(s string) ([]PathOp, error) {
	tokens := strings.Fields(s)
	ops := make([]PathOp, 0, len(tokens)/3)
	for i := 0; i < len(tokens); {
		op := tokens[i]
		i++
		arity, ok := pathOpArity[op]
		if !ok {
			return nil, fmt.Errorf("%w: unknown path op %q", ErrInvalidFormat, op)
		}
		if i+arity > len(tokens) {
			return nil, fmt.Errorf("%w: path op %q expects %d operands, got %d", ErrInvalidFormat, op, arity, len(tokens)-i)
		}
		var args []float64
		if arity > 0 {
			args = make([]float64, arity)
			for j := 0; j < arity; j++ {
				v, err := parseFloat(tokens[i+j])
				if err != nil {
					return nil, err
				}
				args[j] = v
			}
			i += arity
		}
		ops = append(ops, PathOp{Op: op, Args: args})
	}
	return ops, nil
}

// ParseDeltas 解析偏移量数组字符串
// g后跟重复次数与数值, 表示该数值的压缩重复
// 入参: s 字符串
// 返回: []float64 偏移量数组, error 错误信息
func ParseDeltas(s string) ([]float64, error) {
	tokens := strings.Fields(s)
	deltas := make([]float64, 0, len(tokens))
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		i++
		if tok != "g" {
			v, err := parseFloat(tok)
			if err != nil {
				return nil, err
			}
			deltas = append(deltas, v)
			continue
		}
		if i+2 > len(tokens) {
			return nil, fmt.Errorf("%w: g group expects 2 operands, got %d", ErrInvalidFormat, len(tokens)-i)
		}
		count, err := parseFloat(tokens[i])
		if err != nil {
			return nil, err
		}
		v, err := parseFloat(tokens[i+1])
		if err != nil {
			return nil, err
		}
		i += 2
		// 重复次数向零截断, 非正数不展开
		for n := 0; n < int(count); n++ {
			deltas = append(deltas, v)
		}
	}
	return deltas, nil
}

// parseFloat 解析单个浮点数token
// 入参: tok 原始token
// 返回: float64 数值, error 错误信息
func parseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &FloatParseError{Token: tok, Err: err}
	}
	return v, nil
}
