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
	"reflect"
	"strconv"
	"testing"
)

func TestParsePos(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pos
		wantErr error
	}{
		{"simple", "10 20", Pos{X: 10, Y: 20}, nil},
		{"negative and fraction", "  1.5\t-2.25 ", Pos{X: 1.5, Y: -2.25}, nil},
		{"scientific", "1e2 -3e-1", Pos{X: 100, Y: -0.3}, nil},
		{"empty", "", Pos{}, ErrInvalidFormat},
		{"one field", "10", Pos{}, ErrInvalidFormat},
		{"three fields", "10 20 30", Pos{}, ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePos(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePos(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePos(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePos(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePosBadNumeral(t *testing.T) {
	_, err := ParsePos("abc 20")
	var fpe *FloatParseError
	if !errors.As(err, &fpe) {
		t.Fatalf("ParsePos error = %v, want FloatParseError", err)
	}
	if fpe.Token != "abc" {
		t.Errorf("FloatParseError.Token = %q, want %q", fpe.Token, "abc")
	}
}

func TestParsePosRoundTrip(t *testing.T) {
	inputs := []string{"0 0", "10 20", "1.5 -2.25", "3.141592653589793 -0.001"}
	for _, in := range inputs {
		p1, err := ParsePos(in)
		if err != nil {
			t.Fatalf("ParsePos(%q) error = %v", in, err)
		}
		out := strconv.FormatFloat(p1.X, 'g', -1, 64) + " " + strconv.FormatFloat(p1.Y, 'g', -1, 64)
		p2, err := ParsePos(out)
		if err != nil {
			t.Fatalf("ParsePos(%q) error = %v", out, err)
		}
		if p1 != p2 {
			t.Errorf("round trip %q -> %q: %+v != %+v", in, out, p1, p2)
		}
	}
}

func TestParseBox(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Box
		wantErr error
	}{
		{"simple", "0 0 210 297", Box{X: 0, Y: 0, W: 210, H: 297}, nil},
		{"offset", "10.5 20.5 100 50", Box{X: 10.5, Y: 20.5, W: 100, H: 50}, nil},
		{"empty", "", Box{}, ErrInvalidFormat},
		{"three fields", "0 0 210", Box{}, ErrInvalidFormat},
		{"five fields", "0 0 210 297 0", Box{}, ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBox(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseBox(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBox(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBox(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBoxBadNumeral(t *testing.T) {
	_, err := ParseBox("0 0 21x 297")
	var fpe *FloatParseError
	if !errors.As(err, &fpe) {
		t.Fatalf("ParseBox error = %v, want FloatParseError", err)
	}
	if fpe.Token != "21x" {
		t.Errorf("FloatParseError.Token = %q, want %q", fpe.Token, "21x")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []PathOp
	}{
		{
			"start move line close",
			"S 0 0 M 10 10 L 20 20 C",
			[]PathOp{
				{Op: OpStart, Args: []float64{0, 0}},
				{Op: OpMove, Args: []float64{10, 10}},
				{Op: OpLine, Args: []float64{20, 20}},
				{Op: OpClose},
			},
		},
		{
			"quadratic",
			"Q 1 2 3 4",
			[]PathOp{{Op: OpQuad, Args: []float64{1, 2, 3, 4}}},
		},
		{
			"cubic",
			"B 1 2 3 4 5 6",
			[]PathOp{{Op: OpCubic, Args: []float64{1, 2, 3, 4, 5, 6}}},
		},
		{
			"arc",
			"A 10 10 0 1 0 30 40",
			[]PathOp{{Op: OpArc, Args: []float64{10, 10, 0, 1, 0, 30, 40}}},
		},
		{
			"empty",
			"",
			[]PathOp{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePath(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown op", "Z"},
		{"missing operand", "Q 1 2 3"},
		{"truncated line", "M 10 10 L 20"},
		{"operand where op expected", "M 10 10 20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.input)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("ParsePath(%q) error = %v, want ErrInvalidFormat", tt.input, err)
			}
		})
	}
}

func TestParsePathBadNumeral(t *testing.T) {
	_, err := ParsePath("L 1 x")
	var fpe *FloatParseError
	if !errors.As(err, &fpe) {
		t.Fatalf("ParsePath error = %v, want FloatParseError", err)
	}
	if fpe.Token != "x" {
		t.Errorf("FloatParseError.Token = %q, want %q", fpe.Token, "x")
	}
}

func TestParseDeltas(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"run length then literal", "g 3 5 2", []float64{5, 5, 5, 2}},
		{"empty", "", []float64{}},
		{"literals only", "1 2.5 -3", []float64{1, 2.5, -3}},
		{"zero count", "g 0 7", []float64{}},
		{"negative count", "g -2 7", []float64{}},
		{"count truncated", "g 2.9 7", []float64{7, 7}},
		{"interleaved", "1 g 2 3 4", []float64{1, 3, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeltas(tt.input)
			if err != nil {
				t.Fatalf("ParseDeltas(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDeltas(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDeltasErrors(t *testing.T) {
	if _, err := ParseDeltas("g 2"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseDeltas(\"g 2\") error = %v, want ErrInvalidFormat", err)
	}
	_, err := ParseDeltas("g x 1")
	var fpe *FloatParseError
	if !errors.As(err, &fpe) {
		t.Fatalf("ParseDeltas error = %v, want FloatParseError", err)
	}
	if fpe.Token != "x" {
		t.Errorf("FloatParseError.Token = %q, want %q", fpe.Token, "x")
	}
}

func TestPathOpArity(t *testing.T) {
	for op, arity := range pathOpArity {
		operands := ""
		for i := 0; i < arity; i++ {
			operands += fmt.Sprintf(" %d", i)
		}
		ops, err := ParsePath(op + operands)
		if err != nil {
			t.Fatalf("ParsePath op %q error = %v", op, err)
		}
		if len(ops) != 1 || len(ops[0].Args) != arity {
			t.Errorf("op %q: got %d ops with %d args, want 1 op with %d args", op, len(ops), len(ops[0].Args), arity)
		}
		if arity > 0 {
			if _, err := ParsePath(op + operands[:len(operands)-2]); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("op %q with missing operand: error = %v, want ErrInvalidFormat", op, err)
			}
		}
	}
}
