// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package decompose

import (
	"errors"
	"strings"
	"testing"

	"github.com/ajroetker/go-lanes/cmd/vecgen/arch"
	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/google/go-cmp/cmp"
)

func render(im *arch.Impl) string {
	var lines []string
	for _, s := range im.Stmts {
		lines = append(lines, arch.FormatStmt(s))
	}
	var results []string
	for _, r := range im.Results {
		results = append(results, arch.Format(r))
	}
	return strings.Join(append(lines, "return "+strings.Join(results, ", ")), "\n")
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		op    string
		shape string
		want  []string
	}{
		{"add", "f32x8", []string{
			"a0, a1 := split[F32x8, F32x4](a)",
			"b0, b1 := split[F32x8, F32x4](b)",
			"return combine[F32x4, F32x8](s.AddF32x4(a0, b0), s.AddF32x4(a1, b1))",
		}},
		{"splat", "m32x16", []string{
			"h := s.SplatM32x8(x)",
			"return combine[M32x8, M32x16](h, h)",
		}},
		{"cmp_lt", "i16x16", []string{
			"a0, a1 := split[I16x16, I16x8](a)",
			"b0, b1 := split[I16x16, I16x8](b)",
			"return combine[M16x8, M16x16](s.CmpLtI16x8(a0, b0), s.CmpLtI16x8(a1, b1))",
		}},
		{"select", "f64x4", []string{
			"m0, m1 := split[M64x4, M64x2](m)",
			"a0, a1 := split[F64x4, F64x2](a)",
			"b0, b1 := split[F64x4, F64x2](b)",
			"return combine[F64x2, F64x4](s.SelectF64x2(m0, a0, b0), s.SelectF64x2(m1, a1, b1))",
		}},
		{"shr", "u32x16", []string{
			"a0, a1 := split[U32x16, U32x8](a)",
			"return combine[U32x8, U32x16](s.ShrU32x8(a0, n), s.ShrU32x8(a1, n))",
		}},
		{"zip", "u8x32", []string{
			"a0, a1 := split[U8x32, U8x16](a)",
			"b0, b1 := split[U8x32, U8x16](b)",
			"lo0, lo1 := s.ZipU8x16(a0, b0)",
			"hi0, hi1 := s.ZipU8x16(a1, b1)",
			"return combine[U8x16, U8x32](lo0, lo1), combine[U8x16, U8x32](hi0, hi1)",
		}},
		{"unzip", "f32x8", []string{
			"a0, a1 := split[F32x8, F32x4](a)",
			"b0, b1 := split[F32x8, F32x4](b)",
			"ae, ao := s.UnzipF32x4(a0, a1)",
			"be, bo := s.UnzipF32x4(b0, b1)",
			"return combine[F32x4, F32x8](ae, be), combine[F32x4, F32x8](ao, bo)",
		}},
		{"widen", "u8x32", []string{
			"a0, a1 := split[U8x32, U8x16](a)",
			"return combine[U16x16, U16x32](s.WidenU8x16(a0), s.WidenU8x16(a1))",
		}},
		{"reinterpret_u8", "i64x8", []string{
			"a0, a1 := split[I64x8, I64x4](a)",
			"return combine[U8x32, U8x64](s.ReinterpretU8I64x4(a0), s.ReinterpretU8I64x4(a1))",
		}},
		{"madd", "f32x16", []string{
			"a0, a1 := split[F32x16, F32x8](a)",
			"b0, b1 := split[F32x16, F32x8](b)",
			"c0, c1 := split[F32x16, F32x8](c)",
			"return combine[F32x8, F32x16](s.MaddF32x8(a0, b0, c0), s.MaddF32x8(a1, b1, c1))",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.op+"/"+tt.shape, func(t *testing.T) {
			s, err := catalog.ParseShape(tt.shape)
			if err != nil {
				t.Fatal(err)
			}
			op, ok := catalog.Lookup(s, tt.op, true)
			if !ok {
				t.Fatalf("%s has no %s", s, tt.op)
			}
			im, err := Decompose(op, s)
			if err != nil {
				t.Fatalf("Decompose: %v", err)
			}
			if im.Receiver != Receiver {
				t.Errorf("receiver = %q, want %q", im.Receiver, Receiver)
			}
			if diff := cmp.Diff(strings.Join(tt.want, "\n"), render(im)); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
			sig, _ := op.Signature(s)
			if diff := cmp.Diff(sig.ResultTypes(), im.ResultTypes()); diff != "" {
				t.Errorf("result types (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNotDecomposable(t *testing.T) {
	tests := []struct {
		op    catalog.Op
		shape string
	}{
		{catalog.Op{Name: "add", Kind: catalog.Binary}, "f32x4"},
		{catalog.Op{Name: "combine", Kind: catalog.Combine}, "f32x8"},
		{catalog.Op{Name: "split", Kind: catalog.Split}, "f32x8"},
		{catalog.Op{Name: "load2", Kind: catalog.LoadInterleaved, Block: 1, Count: 2}, "f32x8"},
		// narrow from u16x16 would need narrow on u16x8, which does not exist.
		{catalog.Op{Name: "narrow", Kind: catalog.WidenNarrow, Target: catalog.S(catalog.UnsignedInt, 8, 16)}, "u16x16"},
		{catalog.Op{Name: "popcount", Kind: catalog.Unary}, "u8x32"},
	}
	for _, tt := range tests {
		t.Run(tt.op.Name+"/"+tt.shape, func(t *testing.T) {
			s, err := catalog.ParseShape(tt.shape)
			if err != nil {
				t.Fatal(err)
			}
			_, err = Decompose(tt.op, s)
			if !errors.Is(err, ErrNotDecomposable) {
				t.Errorf("Decompose(%s, %s) = %v, want ErrNotDecomposable", tt.op.Name, s, err)
			}
		})
	}
}

// TestEveryWidePair decomposes every catalog pair wider than 128 bits
// that has a halfwise form.
func TestEveryWidePair(t *testing.T) {
	for _, p := range catalog.Pairs(true) {
		if p.Shape.Width() == catalog.MinWidth {
			continue
		}
		switch p.Op.Kind {
		case catalog.Combine, catalog.Split:
			continue
		}
		if p.Op.Name == "narrow" && p.Shape.Width() == 256 {
			continue
		}
		im, err := Decompose(p.Op, p.Shape)
		if err != nil {
			t.Errorf("%s: %v", p.Method(), err)
			continue
		}
		sig, _ := p.Op.Signature(p.Shape)
		if diff := cmp.Diff(sig.ResultTypes(), im.ResultTypes()); diff != "" {
			t.Errorf("%s result types (-want +got):\n%s", p.Method(), diff)
		}
	}
}
