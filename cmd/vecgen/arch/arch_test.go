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

package arch

import (
	"errors"
	"strings"
	"testing"

	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	f32x4  = catalog.S(catalog.Float, 32, 4)
	f32x8  = catalog.S(catalog.Float, 32, 8)
	f32x16 = catalog.S(catalog.Float, 32, 16)
	i8x16  = catalog.S(catalog.SignedInt, 8, 16)
	u16x16 = catalog.S(catalog.UnsignedInt, 16, 16)
	u64x2  = catalog.S(catalog.UnsignedInt, 64, 2)
)

func TestGoName(t *testing.T) {
	tests := []struct {
		native, want string
	}{
		{"vaddq_f32", "VaddqF32"},
		{"vdupq_n_s64", "VdupqNS64"},
		{"_mm256_cmpgt_epi32", "Mm256CmpgtEpi32"},
		{"_mm_castsi128_ps", "MmCastsi128Ps"},
		{"f32x4_add", "F32x4Add"},
		{"u16x8_extend_low_u8x16", "U16x8ExtendLowU8x16"},
		{"v128_andnot", "V128Andnot"},
	}
	for _, tt := range tests {
		if got := GoName(tt.native); got != tt.want {
			t.Errorf("GoName(%q) = %q, want %q", tt.native, got, tt.want)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"fallback", "NEON", "Avx2", "wasm128"} {
		tr, err := ByName(name)
		require.NoError(t, err, name)
		assert.True(t, strings.EqualFold(name, tr.Name()))
	}
	_, err := ByName("avx512")
	assert.ErrorContains(t, err, "Fallback, Neon, Avx2, Wasm128")
}

func TestNativeType(t *testing.T) {
	tests := []struct {
		tr    Translator
		shape catalog.Shape
		want  string
	}{
		{Fallback(), f32x16, "[16]float32"},
		{Neon(), f32x4, "float32x4_t"},
		{Neon(), f32x8, "float32x4_t x2"},
		{Neon(), catalog.S(catalog.UnsignedInt, 8, 8), "uint8x8_t"},
		{Avx2(), f32x8, "__m256"},
		{Avx2(), catalog.S(catalog.Float, 64, 8), "__m256d x2"},
		{Avx2(), i8x16, "__m128i"},
		{Wasm128(), f32x16, "v128 x4"},
	}
	for _, tt := range tests {
		r, err := tt.tr.NativeType(tt.shape)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.String(), "%s %s", tt.tr.Name(), tt.shape)
	}

	bad := []struct {
		tr    Translator
		shape catalog.Shape
	}{
		{Fallback(), catalog.S(catalog.Float, 16, 8)},
		{Neon(), catalog.S(catalog.Float, 32, 32)},
		{Avx2(), catalog.S(catalog.UnsignedInt, 8, 8)},
		{Wasm128(), catalog.S(catalog.SignedInt, 32, 3)},
	}
	for _, tt := range bad {
		_, err := tt.tr.NativeType(tt.shape)
		assert.ErrorIs(t, err, ErrWidth, "%s %s", tt.tr.Name(), tt.shape)
	}
}

func TestUnknownOp(t *testing.T) {
	op := catalog.Op{Name: "popcount", Kind: catalog.Unary}
	for _, tr := range All() {
		_, err := tr.Translate(op, f32x4)
		assert.ErrorIs(t, err, ErrUnknownOp, tr.Name())
		assert.False(t, errors.Is(err, ErrDeclined), tr.Name())
	}
}

func TestDeclined(t *testing.T) {
	add, _ := catalog.Lookup(f32x4, "add", false)
	zip, _ := catalog.Lookup(f32x8, "zip", false)
	narrow, _ := catalog.Lookup(u16x16, "narrow", true)
	tests := []struct {
		tr       Translator
		op       catalog.Op
		shape    catalog.Shape
		declines bool
	}{
		{Fallback(), add, f32x16, false},
		{Neon(), add, f32x4, false},
		{Neon(), add, f32x8, true},
		{Neon(), narrow, u16x16, false},
		{Avx2(), add, f32x8, false},
		{Avx2(), add, f32x16, true},
		{Avx2(), zip, f32x8, true},
		{Avx2(), narrow, u16x16, false},
		{Wasm128(), add, f32x8, true},
		{Wasm128(), narrow, u16x16, false},
	}
	for _, tt := range tests {
		_, err := tt.tr.Translate(tt.op, tt.shape)
		if tt.declines {
			assert.ErrorIs(t, err, ErrDeclined, "%s %s %s", tt.tr.Name(), tt.op.Name, tt.shape)
		} else {
			assert.NoError(t, err, "%s %s %s", tt.tr.Name(), tt.op.Name, tt.shape)
		}
	}
}

// body renders an Impl the way the emitter lays it out.
func body(im *Impl) string {
	var lines []string
	for _, s := range im.Stmts {
		lines = append(lines, FormatStmt(s))
	}
	var results []string
	for _, r := range im.Results {
		results = append(results, Format(r))
	}
	if im.Named {
		return strings.Join(append(lines, "return"), "\n")
	}
	return strings.Join(append(lines, "return "+strings.Join(results, ", ")), "\n")
}

func TestTranslations(t *testing.T) {
	tests := []struct {
		tr    Translator
		op    string
		shape catalog.Shape
		want  string
	}{
		{Neon(), "add", f32x4, "return F32x4(neon.VaddqF32(neon.Float32x4(a), neon.Float32x4(b)))"},
		{Neon(), "madd", f32x4, "return F32x4(neon.VfmaqF32(neon.Float32x4(c), neon.Float32x4(a), neon.Float32x4(b)))"},
		{Neon(), "shr", i8x16, "k := neon.VdupqNS8(-int8(n & 7))\nreturn I8x16(neon.VshlqS8(neon.Int8x16(a), k))"},
		{Avx2(), "add", f32x8, "return F32x8(x86.Mm256AddPs(x86.M256(a), x86.M256(b)))"},
		{Avx2(), "cmp_lt", f32x4, "return x86.Cast[M32x4](x86.MmCmpPs(x86.M128(a), x86.M128(b), x86.CmpLtOQ))"},
		{Avx2(), "shl", catalog.S(catalog.SignedInt, 32, 8),
			"k := int(n & 31)\nreturn x86.Cast[I32x8](x86.Mm256SlliEpi32(x86.Cast[x86.M256i](a), k))"},
		{Wasm128(), "add", f32x4, "return wasm.Cast[F32x4](wasm.F32x4Add(wasm.Cast[wasm.V128](a), wasm.Cast[wasm.V128](b)))"},
		{Wasm128(), "cmp_lt", u64x2,
			"bias := wasm.I64x2Splat(-0x8000000000000000)\n" +
				"return wasm.Cast[M64x2](wasm.I64x2Lt(wasm.V128Xor(wasm.Cast[wasm.V128](a), bias), wasm.V128Xor(wasm.Cast[wasm.V128](b), bias)))"},
		{Fallback(), "add", f32x4, "for i := range r {\n\tr[i] = a[i] + b[i]\n}\nreturn"},
		{Fallback(), "shl", i8x16, "for i := range r {\n\tr[i] = a[i] << (n & 7)\n}\nreturn"},
		{Fallback(), "split", f32x8, "return lower[F32x8, F32x4](a), upper[F32x8, F32x4](a)"},
		{Neon(), "combine", f32x4, "return combine[F32x4, F32x8](a, b)"},
	}
	for _, tt := range tests {
		t.Run(tt.tr.Name()+"/"+tt.op+"/"+tt.shape.String(), func(t *testing.T) {
			op, ok := catalog.Lookup(tt.shape, tt.op, true)
			require.True(t, ok)
			im, err := tt.tr.Translate(op, tt.shape)
			require.NoError(t, err)
			assert.Equal(t, tt.want, body(im))
		})
	}
}

// TestResultTypes checks every native translation against its signature.
func TestResultTypes(t *testing.T) {
	for _, tr := range All() {
		for _, p := range catalog.Pairs(true) {
			im, err := tr.Translate(p.Op, p.Shape)
			if errors.Is(err, ErrDeclined) {
				continue
			}
			require.NoError(t, err, "%s %s", tr.Name(), p.Method())
			sig, err := p.Op.Signature(p.Shape)
			require.NoError(t, err)
			assert.Equal(t, sig.ResultTypes(), im.ResultTypes(), "%s %s", tr.Name(), p.Method())
		}
	}
}

func TestZipIndices(t *testing.T) {
	lo, hi := zipIndices(catalog.S(catalog.Float, 32, 4))
	assert.Equal(t, []int{0, 1, 2, 3, 16, 17, 18, 19, 4, 5, 6, 7, 20, 21, 22, 23}, lo)
	assert.Equal(t, []int{8, 9, 10, 11, 24, 25, 26, 27, 12, 13, 14, 15, 28, 29, 30, 31}, hi)

	even, odd := unzipIndices(catalog.S(catalog.UnsignedInt, 16, 8))
	assert.Equal(t, []int{0, 1, 4, 5, 8, 9, 12, 13, 16, 17, 20, 21, 24, 25, 28, 29}, even)
	assert.Equal(t, []int{2, 3, 6, 7, 10, 11, 14, 15, 18, 19, 22, 23, 26, 27, 30, 31}, odd)
}
