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

package hwy

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLevels = []Simd{Fallback{}, Neon{}, Avx2{}, Wasm128{}}

func forEachLevel(t *testing.T, f func(t *testing.T, s Simd)) {
	for _, s := range allLevels {
		t.Run(s.Level().String(), func(t *testing.T) { f(t, s) })
	}
}

func TestAddFloat32x4(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		a := Lift[Float32x4[Simd]](s, F32x4{1, 2, 3, 4})
		b := Lift[Float32x4[Simd]](s, F32x4{5, 4, 3, 2})
		assert.Equal(t, F32x4{6, 6, 6, 6}, a.Add(b).Lanes)
	})
}

func TestCmpGtMask(t *testing.T) {
	const ones = math.MaxUint32
	forEachLevel(t, func(t *testing.T, s Simd) {
		assert.Equal(t, M32x4{ones, ones, 0, 0}, s.CmpGtF32x4(F32x4{4, 3, 2, 1}, F32x4{1, 2, 2, 4}))
		assert.Equal(t, M32x4{ones, ones, 0, 0}, s.CmpGtI32x4(I32x4{4, 3, 2, 1}, I32x4{1, 2, 2, 4}))
		assert.Equal(t, M32x4{ones, ones, 0, 0}, s.CmpGtU32x4(U32x4{4, 3, 2, 1}, U32x4{1, 2, 2, 4}))
	})
}

func TestCombineThenSplit(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		lo, hi := F32x4{1, 2, 3, 4}, F32x4{5, 6, 7, 8}
		w := s.CombineF32x4(lo, hi)
		require.Equal(t, F32x8{1, 2, 3, 4, 5, 6, 7, 8}, w)
		gotLo, gotHi := s.SplitF32x8(w)
		assert.Equal(t, lo, gotLo)
		assert.Equal(t, hi, gotHi)
	})
}

func TestNarrowMasksLowBits(t *testing.T) {
	var in U16x16
	for i := range in {
		in[i] = []uint16{0, 255, 256, 511}[i%4]
	}
	forEachLevel(t, func(t *testing.T, s Simd) {
		got := s.NarrowU16x16(in)
		for i, x := range got {
			assert.Equal(t, []uint8{0, 255, 0, 255}[i%4], x, "lane %d", i)
		}
		wide := s.NarrowU32x8(U32x8{0, 0xFFFF, 0x10000, 0x1FFFF, 7, 8, 9, 0xABCD1234})
		assert.Equal(t, U16x8{0, 0xFFFF, 0, 0xFFFF, 7, 8, 9, 0x1234}, wide)
	})
}

func TestMaddUnfusedOnFallback(t *testing.T) {
	a := F64x2{0.1, 3}
	b := F64x2{10, 1.0 / 3}
	c := F64x2{-1, 1}
	got := Fallback{}.MaddF64x2(a, b, c)
	for i := range got {
		want := float64(a[i]*b[i]) + c[i]
		assert.Equal(t, want, got[i], "lane %d", i)
	}
}

func TestSplitInvertsCombine(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	forEachLevel(t, func(t *testing.T, s Simd) {
		for range 16 {
			var v U8x64
			for i := range v {
				v[i] = uint8(r.Uint32())
			}
			lo, hi := s.SplitU8x64(v)
			assert.Equal(t, v, s.CombineU8x32(lo, hi))

			var a, b I64x2
			a[0], a[1], b[0], b[1] = r.Int64(), -r.Int64(), r.Int64(), -r.Int64()
			x, y := s.SplitI64x4(s.CombineI64x2(a, b))
			assert.Equal(t, a, x)
			assert.Equal(t, b, y)

			m := M16x16{0: math.MaxUint16, 15: math.MaxUint16}
			mlo, mhi := s.SplitM16x16(m)
			assert.Equal(t, m, s.CombineM16x8(mlo, mhi))
		}
	})
}

func TestNarrowInvertsWiden(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		for base := 0; base < 256; base += 16 {
			var x U8x16
			for i := range x {
				x[i] = uint8(base + i)
			}
			w := s.WidenU8x16(x)
			for i, lane := range w {
				require.Equal(t, uint16(x[i]), lane)
			}
			assert.Equal(t, x, s.NarrowU16x16(w))
		}
		v := U16x8{0, 1, 0x7FFF, 0x8000, 0xFFFF, 42, 4242, 65000}
		assert.Equal(t, v, s.NarrowU32x8(s.WidenU16x8(v)))
	})
}

func TestUnzipInvertsZip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	forEachLevel(t, func(t *testing.T, s Simd) {
		for range 16 {
			var a, b I16x8
			for i := range a {
				a[i], b[i] = int16(r.Uint32()), int16(r.Uint32())
			}
			ea, eb := s.UnzipI16x8(s.ZipI16x8(a, b))
			assert.Equal(t, a, ea)
			assert.Equal(t, b, eb)

			var f, g F32x8
			for i := range f {
				f[i], g[i] = r.Float32(), -r.Float32()
			}
			ef, eg := s.UnzipF32x8(s.ZipF32x8(f, g))
			assert.Equal(t, f, ef)
			assert.Equal(t, g, eg)

			var p, q U8x64
			for i := range p {
				p[i], q[i] = uint8(r.Uint32()), uint8(r.Uint32())
			}
			ep, eq := s.UnzipU8x64(s.ZipU8x64(p, q))
			assert.Equal(t, p, ep)
			assert.Equal(t, q, eq)
		}
	})
}

func TestZipInterleavesLowThenHigh(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		lo, hi := s.ZipU32x8(U32x8{0, 1, 2, 3, 4, 5, 6, 7}, U32x8{10, 11, 12, 13, 14, 15, 16, 17})
		assert.Equal(t, U32x8{0, 10, 1, 11, 2, 12, 3, 13}, lo)
		assert.Equal(t, U32x8{4, 14, 5, 15, 6, 16, 7, 17}, hi)

		even, odd := s.UnzipF64x4(F64x4{0, 1, 2, 3}, F64x4{4, 5, 6, 7})
		assert.Equal(t, F64x4{0, 2, 4, 6}, even)
		assert.Equal(t, F64x4{1, 3, 5, 7}, odd)
	})
}

func TestSelectIsPerLane(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	forEachLevel(t, func(t *testing.T, s Simd) {
		for range 16 {
			var m8 M8x32
			var a8, b8 I8x32
			for i := range m8 {
				if r.IntN(2) == 1 {
					m8[i] = math.MaxUint8
				}
				a8[i], b8[i] = int8(r.Uint32()), int8(r.Uint32())
			}
			got8 := s.SelectI8x32(m8, a8, b8)
			for i := range got8 {
				assert.Equal(t, pick(m8[i] != 0, a8[i], b8[i]), got8[i])
			}

			var m64 M64x2
			var a64, b64 F64x2
			for i := range m64 {
				if r.IntN(2) == 1 {
					m64[i] = math.MaxUint64
				}
				a64[i], b64[i] = r.NormFloat64(), r.NormFloat64()
			}
			got64 := s.SelectF64x2(m64, a64, b64)
			for i := range got64 {
				assert.Equal(t, pick(m64[i] != 0, a64[i], b64[i]), got64[i])
			}

			var m16 M16x16
			var a16, b16 U16x16
			for i := range m16 {
				if r.IntN(2) == 1 {
					m16[i] = math.MaxUint16
				}
				a16[i], b16[i] = uint16(r.Uint32()), uint16(r.Uint32())
			}
			got16 := s.SelectU16x16(m16, a16, b16)
			for i := range got16 {
				assert.Equal(t, pick(m16[i] != 0, a16[i], b16[i]), got16[i])
			}
		}
	})
}

func TestMinMaxNaNContracts(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	a := F32x4{nan, 1, negZero, 0}
	b := F32x4{1, nan, 0, negZero}
	forEachLevel(t, func(t *testing.T, s Simd) {
		mn := s.MinF32x4(a, b)
		assert.True(t, isNaN(mn[0]) && isNaN(mn[1]), "min propagates NaN: %v", mn)
		assert.True(t, math.Signbit(float64(mn[2])) && math.Signbit(float64(mn[3])), "min orders -0 below +0: %v", mn)

		mx := s.MaxF32x4(a, b)
		assert.True(t, isNaN(mx[0]) && isNaN(mx[1]), "max propagates NaN: %v", mx)
		assert.False(t, math.Signbit(float64(mx[2])) || math.Signbit(float64(mx[3])), "max orders +0 above -0: %v", mx)

		// The precise forms return the second operand unless the first
		// strictly wins.
		pmn := s.MinPreciseF32x4(a, b)
		assert.Equal(t, float32(1), pmn[0])
		assert.True(t, isNaN(pmn[1]))
		assert.False(t, math.Signbit(float64(pmn[2])))
		assert.True(t, math.Signbit(float64(pmn[3])))

		pmx := s.MaxPreciseF32x4(a, b)
		assert.Equal(t, float32(1), pmx[0])
		assert.True(t, isNaN(pmx[1]))
		assert.False(t, math.Signbit(float64(pmx[2])))
		assert.True(t, math.Signbit(float64(pmx[3])))
	})
}

func TestConvertU32Saturates(t *testing.T) {
	in := F32x8{float32(math.NaN()), -1, 0.99, 1.5, 2147483648, 4294967040, 4294967296, float32(math.Inf(1))}
	want := U32x8{0, 0, 0, 1, 2147483648, 4294967040, math.MaxUint32, math.MaxUint32}
	forEachLevel(t, func(t *testing.T, s Simd) {
		assert.Equal(t, want, s.ConvertU32F32x8(in))
	})
}

func TestShiftCountIsMasked(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		v := s.SplatI8x16(-64)
		assert.Equal(t, s.SplatI8x16(-32), s.ShrI8x16(v, 1))
		assert.Equal(t, s.SplatI8x16(-32), s.ShrI8x16(v, 9))
		assert.Equal(t, s.SplatI8x16(-128), s.ShlI8x16(v, 1))
		assert.Equal(t, s.SplatU64x2(1<<62), s.ShrU64x2(s.SplatU64x2(1<<63), 65))
		assert.Equal(t, s.SplatI64x2(-1<<62), s.ShrI64x2(s.SplatI64x2(-1<<63), 1))
	})
}

func TestReinterpretKeepsBytes(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		v := Lift[Int32x4[Simd]](s, I32x4{-1, 0, 0x01020304, math.MinInt32})
		got := v.ReinterpretU8().Lanes
		assert.Equal(t, U8x16{
			0xFF, 0xFF, 0xFF, 0xFF,
			0, 0, 0, 0,
			4, 3, 2, 1,
			0, 0, 0, 0x80,
		}, got)
	})
}

func isNaN(x float32) bool { return x != x }
