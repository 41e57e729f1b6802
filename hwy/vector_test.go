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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiftCopiesLanes(t *testing.T) {
	raw := I16x8{1, 2, 3, 4, 5, 6, 7, 8}
	v := Lift[Int16x8[Neon]](Neon{}, raw)
	raw[0] = 100
	assert.Equal(t, int16(1), v.Lanes[0])
	assert.Equal(t, Neon{}, v.Simd)
}

func TestSplat(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		v := Splat[Int32x8[Simd]](s, int32(-7))
		for i, x := range v.Lanes {
			require.Equal(t, int32(-7), x, "lane %d", i)
		}
		m := Splat[Mask64x4[Simd]](s, true)
		assert.Equal(t, M64x4{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}, m.Lanes)
		assert.Equal(t, M8x16{}, Splat[Mask8x16[Simd]](s, false).Lanes)
	})
}

func TestScalarForms(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		v := Lift[Float64x2[Simd]](s, F64x2{8, 2})
		assert.Equal(t, F64x2{9, 3}, v.AddScalar(1).Lanes)
		assert.Equal(t, F64x2{6, 0}, v.SubScalar(2).Lanes)
		assert.Equal(t, F64x2{-6, 0}, v.ScalarSub(2).Lanes)
		assert.Equal(t, F64x2{4, 1}, v.DivScalar(2).Lanes)
		assert.Equal(t, F64x2{0.5, 2}, v.ScalarDiv(4).Lanes)
		assert.Equal(t, F64x2{24, 6}, v.ScalarMul(3).Lanes)

		u := Lift[Uint8x16[Simd]](s, U8x16{0: 0xF0, 1: 0x0F})
		assert.Equal(t, uint8(0x30), u.AndScalar(0x3C).Lanes[0])
		assert.Equal(t, uint8(0xFF), u.OrScalar(0xF0).Lanes[1])
		assert.Equal(t, uint8(0xC3), u.ScalarXor(0x33).Lanes[0])
		assert.Equal(t, uint8(0xFE), u.SubScalar(2).Lanes[15], "wraps")
		assert.Equal(t, uint8(0x12), u.ScalarSub(0x02).Lanes[0], "0x02 - 0xF0 wraps")
	})
}

func TestMethodsChain(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		x := Lift[Float32x4[Simd]](s, F32x4{-1.5, 2.25, -0, 9})
		got := x.Abs().Sqrt().Neg().Floor()
		want := F32x4{-2, -2, 0, -3}
		if diff := cmp.Diff(want, got.Lanes); diff != "" {
			t.Errorf("chain (-want +got):\n%s", diff)
		}

		sign := Lift[Float32x4[Simd]](s, F32x4{-1, 1, -1, 1})
		assert.Equal(t, F32x4{-1.5, 2.25, 0, 9}, x.Copysign(sign).Abs().Copysign(x).Lanes)
	})
}

func TestMaskSelectsBoundVectors(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		a := Lift[Int64x4[Simd]](s, I64x4{1, 2, 3, 4})
		b := Lift[Int64x4[Simd]](s, I64x4{4, 3, 2, 1})
		m := a.CmpLt(b)
		assert.Equal(t, I64x4{1, 2, 2, 1}, m.SelectInt64x4(a, b).Lanes)
		assert.Equal(t, I64x4{4, 3, 3, 4}, m.SelectInt64x4(b, a).Lanes)
	})
}

func TestMaskOps(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		a := Lift[Mask32x4[Simd]](s, M32x4{math.MaxUint32, 0, math.MaxUint32, 0})
		b := Lift[Mask32x4[Simd]](s, M32x4{math.MaxUint32, math.MaxUint32, 0, 0})
		assert.Equal(t, M32x4{math.MaxUint32, 0, 0, 0}, a.And(b).Lanes)
		assert.Equal(t, M32x4{0, math.MaxUint32, math.MaxUint32, 0}, a.Xor(b).Lanes)
		assert.Equal(t, M32x4{0, 0, math.MaxUint32, 0}, a.AndNot(b).Lanes)
		assert.Equal(t, M32x4{0, math.MaxUint32, 0, math.MaxUint32}, a.Not().Lanes)
	})
}

func TestWidenAndMultiplyWithoutOverflow(t *testing.T) {
	forEachLevel(t, func(t *testing.T, s Simd) {
		var px U8x16
		for i := range px {
			px[i] = uint8(200 + i)
		}
		w := Lift[Uint8x16[Simd]](s, px).Widen()
		got := w.MulScalar(2).Lanes
		for i, x := range got {
			require.Equal(t, uint16(2*(200+i)), x, "lane %d", i)
		}
		assert.Equal(t, px, w.Narrow().Lanes)
	})
}
