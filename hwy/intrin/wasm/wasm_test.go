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

package wasm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPminPmax(t *testing.T) {
	nan := float32(math.NaN())
	a := Cast[V128]([4]float32{1, nan, 3, 0})
	b := Cast[V128]([4]float32{2, 5, nan, float32(math.Copysign(0, -1))})

	got := Cast[[4]float32](F32x4Pmin(a, b))
	assert.Equal(t, float32(1), got[0])
	assert.True(t, math.IsNaN(float64(got[1])), "pmin keeps a when either is NaN")
	assert.Equal(t, float32(3), got[2])
	assert.False(t, math.Signbit(float64(got[3])))

	got = Cast[[4]float32](F32x4Pmax(a, b))
	assert.Equal(t, float32(2), got[0])
	assert.True(t, math.IsNaN(float64(got[1])))
	assert.Equal(t, float32(3), got[2])

	got = Cast[[4]float32](F32x4Min(a, b))
	assert.True(t, math.IsNaN(float64(got[1])))
	assert.True(t, math.IsNaN(float64(got[2])))
	assert.True(t, math.Signbit(float64(got[3])))
}

func TestShiftCountWraps(t *testing.T) {
	a := I16x8Splat(-4)
	assert.Equal(t, I16x8Splat(-8), I16x8Shl(a, 1))
	assert.Equal(t, I16x8Splat(-8), I16x8Shl(a, 17), "17 mod 16 is 1")
	assert.Equal(t, I16x8Splat(-2), I16x8Shr(a, 1))
	assert.Equal(t, U16x8Splat(0x7FFE), U16x8Shr(a, 1))
	assert.Equal(t, a, I16x8Shr(a, 16))
}

func TestShuffleIndexesBothOperands(t *testing.T) {
	var a, b V128
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(100 + i)
	}
	got := I8x16Shuffle(a, b, [16]uint8{0, 16, 15, 31, 33})
	assert.Equal(t, []byte{0, 100, 15, 115, 1}, got[:5])
}

func TestNarrowSaturates(t *testing.T) {
	a := Cast[V128]([8]int16{-1, 0, 255, 256, 300, 1, 2, 3})
	got := U8x16NarrowI16x8(a, I16x8Splat(7))
	assert.Equal(t, V128{0, 0, 255, 255, 255, 1, 2, 3, 7, 7, 7, 7, 7, 7, 7, 7}, got)

	w := Cast[V128]([4]int32{-7, 70000, 65535, 9})
	assert.Equal(t, [8]uint16{0, 65535, 65535, 9, 0, 65535, 65535, 9}, Cast[[8]uint16](U16x8NarrowI32x4(w, w)))
}

func TestExtendAndExtmul(t *testing.T) {
	var a V128
	for i := range a {
		a[i] = byte(250 + i%6)
	}
	lo := Cast[[8]uint16](U16x8ExtendLowU8x16(a))
	hi := Cast[[8]uint16](U16x8ExtendHighU8x16(a))
	assert.Equal(t, uint16(250), lo[0])
	assert.Equal(t, uint16(a[8]), hi[0])

	m := Cast[[8]uint16](U16x8ExtmulLowU8x16(a, a))
	assert.Equal(t, uint16(250*250), m[0])
	assert.Equal(t, uint16(255*255), m[5])
}

func TestBitwise(t *testing.T) {
	a := U32x4Splat(0xF0F0F0F0)
	b := U32x4Splat(0xFF00FF00)
	assert.Equal(t, U32x4Splat(0x00F000F0), V128Andnot(a, b))
	assert.Equal(t, U32x4Splat(0x0F0F0F0F), V128Not(a))
	assert.Equal(t, U32x4Splat(0xF0F0FF00), V128Bitselect(a, b, U32x4Splat(0xFFFF0000)))
	assert.Equal(t, U32x4Splat(0x0FF00FF0), V128Xor(a, b))
}

func TestTruncSat(t *testing.T) {
	a := Cast[V128]([4]float32{float32(math.NaN()), -1, 7.5, 1e10})
	assert.Equal(t, [4]uint32{0, 0, 7, math.MaxUint32}, Cast[[4]uint32](U32x4TruncSatF32x4(a)))
}

func TestUnsignedCompare(t *testing.T) {
	a := U8x16Splat(200)
	b := U8x16Splat(100)
	assert.Equal(t, U8x16Splat(0xFF), U8x16Gt(a, b))
	assert.Equal(t, U8x16Splat(0), I8x16Gt(a, b), "200 is negative as a signed byte")
}
