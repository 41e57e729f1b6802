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

package neon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVaddqWraps(t *testing.T) {
	a := VdupqNU8(250)
	b := VdupqNU8(10)
	assert.Equal(t, VdupqNU8(4), VaddqU8(a, b))
	assert.Equal(t, VdupqNS8(-128), VaddqS8(VdupqNS8(127), VdupqNS8(1)))
}

func TestVminqPropagatesNaN(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	a := Float32x4{1, nan, negZero, 5}
	b := Float32x4{2, 3, 0, nan}
	got := VminqF32(a, b)
	assert.Equal(t, float32(1), got[0])
	assert.True(t, math.IsNaN(float64(got[1])))
	assert.True(t, math.Signbit(float64(got[2])), "min(-0, +0) is -0")
	assert.True(t, math.IsNaN(float64(got[3])))

	got = VmaxqF32(a, b)
	assert.Equal(t, float32(2), got[0])
	assert.False(t, math.Signbit(float64(got[2])), "max(-0, +0) is +0")
}

func TestCompareMasks(t *testing.T) {
	nan := math.NaN()
	a := Float64x2{1, nan}
	b := Float64x2{1, nan}
	assert.Equal(t, Uint64x2{math.MaxUint64, 0}, VceqqF64(a, b))
	assert.Equal(t, Uint64x2{math.MaxUint64, 0}, VcleqF64(a, b))
	assert.Equal(t, Uint64x2{}, VcltqF64(a, b))
	assert.Equal(t, Uint8x16{0: 0xFF, 15: 0xFF}, VcgtqS8(Int8x16{0: 1, 15: 0}, Int8x16{0: 0, 15: -1}))
	assert.Equal(t, Uint8x16{}, VcgtqU8(Uint8x16{15: 0}, Uint8x16{15: 255}))
}

func TestVbslqIsBitwise(t *testing.T) {
	m := Uint32x4{0xFFFFFFFF, 0, 0x80000000, 0x7FFFFFFF}
	a := VdupqNU32(0xAAAAAAAA)
	b := VdupqNU32(0x55555555)
	assert.Equal(t, Uint32x4{0xAAAAAAAA, 0x55555555, 0xD5555555, 0x2AAAAAAA}, VbslqU32(m, a, b))
}

func TestVfmaqAccumulatesIntoFirst(t *testing.T) {
	acc := VdupqNF64(1)
	x := VdupqNF64(2)
	y := VdupqNF64(3)
	assert.Equal(t, VdupqNF64(7), VfmaqF64(acc, x, y))

	// Fused: 1+2^-30 squared keeps the 2^-60 term that a separate multiply drops.
	e := 1 + math.Ldexp(1, -30)
	got := VfmaqF64(VdupqNF64(-1-math.Ldexp(1, -29)), VdupqNF64(e), VdupqNF64(e))
	assert.Equal(t, math.Ldexp(1, -60), got[0])
}

func TestVshlqSignedCounts(t *testing.T) {
	a := VdupqNU16(0x8001)
	assert.Equal(t, VdupqNU16(0x0002), VshlqU16(a, VdupqNS16(1)))
	assert.Equal(t, VdupqNU16(0x4000), VshlqU16(a, VdupqNS16(-1)))
	assert.Equal(t, VdupqNU16(0), VshlqU16(a, VdupqNS16(16)))
	assert.Equal(t, VdupqNU16(0), VshlqU16(a, VdupqNS16(-16)))

	s := VdupqNS32(-8)
	assert.Equal(t, VdupqNS32(-4), VshlqS32(s, VdupqNS32(-1)))
	assert.Equal(t, VdupqNS32(-1), VshlqS32(s, VdupqNS32(-40)), "right shifts past the width keep the sign")

	// Only the low byte of the count lane is used.
	assert.Equal(t, VdupqNS32(-16), VshlqS32(s, VdupqNS32(0x101)))
}

func TestWidenNarrow(t *testing.T) {
	var a Uint8x16
	for i := range a {
		a[i] = uint8(240 + i)
	}
	lo := VmovlU8(VgetLowU8(a))
	hi := VmovlHighU8(a)
	assert.Equal(t, uint16(240), lo[0])
	assert.Equal(t, uint16(247), lo[7])
	assert.Equal(t, uint16(248), hi[0])
	assert.Equal(t, uint16(255), hi[7])

	n := VcombineU8(VmovnU16(VaddqU16(lo, VdupqNU16(16))), VmovnU16(hi))
	assert.Equal(t, uint8(0), n[0], "narrowing keeps the low byte")
	assert.Equal(t, uint8(255), n[15])
}

func TestVmullAndShifts(t *testing.T) {
	x := Uint32x2{0xFFFFFFFF, 3}
	got := VmullU32(x, x)
	assert.Equal(t, Uint64x2{0xFFFFFFFE00000001, 9}, got)
	assert.Equal(t, Uint32x2{0xFFFFFFFE, 0}, VshrnNU64(got, 32))
	assert.Equal(t, Uint64x2{0x0000000100000000, 0x0000000900000000}, VshlqNU64(Uint64x2{1, 9}, 32))
}

func TestVcvtqSaturates(t *testing.T) {
	a := Float32x4{float32(math.NaN()), -5, 3.9, 5e9}
	assert.Equal(t, Uint32x4{0, 0, 3, math.MaxUint32}, VcvtqU32F32(a))
}

func TestZipUnzipRoundTrip(t *testing.T) {
	a := Int32x4{0, 1, 2, 3}
	b := Int32x4{10, 11, 12, 13}
	lo, hi := Vzip1qS32(a, b), Vzip2qS32(a, b)
	assert.Equal(t, Int32x4{0, 10, 1, 11}, lo)
	assert.Equal(t, Int32x4{2, 12, 3, 13}, hi)
	assert.Equal(t, a, Vuzp1qS32(lo, hi))
	assert.Equal(t, b, Vuzp2qS32(lo, hi))
}

func TestReinterpret(t *testing.T) {
	u := VreinterpretqU8S16(VdupqNS16(-2))
	assert.Equal(t, uint8(0xFE), u[0])
	assert.Equal(t, uint8(0xFF), u[1])
	assert.Equal(t, VdupqNS64(-1), VreinterpretqS64U64(VdupqNU64(math.MaxUint64)))
}
