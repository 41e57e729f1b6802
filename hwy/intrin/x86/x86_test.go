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

package x86

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/hwy/intrin/internal/lanes"
)

func lanesOf[E any](v M128i) []E {
	return lanes.Of[E](&v)
}

func TestMinMaxReturnSecondOperand(t *testing.T) {
	nan := float32(math.NaN())
	a := M128{1, nan, 2, 0}
	b := M128{2, 3, nan, float32(math.Copysign(0, -1))}

	got := MmMinPs(a, b)
	assert.Equal(t, float32(1), got[0])
	assert.Equal(t, float32(3), got[1], "NaN in a yields b")
	assert.True(t, math.IsNaN(float64(got[2])), "NaN in b yields b")
	assert.True(t, math.Signbit(float64(got[3])), "equal zeros yield b")

	got = MmMaxPs(a, b)
	assert.Equal(t, float32(2), got[0])
	assert.Equal(t, float32(3), got[1])
	assert.True(t, math.IsNaN(float64(got[2])))
}

func TestCmpPredicates(t *testing.T) {
	nan := math.NaN()
	a := M256d{1, 2, nan, 4}
	b := M256d{2, 2, 1, nan}
	bits := func(v M256d) [4]uint64 { return Cast[[4]uint64](v) }
	const ones = math.MaxUint64

	assert.Equal(t, [4]uint64{0, ones, 0, 0}, bits(Mm256CmpPd(a, b, CmpEqOQ)))
	assert.Equal(t, [4]uint64{ones, 0, 0, 0}, bits(Mm256CmpPd(a, b, CmpLtOQ)))
	assert.Equal(t, [4]uint64{ones, ones, 0, 0}, bits(Mm256CmpPd(a, b, CmpLeOQ)))
	assert.Equal(t, [4]uint64{0, 0, 0, 0}, bits(Mm256CmpPd(a, b, CmpGtOQ)))
	assert.Equal(t, [4]uint64{0, ones, 0, 0}, bits(Mm256CmpPd(a, b, CmpGeOQ)))
	assert.Equal(t, [4]uint64{0, 0, ones, ones}, bits(Mm256CmpPd(a, b, CmpUnordQ)))

	// NEQ_UQ is true for unordered lanes.
	assert.Equal(t, [4]uint64{ones, 0, ones, ones}, bits(Mm256CmpPd(a, b, 0x04)))
}

func TestBlendvUsesTopBit(t *testing.T) {
	a := MmSet1Ps(1)
	b := MmSet1Ps(2)
	m := MmCastsi128Ps(MmSetrEpi8(0, 0, 0, -128, 0, 0, 0, 0x7F, 0, 0, 0, 0, -1, -1, -1, -1))
	assert.Equal(t, M128{2, 1, 1, 2}, MmBlendvPs(a, b, m))

	x := MmSet1Epi8(5)
	y := MmSet1Epi8(9)
	sel := MmSetrEpi8(-1, 0, 1, -128, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, []int8{9, 5, 5, 9}, lanesOf[int8](MmBlendvEpi8(x, y, sel))[:4])
}

func TestShuffleEpi8(t *testing.T) {
	var a M128i
	for i := range a {
		a[i] = byte(100 + i)
	}
	idx := MmSetrEpi8(15, 0, -128, 17, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	got := MmShuffleEpi8(a, idx)
	assert.Equal(t, []byte{115, 100, 0, 101, 101}, got[:5])
}

func TestPackusSaturates(t *testing.T) {
	a := Cast[M128i]([8]int16{-5, 0, 255, 256, 1000, 7, -32768, 32767})
	b := Cast[M128i]([8]int16{1, 2, 3, 4, 5, 6, 7, 8})
	got := MmPackusEpi16(a, b)
	assert.Equal(t, M128i{0, 0, 255, 255, 255, 7, 0, 255, 1, 2, 3, 4, 5, 6, 7, 8}, got)

	c := Cast[M128i]([4]int32{-1, 65535, 65536, 42})
	assert.Equal(t, []uint16{0, 65535, 65535, 42, 0, 65535, 65535, 42}, lanesOf[uint16](MmPackusEpi32(c, c)))
}

func TestCvttps(t *testing.T) {
	a := M128{-1.9, 2.9, float32(math.NaN()), 3e9}
	assert.Equal(t, []int32{-1, 2, math.MinInt32, math.MinInt32}, lanesOf[int32](MmCvttpsEpi32(a)))
}

func TestImmediateShifts(t *testing.T) {
	a := MmSet1Epi16(-4)
	assert.Equal(t, int16(-8), lanesOf[int16](MmSlliEpi16(a, 1))[0])
	assert.Equal(t, int16(0x7FFE), lanesOf[int16](MmSrliEpi16(a, 1))[0])
	assert.Equal(t, int16(-2), lanesOf[int16](MmSraiEpi16(a, 1))[0])
	assert.Equal(t, int16(0), lanesOf[int16](MmSlliEpi16(a, 16))[0])
	assert.Equal(t, int16(-1), lanesOf[int16](MmSraiEpi16(a, 40))[0])
}

func TestMulEpu32UsesLowHalves(t *testing.T) {
	a := Cast[M128i]([2]uint64{0xDEAD0000FFFFFFFF, 3})
	b := Cast[M128i]([2]uint64{0xBEEF000000000002, 5})
	assert.Equal(t, []uint64{0x1FFFFFFFE, 15}, lanesOf[uint64](MmMulEpu32(a, b)))
}

func TestUnpackAndShufflePs(t *testing.T) {
	a := M128{0, 1, 2, 3}
	b := M128{10, 11, 12, 13}
	assert.Equal(t, M128{0, 10, 1, 11}, MmUnpackloPs(a, b))
	assert.Equal(t, M128{2, 12, 3, 13}, MmUnpackhiPs(a, b))
	assert.Equal(t, M128{0, 2, 10, 12}, MmShufflePs(a, b, 0x88))
	assert.Equal(t, M128{1, 3, 11, 13}, MmShufflePs(a, b, 0xDD))
}

func TestHalvesAndWidening(t *testing.T) {
	var a M256i
	for i := range a {
		a[i] = byte(i)
	}
	lo := Mm256Castsi256Si128(a)
	hi := Mm256Extracti128Si256(a, 1)
	assert.Equal(t, byte(0), lo[0])
	assert.Equal(t, byte(16), hi[0])
	assert.Equal(t, lo, Mm256Extracti128Si256(a, 0))

	w := Mm256Cvtepu8Epi16(MmSet1Epi8(-1))
	assert.Equal(t, Cast[M256i]([16]uint16{255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255}), w)
}

func TestCastSizeMismatchPanics(t *testing.T) {
	require.Panics(t, func() { Cast[M256i](M128i{}) })
}
