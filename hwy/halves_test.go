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

	"github.com/stretchr/testify/assert"
)

func TestHalves(t *testing.T) {
	w := combine[U16x8, U16x16](U16x8{0, 1, 2, 3, 4, 5, 6, 7}, U16x8{8, 9, 10, 11, 12, 13, 14, 15})
	for i, x := range w {
		assert.Equal(t, uint16(i), x)
	}
	lo, hi := split[U16x16, U16x8](w)
	assert.Equal(t, U16x8{0, 1, 2, 3, 4, 5, 6, 7}, lo)
	assert.Equal(t, U16x8{8, 9, 10, 11, 12, 13, 14, 15}, hi)
	assert.Equal(t, hi, upper[U16x16, U16x8](w))
}

func TestBitcast(t *testing.T) {
	got := bitcast[U32x4](F32x4{1, -2, 0, float32(math.Inf(1))})
	assert.Equal(t, U32x4{0x3F800000, 0xC0000000, 0, 0x7F800000}, got)
	assert.PanicsWithValue(t, "hwy: bitcast between types of different size", func() {
		bitcast[U32x8](F32x4{})
	})
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, uint16(0xFFFF), maskOf[uint16](true))
	assert.Equal(t, uint64(0), maskOf[uint64](false))
	assert.Equal(t, float32(-3), copysign(float32(3), -0.0001))
	assert.True(t, math.Signbit(copysign(0.0, math.Copysign(0, -1))))

	nan := math.NaN()
	assert.Equal(t, 2.0, minPrecise(nan, 2))
	assert.True(t, math.IsNaN(minPrecise(2, nan)))
	assert.Equal(t, 2.0, maxPrecise(nan, 2))
	assert.Equal(t, 3.0, maxPrecise(3.0, 2))
	assert.Equal(t, float32(3), maxPrecise[float32](3, 2))
	assert.Equal(t, float32(2), minPrecise[float32](3, 2))

	tests := []struct {
		in   float64
		want uint32
	}{
		{nan, 0},
		{-7, 0},
		{0.999, 0},
		{1, 1},
		{123.9, 123},
		{4294967295, math.MaxUint32},
		{4294967296, math.MaxUint32},
		{math.Inf(1), math.MaxUint32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncU32(tt.in), "truncU32(%v)", tt.in)
	}
}
