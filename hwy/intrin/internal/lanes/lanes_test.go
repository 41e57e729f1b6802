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

package lanes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reg [16]byte

func TestOfViewsAndWritesThrough(t *testing.T) {
	var r reg
	words := Of[uint32](&r)
	require.Len(t, words, 4)
	words[1] = 0x04030201
	assert.Equal(t, reg{4: 1, 5: 2, 6: 3, 7: 4}, r)
}

func TestCompareMaskWidth(t *testing.T) {
	a := Cast[reg]([8]int16{1, 2, 3, 4, 5, 6, 7, 8})
	b := Cast[reg]([8]int16{1, 0, 3, 0, 5, 0, 7, 0})
	got := Compare[[8]uint16](a, b, Eq[int16])
	assert.Equal(t, [8]uint16{0xFFFF, 0, 0xFFFF, 0, 0xFFFF, 0, 0xFFFF, 0}, got)
}

func TestPermutes(t *testing.T) {
	a := [4]int32{0, 1, 2, 3}
	b := [4]int32{4, 5, 6, 7}
	if diff := cmp.Diff([4]int32{0, 4, 1, 5}, ZipLo[int32](a, b)); diff != "" {
		t.Errorf("ZipLo (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([4]int32{2, 6, 3, 7}, ZipHi[int32](a, b)); diff != "" {
		t.Errorf("ZipHi (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([4]int32{0, 2, 4, 6}, UnzipEven[int32](a, b)); diff != "" {
		t.Errorf("UnzipEven (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([4]int32{1, 3, 5, 7}, UnzipOdd[int32](a, b)); diff != "" {
		t.Errorf("UnzipOdd (-want +got):\n%s", diff)
	}
}

func TestBlendAndBitSelect(t *testing.T) {
	a := [2]uint32{1, 2}
	b := [2]uint32{10, 20}
	m := [2]uint32{0x80000000, 0x7FFFFFFF}
	assert.Equal(t, [2]uint32{10, 2}, Blend(a, b, m, 4))
	assert.Equal(t, [2]uint32{10, 2}, BitSelect(m, a, b), "disjoint bit patterns pick b then a")
	assert.Equal(t, [2]uint32{1, 20}, BitSelect([2]uint32{math.MaxUint32, 0}, a, b))
}

func TestConversions(t *testing.T) {
	assert.Equal(t, uint32(0), TruncU32(float32(math.NaN())))
	assert.Equal(t, uint32(0), TruncU32(-0.5))
	assert.Equal(t, uint32(4294967295), TruncU32(4294967296.0))
	assert.Equal(t, uint32(4294967040), TruncU32(float32(4294967040)))
	assert.Equal(t, int32(math.MinInt32), TruncI32(2147483648.0))
	assert.Equal(t, int32(-2147483648), TruncI32(-2147483648.0))
	assert.Equal(t, int32(-3), TruncI32(-3.99))
	assert.Equal(t, uint8(255), SatU8(300))
	assert.Equal(t, uint8(0), SatU8(-300))
	assert.Equal(t, uint16(65535), SatU16(1<<20))
	assert.Equal(t, uint8(0x34), Resize[uint8](uint16(0x1234)))
}

func TestShiftBy(t *testing.T) {
	assert.Equal(t, int8(-128), ShiftBy(int8(1), 7))
	assert.Equal(t, int8(-1), ShiftBy(int8(-128), -9))
	assert.Equal(t, uint8(0), ShiftBy(uint8(255), 8))
	assert.Equal(t, uint8(1), ShiftBy(uint8(255), -7))
}

func TestCastPanicsOnSizeMismatch(t *testing.T) {
	assert.PanicsWithValue(t, "lanes: cast between registers of different size", func() {
		Cast[[8]byte](reg{})
	})
}
