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

import "github.com/ajroetker/go-lanes/hwy/intrin/internal/lanes"

// Vshlq shifts each lane of a by the signed low byte of the matching lane of
// k: left for positive counts, right for negative ones. Right shifts are
// arithmetic for signed lanes. Counts at or past the lane width shift every
// bit out.
func VshlqS8(a Int8x16, k Int8x16) Int8x16    { return shiftBy[int8, int8](a, k) }
func VshlqS16(a Int16x8, k Int16x8) Int16x8   { return shiftBy[int16, int16](a, k) }
func VshlqS32(a Int32x4, k Int32x4) Int32x4   { return shiftBy[int32, int32](a, k) }
func VshlqS64(a Int64x2, k Int64x2) Int64x2   { return shiftBy[int64, int64](a, k) }
func VshlqU8(a Uint8x16, k Int8x16) Uint8x16  { return shiftBy[uint8, int8](a, k) }
func VshlqU16(a Uint16x8, k Int16x8) Uint16x8 { return shiftBy[uint16, int16](a, k) }
func VshlqU32(a Uint32x4, k Int32x4) Uint32x4 { return shiftBy[uint32, int32](a, k) }
func VshlqU64(a Uint64x2, k Int64x2) Uint64x2 { return shiftBy[uint64, int64](a, k) }

func shiftBy[E, C lanes.Integer, V, K any](a V, k K) V {
	r := a
	rl, kl := lanes.Of[E](&r), lanes.Of[C](&k)
	for i := range rl {
		rl[i] = lanes.ShiftBy(rl[i], int(int8(kl[i])))
	}
	return r
}

// VshlqN shifts every lane left by the immediate n.
func VshlqNU64(a Uint64x2, n int) Uint64x2 {
	return lanes.Unary(a, func(x uint64) uint64 { return x << n })
}

// VshrnN shifts every lane right by n and keeps the low half of the result.
func VshrnNU64(a Uint64x2, n int) Uint32x2 {
	return lanes.Convert[Uint32x2](a, 0, func(x uint64) uint32 { return uint32(x >> n) })
}
