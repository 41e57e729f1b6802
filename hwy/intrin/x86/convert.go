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

import "github.com/ajroetker/go-lanes/hwy/intrin/internal/lanes"

// Cvttps converts toward zero. NaN and out-of-range lanes give the integer
// indefinite value, MinInt32.
func MmCvttpsEpi32(a M128) M128i {
	return lanes.Convert[M128i](a, 0, lanes.TruncI32[float32])
}

func Mm256CvttpsEpi32(a M256) M256i {
	return lanes.Convert[M256i](a, 0, lanes.TruncI32[float32])
}

// Casts reinterpret bits and compile to nothing.
func MmCastpsSi128(a M128) M128i     { return Cast[M128i](a) }
func MmCastsi128Ps(a M128i) M128     { return Cast[M128](a) }
func MmCastsi128Pd(a M128i) M128d    { return Cast[M128d](a) }
func Mm256CastpsSi256(a M256) M256i  { return Cast[M256i](a) }
func Mm256Castsi256Ps(a M256i) M256  { return Cast[M256](a) }
func Mm256Castsi256Pd(a M256i) M256d { return Cast[M256d](a) }

// Mm256Castsi256Si128 returns the low 128 bits of a.
func Mm256Castsi256Si128(a M256i) M128i {
	return M128i(a[:16])
}

// Mm256Extracti128Si256 returns the 128-bit half of a that bit 0 of imm
// selects.
func Mm256Extracti128Si256(a M256i, imm int) M128i {
	off := 16 * (imm & 1)
	return M128i(a[off : off+16])
}

// Cvtepu zero-extends every lane of a to twice its width.
func Mm256Cvtepu8Epi16(a M128i) M256i {
	return lanes.Convert[M256i](a, 0, lanes.Resize[uint16, uint8])
}

func Mm256Cvtepu16Epi32(a M128i) M256i {
	return lanes.Convert[M256i](a, 0, lanes.Resize[uint32, uint16])
}
