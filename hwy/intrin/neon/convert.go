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

// Vmovl zero-extends the lanes of a 64-bit register. VmovlHigh does the
// same for the upper half of a 128-bit one.
func VmovlU8(a Uint8x8) Uint16x8 {
	return lanes.Convert[Uint16x8](a, 0, lanes.Resize[uint16, uint8])
}

func VmovlU16(a Uint16x4) Uint32x4 {
	return lanes.Convert[Uint32x4](a, 0, lanes.Resize[uint32, uint16])
}

func VmovlHighU8(a Uint8x16) Uint16x8 {
	return lanes.Convert[Uint16x8](a, 8, lanes.Resize[uint16, uint8])
}

func VmovlHighU16(a Uint16x8) Uint32x4 {
	return lanes.Convert[Uint32x4](a, 4, lanes.Resize[uint32, uint16])
}

// Vmovn keeps the low half of every lane.
func VmovnU16(a Uint16x8) Uint8x8 {
	return lanes.Convert[Uint8x8](a, 0, lanes.Resize[uint8, uint16])
}

func VmovnU32(a Uint32x4) Uint16x4 {
	return lanes.Convert[Uint16x4](a, 0, lanes.Resize[uint16, uint32])
}

func VmovnU64(a Uint64x2) Uint32x2 {
	return lanes.Convert[Uint32x2](a, 0, lanes.Resize[uint32, uint64])
}

// VmullU32 multiplies 32-bit lanes into full 64-bit products.
func VmullU32(a, b Uint32x2) Uint64x2 {
	var r Uint64x2
	for i := range r {
		r[i] = uint64(a[i]) * uint64(b[i])
	}
	return r
}

// Vreinterpretq reuses the bits of a register as another lane type.
func VreinterpretqU8S8(a Int8x16) Uint8x16   { return lanes.Cast[Uint8x16](a) }
func VreinterpretqU8S16(a Int16x8) Uint8x16  { return lanes.Cast[Uint8x16](a) }
func VreinterpretqU8S32(a Int32x4) Uint8x16  { return lanes.Cast[Uint8x16](a) }
func VreinterpretqU8S64(a Int64x2) Uint8x16  { return lanes.Cast[Uint8x16](a) }
func VreinterpretqU8U16(a Uint16x8) Uint8x16 { return lanes.Cast[Uint8x16](a) }
func VreinterpretqU8U32(a Uint32x4) Uint8x16 { return lanes.Cast[Uint8x16](a) }
func VreinterpretqU8U64(a Uint64x2) Uint8x16 { return lanes.Cast[Uint8x16](a) }
func VreinterpretqU64S64(a Int64x2) Uint64x2 { return lanes.Cast[Uint64x2](a) }
func VreinterpretqS64U64(a Uint64x2) Int64x2 { return lanes.Cast[Int64x2](a) }

// VcvtqU32F32 converts toward zero, saturating. NaN converts to 0.
func VcvtqU32F32(a Float32x4) Uint32x4 {
	return lanes.Convert[Uint32x4](a, 0, lanes.TruncU32[float32])
}
