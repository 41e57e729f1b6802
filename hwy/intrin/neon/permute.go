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

// Vzip1q interleaves the low halves of a and b, Vzip2q the high halves.
func Vzip1qF32(a, b Float32x4) Float32x4 { return lanes.ZipLo[float32](a, b) }
func Vzip1qF64(a, b Float64x2) Float64x2 { return lanes.ZipLo[float64](a, b) }
func Vzip1qS8(a, b Int8x16) Int8x16      { return lanes.ZipLo[int8](a, b) }
func Vzip1qS16(a, b Int16x8) Int16x8     { return lanes.ZipLo[int16](a, b) }
func Vzip1qS32(a, b Int32x4) Int32x4     { return lanes.ZipLo[int32](a, b) }
func Vzip1qS64(a, b Int64x2) Int64x2     { return lanes.ZipLo[int64](a, b) }
func Vzip1qU8(a, b Uint8x16) Uint8x16    { return lanes.ZipLo[uint8](a, b) }
func Vzip1qU16(a, b Uint16x8) Uint16x8   { return lanes.ZipLo[uint16](a, b) }
func Vzip1qU32(a, b Uint32x4) Uint32x4   { return lanes.ZipLo[uint32](a, b) }
func Vzip1qU64(a, b Uint64x2) Uint64x2   { return lanes.ZipLo[uint64](a, b) }

func Vzip2qF32(a, b Float32x4) Float32x4 { return lanes.ZipHi[float32](a, b) }
func Vzip2qF64(a, b Float64x2) Float64x2 { return lanes.ZipHi[float64](a, b) }
func Vzip2qS8(a, b Int8x16) Int8x16      { return lanes.ZipHi[int8](a, b) }
func Vzip2qS16(a, b Int16x8) Int16x8     { return lanes.ZipHi[int16](a, b) }
func Vzip2qS32(a, b Int32x4) Int32x4     { return lanes.ZipHi[int32](a, b) }
func Vzip2qS64(a, b Int64x2) Int64x2     { return lanes.ZipHi[int64](a, b) }
func Vzip2qU8(a, b Uint8x16) Uint8x16    { return lanes.ZipHi[uint8](a, b) }
func Vzip2qU16(a, b Uint16x8) Uint16x8   { return lanes.ZipHi[uint16](a, b) }
func Vzip2qU32(a, b Uint32x4) Uint32x4   { return lanes.ZipHi[uint32](a, b) }
func Vzip2qU64(a, b Uint64x2) Uint64x2   { return lanes.ZipHi[uint64](a, b) }

// Vuzp1q gathers the even lanes of a then b, Vuzp2q the odd lanes.
func Vuzp1qF32(a, b Float32x4) Float32x4 { return lanes.UnzipEven[float32](a, b) }
func Vuzp1qF64(a, b Float64x2) Float64x2 { return lanes.UnzipEven[float64](a, b) }
func Vuzp1qS8(a, b Int8x16) Int8x16      { return lanes.UnzipEven[int8](a, b) }
func Vuzp1qS16(a, b Int16x8) Int16x8     { return lanes.UnzipEven[int16](a, b) }
func Vuzp1qS32(a, b Int32x4) Int32x4     { return lanes.UnzipEven[int32](a, b) }
func Vuzp1qS64(a, b Int64x2) Int64x2     { return lanes.UnzipEven[int64](a, b) }
func Vuzp1qU8(a, b Uint8x16) Uint8x16    { return lanes.UnzipEven[uint8](a, b) }
func Vuzp1qU16(a, b Uint16x8) Uint16x8   { return lanes.UnzipEven[uint16](a, b) }
func Vuzp1qU32(a, b Uint32x4) Uint32x4   { return lanes.UnzipEven[uint32](a, b) }
func Vuzp1qU64(a, b Uint64x2) Uint64x2   { return lanes.UnzipEven[uint64](a, b) }

func Vuzp2qF32(a, b Float32x4) Float32x4 { return lanes.UnzipOdd[float32](a, b) }
func Vuzp2qF64(a, b Float64x2) Float64x2 { return lanes.UnzipOdd[float64](a, b) }
func Vuzp2qS8(a, b Int8x16) Int8x16      { return lanes.UnzipOdd[int8](a, b) }
func Vuzp2qS16(a, b Int16x8) Int16x8     { return lanes.UnzipOdd[int16](a, b) }
func Vuzp2qS32(a, b Int32x4) Int32x4     { return lanes.UnzipOdd[int32](a, b) }
func Vuzp2qS64(a, b Int64x2) Int64x2     { return lanes.UnzipOdd[int64](a, b) }
func Vuzp2qU8(a, b Uint8x16) Uint8x16    { return lanes.UnzipOdd[uint8](a, b) }
func Vuzp2qU16(a, b Uint16x8) Uint16x8   { return lanes.UnzipOdd[uint16](a, b) }
func Vuzp2qU32(a, b Uint32x4) Uint32x4   { return lanes.UnzipOdd[uint32](a, b) }
func Vuzp2qU64(a, b Uint64x2) Uint64x2   { return lanes.UnzipOdd[uint64](a, b) }

// VgetLow returns the lower 64 bits of a.
func VgetLowU8(a Uint8x16) Uint8x8 {
	return lanes.Convert[Uint8x8](a, 0, lanes.Resize[uint8, uint8])
}

func VgetLowU16(a Uint16x8) Uint16x4 {
	return lanes.Convert[Uint16x4](a, 0, lanes.Resize[uint16, uint16])
}

// Vcombine joins two 64-bit halves, lo in the low lanes.
func VcombineU8(lo, hi Uint8x8) Uint8x16 {
	return joinHalves[Uint8x16](lo, hi)
}

func VcombineU16(lo, hi Uint16x4) Uint16x8 {
	return joinHalves[Uint16x8](lo, hi)
}

func joinHalves[W, H any](lo, hi H) W {
	var w W
	dst := lanes.Bytes(&w)
	n := copy(dst, lanes.Bytes(&lo))
	copy(dst[n:], lanes.Bytes(&hi))
	return w
}
