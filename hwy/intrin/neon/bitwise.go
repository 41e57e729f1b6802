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

func VandqS8(a, b Int8x16) Int8x16    { return lanes.Binary(a, b, lanes.And[int8]) }
func VandqS16(a, b Int16x8) Int16x8   { return lanes.Binary(a, b, lanes.And[int16]) }
func VandqS32(a, b Int32x4) Int32x4   { return lanes.Binary(a, b, lanes.And[int32]) }
func VandqS64(a, b Int64x2) Int64x2   { return lanes.Binary(a, b, lanes.And[int64]) }
func VandqU8(a, b Uint8x16) Uint8x16  { return lanes.Binary(a, b, lanes.And[uint8]) }
func VandqU16(a, b Uint16x8) Uint16x8 { return lanes.Binary(a, b, lanes.And[uint16]) }
func VandqU32(a, b Uint32x4) Uint32x4 { return lanes.Binary(a, b, lanes.And[uint32]) }
func VandqU64(a, b Uint64x2) Uint64x2 { return lanes.Binary(a, b, lanes.And[uint64]) }

func VorrqS8(a, b Int8x16) Int8x16    { return lanes.Binary(a, b, lanes.Or[int8]) }
func VorrqS16(a, b Int16x8) Int16x8   { return lanes.Binary(a, b, lanes.Or[int16]) }
func VorrqS32(a, b Int32x4) Int32x4   { return lanes.Binary(a, b, lanes.Or[int32]) }
func VorrqS64(a, b Int64x2) Int64x2   { return lanes.Binary(a, b, lanes.Or[int64]) }
func VorrqU8(a, b Uint8x16) Uint8x16  { return lanes.Binary(a, b, lanes.Or[uint8]) }
func VorrqU16(a, b Uint16x8) Uint16x8 { return lanes.Binary(a, b, lanes.Or[uint16]) }
func VorrqU32(a, b Uint32x4) Uint32x4 { return lanes.Binary(a, b, lanes.Or[uint32]) }
func VorrqU64(a, b Uint64x2) Uint64x2 { return lanes.Binary(a, b, lanes.Or[uint64]) }

func VeorqS8(a, b Int8x16) Int8x16    { return lanes.Binary(a, b, lanes.Xor[int8]) }
func VeorqS16(a, b Int16x8) Int16x8   { return lanes.Binary(a, b, lanes.Xor[int16]) }
func VeorqS32(a, b Int32x4) Int32x4   { return lanes.Binary(a, b, lanes.Xor[int32]) }
func VeorqS64(a, b Int64x2) Int64x2   { return lanes.Binary(a, b, lanes.Xor[int64]) }
func VeorqU8(a, b Uint8x16) Uint8x16  { return lanes.Binary(a, b, lanes.Xor[uint8]) }
func VeorqU16(a, b Uint16x8) Uint16x8 { return lanes.Binary(a, b, lanes.Xor[uint16]) }
func VeorqU32(a, b Uint32x4) Uint32x4 { return lanes.Binary(a, b, lanes.Xor[uint32]) }
func VeorqU64(a, b Uint64x2) Uint64x2 { return lanes.Binary(a, b, lanes.Xor[uint64]) }

// Vbicq clears the bits of a that are set in b.
func VbicqS8(a, b Int8x16) Int8x16    { return lanes.Binary(a, b, lanes.AndNot[int8]) }
func VbicqS16(a, b Int16x8) Int16x8   { return lanes.Binary(a, b, lanes.AndNot[int16]) }
func VbicqS32(a, b Int32x4) Int32x4   { return lanes.Binary(a, b, lanes.AndNot[int32]) }
func VbicqS64(a, b Int64x2) Int64x2   { return lanes.Binary(a, b, lanes.AndNot[int64]) }
func VbicqU8(a, b Uint8x16) Uint8x16  { return lanes.Binary(a, b, lanes.AndNot[uint8]) }
func VbicqU16(a, b Uint16x8) Uint16x8 { return lanes.Binary(a, b, lanes.AndNot[uint16]) }
func VbicqU32(a, b Uint32x4) Uint32x4 { return lanes.Binary(a, b, lanes.AndNot[uint32]) }
func VbicqU64(a, b Uint64x2) Uint64x2 { return lanes.Binary(a, b, lanes.AndNot[uint64]) }

// Vmvnq inverts every bit. There is no 64-bit form; use Veorq with all ones.
func VmvnqS8(a Int8x16) Int8x16    { return lanes.Unary(a, lanes.Not[int8]) }
func VmvnqS16(a Int16x8) Int16x8   { return lanes.Unary(a, lanes.Not[int16]) }
func VmvnqS32(a Int32x4) Int32x4   { return lanes.Unary(a, lanes.Not[int32]) }
func VmvnqU8(a Uint8x16) Uint8x16  { return lanes.Unary(a, lanes.Not[uint8]) }
func VmvnqU16(a Uint16x8) Uint16x8 { return lanes.Unary(a, lanes.Not[uint16]) }
func VmvnqU32(a Uint32x4) Uint32x4 { return lanes.Unary(a, lanes.Not[uint32]) }

// Vbslq takes each bit from a where the bit of m is set and from b elsewhere.
func VbslqF32(m Uint32x4, a, b Float32x4) Float32x4 { return lanes.BitSelect(m, a, b) }
func VbslqF64(m Uint64x2, a, b Float64x2) Float64x2 { return lanes.BitSelect(m, a, b) }
func VbslqS8(m Uint8x16, a, b Int8x16) Int8x16      { return lanes.BitSelect(m, a, b) }
func VbslqS16(m Uint16x8, a, b Int16x8) Int16x8     { return lanes.BitSelect(m, a, b) }
func VbslqS32(m Uint32x4, a, b Int32x4) Int32x4     { return lanes.BitSelect(m, a, b) }
func VbslqS64(m Uint64x2, a, b Int64x2) Int64x2     { return lanes.BitSelect(m, a, b) }
func VbslqU8(m Uint8x16, a, b Uint8x16) Uint8x16    { return lanes.BitSelect(m, a, b) }
func VbslqU16(m Uint16x8, a, b Uint16x8) Uint16x8   { return lanes.BitSelect(m, a, b) }
func VbslqU32(m Uint32x4, a, b Uint32x4) Uint32x4   { return lanes.BitSelect(m, a, b) }
func VbslqU64(m Uint64x2, a, b Uint64x2) Uint64x2   { return lanes.BitSelect(m, a, b) }
