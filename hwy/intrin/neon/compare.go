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

// Comparisons set a lane to all ones where the relation holds. Every
// relation is false for NaN lanes.

func VceqqF32(a, b Float32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Eq[float32])
}

func VceqqF64(a, b Float64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Eq[float64])
}

func VceqqS8(a, b Int8x16) Uint8x16 { return lanes.Compare[Uint8x16](a, b, lanes.Eq[int8]) }

func VceqqS16(a, b Int16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Eq[int16])
}

func VceqqS32(a, b Int32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Eq[int32])
}

func VceqqS64(a, b Int64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Eq[int64])
}

func VceqqU8(a, b Uint8x16) Uint8x16 {
	return lanes.Compare[Uint8x16](a, b, lanes.Eq[uint8])
}

func VceqqU16(a, b Uint16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Eq[uint16])
}

func VceqqU32(a, b Uint32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Eq[uint32])
}

func VceqqU64(a, b Uint64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Eq[uint64])
}

func VcltqF32(a, b Float32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Lt[float32])
}

func VcltqF64(a, b Float64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Lt[float64])
}

func VcltqS8(a, b Int8x16) Uint8x16 { return lanes.Compare[Uint8x16](a, b, lanes.Lt[int8]) }

func VcltqS16(a, b Int16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Lt[int16])
}

func VcltqS32(a, b Int32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Lt[int32])
}

func VcltqS64(a, b Int64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Lt[int64])
}

func VcltqU8(a, b Uint8x16) Uint8x16 {
	return lanes.Compare[Uint8x16](a, b, lanes.Lt[uint8])
}

func VcltqU16(a, b Uint16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Lt[uint16])
}

func VcltqU32(a, b Uint32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Lt[uint32])
}

func VcltqU64(a, b Uint64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Lt[uint64])
}

func VcleqF32(a, b Float32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Le[float32])
}

func VcleqF64(a, b Float64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Le[float64])
}

func VcleqS8(a, b Int8x16) Uint8x16 { return lanes.Compare[Uint8x16](a, b, lanes.Le[int8]) }

func VcleqS16(a, b Int16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Le[int16])
}

func VcleqS32(a, b Int32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Le[int32])
}

func VcleqS64(a, b Int64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Le[int64])
}

func VcleqU8(a, b Uint8x16) Uint8x16 {
	return lanes.Compare[Uint8x16](a, b, lanes.Le[uint8])
}

func VcleqU16(a, b Uint16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Le[uint16])
}

func VcleqU32(a, b Uint32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Le[uint32])
}

func VcleqU64(a, b Uint64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Le[uint64])
}

func VcgtqF32(a, b Float32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Gt[float32])
}

func VcgtqF64(a, b Float64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Gt[float64])
}

func VcgtqS8(a, b Int8x16) Uint8x16 { return lanes.Compare[Uint8x16](a, b, lanes.Gt[int8]) }

func VcgtqS16(a, b Int16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Gt[int16])
}

func VcgtqS32(a, b Int32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Gt[int32])
}

func VcgtqS64(a, b Int64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Gt[int64])
}

func VcgtqU8(a, b Uint8x16) Uint8x16 {
	return lanes.Compare[Uint8x16](a, b, lanes.Gt[uint8])
}

func VcgtqU16(a, b Uint16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Gt[uint16])
}

func VcgtqU32(a, b Uint32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Gt[uint32])
}

func VcgtqU64(a, b Uint64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Gt[uint64])
}

func VcgeqF32(a, b Float32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Ge[float32])
}

func VcgeqF64(a, b Float64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Ge[float64])
}

func VcgeqS8(a, b Int8x16) Uint8x16 { return lanes.Compare[Uint8x16](a, b, lanes.Ge[int8]) }

func VcgeqS16(a, b Int16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Ge[int16])
}

func VcgeqS32(a, b Int32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Ge[int32])
}

func VcgeqS64(a, b Int64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Ge[int64])
}

func VcgeqU8(a, b Uint8x16) Uint8x16 {
	return lanes.Compare[Uint8x16](a, b, lanes.Ge[uint8])
}

func VcgeqU16(a, b Uint16x8) Uint16x8 {
	return lanes.Compare[Uint16x8](a, b, lanes.Ge[uint16])
}

func VcgeqU32(a, b Uint32x4) Uint32x4 {
	return lanes.Compare[Uint32x4](a, b, lanes.Ge[uint32])
}

func VcgeqU64(a, b Uint64x2) Uint64x2 {
	return lanes.Compare[Uint64x2](a, b, lanes.Ge[uint64])
}
