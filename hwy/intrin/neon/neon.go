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


// Package neon binds the Arm NEON intrinsics the Neon level is generated
// against. Each function is named after the ACLE intrinsic it stands for
// (vaddq_f32 is VaddqF32) and computes the lanes the instruction computes,
// including its results for NaN, overflow and out-of-range shift counts.
// The package is plain Go and builds on every architecture.
//
// Register types are arrays of their lanes, so a vector shape of the same
// lanes converts to and from a register with a plain conversion.
package neon

// Float32x4 represents a 128-bit NEON vector of 4 float32 values.
type Float32x4 [4]float32

// Float64x2 represents a 128-bit NEON vector of 2 float64 values.
type Float64x2 [2]float64

// Int8x16 represents a 128-bit NEON vector of 16 int8 values.
type Int8x16 [16]int8

// Int16x8 represents a 128-bit NEON vector of 8 int16 values.
type Int16x8 [8]int16

// Int32x4 represents a 128-bit NEON vector of 4 int32 values.
type Int32x4 [4]int32

// Int64x2 represents a 128-bit NEON vector of 2 int64 values.
type Int64x2 [2]int64

// Uint8x16 represents a 128-bit NEON vector of 16 uint8 values.
type Uint8x16 [16]uint8

// Uint16x8 represents a 128-bit NEON vector of 8 uint16 values.
type Uint16x8 [8]uint16

// Uint32x4 represents a 128-bit NEON vector of 4 uint32 values.
type Uint32x4 [4]uint32

// Uint64x2 represents a 128-bit NEON vector of 2 uint64 values.
type Uint64x2 [2]uint64

// 64-bit registers, the halves that widening and narrowing instructions
// read or produce.
type (
	Uint8x8  [8]uint8
	Uint16x4 [4]uint16
	Uint32x2 [2]uint32
)
