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

// Vaddq adds lanes, wrapping on integer overflow.
func VaddqF32(a, b Float32x4) Float32x4 { return lanes.Binary(a, b, lanes.Add[float32]) }
func VaddqF64(a, b Float64x2) Float64x2 { return lanes.Binary(a, b, lanes.Add[float64]) }
func VaddqS8(a, b Int8x16) Int8x16      { return lanes.Binary(a, b, lanes.Add[int8]) }
func VaddqS16(a, b Int16x8) Int16x8     { return lanes.Binary(a, b, lanes.Add[int16]) }
func VaddqS32(a, b Int32x4) Int32x4     { return lanes.Binary(a, b, lanes.Add[int32]) }
func VaddqS64(a, b Int64x2) Int64x2     { return lanes.Binary(a, b, lanes.Add[int64]) }
func VaddqU8(a, b Uint8x16) Uint8x16    { return lanes.Binary(a, b, lanes.Add[uint8]) }
func VaddqU16(a, b Uint16x8) Uint16x8   { return lanes.Binary(a, b, lanes.Add[uint16]) }
func VaddqU32(a, b Uint32x4) Uint32x4   { return lanes.Binary(a, b, lanes.Add[uint32]) }
func VaddqU64(a, b Uint64x2) Uint64x2   { return lanes.Binary(a, b, lanes.Add[uint64]) }

func VsubqF32(a, b Float32x4) Float32x4 { return lanes.Binary(a, b, lanes.Sub[float32]) }
func VsubqF64(a, b Float64x2) Float64x2 { return lanes.Binary(a, b, lanes.Sub[float64]) }
func VsubqS8(a, b Int8x16) Int8x16      { return lanes.Binary(a, b, lanes.Sub[int8]) }
func VsubqS16(a, b Int16x8) Int16x8     { return lanes.Binary(a, b, lanes.Sub[int16]) }
func VsubqS32(a, b Int32x4) Int32x4     { return lanes.Binary(a, b, lanes.Sub[int32]) }
func VsubqS64(a, b Int64x2) Int64x2     { return lanes.Binary(a, b, lanes.Sub[int64]) }
func VsubqU8(a, b Uint8x16) Uint8x16    { return lanes.Binary(a, b, lanes.Sub[uint8]) }
func VsubqU16(a, b Uint16x8) Uint16x8   { return lanes.Binary(a, b, lanes.Sub[uint16]) }
func VsubqU32(a, b Uint32x4) Uint32x4   { return lanes.Binary(a, b, lanes.Sub[uint32]) }
func VsubqU64(a, b Uint64x2) Uint64x2   { return lanes.Binary(a, b, lanes.Sub[uint64]) }

// Vmulq multiplies lanes. There is no 64-bit integer form.
func VmulqF32(a, b Float32x4) Float32x4 { return lanes.Binary(a, b, lanes.Mul[float32]) }
func VmulqF64(a, b Float64x2) Float64x2 { return lanes.Binary(a, b, lanes.Mul[float64]) }
func VmulqS8(a, b Int8x16) Int8x16      { return lanes.Binary(a, b, lanes.Mul[int8]) }
func VmulqS16(a, b Int16x8) Int16x8     { return lanes.Binary(a, b, lanes.Mul[int16]) }
func VmulqS32(a, b Int32x4) Int32x4     { return lanes.Binary(a, b, lanes.Mul[int32]) }
func VmulqU8(a, b Uint8x16) Uint8x16    { return lanes.Binary(a, b, lanes.Mul[uint8]) }
func VmulqU16(a, b Uint16x8) Uint16x8   { return lanes.Binary(a, b, lanes.Mul[uint16]) }
func VmulqU32(a, b Uint32x4) Uint32x4   { return lanes.Binary(a, b, lanes.Mul[uint32]) }

func VdivqF32(a, b Float32x4) Float32x4 { return lanes.Binary(a, b, lanes.Div[float32]) }
func VdivqF64(a, b Float64x2) Float64x2 { return lanes.Binary(a, b, lanes.Div[float64]) }

// Vminq and Vmaxq return NaN when either lane is NaN.
func VminqF32(a, b Float32x4) Float32x4 { return lanes.Binary(a, b, lanes.Min[float32]) }
func VminqF64(a, b Float64x2) Float64x2 { return lanes.Binary(a, b, lanes.Min[float64]) }
func VmaxqF32(a, b Float32x4) Float32x4 { return lanes.Binary(a, b, lanes.Max[float32]) }
func VmaxqF64(a, b Float64x2) Float64x2 { return lanes.Binary(a, b, lanes.Max[float64]) }

func VsqrtqF32(a Float32x4) Float32x4 { return lanes.Unary(a, lanes.Sqrt[float32]) }
func VsqrtqF64(a Float64x2) Float64x2 { return lanes.Unary(a, lanes.Sqrt[float64]) }

func VabsqF32(a Float32x4) Float32x4 { return lanes.Unary(a, lanes.Abs[float32]) }
func VabsqF64(a Float64x2) Float64x2 { return lanes.Unary(a, lanes.Abs[float64]) }
func VnegqF32(a Float32x4) Float32x4 { return lanes.Unary(a, lanes.Neg[float32]) }
func VnegqF64(a Float64x2) Float64x2 { return lanes.Unary(a, lanes.Neg[float64]) }

// Vrndmq rounds toward minus infinity.
func VrndmqF32(a Float32x4) Float32x4 { return lanes.Unary(a, lanes.Floor[float32]) }
func VrndmqF64(a Float64x2) Float64x2 { return lanes.Unary(a, lanes.Floor[float64]) }

// Vfmaq returns a + b*c with a single rounding.
func VfmaqF32(a, b, c Float32x4) Float32x4 { return lanes.Ternary(a, b, c, fmla[float32]) }
func VfmaqF64(a, b, c Float64x2) Float64x2 { return lanes.Ternary(a, b, c, fmla[float64]) }

func fmla[E lanes.Float](acc, x, y E) E {
	return lanes.FMA(x, y, acc)
}

// VdupqN broadcasts x to every lane.
func VdupqNF32(x float32) Float32x4 { return lanes.Splat[Float32x4](x) }
func VdupqNF64(x float64) Float64x2 { return lanes.Splat[Float64x2](x) }
func VdupqNS8(x int8) Int8x16       { return lanes.Splat[Int8x16](x) }
func VdupqNS16(x int16) Int16x8     { return lanes.Splat[Int16x8](x) }
func VdupqNS32(x int32) Int32x4     { return lanes.Splat[Int32x4](x) }
func VdupqNS64(x int64) Int64x2     { return lanes.Splat[Int64x2](x) }
func VdupqNU8(x uint8) Uint8x16     { return lanes.Splat[Uint8x16](x) }
func VdupqNU16(x uint16) Uint16x8   { return lanes.Splat[Uint16x8](x) }
func VdupqNU32(x uint32) Uint32x4   { return lanes.Splat[Uint32x4](x) }
func VdupqNU64(x uint64) Uint64x2   { return lanes.Splat[Uint64x2](x) }
