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


package wasm

import "github.com/ajroetker/go-lanes/hwy/intrin/internal/lanes"

// Integer arithmetic wraps on overflow. There is no 8-bit multiply.
func I8x16Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[int8]) }
func I16x8Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[int16]) }
func I32x4Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[int32]) }
func I64x2Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[int64]) }
func U8x16Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[uint8]) }
func U16x8Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[uint16]) }
func U32x4Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[uint32]) }
func U64x2Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[uint64]) }

func I8x16Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[int8]) }
func I16x8Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[int16]) }
func I32x4Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[int32]) }
func I64x2Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[int64]) }
func U8x16Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[uint8]) }
func U16x8Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[uint16]) }
func U32x4Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[uint32]) }
func U64x2Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[uint64]) }

func I16x8Mul(a, b V128) V128 { return lanes.Binary(a, b, lanes.Mul[int16]) }
func I32x4Mul(a, b V128) V128 { return lanes.Binary(a, b, lanes.Mul[int32]) }
func I64x2Mul(a, b V128) V128 { return lanes.Binary(a, b, lanes.Mul[int64]) }
func U16x8Mul(a, b V128) V128 { return lanes.Binary(a, b, lanes.Mul[uint16]) }
func U32x4Mul(a, b V128) V128 { return lanes.Binary(a, b, lanes.Mul[uint32]) }
func U64x2Mul(a, b V128) V128 { return lanes.Binary(a, b, lanes.Mul[uint64]) }

// The I forms compare signed lanes and the U forms unsigned ones.
func I8x16Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[int8]) }
func I16x8Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[int16]) }
func I32x4Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[int32]) }
func I64x2Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[int64]) }
func U8x16Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[uint8]) }
func U16x8Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[uint16]) }
func U32x4Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[uint32]) }
func U64x2Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[uint64]) }

func I8x16Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[int8]) }
func I16x8Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[int16]) }
func I32x4Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[int32]) }
func I64x2Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[int64]) }
func U8x16Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[uint8]) }
func U16x8Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[uint16]) }
func U32x4Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[uint32]) }

func I8x16Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[int8]) }
func I16x8Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[int16]) }
func I32x4Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[int32]) }
func I64x2Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[int64]) }
func U8x16Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[uint8]) }
func U16x8Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[uint16]) }
func U32x4Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[uint32]) }

func I8x16Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[int8]) }
func I16x8Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[int16]) }
func I32x4Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[int32]) }
func I64x2Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[int64]) }
func U8x16Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[uint8]) }
func U16x8Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[uint16]) }
func U32x4Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[uint32]) }

func I8x16Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[int8]) }
func I16x8Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[int16]) }
func I32x4Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[int32]) }
func I64x2Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[int64]) }
func U8x16Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[uint8]) }
func U16x8Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[uint16]) }
func U32x4Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[uint32]) }

func I8x16Splat(x int8) V128   { return lanes.Splat[V128](x) }
func I16x8Splat(x int16) V128  { return lanes.Splat[V128](x) }
func I32x4Splat(x int32) V128  { return lanes.Splat[V128](x) }
func I64x2Splat(x int64) V128  { return lanes.Splat[V128](x) }
func U8x16Splat(x uint8) V128  { return lanes.Splat[V128](x) }
func U16x8Splat(x uint16) V128 { return lanes.Splat[V128](x) }
func U32x4Splat(x uint32) V128 { return lanes.Splat[V128](x) }
func U64x2Splat(x uint64) V128 { return lanes.Splat[V128](x) }

// Shifts take the count modulo the lane width. Shr is arithmetic for the
// I forms and logical for the U forms.
func I8x16Shl(a V128, n uint32) V128 { return shift(a, n, lanes.Shl[int8]) }
func I16x8Shl(a V128, n uint32) V128 { return shift(a, n, lanes.Shl[int16]) }
func I32x4Shl(a V128, n uint32) V128 { return shift(a, n, lanes.Shl[int32]) }
func I64x2Shl(a V128, n uint32) V128 { return shift(a, n, lanes.Shl[int64]) }

func I8x16Shr(a V128, n uint32) V128 { return shift(a, n, lanes.Shr[int8]) }
func I16x8Shr(a V128, n uint32) V128 { return shift(a, n, lanes.Shr[int16]) }
func I32x4Shr(a V128, n uint32) V128 { return shift(a, n, lanes.Shr[int32]) }
func I64x2Shr(a V128, n uint32) V128 { return shift(a, n, lanes.Shr[int64]) }
func U8x16Shr(a V128, n uint32) V128 { return shift(a, n, lanes.Shr[uint8]) }
func U16x8Shr(a V128, n uint32) V128 { return shift(a, n, lanes.Shr[uint16]) }
func U32x4Shr(a V128, n uint32) V128 { return shift(a, n, lanes.Shr[uint32]) }
func U64x2Shr(a V128, n uint32) V128 { return shift(a, n, lanes.Shr[uint64]) }

func shift[E lanes.Integer](a V128, n uint32, f func(E, uint) E) V128 {
	width := uint32(8 * len(a) / len(lanes.Of[E](&a)))
	return lanes.Unary(a, func(x E) E { return f(x, uint(n%width)) })
}
