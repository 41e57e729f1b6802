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

func F32x4Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[float32]) }
func F64x2Add(a, b V128) V128 { return lanes.Binary(a, b, lanes.Add[float64]) }
func F32x4Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[float32]) }
func F64x2Sub(a, b V128) V128 { return lanes.Binary(a, b, lanes.Sub[float64]) }
func F32x4Mul(a, b V128) V128 { return lanes.Binary(a, b, lanes.Mul[float32]) }
func F64x2Mul(a, b V128) V128 { return lanes.Binary(a, b, lanes.Mul[float64]) }
func F32x4Div(a, b V128) V128 { return lanes.Binary(a, b, lanes.Div[float32]) }
func F64x2Div(a, b V128) V128 { return lanes.Binary(a, b, lanes.Div[float64]) }

func F32x4Sqrt(a V128) V128  { return lanes.Unary(a, lanes.Sqrt[float32]) }
func F64x2Sqrt(a V128) V128  { return lanes.Unary(a, lanes.Sqrt[float64]) }
func F32x4Abs(a V128) V128   { return lanes.Unary(a, lanes.Abs[float32]) }
func F64x2Abs(a V128) V128   { return lanes.Unary(a, lanes.Abs[float64]) }
func F32x4Neg(a V128) V128   { return lanes.Unary(a, lanes.Neg[float32]) }
func F64x2Neg(a V128) V128   { return lanes.Unary(a, lanes.Neg[float64]) }
func F32x4Floor(a V128) V128 { return lanes.Unary(a, lanes.Floor[float32]) }
func F64x2Floor(a V128) V128 { return lanes.Unary(a, lanes.Floor[float64]) }

// Min and Max return NaN when either lane is NaN and order -0 below +0.
func F32x4Min(a, b V128) V128 { return lanes.Binary(a, b, lanes.Min[float32]) }
func F64x2Min(a, b V128) V128 { return lanes.Binary(a, b, lanes.Min[float64]) }
func F32x4Max(a, b V128) V128 { return lanes.Binary(a, b, lanes.Max[float32]) }
func F64x2Max(a, b V128) V128 { return lanes.Binary(a, b, lanes.Max[float64]) }

// Pmin returns b < a ? b : a and Pmax returns a < b ? b : a, so a NaN in
// either operand yields a.
func F32x4Pmin(a, b V128) V128 { return lanes.Binary(a, b, pmin[float32]) }
func F64x2Pmin(a, b V128) V128 { return lanes.Binary(a, b, pmin[float64]) }
func F32x4Pmax(a, b V128) V128 { return lanes.Binary(a, b, pmax[float32]) }
func F64x2Pmax(a, b V128) V128 { return lanes.Binary(a, b, pmax[float64]) }

func pmin[E lanes.Float](x, y E) E {
	if y < x {
		return y
	}
	return x
}

func pmax[E lanes.Float](x, y E) E {
	if x < y {
		return y
	}
	return x
}

// Comparisons are false for NaN lanes.
func F32x4Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[float32]) }
func F64x2Eq(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Eq[float64]) }
func F32x4Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[float32]) }
func F64x2Lt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Lt[float64]) }
func F32x4Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[float32]) }
func F64x2Le(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Le[float64]) }
func F32x4Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[float32]) }
func F64x2Gt(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Gt[float64]) }
func F32x4Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[float32]) }
func F64x2Ge(a, b V128) V128 { return lanes.Compare[V128](a, b, lanes.Ge[float64]) }

func F32x4Splat(x float32) V128 { return lanes.Splat[V128](x) }
func F64x2Splat(x float64) V128 { return lanes.Splat[V128](x) }
