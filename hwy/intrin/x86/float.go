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

func MmAddPs(a, b M128) M128      { return lanes.Binary(a, b, lanes.Add[float32]) }
func MmAddPd(a, b M128d) M128d    { return lanes.Binary(a, b, lanes.Add[float64]) }
func Mm256AddPs(a, b M256) M256   { return lanes.Binary(a, b, lanes.Add[float32]) }
func Mm256AddPd(a, b M256d) M256d { return lanes.Binary(a, b, lanes.Add[float64]) }
func MmSubPs(a, b M128) M128      { return lanes.Binary(a, b, lanes.Sub[float32]) }
func MmSubPd(a, b M128d) M128d    { return lanes.Binary(a, b, lanes.Sub[float64]) }
func Mm256SubPs(a, b M256) M256   { return lanes.Binary(a, b, lanes.Sub[float32]) }
func Mm256SubPd(a, b M256d) M256d { return lanes.Binary(a, b, lanes.Sub[float64]) }
func MmMulPs(a, b M128) M128      { return lanes.Binary(a, b, lanes.Mul[float32]) }
func MmMulPd(a, b M128d) M128d    { return lanes.Binary(a, b, lanes.Mul[float64]) }
func Mm256MulPs(a, b M256) M256   { return lanes.Binary(a, b, lanes.Mul[float32]) }
func Mm256MulPd(a, b M256d) M256d { return lanes.Binary(a, b, lanes.Mul[float64]) }
func MmDivPs(a, b M128) M128      { return lanes.Binary(a, b, lanes.Div[float32]) }
func MmDivPd(a, b M128d) M128d    { return lanes.Binary(a, b, lanes.Div[float64]) }
func Mm256DivPs(a, b M256) M256   { return lanes.Binary(a, b, lanes.Div[float32]) }
func Mm256DivPd(a, b M256d) M256d { return lanes.Binary(a, b, lanes.Div[float64]) }

func MmSqrtPs(a M128) M128      { return lanes.Unary(a, lanes.Sqrt[float32]) }
func MmSqrtPd(a M128d) M128d    { return lanes.Unary(a, lanes.Sqrt[float64]) }
func Mm256SqrtPs(a M256) M256   { return lanes.Unary(a, lanes.Sqrt[float32]) }
func Mm256SqrtPd(a M256d) M256d { return lanes.Unary(a, lanes.Sqrt[float64]) }

// Floor rounds toward minus infinity, the _MM_FROUND_FLOOR form of round.
func MmFloorPs(a M128) M128      { return lanes.Unary(a, lanes.Floor[float32]) }
func MmFloorPd(a M128d) M128d    { return lanes.Unary(a, lanes.Floor[float64]) }
func Mm256FloorPs(a M256) M256   { return lanes.Unary(a, lanes.Floor[float32]) }
func Mm256FloorPd(a M256d) M256d { return lanes.Unary(a, lanes.Floor[float64]) }

// Min returns b unless a < b, and Max returns b unless a > b. A NaN in
// either operand and equal zeros of either sign both yield b.
func MmMinPs(a, b M128) M128      { return lanes.Binary(a, b, minLane[float32]) }
func MmMinPd(a, b M128d) M128d    { return lanes.Binary(a, b, minLane[float64]) }
func Mm256MinPs(a, b M256) M256   { return lanes.Binary(a, b, minLane[float32]) }
func Mm256MinPd(a, b M256d) M256d { return lanes.Binary(a, b, minLane[float64]) }
func MmMaxPs(a, b M128) M128      { return lanes.Binary(a, b, maxLane[float32]) }
func MmMaxPd(a, b M128d) M128d    { return lanes.Binary(a, b, maxLane[float64]) }
func Mm256MaxPs(a, b M256) M256   { return lanes.Binary(a, b, maxLane[float32]) }
func Mm256MaxPd(a, b M256d) M256d { return lanes.Binary(a, b, maxLane[float64]) }

func minLane[E lanes.Float](x, y E) E {
	if x < y {
		return x
	}
	return y
}

func maxLane[E lanes.Float](x, y E) E {
	if x > y {
		return x
	}
	return y
}

// Fmadd returns a*b + c with a single rounding.
func MmFmaddPs(a, b, c M128) M128      { return lanes.Ternary(a, b, c, lanes.FMA[float32]) }
func MmFmaddPd(a, b, c M128d) M128d    { return lanes.Ternary(a, b, c, lanes.FMA[float64]) }
func Mm256FmaddPs(a, b, c M256) M256   { return lanes.Ternary(a, b, c, lanes.FMA[float32]) }
func Mm256FmaddPd(a, b, c M256d) M256d { return lanes.Ternary(a, b, c, lanes.FMA[float64]) }

// Bitwise float operations see only bits. Andnot computes ^a & b.
func MmAndPs(a, b M128) M128         { return lanes.Bits(a, b, lanes.And[byte]) }
func MmAndPd(a, b M128d) M128d       { return lanes.Bits(a, b, lanes.And[byte]) }
func Mm256AndPs(a, b M256) M256      { return lanes.Bits(a, b, lanes.And[byte]) }
func Mm256AndPd(a, b M256d) M256d    { return lanes.Bits(a, b, lanes.And[byte]) }
func MmOrPs(a, b M128) M128          { return lanes.Bits(a, b, lanes.Or[byte]) }
func MmOrPd(a, b M128d) M128d        { return lanes.Bits(a, b, lanes.Or[byte]) }
func Mm256OrPs(a, b M256) M256       { return lanes.Bits(a, b, lanes.Or[byte]) }
func Mm256OrPd(a, b M256d) M256d     { return lanes.Bits(a, b, lanes.Or[byte]) }
func MmXorPs(a, b M128) M128         { return lanes.Bits(a, b, lanes.Xor[byte]) }
func MmXorPd(a, b M128d) M128d       { return lanes.Bits(a, b, lanes.Xor[byte]) }
func Mm256XorPs(a, b M256) M256      { return lanes.Bits(a, b, lanes.Xor[byte]) }
func Mm256XorPd(a, b M256d) M256d    { return lanes.Bits(a, b, lanes.Xor[byte]) }
func MmAndnotPs(a, b M128) M128      { return lanes.Bits(b, a, lanes.AndNot[byte]) }
func MmAndnotPd(a, b M128d) M128d    { return lanes.Bits(b, a, lanes.AndNot[byte]) }
func Mm256AndnotPs(a, b M256) M256   { return lanes.Bits(b, a, lanes.AndNot[byte]) }
func Mm256AndnotPd(a, b M256d) M256d { return lanes.Bits(b, a, lanes.AndNot[byte]) }

// Blendv takes each lane from b where the sign bit of the matching lane of
// m is set and from a elsewhere.
func MmBlendvPs(a, b, m M128) M128      { return lanes.Blend(a, b, m, 4) }
func MmBlendvPd(a, b, m M128d) M128d    { return lanes.Blend(a, b, m, 8) }
func Mm256BlendvPs(a, b, m M256) M256   { return lanes.Blend(a, b, m, 4) }
func Mm256BlendvPd(a, b, m M256d) M256d { return lanes.Blend(a, b, m, 8) }

// Cmp sets a lane to all ones where the predicate imm holds.
func MmCmpPs(a, b M128, imm int) M128 {
	return lanes.Compare[M128](a, b, predicate[float32](imm))
}

func MmCmpPd(a, b M128d, imm int) M128d {
	return lanes.Compare[M128d](a, b, predicate[float64](imm))
}

func Mm256CmpPs(a, b M256, imm int) M256 {
	return lanes.Compare[M256](a, b, predicate[float32](imm))
}

func Mm256CmpPd(a, b M256d, imm int) M256d {
	return lanes.Compare[M256d](a, b, predicate[float64](imm))
}

func MmSet1Ps(x float32) M128     { return lanes.Splat[M128](x) }
func MmSet1Pd(x float64) M128d    { return lanes.Splat[M128d](x) }
func Mm256Set1Ps(x float32) M256  { return lanes.Splat[M256](x) }
func Mm256Set1Pd(x float64) M256d { return lanes.Splat[M256d](x) }

func MmSetzeroPs() M128    { return M128{} }
func Mm256SetzeroPs() M256 { return M256{} }
