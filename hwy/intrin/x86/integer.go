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

// Integer arithmetic wraps on overflow.
func MmAddEpi8(a, b M128i) M128i     { return lanes.Binary(a, b, lanes.Add[int8]) }
func MmAddEpi16(a, b M128i) M128i    { return lanes.Binary(a, b, lanes.Add[int16]) }
func MmAddEpi32(a, b M128i) M128i    { return lanes.Binary(a, b, lanes.Add[int32]) }
func MmAddEpi64(a, b M128i) M128i    { return lanes.Binary(a, b, lanes.Add[int64]) }
func Mm256AddEpi8(a, b M256i) M256i  { return lanes.Binary(a, b, lanes.Add[int8]) }
func Mm256AddEpi16(a, b M256i) M256i { return lanes.Binary(a, b, lanes.Add[int16]) }
func Mm256AddEpi32(a, b M256i) M256i { return lanes.Binary(a, b, lanes.Add[int32]) }
func Mm256AddEpi64(a, b M256i) M256i { return lanes.Binary(a, b, lanes.Add[int64]) }
func MmSubEpi8(a, b M128i) M128i     { return lanes.Binary(a, b, lanes.Sub[int8]) }
func MmSubEpi16(a, b M128i) M128i    { return lanes.Binary(a, b, lanes.Sub[int16]) }
func MmSubEpi32(a, b M128i) M128i    { return lanes.Binary(a, b, lanes.Sub[int32]) }
func MmSubEpi64(a, b M128i) M128i    { return lanes.Binary(a, b, lanes.Sub[int64]) }
func Mm256SubEpi8(a, b M256i) M256i  { return lanes.Binary(a, b, lanes.Sub[int8]) }
func Mm256SubEpi16(a, b M256i) M256i { return lanes.Binary(a, b, lanes.Sub[int16]) }
func Mm256SubEpi32(a, b M256i) M256i { return lanes.Binary(a, b, lanes.Sub[int32]) }
func Mm256SubEpi64(a, b M256i) M256i { return lanes.Binary(a, b, lanes.Sub[int64]) }

// Mullo keeps the low half of each product.
func MmMulloEpi16(a, b M128i) M128i    { return lanes.Binary(a, b, lanes.Mul[int16]) }
func MmMulloEpi32(a, b M128i) M128i    { return lanes.Binary(a, b, lanes.Mul[int32]) }
func Mm256MulloEpi16(a, b M256i) M256i { return lanes.Binary(a, b, lanes.Mul[int16]) }
func Mm256MulloEpi32(a, b M256i) M256i { return lanes.Binary(a, b, lanes.Mul[int32]) }

// MulEpu32 multiplies the low 32 bits of each 64-bit lane into a full
// 64-bit product.
func MmMulEpu32(a, b M128i) M128i    { return lanes.Binary(a, b, mulEven) }
func Mm256MulEpu32(a, b M256i) M256i { return lanes.Binary(a, b, mulEven) }

func mulEven(x, y uint64) uint64 {
	return uint64(uint32(x)) * uint64(uint32(y))
}

// Bitwise operations on whole registers. Andnot computes ^a & b.
func MmAndSi128(a, b M128i) M128i       { return lanes.Bits(a, b, lanes.And[byte]) }
func Mm256AndSi256(a, b M256i) M256i    { return lanes.Bits(a, b, lanes.And[byte]) }
func MmOrSi128(a, b M128i) M128i        { return lanes.Bits(a, b, lanes.Or[byte]) }
func Mm256OrSi256(a, b M256i) M256i     { return lanes.Bits(a, b, lanes.Or[byte]) }
func MmXorSi128(a, b M128i) M128i       { return lanes.Bits(a, b, lanes.Xor[byte]) }
func Mm256XorSi256(a, b M256i) M256i    { return lanes.Bits(a, b, lanes.Xor[byte]) }
func MmAndnotSi128(a, b M128i) M128i    { return lanes.Bits(b, a, lanes.AndNot[byte]) }
func Mm256AndnotSi256(a, b M256i) M256i { return lanes.Bits(b, a, lanes.AndNot[byte]) }

// BlendvEpi8 takes each byte from b where the top bit of the matching byte
// of m is set and from a elsewhere.
func MmBlendvEpi8(a, b, m M128i) M128i    { return lanes.Blend(a, b, m, 1) }
func Mm256BlendvEpi8(a, b, m M256i) M256i { return lanes.Blend(a, b, m, 1) }

// Cmpeq and Cmpgt set a lane to all ones where the relation holds. Cmpgt
// compares signed lanes.
func MmCmpeqEpi8(a, b M128i) M128i     { return lanes.Compare[M128i](a, b, lanes.Eq[int8]) }
func MmCmpeqEpi16(a, b M128i) M128i    { return lanes.Compare[M128i](a, b, lanes.Eq[int16]) }
func MmCmpeqEpi32(a, b M128i) M128i    { return lanes.Compare[M128i](a, b, lanes.Eq[int32]) }
func MmCmpeqEpi64(a, b M128i) M128i    { return lanes.Compare[M128i](a, b, lanes.Eq[int64]) }
func Mm256CmpeqEpi8(a, b M256i) M256i  { return lanes.Compare[M256i](a, b, lanes.Eq[int8]) }
func Mm256CmpeqEpi16(a, b M256i) M256i { return lanes.Compare[M256i](a, b, lanes.Eq[int16]) }
func Mm256CmpeqEpi32(a, b M256i) M256i { return lanes.Compare[M256i](a, b, lanes.Eq[int32]) }
func Mm256CmpeqEpi64(a, b M256i) M256i { return lanes.Compare[M256i](a, b, lanes.Eq[int64]) }
func MmCmpgtEpi8(a, b M128i) M128i     { return lanes.Compare[M128i](a, b, lanes.Gt[int8]) }
func MmCmpgtEpi16(a, b M128i) M128i    { return lanes.Compare[M128i](a, b, lanes.Gt[int16]) }
func MmCmpgtEpi32(a, b M128i) M128i    { return lanes.Compare[M128i](a, b, lanes.Gt[int32]) }
func MmCmpgtEpi64(a, b M128i) M128i    { return lanes.Compare[M128i](a, b, lanes.Gt[int64]) }
func Mm256CmpgtEpi8(a, b M256i) M256i  { return lanes.Compare[M256i](a, b, lanes.Gt[int8]) }
func Mm256CmpgtEpi16(a, b M256i) M256i { return lanes.Compare[M256i](a, b, lanes.Gt[int16]) }
func Mm256CmpgtEpi32(a, b M256i) M256i { return lanes.Compare[M256i](a, b, lanes.Gt[int32]) }
func Mm256CmpgtEpi64(a, b M256i) M256i { return lanes.Compare[M256i](a, b, lanes.Gt[int64]) }

func MmSet1Epi8(x int8) M128i       { return lanes.Splat[M128i](x) }
func MmSet1Epi16(x int16) M128i     { return lanes.Splat[M128i](x) }
func MmSet1Epi32(x int32) M128i     { return lanes.Splat[M128i](x) }
func MmSet1Epi64x(x int64) M128i    { return lanes.Splat[M128i](x) }
func Mm256Set1Epi8(x int8) M256i    { return lanes.Splat[M256i](x) }
func Mm256Set1Epi16(x int16) M256i  { return lanes.Splat[M256i](x) }
func Mm256Set1Epi32(x int32) M256i  { return lanes.Splat[M256i](x) }
func Mm256Set1Epi64x(x int64) M256i { return lanes.Splat[M256i](x) }

// Immediate shifts move every lane by imm. Logical shifts of imm at or past
// the lane width give zero and arithmetic ones give the sign fill.
func MmSlliEpi16(a M128i, imm int) M128i    { return shiftImm(a, imm, lanes.Shl[uint16]) }
func MmSlliEpi32(a M128i, imm int) M128i    { return shiftImm(a, imm, lanes.Shl[uint32]) }
func MmSlliEpi64(a M128i, imm int) M128i    { return shiftImm(a, imm, lanes.Shl[uint64]) }
func MmSrliEpi16(a M128i, imm int) M128i    { return shiftImm(a, imm, lanes.Shr[uint16]) }
func MmSrliEpi32(a M128i, imm int) M128i    { return shiftImm(a, imm, lanes.Shr[uint32]) }
func MmSrliEpi64(a M128i, imm int) M128i    { return shiftImm(a, imm, lanes.Shr[uint64]) }
func MmSraiEpi16(a M128i, imm int) M128i    { return shiftImm(a, imm, lanes.Shr[int16]) }
func MmSraiEpi32(a M128i, imm int) M128i    { return shiftImm(a, imm, lanes.Shr[int32]) }
func Mm256SlliEpi16(a M256i, imm int) M256i { return shiftImm(a, imm, lanes.Shl[uint16]) }
func Mm256SlliEpi32(a M256i, imm int) M256i { return shiftImm(a, imm, lanes.Shl[uint32]) }
func Mm256SlliEpi64(a M256i, imm int) M256i { return shiftImm(a, imm, lanes.Shl[uint64]) }
func Mm256SrliEpi16(a M256i, imm int) M256i { return shiftImm(a, imm, lanes.Shr[uint16]) }
func Mm256SrliEpi32(a M256i, imm int) M256i { return shiftImm(a, imm, lanes.Shr[uint32]) }
func Mm256SrliEpi64(a M256i, imm int) M256i { return shiftImm(a, imm, lanes.Shr[uint64]) }
func Mm256SraiEpi16(a M256i, imm int) M256i { return shiftImm(a, imm, lanes.Shr[int16]) }
func Mm256SraiEpi32(a M256i, imm int) M256i { return shiftImm(a, imm, lanes.Shr[int32]) }

func shiftImm[E lanes.Integer, V any](a V, imm int, f func(E, uint) E) V {
	return lanes.Unary(a, func(x E) E { return f(x, uint(imm)) })
}
