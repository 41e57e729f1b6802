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

// Unpacklo interleaves the low halves of a and b, Unpackhi the high halves.
func MmUnpackloEpi8(a, b M128i) M128i  { return lanes.ZipLo[int8](a, b) }
func MmUnpackloEpi16(a, b M128i) M128i { return lanes.ZipLo[int16](a, b) }
func MmUnpackloEpi32(a, b M128i) M128i { return lanes.ZipLo[int32](a, b) }
func MmUnpackloEpi64(a, b M128i) M128i { return lanes.ZipLo[int64](a, b) }
func MmUnpackloPs(a, b M128) M128      { return lanes.ZipLo[float32](a, b) }
func MmUnpackloPd(a, b M128d) M128d    { return lanes.ZipLo[float64](a, b) }
func MmUnpackhiEpi8(a, b M128i) M128i  { return lanes.ZipHi[int8](a, b) }
func MmUnpackhiEpi16(a, b M128i) M128i { return lanes.ZipHi[int16](a, b) }
func MmUnpackhiEpi32(a, b M128i) M128i { return lanes.ZipHi[int32](a, b) }
func MmUnpackhiEpi64(a, b M128i) M128i { return lanes.ZipHi[int64](a, b) }
func MmUnpackhiPs(a, b M128) M128      { return lanes.ZipHi[float32](a, b) }
func MmUnpackhiPd(a, b M128d) M128d    { return lanes.ZipHi[float64](a, b) }

// MmShufflePs picks the two low lanes of the result from a and the two high
// lanes from b, each by a 2-bit field of imm.
func MmShufflePs(a, b M128, imm int) M128 {
	return M128{a[imm&3], a[imm>>2&3], b[imm>>4&3], b[imm>>6&3]}
}

// MmSetrEpi8 builds a register from bytes listed from the lowest lane up.
func MmSetrEpi8(e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15 int8) M128i {
	return Cast[M128i]([16]int8{e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15})
}

// MmShuffleEpi8 picks bytes of a by the low four bits of each byte of idx.
// Bytes of idx with the top bit set produce zero.
func MmShuffleEpi8(a, idx M128i) M128i {
	var r M128i
	for i, k := range idx {
		if k&0x80 == 0 {
			r[i] = a[k&15]
		}
	}
	return r
}

// MmPackusEpi16 narrows the signed 16-bit lanes of a then b to bytes,
// saturating to [0, 255].
func MmPackusEpi16(a, b M128i) M128i {
	return packus(a, b, lanes.SatU8)
}

// MmPackusEpi32 narrows the signed 32-bit lanes of a then b to 16 bits,
// saturating to [0, 65535].
func MmPackusEpi32(a, b M128i) M128i {
	return packus(a, b, lanes.SatU16)
}

func packus[E, T lanes.Integer](a, b M128i, sat func(E) T) M128i {
	var r M128i
	rl, al, bl := lanes.Of[T](&r), lanes.Of[E](&a), lanes.Of[E](&b)
	for i := range al {
		rl[i] = sat(al[i])
		rl[len(al)+i] = sat(bl[i])
	}
	return r
}
