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

// Extend zero-extends the low or high half of the lanes of a to twice
// their width.
func U16x8ExtendLowU8x16(a V128) V128 {
	return lanes.Convert[V128](a, 0, lanes.Resize[uint16, uint8])
}

func U16x8ExtendHighU8x16(a V128) V128 {
	return lanes.Convert[V128](a, 8, lanes.Resize[uint16, uint8])
}

func U32x4ExtendLowU16x8(a V128) V128 {
	return lanes.Convert[V128](a, 0, lanes.Resize[uint32, uint16])
}

func U32x4ExtendHighU16x8(a V128) V128 {
	return lanes.Convert[V128](a, 4, lanes.Resize[uint32, uint16])
}

// Extmul multiplies the low or high half of the lanes of a and b into
// products of twice the width.
func U16x8ExtmulLowU8x16(a, b V128) V128 {
	return extmul[uint8, uint16](a, b, 0)
}

func U16x8ExtmulHighU8x16(a, b V128) V128 {
	return extmul[uint8, uint16](a, b, 8)
}

func extmul[E, T lanes.Integer](a, b V128, from int) V128 {
	var r V128
	rl, al, bl := lanes.Of[T](&r), lanes.Of[E](&a), lanes.Of[E](&b)
	for i := range rl {
		rl[i] = T(al[from+i]) * T(bl[from+i])
	}
	return r
}

// Narrow packs the signed lanes of a then b into unsigned lanes of half the
// width, saturating.
func U8x16NarrowI16x8(a, b V128) V128 {
	return narrow(a, b, lanes.SatU8)
}

func U16x8NarrowI32x4(a, b V128) V128 {
	return narrow(a, b, lanes.SatU16)
}

func narrow[E, T lanes.Integer](a, b V128, sat func(E) T) V128 {
	var r V128
	rl, al, bl := lanes.Of[T](&r), lanes.Of[E](&a), lanes.Of[E](&b)
	for i := range al {
		rl[i] = sat(al[i])
		rl[len(al)+i] = sat(bl[i])
	}
	return r
}

// U32x4TruncSatF32x4 converts toward zero, saturating. NaN converts to 0.
func U32x4TruncSatF32x4(a V128) V128 {
	return lanes.Convert[V128](a, 0, lanes.TruncU32[float32])
}
