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

// Andnot computes a & ^b.
func V128And(a, b V128) V128    { return lanes.Bits(a, b, lanes.And[byte]) }
func V128Or(a, b V128) V128     { return lanes.Bits(a, b, lanes.Or[byte]) }
func V128Xor(a, b V128) V128    { return lanes.Bits(a, b, lanes.Xor[byte]) }
func V128Andnot(a, b V128) V128 { return lanes.Bits(a, b, lanes.AndNot[byte]) }
func V128Not(a V128) V128       { return lanes.Unary(a, lanes.Not[byte]) }

// V128Bitselect takes each bit from a where the bit of c is set and from b
// elsewhere.
func V128Bitselect(a, b, c V128) V128 {
	return lanes.BitSelect(c, a, b)
}

// I8x16Shuffle picks each byte of the result from the 32 bytes of a followed
// by b. Only the low five bits of an index are used.
func I8x16Shuffle(a, b V128, idx [16]uint8) V128 {
	var ab [32]byte
	copy(ab[:], a[:])
	copy(ab[16:], b[:])
	var r V128
	for i, k := range idx {
		r[i] = ab[k&31]
	}
	return r
}
