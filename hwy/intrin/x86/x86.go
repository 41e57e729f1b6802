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


// Package x86 binds the SSE and AVX2 intrinsics the Avx2 level is generated
// against. Each function is named after the Intel intrinsic it stands for
// (_mm256_add_ps is Mm256AddPs) and computes the lanes the instruction
// computes, including its results for NaN, overflow and out-of-range shift
// counts. The package is plain Go and builds on every architecture.
package x86

import "github.com/ajroetker/go-lanes/hwy/intrin/internal/lanes"

// M128 represents a 128-bit SSE register of 4 float32 values.
type M128 [4]float32

// M128d represents a 128-bit SSE register of 2 float64 values.
type M128d [2]float64

// M128i represents a 128-bit SSE register of integer lanes. Instructions
// choose the lane width, so the register is kept as bytes.
type M128i [16]byte

// M256 represents a 256-bit AVX register of 8 float32 values.
type M256 [8]float32

// M256d represents a 256-bit AVX register of 4 float64 values.
type M256d [4]float64

// M256i represents a 256-bit AVX register of integer lanes.
type M256i [32]byte

// Cast reinterprets the bits of v as a To of the same size, the way vector
// shapes move in and out of integer registers.
func Cast[To, From any](v From) To {
	return lanes.Cast[To](v)
}

// Comparison predicates for Cmp. The ordered forms are false when either
// lane is NaN.
const (
	CmpEqOQ   = 0x00
	CmpUnordQ = 0x03
	CmpLtOQ   = 0x11
	CmpLeOQ   = 0x12
	CmpGeOQ   = 0x1D
	CmpGtOQ   = 0x1E
)

// predicate returns the relation of a Cmp immediate. Bit 4 only selects
// whether quiet NaNs signal, which does not change the result.
func predicate[E lanes.Float](imm int) func(x, y E) bool {
	unordered := func(x, y E) bool { return x != x || y != y }
	switch imm & 0xF {
	case 0x0:
		return func(x, y E) bool { return x == y }
	case 0x1:
		return func(x, y E) bool { return x < y }
	case 0x2:
		return func(x, y E) bool { return x <= y }
	case 0x3:
		return unordered
	case 0x4:
		return func(x, y E) bool { return x != y }
	case 0x5:
		return func(x, y E) bool { return !(x < y) }
	case 0x6:
		return func(x, y E) bool { return !(x <= y) }
	case 0x7:
		return func(x, y E) bool { return !unordered(x, y) }
	case 0x8:
		return func(x, y E) bool { return x == y || unordered(x, y) }
	case 0x9:
		return func(x, y E) bool { return !(x >= y) }
	case 0xA:
		return func(x, y E) bool { return !(x > y) }
	case 0xB:
		return func(x, y E) bool { return false }
	case 0xC:
		return func(x, y E) bool { return x < y || x > y }
	case 0xD:
		return func(x, y E) bool { return x >= y }
	case 0xE:
		return func(x, y E) bool { return x > y }
	}
	return func(x, y E) bool { return true }
}
