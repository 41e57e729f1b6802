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

// Package lanes holds the lane plumbing shared by the instruction binding
// packages. A register is any fixed-size array; helpers view it as a slice
// of lanes of the element type the instruction works on, so one register
// type can be read as bytes, words or floats just like the hardware does.
package lanes

import (
	"cmp"
	"math"
	"unsafe"
)

// Integer is any fixed-width integer lane.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is a floating-point lane.
type Float interface {
	~float32 | ~float64
}

// Number is any lane type.
type Number interface {
	Integer | Float
}

// Of views the register at v as a slice of E lanes. Writes through the
// slice modify *v.
func Of[E, V any](v *V) []E {
	var e E
	return unsafe.Slice((*E)(unsafe.Pointer(v)), unsafe.Sizeof(*v)/unsafe.Sizeof(e))
}

// Bytes views the register at v as bytes.
func Bytes[V any](v *V) []byte {
	return Of[byte](v)
}

// Cast reinterprets the bits of v as a To. Both types must have the same
// size.
func Cast[To, From any](v From) To {
	var to To
	if unsafe.Sizeof(to) != unsafe.Sizeof(v) {
		panic("lanes: cast between registers of different size")
	}
	copy(Bytes(&to), Bytes(&v))
	return to
}

// Splat returns a register with x in every E lane.
func Splat[V, E any](x E) V {
	var r V
	rl := Of[E](&r)
	for i := range rl {
		rl[i] = x
	}
	return r
}

// Unary applies f to every lane of a.
func Unary[E, V any](a V, f func(E) E) V {
	var r V
	rl, al := Of[E](&r), Of[E](&a)
	for i := range rl {
		rl[i] = f(al[i])
	}
	return r
}

// Binary applies f to every pair of lanes of a and b.
func Binary[E, V any](a, b V, f func(E, E) E) V {
	var r V
	rl, al, bl := Of[E](&r), Of[E](&a), Of[E](&b)
	for i := range rl {
		rl[i] = f(al[i], bl[i])
	}
	return r
}

// Ternary applies f to every triple of lanes of a, b and c.
func Ternary[E, V any](a, b, c V, f func(E, E, E) E) V {
	var r V
	rl, al, bl, cl := Of[E](&r), Of[E](&a), Of[E](&b), Of[E](&c)
	for i := range rl {
		rl[i] = f(al[i], bl[i], cl[i])
	}
	return r
}

// Compare returns a mask register whose lanes are all ones where f holds
// and all zeros elsewhere. Mask lanes are as wide as E.
func Compare[M, E, V any](a, b V, f func(E, E) bool) M {
	var m M
	al, bl := Of[E](&a), Of[E](&b)
	mb := Bytes(&m)
	size := len(mb) / len(al)
	for i := range al {
		if f(al[i], bl[i]) {
			for j := range size {
				mb[i*size+j] = 0xFF
			}
		}
	}
	return m
}

// Convert fills every T lane of the result with f applied to the E lane of
// a at the same index plus from.
func Convert[R, E, T, V any](a V, from int, f func(E) T) R {
	var r R
	rl, al := Of[T](&r), Of[E](&a)
	for i := range rl {
		rl[i] = f(al[from+i])
	}
	return r
}

// Bits applies f to every byte of a and b. Bitwise instructions do not
// care about lane boundaries.
func Bits[V any](a, b V, f func(x, y byte) byte) V {
	return Binary(a, b, f)
}

// BitSelect takes each bit from a where the bit of m is set and from b
// elsewhere.
func BitSelect[V, M any](m M, a, b V) V {
	var r V
	rb, ab, bb, mb := Bytes(&r), Bytes(&a), Bytes(&b), Bytes(&m)
	for i := range rb {
		rb[i] = ab[i]&mb[i] | bb[i]&^mb[i]
	}
	return r
}

// Blend takes each size-byte lane from b where the top bit of the
// matching lane of m is set and from a elsewhere.
func Blend[V any](a, b, m V, size int) V {
	r := a
	rb, bb, mb := Bytes(&r), Bytes(&b), Bytes(&m)
	for i := 0; i < len(rb); i += size {
		if mb[i+size-1]&0x80 != 0 {
			copy(rb[i:i+size], bb[i:i+size])
		}
	}
	return r
}

// ZipLo interleaves the low halves of a and b: a0, b0, a1, b1, ...
func ZipLo[E, V any](a, b V) V {
	return zip[E](a, b, 0)
}

// ZipHi interleaves the high halves of a and b.
func ZipHi[E, V any](a, b V) V {
	return zip[E](a, b, len(Of[E](&a))/2)
}

func zip[E, V any](a, b V, from int) V {
	var r V
	rl, al, bl := Of[E](&r), Of[E](&a), Of[E](&b)
	for i := range len(rl) / 2 {
		rl[2*i], rl[2*i+1] = al[from+i], bl[from+i]
	}
	return r
}

// UnzipEven gathers the even lanes of a followed by those of b.
func UnzipEven[E, V any](a, b V) V {
	return unzip[E](a, b, 0)
}

// UnzipOdd gathers the odd lanes of a followed by those of b.
func UnzipOdd[E, V any](a, b V) V {
	return unzip[E](a, b, 1)
}

func unzip[E, V any](a, b V, odd int) V {
	var r V
	rl, al, bl := Of[E](&r), Of[E](&a), Of[E](&b)
	h := len(rl) / 2
	for i := range h {
		rl[i], rl[h+i] = al[2*i+odd], bl[2*i+odd]
	}
	return r
}

func Add[E Number](x, y E) E { return x + y }
func Sub[E Number](x, y E) E { return x - y }
func Mul[E Number](x, y E) E { return x * y }
func Div[E Float](x, y E) E  { return x / y }

func And[E Integer](x, y E) E    { return x & y }
func Or[E Integer](x, y E) E     { return x | y }
func Xor[E Integer](x, y E) E    { return x ^ y }
func AndNot[E Integer](x, y E) E { return x &^ y }
func Not[E Integer](x E) E       { return ^x }

func Eq[E comparable](x, y E) bool  { return x == y }
func Lt[E cmp.Ordered](x, y E) bool { return x < y }
func Le[E cmp.Ordered](x, y E) bool { return x <= y }
func Gt[E cmp.Ordered](x, y E) bool { return x > y }
func Ge[E cmp.Ordered](x, y E) bool { return x >= y }

// Min and Max propagate NaN and order -0 below +0.
func Min[E Number](x, y E) E { return min(x, y) }
func Max[E Number](x, y E) E { return max(x, y) }

func Neg[E Float](x E) E   { return -x }
func Abs[E Float](x E) E   { return E(math.Abs(float64(x))) }
func Sqrt[E Float](x E) E  { return E(math.Sqrt(float64(x))) }
func Floor[E Float](x E) E { return E(math.Floor(float64(x))) }

// FMA returns x*y + z rounded once in float64. float32 lanes round that
// result again to float32.
func FMA[E Float](x, y, z E) E {
	return E(math.FMA(float64(x), float64(y), float64(z)))
}

// Shl shifts x left by n. Counts at or past the lane width give zero.
func Shl[E Integer](x E, n uint) E { return x << n }

// Shr shifts x right by n: arithmetically for signed lanes and logically
// otherwise. Counts past the lane width give the sign fill.
func Shr[E Integer](x E, n uint) E { return x >> n }

// ShiftBy shifts x left by k, or right by -k when k is negative.
func ShiftBy[E Integer](x E, k int) E {
	if k >= 0 {
		return x << uint(k)
	}
	return x >> uint(-k)
}

// Resize converts between integer lanes, truncating or extending the way
// Go conversions do.
func Resize[T, E Integer](x E) T { return T(x) }

// TruncU32 converts x toward zero to a uint32, saturating: NaN and
// negatives give 0, values of 2^32 and above give MaxUint32.
func TruncU32[E Float](x E) uint32 {
	switch {
	case !(x >= 1):
		return 0
	case x >= 1<<32:
		return math.MaxUint32
	}
	return uint32(x)
}

// TruncI32 converts x toward zero to an int32. NaN and values outside the
// int32 range give the integer indefinite value, MinInt32.
func TruncI32[E Float](x E) int32 {
	if !(x >= -1<<31 && x < 1<<31) {
		return math.MinInt32
	}
	return int32(x)
}

// SatU8 clamps x into [0, 255].
func SatU8(x int16) uint8 {
	return uint8(min(max(x, 0), math.MaxUint8))
}

// SatU16 clamps x into [0, 65535].
func SatU16(x int32) uint16 {
	return uint16(min(max(x, 0), math.MaxUint16))
}
