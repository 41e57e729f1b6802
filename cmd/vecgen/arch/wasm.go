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

package arch

import (
	"fmt"
	"strconv"

	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
)

// wasmTranslator targets WebAssembly SIMD128. There is a single untyped
// 128-bit register type, v128; instructions carry the lane interpretation
// in their name (f32x4_add, u8x16_shr).
type wasmTranslator struct {
	b binding
}

// Wasm128 returns the translator for the Wasm128 level.
func Wasm128() Translator { return wasmTranslator{binding{pkg: "wasm"}} }

func (wasmTranslator) Name() string { return "Wasm128" }

func (wasmTranslator) NativeType(s catalog.Shape) (Repr, error) {
	w := s.Width()
	if !s.Valid() || w < 128 || w > catalog.MaxWidth {
		return Repr{}, fmt.Errorf("Wasm128: %s: %w", s, ErrWidth)
	}
	return Repr{Type: "v128", Count: w / 128}, nil
}

// lanes is the instruction lane prefix. Signed shapes use iNxM; unsigned
// and mask shapes use uNxM, which aliases iNxM where signedness does not
// matter.
func (wasmTranslator) lanes(s catalog.Shape) string {
	var p string
	switch s.Kind {
	case catalog.Float:
		p = "f"
	case catalog.SignedInt:
		p = "i"
	default:
		p = "u"
	}
	return p + strconv.Itoa(s.Bits) + "x" + strconv.Itoa(128/s.Bits)
}

func (t wasmTranslator) v128() string { return t.b.qual("V128") }

func (t wasmTranslator) in(x Expr) Expr { return t.b.cast(t.v128(), x) }

func (t wasmTranslator) out(x Expr, s catalog.Shape) Expr { return t.b.cast(s.Name(), x) }

// op calls <lanes>_<name>, e.g. f32x4_add.
func (t wasmTranslator) op(s catalog.Shape, name string, args ...Expr) *Call {
	return t.b.call(t.lanes(s)+"_"+name, t.v128(), args...)
}

// v calls a lane-agnostic v128_<name> instruction.
func (t wasmTranslator) v(name string, args ...Expr) *Call {
	return t.b.call("v128_"+name, t.v128(), args...)
}

var wasmDirect = map[string]string{
	"sqrt":   "sqrt",
	"abs":    "abs",
	"neg":    "neg",
	"floor":  "floor",
	"add":    "add",
	"sub":    "sub",
	"div":    "div",
	"min":    "min",
	"max":    "max",
	"cmp_eq": "eq",
	"cmp_lt": "lt",
	"cmp_le": "le",
	"cmp_gt": "gt",
	"cmp_ge": "ge",
}

var wasmBitwise = map[string]string{
	"and":     "and",
	"or":      "or",
	"xor":     "xor",
	"and_not": "andnot",
	"not":     "not",
}

var wasmExpanded = map[string]bool{
	"splat": true, "mul": true, "copysign": true, "min_precise": true,
	"max_precise": true, "madd": true, "select": true, "shl": true,
	"shr": true, "zip": true, "unzip": true, "widen": true, "narrow": true,
	"reinterpret_u8": true, "convert_u32": true,
}

func (t wasmTranslator) known(name string) bool {
	_, d := wasmDirect[name]
	_, b := wasmBitwise[name]
	return d || b || wasmExpanded[name]
}

func (t wasmTranslator) Translate(op catalog.Op, s catalog.Shape) (*Impl, error) {
	if impl, ok := halves(op, s); ok {
		return impl, nil
	}
	if !t.known(op.Name) {
		return nil, unknown(t.Name(), op, s)
	}
	switch {
	case s.Width() == 128:
		return t.native(op, s)
	case s.Width() == 256 && op.Name == "narrow":
		return t.narrow(op, s), nil
	}
	return nil, declined(t.Name(), op, s)
}

func (t wasmTranslator) impl(stmts []Stmt, results ...Expr) *Impl {
	return &Impl{Stmts: stmts, Results: results, Imports: []string{t.b.pkg}}
}

func (t wasmTranslator) native(op catalog.Op, s catalog.Shape) (*Impl, error) {
	name := s.Name()
	a := t.in(ident("a", name))
	b := t.in(ident("b", name))
	c := t.in(ident("c", name))

	if stem, ok := wasmBitwise[op.Name]; ok {
		if op.Name == "not" {
			return t.impl(nil, t.out(t.v(stem, a), s)), nil
		}
		return t.impl(nil, t.out(t.v(stem, a, b), s)), nil
	}
	if stem, ok := wasmDirect[op.Name]; ok {
		if op.Kind == catalog.Compare {
			return t.compare(op, s, stem), nil
		}
		if op.Kind == catalog.Unary {
			return t.impl(nil, t.out(t.op(s, stem, a), s)), nil
		}
		return t.impl(nil, t.out(t.op(s, stem, a, b), s)), nil
	}

	switch op.Name {
	case "splat":
		var x Expr = ident("x", s.ScalarParam())
		if s.Kind == catalog.Mask {
			x = maskOf(s, x)
		}
		return t.impl(nil, t.out(t.op(s, "splat", x), s)), nil
	case "mul":
		if s.Bits == 8 {
			return t.mul8(s), nil
		}
		return t.impl(nil, t.out(t.op(s, "mul", a, b), s)), nil
	case "madd":
		return t.impl(nil, t.out(t.op(s, "add", t.op(s, "mul", a, b), c), s)), nil
	case "min_precise":
		// pmin(x, y) is y < x ? y : x.
		return t.impl(nil, t.out(t.op(s, "pmin", b, a), s)), nil
	case "max_precise":
		// pmax(x, y) is x < y ? y : x.
		return t.impl(nil, t.out(t.op(s, "pmax", b, a), s)), nil
	case "copysign":
		u := s.WithLane(catalog.UnsignedInt, s.Bits)
		v := "0x80000000"
		if s.Bits == 64 {
			v = "0x8000000000000000"
		}
		sign := t.op(u, "splat", lit(v, u.Lane()))
		return t.impl(nil, t.out(t.v("bitselect", b, a, sign), s)), nil
	case "select":
		m := t.in(ident("m", s.MaskShape().Name()))
		return t.impl(nil, t.out(t.v("bitselect", a, b, m), s)), nil
	case "shl", "shr":
		n := lit("uint32(n)", "uint32")
		p := s
		if op.Name == "shl" {
			p = s.WithLane(catalog.SignedInt, s.Bits)
		}
		return t.impl(nil, t.out(t.op(p, op.Name, a, n), s)), nil
	case "zip":
		lo, hi := zipIndices(s)
		return t.impl(nil, t.out(t.shuffle(a, b, lo), s), t.out(t.shuffle(a, b, hi), s)), nil
	case "unzip":
		even, odd := unzipIndices(s)
		return t.impl(nil, t.out(t.shuffle(a, b, even), s), t.out(t.shuffle(a, b, odd), s)), nil
	case "widen":
		half := op.Target.Half()
		x := ident("x", t.v128())
		src := t.lanes(s)
		lo := t.op(half, "extend_low_"+src, x)
		hi := t.op(half, "extend_high_"+src, x)
		return t.impl([]Stmt{assign("x", a)}, Combine(half, t.out(lo, half), t.out(hi, half))), nil
	case "reinterpret_u8":
		return t.impl(nil, t.b.cast(op.Target.Name(), ident("a", name))), nil
	case "convert_u32":
		return t.impl(nil, t.out(t.op(op.Target, "trunc_sat_"+t.lanes(s), a), op.Target)), nil
	}
	return nil, unknown(t.Name(), op, s)
}

// compare maps onto the lane compare instructions. There is no unsigned
// 64-bit ordering compare; flipping the sign bits maps it onto the signed
// one.
func (t wasmTranslator) compare(op catalog.Op, s catalog.Shape, stem string) *Impl {
	a := t.in(ident("a", s.Name()))
	b := t.in(ident("b", s.Name()))
	m := s.MaskShape()
	if s.Kind != catalog.UnsignedInt || s.Bits != 64 || op.Name == "cmp_eq" {
		return t.impl(nil, t.out(t.op(s, stem, a, b), m))
	}
	i := s.WithLane(catalog.SignedInt, 64)
	bias := ident("bias", t.v128())
	return t.impl([]Stmt{
		assign("bias", t.op(i, "splat", lit("-0x8000000000000000", "int64"))),
	}, t.out(t.op(i, stem, t.v("xor", a, bias), t.v("xor", b, bias)), m))
}

// mul8 multiplies bytes through the widening 16-bit products and keeps the
// low byte of each.
func (t wasmTranslator) mul8(s catalog.Shape) *Impl {
	a := t.in(ident("a", s.Name()))
	b := t.in(ident("b", s.Name()))
	u16 := catalog.S(catalog.UnsignedInt, 16, 8)
	lo := t.op(u16, "extmul_low_u8x16", a, b)
	hi := t.op(u16, "extmul_high_u8x16", a, b)
	idx := make([]int, 16)
	for i := range idx {
		idx[i] = 2 * i
	}
	return t.impl(nil, t.out(t.shuffle(lo, hi, idx), s))
}

// shuffle picks bytes from the 32-byte concatenation of x and y.
func (t wasmTranslator) shuffle(x, y Expr, idx []int) Expr {
	return t.b.call("i8x16_shuffle", t.v128(), x, y, lit(byteIndices(idx), "[16]uint8"))
}

func byteIndices(idx []int) string {
	var text []byte
	text = append(text, "[16]uint8{"...)
	for i, v := range idx {
		if i > 0 {
			text = append(text, ", "...)
		}
		text = strconv.AppendInt(text, int64(v), 10)
	}
	return string(append(text, '}'))
}

// laneBytes expands lane indices into the byte indices of those lanes.
func laneBytes(s catalog.Shape, lanes []int) []int {
	size := s.Bits / 8
	var idx []int
	for _, l := range lanes {
		for j := 0; j < size; j++ {
			idx = append(idx, l*size+j)
		}
	}
	return idx
}

// zipIndices returns the shuffle indices interleaving the low halves and the
// high halves of two registers. Lanes of the second register are numbered
// after those of the first.
func zipIndices(s catalog.Shape) (lo, hi []int) {
	n := 128 / s.Bits
	var l, h []int
	for i := 0; i < n/2; i++ {
		l = append(l, i, n+i)
		h = append(h, n/2+i, n+n/2+i)
	}
	return laneBytes(s, l), laneBytes(s, h)
}

// unzipIndices returns the shuffle indices gathering even and odd lanes.
func unzipIndices(s catalog.Shape) (even, odd []int) {
	n := 128 / s.Bits
	var e, o []int
	for i := 0; i < n; i++ {
		e = append(e, 2*i)
		o = append(o, 2*i+1)
	}
	return laneBytes(s, e), laneBytes(s, o)
}

// narrow masks each source lane to its low half and packs two registers
// with the saturating narrow, which the mask makes exact.
func (t wasmTranslator) narrow(op catalog.Op, s catalog.Shape) *Impl {
	half := s.Half()
	to := op.Target
	keep := "0xFF"
	if s.Bits == 32 {
		keep = "0xFFFF"
	}
	a := ident("a", s.Name())
	mask := ident("mask", t.v128())
	lo := t.v("and", t.in(Lower(s, a)), mask)
	hi := t.v("and", t.in(Upper(s, a)), mask)
	src := "i" + strconv.Itoa(half.Bits) + "x" + strconv.Itoa(half.Lanes)
	r := t.op(to, "narrow_"+src, lo, hi)
	return t.impl([]Stmt{assign("mask", t.op(half, "splat", lit(keep, half.Lane())))}, t.out(r, to))
}
