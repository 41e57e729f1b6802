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

// neonTranslator targets AArch64 Advanced SIMD. Registers are 128 bits;
// wider shapes are declined and decomposed, except the narrowing ops whose
// source is two registers wide.
type neonTranslator struct {
	b binding
}

// Neon returns the translator for the Neon level.
func Neon() Translator { return neonTranslator{binding{pkg: "neon"}} }

func (neonTranslator) Name() string { return "Neon" }

func (neonTranslator) NativeType(s catalog.Shape) (Repr, error) {
	w := s.Width()
	if !s.Valid() || (w != 64 && (w < 128 || w > catalog.MaxWidth)) {
		return Repr{}, fmt.Errorf("Neon: %s: %w", s, ErrWidth)
	}
	count, lanes := 1, s.Lanes
	if w > 128 {
		count, lanes = w/128, 128/s.Bits
	}
	return Repr{Type: neonLaneType(s) + "x" + strconv.Itoa(lanes) + "_t", Count: count}, nil
}

func neonLaneType(s catalog.Shape) string {
	switch s.Kind {
	case catalog.Float:
		return "float" + strconv.Itoa(s.Bits)
	case catalog.SignedInt:
		return "int" + strconv.Itoa(s.Bits)
	default:
		return "uint" + strconv.Itoa(s.Bits)
	}
}

// suffix is the intrinsic type suffix: f32, s16, u8. Masks use the
// unsigned suffix of their width.
func (neonTranslator) suffix(s catalog.Shape) string {
	switch s.Kind {
	case catalog.Float:
		return "f" + strconv.Itoa(s.Bits)
	case catalog.SignedInt:
		return "s" + strconv.Itoa(s.Bits)
	default:
		return "u" + strconv.Itoa(s.Bits)
	}
}

// reg is the binding type holding one register of shape s.
func (t neonTranslator) reg(s catalog.Shape) string {
	var kind string
	switch s.Kind {
	case catalog.Float:
		kind = "Float"
	case catalog.SignedInt:
		kind = "Int"
	default:
		kind = "Uint"
	}
	return t.b.qual(kind + strconv.Itoa(s.Bits) + "x" + strconv.Itoa(s.Lanes))
}

// in converts a raw lane array into the register type; both share their
// underlying array type.
func (t neonTranslator) in(x Expr, s catalog.Shape) Expr { return conv(t.reg(s), x) }

func (t neonTranslator) out(x Expr, s catalog.Shape) Expr { return conv(s.Name(), x) }

// q calls stem_suffix, e.g. vaddq_f32, producing a register of shape res.
func (t neonTranslator) q(stem string, s, res catalog.Shape, args ...Expr) *Call {
	return t.b.call(stem+"_"+t.suffix(s), t.reg(res), args...)
}

var neonUnary = map[string]string{
	"sqrt":  "vsqrtq",
	"abs":   "vabsq",
	"neg":   "vnegq",
	"floor": "vrndmq",
	"not":   "vmvnq",
}

var neonBinary = map[string]string{
	"add":     "vaddq",
	"sub":     "vsubq",
	"mul":     "vmulq",
	"div":     "vdivq",
	"min":     "vminq",
	"max":     "vmaxq",
	"and":     "vandq",
	"or":      "vorrq",
	"xor":     "veorq",
	"and_not": "vbicq",
}

var neonCompare = map[string]string{
	"cmp_eq": "vceqq",
	"cmp_lt": "vcltq",
	"cmp_le": "vcleq",
	"cmp_gt": "vcgtq",
	"cmp_ge": "vcgeq",
}

var neonExpanded = map[string]bool{
	"splat": true, "select": true, "madd": true, "zip": true, "unzip": true,
	"min_precise": true, "max_precise": true, "copysign": true, "shl": true,
	"shr": true, "widen": true, "narrow": true, "reinterpret_u8": true,
	"convert_u32": true,
}

func (t neonTranslator) known(name string) bool {
	_, u := neonUnary[name]
	_, b := neonBinary[name]
	_, c := neonCompare[name]
	return u || b || c || neonExpanded[name]
}

func (t neonTranslator) Translate(op catalog.Op, s catalog.Shape) (*Impl, error) {
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

func (t neonTranslator) impl(stmts []Stmt, results ...Expr) *Impl {
	return &Impl{Stmts: stmts, Results: results, Imports: []string{t.b.pkg}}
}

func (t neonTranslator) native(op catalog.Op, s catalog.Shape) (*Impl, error) {
	name := s.Name()
	a := t.in(ident("a", name), s)
	b := t.in(ident("b", name), s)
	c := t.in(ident("c", name), s)

	if stem, ok := neonUnary[op.Name]; ok {
		if op.Name == "not" && s.Bits == 64 {
			return t.impl(nil, t.out(t.q("veorq", s, s, a, t.ones(s)), s)), nil
		}
		return t.impl(nil, t.out(t.q(stem, s, s, a), s)), nil
	}
	if stem, ok := neonBinary[op.Name]; ok {
		if op.Name == "mul" && s.IsInt() && s.Bits == 64 {
			return t.mul64(s), nil
		}
		return t.impl(nil, t.out(t.q(stem, s, s, a, b), s)), nil
	}
	if stem, ok := neonCompare[op.Name]; ok {
		m := s.MaskShape()
		return t.impl(nil, t.out(t.q(stem, s, m, a, b), m)), nil
	}

	switch op.Name {
	case "splat":
		var x Expr = ident("x", s.ScalarParam())
		if s.Kind == catalog.Mask {
			x = maskOf(s, x)
		}
		return t.impl(nil, t.out(t.b.call("vdupq_n_"+t.suffix(s), t.reg(s), x), s)), nil
	case "select":
		m := t.in(ident("m", s.MaskShape().Name()), s.MaskShape())
		return t.impl(nil, t.out(t.q("vbslq", s, s, m, a, b), s)), nil
	case "madd":
		return t.impl(nil, t.out(t.q("vfmaq", s, s, c, a, b), s)), nil
	case "zip":
		return t.impl(nil, t.out(t.q("vzip1q", s, s, a, b), s), t.out(t.q("vzip2q", s, s, a, b), s)), nil
	case "unzip":
		return t.impl(nil, t.out(t.q("vuzp1q", s, s, a, b), s), t.out(t.q("vuzp2q", s, s, a, b), s)), nil
	case "min_precise", "max_precise":
		cmp := "vcltq"
		if op.Name == "max_precise" {
			cmp = "vcgtq"
		}
		m := t.q(cmp, s, s.MaskShape(), a, b)
		return t.impl(nil, t.out(t.q("vbslq", s, s, m, a, b), s)), nil
	case "copysign":
		sign := t.signBit(s)
		return t.impl(nil, t.out(t.q("vbslq", s, s, sign, b, a), s)), nil
	case "shl", "shr":
		return t.shift(op, s), nil
	case "widen":
		return t.widen(op, s), nil
	case "reinterpret_u8":
		to := op.Target
		r := t.b.call("vreinterpretq_"+t.suffix(to)+"_"+t.suffix(s), t.reg(to), a)
		return t.impl(nil, t.out(r, to)), nil
	case "convert_u32":
		to := op.Target
		r := t.b.call("vcvtq_"+t.suffix(to)+"_"+t.suffix(s), t.reg(to), a)
		return t.impl(nil, t.out(r, to)), nil
	}
	// narrow at 128 bits would produce a 64-bit vector, which is not in the
	// catalog.
	return nil, unknown(t.Name(), op, s)
}

// ones is a register with every bit set.
func (t neonTranslator) ones(s catalog.Shape) Expr {
	v := "0xFFFFFFFFFFFFFFFF"
	if s.Kind == catalog.SignedInt {
		v = "-1"
	}
	return t.b.call("vdupq_n_"+t.suffix(s), t.reg(s), lit(v, s.Lane()))
}

// signBit is an unsigned register holding only the sign bit of each lane.
func (t neonTranslator) signBit(s catalog.Shape) Expr {
	u := s.WithLane(catalog.UnsignedInt, s.Bits)
	v := "0x80000000"
	if s.Bits == 64 {
		v = "0x8000000000000000"
	}
	return t.b.call("vdupq_n_"+t.suffix(u), t.reg(u), lit(v, u.Lane()))
}

// mul64 multiplies 64-bit lanes from 32x32->64 widening products:
// lo(a)*lo(b) + (hi(a)*lo(b) + lo(a)*hi(b))<<32.
func (t neonTranslator) mul64(s catalog.Shape) *Impl {
	u := s.WithLane(catalog.UnsignedInt, 64)
	u32 := catalog.S(catalog.UnsignedInt, 32, 2)
	x := t.in(ident("a", s.Name()), s)
	y := t.in(ident("b", s.Name()), s)
	if s.Kind == catalog.SignedInt {
		x = t.b.call("vreinterpretq_u64_s64", t.reg(u), x)
		y = t.b.call("vreinterpretq_u64_s64", t.reg(u), y)
	}
	xi, yi := ident("x", t.reg(u)), ident("y", t.reg(u))
	low := func(v Expr) Expr { return t.b.call("vmovn_u64", t.reg(u32), v) }
	high := func(v Expr) Expr { return t.b.call("vshrn_n_u64", t.reg(u32), v, lit("32", "int")) }
	mull := func(p, q Expr) Expr { return t.b.call("vmull_u32", t.reg(u), p, q) }
	add := func(p, q Expr) Expr { return t.b.call("vaddq_u64", t.reg(u), p, q) }

	lo := mull(low(xi), low(yi))
	cross := add(mull(high(xi), low(yi)), mull(low(xi), high(yi)))
	var r Expr = add(ident("lo", t.reg(u)), t.b.call("vshlq_n_u64", t.reg(u), ident("cross", t.reg(u)), lit("32", "int")))
	if s.Kind == catalog.SignedInt {
		r = t.b.call("vreinterpretq_s64_u64", t.reg(s), r)
	}
	return t.impl([]Stmt{
		&Assign{Names: []string{"x"}, Value: x},
		&Assign{Names: []string{"y"}, Value: y},
		&Assign{Names: []string{"lo"}, Value: lo},
		&Assign{Names: []string{"cross"}, Value: cross},
	}, t.out(r, s))
}

// shift uses the register-count shift vshlq, which shifts right for
// negative counts: arithmetically for signed lanes, logically otherwise.
func (t neonTranslator) shift(op catalog.Op, s catalog.Shape) *Impl {
	cnt := s.WithLane(catalog.SignedInt, s.Bits)
	n := shiftCount(cnt.Lane(), s)
	if op.Name == "shr" {
		n = "-" + n
	}
	k := t.b.call("vdupq_n_"+t.suffix(cnt), t.reg(cnt), lit(n, cnt.Lane()))
	a := t.in(ident("a", s.Name()), s)
	r := t.q("vshlq", s, s, a, ident("k", t.reg(cnt)))
	return t.impl([]Stmt{&Assign{Names: []string{"k"}, Value: k}}, t.out(r, s))
}

// widen zero-extends the low and high register halves separately.
func (t neonTranslator) widen(op catalog.Op, s catalog.Shape) *Impl {
	half := op.Target.Half()
	low := catalog.S(catalog.UnsignedInt, s.Bits, s.Lanes/2)
	a := t.in(ident("a", s.Name()), s)
	sfx := t.suffix(s)
	lo := t.b.call("vmovl_"+sfx, t.reg(half), t.b.call("vget_low_"+sfx, t.reg(low), a))
	hi := t.b.call("vmovl_high_"+sfx, t.reg(half), a)
	return t.impl(nil, Combine(half, t.out(lo, half), t.out(hi, half)))
}

// narrow keeps the low half of every lane of a two-register source.
func (t neonTranslator) narrow(op catalog.Op, s catalog.Shape) *Impl {
	half := s.Half()
	to := op.Target
	small := catalog.S(catalog.UnsignedInt, to.Bits, to.Lanes/2)
	a := ident("a", s.Name())
	lo := t.b.call("vmovn_"+t.suffix(half), t.reg(small), t.in(Lower(s, a), half))
	hi := t.b.call("vmovn_"+t.suffix(half), t.reg(small), t.in(Upper(s, a), half))
	r := t.b.call("vcombine_"+t.suffix(to), t.reg(to), lo, hi)
	return t.impl(nil, t.out(r, to))
}
