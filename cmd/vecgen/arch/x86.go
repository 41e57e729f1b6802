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
	"strings"

	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
)

// x86Translator targets AVX2 with FMA. Both 128-bit (_mm_) and 256-bit
// (_mm256_) registers are native; 512-bit shapes are declined. Zip, unzip
// and widening from a 256-bit source are declined at 256 bits too, because
// the AVX2 unpack and shuffle instructions work within 128-bit lanes.
type x86Translator struct {
	b binding
}

// Avx2 returns the translator for the Avx2 level.
func Avx2() Translator { return x86Translator{binding{pkg: "x86"}} }

func (x86Translator) Name() string { return "Avx2" }

func (x86Translator) NativeType(s catalog.Shape) (Repr, error) {
	w := s.Width()
	if !s.Valid() || w < 128 || w > catalog.MaxWidth {
		return Repr{}, fmt.Errorf("Avx2: %s: %w", s, ErrWidth)
	}
	count := 1
	if w > 256 {
		count, w = w/256, 256
	}
	typ := "__m" + strconv.Itoa(w)
	switch {
	case s.Kind == catalog.Float && s.Bits == 64:
		typ += "d"
	case s.Kind != catalog.Float:
		typ += "i"
	}
	return Repr{Type: typ, Count: count}, nil
}

// prefix is _mm or _mm256.
func (x86Translator) prefix(s catalog.Shape) string {
	if s.Width() == 256 {
		return "_mm256"
	}
	return "_mm"
}

// width is the register width in the si128/si256 suffixes.
func (x86Translator) width(s catalog.Shape) string {
	return strconv.Itoa(s.Width())
}

// suffix is ps, pd or epiN.
func (x86Translator) suffix(s catalog.Shape) string {
	if s.Kind == catalog.Float {
		if s.Bits == 32 {
			return "ps"
		}
		return "pd"
	}
	return "epi" + strconv.Itoa(s.Bits)
}

func (t x86Translator) reg(s catalog.Shape) string {
	name := "M" + t.width(s)
	switch {
	case s.Kind == catalog.Float && s.Bits == 64:
		name += "d"
	case s.Kind != catalog.Float:
		name += "i"
	}
	return t.b.qual(name)
}

// in moves a raw lane array into a register. Float arrays share their
// underlying type with the float registers; everything else is cast.
func (t x86Translator) in(x Expr, s catalog.Shape) Expr {
	if s.Kind == catalog.Float {
		return conv(t.reg(s), x)
	}
	return t.b.cast(t.reg(s), x)
}

func (t x86Translator) out(x Expr, s catalog.Shape) Expr {
	if s.Kind == catalog.Float && x.Type() == t.reg(s) {
		return conv(s.Name(), x)
	}
	return t.b.cast(s.Name(), x)
}

// mm calls prefix_name, e.g. mm(s, "add_ps", ...) -> _mm256_add_ps.
func (t x86Translator) mm(s catalog.Shape, name, result string, args ...Expr) *Call {
	return t.b.call(t.prefix(s)+"_"+name, result, args...)
}

// si calls a whole-register bitwise op: and_si128, andnot_si256, ...
func (t x86Translator) si(s catalog.Shape, name string, args ...Expr) *Call {
	return t.mm(s, name+"_si"+t.width(s), t.reg(s), args...)
}

var x86Float = map[string]string{
	"sqrt":        "sqrt",
	"floor":       "floor",
	"add":         "add",
	"sub":         "sub",
	"mul":         "mul",
	"div":         "div",
	"min_precise": "min",
	"max_precise": "max",
	"madd":        "fmadd",
}

var x86Int = map[string]string{
	"add": "add",
	"sub": "sub",
}

var x86Bitwise = map[string]string{
	"and": "and",
	"or":  "or",
	"xor": "xor",
}

// x86Predicates maps float compares onto _mm_cmp_ps predicates.
var x86Predicates = map[string]string{
	"cmp_eq": "x86.CmpEqOQ",
	"cmp_lt": "x86.CmpLtOQ",
	"cmp_le": "x86.CmpLeOQ",
	"cmp_gt": "x86.CmpGtOQ",
	"cmp_ge": "x86.CmpGeOQ",
}

var x86Expanded = map[string]bool{
	"splat": true, "abs": true, "neg": true, "copysign": true, "min": true,
	"max": true, "select": true, "mul": true, "not": true, "and_not": true,
	"shl": true, "shr": true, "zip": true, "unzip": true, "widen": true,
	"narrow": true, "reinterpret_u8": true, "convert_u32": true,
}

func (t x86Translator) known(name string) bool {
	_, f := x86Float[name]
	_, i := x86Int[name]
	_, b := x86Bitwise[name]
	_, c := x86Predicates[name]
	return f || i || b || c || x86Expanded[name]
}

func (t x86Translator) Translate(op catalog.Op, s catalog.Shape) (*Impl, error) {
	if impl, ok := halves(op, s); ok {
		return impl, nil
	}
	if !t.known(op.Name) {
		return nil, unknown(t.Name(), op, s)
	}
	w := s.Width()
	switch op.Name {
	case "zip", "unzip", "widen":
		if w != 128 {
			return nil, declined(t.Name(), op, s)
		}
	case "narrow":
		if w != 256 {
			return nil, declined(t.Name(), op, s)
		}
		return t.narrow(op, s), nil
	}
	if w > 256 {
		return nil, declined(t.Name(), op, s)
	}
	if s.Kind == catalog.Float {
		return t.float(op, s)
	}
	return t.integer(op, s)
}

func (t x86Translator) impl(stmts []Stmt, results ...Expr) *Impl {
	return &Impl{Stmts: stmts, Results: results, Imports: []string{t.b.pkg}}
}

func assign(name string, v Expr) Stmt {
	return &Assign{Names: []string{name}, Value: v}
}

func (t x86Translator) float(op catalog.Op, s catalog.Shape) (*Impl, error) {
	name, sfx, reg := s.Name(), t.suffix(s), t.reg(s)
	a := t.in(ident("a", name), s)
	b := t.in(ident("b", name), s)
	c := t.in(ident("c", name), s)
	f := func(stem string, args ...Expr) *Call { return t.mm(s, stem+"_"+sfx, reg, args...) }

	if stem, ok := x86Float[op.Name]; ok {
		switch op.Kind {
		case catalog.Unary:
			return t.impl(nil, t.out(f(stem, a), s)), nil
		case catalog.Ternary:
			return t.impl(nil, t.out(f(stem, a, b, c), s)), nil
		}
		return t.impl(nil, t.out(f(stem, a, b), s)), nil
	}
	if pred, ok := x86Predicates[op.Name]; ok {
		return t.impl(nil, t.out(f("cmp", a, b, lit(pred, "int")), s.MaskShape())), nil
	}

	sign := ident("sign", reg)
	signStmt := assign("sign", t.signBit(s))
	switch op.Name {
	case "splat":
		return t.impl(nil, t.out(f("set1", ident("x", s.Lane())), s)), nil
	case "abs":
		return t.impl([]Stmt{signStmt}, t.out(f("andnot", sign, a), s)), nil
	case "neg":
		return t.impl([]Stmt{signStmt}, t.out(f("xor", a, sign), s)), nil
	case "copysign":
		return t.impl([]Stmt{signStmt}, t.out(f("or", f("andnot", sign, a), f("and", sign, b)), s)), nil
	case "min":
		// min_ps returns its second operand on NaN and on equal zeros;
		// or-ing both orders propagates NaN and prefers -0.
		return t.impl(nil, t.out(f("or", f("min", a, b), f("min", b, a)), s)), nil
	case "max":
		r := f("or", f("and", f("max", a, b), f("max", b, a)), f("cmp", a, b, lit("x86.CmpUnordQ", "int")))
		return t.impl(nil, t.out(r, s)), nil
	case "select":
		m := t.b.cast(reg, ident("m", s.MaskShape().Name()))
		return t.impl(nil, t.out(f("blendv", b, a, m), s)), nil
	case "zip":
		return t.impl(nil, t.out(f("unpacklo", a, b), s), t.out(f("unpackhi", a, b), s)), nil
	case "unzip":
		if s.Bits == 64 {
			return t.impl(nil, t.out(f("unpacklo", a, b), s), t.out(f("unpackhi", a, b), s)), nil
		}
		return t.impl(nil,
			t.out(f("shuffle", a, b, lit("0x88", "int")), s),
			t.out(f("shuffle", a, b, lit("0xDD", "int")), s)), nil
	case "convert_u32":
		return t.convertU32(op, s), nil
	}
	return nil, unknown(t.Name(), op, s)
}

// signBit builds a float register holding only the sign bit of each lane.
func (t x86Translator) signBit(s catalog.Shape) Expr {
	i := s.WithLane(catalog.SignedInt, s.Bits)
	v := "-0x80000000"
	if s.Bits == 64 {
		v = "-0x8000000000000000"
	}
	return t.mm(s, "castsi"+t.width(s)+"_"+t.suffix(s), t.reg(s), t.set1(i, lit(v, i.Lane())))
}

// set1 broadcasts an integer of the lane width. The 64-bit form is
// set1_epi64x.
func (t x86Translator) set1(s catalog.Shape, x Expr) *Call {
	name := "set1_" + t.suffix(s)
	if s.Bits == 64 {
		name += "x"
	}
	return t.mm(s, name, t.reg(s.WithLane(catalog.SignedInt, s.Bits)), x)
}

// convertU32 converts f32 lanes to u32 with saturation. cvttps handles the
// values below 2^31 directly; values in [2^31, 2^32) are offset by 2^31
// first; NaN and negatives are clamped to zero beforehand and values of 2^32
// and above are forced to all ones.
func (t x86Translator) convertU32(op catalog.Op, s catalog.Shape) *Impl {
	freg := t.reg(s)
	i := s.WithLane(catalog.SignedInt, 32)
	ireg := t.reg(i)
	w := t.width(s)
	x, two31 := ident("x", freg), ident("two31", freg)
	lo, hi := ident("lo", ireg), ident("hi", ireg)
	big, sat := ident("big", ireg), ident("sat", ireg)
	cvtt := func(v Expr) Expr { return t.mm(s, "cvttps_epi32", ireg, v) }
	ge := func(p, q Expr) Expr {
		return t.mm(s, "castps_si"+w, ireg, t.mm(s, "cmp_ps", freg, p, q, lit("x86.CmpGeOQ", "int")))
	}
	return t.impl([]Stmt{
		assign("x", t.mm(s, "max_ps", freg, t.in(ident("a", s.Name()), s), t.mm(s, "setzero_ps", freg))),
		assign("two31", t.mm(s, "set1_ps", freg, lit("2147483648", "float32"))),
		assign("lo", cvtt(x)),
		assign("hi", t.mm(s, "add_epi32", ireg, cvtt(t.mm(s, "sub_ps", freg, x, two31)), t.set1(i, lit("-0x80000000", "int32")))),
		assign("big", ge(x, two31)),
		assign("sat", ge(x, t.mm(s, "set1_ps", freg, lit("4294967296", "float32")))),
	}, t.out(t.si(s, "or", t.mm(s, "blendv_epi8", ireg, lo, hi, big), sat), op.Target))
}

func (t x86Translator) integer(op catalog.Op, s catalog.Shape) (*Impl, error) {
	name, sfx, reg := s.Name(), t.suffix(s), t.reg(s)
	a := t.in(ident("a", name), s)
	b := t.in(ident("b", name), s)
	f := func(stem string, args ...Expr) *Call { return t.mm(s, stem+"_"+sfx, reg, args...) }

	if stem, ok := x86Int[op.Name]; ok {
		return t.impl(nil, t.out(f(stem, a, b), s)), nil
	}
	if stem, ok := x86Bitwise[op.Name]; ok {
		return t.impl(nil, t.out(t.si(s, stem, a, b), s)), nil
	}
	if _, ok := x86Predicates[op.Name]; ok {
		return t.compare(op, s), nil
	}

	switch op.Name {
	case "splat":
		var x Expr = ident("x", s.ScalarParam())
		if s.Kind == catalog.Mask {
			x = maskOf(s, x)
		}
		return t.impl(nil, t.out(t.set1(s, conv(s.WithLane(catalog.SignedInt, s.Bits).Lane(), x)), s)), nil
	case "not":
		return t.impl(nil, t.out(t.si(s, "xor", a, t.ones(s)), s)), nil
	case "and_not":
		return t.impl(nil, t.out(t.si(s, "andnot", b, a), s)), nil
	case "mul":
		return t.mul(s), nil
	case "shl", "shr":
		return t.shift(op, s), nil
	case "select":
		m := t.in(ident("m", s.MaskShape().Name()), s.MaskShape())
		return t.impl(nil, t.out(t.mm(s, "blendv_epi8", reg, b, a, m), s)), nil
	case "zip":
		return t.impl(nil, t.out(f("unpacklo", a, b), s), t.out(f("unpackhi", a, b), s)), nil
	case "unzip":
		return t.unzip(s), nil
	case "widen":
		to := op.Target
		r := t.mm(to, "cvtepu"+strconv.Itoa(s.Bits)+"_epi"+strconv.Itoa(to.Bits), t.reg(to), a)
		return t.impl(nil, t.out(r, to)), nil
	case "reinterpret_u8":
		return t.impl(nil, t.b.cast(op.Target.Name(), ident("a", name))), nil
	}
	return nil, unknown(t.Name(), op, s)
}

// ones is an all-ones integer register.
func (t x86Translator) ones(s catalog.Shape) Expr {
	return t.mm(s, "set1_epi32", t.reg(s), lit("-1", "int32"))
}

func (t x86Translator) compare(op catalog.Op, s catalog.Shape) *Impl {
	reg, sfx := t.reg(s), t.suffix(s)
	var stmts []Stmt
	var x, y Expr = t.in(ident("a", s.Name()), s), t.in(ident("b", s.Name()), s)
	if s.Kind == catalog.UnsignedInt && op.Name != "cmp_eq" {
		// Flipping the sign bit maps unsigned order onto signed order.
		bias := "-0x" + "8" + strings.Repeat("0", s.Bits/4-1)
		stmts = []Stmt{
			assign("bias", t.set1(s, lit(bias, s.WithLane(catalog.SignedInt, s.Bits).Lane()))),
			assign("x", t.si(s, "xor", x, ident("bias", reg))),
			assign("y", t.si(s, "xor", y, ident("bias", reg))),
		}
		x, y = ident("x", reg), ident("y", reg)
	}
	gt := func(p, q Expr) Expr { return t.mm(s, "cmpgt_"+sfx, reg, p, q) }
	var r Expr
	switch op.Name {
	case "cmp_eq":
		r = t.mm(s, "cmpeq_"+sfx, reg, x, y)
	case "cmp_gt":
		r = gt(x, y)
	case "cmp_lt":
		r = gt(y, x)
	case "cmp_le":
		r = t.si(s, "xor", gt(x, y), t.ones(s))
	case "cmp_ge":
		r = t.si(s, "xor", gt(y, x), t.ones(s))
	}
	return t.impl(stmts, t.out(r, s.MaskShape()))
}

// mul multiplies integer lanes. 8-bit lanes multiply even and odd bytes as
// 16-bit lanes; 64-bit lanes are assembled from 32x32->64 products.
func (t x86Translator) mul(s catalog.Shape) *Impl {
	reg := t.reg(s)
	in := []Stmt{
		assign("x", t.in(ident("a", s.Name()), s)),
		assign("y", t.in(ident("b", s.Name()), s)),
	}
	x, y := ident("x", reg), ident("y", reg)
	imm := func(v string) Expr { return lit(v, "int") }
	switch s.Bits {
	case 16, 32:
		return t.impl(nil, t.out(t.mm(s, "mullo_"+t.suffix(s), reg,
			t.in(ident("a", s.Name()), s), t.in(ident("b", s.Name()), s)), s))
	case 8:
		w16 := func(stem string, args ...Expr) *Call { return t.mm(s, stem+"_epi16", reg, args...) }
		u16 := s.Reinterpreted(catalog.SignedInt, 16)
		even := t.si(s, "and", w16("mullo", x, y), t.set1(u16, lit("0xFF", "int16")))
		odd := w16("slli", w16("mullo", w16("srli", x, imm("8")), w16("srli", y, imm("8"))), imm("8"))
		return t.impl(append(in, assign("even", even), assign("odd", odd)),
			t.out(t.si(s, "or", ident("even", reg), ident("odd", reg)), s))
	}
	w64 := func(stem string, args ...Expr) *Call { return t.mm(s, stem, reg, args...) }
	cross := w64("add_epi64",
		w64("mul_epu32", w64("srli_epi64", x, imm("32")), y),
		w64("mul_epu32", x, w64("srli_epi64", y, imm("32"))))
	r := w64("add_epi64", w64("mul_epu32", x, y), w64("slli_epi64", ident("cross", reg), imm("32")))
	return t.impl(append(in, assign("cross", cross)), t.out(r, s))
}

// shift shifts by n modulo the lane width. 8-bit lanes shift as 16-bit
// lanes and mask off the bits that crossed a byte; arithmetic shifts
// without an instruction (8 and 64 bits) sign-extend a logical shift with
// (v ^ m) - m, where m is the shifted sign bit.
func (t x86Translator) shift(op catalog.Op, s catalog.Shape) *Impl {
	reg := t.reg(s)
	a := t.in(ident("a", s.Name()), s)
	k := ident("k", "int")
	stmts := []Stmt{assign("k", lit(shiftCount("int", s), "int"))}
	left := op.Name == "shl"
	arith := op.Name == "shr" && s.Kind == catalog.SignedInt
	bits := strconv.Itoa(s.Bits)
	if s.Bits == 8 {
		w16 := func(stem string, args ...Expr) *Call { return t.mm(s, stem+"_epi16", reg, args...) }
		keep := "int8(uint8(0xFF) >> (n & 7))"
		var r Expr = t.si(s, "and", w16("srli", a, k), ident("m", reg))
		if left {
			keep = "int8(uint8(0xFF) << (n & 7))"
			r = t.si(s, "and", w16("slli", a, k), ident("m", reg))
		}
		stmts = append(stmts, assign("m", t.set1(s, lit(keep, "int8"))))
		if arith {
			stmts = append(stmts, assign("sign", t.set1(s, lit("int8(uint8(0x80) >> (n & 7))", "int8"))))
			sign := ident("sign", reg)
			r = t.mm(s, "sub_epi8", reg, t.si(s, "xor", r, sign), sign)
		}
		return t.impl(stmts, t.out(r, s))
	}
	switch {
	case left:
		return t.impl(stmts, t.out(t.mm(s, "slli_epi"+bits, reg, a, k), s))
	case !arith:
		return t.impl(stmts, t.out(t.mm(s, "srli_epi"+bits, reg, a, k), s))
	case s.Bits != 64:
		return t.impl(stmts, t.out(t.mm(s, "srai_epi"+bits, reg, a, k), s))
	}
	stmts = append(stmts, assign("m", t.set1(s, lit("int64(uint64(1<<63) >> (n & 63))", "int64"))))
	m := ident("m", reg)
	r := t.mm(s, "sub_epi64", reg, t.si(s, "xor", t.mm(s, "srli_epi64", reg, a, k), m), m)
	return t.impl(stmts, t.out(r, s))
}

// unzip gathers even and odd lanes of a 128-bit pair. 32-bit lanes use the
// float shuffle; 8 and 16-bit lanes first sort each register into
// even|odd halves with a byte shuffle.
func (t x86Translator) unzip(s catalog.Shape) *Impl {
	reg := t.reg(s)
	a := t.in(ident("a", s.Name()), s)
	b := t.in(ident("b", s.Name()), s)
	switch s.Bits {
	case 64:
		return t.impl(nil,
			t.out(t.mm(s, "unpacklo_epi64", reg, a, b), s),
			t.out(t.mm(s, "unpackhi_epi64", reg, a, b), s))
	case 32:
		ps := t.b.qual("M128")
		shuf := func(imm string) Expr {
			return t.mm(s, "castps_si128", reg, t.mm(s, "shuffle_ps", ps,
				t.mm(s, "castsi128_ps", ps, a), t.mm(s, "castsi128_ps", ps, b), lit(imm, "int")))
		}
		return t.impl(nil, t.out(shuf("0x88"), s), t.out(shuf("0xDD"), s))
	}
	lane := s.Bits / 8
	var idx []Expr
	for _, part := range []int{0, 1} {
		for i := part; i < s.Lanes; i += 2 {
			for j := 0; j < lane; j++ {
				idx = append(idx, lit(strconv.Itoa(i*lane+j), "int8"))
			}
		}
	}
	x, y := ident("x", reg), ident("y", reg)
	return t.impl([]Stmt{
		assign("idx", t.mm(s, "setr_epi8", reg, idx...)),
		assign("x", t.mm(s, "shuffle_epi8", reg, a, ident("idx", reg))),
		assign("y", t.mm(s, "shuffle_epi8", reg, b, ident("idx", reg))),
	},
		t.out(t.mm(s, "unpacklo_epi64", reg, x, y), s),
		t.out(t.mm(s, "unpackhi_epi64", reg, x, y), s))
}

// narrow masks every 256-bit lane to its low half and packs the two
// 128-bit halves with unsigned saturation, which the mask makes exact.
func (t x86Translator) narrow(op catalog.Op, s catalog.Shape) *Impl {
	reg := t.reg(s)
	to := op.Target
	keep := "0xFF"
	if s.Bits == 32 {
		keep = "0xFFFF"
	}
	x := ident("x", reg)
	half := t.reg(to)
	masked := t.si(s, "and", t.in(ident("a", s.Name()), s), t.set1(s, lit(keep, s.WithLane(catalog.SignedInt, s.Bits).Lane())))
	r := t.mm(to, "packus_epi"+strconv.Itoa(s.Bits), half,
		t.mm(s, "castsi256_si128", half, x),
		t.mm(s, "extracti128_si256", half, x, lit("1", "int")))
	return t.impl([]Stmt{assign("x", masked)}, t.out(r, to))
}
