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
	"strings"

	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
)

type fallback struct{}

// Fallback returns the scalar reference translator. It implements every
// op at every width as a loop over lanes, and is the behavior all other
// levels are tested against.
func Fallback() Translator { return fallback{} }

func (fallback) Name() string { return "Fallback" }

func (fallback) NativeType(s catalog.Shape) (Repr, error) {
	if !s.Valid() {
		return Repr{}, fmt.Errorf("Fallback: %s: %w", s, ErrWidth)
	}
	return Repr{Type: fmt.Sprintf("[%d]%s", s.Lanes, s.Lane()), Count: 1}, nil
}

// fallbackLane holds the per-lane expression of simple lanewise ops.
// Placeholders: {lane} is the lane type, {mask} the mask lane type, {count}
// the masked shift count and {to} the lane type of a retargeting op.
var fallbackLane = map[string]string{
	"sqrt":        "sqrtF(a[i])",
	"abs":         "absF(a[i])",
	"neg":         "-a[i]",
	"floor":       "floorF(a[i])",
	"not":         "^a[i]",
	"add":         "a[i] + b[i]",
	"sub":         "a[i] - b[i]",
	"mul":         "a[i] * b[i]",
	"div":         "a[i] / b[i]",
	"and":         "a[i] & b[i]",
	"or":          "a[i] | b[i]",
	"xor":         "a[i] ^ b[i]",
	"and_not":     "a[i] &^ b[i]",
	"copysign":    "copysign(a[i], b[i])",
	"min":         "min(a[i], b[i])",
	"max":         "max(a[i], b[i])",
	"min_precise": "minPrecise(a[i], b[i])",
	"max_precise": "maxPrecise(a[i], b[i])",
	"madd":        "{lane}(a[i]*b[i]) + c[i]",
	"select":      "pick(m[i] != 0, a[i], b[i])",
	"cmp_eq":      "maskOf[{mask}](a[i] == b[i])",
	"cmp_lt":      "maskOf[{mask}](a[i] < b[i])",
	"cmp_le":      "maskOf[{mask}](a[i] <= b[i])",
	"cmp_gt":      "maskOf[{mask}](a[i] > b[i])",
	"cmp_ge":      "maskOf[{mask}](a[i] >= b[i])",
	"shl":         "a[i] << ({count})",
	"shr":         "a[i] >> ({count})",
	"widen":       "{to}(a[i])",
	"narrow":      "{to}(a[i])",
	"convert_u32": "truncU32(a[i])",
}

func (t fallback) Translate(op catalog.Op, s catalog.Shape) (*Impl, error) {
	if impl, ok := halves(op, s); ok {
		return impl, nil
	}
	switch op.Name {
	case "splat":
		value := "x"
		if s.Kind == catalog.Mask {
			value = fmt.Sprintf("maskOf[%s](x)", s.Lane())
		}
		return lanewiseTo(s, value), nil
	case "zip":
		return &Impl{
			Stmts: []Stmt{
				Raw("const h = len(lo) / 2"),
				Raw("for i := 0; i < h; i++ {\n" +
					"\tlo[2*i], lo[2*i+1] = a[i], b[i]\n" +
					"\thi[2*i], hi[2*i+1] = a[h+i], b[h+i]\n" +
					"}"),
			},
			Results: []Expr{ident("lo", s.Name()), ident("hi", s.Name())},
			Named:   true,
		}, nil
	case "unzip":
		return &Impl{
			Stmts: []Stmt{
				Raw("const h = len(even) / 2"),
				Raw("for i := 0; i < h; i++ {\n" +
					"\teven[i], odd[i] = a[2*i], a[2*i+1]\n" +
					"\teven[h+i], odd[h+i] = b[2*i], b[2*i+1]\n" +
					"}"),
			},
			Results: []Expr{ident("even", s.Name()), ident("odd", s.Name())},
			Named:   true,
		}, nil
	case "reinterpret_u8":
		target := op.Target.Name()
		return &Impl{Results: []Expr{&Call{
			Func:     "bitcast",
			TypeArgs: []string{target},
			Args:     []Expr{ident("a", s.Name())},
			Result:   target,
		}}}, nil
	}
	pattern, ok := fallbackLane[op.Name]
	if !ok {
		return nil, unknown(t.Name(), op, s)
	}
	sig, err := op.Signature(s)
	if err != nil {
		return nil, err
	}
	target := s.Lane()
	if op.Kind.Retargets() {
		target = op.Target.Lane()
	}
	value := strings.NewReplacer(
		"{lane}", s.Lane(),
		"{mask}", s.MaskShape().Lane(),
		"{count}", fmt.Sprintf("n & %d", s.Bits-1),
		"{to}", target,
	).Replace(pattern)
	return lanewiseTo(sig.Results[0].Shape, value), nil
}

// lanewiseTo fills the named result r lane by lane.
func lanewiseTo(result catalog.Shape, value string) *Impl {
	return &Impl{
		Stmts: []Stmt{
			Raw("for i := range r {\n\tr[i] = " + value + "\n}"),
		},
		Results: []Expr{ident("r", result.Name())},
		Named:   true,
	}
}
