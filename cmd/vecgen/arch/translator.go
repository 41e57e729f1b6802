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

// Package arch holds one translator per capability level. A translator
// turns a catalog (shape, op) pair into the Go body of the corresponding
// interface method, calling into that level's instruction bindings.
package arch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/samber/lo"
)

var (
	// ErrUnknownOp is returned for an op name the translator has no
	// mapping or expansion for. It is always a generator bug.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrWidth is returned by NativeType for widths the architecture
	// cannot represent at all.
	ErrWidth = errors.New("unsupported vector width")

	// ErrDeclined is returned by Translate when the shape is wider than the
	// native register; the generator then decomposes the op.
	ErrDeclined = errors.New("declined: no native implementation at this width")
)

// Repr is the native representation of a shape: Count registers of the
// named native type.
type Repr struct {
	Type  string
	Count int
}

func (r Repr) String() string {
	if r.Count == 1 {
		return r.Type
	}
	return fmt.Sprintf("%s x%d", r.Type, r.Count)
}

// Translator maps catalog operations onto one capability level.
type Translator interface {
	// Name is the Go name of the level's token type.
	Name() string

	// NativeType reports how the level represents a shape natively.
	NativeType(s catalog.Shape) (Repr, error)

	// Translate returns the body of the method implementing op at shape s.
	Translate(op catalog.Op, s catalog.Shape) (*Impl, error)
}

// All returns the translators of every level, Fallback first.
func All() []Translator {
	return []Translator{Fallback(), Neon(), Avx2(), Wasm128()}
}

// ByName finds a translator by case-insensitive level name.
func ByName(name string) (Translator, error) {
	t, ok := lo.Find(All(), func(t Translator) bool {
		return strings.EqualFold(t.Name(), name)
	})
	if !ok {
		return nil, fmt.Errorf("unknown level %q (want one of %s)", name,
			strings.Join(lo.Map(All(), func(t Translator, _ int) string { return t.Name() }), ", "))
	}
	return t, nil
}

// unknown wraps ErrUnknownOp with the pair that triggered it.
func unknown(level string, op catalog.Op, s catalog.Shape) error {
	return fmt.Errorf("%s: %s on %s: %w", level, op.Name, s, ErrUnknownOp)
}

func declined(level string, op catalog.Op, s catalog.Shape) error {
	return fmt.Errorf("%s: %s on %s: %w", level, op.Name, s, ErrDeclined)
}

// params returns the signature's parameters as identifiers keyed by name.
func params(sig catalog.Signature) map[string]*Ident {
	m := make(map[string]*Ident, len(sig.Params))
	for _, p := range sig.Params {
		m[p.Name] = ident(p.Name, p.Type)
	}
	return m
}

// Combine builds combine[H, W](lo, hi).
func Combine(half catalog.Shape, lo, hi Expr) *Call {
	whole := half.Double()
	return &Call{
		Func:     "combine",
		TypeArgs: []string{half.Name(), whole.Name()},
		Args:     []Expr{lo, hi},
		Result:   whole.Name(),
	}
}

// Split builds split[W, H](v), which yields both halves.
func Split(whole catalog.Shape, v Expr) *Call {
	half := whole.Half()
	return &Call{
		Func:     "split",
		TypeArgs: []string{whole.Name(), half.Name()},
		Args:     []Expr{v},
		Result:   half.Name() + ", " + half.Name(),
	}
}

// Lower builds lower[W, H](v).
func Lower(whole catalog.Shape, v Expr) *Call {
	return half("lower", whole, v)
}

// Upper builds upper[W, H](v).
func Upper(whole catalog.Shape, v Expr) *Call {
	return half("upper", whole, v)
}

func half(fn string, whole catalog.Shape, v Expr) *Call {
	h := whole.Half()
	return &Call{
		Func:     fn,
		TypeArgs: []string{whole.Name(), h.Name()},
		Args:     []Expr{v},
		Result:   h.Name(),
	}
}

// halves implements combine and split, which every level shares: they are
// plain element copies with no architecture-specific form.
func halves(op catalog.Op, s catalog.Shape) (*Impl, bool) {
	switch op.Kind {
	case catalog.Combine:
		return &Impl{Results: []Expr{Combine(s, ident("a", s.Name()), ident("b", s.Name()))}}, true
	case catalog.Split:
		a := ident("a", s.Name())
		return &Impl{Results: []Expr{Lower(s, a), Upper(s, a)}}, true
	}
	return nil, false
}

// maskOf builds maskOf[uintN](x), turning a bool into a mask lane.
func maskOf(s catalog.Shape, x Expr) *Call {
	lane := s.MaskShape().Lane()
	return &Call{Func: "maskOf", TypeArgs: []string{lane}, Args: []Expr{x}, Result: lane}
}

// shiftCount returns "conv(n & (bits-1))", the shift count reduced modulo
// the lane width.
func shiftCount(conv string, s catalog.Shape) string {
	return fmt.Sprintf("%s(n & %d)", conv, s.Bits-1)
}
