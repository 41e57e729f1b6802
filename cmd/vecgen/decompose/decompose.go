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

// Package decompose builds an op on a 2N-wide shape out of the same op on
// the N-wide half shape. Operands are split into halves, the half-width
// method is called on each pair through the same token, and the results
// are combined again.
//
// The half-width method is called through the receiver, so decomposition
// recurses naturally: a 512-bit op on a 128-bit level becomes two 256-bit
// calls, each of which becomes two 128-bit calls.
package decompose

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-lanes/cmd/vecgen/arch"
	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
)

// ErrNotDecomposable is returned for shapes at the narrowest width, for
// kinds with no halfwise form, and for ops the half shape does not have.
var ErrNotDecomposable = errors.New("not decomposable")

// Receiver is the receiver name decomposed bodies call through.
const Receiver = "s"

// Decompose returns the body of op at shape s in terms of op at s.Half().
func Decompose(op catalog.Op, s catalog.Shape) (*arch.Impl, error) {
	if s.Width() <= catalog.MinWidth {
		return nil, fmt.Errorf("%s on %s: at the narrowest width: %w", op.Name, s, ErrNotDecomposable)
	}
	switch op.Kind {
	case catalog.Combine, catalog.Split, catalog.LoadInterleaved, catalog.StoreInterleaved:
		return nil, fmt.Errorf("%s on %s: %s has no halfwise form: %w", op.Name, s, op.Kind, ErrNotDecomposable)
	}
	half := s.Half()
	halfOp, ok := catalog.Lookup(half, op.Name, true)
	if !ok || halfOp.Kind != op.Kind {
		return nil, fmt.Errorf("%s on %s: %s has no %s: %w", op.Name, s, half, op.Name, ErrNotDecomposable)
	}
	sig, err := op.Signature(s)
	if err != nil {
		return nil, err
	}
	d := &decomposer{op: op, halfOp: halfOp, shape: s, half: half}
	return d.build(sig), nil
}

type decomposer struct {
	op, halfOp  catalog.Op
	shape, half catalog.Shape
	stmts       []arch.Stmt
}

func ident(name, typ string) *arch.Ident {
	return &arch.Ident{Name: name, Typ: typ}
}

// call invokes the half-width method through the receiver.
func (d *decomposer) call(result string, args ...arch.Expr) *arch.Call {
	return &arch.Call{Func: Receiver + "." + d.halfOp.Method(d.half), Args: args, Result: result}
}

// split declares name0 and name1, the halves of the vector parameter name.
func (d *decomposer) split(name string, whole catalog.Shape) (lo, hi arch.Expr) {
	h := whole.Half()
	d.stmts = append(d.stmts, &arch.Assign{
		Names: []string{name + "0", name + "1"},
		Value: arch.Split(whole, ident(name, whole.Name())),
	})
	return ident(name+"0", h.Name()), ident(name+"1", h.Name())
}

func (d *decomposer) impl(results ...arch.Expr) *arch.Impl {
	return &arch.Impl{Stmts: d.stmts, Results: results, Receiver: Receiver}
}

func (d *decomposer) build(sig catalog.Signature) *arch.Impl {
	s, half := d.shape, d.half
	switch d.op.Kind {
	case catalog.Splat:
		h := ident("h", half.Name())
		d.stmts = append(d.stmts, &arch.Assign{
			Names: []string{"h"},
			Value: d.call(half.Name(), ident("x", s.ScalarParam())),
		})
		return d.impl(arch.Combine(half, h, h))

	case catalog.Zip:
		a0, a1 := d.split("a", s)
		b0, b1 := d.split("b", s)
		d.pair("lo", a0, b0)
		d.pair("hi", a1, b1)
		return d.impl(
			arch.Combine(half, ident("lo0", half.Name()), ident("lo1", half.Name())),
			arch.Combine(half, ident("hi0", half.Name()), ident("hi1", half.Name())))

	case catalog.Unzip:
		a0, a1 := d.split("a", s)
		b0, b1 := d.split("b", s)
		d.pairNamed("ae", "ao", a0, a1)
		d.pairNamed("be", "bo", b0, b1)
		return d.impl(
			arch.Combine(half, ident("ae", half.Name()), ident("be", half.Name())),
			arch.Combine(half, ident("ao", half.Name()), ident("bo", half.Name())))
	}

	// Everything else maps operands halfwise and combines one result.
	var lows, highs []arch.Expr
	for _, p := range sig.Params {
		if !p.IsVector() {
			v := ident(p.Name, p.Type)
			lows, highs = append(lows, v), append(highs, v)
			continue
		}
		lo, hi := d.split(p.Name, p.Shape)
		lows, highs = append(lows, lo), append(highs, hi)
	}
	result := sig.Results[0].Shape.Half()
	return d.impl(arch.Combine(result, d.call(result.Name(), lows...), d.call(result.Name(), highs...)))
}

// pair declares name0, name1 from the two results of a half-width call.
func (d *decomposer) pair(name string, args ...arch.Expr) {
	d.pairNamed(name+"0", name+"1", args...)
}

func (d *decomposer) pairNamed(first, second string, args ...arch.Expr) {
	h := d.half.Name()
	d.stmts = append(d.stmts, &arch.Assign{
		Names: []string{first, second},
		Value: d.call(h+", "+h, args...),
	})
}
