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

package catalog

import (
	"fmt"
	"strconv"
)

// Param is one parameter or result of a generated method.
type Param struct {
	Name string
	// Type is the Go type as spelled inside the generated package.
	Type string
	// Shape is set for vector values and zero for scalars and slices.
	Shape Shape
}

// IsVector reports whether p holds a raw lane array.
func (p Param) IsVector() bool {
	return p.Shape.Lanes != 0
}

// Signature is the Go parameter and result list of a generated method.
type Signature struct {
	Params  []Param
	Results []Param
}

func vec(name string, s Shape) Param {
	return Param{Name: name, Type: s.Name(), Shape: s}
}

// ResultTypes returns the type of every result, in order.
func (sig Signature) ResultTypes() []string {
	types := make([]string, len(sig.Results))
	for i, r := range sig.Results {
		types[i] = r.Type
	}
	return types
}

// Signature returns the Go signature of op applied to shape s. It fails
// when op cannot exist at s: combine at the widest width, split at the
// narrowest, or a retargeting op whose target is malformed.
func (o Op) Signature(s Shape) (Signature, error) {
	if !s.Valid() {
		return Signature{}, fmt.Errorf("op %s: invalid shape %s", o.Name, s)
	}
	switch o.Kind {
	case Splat:
		return Signature{
			Params:  []Param{{Name: "x", Type: s.ScalarParam()}},
			Results: []Param{vec("", s)},
		}, nil
	case Unary:
		return Signature{
			Params:  []Param{vec("a", s)},
			Results: []Param{vec("", s)},
		}, nil
	case Binary:
		return Signature{
			Params:  []Param{vec("a", s), vec("b", s)},
			Results: []Param{vec("", s)},
		}, nil
	case Ternary:
		return Signature{
			Params:  []Param{vec("a", s), vec("b", s), vec("c", s)},
			Results: []Param{vec("", s)},
		}, nil
	case Compare:
		return Signature{
			Params:  []Param{vec("a", s), vec("b", s)},
			Results: []Param{vec("", s.MaskShape())},
		}, nil
	case Select:
		return Signature{
			Params:  []Param{vec("m", s.MaskShape()), vec("a", s), vec("b", s)},
			Results: []Param{vec("", s)},
		}, nil
	case Combine:
		if s.Width() >= MaxWidth {
			return Signature{}, fmt.Errorf("op %s: %s is already %d bits wide", o.Name, s, MaxWidth)
		}
		return Signature{
			Params:  []Param{vec("a", s), vec("b", s)},
			Results: []Param{vec("", s.Double())},
		}, nil
	case Split:
		if s.Width() <= MinWidth {
			return Signature{}, fmt.Errorf("op %s: %s is only %d bits wide", o.Name, s, MinWidth)
		}
		return Signature{
			Params:  []Param{vec("a", s)},
			Results: []Param{vec("lo", s.Half()), vec("hi", s.Half())},
		}, nil
	case Zip:
		return Signature{
			Params:  []Param{vec("a", s), vec("b", s)},
			Results: []Param{vec("lo", s), vec("hi", s)},
		}, nil
	case Unzip:
		return Signature{
			Params:  []Param{vec("a", s), vec("b", s)},
			Results: []Param{vec("even", s), vec("odd", s)},
		}, nil
	case Convert, Reinterpret, WidenNarrow:
		if err := o.checkTarget(s); err != nil {
			return Signature{}, err
		}
		return Signature{
			Params:  []Param{vec("a", s)},
			Results: []Param{vec("", o.Target)},
		}, nil
	case Shift:
		return Signature{
			Params:  []Param{vec("a", s), {Name: "n", Type: "uint"}},
			Results: []Param{vec("", s)},
		}, nil
	case LoadInterleaved:
		if o.Count < 1 {
			return Signature{}, fmt.Errorf("op %s: count must be positive", o.Name)
		}
		sig := Signature{Params: []Param{{Name: "src", Type: "[]" + s.Lane()}}}
		for i := range o.Count {
			sig.Results = append(sig.Results, vec("v"+strconv.Itoa(i), s))
		}
		return sig, nil
	case StoreInterleaved:
		if o.Count < 1 {
			return Signature{}, fmt.Errorf("op %s: count must be positive", o.Name)
		}
		sig := Signature{Params: []Param{{Name: "dst", Type: "[]" + s.Lane()}}}
		for i := range o.Count {
			sig.Params = append(sig.Params, vec("v"+strconv.Itoa(i), s))
		}
		return sig, nil
	}
	return Signature{}, fmt.Errorf("op %s: unknown kind %d", o.Name, o.Kind)
}

func (o Op) checkTarget(s Shape) error {
	t := o.Target
	if !t.Valid() {
		return fmt.Errorf("op %s: invalid target shape %s", o.Name, t)
	}
	switch o.Kind {
	case WidenNarrow:
		if s.Kind != UnsignedInt || t.Kind != UnsignedInt || t.Lanes != s.Lanes {
			return fmt.Errorf("op %s: %s -> %s is not a lane-count preserving unsigned resize", o.Name, s, t)
		}
		if !(t.Bits == s.Bits*2 && s.Bits <= 16) && !(t.Bits*2 == s.Bits && t.Bits >= 8 && s.Bits <= 32) {
			return fmt.Errorf("op %s: %s -> %s is not u8<->u16 or u16<->u32", o.Name, s, t)
		}
	case Reinterpret:
		if s.Kind == Mask || s.Kind == Float || t.Kind == Mask || t.Kind == Float {
			return fmt.Errorf("op %s: reinterpret is only defined between integer shapes", o.Name)
		}
		if s == t || s.Width() != t.Width() {
			return fmt.Errorf("op %s: %s -> %s is not a reinterpretation", o.Name, s, t)
		}
	case Convert:
		if t.Lanes != s.Lanes {
			return fmt.Errorf("op %s: %s -> %s changes the lane count", o.Name, s, t)
		}
	}
	return nil
}
