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
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Op is one catalog operation.
type Op struct {
	Name string // "add", "cmp_lt", "widen"
	Kind OpKind

	// Target is the result shape of Convert, Reinterpret and WidenNarrow ops.
	Target Shape

	// Block and Count describe LoadInterleaved and StoreInterleaved ops.
	Block int
	Count int
}

var title = cases.Title(language.Und)

// Camel converts a snake_case catalog name into a Go identifier fragment:
// "min_precise" becomes "MinPrecise".
func Camel(name string) string {
	parts := strings.Split(name, "_")
	return strings.Join(lo.Map(parts, func(p string, _ int) string {
		return title.String(p)
	}), "")
}

// Method returns the name of the generated interface method implementing op
// for shape s, e.g. "AddF32x4".
func (o Op) Method(s Shape) string {
	return Camel(o.Name) + s.Name()
}

// String returns "name/kind".
func (o Op) String() string {
	if o.Kind.Retargets() {
		return o.Name + "/" + o.Kind.String() + "->" + o.Target.String()
	}
	return o.Name + "/" + o.Kind.String()
}

type entry struct {
	name string
	kind OpKind
}

var floatOps = []entry{
	{"splat", Splat},
	{"sqrt", Unary},
	{"abs", Unary},
	{"neg", Unary},
	{"add", Binary},
	{"sub", Binary},
	{"mul", Binary},
	{"div", Binary},
	{"copysign", Binary},
	{"cmp_eq", Compare},
	{"cmp_lt", Compare},
	{"cmp_le", Compare},
	{"cmp_gt", Compare},
	{"cmp_ge", Compare},
	{"select", Select},
	{"min", Binary},
	{"max", Binary},
	{"min_precise", Binary},
	{"max_precise", Binary},
	{"madd", Ternary},
	{"floor", Unary},
	{"zip", Zip},
	{"unzip", Unzip},
}

var intOps = []entry{
	{"splat", Splat},
	{"add", Binary},
	{"sub", Binary},
	{"mul", Binary},
	{"not", Unary},
	{"and", Binary},
	{"or", Binary},
	{"xor", Binary},
	{"and_not", Binary},
	{"shl", Shift},
	{"shr", Shift},
	{"cmp_eq", Compare},
	{"cmp_lt", Compare},
	{"cmp_le", Compare},
	{"cmp_gt", Compare},
	{"cmp_ge", Compare},
	{"select", Select},
	{"zip", Zip},
	{"unzip", Unzip},
}

var maskOps = []entry{
	{"splat", Splat},
	{"not", Unary},
	{"and", Binary},
	{"or", Binary},
	{"xor", Binary},
	{"and_not", Binary},
	{"cmp_eq", Compare},
	{"select", Select},
	{"zip", Zip},
	{"unzip", Unzip},
}

// OperationsFor returns the ordered operation list for shape s. The lane
// category picks the base list; combine and split are appended when the
// shape is not already at the widest or narrowest catalog width; with
// conversions set, the widen, narrow, reinterpret_u8 and convert_u32 ops
// are appended for the shapes they are defined on.
//
// OperationsFor is a pure table lookup. A shape outside the catalog gets
// the list its lane category and width imply.
func OperationsFor(s Shape, conversions bool) []Op {
	var base []entry
	switch s.Kind {
	case Float:
		base = floatOps
	case SignedInt, UnsignedInt:
		base = intOps
	case Mask:
		base = maskOps
	}
	ops := lo.Map(base, func(e entry, _ int) Op {
		return Op{Name: e.name, Kind: e.kind}
	})
	if s.Width() < MaxWidth {
		ops = append(ops, Op{Name: "combine", Kind: Combine})
	}
	if s.Width() > MinWidth {
		ops = append(ops, Op{Name: "split", Kind: Split})
	}
	if !conversions {
		return ops
	}
	if s.Kind == UnsignedInt && (s.Bits == 8 || s.Bits == 16) && s.Width() < MaxWidth {
		ops = append(ops, Op{Name: "widen", Kind: WidenNarrow, Target: s.WithLane(UnsignedInt, s.Bits*2)})
	}
	if s.Kind == UnsignedInt && (s.Bits == 16 || s.Bits == 32) && s.Width() > MinWidth {
		ops = append(ops, Op{Name: "narrow", Kind: WidenNarrow, Target: s.WithLane(UnsignedInt, s.Bits/2)})
	}
	if s.IsInt() && !(s.Kind == UnsignedInt && s.Bits == 8) {
		ops = append(ops, Op{Name: "reinterpret_u8", Kind: Reinterpret, Target: s.Reinterpreted(UnsignedInt, 8)})
	}
	if s.Kind == Float && s.Bits == 32 {
		ops = append(ops, Op{Name: "convert_u32", Kind: Convert, Target: s.WithLane(UnsignedInt, 32)})
	}
	return ops
}

// Lookup finds the op called name in the catalog list of s.
func Lookup(s Shape, name string, conversions bool) (Op, bool) {
	return lo.Find(OperationsFor(s, conversions), func(op Op) bool {
		return op.Name == name
	})
}

// Pair is one (shape, op) entry of the catalog.
type Pair struct {
	Shape Shape
	Op    Op
}

// Method returns the interface method name of the pair.
func (p Pair) Method() string {
	return p.Op.Method(p.Shape)
}

// Pairs returns every (shape, op) pair of the catalog in generation order.
func Pairs(conversions bool) []Pair {
	return lo.FlatMap(Shapes(), func(s Shape, _ int) []Pair {
		return lo.Map(OperationsFor(s, conversions), func(op Op, _ int) Pair {
			return Pair{Shape: s, Op: op}
		})
	})
}
