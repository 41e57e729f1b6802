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

// Package catalog enumerates the vector shapes vecgen knows about and, per
// shape, the operations every capability level has to implement.
//
// The catalog is the contract between the translators, the decomposition
// engine and the emitter: every (shape, op) pair returned by OperationsFor
// must have a definition in every generated level.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ScalarKind is the category of a lane.
type ScalarKind uint8

const (
	Float ScalarKind = iota
	SignedInt
	UnsignedInt
	// Mask lanes shadow an unsigned integer of the same width and hold
	// either all ones or all zeros.
	Mask
)

// String returns the kind name used in diagnostics.
func (k ScalarKind) String() string {
	switch k {
	case Float:
		return "float"
	case SignedInt:
		return "int"
	case UnsignedInt:
		return "uint"
	case Mask:
		return "mask"
	default:
		return "unknown"
	}
}

// prefix is the one-letter shape prefix: f32x4, i8x16, u16x8, m32x4.
func (k ScalarKind) prefix() string {
	switch k {
	case Float:
		return "f"
	case SignedInt:
		return "i"
	case UnsignedInt:
		return "u"
	case Mask:
		return "m"
	default:
		return "?"
	}
}

// Widths of the vectors the catalog covers, in bits.
const (
	MinWidth = 128
	MaxWidth = 512
)

// Shape describes a vector type: lane category, lane width in bits and
// lane count.
type Shape struct {
	Kind  ScalarKind
	Bits  int
	Lanes int
}

// S is a shorthand constructor used by tables and tests.
func S(kind ScalarKind, bits, lanes int) Shape {
	return Shape{Kind: kind, Bits: bits, Lanes: lanes}
}

// Width returns the total width in bits.
func (s Shape) Width() int {
	return s.Bits * s.Lanes
}

// Bytes returns the total width in bytes.
func (s Shape) Bytes() int {
	return s.Width() / 8
}

// String returns the lower-case shape name, e.g. "f32x4".
func (s Shape) String() string {
	return s.Kind.prefix() + strconv.Itoa(s.Bits) + "x" + strconv.Itoa(s.Lanes)
}

// Name returns the Go name of the raw lane array type, e.g. "F32x4".
func (s Shape) Name() string {
	return strings.ToUpper(s.Kind.prefix()) + strconv.Itoa(s.Bits) + "x" + strconv.Itoa(s.Lanes)
}

// BoundName returns the Go name of the token-bound vector type, e.g.
// "Float32x4".
func (s Shape) BoundName() string {
	var kind string
	switch s.Kind {
	case Float:
		kind = "Float"
	case SignedInt:
		kind = "Int"
	case UnsignedInt:
		kind = "Uint"
	case Mask:
		kind = "Mask"
	}
	return kind + strconv.Itoa(s.Bits) + "x" + strconv.Itoa(s.Lanes)
}

// Lane returns the Go type of one lane. Mask lanes are unsigned integers.
func (s Shape) Lane() string {
	switch s.Kind {
	case Float:
		return "float" + strconv.Itoa(s.Bits)
	case SignedInt:
		return "int" + strconv.Itoa(s.Bits)
	default:
		return "uint" + strconv.Itoa(s.Bits)
	}
}

// ScalarParam returns the Go type Splat takes for this shape.
func (s Shape) ScalarParam() string {
	if s.Kind == Mask {
		return "bool"
	}
	return s.Lane()
}

// Half returns the shape with half as many lanes.
func (s Shape) Half() Shape {
	return Shape{Kind: s.Kind, Bits: s.Bits, Lanes: s.Lanes / 2}
}

// Double returns the shape with twice as many lanes.
func (s Shape) Double() Shape {
	return Shape{Kind: s.Kind, Bits: s.Bits, Lanes: s.Lanes * 2}
}

// MaskShape returns the mask shape produced by comparing two s values.
func (s Shape) MaskShape() Shape {
	return Shape{Kind: Mask, Bits: s.Bits, Lanes: s.Lanes}
}

// WithLane returns the shape of the same lane count with a different scalar.
func (s Shape) WithLane(kind ScalarKind, bits int) Shape {
	return Shape{Kind: kind, Bits: bits, Lanes: s.Lanes}
}

// Reinterpreted returns the shape of equal total width with a different
// scalar.
func (s Shape) Reinterpreted(kind ScalarKind, bits int) Shape {
	return Shape{Kind: kind, Bits: bits, Lanes: s.Width() / bits}
}

// IsInt reports whether the lanes are signed or unsigned integers.
func (s Shape) IsInt() bool {
	return s.Kind == SignedInt || s.Kind == UnsignedInt
}

// Valid reports whether s is a well-formed shape of any width.
func (s Shape) Valid() bool {
	switch s.Bits {
	case 8, 16, 32, 64:
	default:
		return false
	}
	if s.Kind == Float && s.Bits < 32 {
		return false
	}
	return s.Lanes > 0 && s.Lanes&(s.Lanes-1) == 0
}

// InCatalog reports whether s is one of the shapes returned by Shapes.
func (s Shape) InCatalog() bool {
	return s.Valid() && s.Width() >= MinWidth && s.Width() <= MaxWidth
}

// scalars lists every lane type in catalog order.
var scalars = []struct {
	kind ScalarKind
	bits int
}{
	{Float, 32}, {Float, 64},
	{SignedInt, 8}, {SignedInt, 16}, {SignedInt, 32}, {SignedInt, 64},
	{UnsignedInt, 8}, {UnsignedInt, 16}, {UnsignedInt, 32}, {UnsignedInt, 64},
	{Mask, 8}, {Mask, 16}, {Mask, 32}, {Mask, 64},
}

// Shapes returns every catalog shape, narrowest width first and, within one
// width, in float, int, uint, mask order.
func Shapes() []Shape {
	var shapes []Shape
	for width := MinWidth; width <= MaxWidth; width *= 2 {
		for _, sc := range scalars {
			shapes = append(shapes, Shape{Kind: sc.kind, Bits: sc.bits, Lanes: width / sc.bits})
		}
	}
	return shapes
}

// ParseShape parses a lower-case shape name such as "u16x8".
func ParseShape(name string) (Shape, error) {
	if len(name) < 4 {
		return Shape{}, fmt.Errorf("invalid shape %q", name)
	}
	var kind ScalarKind
	switch name[0] {
	case 'f':
		kind = Float
	case 'i':
		kind = SignedInt
	case 'u':
		kind = UnsignedInt
	case 'm':
		kind = Mask
	default:
		return Shape{}, fmt.Errorf("invalid shape %q: unknown lane kind %q", name, name[0])
	}
	bitsStr, lanesStr, ok := strings.Cut(name[1:], "x")
	if !ok {
		return Shape{}, fmt.Errorf("invalid shape %q: missing lane count", name)
	}
	bits, err := strconv.Atoi(bitsStr)
	if err != nil {
		return Shape{}, fmt.Errorf("invalid shape %q: %w", name, err)
	}
	lanes, err := strconv.Atoi(lanesStr)
	if err != nil {
		return Shape{}, fmt.Errorf("invalid shape %q: %w", name, err)
	}
	s := Shape{Kind: kind, Bits: bits, Lanes: lanes}
	if !s.Valid() {
		return Shape{}, fmt.Errorf("invalid shape %q", name)
	}
	return s, nil
}
