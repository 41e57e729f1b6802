package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapes(t *testing.T) {
	shapes := Shapes()
	if len(shapes) != 42 {
		t.Fatalf("Shapes() returned %d shapes, want 42", len(shapes))
	}
	for _, s := range shapes {
		if !s.InCatalog() {
			t.Errorf("%s is not a catalog shape", s)
		}
	}
	assert.Equal(t, S(Float, 32, 4), shapes[0])
	assert.Equal(t, S(Mask, 64, 8), shapes[len(shapes)-1])
	assert.Len(t, lo.Uniq(shapes), 42)
}

func TestShapeNames(t *testing.T) {
	tests := []struct {
		shape Shape
		str   string
		name  string
		bound string
		lane  string
	}{
		{S(Float, 32, 4), "f32x4", "F32x4", "Float32x4", "float32"},
		{S(Float, 64, 8), "f64x8", "F64x8", "Float64x8", "float64"},
		{S(SignedInt, 8, 16), "i8x16", "I8x16", "Int8x16", "int8"},
		{S(UnsignedInt, 16, 8), "u16x8", "U16x8", "Uint16x8", "uint16"},
		{S(Mask, 32, 4), "m32x4", "M32x4", "Mask32x4", "uint32"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.shape.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.shape.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := tt.shape.BoundName(); got != tt.bound {
				t.Errorf("BoundName() = %q, want %q", got, tt.bound)
			}
			if got := tt.shape.Lane(); got != tt.lane {
				t.Errorf("Lane() = %q, want %q", got, tt.lane)
			}
			parsed, err := ParseShape(tt.str)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, parsed)
		})
	}
}

func TestParseShapeErrors(t *testing.T) {
	for _, name := range []string{"", "f16x8", "x32x4", "f32", "f32x3", "i7x16", "u8xq"} {
		if _, err := ParseShape(name); err == nil {
			t.Errorf("ParseShape(%q) succeeded, want error", name)
		}
	}
}

func names(ops []Op) []string {
	return lo.Map(ops, func(op Op, _ int) string { return op.Name })
}

func TestOperationsFor(t *testing.T) {
	tests := []struct {
		shape       Shape
		conversions bool
		want        []string
	}{
		{
			S(Float, 32, 4), false,
			[]string{"splat", "sqrt", "abs", "neg", "add", "sub", "mul", "div", "copysign",
				"cmp_eq", "cmp_lt", "cmp_le", "cmp_gt", "cmp_ge", "select", "min", "max",
				"min_precise", "max_precise", "madd", "floor", "zip", "unzip", "combine"},
		},
		{
			S(Float, 32, 8), true,
			[]string{"splat", "sqrt", "abs", "neg", "add", "sub", "mul", "div", "copysign",
				"cmp_eq", "cmp_lt", "cmp_le", "cmp_gt", "cmp_ge", "select", "min", "max",
				"min_precise", "max_precise", "madd", "floor", "zip", "unzip", "combine",
				"split", "convert_u32"},
		},
		{
			S(Mask, 8, 64), true,
			[]string{"splat", "not", "and", "or", "xor", "and_not", "cmp_eq", "select",
				"zip", "unzip", "split"},
		},
		{
			S(UnsignedInt, 8, 16), true,
			[]string{"splat", "add", "sub", "mul", "not", "and", "or", "xor", "and_not",
				"shl", "shr", "cmp_eq", "cmp_lt", "cmp_le", "cmp_gt", "cmp_ge", "select",
				"zip", "unzip", "combine", "widen"},
		},
		{
			S(UnsignedInt, 16, 16), true,
			[]string{"splat", "add", "sub", "mul", "not", "and", "or", "xor", "and_not",
				"shl", "shr", "cmp_eq", "cmp_lt", "cmp_le", "cmp_gt", "cmp_ge", "select",
				"zip", "unzip", "combine", "split", "widen", "narrow", "reinterpret_u8"},
		},
		{
			S(SignedInt, 64, 8), false,
			[]string{"splat", "add", "sub", "mul", "not", "and", "or", "xor", "and_not",
				"shl", "shr", "cmp_eq", "cmp_lt", "cmp_le", "cmp_gt", "cmp_ge", "select",
				"zip", "unzip", "split"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			got := names(OperationsFor(tt.shape, tt.conversions))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("OperationsFor(%s, %v) mismatch (-want +got):\n%s", tt.shape, tt.conversions, diff)
			}
		})
	}
}

func TestConversionTargets(t *testing.T) {
	tests := []struct {
		shape  Shape
		op     string
		target Shape
	}{
		{S(UnsignedInt, 8, 16), "widen", S(UnsignedInt, 16, 16)},
		{S(UnsignedInt, 16, 8), "widen", S(UnsignedInt, 32, 8)},
		{S(UnsignedInt, 16, 16), "narrow", S(UnsignedInt, 8, 16)},
		{S(UnsignedInt, 32, 16), "narrow", S(UnsignedInt, 16, 16)},
		{S(SignedInt, 32, 4), "reinterpret_u8", S(UnsignedInt, 8, 16)},
		{S(UnsignedInt, 64, 8), "reinterpret_u8", S(UnsignedInt, 8, 64)},
		{S(Float, 32, 16), "convert_u32", S(UnsignedInt, 32, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String()+"/"+tt.op, func(t *testing.T) {
			op, ok := Lookup(tt.shape, tt.op, true)
			require.True(t, ok)
			assert.Equal(t, tt.target, op.Target)
			sig, err := op.Signature(tt.shape)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.target.Name()}, sig.ResultTypes())
		})
	}

	// Conversions are absent where they are not defined.
	for _, tt := range []struct {
		shape Shape
		op    string
	}{
		{S(UnsignedInt, 8, 64), "widen"},
		{S(UnsignedInt, 16, 8), "narrow"},
		{S(UnsignedInt, 8, 16), "reinterpret_u8"},
		{S(Mask, 32, 4), "reinterpret_u8"},
		{S(Float, 64, 2), "convert_u32"},
		{S(SignedInt, 8, 16), "widen"},
	} {
		if _, ok := Lookup(tt.shape, tt.op, true); ok {
			t.Errorf("%s has %s", tt.shape, tt.op)
		}
	}
}

func TestMethod(t *testing.T) {
	tests := []struct {
		shape Shape
		op    string
		want  string
	}{
		{S(Float, 32, 4), "add", "AddF32x4"},
		{S(Float, 32, 4), "cmp_lt", "CmpLtF32x4"},
		{S(Float, 32, 4), "min_precise", "MinPreciseF32x4"},
		{S(SignedInt, 32, 4), "and_not", "AndNotI32x4"},
		{S(SignedInt, 32, 4), "reinterpret_u8", "ReinterpretU8I32x4"},
		{S(Float, 32, 4), "convert_u32", "ConvertU32F32x4"},
		{S(UnsignedInt, 8, 16), "widen", "WidenU8x16"},
		{S(UnsignedInt, 16, 16), "narrow", "NarrowU16x16"},
		{S(Float, 32, 8), "split", "SplitF32x8"},
	}
	for _, tt := range tests {
		op, ok := Lookup(tt.shape, tt.op, true)
		if !ok {
			t.Fatalf("%s has no %s", tt.shape, tt.op)
		}
		if got := op.Method(tt.shape); got != tt.want {
			t.Errorf("Method(%s, %s) = %q, want %q", tt.shape, tt.op, got, tt.want)
		}
	}
}

func TestSignature(t *testing.T) {
	f32x8 := S(Float, 32, 8)
	tests := []struct {
		op      Op
		shape   Shape
		params  []string
		results []string
	}{
		{Op{Name: "splat", Kind: Splat}, f32x8, []string{"float32"}, []string{"F32x8"}},
		{Op{Name: "splat", Kind: Splat}, S(Mask, 16, 8), []string{"bool"}, []string{"M16x8"}},
		{Op{Name: "madd", Kind: Ternary}, f32x8, []string{"F32x8", "F32x8", "F32x8"}, []string{"F32x8"}},
		{Op{Name: "cmp_lt", Kind: Compare}, f32x8, []string{"F32x8", "F32x8"}, []string{"M32x8"}},
		{Op{Name: "select", Kind: Select}, f32x8, []string{"M32x8", "F32x8", "F32x8"}, []string{"F32x8"}},
		{Op{Name: "combine", Kind: Combine}, f32x8, []string{"F32x8", "F32x8"}, []string{"F32x16"}},
		{Op{Name: "split", Kind: Split}, f32x8, []string{"F32x8"}, []string{"F32x4", "F32x4"}},
		{Op{Name: "zip", Kind: Zip}, f32x8, []string{"F32x8", "F32x8"}, []string{"F32x8", "F32x8"}},
		{Op{Name: "shl", Kind: Shift}, S(SignedInt, 16, 8), []string{"I16x8", "uint"}, []string{"I16x8"}},
		{Op{Name: "load3", Kind: LoadInterleaved, Block: 1, Count: 3}, f32x8, []string{"[]float32"}, []string{"F32x8", "F32x8", "F32x8"}},
		{Op{Name: "store2", Kind: StoreInterleaved, Block: 1, Count: 2}, f32x8, []string{"[]float32", "F32x8", "F32x8"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.op.Name, func(t *testing.T) {
			sig, err := tt.op.Signature(tt.shape)
			require.NoError(t, err)
			params := lo.Map(sig.Params, func(p Param, _ int) string { return p.Type })
			assert.Equal(t, tt.params, params)
			if tt.results == nil {
				assert.Empty(t, sig.Results)
			} else {
				assert.Equal(t, tt.results, sig.ResultTypes())
			}
		})
	}
}

func TestSignatureErrors(t *testing.T) {
	tests := []struct {
		name  string
		op    Op
		shape Shape
	}{
		{"combine at max width", Op{Name: "combine", Kind: Combine}, S(Float, 32, 16)},
		{"split at min width", Op{Name: "split", Kind: Split}, S(Float, 32, 4)},
		{"widen signed", Op{Name: "widen", Kind: WidenNarrow, Target: S(SignedInt, 16, 16)}, S(SignedInt, 8, 16)},
		{"widen u32", Op{Name: "widen", Kind: WidenNarrow, Target: S(UnsignedInt, 64, 4)}, S(UnsignedInt, 32, 4)},
		{"reinterpret mask", Op{Name: "reinterpret_u8", Kind: Reinterpret, Target: S(UnsignedInt, 8, 16)}, S(Mask, 32, 4)},
		{"reinterpret identity", Op{Name: "reinterpret_u8", Kind: Reinterpret, Target: S(UnsignedInt, 8, 16)}, S(UnsignedInt, 8, 16)},
		{"invalid shape", Op{Name: "add", Kind: Binary}, S(Float, 16, 8)},
		{"zero count", Op{Name: "load", Kind: LoadInterleaved}, S(Float, 32, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Signature(tt.shape)
			assert.Error(t, err)
		})
	}
}

func TestEveryCatalogPairHasSignature(t *testing.T) {
	pairs := Pairs(true)
	for _, p := range pairs {
		if _, err := p.Op.Signature(p.Shape); err != nil {
			t.Errorf("%s %s: %v", p.Shape, p.Op.Name, err)
		}
	}
	methods := lo.Map(pairs, func(p Pair, _ int) string { return p.Method() })
	assert.Len(t, lo.Uniq(methods), len(methods), "method names must be unique")
}
