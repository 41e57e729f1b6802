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

package hwy

import (
	"math"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// The instruction bindings are plain Go, so every level runs on any host.
var simdLevels = []Simd{Neon{}, Avx2{}, Wasm128{}}

const parityRounds = 48

var specialFloats = []float64{
	math.NaN(), math.Inf(1), math.Inf(-1), 0, math.Copysign(0, -1),
	1, -1, 0.5, -0.5, 2.5, -2.5, 1e-40, 3.4e38, -3.4e38,
	2147483520, 2147483648, 4294967040, 4294967296, 5e9, 1e300,
}

var specialInts = []int64{
	0, 1, -1, 127, -128, 128, 255, 256, 32767, -32768, 65535, 65536,
	math.MaxInt32, math.MinInt32, math.MaxUint32, math.MaxInt64, math.MinInt64,
}

// corpus produces lane values biased toward the cases levels disagree on:
// NaN, signed zeros, infinities and integer boundaries.
type corpus struct {
	r *rand.Rand
	// moderate keeps floats finite and small so fused and unfused
	// multiply-add cannot disagree on overflow.
	moderate bool
}

func newCorpus(seed uint64, moderate bool) corpus {
	return corpus{r: rand.New(rand.NewPCG(seed, 0x5eed)), moderate: moderate}
}

func (c corpus) float() float64 {
	if c.moderate {
		switch c.r.IntN(8) {
		case 0:
			return math.NaN()
		case 1:
			return math.Copysign(0, -1)
		}
		return math.Round((c.r.Float64()*2-1)*1e6) / 1024
	}
	if c.r.IntN(2) == 0 {
		return specialFloats[c.r.IntN(len(specialFloats))]
	}
	return (c.r.Float64()*2 - 1) * 1000
}

func (c corpus) int() int64 {
	if c.r.IntN(2) == 0 {
		return specialInts[c.r.IntN(len(specialInts))]
	}
	return int64(c.r.Uint64())
}

func (c corpus) lane(v reflect.Value) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(c.float())
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(c.int())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(c.int()))
	case reflect.Bool:
		v.SetBool(c.r.IntN(2) == 1)
	}
}

func (c corpus) value(t reflect.Type) reflect.Value {
	v := reflect.New(t).Elem()
	switch {
	case t.Kind() == reflect.Array && strings.HasPrefix(t.Name(), "M"):
		// Masks only ever hold all-ones or all-zeros lanes.
		for i := range v.Len() {
			if c.r.IntN(2) == 1 {
				v.Index(i).SetUint(math.MaxUint64)
			}
		}
	case t.Kind() == reflect.Array:
		for i := range v.Len() {
			c.lane(v.Index(i))
		}
	case t.Kind() == reflect.Uint:
		// Shift counts, including ones past the lane width.
		v.SetUint(c.r.Uint64N(80))
	default:
		c.lane(v)
	}
	return v
}

func (c corpus) args(fn reflect.Type) []reflect.Value {
	args := make([]reflect.Value, fn.NumIn())
	for i := range args {
		args[i] = c.value(fn.In(i))
	}
	return args
}

func TestCrossLevelParity(t *testing.T) {
	ref := reflect.ValueOf(Fallback{})
	typ := ref.Type()
	tested := 0
	for i := range typ.NumMethod() {
		name := typ.Method(i).Name
		if name == "Level" {
			continue
		}
		tested++
		fused := strings.HasPrefix(name, "Madd")
		t.Run(name, func(t *testing.T) {
			want := ref.Method(i)
			c := newCorpus(uint64(i), fused)
			for range parityRounds {
				args := c.args(want.Type())
				expected := want.Call(args)
				for _, level := range simdLevels {
					got := reflect.ValueOf(level).MethodByName(name).Call(args)
					for j := range expected {
						if fused {
							checkMadd(t, level, args, expected[j], got[j])
							continue
						}
						if diff := cmp.Diff(expected[j].Interface(), got[j].Interface(), cmpopts.EquateNaNs()); diff != "" {
							t.Fatalf("%s on %v, args %v (-fallback +%v):\n%s", name, level.Level(), values(args), level.Level(), diff)
						}
					}
				}
			}
		})
	}
	if tested == 0 {
		t.Fatal("Fallback exposes no operations")
	}
}

// checkMadd allows fused levels one rounding step of the product away from
// the unfused reference.
func checkMadd(t *testing.T, level Simd, args []reflect.Value, want, got reflect.Value) {
	t.Helper()
	kind := want.Type().Elem().Kind()
	for i := range want.Len() {
		w, g := want.Index(i).Float(), got.Index(i).Float()
		if w == g || math.IsNaN(w) && math.IsNaN(g) {
			continue
		}
		a, b, c := args[0].Index(i).Float(), args[1].Index(i).Float(), args[2].Index(i).Float()
		tol := 2 * ulp(max(math.Abs(a*b), math.Abs(c), math.Abs(w)), kind)
		if !(math.Abs(w-g) <= tol) {
			t.Fatalf("madd(%v, %v, %v) lane %d on %v: got %v, want %v within %v", a, b, c, i, level.Level(), g, w, tol)
		}
	}
}

func ulp(x float64, kind reflect.Kind) float64 {
	if kind == reflect.Float32 {
		f := float32(x)
		return float64(math.Nextafter32(f, float32(math.Inf(1))) - f)
	}
	return math.Nextafter(x, math.Inf(1)) - x
}

func values(vs []reflect.Value) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v.Interface()
	}
	return out
}

func TestMaddFusedOnlyWhereNative(t *testing.T) {
	// (1+2^-12)^2 - (1+2^-11) is 2^-24 exactly; rounding the product first
	// loses it.
	a := Fallback{}.SplatF32x4(1 + 1.0/4096)
	c := Fallback{}.SplatF32x4(-(1 + 1.0/2048))
	fused := float32(math.Ldexp(1, -24))

	tests := []struct {
		s    Simd
		want float32
	}{
		{Fallback{}, 0},
		{Wasm128{}, 0},
		{Neon{}, fused},
		{Avx2{}, fused},
	}
	for _, tt := range tests {
		got := tt.s.MaddF32x4(a, a, c)
		for i, x := range got {
			if x != tt.want {
				t.Errorf("%v: lane %d: got %v, want %v", tt.s.Level(), i, x, tt.want)
			}
		}
	}
}
