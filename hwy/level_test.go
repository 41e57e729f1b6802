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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		width int
	}{
		{Level{}, "fallback", 16},
		{Level{levelNeon}, "neon", 16},
		{Level{levelAvx2}, "avx2", 32},
		{Level{levelWasm128}, "wasm128", 16},
		{Level{levelID(200)}, "unknown", 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.level.String())
		assert.Equal(t, tt.width, tt.level.Width(), tt.name)
	}
	assert.True(t, Level{}.IsFallback())
	assert.False(t, Level{levelAvx2}.IsFallback())
}

func TestTokenLevels(t *testing.T) {
	assert.Equal(t, Level{}, Fallback{}.Level())
	assert.Equal(t, Level{levelNeon}, Neon{}.Level())
	assert.Equal(t, Level{levelAvx2}, Avx2{}.Level())
	assert.Equal(t, Level{levelWasm128}, Wasm128{}.Level())
}

func TestX86FeaturesLevel(t *testing.T) {
	all := x86Features{AVX: true, AVX2: true, FMA: true, BMI1: true, BMI2: true}
	assert.Equal(t, Level{levelAvx2}, all.level())

	// Each required feature alone decides the outcome.
	for name, drop := range map[string]func(*x86Features){
		"AVX":  func(f *x86Features) { f.AVX = false },
		"AVX2": func(f *x86Features) { f.AVX2 = false },
		"FMA":  func(f *x86Features) { f.FMA = false },
		"BMI1": func(f *x86Features) { f.BMI1 = false },
		"BMI2": func(f *x86Features) { f.BMI2 = false },
	} {
		f := all
		drop(&f)
		assert.Equal(t, Level{}, f.level(), "without %s", name)
	}
	assert.Equal(t, Level{}, x86Features{}.level())
}

func TestArmFeaturesLevel(t *testing.T) {
	assert.Equal(t, Level{levelNeon}, armFeatures{ASIMD: true}.level())
	assert.Equal(t, Level{}, armFeatures{}.level())
}

func TestDetectIsStable(t *testing.T) {
	first := Detect()
	for range 8 {
		require.Equal(t, first, Detect())
	}
	if NoSimdEnv() {
		assert.True(t, first.IsFallback(), "HWY_NO_SIMD must force fallback")
	}
}

func TestLevelsAreOrdered(t *testing.T) {
	levels := Levels()
	require.NotEmpty(t, levels)
	assert.Equal(t, Level{}, levels[0], "first level is always fallback")
	assert.Equal(t, Detect(), levels[len(levels)-1])

	// A family is totally ordered: at most one level above Fallback, and
	// it belongs to this architecture.
	assert.LessOrEqual(t, len(levels), 2)
	for _, l := range levels {
		assert.Contains(t, family, l)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.value)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

func TestTryNewMatchesDetect(t *testing.T) {
	_, okAvx2 := TryNewAvx2()
	_, okNeon := TryNewNeon()
	assert.Equal(t, Detect() == Level{levelAvx2}, okAvx2)
	assert.Equal(t, Detect() == Level{levelNeon}, okNeon)
	assert.False(t, okAvx2 && okNeon)
}
