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
)

// recordingKernel returns a kernel whose branches append their level name
// to calls.
func recordingKernel(calls *[]string) Kernel[Level] {
	record := func(l Level) Level {
		*calls = append(*calls, l.String())
		return l
	}
	return Kernel[Level]{
		Fallback: func(s Fallback) Level { return record(s.Level()) },
		Neon:     func(s Neon) Level { return record(s.Level()) },
		Avx2:     func(s Avx2) Level { return record(s.Level()) },
		Wasm128:  func(s Wasm128) Level { return record(s.Level()) },
	}
}

func TestDispatchRunsOnlyMatchingBranch(t *testing.T) {
	for _, level := range []Level{{levelFallback}, {levelNeon}, {levelAvx2}, {levelWasm128}} {
		t.Run(level.String(), func(t *testing.T) {
			var calls []string
			got := Dispatch(level, recordingKernel(&calls))
			assert.Equal(t, level, got)
			assert.Equal(t, []string{level.String()}, calls)
		})
	}
}

func TestDispatchNilBranchRunsFallback(t *testing.T) {
	var calls []string
	k := recordingKernel(&calls)
	k.Avx2 = nil
	assert.Equal(t, Level{}, Dispatch(Level{levelAvx2}, k))
	assert.Equal(t, []string{"fallback"}, calls)
}

func TestDispatchDetected(t *testing.T) {
	var calls []string
	got := Dispatch(Detect(), recordingKernel(&calls))
	assert.Equal(t, Detect(), got)
	assert.Len(t, calls, 1)
}

func sumLanes[S Simd](s S, x, y F32x8) float32 {
	v := Lift[Float32x8[S]](s, x).Add(Lift[Float32x8[S]](s, y))
	lo, hi := v.Split()
	var sum float32
	for _, l := range lo.Add(hi).Lanes {
		sum += l
	}
	return sum
}

func TestDispatchGenericKernel(t *testing.T) {
	x := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	y := F32x8{8, 7, 6, 5, 4, 3, 2, 1}
	k := Kernel[float32]{
		Fallback: func(s Fallback) float32 { return sumLanes(s, x, y) },
		Neon:     func(s Neon) float32 { return sumLanes(s, x, y) },
		Avx2:     func(s Avx2) float32 { return sumLanes(s, x, y) },
		Wasm128:  func(s Wasm128) float32 { return sumLanes(s, x, y) },
	}
	for _, level := range []Level{{levelFallback}, {levelNeon}, {levelAvx2}, {levelWasm128}} {
		assert.Equal(t, float32(72), Dispatch(level, k), level.String())
	}
}

func TestVectorize(t *testing.T) {
	got := Vectorize(Avx2{}, func(s Avx2) Level { return s.Level() })
	assert.Equal(t, Level{levelAvx2}, got)

	sum := Vectorize(Fallback{}, func(s Fallback) float32 {
		return sumLanes(s, F32x8{1}, F32x8{2})
	})
	assert.Equal(t, float32(3), sum)
}
