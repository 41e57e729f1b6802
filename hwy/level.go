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
	"os"
	"strconv"
	"sync"
)

// Level identifies one capability level. The zero Level is Fallback; other
// levels are only produced by Detect and Levels.
type Level struct {
	id levelID
}

type levelID uint8

const (
	levelFallback levelID = iota
	levelNeon
	levelAvx2
	levelWasm128
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l.id {
	case levelFallback:
		return "fallback"
	case levelNeon:
		return "neon"
	case levelAvx2:
		return "avx2"
	case levelWasm128:
		return "wasm128"
	default:
		return "unknown"
	}
}

// Width returns the native register width of the level in bytes.
// Fallback reports 16 so that code sized by Width behaves the same with
// and without SIMD.
func (l Level) Width() int {
	if l.id == levelAvx2 {
		return 32
	}
	return 16
}

// IsFallback reports whether l is the scalar level.
func (l Level) IsFallback() bool {
	return l.id == levelFallback
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Detect returns Fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

var detected = sync.OnceValue(func() Level {
	if NoSimdEnv() {
		return Level{}
	}
	return detect()
})

// Detect returns the highest level the running CPU supports. The CPU is
// queried once per process; later calls return the cached result.
func Detect() Level {
	return detected()
}

// Levels returns the levels of this architecture the CPU supports, lowest
// first. The first is always Fallback and the last is Detect().
func Levels() []Level {
	top := Detect()
	var levels []Level
	for _, l := range family {
		levels = append(levels, l)
		if l == top {
			break
		}
	}
	return levels
}

// x86Features are the CPU features the Avx2 level requires.
type x86Features struct {
	AVX, AVX2, FMA, BMI1, BMI2 bool
}

func (f x86Features) level() Level {
	if f.AVX && f.AVX2 && f.FMA && f.BMI1 && f.BMI2 {
		return Level{levelAvx2}
	}
	return Level{}
}

// armFeatures are the CPU features the Neon level requires.
type armFeatures struct {
	ASIMD bool
}

func (f armFeatures) level() Level {
	if f.ASIMD {
		return Level{levelNeon}
	}
	return Level{}
}
