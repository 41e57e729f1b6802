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

// Token is the proof that a capability level is usable. Only the token types
// of this package implement it.
//
// Tokens other than Fallback must come from Dispatch, TryNewAvx2,
// TryNewNeon or NewWasm128. Writing a composite literal such as Avx2{}
// skips the check and, on a CPU without the feature, has undefined
// results.
type Token interface {
	// Level reports the level the token proves.
	Level() Level

	token()
}

// Fallback is the scalar level. It is always available.
type Fallback struct{}

// Neon is the Arm Advanced SIMD level.
type Neon struct{}

// Avx2 is the x86 AVX2 level. It also requires FMA, BMI1 and BMI2.
type Avx2 struct{}

// Wasm128 is the WebAssembly SIMD128 level.
type Wasm128 struct{}

func (Fallback) Level() Level { return Level{levelFallback} }
func (Neon) Level() Level     { return Level{levelNeon} }
func (Avx2) Level() Level     { return Level{levelAvx2} }
func (Wasm128) Level() Level  { return Level{levelWasm128} }

func (Fallback) token() {}
func (Neon) token()     {}
func (Avx2) token()     {}
func (Wasm128) token()  {}

// TryNewAvx2 returns the Avx2 token if the CPU supports it.
func TryNewAvx2() (Avx2, bool) {
	return Avx2{}, Detect().id == levelAvx2
}

// TryNewNeon returns the Neon token if the CPU supports it.
func TryNewNeon() (Neon, bool) {
	return Neon{}, Detect().id == levelNeon
}
