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

// Kernel holds one instance of a computation per level. Fallback is
// required; a nil entry for another level runs Fallback instead.
type Kernel[R any] struct {
	Fallback func(Fallback) R
	Neon     func(Neon) R
	Avx2     func(Avx2) R
	Wasm128  func(Wasm128) R
}

// Dispatch runs the instance of k matching level with that level's token.
// No other instance is called.
//
// Typical use passes Detect() once, outside any loop:
//
//	sum := hwy.Dispatch(hwy.Detect(), kernel)
func Dispatch[R any](level Level, k Kernel[R]) R {
	switch level.id {
	case levelNeon:
		if k.Neon != nil {
			return k.Neon(Neon{})
		}
	case levelAvx2:
		if k.Avx2 != nil {
			return k.Avx2(Avx2{})
		}
	case levelWasm128:
		if k.Wasm128 != nil {
			return k.Wasm128(Wasm128{})
		}
	}
	return k.Fallback(Fallback{})
}

// Vectorize runs body with a token the caller already holds. It is the
// entry point for code that receives a token rather than a Level.
func Vectorize[S Simd, R any](s S, body func(S) R) R {
	return body(s)
}
