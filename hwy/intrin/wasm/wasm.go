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


// Package wasm binds the WebAssembly SIMD128 instructions the Wasm128 level
// is generated against. Each function is named after the wasm_simd128.h
// intrinsic it stands for (wasm_f32x4_add is F32x4Add) and computes the
// lanes the instruction computes, including its results for NaN, overflow
// and out-of-range shift counts. The package is plain Go and builds on
// every architecture.
package wasm

import "github.com/ajroetker/go-lanes/hwy/intrin/internal/lanes"

// V128 is the single 128-bit register type. Instructions choose how its
// bytes split into lanes.
type V128 [16]byte

// Cast reinterprets the bits of v as a To of the same size.
func Cast[To, From any](v From) To {
	return lanes.Cast[To](v)
}
