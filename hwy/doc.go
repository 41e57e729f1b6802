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

// Package hwy provides fixed-width SIMD vectors that run, unchanged, on
// every capability level: the scalar Fallback, Arm Neon, x86 AVX2 and
// WebAssembly SIMD128.
//
// Code is written once against Simd, the operation set every capability
// token implements. A token is a zero-size value proving that its
// instruction set was detected; vectors carry the token that produced them,
// so every operation resolves to that level's implementation without
// checking the CPU again:
//
//	func axpy[S hwy.Simd](s S, a float32, x, y hwy.F32x8) hwy.F32x8 {
//		vx := hwy.Lift[hwy.Float32x8[S]](s, x)
//		vy := hwy.Lift[hwy.Float32x8[S]](s, y)
//		return vx.MulScalar(a).Add(vy).Lanes
//	}
//
//	r := hwy.Dispatch(hwy.Detect(), hwy.Kernel[hwy.F32x8]{
//		Fallback: func(s hwy.Fallback) hwy.F32x8 { return axpy(s, a, x, y) },
//		Neon:     func(s hwy.Neon) hwy.F32x8 { return axpy(s, a, x, y) },
//		Avx2:     func(s hwy.Avx2) hwy.F32x8 { return axpy(s, a, x, y) },
//	})
//
// The shape types (F32x4, U8x32, M16x8, ...), the Simd interface, the bound
// vector types and each level's implementation are generated by
// cmd/vecgen; see generate.go.
//
// Setting HWY_NO_SIMD in the environment makes Detect report Fallback.
package hwy
