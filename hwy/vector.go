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

// Lift binds raw lanes to the token s. It copies the lanes and nothing
// else:
//
//	v := hwy.Lift[hwy.Float32x4[hwy.Neon]](s, hwy.F32x4{1, 2, 3, 4})
func Lift[V any, S Simd, R any, P interface {
	*V
	lift(S, R)
}](s S, raw R) V {
	var v V
	P(&v).lift(s, raw)
	return v
}

// Splat returns a vector of type V with x in every lane.
//
//	ones := hwy.Splat[hwy.Int32x8[hwy.Avx2]](s, int32(1))
func Splat[V any, S Simd, E any, P interface {
	*V
	splat(S, E)
}](s S, x E) V {
	var v V
	P(&v).splat(s, x)
	return v
}
