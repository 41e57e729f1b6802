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

import "unsafe"

// The raw shape types are plain arrays, so moving lanes between a vector
// and its halves is a copy of bytes. Every level uses these helpers for
// combine and split and the decomposed methods.

func bytesOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// combine concatenates lo and hi into a vector of twice the lanes.
func combine[H, W any](lo, hi H) W {
	var w W
	dst := bytesOf(&w)
	n := copy(dst, bytesOf(&lo))
	copy(dst[n:], bytesOf(&hi))
	return w
}

// split returns the lower and upper halves of v.
func split[W, H any](v W) (H, H) {
	return lower[W, H](v), upper[W, H](v)
}

func lower[W, H any](v W) H {
	var h H
	copy(bytesOf(&h), bytesOf(&v))
	return h
}

func upper[W, H any](v W) H {
	var h H
	dst := bytesOf(&h)
	copy(dst, bytesOf(&v)[len(dst):])
	return h
}

// bitcast reinterprets the bytes of v as a To of the same size.
func bitcast[To, From any](v From) To {
	var to To
	if unsafe.Sizeof(to) != unsafe.Sizeof(v) {
		panic("hwy: bitcast between types of different size")
	}
	copy(bytesOf(&to), bytesOf(&v))
	return to
}
