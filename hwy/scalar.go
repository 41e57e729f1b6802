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

import "math"

// Scalar lane helpers of the Fallback level. They define the reference
// semantics every other level is tested against.

type floatLane interface {
	~float32 | ~float64
}

type maskLane interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func sqrtF[T floatLane](x T) T { return T(math.Sqrt(float64(x))) }

func absF[T floatLane](x T) T { return T(math.Abs(float64(x))) }

func floorF[T floatLane](x T) T { return T(math.Floor(float64(x))) }

// copysign returns the magnitude of x with the sign of y.
func copysign[T floatLane](x, y T) T {
	return T(math.Copysign(float64(x), float64(y)))
}

// minPrecise returns a if a < b and b otherwise, so b wins when either is
// NaN and when both are zeros.
func minPrecise[T floatLane](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// maxPrecise returns a if a > b and b otherwise.
func maxPrecise[T floatLane](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// maskOf returns an all-ones lane for true and zero for false.
func maskOf[M maskLane](b bool) M {
	if b {
		return ^M(0)
	}
	return 0
}

func pick[T any](c bool, a, b T) T {
	if c {
		return a
	}
	return b
}

// truncU32 converts toward zero, saturating: NaN and values below 1 give 0,
// values of 2^32 and above give MaxUint32.
func truncU32[T floatLane](x T) uint32 {
	switch {
	case !(x >= 1):
		return 0
	case x >= 1<<32:
		return math.MaxUint32
	}
	return uint32(x)
}
