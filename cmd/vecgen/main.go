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

// Command vecgen generates the hwy vector interface and one implementation
// of it per capability level (Fallback, Neon, Avx2, Wasm128).
//
// Usage:
//
//	vecgen generate --out hwy --levels fallback,neon,avx2,wasm128
//	vecgen catalog f32x4 u16x16         # list the ops of two shapes
//	vecgen translate neon madd f32x8    # show one generated method
//	vecgen detect                       # runtime level and CPU features
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/vecgen generate --out . --pkg hwy
//
// Flags may also be set in .vecgen.yaml or through VECGEN_* environment
// variables (VECGEN_BINDING_PATH, VECGEN_LOG_LEVEL, ...).
package main

import (
	"fmt"
	"os"

	"github.com/ajroetker/go-lanes/cmd/vecgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
