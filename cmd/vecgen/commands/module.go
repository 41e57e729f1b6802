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

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod encloses a directory.
var ErrNoModule = errors.New("no go.mod found")

// Module is the Go module enclosing a directory.
type Module struct {
	Path string // module path from the module directive
	Dir  string // directory holding go.mod
}

// FindModule walks up from dir to the nearest go.mod and reads its module
// path. dir need not exist yet.
func FindModule(dir string) (Module, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Module{}, err
	}
	for d := dir; ; d = filepath.Dir(d) {
		gomod := filepath.Join(d, "go.mod")
		data, err := os.ReadFile(gomod)
		if err == nil {
			f, err := modfile.ParseLax(gomod, data, nil)
			if err != nil {
				return Module{}, fmt.Errorf("parse %s: %w", gomod, err)
			}
			if f.Module == nil {
				return Module{}, fmt.Errorf("%s has no module directive", gomod)
			}
			return Module{Path: f.Module.Mod.Path, Dir: d}, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return Module{}, err
		}
		if parent := filepath.Dir(d); parent == d {
			return Module{}, fmt.Errorf("%s: %w", dir, ErrNoModule)
		}
	}
}
