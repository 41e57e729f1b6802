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

package emit

import (
	"context"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajroetker/go-lanes/cmd/vecgen/arch"
	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/ajroetker/go-lanes/cmd/vecgen/decompose"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bindingPath = "github.com/ajroetker/go-lanes/hwy/intrin"

func newGenerator(levels ...arch.Translator) *Generator {
	return New(Config{
		Package:     "hwy",
		BindingPath: bindingPath,
		Levels:      levels,
		Conversions: true,
	}, nil)
}

func TestLevelCoversCatalog(t *testing.T) {
	pairs := catalog.Pairs(true)
	g := newGenerator()
	for _, tr := range arch.All() {
		t.Run(tr.Name(), func(t *testing.T) {
			methods, err := g.Level(tr)
			require.NoError(t, err)
			require.Len(t, methods, len(pairs))
			for i, m := range methods {
				assert.Equal(t, pairs[i].Method(), m.Pair.Method())
			}
		})
	}
}

func TestDecompositionUse(t *testing.T) {
	g := newGenerator()
	tests := []struct {
		level      arch.Translator
		method     string
		decomposed bool
	}{
		{arch.Fallback(), "AddF32x16", false},
		{arch.Neon(), "AddF32x4", false},
		{arch.Neon(), "AddF32x8", true},
		{arch.Neon(), "NarrowU16x16", false},
		{arch.Neon(), "NarrowU16x32", true},
		{arch.Avx2(), "AddF32x8", false},
		{arch.Avx2(), "AddF32x16", true},
		{arch.Avx2(), "ZipI32x8", true},
		{arch.Wasm128(), "MulI64x4", true},
		{arch.Wasm128(), "SplitF32x8", false},
	}
	for _, tt := range tests {
		t.Run(tt.level.Name()+"/"+tt.method, func(t *testing.T) {
			methods, err := g.Level(tt.level)
			require.NoError(t, err)
			for _, m := range methods {
				if m.Pair.Method() == tt.method {
					assert.Equal(t, tt.decomposed, m.Decomposed)
					if tt.decomposed {
						assert.Equal(t, decompose.Receiver, m.Impl.Receiver)
					}
					return
				}
			}
			t.Fatalf("method %s not generated", tt.method)
		})
	}
}

// broken translates every pair with one fixed outcome.
type broken struct {
	impl *arch.Impl
	err  error
}

func (broken) Name() string { return "Broken" }

func (broken) NativeType(catalog.Shape) (arch.Repr, error) { return arch.Repr{}, arch.ErrWidth }

func (b broken) Translate(op catalog.Op, s catalog.Shape) (*arch.Impl, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.impl, nil
}

func TestLevelErrors(t *testing.T) {
	g := newGenerator()
	tests := []struct {
		name string
		tr   broken
		want error
	}{
		{"unknown op", broken{err: arch.ErrUnknownOp}, arch.ErrUnknownOp},
		{"bad width", broken{err: arch.ErrWidth}, arch.ErrWidth},
		{"declined at every width", broken{err: arch.ErrDeclined}, decompose.ErrNotDecomposable},
		{"wrong result type", broken{impl: &arch.Impl{Results: []arch.Expr{&arch.Ident{Name: "x", Typ: "int"}}}}, ErrSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methods, err := g.Level(tt.tr)
			require.Error(t, err)
			assert.Nil(t, methods)
			assert.ErrorIs(t, err, tt.want)

			var ge *GenError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, "Broken", ge.Level)
			assert.True(t, ge.Shape.InCatalog())
			assert.Contains(t, err.Error(), "generate Broken")
		})
	}
}

func TestCheck(t *testing.T) {
	sig, err := catalog.Op{Name: "zip", Kind: catalog.Zip}.Signature(catalog.S(catalog.Float, 32, 4))
	require.NoError(t, err)

	ok := &arch.Impl{
		Results: []arch.Expr{&arch.Ident{Name: "lo", Typ: "F32x4"}, &arch.Ident{Name: "hi", Typ: "F32x4"}},
		Named:   true,
	}
	assert.NoError(t, check(sig, ok))

	short := &arch.Impl{Results: []arch.Expr{&arch.Ident{Name: "lo", Typ: "F32x4"}}}
	assert.ErrorIs(t, check(sig, short), ErrSignature)

	unnamed := &arch.Impl{
		Results: []arch.Expr{
			&arch.Call{Func: "f", Result: "F32x4"},
			&arch.Ident{Name: "hi", Typ: "F32x4"},
		},
		Named: true,
	}
	assert.ErrorIs(t, check(sig, unnamed), ErrSignature)
}

func TestGroup(t *testing.T) {
	tests := []struct {
		names, types []string
		want         string
	}{
		{[]string{"a"}, []string{"F32x4"}, "a F32x4"},
		{[]string{"a", "b"}, []string{"F32x4", "F32x4"}, "a, b F32x4"},
		{[]string{"m", "a", "b"}, []string{"M32x4", "F32x4", "F32x4"}, "m M32x4, a, b F32x4"},
		{[]string{"a", "n"}, []string{"I8x16", "uint"}, "a I8x16, n uint"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, group(tt.names, tt.types))
	}
}

func parseFile(t *testing.T, f File) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), f.Name, f.Source, parser.ParseComments)
	require.NoError(t, err, "%s does not parse", f.Name)
	return file
}

func TestFiles(t *testing.T) {
	g := newGenerator(arch.All()...)
	files, err := g.Files(context.Background())
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		assert.True(t, strings.HasPrefix(string(f.Source), header), "%s lacks the generated header", f.Name)
		file := parseFile(t, f)
		assert.Equal(t, "hwy", file.Name.Name)
	}
	assert.Equal(t, []string{
		"z_shapes.gen.go", "z_simd.gen.go", "z_vectors.gen.go",
		"z_fallback.gen.go", "z_neon.gen.go", "z_avx2.gen.go", "z_wasm128.gen.go",
	}, names)

	simd := string(files[1].Source)
	assert.Contains(t, simd, "\tAddF32x4(a, b F32x4) F32x4\n")
	assert.Contains(t, simd, "\tSelectF32x4(m M32x4, a, b F32x4) F32x4\n")
	assert.Contains(t, simd, "\tSplitF32x8(a F32x8) (lo, hi F32x4)\n")
	assert.Contains(t, simd, "\tShlI32x4(a I32x4, n uint) I32x4\n")
	assert.Contains(t, simd, "\t_ Simd = Wasm128{}\n")

	vectors := string(files[2].Source)
	assert.Contains(t, vectors, "func (v Float32x4[S]) Add(w Float32x4[S]) Float32x4[S] {")
	assert.Contains(t, vectors, "func (m Mask32x4[S]) SelectFloat32x4(a, b Float32x4[S]) Float32x4[S] {")
	assert.Contains(t, vectors, "func (v Uint8x16[S]) Widen() Uint16x16[S] {")
	assert.Contains(t, vectors, "func (v Float32x4[S]) ScalarSub(x float32) Float32x4[S] {")
}

func TestFilesStopOnError(t *testing.T) {
	g := newGenerator(arch.Fallback(), broken{err: arch.ErrUnknownOp})
	files, err := g.Files(context.Background())
	assert.Nil(t, files)
	assert.ErrorIs(t, err, arch.ErrUnknownOp)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	g := newGenerator(arch.Fallback())
	require.NoError(t, g.Write(context.Background(), dir))
	for _, name := range []string{"z_shapes.gen.go", "z_simd.gen.go", "z_vectors.gen.go", "z_fallback.gen.go"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

// exported collects the exported top-level names of a package directory.
func exported(t *testing.T, dir string) map[string]bool {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := map[string]bool{}
	fset := token.NewFileSet()
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".go") || strings.HasSuffix(e.Name(), "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, e.Name()), nil, 0)
		require.NoError(t, err)
		for name, obj := range f.Scope.Objects {
			if ast.IsExported(name) {
				names[name] = obj != nil
			}
		}
	}
	return names
}

// TestBindingsExist checks that every binding name a translator emits is
// declared in its binding package.
func TestBindingsExist(t *testing.T) {
	root := filepath.Join("..", "..", "..", "hwy", "intrin")
	g := newGenerator(arch.All()...)
	files, err := g.Files(context.Background())
	require.NoError(t, err)

	declared := map[string]map[string]bool{}
	for _, f := range files {
		file := parseFile(t, f)
		pkgs := map[string]bool{}
		for _, imp := range file.Imports {
			path := strings.Trim(imp.Path.Value, `"`)
			pkg := path[strings.LastIndex(path, "/")+1:]
			pkgs[pkg] = true
			if declared[pkg] == nil {
				declared[pkg] = exported(t, filepath.Join(root, pkg))
			}
		}
		ast.Inspect(file, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			x, ok := sel.X.(*ast.Ident)
			if !ok || !pkgs[x.Name] {
				return true
			}
			if !declared[x.Name][sel.Sel.Name] {
				t.Errorf("%s: %s.%s is not declared in the binding package", f.Name, x.Name, sel.Sel.Name)
			}
			return true
		})
	}
}

func TestGenErrorUnwrap(t *testing.T) {
	err := &GenError{Level: "Neon", Shape: catalog.S(catalog.Float, 32, 4), Op: "add", Err: arch.ErrUnknownOp}
	assert.True(t, errors.Is(err, arch.ErrUnknownOp))
	assert.Equal(t, "generate Neon: add on f32x4: unknown operation", err.Error())
}

func TestBuildAndSource(t *testing.T) {
	g := newGenerator()
	add, ok := catalog.Lookup(catalog.S(catalog.Float, 32, 4), "add", false)
	require.True(t, ok)

	m, err := g.Build(arch.Neon(), catalog.Pair{Shape: catalog.S(catalog.Float, 32, 4), Op: add})
	require.NoError(t, err)
	assert.False(t, m.Decomposed)
	src := Source(arch.Neon(), m)
	assert.True(t, strings.HasPrefix(src, "func (Neon) AddF32x4("), src)
	assert.Contains(t, src, "neon.VaddqF32")

	wide, err := g.Build(arch.Neon(), catalog.Pair{Shape: catalog.S(catalog.Float, 32, 8), Op: add})
	require.NoError(t, err)
	assert.True(t, wide.Decomposed)

	_, err = g.Build(arch.Neon(), catalog.Pair{Shape: catalog.S(catalog.Float, 32, 4), Op: catalog.Op{Name: "frobnicate"}})
	var genErr *GenError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "frobnicate", genErr.Op)
}

// TestCheckedInFilesAreCurrent compares the generated files of the hwy
// package with a fresh generation.
func TestCheckedInFilesAreCurrent(t *testing.T) {
	files, err := newGenerator(arch.All()...).Files(context.Background())
	require.NoError(t, err)
	dir := filepath.Join("..", "..", "..", "hwy")
	for _, f := range files {
		want, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err, "%s is missing; run go generate ./hwy", f.Name)
		assert.Equal(t, string(want), string(f.Source), "%s is stale; run go generate ./hwy", f.Name)
	}
	checkedIn, err := filepath.Glob(filepath.Join(dir, "z_*.gen.go"))
	require.NoError(t, err)
	assert.Len(t, checkedIn, len(files), "hwy holds generated files vecgen no longer produces")
}

func TestLogFieldsKeepLevelKey(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	g := New(Config{Package: "hwy", BindingPath: bindingPath}, log)
	_, err := g.Level(broken{err: arch.ErrUnknownOp})
	require.Error(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Broken", entry.Data["target"])
	assert.NotContains(t, entry.Data, "level")
}
