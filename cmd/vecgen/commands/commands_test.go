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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajroetker/go-lanes/cmd/vecgen/arch"
	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh root command and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "catalog one shape",
			args: []string{"catalog", "f32x4"},
			want: []string{"SHAPE", "AddF32x4(a F32x4, b F32x4) F32x4", "SelectF32x4(m M32x4, a F32x4, b F32x4) F32x4"},
		},
		{
			name: "catalog upper-case shape",
			args: []string{"catalog", "U16X16"},
			want: []string{"SplitU16x16(a U16x16) (U16x8, U16x8)"},
		},
		{
			name: "catalog conversions",
			args: []string{"catalog", "--conversions", "u8x16"},
			want: []string{"WidenU8x16(a U8x16) U16x16"},
		},
		{
			name:    "catalog shape outside catalog",
			args:    []string{"catalog", "f32x32"},
			wantErr: true,
		},
		{
			name:    "catalog malformed shape",
			args:    []string{"catalog", "q7"},
			wantErr: true,
		},
		{
			name: "translate native",
			args: []string{"translate", "neon", "add", "f32x4"},
			want: []string{"func (Neon) AddF32x4(", "neon.VaddqF32"},
		},
		{
			name: "translate decomposed",
			args: []string{"translate", "Neon", "add", "f32x8"},
			want: []string{"func (s Neon) AddF32x8(", "s.AddF32x4("},
		},
		{
			name: "translate fallback",
			args: []string{"translate", "fallback", "convert_u32", "f32x4"},
			want: []string{"func (Fallback) ConvertU32F32x4("},
		},
		{
			name:    "translate unknown level",
			args:    []string{"translate", "sse4", "add", "f32x4"},
			wantErr: true,
		},
		{
			name:    "translate unknown op",
			args:    []string{"translate", "avx2", "frobnicate", "f32x4"},
			wantErr: true,
		},
		{
			name:    "translate missing shape",
			args:    []string{"translate", "avx2", "add"},
			wantErr: true,
		},
		{
			name: "detect",
			args: []string{"detect"},
			want: []string{"Level:", "Levels:", "fallback", "Features:", "AVX2"},
		},
		{
			name: "generate dry run",
			args: []string{"generate", "--dry-run", "--binding-path", "example.com/m/hwy/intrin", "--levels", "fallback"},
			want: []string{"z_shapes.gen.go", "z_simd.gen.go", "z_vectors.gen.go", "z_fallback.gen.go"},
		},
		{
			name:    "generate unknown level",
			args:    []string{"generate", "--dry-run", "--binding-path", "example.com/m/hwy/intrin", "--levels", "avx512"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			args:    []string{"--log-level", "loud", "catalog", "f32x4"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestTranslateUnknownOpIsTyped(t *testing.T) {
	_, err := run(t, "translate", "wasm128", "frobnicate", "i8x16")
	assert.True(t, errors.Is(err, arch.ErrUnknownOp), "got %v", err)
}

// newModule writes a go.mod for module path into a temp dir and returns
// the dir.
func newModule(t *testing.T, path string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module "+path+"\n\ngo 1.24\n"), 0o644))
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateDiscoversBindingPath(t *testing.T) {
	root := newModule(t, "example.com/demo")
	out := filepath.Join(root, "hwy")

	stdout, err := run(t, "generate", "--out", out, "--levels", "fallback,neon")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully generated code for levels: Fallback, Neon")

	for _, name := range []string{"z_shapes.gen.go", "z_simd.gen.go", "z_vectors.gen.go", "z_fallback.gen.go", "z_neon.gen.go"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.NoFileExists(t, filepath.Join(out, "z_avx2.gen.go"))

	neon := readFile(t, filepath.Join(out, "z_neon.gen.go"))
	assert.Contains(t, neon, `"example.com/demo/hwy/intrin/neon"`)
	assert.True(t, strings.HasPrefix(neon, "// Code generated by vecgen. DO NOT EDIT."))
	assert.Contains(t, readFile(t, filepath.Join(out, "z_fallback.gen.go")), "WidenU8x16")
}

func TestGenerateNoConversions(t *testing.T) {
	out := t.TempDir()
	_, err := run(t, "generate", "--out", out, "--levels", "fallback", "--no-conversions", "--binding-path", "example.com/x/intrin")
	require.NoError(t, err)
	fallback := readFile(t, filepath.Join(out, "z_fallback.gen.go"))
	assert.NotContains(t, fallback, "WidenU8x16")
	assert.Contains(t, fallback, "AddU8x16")
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen")
	cfg := filepath.Join(dir, "vecgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(strings.Join([]string{
		"out: " + out,
		"package: lanes",
		"binding-path: example.com/cfg/intrin",
		"levels: [wasm128]",
		"log-level: warn",
	}, "\n")+"\n"), 0o644))

	_, err := run(t, "--config", cfg, "generate")
	require.NoError(t, err)
	wasm := readFile(t, filepath.Join(out, "z_wasm128.gen.go"))
	assert.Contains(t, wasm, "package lanes")
	assert.Contains(t, wasm, `"example.com/cfg/intrin/wasm"`)
	assert.NoFileExists(t, filepath.Join(out, "z_fallback.gen.go"))
}

func TestGenerateMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "catalog", "f32x4")
	assert.Error(t, err)
}

func TestGenerateEnv(t *testing.T) {
	out := t.TempDir()
	t.Setenv("VECGEN_BINDING_PATH", "example.com/env/intrin")
	t.Setenv("VECGEN_OUT", out)
	_, err := run(t, "generate", "--levels", "avx2")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, filepath.Join(out, "z_avx2.gen.go")), `"example.com/env/intrin/x86"`)
}

func TestFindModule(t *testing.T) {
	root := newModule(t, "example.com/found")
	mod, err := FindModule(filepath.Join(root, "a", "b", "not-yet-created"))
	require.NoError(t, err)
	assert.Equal(t, Module{Path: "example.com/found", Dir: root}, mod)

	bare := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bare, "go.mod"), []byte("go 1.24\n"), 0o644))
	_, err = FindModule(bare)
	assert.ErrorContains(t, err, "no module directive")
}

func TestTranslators(t *testing.T) {
	all, err := translators(nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	got, err := translators([]string{"neon", "NEON", "avx2"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Neon", got[0].Name())
	assert.Equal(t, "Avx2", got[1].Name())

	_, err = translators([]string{"sve"})
	assert.Error(t, err)
}

func TestParseShape(t *testing.T) {
	s, err := parseShape("f32x8")
	require.NoError(t, err)
	assert.Equal(t, "f32x8", s.String())

	zip, ok := catalog.Lookup(s, "zip", false)
	require.True(t, ok)
	sig, err := zip.Signature(s)
	require.NoError(t, err)
	assert.Equal(t, "(a F32x8, b F32x8) (F32x8, F32x8)", formatSignature(sig))

	_, err = parseShape("f32x64")
	assert.ErrorContains(t, err, "outside the catalog")
}
