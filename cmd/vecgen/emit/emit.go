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

// Package emit generates the hwy vector interface and one implementation
// per capability level. For every catalog pair it asks the level's
// translator first, falls back to decomposition when the translator
// declines, and type-checks the result against the catalog signature
// before any source is written.
package emit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ajroetker/go-lanes/cmd/vecgen/arch"
	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/ajroetker/go-lanes/cmd/vecgen/decompose"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// ErrSignature is returned when an implementation's result types do not
// match the catalog signature of its pair.
var ErrSignature = errors.New("implementation does not match signature")

// GenError reports a catalog pair a level could not produce.
type GenError struct {
	Level string
	Shape catalog.Shape
	Op    string
	Err   error
}

func (e *GenError) Error() string {
	return fmt.Sprintf("generate %s: %s on %s: %v", e.Level, e.Op, e.Shape, e.Err)
}

func (e *GenError) Unwrap() error { return e.Err }

// Config controls what is generated.
type Config struct {
	// Package is the name of the generated package.
	Package string

	// BindingPath is the import path under which the binding packages
	// (neon, x86, wasm) live.
	BindingPath string

	// Levels are the translators to generate implementations for.
	Levels []arch.Translator

	// Conversions adds widen, narrow, reinterpret_u8 and convert_u32.
	Conversions bool
}

// Method is one generated interface method of one level.
type Method struct {
	Pair       catalog.Pair
	Sig        catalog.Signature
	Impl       *arch.Impl
	Decomposed bool
}

// File is one generated, formatted source file.
type File struct {
	Name   string
	Source []byte
}

// Generator produces the generated files of a package.
type Generator struct {
	cfg Config
	log logrus.FieldLogger
}

// New returns a Generator for cfg. A nil logger discards all output.
func New(cfg Config, log logrus.FieldLogger) *Generator {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if cfg.Package == "" {
		cfg.Package = "hwy"
	}
	return &Generator{cfg: cfg, log: log}
}

// Level builds every catalog method for one translator. Every pair that
// fails is reported; the returned error joins one *GenError per pair.
func (g *Generator) Level(t arch.Translator) ([]Method, error) {
	pairs := catalog.Pairs(g.cfg.Conversions)
	methods := make([]Method, 0, len(pairs))
	var errs []error
	for _, p := range pairs {
		m, err := g.method(t, p)
		if err != nil {
			g.log.WithFields(logrus.Fields{
				"target": t.Name(),
				"shape": p.Shape.String(),
				"op":    p.Op.Name,
			}).WithError(err).Error("cannot generate method")
			errs = append(errs, &GenError{Level: t.Name(), Shape: p.Shape, Op: p.Op.Name, Err: err})
			continue
		}
		methods = append(methods, m)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return methods, nil
}

// Build produces the method implementing p on level t, decomposing when
// the translator declines.
func (g *Generator) Build(t arch.Translator, p catalog.Pair) (Method, error) {
	m, err := g.method(t, p)
	if err != nil {
		return Method{}, &GenError{Level: t.Name(), Shape: p.Shape, Op: p.Op.Name, Err: err}
	}
	return m, nil
}

func (g *Generator) method(t arch.Translator, p catalog.Pair) (Method, error) {
	sig, err := p.Op.Signature(p.Shape)
	if err != nil {
		return Method{}, err
	}
	m := Method{Pair: p, Sig: sig}
	m.Impl, err = t.Translate(p.Op, p.Shape)
	if errors.Is(err, arch.ErrDeclined) {
		g.log.WithFields(logrus.Fields{
			"target": t.Name(),
			"shape": p.Shape.String(),
			"op":    p.Op.Name,
		}).Debug("decomposing")
		m.Impl, err = decompose.Decompose(p.Op, p.Shape)
		m.Decomposed = true
	}
	if err != nil {
		return Method{}, err
	}
	if err := check(sig, m.Impl); err != nil {
		return Method{}, err
	}
	return m, nil
}

// check compares the types of the returned expressions with the signature.
// Named implementations must return exactly their named results.
func check(sig catalog.Signature, impl *arch.Impl) error {
	want, got := sig.ResultTypes(), impl.ResultTypes()
	if !slices.Equal(want, got) {
		return fmt.Errorf("returns (%v), want (%v): %w", got, want, ErrSignature)
	}
	if impl.Named {
		for _, r := range impl.Results {
			if _, ok := r.(*arch.Ident); !ok {
				return fmt.Errorf("named result %s is not an identifier: %w", arch.Format(r), ErrSignature)
			}
		}
	}
	return nil
}

// Files renders every generated file. Levels are built concurrently;
// each level's file is produced by exactly one goroutine.
func (g *Generator) Files(ctx context.Context) ([]File, error) {
	levelFiles := make([]File, len(g.cfg.Levels))
	eg, ctx := errgroup.WithContext(ctx)
	for i, t := range g.cfg.Levels {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			methods, err := g.Level(t)
			if err != nil {
				return err
			}
			name := LevelFile(t)
			src, err := format(name, g.renderLevel(t, methods))
			if err != nil {
				return err
			}
			decomposed := 0
			for _, m := range methods {
				if m.Decomposed {
					decomposed++
				}
			}
			g.log.WithFields(logrus.Fields{
				"target":     t.Name(),
				"methods":    len(methods),
				"decomposed": decomposed,
			}).Info("generated level")
			levelFiles[i] = File{Name: name, Source: src}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var files []File
	for _, r := range []struct {
		name   string
		render func() []byte
	}{
		{"z_shapes.gen.go", g.renderShapes},
		{"z_simd.gen.go", g.renderSimd},
		{"z_vectors.gen.go", g.renderVectors},
	} {
		src, err := format(r.name, r.render())
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: r.name, Source: src})
	}
	return append(files, levelFiles...), nil
}

// Write renders every file and writes it into dir.
func (g *Generator) Write(ctx context.Context, dir string) error {
	files, err := g.Files(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
		g.log.WithField("file", path).Debug("wrote")
	}
	return nil
}

// LevelFile is the name of the file holding the methods of level t.
func LevelFile(t arch.Translator) string {
	return "z_" + strings.ToLower(t.Name()) + ".gen.go"
}

func format(name string, src []byte) ([]byte, error) {
	out, err := imports.Process(name, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return out, nil
}
