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

package arch

import (
	"strings"
)

// Expr is a Go expression produced by a translator. Every node knows the
// Go type of the value it denotes so the generator can check results
// against the interface signature before anything is written.
type Expr interface {
	// Type returns the Go type of the expression as spelled in the
	// generated package ("F32x4", "neon.Float32x4", "uint").
	Type() string
	format(b *strings.Builder)
}

// Ident names a parameter or a local variable.
type Ident struct {
	Name string
	Typ  string
}

func (e *Ident) Type() string { return e.Typ }

func (e *Ident) format(b *strings.Builder) { b.WriteString(e.Name) }

// Lit is a literal or any other self-contained Go expression text, such as
// "int32(n&31)".
type Lit struct {
	Text string
	Typ  string
}

func (e *Lit) Type() string { return e.Typ }

func (e *Lit) format(b *strings.Builder) { b.WriteString(e.Text) }

// Call is a function call, optionally with explicit type arguments.
type Call struct {
	Func     string // "neon.VaddqF32", "combine", "s.AddF32x4"
	TypeArgs []string
	Args     []Expr
	Result   string
}

func (e *Call) Type() string { return e.Result }

func (e *Call) format(b *strings.Builder) {
	b.WriteString(e.Func)
	if len(e.TypeArgs) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(e.TypeArgs, ", "))
		b.WriteByte(']')
	}
	b.WriteByte('(')
	for i, a := range e.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.format(b)
	}
	b.WriteByte(')')
}

// Conv is a Go conversion between types of identical underlying type.
type Conv struct {
	To string
	X  Expr
}

func (e *Conv) Type() string { return e.To }

func (e *Conv) format(b *strings.Builder) {
	b.WriteString(e.To)
	b.WriteByte('(')
	e.X.format(b)
	b.WriteByte(')')
}

// Format renders e as Go source.
func Format(e Expr) string {
	var b strings.Builder
	e.format(&b)
	return b.String()
}

// Stmt is a statement that precedes the return of an Impl.
type Stmt interface {
	format(b *strings.Builder)
}

// Assign declares one or more locals from a single expression.
type Assign struct {
	Names []string
	Value Expr
}

func (s *Assign) format(b *strings.Builder) {
	b.WriteString(strings.Join(s.Names, ", "))
	b.WriteString(" := ")
	s.Value.format(b)
}

// Raw is verbatim statement text. Multi-line statements carry their own
// newlines and are indented one level per nested block.
type Raw string

func (s Raw) format(b *strings.Builder) { b.WriteString(string(s)) }

// FormatStmt renders s as Go source.
func FormatStmt(s Stmt) string {
	var b strings.Builder
	s.format(&b)
	return b.String()
}

// Impl is the body of one generated method.
type Impl struct {
	Stmts   []Stmt
	Results []Expr

	// Named reports whether the method declares named results that the
	// statements fill in place.
	Named bool

	// Receiver is the receiver name the body refers to, or "".
	Receiver string

	// Imports lists the binding packages the body calls into, by package
	// name.
	Imports []string
}

// ResultTypes returns the type of every returned expression.
func (im *Impl) ResultTypes() []string {
	types := make([]string, len(im.Results))
	for i, r := range im.Results {
		types[i] = r.Type()
	}
	return types
}

func ident(name, typ string) *Ident { return &Ident{Name: name, Typ: typ} }

func lit(text, typ string) *Lit { return &Lit{Text: text, Typ: typ} }

func conv(to string, x Expr) Expr {
	if x.Type() == to {
		return x
	}
	return &Conv{To: to, X: x}
}
