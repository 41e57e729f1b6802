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
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/ajroetker/go-lanes/cmd/vecgen/arch"
	"github.com/ajroetker/go-lanes/cmd/vecgen/catalog"
	"github.com/samber/lo"
)

const header = "// Code generated by vecgen. DO NOT EDIT.\n"

func (g *Generator) start(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "%s\npackage %s\n\n", header, g.cfg.Package)
}

// group renders a parameter list, merging adjacent names of one type:
// "a, b F32x4".
func group(names, types []string) string {
	var parts []string
	for i := 0; i < len(names); {
		j := i + 1
		for j < len(names) && types[j] == types[i] {
			j++
		}
		parts = append(parts, strings.Join(names[i:j], ", ")+" "+types[i])
		i = j
	}
	return strings.Join(parts, ", ")
}

func paramList(ps []catalog.Param) string {
	return group(
		lo.Map(ps, func(p catalog.Param, _ int) string { return p.Name }),
		lo.Map(ps, func(p catalog.Param, _ int) string { return p.Type }))
}

// resultList renders results without names.
func resultList(types []string) string {
	if len(types) == 1 {
		return types[0]
	}
	return "(" + strings.Join(types, ", ") + ")"
}

// interfaceResults names the results when the signature names them.
func interfaceResults(sig catalog.Signature) string {
	if sig.Results[0].Name == "" {
		return resultList(sig.ResultTypes())
	}
	return "(" + paramList(sig.Results) + ")"
}

func (g *Generator) renderShapes() []byte {
	var buf bytes.Buffer
	g.start(&buf)
	for _, s := range catalog.Shapes() {
		if s.Kind == catalog.Mask {
			fmt.Fprintf(&buf, "// %s holds the %d lanes of a %d-bit mask. Every lane is all ones or all zeros.\n",
				s.Name(), s.Lanes, s.Width())
		} else {
			fmt.Fprintf(&buf, "// %s holds the %d %s lanes of a %d-bit vector.\n", s.Name(), s.Lanes, s.Lane(), s.Width())
		}
		fmt.Fprintf(&buf, "type %s [%d]%s\n\n", s.Name(), s.Lanes, s.Lane())
	}
	return buf.Bytes()
}

func (g *Generator) renderSimd() []byte {
	var buf bytes.Buffer
	g.start(&buf)
	fmt.Fprintf(&buf, "// Simd is the operation set of a capability level, one method per vector\n")
	fmt.Fprintf(&buf, "// shape and operation. Only the token types of this package implement it.\n")
	fmt.Fprintf(&buf, "type Simd interface {\n\tToken\n")
	var last catalog.Shape
	for _, p := range catalog.Pairs(g.cfg.Conversions) {
		if p.Shape != last {
			buf.WriteString("\n")
			last = p.Shape
		}
		sig, err := p.Op.Signature(p.Shape)
		if err != nil {
			// Pairs only yields ops that exist at their shape.
			panic(err)
		}
		fmt.Fprintf(&buf, "\t%s(%s) %s\n", p.Method(), paramList(sig.Params), interfaceResults(sig))
	}
	buf.WriteString("}\n")
	if len(g.cfg.Levels) > 0 {
		buf.WriteString("\nvar (\n")
		for _, t := range g.cfg.Levels {
			fmt.Fprintf(&buf, "\t_ Simd = %s{}\n", t.Name())
		}
		buf.WriteString(")\n")
	}
	return buf.Bytes()
}

func (g *Generator) renderLevel(t arch.Translator, methods []Method) []byte {
	var buf bytes.Buffer
	g.start(&buf)
	pkgs := lo.Uniq(lo.FlatMap(methods, func(m Method, _ int) []string { return m.Impl.Imports }))
	slices.Sort(pkgs)
	if len(pkgs) > 0 {
		buf.WriteString("import (\n")
		for _, p := range pkgs {
			fmt.Fprintf(&buf, "\t%q\n", g.cfg.BindingPath+"/"+p)
		}
		buf.WriteString(")\n\n")
	}
	for _, m := range methods {
		renderMethod(&buf, t.Name(), m)
	}
	return buf.Bytes()
}

// Source renders m as a method on the token type of level t, unformatted.
func Source(t arch.Translator, m Method) string {
	var buf bytes.Buffer
	renderMethod(&buf, t.Name(), m)
	return strings.TrimSpace(buf.String())
}

func renderMethod(buf *bytes.Buffer, token string, m Method) {
	impl := m.Impl
	recv := token
	if impl.Receiver != "" {
		recv = impl.Receiver + " " + token
	}
	var results string
	if impl.Named {
		results = "(" + group(
			lo.Map(impl.Results, func(r arch.Expr, _ int) string { return r.(*arch.Ident).Name }),
			impl.ResultTypes()) + ")"
	} else {
		results = resultList(impl.ResultTypes())
	}
	fmt.Fprintf(buf, "func (%s) %s(%s) %s {\n", recv, m.Pair.Method(), paramList(m.Sig.Params), results)
	for _, s := range impl.Stmts {
		fmt.Fprintf(buf, "\t%s\n", strings.ReplaceAll(arch.FormatStmt(s), "\n", "\n\t"))
	}
	if impl.Named {
		buf.WriteString("\treturn\n")
	} else {
		fmt.Fprintf(buf, "\treturn %s\n", strings.Join(lo.Map(impl.Results, func(r arch.Expr, _ int) string {
			return arch.Format(r)
		}), ", "))
	}
	buf.WriteString("}\n\n")
}

// Scalar broadcast forms generated for binary ops, per lane category.
var scalarSugar = map[catalog.ScalarKind][]string{
	catalog.Float:       {"add", "sub", "mul", "div"},
	catalog.SignedInt:   {"add", "sub", "mul", "and", "or", "xor"},
	catalog.UnsignedInt: {"add", "sub", "mul", "and", "or", "xor"},
}

// vectorWriter renders the token-bound vector types.
type vectorWriter struct {
	buf *bytes.Buffer
}

func bound(s catalog.Shape) string { return s.BoundName() + "[S]" }

// wrap builds a bound literal around lanes.
func wrap(s catalog.Shape, recv, lanes string) string {
	return fmt.Sprintf("%s{Simd: %s.Simd, Lanes: %s}", bound(s), recv, lanes)
}

func (w vectorWriter) method(recv, typ, name, params, results, body string) {
	fmt.Fprintf(w.buf, "func (%s %s) %s(%s) %s {\n%s}\n\n", recv, typ, name, params, results, body)
}

func (g *Generator) renderVectors() []byte {
	var buf bytes.Buffer
	g.start(&buf)
	w := vectorWriter{buf: &buf}
	for _, s := range catalog.Shapes() {
		w.shape(s, catalog.OperationsFor(s, g.cfg.Conversions))
	}
	return buf.Bytes()
}

func (w vectorWriter) shape(s catalog.Shape, ops []catalog.Op) {
	b, raw, v := s.BoundName(), s.Name(), bound(s)
	if s.Kind == catalog.Mask {
		fmt.Fprintf(w.buf, "// %s is a %d-bit mask of %d lanes bound to the token S that produced it.\n", b, s.Width(), s.Lanes)
	} else {
		fmt.Fprintf(w.buf, "// %s is a %d-bit vector of %d %s lanes bound to the token S that produced it.\n",
			b, s.Width(), s.Lanes, s.Lane())
	}
	fmt.Fprintf(w.buf, "type %s[S Simd] struct {\n\tSimd  S\n\tLanes %s\n}\n\n", b, raw)
	fmt.Fprintf(w.buf, "func (v *%s) lift(s S, raw %s) {\n\tv.Simd, v.Lanes = s, raw\n}\n\n", v, raw)
	fmt.Fprintf(w.buf, "func (v *%s) splat(s S, x %s) {\n\tv.Simd, v.Lanes = s, s.Splat%s(x)\n}\n\n",
		v, s.ScalarParam(), raw)

	for _, op := range ops {
		call := func(args ...string) string {
			return "v.Simd." + op.Method(s) + "(" + strings.Join(args, ", ") + ")"
		}
		name := catalog.Camel(op.Name)
		switch op.Kind {
		case catalog.Splat:
			// Built through the splat method and the Splat function.
		case catalog.Unary:
			w.method("v", v, name, "", v, "\treturn "+wrap(s, "v", call("v.Lanes"))+"\n")
		case catalog.Binary:
			w.method("v", v, name, "w "+v, v, "\treturn "+wrap(s, "v", call("v.Lanes", "w.Lanes"))+"\n")
			if slices.Contains(scalarSugar[s.Kind], op.Name) {
				w.scalar(s, name)
			}
		case catalog.Ternary:
			w.method("v", v, name, "b, c "+v, v, "\treturn "+wrap(s, "v", call("v.Lanes", "b.Lanes", "c.Lanes"))+"\n")
		case catalog.Compare:
			w.method("v", v, name, "w "+v, bound(s.MaskShape()),
				"\treturn "+wrap(s.MaskShape(), "v", call("v.Lanes", "w.Lanes"))+"\n")
		case catalog.Select:
			m := s.MaskShape()
			w.method("m", bound(m), name+b, "a, b "+v, v,
				"\treturn "+wrap(s, "m", "m.Simd."+op.Method(s)+"(m.Lanes, a.Lanes, b.Lanes)")+"\n")
		case catalog.Combine:
			w.method("v", v, name, "w "+v, bound(s.Double()), "\treturn "+wrap(s.Double(), "v", call("v.Lanes", "w.Lanes"))+"\n")
		case catalog.Split:
			h := s.Half()
			w.method("v", v, name, "", "("+bound(h)+", "+bound(h)+")",
				"\tlo, hi := "+call("v.Lanes")+"\n\treturn "+wrap(h, "v", "lo")+", "+wrap(h, "v", "hi")+"\n")
		case catalog.Zip:
			w.method("v", v, name, "w "+v, "("+v+", "+v+")",
				"\tlo, hi := "+call("v.Lanes", "w.Lanes")+"\n\treturn "+wrap(s, "v", "lo")+", "+wrap(s, "v", "hi")+"\n")
		case catalog.Unzip:
			w.method("v", v, name, "w "+v, "("+v+", "+v+")",
				"\teven, odd := "+call("v.Lanes", "w.Lanes")+"\n\treturn "+wrap(s, "v", "even")+", "+wrap(s, "v", "odd")+"\n")
		case catalog.Shift:
			w.method("v", v, name, "n uint", v, "\treturn "+wrap(s, "v", call("v.Lanes", "n"))+"\n")
		case catalog.Convert, catalog.Reinterpret, catalog.WidenNarrow:
			t := bound(op.Target)
			w.method("v", v, name, "", t, "\treturn Lift["+t+"](v.Simd, "+call("v.Lanes")+")\n")
		}
	}
}

// scalar renders the broadcast forms of a binary op: v op x and x op v.
func (w vectorWriter) scalar(s catalog.Shape, name string) {
	v := bound(s)
	splat := wrap(s, "v", "v.Simd.Splat"+s.Name()+"(x)")
	fmt.Fprintf(w.buf, "// %sScalar applies %s to v and x broadcast to every lane.\n", name, name)
	w.method("v", v, name+"Scalar", "x "+s.Lane(), v, "\treturn v."+name+"("+splat+")\n")
	fmt.Fprintf(w.buf, "// Scalar%s applies %s to x broadcast to every lane and v.\n", name, name)
	w.method("v", v, "Scalar"+name, "x "+s.Lane(), v, "\treturn "+splat+"."+name+"(v)\n")
}
