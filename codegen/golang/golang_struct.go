// Copyright (c) 2026 Miquel Massot
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package golang

import (
	"fmt"
	"strings"

	"github.com/miquelmassot/lcm/codegen"
	"github.com/miquelmassot/lcm/schema"
)

// structGen renders one struct's generated file. Shapes are planned
// once up front and shared by the declaration, encode, decode, and size
// emitters.
type structGen struct {
	b           *Backend
	model       *schema.TypeModel
	s           *schema.Struct
	shapes      []*codegen.Shape
	fingerprint uint64
}

func newStructGen(b *Backend, model *schema.TypeModel, s *schema.Struct) (*structGen, error) {
	g := &structGen{
		b:     b,
		model: model,
		s:     s,
	}
	for i := range s.Members {
		shape, err := codegen.PlanShape(&s.Members[i])
		if err != nil {
			return nil, err
		}
		g.shapes = append(g.shapes, shape)
	}
	fingerprint, err := codegen.NewFingerprinter(model).Fingerprint(s.Name.Full())
	if err != nil {
		return nil, err
	}
	g.fingerprint = fingerprint
	return g, nil
}

func emitComment(e *codegen.Emitter, indent int, comment string) {
	if comment == "" {
		return
	}
	for _, line := range strings.Split(comment, "\n") {
		if line == "" {
			e.Emit(indent, "//")
		} else {
			e.Emit(indent, "// %s", line)
		}
	}
}

// leafType is the Go type of the member's innermost element.
func (g *structGen) leafType(member int) string {
	m := &g.s.Members[member]
	if m.Type.IsPrimitive() {
		return goPrimitive[m.Type.Short]
	}
	return goTypeRef(m.Type, g.s.Name.Package)
}

// axesType renders the Go type of the container at the given axis:
// fixed-capacity arrays down to the first runtime axis, slices from
// there inward.
func (g *structGen) axesType(member, fromAxis int) string {
	shape := g.shapes[member]
	var b strings.Builder
	for i := fromAxis; i < len(shape.Axes); i++ {
		if i < shape.DynamicFrom {
			fmt.Fprintf(&b, "[%d]", shape.Axes[i].Length)
		} else {
			b.WriteString("[]")
		}
	}
	b.WriteString(g.leafType(member))
	return b.String()
}

// countExpr is the encode/decode-time element count of a runtime axis,
// read from the sibling size field.
func (g *structGen) countExpr(ax codegen.Axis) string {
	return fmt.Sprintf("int(p.%s)", fieldName(ax.SizeField))
}

func (g *structGen) emitDecl(e *codegen.Emitter) {
	emitComment(e, 0, g.s.Comment)
	e.Emit(0, "type %s struct {", typeName(g.s.Name))
	for i := range g.s.Members {
		m := &g.s.Members[i]
		emitComment(e, 1, m.Comment)
		e.Emit(1, "%s %s", fieldName(m.Name), g.axesType(i, 0))
	}
	e.Emit(0, "}")
	e.Blank()
}

func (g *structGen) emitConstants(e *codegen.Emitter) {
	for _, c := range g.s.Constants {
		emitComment(e, 0, c.Comment)
		e.Emit(0, "const %s %s = %s",
			constName(g.s.Name, c.Name), goPrimitive[c.Type], c.Value)
		e.Blank()
	}
}

func (g *structGen) emitFingerprint(e *codegen.Emitter) {
	name := fingerprintConstName(g.s.Name)
	e.Emit(0, "// %s is the structural fingerprint of %s. Endpoints",
		name, g.s.Name.Full())
	e.Emit(0, "// exchanging this type must agree on it exactly.")
	e.Emit(0, "const %s uint64 = 0x%016x", name, g.fingerprint)
	e.Blank()
	e.Emit(0, "func (p *%s) Fingerprint() uint64 {", typeName(g.s.Name))
	e.Emit(1, "return %s", name)
	e.Emit(0, "}")
	e.Blank()
}

// emitImports renders the import block. The runtime package is only
// imported when the emitted body references it; cross-package type
// references are imported once each, in first-occurrence order.
func (g *structGen) emitImports(e *codegen.Emitter, body string) error {
	var external []string
	seen := map[string]bool{}
	for i := range g.s.Members {
		m := &g.s.Members[i]
		if m.Type.IsPrimitive() || m.Type.Package == g.s.Name.Package {
			continue
		}
		if seen[m.Type.Package] {
			continue
		}
		seen[m.Type.Package] = true
		if g.b.importPrefix == "" {
			return fmt.Errorf(
				"golang: struct %s references %s from another package;"+
					" an import prefix is required",
				g.s.Name.Full(), m.Type.Full(),
			)
		}
		external = append(external,
			g.b.importPrefix+"/"+strings.ReplaceAll(m.Type.Package, ".", "/"))
	}

	needsRuntime := strings.Contains(body, "lcm.")
	e.Emit(0, "import (")
	e.Emit(1, "%q", "io")
	if needsRuntime || len(external) > 0 {
		e.Blank()
		if needsRuntime {
			e.Emit(1, "%q", g.b.runtimeImport)
		}
		for _, path := range external {
			e.Emit(1, "%q", path)
		}
	}
	e.Emit(0, ")")
	return nil
}
