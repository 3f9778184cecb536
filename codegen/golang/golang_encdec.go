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
	"strconv"
	"strings"

	"github.com/miquelmassot/lcm/codegen"
	"github.com/miquelmassot/lcm/schema"
)

func (g *structGen) emitEncode(e *codegen.Emitter) {
	e.Emit(0, "func (p *%s) Encode(w io.Writer) error {", typeName(g.s.Name))
	for i := range g.s.Members {
		g.encodeMember(e, i)
	}
	e.Emit(1, "return nil")
	e.Emit(0, "}")
	e.Blank()
}

func (g *structGen) encodeMember(e *codegen.Emitter, member int) {
	m := &g.s.Members[member]
	expr := "p." + fieldName(m.Name)
	if g.shapes[member].Scalar() {
		g.encodeLeaf(e, 1, expr, m)
		return
	}
	g.encodeAxes(e, 1, member, 0, expr)
}

// encodeAxes walks one nesting level of an array member. Runtime axes
// encode exactly the count named by the size field, erroring when the
// container is shorter; fixed axes inside the dynamic region carry the
// same guard because their containers are slices.
func (g *structGen) encodeAxes(e *codegen.Emitter, indent, member, axis int, container string) {
	shape := g.shapes[member]
	m := &g.s.Members[member]
	if axis == len(shape.Axes) {
		g.encodeLeaf(e, indent, container, m)
		return
	}

	ax := shape.Axes[axis]
	loop := container
	switch {
	case !ax.Fixed:
		count := g.countExpr(ax)
		e.Emit(indent, "if %s > len(%s) {", count, container)
		e.Emit(indent+1, "return lcm.ErrArrayTooShort")
		e.Emit(indent, "}")
		loop = fmt.Sprintf("%s[:%s]", container, count)
	case axis >= shape.DynamicFrom:
		e.Emit(indent, "if len(%s) < %d {", container, ax.Length)
		e.Emit(indent+1, "return lcm.ErrArrayTooShort")
		e.Emit(indent, "}")
		loop = fmt.Sprintf("%s[:%d]", container, ax.Length)
	}

	v := fmt.Sprintf("v%d", axis)
	e.Emit(indent, "for _, %s := range %s {", v, loop)
	g.encodeAxes(e, indent+1, member, axis+1, v)
	e.Emit(indent, "}")
}

func (g *structGen) encodeLeaf(e *codegen.Emitter, indent int, expr string, m *schema.Member) {
	if m.Type.IsPrimitive() {
		e.Emit(indent, "if err := lcm.Encode%s(w, %s); err != nil {",
			codecSuffix[m.Type.Short], expr)
	} else {
		e.Emit(indent, "if err := %s.Encode(w); err != nil {", expr)
	}
	e.Emit(indent+1, "return err")
	e.Emit(indent, "}")
}

func (g *structGen) emitDecode(e *codegen.Emitter) {
	e.Emit(0, "func (p *%s) Decode(r io.Reader) error {", typeName(g.s.Name))
	for i := range g.s.Members {
		g.decodeMember(e, i)
	}
	e.Emit(1, "return nil")
	e.Emit(0, "}")
	e.Blank()
}

func (g *structGen) decodeMember(e *codegen.Emitter, member int) {
	m := &g.s.Members[member]
	lvalue := "p." + fieldName(m.Name)
	shape := g.shapes[member]
	if shape.Scalar() {
		g.decodeLeaf(e, 1, lvalue, m)
		return
	}

	// Size fields were decoded by earlier members; a hostile stream can
	// hold a negative count, which would panic make below.
	checked := map[string]bool{}
	for _, ax := range shape.Axes {
		if ax.Fixed || checked[ax.SizeField] {
			continue
		}
		checked[ax.SizeField] = true
		sizeField := g.s.Member(ax.SizeField)
		if sizeField == nil || sizeField.Type.Short == schema.Byte {
			continue
		}
		e.Emit(1, "if p.%s < 0 {", fieldName(ax.SizeField))
		e.Emit(2, "return lcm.ErrNegativeLength")
		e.Emit(1, "}")
	}
	g.decodeAxes(e, 1, member, 0, lvalue)
}

func (g *structGen) decodeAxes(e *codegen.Emitter, indent, member, axis int, lvalue string) {
	shape := g.shapes[member]
	m := &g.s.Members[member]
	if axis == len(shape.Axes) {
		g.decodeLeaf(e, indent, lvalue, m)
		return
	}

	ax := shape.Axes[axis]
	if axis >= shape.DynamicFrom {
		length := strconv.Itoa(ax.Length)
		if !ax.Fixed {
			length = g.countExpr(ax)
		}
		e.Emit(indent, "%s = make(%s, %s)", lvalue, g.axesType(member, axis), length)
	}

	i := fmt.Sprintf("i%d", axis)
	e.Emit(indent, "for %s := range %s {", i, lvalue)
	g.decodeAxes(e, indent+1, member, axis+1, fmt.Sprintf("%s[%s]", lvalue, i))
	e.Emit(indent, "}")
}

func (g *structGen) decodeLeaf(e *codegen.Emitter, indent int, lvalue string, m *schema.Member) {
	if m.Type.IsPrimitive() {
		e.Emit(indent, "if err := lcm.Decode%s(r, &%s); err != nil {",
			codecSuffix[m.Type.Short], lvalue)
	} else {
		e.Emit(indent, "if err := %s.Decode(r); err != nil {", lvalue)
	}
	e.Emit(indent+1, "return err")
	e.Emit(indent, "}")
}

func (g *structGen) emitSize(e *codegen.Emitter) {
	e.Emit(0, "func (p *%s) Size() int {", typeName(g.s.Name))
	e.Emit(1, "size := 0")
	for i := range g.s.Members {
		g.sizeMember(e, i)
	}
	e.Emit(1, "return size")
	e.Emit(0, "}")
}

// fixedWidthLeaf reports whether the member's element is a primitive
// with a value-independent encoded width.
func fixedWidthLeaf(m *schema.Member) bool {
	return m.Type.IsPrimitive() && m.Type.Short != schema.String
}

func (g *structGen) sizeMember(e *codegen.Emitter, member int) {
	m := &g.s.Members[member]
	shape := g.shapes[member]
	expr := "p." + fieldName(m.Name)
	if shape.Scalar() {
		g.sizeLeaf(e, 1, expr, m)
		return
	}

	// A fully fixed block of fixed-width primitives has a constant size;
	// fold the element counts instead of looping.
	if shape.FullyFixed() && fixedWidthLeaf(m) {
		factors := make([]string, 0, len(shape.Axes)+1)
		for _, ax := range shape.Axes {
			factors = append(factors, strconv.Itoa(ax.Length))
		}
		factors = append(factors, "lcm.Size"+codecSuffix[m.Type.Short])
		e.Emit(1, "size += %s", strings.Join(factors, " * "))
		return
	}
	g.sizeAxes(e, 1, member, 0, expr)
}

// sizeAxes mirrors the traversal Encode will perform: runtime and
// fixed-in-dynamic axes count min(declared, len) elements, so Size stays
// total even on containers Encode would reject. The innermost axis over
// a fixed-width primitive is folded into arithmetic rather than a loop.
func (g *structGen) sizeAxes(e *codegen.Emitter, indent, member, axis int, container string) {
	shape := g.shapes[member]
	m := &g.s.Members[member]
	if axis == len(shape.Axes) {
		g.sizeLeaf(e, indent, container, m)
		return
	}

	ax := shape.Axes[axis]
	var count string
	switch {
	case !ax.Fixed:
		count = fmt.Sprintf("min(%s, len(%s))", g.countExpr(ax), container)
	case axis >= shape.DynamicFrom:
		count = fmt.Sprintf("min(%d, len(%s))", ax.Length, container)
	default:
		count = strconv.Itoa(ax.Length)
	}

	if axis == len(shape.Axes)-1 && fixedWidthLeaf(m) {
		e.Emit(indent, "size += %s * lcm.Size%s", count, codecSuffix[m.Type.Short])
		return
	}

	loop := container
	if !ax.Fixed || axis >= shape.DynamicFrom {
		loop = fmt.Sprintf("%s[:%s]", container, count)
	}
	v := fmt.Sprintf("v%d", axis)
	e.Emit(indent, "for _, %s := range %s {", v, loop)
	g.sizeAxes(e, indent+1, member, axis+1, v)
	e.Emit(indent, "}")
}

func (g *structGen) sizeLeaf(e *codegen.Emitter, indent int, expr string, m *schema.Member) {
	switch {
	case m.Type.Short == schema.String:
		e.Emit(indent, "size += lcm.SizeString(%s)", expr)
	case m.Type.IsPrimitive():
		e.Emit(indent, "size += lcm.Size%s", codecSuffix[m.Type.Short])
	default:
		e.Emit(indent, "size += %s.Size()", expr)
	}
}
