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

// Package schema defines the type model produced by parsing LCM schema
// files. The model is constructed once by the parser and is read-only
// for the rest of the compilation run; code generation backends never
// mutate it.
package schema

import (
	"fmt"
	"strings"
)

// A TypeName identifies a type by dotted package path plus short name.
// Primitive types have an empty package. Struct references in a parsed
// model are always fully qualified.
type TypeName struct {
	Package string
	Short   string
}

// MakeTypeName splits a dotted qualified name into package and short
// name. A name with no dots has an empty package.
func MakeTypeName(qualified string) TypeName {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return TypeName{
			Package: qualified[:i],
			Short:   qualified[i+1:],
		}
	}
	return TypeName{Short: qualified}
}

// Full returns the fully-qualified dotted name.
func (t TypeName) Full() string {
	if t.Package == "" {
		return t.Short
	}
	return t.Package + "." + t.Short
}

// IsPrimitive reports whether the name refers to an LCM primitive type
// rather than a struct.
func (t TypeName) IsPrimitive() bool {
	return t.Package == "" && IsPrimitive(t.Short)
}

type DimensionMode uint8

const (
	// DimFixed is an array axis whose element count is an integer
	// literal known at schema-compile time.
	DimFixed DimensionMode = iota

	// DimRuntime is an array axis whose element count is read from a
	// sibling integer member at encode/decode time.
	DimRuntime
)

// A Dimension is one array axis of a member. Size carries the source
// text verbatim: a decimal literal for DimFixed, a member name for
// DimRuntime. The verbatim text participates in the fingerprint, so it
// must not be normalized.
type Dimension struct {
	Mode DimensionMode
	Size string
}

// A Member is one field of a struct. Dimensions are ordered outermost
// first; an empty list means a scalar field. If any dimension is
// DimRuntime, the parser guarantees its Size names an integer member
// declared earlier in the same struct.
type Member struct {
	Name       string
	Type       TypeName
	Dimensions []Dimension
	Comment    string
}

// A Constant is a compile-time named value attached to a struct. It is
// never encoded on the wire. Value carries the literal text verbatim.
type Constant struct {
	Name    string
	Type    string
	Value   string
	Comment string
}

// A Struct is a named, ordered sequence of members plus constants. Wire
// order is declaration order. A struct may reference other structs,
// including itself, directly or transitively.
type Struct struct {
	Name      TypeName
	Members   []Member
	Constants []Constant
	Comment   string
}

// Member returns the named member, or nil.
func (s *Struct) Member(name string) *Member {
	for i := range s.Members {
		if s.Members[i].Name == name {
			return &s.Members[i]
		}
	}
	return nil
}

// A TypeModel is the full ordered collection of structs in one
// compilation unit, addressed by fully-qualified name so that cyclic
// type references are expressible without ownership cycles.
type TypeModel struct {
	structs []*Struct
	byName  map[string]*Struct
}

func NewTypeModel() *TypeModel {
	return &TypeModel{
		byName: map[string]*Struct{},
	}
}

// Add appends a struct to the model, rejecting duplicate qualified
// names.
func (m *TypeModel) Add(s *Struct) error {
	full := s.Name.Full()
	if _, ok := m.byName[full]; ok {
		return fmt.Errorf("schema: duplicate struct %q", full)
	}
	m.structs = append(m.structs, s)
	m.byName[full] = s
	return nil
}

// Structs returns the structs in declaration order.
func (m *TypeModel) Structs() []*Struct {
	return m.structs
}

// Lookup finds a struct by fully-qualified dotted name.
func (m *TypeModel) Lookup(fullName string) (*Struct, bool) {
	s, ok := m.byName[fullName]
	return s, ok
}
