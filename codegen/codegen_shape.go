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

package codegen

import (
	"fmt"
	"strconv"

	"github.com/miquelmassot/lcm/schema"
)

// An Axis is one level of a member's array nesting plan.
type Axis struct {
	// Fixed reports whether the element count is a compile-time
	// constant. Fixed axes carry Length; runtime axes carry SizeField,
	// the name of the sibling member holding the count.
	Fixed     bool
	Length    int
	SizeField string
}

// A Shape is a member's nesting plan, outermost axis first. It drives
// both the field declaration and the encode/decode loops emitted for
// the member.
type Shape struct {
	Axes []Axis

	// DynamicFrom is the index of the first runtime axis. Every axis
	// from DynamicFrom inward is declared as a dynamically sized
	// container, even if it is itself fixed; axes before it can use
	// fixed-capacity representations. Equal to len(Axes) when the
	// member is fixed at every axis.
	DynamicFrom int
}

// PlanShape computes the nesting plan for one member.
func PlanShape(m *schema.Member) (*Shape, error) {
	shape := &Shape{
		DynamicFrom: len(m.Dimensions),
	}
	for i, d := range m.Dimensions {
		switch d.Mode {
		case schema.DimFixed:
			n, err := strconv.Atoi(d.Size)
			if err != nil || n < 0 {
				return nil, fmt.Errorf(
					"codegen: member %q: bad fixed dimension %q",
					m.Name, d.Size,
				)
			}
			shape.Axes = append(shape.Axes, Axis{
				Fixed:  true,
				Length: n,
			})
		case schema.DimRuntime:
			if shape.DynamicFrom == len(m.Dimensions) {
				shape.DynamicFrom = i
			}
			shape.Axes = append(shape.Axes, Axis{
				SizeField: d.Size,
			})
		default:
			return nil, fmt.Errorf(
				"codegen: member %q: unknown dimension mode %d",
				m.Name, d.Mode,
			)
		}
	}
	return shape, nil
}

// Scalar reports whether the member has no array axes.
func (s *Shape) Scalar() bool {
	return len(s.Axes) == 0
}

// FullyFixed reports whether every axis is fixed, making the member
// representable as a fixed-capacity container.
func (s *Shape) FullyFixed() bool {
	return s.DynamicFrom == len(s.Axes)
}
