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

package syntax_test

import (
	"testing"

	"github.com/miquelmassot/lcm/internal/testutil"
	"github.com/miquelmassot/lcm/schema"
	"github.com/miquelmassot/lcm/syntax"
)

func TestParseStruct(t *testing.T) {
	file, err := syntax.Parse([]byte(`
package exlcm;

/**
 * An example message covering every primitive type.
 */
struct example_t
{
    int64_t  utime;
    double   position[3];
    double   orientation[4];
    int32_t  num_ranges;
    int16_t  ranges[num_ranges];
    string   name;
    boolean  enabled;
}
`))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "exlcm", file.Package)
	testutil.ExpectEq(t, 1, len(file.Structs))

	s := file.Structs[0]
	testutil.ExpectEq(t, "exlcm.example_t", s.Name.Full())
	testutil.ExpectEq(t, "An example message covering every primitive type.", s.Comment)
	testutil.ExpectEq(t, 7, len(s.Members))

	pos := s.Member("position")
	testutil.ExpectEq(t, "double", pos.Type.Short)
	testutil.ExpectEq(t, 1, len(pos.Dimensions))
	testutil.ExpectEq(t, schema.DimFixed, pos.Dimensions[0].Mode)
	testutil.ExpectEq(t, "3", pos.Dimensions[0].Size)

	ranges := s.Member("ranges")
	testutil.ExpectEq(t, schema.DimRuntime, ranges.Dimensions[0].Mode)
	testutil.ExpectEq(t, "num_ranges", ranges.Dimensions[0].Size)
}

func TestParseDocComments(t *testing.T) {
	file, err := syntax.Parse([]byte(`
package exlcm;

// Timestamped temperature sample.
struct temperature_t
{
    int64_t utime;   // trailing comments are not doc comments

    // Degrees Celsius.
    double deg_celsius;
}
`))
	testutil.AssertNoError(t, err)
	s := file.Structs[0]
	testutil.ExpectEq(t, "Timestamped temperature sample.", s.Comment)
	testutil.ExpectEq(t, "", s.Member("utime").Comment)
	testutil.ExpectEq(t, "Degrees Celsius.", s.Member("deg_celsius").Comment)
}

func TestParseConstants(t *testing.T) {
	file, err := syntax.Parse([]byte(`
package exlcm;
struct status_t
{
    const int32_t OK = 0, ERROR = -1;
    const double GRAVITY = 9.81;
    int8_t code;
}
`))
	testutil.AssertNoError(t, err)
	s := file.Structs[0]
	testutil.ExpectEq(t, 3, len(s.Constants))
	testutil.ExpectEq(t, "ERROR", s.Constants[1].Name)
	testutil.ExpectEq(t, "-1", s.Constants[1].Value)
	testutil.ExpectEq(t, "int32_t", s.Constants[1].Type)
	testutil.ExpectEq(t, "9.81", s.Constants[2].Value)
}

func TestParseCommaDeclarators(t *testing.T) {
	file, err := syntax.Parse([]byte(`
package exlcm;
struct vec_t
{
    double x, y, z;
}
`))
	testutil.AssertNoError(t, err)
	s := file.Structs[0]
	testutil.ExpectEq(t, 3, len(s.Members))
	testutil.ExpectEq(t, "y", s.Members[1].Name)
	testutil.ExpectEq(t, "double", s.Members[1].Type.Short)
}

func TestParseQualifiesLocalReferences(t *testing.T) {
	file, err := syntax.Parse([]byte(`
package exlcm;
struct path_t
{
    int32_t count;
    point_t points[count];
    other.pose_t origin;
}
`))
	testutil.AssertNoError(t, err)
	s := file.Structs[0]
	testutil.ExpectEq(t, "exlcm.point_t", s.Member("points").Type.Full())
	testutil.ExpectEq(t, "other.pose_t", s.Member("origin").Type.Full())
}

func TestParseMultiDimensionalArray(t *testing.T) {
	file, err := syntax.Parse([]byte(`
package exlcm;
struct grid_t
{
    int32_t rows;
    double cells[rows][3];
}
`))
	testutil.AssertNoError(t, err)
	cells := file.Structs[0].Member("cells")
	testutil.ExpectEq(t, 2, len(cells.Dimensions))
	testutil.ExpectEq(t, schema.DimRuntime, cells.Dimensions[0].Mode)
	testutil.ExpectEq(t, schema.DimFixed, cells.Dimensions[1].Mode)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{
			name: "UnexpectedChar",
			src:  "package exlcm; struct a_t { int8_t %x; }",
			code: "E1001",
		},
		{
			name: "UnterminatedComment",
			src:  "package exlcm; /* never closed",
			code: "E1002",
		},
		{
			name: "MissingSemicolon",
			src:  "package exlcm; struct a_t { int8_t x }",
			code: "E2001",
		},
		{
			name: "NotADeclaration",
			src:  "typedef exlcm;",
			code: "E2002",
		},
		{
			name: "DuplicateMember",
			src:  "package exlcm; struct a_t { int8_t x; double x; }",
			code: "E3001",
		},
		{
			name: "SizeFieldDeclaredLater",
			src:  "package exlcm; struct a_t { double v[n]; int32_t n; }",
			code: "E3002",
		},
		{
			name: "SizeFieldNotInteger",
			src:  "package exlcm; struct a_t { double n; double v[n]; }",
			code: "E3003",
		},
		{
			name: "SizeFieldIsArray",
			src:  "package exlcm; struct a_t { int32_t n[2]; double v[n]; }",
			code: "E3004",
		},
		{
			name: "NegativeFixedDimension",
			src:  "package exlcm; struct a_t { double v[-1]; }",
			code: "E3005",
		},
		{
			name: "IllegalConstType",
			src:  "package exlcm; struct a_t { const string S = 1; }",
			code: "E3006",
		},
		{
			name: "ConstValueOutOfRange",
			src:  "package exlcm; struct a_t { const int8_t C = 1000; }",
			code: "E3007",
		},
		{
			name: "DuplicateConstant",
			src:  "package exlcm; struct a_t { const int8_t C = 1, C = 2; }",
			code: "E3008",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := syntax.Parse([]byte(test.src))
			testutil.AssertError(t, err)
			testutil.ExpectMatch(t, test.code, err.Error())
		})
	}
}

func TestParseErrorSpan(t *testing.T) {
	_, err := syntax.Parse([]byte("package exlcm;\nstruct a_t {\n    int8_t x;\n    double x;\n}\n"))
	testutil.AssertError(t, err)
	synErr, ok := err.(*syntax.Error)
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, uint32(3001), synErr.Code())
	testutil.ExpectEq(t, 4, synErr.Span().Line)
	testutil.ExpectMatch(t, `^4:12: E3001: `, err.Error())
}
