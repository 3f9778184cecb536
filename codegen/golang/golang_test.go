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
	"testing"

	"github.com/miquelmassot/lcm/codegen"
	"github.com/miquelmassot/lcm/internal/testutil"
	"github.com/miquelmassot/lcm/schema"
	"github.com/miquelmassot/lcm/syntax"
)

func parseModel(t *testing.T, srcs ...string) *schema.TypeModel {
	t.Helper()
	model := schema.NewTypeModel()
	for _, src := range srcs {
		file, err := syntax.Parse([]byte(src))
		testutil.AssertNoError(t, err)
		for _, s := range file.Structs {
			testutil.AssertNoError(t, model.Add(s))
		}
	}
	return model
}

func generate(t *testing.T, model *schema.TypeModel, fullName string, opts ...Option) string {
	t.Helper()
	s, ok := model.Lookup(fullName)
	testutil.ExpectTrue(t, ok)
	backend := NewBackend(append([]Option{WithoutFormat()}, opts...)...)
	content, err := backend.GenerateStruct(model, s)
	testutil.AssertNoError(t, err)
	return string(content)
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"utime":        "Utime",
		"deg_celsius":  "DegCelsius",
		"num_ranges":   "NumRanges",
		"a":            "A",
		"x_":           "X",
		"GRAVITY":      "Gravity",
		"ALPHA_BETA":   "AlphaBeta",
		"already_Up":   "AlreadyUp",
		"n2_heading":   "N2Heading",
		"__leading":    "Leading",
	}
	for in, want := range tests {
		testutil.ExpectEq(t, want, camelCase(in))
	}
}

func TestStripSuffixT(t *testing.T) {
	testutil.ExpectEq(t, "pose", stripSuffixT("pose_t"))
	testutil.ExpectEq(t, "pose", stripSuffixT("pose"))
	// Too short to carry the suffix convention.
	testutil.ExpectEq(t, "_t", stripSuffixT("_t"))
	testutil.ExpectEq(t, "t_t", stripSuffixT("t_t"))
}

func TestNames(t *testing.T) {
	pose := schema.TypeName{Package: "exlcm.nav", Short: "pose_t"}
	testutil.ExpectEq(t, "Pose", typeName(pose))
	testutil.ExpectEq(t, "PoseFingerprint", fingerprintConstName(pose))
	testutil.ExpectEq(t, "PoseMaxSpeed", constName(pose, "MAX_SPEED"))
	testutil.ExpectEq(t, "nav", packageName(pose.Package))
	testutil.ExpectEq(t, "pose.go", fileBaseName(pose))
	testutil.ExpectEq(t, "Pose", goTypeRef(pose, "exlcm.nav"))
	testutil.ExpectEq(t, "nav.Pose", goTypeRef(pose, "exlcm"))
}

func TestPaths(t *testing.T) {
	backend := NewBackend()
	s := &schema.Struct{Name: schema.TypeName{Package: "exlcm.nav", Short: "pose_t"}}
	testutil.ExpectEq(t, "exlcm/nav/pose.go", backend.StructPath(s))
	testutil.ExpectEq(t, "exlcm/nav/lcm_package.go", backend.AggregationPath(s))
}

func TestValidateModel(t *testing.T) {
	backend := NewBackend()

	ok := parseModel(t, `
package exlcm;
struct pose_t { double x; }
struct twist_t { double vx; }
`)
	testutil.ExpectNoError(t, backend.ValidateModel(ok))

	tests := []struct {
		name string
		src  string
	}{
		{
			// point_t and point render the same Go type name.
			name: "TypeNameCollision",
			src: `package exlcm;
struct point_t { double x; }
struct point { double x; }
`,
		},
		{
			// foo_bar and foo__bar render the same field name.
			name: "FieldNameCollision",
			src: `package exlcm;
struct a_t { double foo_bar; double foo__bar; }
`,
		},
		{
			name: "FieldShadowsMethod",
			src: `package exlcm;
struct a_t { int32_t size; }
`,
		},
		{
			name: "ConstantCollision",
			src: `package exlcm;
struct a_t { const int32_t MAX_SPEED = 1, MAX__SPEED = 2; }
`,
		},
		{
			name: "PackageShadowsRuntimeImport",
			src: `package exlcm.lcm;
struct a_t { double x; }
`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			model := parseModel(t, test.src)
			testutil.ExpectError(t, backend.ValidateModel(model))
		})
	}

	noPackage := schema.NewTypeModel()
	testutil.AssertNoError(t, noPackage.Add(
		&schema.Struct{Name: schema.TypeName{Short: "orphan_t"}},
	))
	testutil.ExpectError(t, backend.ValidateModel(noPackage))
}

const temperatureSchema = `
package exlcm;
struct temperature_t
{
    int64_t utime;
    double deg_celsius;
}
`

func TestGenerateStruct(t *testing.T) {
	model := parseModel(t, temperatureSchema)
	fp, err := codegen.NewFingerprinter(model).Fingerprint("exlcm.temperature_t")
	testutil.AssertNoError(t, err)

	got := generate(t, model, "exlcm.temperature_t")
	want := fmt.Sprintf(`// Code generated by lcm-gen. DO NOT EDIT.

package exlcm

import (
	"io"

	"github.com/miquelmassot/lcm"
)

type Temperature struct {
	Utime int64
	DegCelsius float64
}

// TemperatureFingerprint is the structural fingerprint of exlcm.temperature_t. Endpoints
// exchanging this type must agree on it exactly.
const TemperatureFingerprint uint64 = 0x%016x

func (p *Temperature) Fingerprint() uint64 {
	return TemperatureFingerprint
}

func (p *Temperature) Encode(w io.Writer) error {
	if err := lcm.EncodeInt64(w, p.Utime); err != nil {
		return err
	}
	if err := lcm.EncodeFloat64(w, p.DegCelsius); err != nil {
		return err
	}
	return nil
}

func (p *Temperature) Decode(r io.Reader) error {
	if err := lcm.DecodeInt64(r, &p.Utime); err != nil {
		return err
	}
	if err := lcm.DecodeFloat64(r, &p.DegCelsius); err != nil {
		return err
	}
	return nil
}

func (p *Temperature) Size() int {
	size := 0
	size += lcm.SizeInt64
	size += lcm.SizeFloat64
	return size
}
`, fp)
	testutil.ExpectNoDiff(t, want, got)
}

func TestGenerateRuntimeArray(t *testing.T) {
	model := parseModel(t, `
package exlcm;
struct grid_t
{
    int32_t rows;
    double cells[rows][3];
}
`)
	got := generate(t, model, "exlcm.grid_t")
	for _, want := range []string{
		"Cells [][]float64",
		"if int(p.Rows) > len(p.Cells) {",
		"return lcm.ErrArrayTooShort",
		"for _, v0 := range p.Cells[:int(p.Rows)] {",
		"if len(v0) < 3 {",
		"for _, v1 := range v0[:3] {",
		"if p.Rows < 0 {",
		"return lcm.ErrNegativeLength",
		"p.Cells = make([][]float64, int(p.Rows))",
		"p.Cells[i0] = make([]float64, 3)",
		"for _, v0 := range p.Cells[:min(int(p.Rows), len(p.Cells))] {",
		"size += min(3, len(v0)) * lcm.SizeFloat64",
	} {
		testutil.ExpectContains(t, want, got)
	}
}

func TestGenerateFixedBeforeRuntimeArray(t *testing.T) {
	model := parseModel(t, `
package exlcm;
struct bank_t
{
    int32_t num;
    double m[3][num];
}
`)
	got := generate(t, model, "exlcm.bank_t")
	for _, want := range []string{
		"M [3][]float64",
		"for _, v0 := range p.M {",
		"if int(p.Num) > len(v0) {",
		"for i0 := range p.M {",
		"p.M[i0] = make([]float64, int(p.Num))",
		"size += min(int(p.Num), len(v0)) * lcm.SizeFloat64",
	} {
		testutil.ExpectContains(t, want, got)
	}
}

func TestGenerateFullyFixedArray(t *testing.T) {
	model := parseModel(t, `
package exlcm;
struct imu_t
{
    double orientation[4];
    string labels[2];
}
`)
	got := generate(t, model, "exlcm.imu_t")
	for _, want := range []string{
		"Orientation [4]float64",
		"Labels [2]string",
		"size += 4 * lcm.SizeFloat64",
		"for _, v0 := range p.Labels {",
		"size += lcm.SizeString(v0)",
	} {
		testutil.ExpectContains(t, want, got)
	}
	// Fixed axes outside the dynamic region need no length guard.
	testutil.ExpectFalse(t, strings.Contains(got, "ErrArrayTooShort"))
}

func TestGenerateConstants(t *testing.T) {
	model := parseModel(t, `
package exlcm;
struct status_t
{
    const int32_t OK = 0, ERROR = -1;
    const double GRAVITY = 9.81;
    int8_t code;
}
`)
	got := generate(t, model, "exlcm.status_t")
	for _, want := range []string{
		"const StatusOk int32 = 0",
		"const StatusError int32 = -1",
		"const StatusGravity float64 = 9.81",
	} {
		testutil.ExpectContains(t, want, got)
	}
}

func TestGenerateDocComments(t *testing.T) {
	model := parseModel(t, `
package exlcm;

// Timestamped temperature sample.
struct temperature_t
{
    int64_t utime;

    // Degrees Celsius.
    double deg_celsius;
}
`)
	got := generate(t, model, "exlcm.temperature_t")
	testutil.ExpectContains(t, "// Timestamped temperature sample.\ntype Temperature struct {", got)
	testutil.ExpectContains(t, "\t// Degrees Celsius.\n\tDegCelsius float64", got)
}

func TestGenerateStructReference(t *testing.T) {
	model := parseModel(t, `
package exlcm;
struct point_t { double x; double y; }
struct path_t
{
    int32_t count;
    point_t points[count];
}
`)
	got := generate(t, model, "exlcm.path_t")
	for _, want := range []string{
		"Points []Point",
		"if err := v0.Encode(w); err != nil {",
		"p.Points = make([]Point, int(p.Count))",
		"if err := p.Points[i0].Decode(r); err != nil {",
		"size += v0.Size()",
	} {
		testutil.ExpectContains(t, want, got)
	}
}

func TestGenerateCrossPackageReference(t *testing.T) {
	srcs := []string{
		`package exlcm; struct point_t { double x; }`,
		`package nav; struct waypoint_t { exlcm.point_t target; }`,
	}

	model := parseModel(t, srcs...)
	got := generate(t, model, "nav.waypoint_t",
		WithImportPrefix("github.com/example/msgs"))
	testutil.ExpectContains(t, `"github.com/example/msgs/exlcm"`, got)
	testutil.ExpectContains(t, "Target exlcm.Point", got)

	// Without an import prefix the reference cannot be rendered.
	model = parseModel(t, srcs...)
	s, ok := model.Lookup("nav.waypoint_t")
	testutil.ExpectTrue(t, ok)
	_, err := NewBackend(WithoutFormat()).GenerateStruct(model, s)
	testutil.ExpectError(t, err)
}

func TestGenerateFormatted(t *testing.T) {
	model := parseModel(t, temperatureSchema)
	s, ok := model.Lookup("exlcm.temperature_t")
	testutil.ExpectTrue(t, ok)
	content, err := NewBackend().GenerateStruct(model, s)
	testutil.AssertNoError(t, err)

	// gofmt aligns the field declarations.
	testutil.ExpectContains(t, "Utime      int64", string(content))
	testutil.ExpectContains(t, "DegCelsius float64", string(content))
}

func TestGenerateRuntimeImportOnlyWhenUsed(t *testing.T) {
	// A struct whose members are all struct-valued scalars never calls
	// the runtime package directly.
	model := parseModel(t, `
package exlcm;
struct point_t { double x; }
struct wrapper_t { point_t inner; }
`)
	got := generate(t, model, "exlcm.wrapper_t")
	testutil.ExpectFalse(t, strings.Contains(got, DefaultRuntimeImport))
	testutil.ExpectContains(t, `"io"`, got)
}

func TestAggregationEntry(t *testing.T) {
	model := parseModel(t, temperatureSchema)
	s, ok := model.Lookup("exlcm.temperature_t")
	testutil.ExpectTrue(t, ok)
	backend := NewBackend()

	header, err := backend.AggregationEntry(model, s, true)
	testutil.AssertNoError(t, err)
	testutil.ExpectNoDiff(t, `// Code generated by lcm-gen. DO NOT EDIT.

package exlcm

import (
	"github.com/miquelmassot/lcm"
)

func init() {
	lcm.Register("exlcm.temperature_t", TemperatureFingerprint, func() lcm.Message { return new(Temperature) })
}
`, string(header))

	entry, err := backend.AggregationEntry(model, s, false)
	testutil.AssertNoError(t, err)
	testutil.ExpectNoDiff(t, `
func init() {
	lcm.Register("exlcm.temperature_t", TemperatureFingerprint, func() lcm.Message { return new(Temperature) })
}
`, string(entry))
}
