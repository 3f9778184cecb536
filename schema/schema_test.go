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

package schema_test

import (
	"testing"

	"github.com/miquelmassot/lcm/internal/testutil"
	"github.com/miquelmassot/lcm/schema"
)

func TestMakeTypeName(t *testing.T) {
	qualified := schema.MakeTypeName("exlcm.nav.pose_t")
	testutil.ExpectEq(t, "exlcm.nav", qualified.Package)
	testutil.ExpectEq(t, "pose_t", qualified.Short)
	testutil.ExpectEq(t, "exlcm.nav.pose_t", qualified.Full())

	bare := schema.MakeTypeName("pose_t")
	testutil.ExpectEq(t, "", bare.Package)
	testutil.ExpectEq(t, "pose_t", bare.Full())
}

func TestTypeNameIsPrimitive(t *testing.T) {
	testutil.ExpectTrue(t, schema.MakeTypeName("int32_t").IsPrimitive())
	testutil.ExpectTrue(t, schema.MakeTypeName("string").IsPrimitive())
	testutil.ExpectFalse(t, schema.MakeTypeName("pose_t").IsPrimitive())

	// A qualified name is never primitive, even with a primitive short
	// name.
	testutil.ExpectFalse(t, schema.MakeTypeName("exlcm.string").IsPrimitive())
}

func TestPrimitiveWireSize(t *testing.T) {
	for name, want := range map[string]int{
		schema.Boolean: 1,
		schema.Byte:    1,
		schema.Int8:    1,
		schema.Int16:   2,
		schema.Int32:   4,
		schema.Int64:   8,
		schema.Float:   4,
		schema.Double:  8,
	} {
		got, ok := schema.PrimitiveWireSize(name)
		testutil.ExpectTrue(t, ok)
		testutil.ExpectEq(t, want, got)
	}

	_, ok := schema.PrimitiveWireSize(schema.String)
	testutil.ExpectFalse(t, ok)
	_, ok = schema.PrimitiveWireSize("pose_t")
	testutil.ExpectFalse(t, ok)
}

func TestIsInteger(t *testing.T) {
	testutil.ExpectTrue(t, schema.IsInteger(schema.Byte))
	testutil.ExpectTrue(t, schema.IsInteger(schema.Int64))
	testutil.ExpectFalse(t, schema.IsInteger(schema.Boolean))
	testutil.ExpectFalse(t, schema.IsInteger(schema.Double))
	testutil.ExpectFalse(t, schema.IsInteger(schema.String))
}

func TestStructMember(t *testing.T) {
	s := &schema.Struct{
		Name: schema.TypeName{Package: "exlcm", Short: "pose_t"},
		Members: []schema.Member{
			{Name: "utime", Type: schema.MakeTypeName("int64_t")},
			{Name: "x", Type: schema.MakeTypeName("double")},
		},
	}
	m := s.Member("x")
	if m == nil {
		t.Fatal("Expected member \"x\", got: nil")
	}
	testutil.ExpectEq(t, "double", m.Type.Short)
	testutil.ExpectTrue(t, s.Member("absent") == nil)
}

func TestTypeModel(t *testing.T) {
	model := schema.NewTypeModel()
	pose := &schema.Struct{Name: schema.TypeName{Package: "exlcm", Short: "pose_t"}}
	twist := &schema.Struct{Name: schema.TypeName{Package: "exlcm", Short: "twist_t"}}
	testutil.AssertNoError(t, model.Add(pose))
	testutil.AssertNoError(t, model.Add(twist))

	// Duplicate qualified names are rejected.
	testutil.AssertError(t, model.Add(
		&schema.Struct{Name: schema.TypeName{Package: "exlcm", Short: "pose_t"}},
	))

	// Same short name in another package is fine.
	testutil.AssertNoError(t, model.Add(
		&schema.Struct{Name: schema.TypeName{Package: "other", Short: "pose_t"}},
	))

	structs := model.Structs()
	testutil.ExpectEq(t, 3, len(structs))
	testutil.ExpectEq(t, pose, structs[0])

	got, ok := model.Lookup("exlcm.twist_t")
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, twist, got)
	_, ok = model.Lookup("exlcm.absent_t")
	testutil.ExpectFalse(t, ok)
}
