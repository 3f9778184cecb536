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
	"strings"

	"github.com/miquelmassot/lcm/schema"
)

// goPrimitive maps LCM primitive type names to Go types.
var goPrimitive = map[string]string{
	schema.Boolean: "bool",
	schema.Byte:    "byte",
	schema.Int8:    "int8",
	schema.Int16:   "int16",
	schema.Int32:   "int32",
	schema.Int64:   "int64",
	schema.Float:   "float32",
	schema.Double:  "float64",
	schema.String:  "string",
}

// codecSuffix maps LCM primitive type names to the suffix of the
// corresponding Encode/Decode/Size helpers in the runtime package.
var codecSuffix = map[string]string{
	schema.Boolean: "Bool",
	schema.Byte:    "Byte",
	schema.Int8:    "Int8",
	schema.Int16:   "Int16",
	schema.Int32:   "Int32",
	schema.Int64:   "Int64",
	schema.Float:   "Float32",
	schema.Double:  "Float64",
	schema.String:  "String",
}

// stripSuffixT removes the "_t" suffix, a C naming convention carried
// by most LCM schemas.
func stripSuffixT(name string) string {
	if len(name) > 2 && strings.HasSuffix(name, "_t") {
		return name[:len(name)-2]
	}
	return name
}

// camelCase renders a snake_case schema identifier in capitalized-word
// form: every underscore is dropped and capitalizes the next character,
// all other characters are lowercased. Distinct schema identifiers can
// collide after this transform; the backend rejects such schemas during
// validation rather than silently overwriting one declaration with
// another.
func camelCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	capitalize := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' {
			capitalize = true
			continue
		}
		if capitalize {
			capitalize = false
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
		} else if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// typeName renders the Go type name for a schema struct type.
func typeName(t schema.TypeName) string {
	return camelCase(stripSuffixT(t.Short))
}

// fieldName renders the exported Go field name for a schema member.
func fieldName(name string) string {
	return camelCase(name)
}

// constName renders the package-level Go name for a struct constant.
func constName(t schema.TypeName, c string) string {
	return typeName(t) + camelCase(c)
}

// fingerprintConstName renders the name of the generated fingerprint
// constant.
func fingerprintConstName(t schema.TypeName) string {
	return typeName(t) + "Fingerprint"
}

// packageDirs maps a dotted schema package to directory path segments,
// one per component.
func packageDirs(pkg string) []string {
	return strings.Split(pkg, ".")
}

// packageName is the Go package name for a schema package: the last
// dotted component.
func packageName(pkg string) string {
	dirs := packageDirs(pkg)
	return dirs[len(dirs)-1]
}

// fileBaseName is the generated file name for a struct, the short name
// with the "_t" convention stripped.
func fileBaseName(t schema.TypeName) string {
	return stripSuffixT(t.Short) + ".go"
}

// goTypeRef renders the reference to a struct type from within pkg:
// unqualified for the same package, package-qualified otherwise.
func goTypeRef(t schema.TypeName, fromPkg string) string {
	if t.Package == fromPkg {
		return typeName(t)
	}
	return packageName(t.Package) + "." + typeName(t)
}

// reservedFieldNames are method names on every generated struct; a
// member whose transformed name matches one would not compile.
var reservedFieldNames = map[string]bool{
	"Encode":      true,
	"Decode":      true,
	"Size":        true,
	"Fingerprint": true,
}
