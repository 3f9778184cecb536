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

package schema

// The LCM primitive types. Every fixed-width primitive maps to the same
// byte width and byte order in every language binding; "string" is
// variable-width.
const (
	Boolean = "boolean"
	Byte    = "byte"
	Int8    = "int8_t"
	Int16   = "int16_t"
	Int32   = "int32_t"
	Int64   = "int64_t"
	Float   = "float"
	Double  = "double"
	String  = "string"
)

var primitiveWireSize = map[string]int{
	Boolean: 1,
	Byte:    1,
	Int8:    1,
	Int16:   2,
	Int32:   4,
	Int64:   8,
	Float:   4,
	Double:  8,
}

// IsPrimitive reports whether name is an LCM primitive type name.
func IsPrimitive(name string) bool {
	if name == String {
		return true
	}
	_, ok := primitiveWireSize[name]
	return ok
}

// IsInteger reports whether name is an integer primitive, and therefore
// usable as a runtime array-length field.
func IsInteger(name string) bool {
	switch name {
	case Byte, Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// IsLegalConstType reports whether name may type a constant declaration.
func IsLegalConstType(name string) bool {
	switch name {
	case Int8, Int16, Int32, Int64, Float, Double:
		return true
	}
	return false
}

// PrimitiveWireSize returns the encoded byte width of a fixed-width
// primitive. It reports false for "string", whose width depends on the
// value, and for non-primitive names.
func PrimitiveWireSize(name string) (int, bool) {
	n, ok := primitiveWireSize[name]
	return n, ok
}
