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

package syntax

import (
	"fmt"
)

type Error struct {
	code    uint32
	message string
	span    Span
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("%s: E%d: %s", err.span, err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Span() Span {
	return err.span
}

func errUnexpectedChar(c byte, span Span) error {
	return &Error{
		code:    1001,
		message: fmt.Sprintf("Unexpected character %q", rune(c)),
		span:    span,
	}
}

func errUnterminatedComment(span Span) error {
	return &Error{
		code:    1002,
		message: "Unterminated block comment",
		span:    span,
	}
}

func errUnexpectedToken(want string, got token) error {
	gotDesc := got.kind.String()
	if got.kind == T_IDENT || got.kind == T_NUMBER {
		gotDesc = fmt.Sprintf("%q", got.text)
	}
	return &Error{
		code:    2001,
		message: fmt.Sprintf("Expected %s, got %s", want, gotDesc),
		span:    got.span,
	}
}

func errExpectedDeclaration(got token) error {
	return &Error{
		code:    2002,
		message: fmt.Sprintf("Expected 'package' or 'struct', got %q", got.text),
		span:    got.span,
	}
}

func errDuplicateMember(name string, span Span) error {
	return &Error{
		code:    3001,
		message: fmt.Sprintf("Duplicate member name '%s'", name),
		span:    span,
	}
}

func errSizeFieldNotFound(name, arrayName string, span Span) error {
	return &Error{
		code: 3002,
		message: fmt.Sprintf(
			"Array '%s' sized by '%s', which is not declared earlier in the struct",
			arrayName, name,
		),
		span: span,
	}
}

func errSizeFieldNotInteger(name, typeName string, span Span) error {
	return &Error{
		code: 3003,
		message: fmt.Sprintf(
			"Array size field '%s' must be an integer primitive, not '%s'",
			name, typeName,
		),
		span: span,
	}
}

func errSizeFieldIsArray(name string, span Span) error {
	return &Error{
		code:    3004,
		message: fmt.Sprintf("Array size field '%s' must be a scalar", name),
		span:    span,
	}
}

func errInvalidFixedDimension(size string, span Span) error {
	return &Error{
		code: 3005,
		message: fmt.Sprintf(
			"Fixed array dimension [%s] must be a non-negative integer literal",
			size,
		),
		span: span,
	}
}

func errIllegalConstType(typeName string, span Span) error {
	return &Error{
		code:    3006,
		message: fmt.Sprintf("Type '%s' cannot be used for a constant", typeName),
		span:    span,
	}
}

func errInvalidConstValue(name, typeName, value string, span Span) error {
	return &Error{
		code: 3007,
		message: fmt.Sprintf(
			"Constant '%s' has value '%s', which is not valid for type '%s'",
			name, value, typeName,
		),
		span: span,
	}
}

func errDuplicateConstant(name string, span Span) error {
	return &Error{
		code:    3008,
		message: fmt.Sprintf("Duplicate constant name '%s'", name),
		span:    span,
	}
}
