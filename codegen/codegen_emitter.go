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
	"bytes"
	"fmt"
	"strings"
)

// An Emitter accumulates generated source text line by line. Indent
// levels are rendered as tabs; emitted lines are the unit backends work
// in, mirroring the recursive structure of the code they generate.
type Emitter struct {
	buf  bytes.Buffer
	open bool
}

// Emit writes one complete line at the given indent level.
func (e *Emitter) Emit(indent int, format string, args ...any) {
	e.Start(indent, format, args...)
	e.End("")
}

// Start begins a line at the given indent level without terminating it.
func (e *Emitter) Start(indent int, format string, args ...any) {
	e.buf.WriteString(strings.Repeat("\t", indent))
	fmt.Fprintf(&e.buf, format, args...)
	e.open = true
}

// Continue appends to the currently open line.
func (e *Emitter) Continue(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

// End appends to the currently open line and terminates it.
func (e *Emitter) End(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
	e.open = false
}

// Blank emits an empty line.
func (e *Emitter) Blank() {
	e.buf.WriteByte('\n')
}

func (e *Emitter) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *Emitter) String() string {
	return e.buf.String()
}
