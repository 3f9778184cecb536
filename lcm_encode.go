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

package lcm

import (
	"encoding/binary"
	"io"
	"math"
)

// Encoded sizes of the fixed-width LCM primitives, in bytes.
const (
	SizeBool    = 1
	SizeByte    = 1
	SizeInt8    = 1
	SizeInt16   = 2
	SizeInt32   = 4
	SizeInt64   = 8
	SizeFloat32 = 4
	SizeFloat64 = 8
)

// SizeString returns the encoded size of an LCM string: a 32-bit length
// (which counts the NUL terminator), the bytes, and the terminator.
func SizeString(s string) int {
	return SizeInt32 + len(s) + 1
}

func EncodeBool(w io.Writer, v bool) error {
	if v {
		return EncodeInt8(w, 1)
	}
	return EncodeInt8(w, 0)
}

func EncodeByte(w io.Writer, v byte) error {
	_, err := w.Write([]byte{v})
	return err
}

func EncodeInt8(w io.Writer, v int8) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func EncodeInt16(w io.Writer, v int16) error {
	var buf [SizeInt16]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

func EncodeInt32(w io.Writer, v int32) error {
	var buf [SizeInt32]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func EncodeInt64(w io.Writer, v int64) error {
	var buf [SizeInt64]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func EncodeFloat32(w io.Writer, v float32) error {
	var buf [SizeFloat32]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
	_, err := w.Write(buf[:])
	return err
}

func EncodeFloat64(w io.Writer, v float64) error {
	var buf [SizeFloat64]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}

// EncodeString writes the 32-bit length (including the NUL terminator),
// the string bytes, and a terminating NUL.
func EncodeString(w io.Writer, v string) error {
	if err := EncodeInt32(w, int32(len(v))+1); err != nil {
		return err
	}
	if _, err := io.WriteString(w, v); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}
