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

func DecodeBool(r io.Reader, v *bool) error {
	var raw int8
	if err := DecodeInt8(r, &raw); err != nil {
		return err
	}
	switch raw {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return ErrInvalidBool
	}
	return nil
}

func DecodeByte(r io.Reader, v *byte) error {
	var buf [SizeByte]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = buf[0]
	return nil
}

func DecodeInt8(r io.Reader, v *int8) error {
	var buf [SizeInt8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = int8(buf[0])
	return nil
}

func DecodeInt16(r io.Reader, v *int16) error {
	var buf [SizeInt16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = int16(binary.BigEndian.Uint16(buf[:]))
	return nil
}

func DecodeInt32(r io.Reader, v *int32) error {
	var buf [SizeInt32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = int32(binary.BigEndian.Uint32(buf[:]))
	return nil
}

func DecodeInt64(r io.Reader, v *int64) error {
	var buf [SizeInt64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = int64(binary.BigEndian.Uint64(buf[:]))
	return nil
}

func DecodeFloat32(r io.Reader, v *float32) error {
	var buf [SizeFloat32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = math.Float32frombits(binary.BigEndian.Uint32(buf[:]))
	return nil
}

func DecodeFloat64(r io.Reader, v *float64) error {
	var buf [SizeFloat64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = math.Float64frombits(binary.BigEndian.Uint64(buf[:]))
	return nil
}

// DecodeString reads a 32-bit length (counting the NUL terminator), the
// string bytes, and the terminator itself.
func DecodeString(r io.Reader, v *string) error {
	var n int32
	if err := DecodeInt32(r, &n); err != nil {
		return err
	}
	if n < 1 {
		return ErrNegativeLength
	}
	buf := make([]byte, int(n))
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	if buf[len(buf)-1] != 0 {
		return ErrMissingTerminator
	}
	*v = string(buf[:len(buf)-1])
	return nil
}
