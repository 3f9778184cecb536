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

// Package lcm implements the runtime codec contract shared by all code
// generated by lcm-gen: big-endian primitive encoding, the Message
// interface exposed by every generated struct, and fingerprint-framed
// message encoding for channel transport.
package lcm

import (
	"bytes"
	"errors"
	"io"
)

var (
	// ErrArrayTooShort reports that a runtime array-length field declared
	// more elements than the container actually holds.
	ErrArrayTooShort = errors.New("lcm: declared array length exceeds available elements")

	// ErrNegativeLength reports a negative array or string length read
	// while decoding.
	ErrNegativeLength = errors.New("lcm: negative array or string length")

	ErrInvalidBool         = errors.New("lcm: booleans must be encoded as 0 or 1")
	ErrMissingTerminator   = errors.New("lcm: expected NUL terminator after string")
	ErrFingerprintMismatch = errors.New("lcm: fingerprint does not match message type")
)

// A Message is a struct type generated from an LCM schema. The encoded
// form is byte-for-byte compatible with every other LCM language binding
// built from the same schema.
type Message interface {
	// Fingerprint returns the 64-bit structural hash of the schema type,
	// used to detect schema-version mismatches between endpoints.
	Fingerprint() uint64

	// Encode writes the wire encoding of the message to w. The number of
	// bytes written equals Size() for every legal message value.
	Encode(w io.Writer) error

	// Decode reads the wire encoding of the message from r, replacing
	// the receiver's contents.
	Decode(r io.Reader) error

	// Size returns the exact encoded byte length without performing I/O.
	Size() int
}

// EncodeMessage encodes msg with its fingerprint prepended, the framing
// used for messages published on an LCM channel.
func EncodeMessage(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(SizeInt64 + msg.Size())
	if err := EncodeInt64(&buf, int64(msg.Fingerprint())); err != nil {
		return nil, err
	}
	if err := msg.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeMessage verifies the fingerprint at the start of the stream and
// decodes the remainder into msg.
func DecodeMessage(r io.Reader, msg Message) error {
	var fingerprint int64
	if err := DecodeInt64(r, &fingerprint); err != nil {
		return err
	}
	if uint64(fingerprint) != msg.Fingerprint() {
		return ErrFingerprintMismatch
	}
	return msg.Decode(r)
}
