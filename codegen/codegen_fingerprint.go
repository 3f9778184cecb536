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
	"fmt"

	"github.com/miquelmassot/lcm/schema"
)

// fingerprintSeed is the base-hash seed shared by every LCM language
// binding. Two independently compiled endpoints agree on a type's
// fingerprint only because every binding mixes the same seed with the
// same declaration bytes in the same order.
const fingerprintSeed = int64(0x12345678)

// hashUpdate mixes one byte into the accumulator. The shift is
// arithmetic, matching the signed 64-bit arithmetic of the reference
// implementation.
func hashUpdate(v int64, c byte) int64 {
	return ((v << 8) ^ (v >> 55)) + int64(c)
}

// hashString mixes a length-prefixed string into the accumulator.
func hashString(v int64, s string) int64 {
	v = hashUpdate(v, byte(len(s)))
	for i := 0; i < len(s); i++ {
		v = hashUpdate(v, s[i])
	}
	return v
}

// baseHash computes the hash of a struct's own syntactic shape: member
// names, primitive type names, and dimension modes and sizes. Type names
// of struct-valued members are deliberately not mixed in, so renaming a
// referenced type does not change fingerprints; its content contributes
// through recursion instead. Comments and constants never contribute.
func baseHash(s *schema.Struct) int64 {
	v := fingerprintSeed
	for _, m := range s.Members {
		v = hashString(v, m.Name)
		if m.Type.IsPrimitive() {
			v = hashString(v, m.Type.Short)
		}
		v = hashUpdate(v, byte(len(m.Dimensions)))
		for _, d := range m.Dimensions {
			v = hashUpdate(v, byte(d.Mode))
			v = hashString(v, d.Size)
		}
	}
	return v
}

// A Fingerprinter computes the published 64-bit fingerprint of structs
// in a type model.
type Fingerprinter struct {
	model *schema.TypeModel
}

func NewFingerprinter(model *schema.TypeModel) *Fingerprinter {
	return &Fingerprinter{model: model}
}

// Fingerprint returns the published fingerprint of the named struct:
// the recursively mixed hash with the rotate transform applied once at
// the top level.
func (f *Fingerprinter) Fingerprint(fullName string) (uint64, error) {
	h, err := f.mixed(fullName, map[string]bool{})
	if err != nil {
		return 0, err
	}
	u := uint64(h)
	return (u << 1) + ((u >> 63) & 1), nil
}

// mixed returns the pre-rotate hash: the struct's base hash plus, with
// wraparound, the mixed hash of every distinct struct type it references
// (first occurrence only). A type whose computation is already in
// progress contributes zero, which terminates self-referential and
// mutually recursive type graphs.
func (f *Fingerprinter) mixed(fullName string, visiting map[string]bool) (int64, error) {
	if visiting[fullName] {
		return 0, nil
	}
	s, ok := f.model.Lookup(fullName)
	if !ok {
		return 0, fmt.Errorf("codegen: unknown type %q", fullName)
	}
	visiting[fullName] = true
	defer delete(visiting, fullName)

	v := baseHash(s)
	seen := map[string]bool{}
	for _, m := range s.Members {
		if m.Type.IsPrimitive() {
			continue
		}
		ref := m.Type.Full()
		if seen[ref] {
			continue
		}
		seen[ref] = true
		sub, err := f.mixed(ref, visiting)
		if err != nil {
			return 0, err
		}
		v += sub
	}
	return v, nil
}
