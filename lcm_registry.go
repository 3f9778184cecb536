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
	"fmt"
	"sort"
)

// A MessageType describes one registered generated type. The per-package
// aggregation files emitted by lcm-gen register every generated struct
// here from init functions, so all types in a binary are discoverable
// from one place.
type MessageType struct {
	// SchemaName is the fully-qualified schema name, e.g. "exlcm.path_t".
	SchemaName string

	Fingerprint uint64

	// New returns a zero value of the generated struct.
	New func() Message
}

var (
	typesByName        = map[string]*MessageType{}
	typesByFingerprint = map[uint64]*MessageType{}
)

// Register records a generated message type. It is called from generated
// aggregation files during package initialization; registering the same
// schema name twice with a different fingerprint panics, since it means
// two incompatible versions of one type are linked into the binary.
func Register(schemaName string, fingerprint uint64, factory func() Message) *MessageType {
	if prev, ok := typesByName[schemaName]; ok {
		if prev.Fingerprint != fingerprint {
			panic(fmt.Sprintf(
				"lcm: type %q registered twice with fingerprints 0x%016x and 0x%016x",
				schemaName, prev.Fingerprint, fingerprint,
			))
		}
		return prev
	}
	mt := &MessageType{
		SchemaName:  schemaName,
		Fingerprint: fingerprint,
		New:         factory,
	}
	typesByName[schemaName] = mt
	typesByFingerprint[fingerprint] = mt
	return mt
}

func LookupType(schemaName string) (*MessageType, bool) {
	mt, ok := typesByName[schemaName]
	return mt, ok
}

func LookupFingerprint(fingerprint uint64) (*MessageType, bool) {
	mt, ok := typesByFingerprint[fingerprint]
	return mt, ok
}

// RegisteredTypes returns the schema names of all registered types,
// sorted.
func RegisteredTypes() []string {
	names := make([]string, 0, len(typesByName))
	for name := range typesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
