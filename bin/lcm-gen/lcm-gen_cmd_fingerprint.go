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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/miquelmassot/lcm/codegen"
)

// cmdFingerprint prints the computed fingerprint of every struct in the
// given schemas, for debugging version mismatches between endpoints.
type cmdFingerprint struct{}

func (*cmdFingerprint) help() *commandHelp {
	return &commandHelp{
		usage:   "fingerprint SCHEMA...",
		summary: "Print the fingerprint of every struct in the given schemas",
	}
}

func (*cmdFingerprint) flags(flags *pflag.FlagSet) {}

func (*cmdFingerprint) run(ctx context.Context, argv []string) int {
	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "No schema files given")
		return 1
	}
	model, err := loadModel(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fp := codegen.NewFingerprinter(model)
	for _, s := range model.Structs() {
		v, err := fp.Fingerprint(s.Name.Full())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("0x%016x  %s\n", v, s.Name.Full())
	}
	return 0
}
