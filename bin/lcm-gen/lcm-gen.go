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
	stdflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/miquelmassot/lcm/schema"
	"github.com/miquelmassot/lcm/syntax"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
}

func main() {
	ctx := context.Background()

	rootCmd := &cobra.Command{
		Use: "lcm-gen [options] COMMAND",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, rootCmd.UsageString())
		os.Exit(1)
		return nil
	}

	commands := []command{
		&cmdGenerate{},
		&cmdFingerprint{},
	}
	for _, cmd := range commands {
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			RunE: func(_ *cobra.Command, args []string) error {
				os.Exit(cmd.run(ctx, args))
				return nil
			},
		}
		rootCmd.AddCommand(cobraCmd)
		cmd.flags(cobraCmd.Flags())
	}

	rootCmd.Flags().AddGoFlagSet(stdflag.CommandLine)
	rootCmd.ParseFlags(nil)
	if _, err := rootCmd.ExecuteC(); err != nil {
		os.Exit(1)
	}
}

// loadModel parses every schema file into one type model.
func loadModel(paths []string) (*schema.TypeModel, error) {
	model := schema.NewTypeModel()
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		file, err := syntax.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, s := range file.Structs {
			if err := model.Add(s); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return model, nil
}
