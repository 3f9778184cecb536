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
	"time"

	"github.com/spf13/pflag"

	"github.com/miquelmassot/lcm/codegen"
	"github.com/miquelmassot/lcm/codegen/golang"
)

type cmdGenerate struct {
	flagSet *pflag.FlagSet

	outDir        string
	importPrefix  string
	runtimeImport string
	rerunReport   bool
	lazy          bool
	configPath    string
}

func (*cmdGenerate) help() *commandHelp {
	return &commandHelp{
		usage:   "generate [options] SCHEMA...",
		summary: "Generate Go source from LCM schema files",
	}
}

func (cmd *cmdGenerate) flags(flags *pflag.FlagSet) {
	cmd.flagSet = flags
	flags.StringVarP(&cmd.outDir, "output", "o", "",
		"Directory to generate into (default: current directory)")
	flags.StringVar(&cmd.importPrefix, "import-prefix", "",
		"Go import path that generated packages live under")
	flags.StringVar(&cmd.runtimeImport, "runtime-import", golang.DefaultRuntimeImport,
		"Import path of the runtime codec package")
	flags.BoolVar(&cmd.rerunReport, "rerun-report", false,
		"Print a rerun-if-changed line for every file written or removed")
	flags.BoolVar(&cmd.lazy, "lazy", false,
		"Skip struct files already newer than every schema file")
	flags.StringVar(&cmd.configPath, "config", "",
		"YAML file providing defaults for the options above")
}

func (cmd *cmdGenerate) run(ctx context.Context, argv []string) int {
	if cmd.configPath != "" {
		cfg, err := loadConfig(cmd.configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if !cmd.flagSet.Changed("output") && cfg.Output != "" {
			cmd.outDir = cfg.Output
		}
		if !cmd.flagSet.Changed("import-prefix") && cfg.ImportPrefix != "" {
			cmd.importPrefix = cfg.ImportPrefix
		}
		if !cmd.flagSet.Changed("runtime-import") && cfg.RuntimeImport != "" {
			cmd.runtimeImport = cfg.RuntimeImport
		}
		if !cmd.flagSet.Changed("rerun-report") {
			cmd.rerunReport = cfg.RerunReport
		}
		if !cmd.flagSet.Changed("lazy") {
			cmd.lazy = cfg.Lazy
		}
	}

	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "No schema files given")
		return 1
	}

	model, err := loadModel(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	backend := golang.NewBackend(
		golang.WithImportPrefix(cmd.importPrefix),
		golang.WithRuntimeImport(cmd.runtimeImport),
	)
	var opts []codegen.Option
	if cmd.outDir != "" {
		opts = append(opts, codegen.WithOutputRoot(cmd.outDir))
	}
	if cmd.rerunReport {
		opts = append(opts, codegen.WithRerunReport(os.Stdout))
	}
	if cmd.lazy {
		newest, err := newestModTime(argv)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		opts = append(opts, codegen.WithFreshnessCheck(func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.ModTime().After(newest)
		}))
	}

	if err := codegen.Generate(model, backend, opts...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// newestModTime is the most recent modification time of the given
// schema files, the threshold for --lazy freshness.
func newestModTime(paths []string) (time.Time, error) {
	var newest time.Time
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return time.Time{}, err
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	return newest, nil
}
