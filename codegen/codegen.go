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

// Package codegen holds the language-independent half of the code
// generator: the fingerprint engine, the array shape planner, the line
// emitter, and the orchestrator that drives a backend over a type model.
package codegen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/miquelmassot/lcm/schema"
)

// A Backend generates source for one target language. Backends are
// selected at run configuration time and share no mutable state; paths
// returned by StructPath and AggregationPath are relative to the output
// root.
type Backend interface {
	Name() string

	// StructPath is the output file for one struct's generated source.
	StructPath(s *schema.Struct) string

	// AggregationPath is the shared per-package file that re-exports or
	// registers every struct generated into that package. Structs of one
	// package must agree on the path.
	AggregationPath(s *schema.Struct) string

	// GenerateStruct renders the complete source file for one struct.
	GenerateStruct(model *schema.TypeModel, s *schema.Struct) ([]byte, error)

	// AggregationEntry renders the text appended to the package
	// aggregation file for one struct. header is true when the entry is
	// the first written to the file in this run and must include the
	// file preamble.
	AggregationEntry(model *schema.TypeModel, s *schema.Struct, header bool) ([]byte, error)
}

// A ModelValidator is implemented by backends that need a whole-model
// check before any file is written, such as detecting schema identifiers
// that collide after name transformation.
type ModelValidator interface {
	ValidateModel(model *schema.TypeModel) error
}

type Option interface {
	apply(*Options)
}

type option func(*Options)

func (f option) apply(opts *Options) { f(opts) }

type Options struct {
	outputRoot string
	report     io.Writer
	upToDate   func(path string) bool
}

// WithOutputRoot sets the directory that generated paths are resolved
// against. The default is the current directory.
func WithOutputRoot(root string) Option {
	return option(func(opts *Options) {
		opts.outputRoot = root
	})
}

// WithRerunReport enables the build-system diagnostic stream: one
// rebuild-trigger line is written to w for every file this run writes
// or removes.
func WithRerunReport(w io.Writer) Option {
	return option(func(opts *Options) {
		opts.report = w
	})
}

// WithFreshnessCheck installs the staleness collaborator. When upToDate
// reports true for a struct's output path, that file is left untouched.
// Aggregation files are always rebuilt.
func WithFreshnessCheck(upToDate func(path string) bool) Option {
	return option(func(opts *Options) {
		opts.upToDate = upToDate
	})
}

func NewOptions(opts ...Option) *Options {
	options := &Options{
		outputRoot: ".",
	}
	for _, opt := range opts {
		opt.apply(options)
	}
	return options
}

func (opts *Options) trigger(path string) {
	if opts.report != nil {
		fmt.Fprintf(opts.report, "rerun-if-changed=%s\n", path)
	}
}

// Generate runs one backend over the whole type model. Aggregation
// files are rebuilt from scratch on every run: a clear pass removes
// them all, then a populate pass appends one entry per struct, so
// entries for structs removed from the schema never accumulate. Struct
// files are written one at a time; a failure aborts the run without
// disturbing files already completed.
func Generate(model *schema.TypeModel, backend Backend, opts ...Option) error {
	return NewOptions(opts...).Generate(model, backend)
}

func (opts *Options) Generate(model *schema.TypeModel, backend Backend) error {
	if v, ok := backend.(ModelValidator); ok {
		if err := v.ValidateModel(model); err != nil {
			return err
		}
	}

	// Clear pass: remove every aggregation file before repopulating.
	cleared := map[string]bool{}
	for _, s := range model.Structs() {
		path := filepath.Join(opts.outputRoot, backend.AggregationPath(s))
		if cleared[path] {
			continue
		}
		cleared[path] = true
		if err := os.Remove(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%s: %w", path, err)
			}
			continue
		}
		opts.trigger(path)
	}

	// Populate pass.
	written := map[string]bool{}
	for _, s := range model.Structs() {
		aggPath := filepath.Join(opts.outputRoot, backend.AggregationPath(s))
		if err := os.MkdirAll(filepath.Dir(aggPath), 0o755); err != nil {
			return fmt.Errorf("%s: %w", aggPath, err)
		}
		entry, err := backend.AggregationEntry(model, s, !written[aggPath])
		if err != nil {
			return err
		}
		if err := appendFile(aggPath, entry); err != nil {
			return fmt.Errorf("%s: %w", aggPath, err)
		}
		if !written[aggPath] {
			written[aggPath] = true
			opts.trigger(aggPath)
		}

		outPath := filepath.Join(opts.outputRoot, backend.StructPath(s))
		if opts.upToDate != nil && opts.upToDate(outPath) {
			continue
		}
		content, err := backend.GenerateStruct(model, s)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, content, 0o644); err != nil {
			return fmt.Errorf("%s: %w", outPath, err)
		}
		opts.trigger(outPath)
	}
	return nil
}

func appendFile(path string, content []byte) error {
	fp, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := fp.Write(content)
	closeErr := fp.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}
