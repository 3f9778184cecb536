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

// Package golang is the code generation backend targeting Go. Generated
// structs implement the runtime lcm.Message interface; each schema
// package becomes a Go package directory with one source file per
// struct plus an aggregation file registering every struct with the
// runtime type registry.
package golang

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/miquelmassot/lcm/codegen"
	"github.com/miquelmassot/lcm/schema"
)

// DefaultRuntimeImport is the import path of the runtime codec package
// used by generated code.
const DefaultRuntimeImport = "github.com/miquelmassot/lcm"

// aggregationFile is the per-package file that registers every
// generated struct in the package.
const aggregationFile = "lcm_package.go"

const generatedMarker = "// Code generated by lcm-gen. DO NOT EDIT."

type Backend struct {
	importPrefix  string
	runtimeImport string
	skipFormat    bool
}

var _ codegen.Backend = (*Backend)(nil)
var _ codegen.ModelValidator = (*Backend)(nil)

type Option interface {
	apply(*Backend)
}

type option func(*Backend)

func (f option) apply(b *Backend) { f(b) }

// WithImportPrefix sets the Go import path that generated package
// directories live under, used to emit imports for cross-package type
// references.
func WithImportPrefix(prefix string) Option {
	return option(func(b *Backend) {
		b.importPrefix = strings.TrimSuffix(prefix, "/")
	})
}

// WithRuntimeImport overrides the import path of the runtime codec
// package.
func WithRuntimeImport(path string) Option {
	return option(func(b *Backend) {
		b.runtimeImport = path
	})
}

// WithoutFormat disables the gofmt/imports pass over generated files.
// Intended for tests that compare raw emitter output.
func WithoutFormat() Option {
	return option(func(b *Backend) {
		b.skipFormat = true
	})
}

func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		runtimeImport: DefaultRuntimeImport,
	}
	for _, opt := range opts {
		opt.apply(b)
	}
	return b
}

func (*Backend) Name() string {
	return "go"
}

func (*Backend) StructPath(s *schema.Struct) string {
	parts := append(packageDirs(s.Name.Package), fileBaseName(s.Name))
	return filepath.Join(parts...)
}

func (*Backend) AggregationPath(s *schema.Struct) string {
	parts := append(packageDirs(s.Name.Package), aggregationFile)
	return filepath.Join(parts...)
}

// ValidateModel rejects schemas that the identifier transform would
// render ambiguously: distinct schema names mapping to one Go name in
// the same scope, members shadowing generated method names, and
// packages the backend cannot represent.
func (b *Backend) ValidateModel(model *schema.TypeModel) error {
	pkgScope := map[string]map[string]string{}
	declare := func(pkg, goName, source string) error {
		scope := pkgScope[pkg]
		if scope == nil {
			scope = map[string]string{}
			pkgScope[pkg] = scope
		}
		if prev, ok := scope[goName]; ok {
			return fmt.Errorf(
				"golang: %s and %s both generate the name %q in package %s",
				prev, source, goName, pkg,
			)
		}
		scope[goName] = source
		return nil
	}

	for _, s := range model.Structs() {
		full := s.Name.Full()
		pkg := s.Name.Package
		if pkg == "" {
			return fmt.Errorf(
				"golang: struct %q has no package; the Go backend requires one",
				full,
			)
		}
		switch packageName(pkg) {
		case "lcm", "io":
			return fmt.Errorf(
				"golang: package %q collides with an import of generated code",
				pkg,
			)
		}
		if b.StructPath(s) == b.AggregationPath(s) {
			return fmt.Errorf(
				"golang: struct %q generates into the aggregation file %s",
				full, aggregationFile,
			)
		}

		if err := declare(pkg, typeName(s.Name), "struct "+full); err != nil {
			return err
		}
		if err := declare(pkg, fingerprintConstName(s.Name), "the fingerprint of "+full); err != nil {
			return err
		}
		for _, c := range s.Constants {
			source := fmt.Sprintf("constant %s.%s", full, c.Name)
			if err := declare(pkg, constName(s.Name, c.Name), source); err != nil {
				return err
			}
		}

		fields := map[string]string{}
		for _, m := range s.Members {
			goName := fieldName(m.Name)
			if reservedFieldNames[goName] {
				return fmt.Errorf(
					"golang: member %s.%s generates the field %q, which collides"+
						" with a generated method",
					full, m.Name, goName,
				)
			}
			if prev, ok := fields[goName]; ok {
				return fmt.Errorf(
					"golang: members %s.%s and %s.%s both generate the field %q",
					full, prev, full, m.Name, goName,
				)
			}
			fields[goName] = m.Name
		}
	}
	return nil
}

// GenerateStruct renders the complete source file for one struct:
// generated-file marker, imports, declaration, constants, and the
// fingerprint/encode/decode/size implementations.
func (b *Backend) GenerateStruct(model *schema.TypeModel, s *schema.Struct) ([]byte, error) {
	g, err := newStructGen(b, model, s)
	if err != nil {
		return nil, err
	}

	var body codegen.Emitter
	g.emitDecl(&body)
	g.emitConstants(&body)
	g.emitFingerprint(&body)
	g.emitEncode(&body)
	g.emitDecode(&body)
	g.emitSize(&body)

	var file codegen.Emitter
	file.Emit(0, generatedMarker)
	file.Blank()
	file.Emit(0, "package %s", packageName(s.Name.Package))
	file.Blank()
	if err := g.emitImports(&file, body.String()); err != nil {
		return nil, err
	}
	file.Blank()
	file.Continue("%s", body.String())

	raw := file.Bytes()
	if b.skipFormat {
		return raw, nil
	}
	formatted, err := imports.Process(b.StructPath(s), raw, nil)
	if err != nil {
		return nil, fmt.Errorf("golang: formatting %s: %w", s.Name.Full(), err)
	}
	return formatted, nil
}

// AggregationEntry renders the registration block appended to the
// package aggregation file for one struct.
func (b *Backend) AggregationEntry(model *schema.TypeModel, s *schema.Struct, header bool) ([]byte, error) {
	var e codegen.Emitter
	if header {
		e.Emit(0, generatedMarker)
		e.Blank()
		e.Emit(0, "package %s", packageName(s.Name.Package))
		e.Blank()
		e.Emit(0, "import (")
		e.Emit(1, "%q", b.runtimeImport)
		e.Emit(0, ")")
	}
	e.Blank()
	e.Emit(0, "func init() {")
	e.Emit(1, "lcm.Register(%q, %s, func() lcm.Message { return new(%s) })",
		s.Name.Full(), fingerprintConstName(s.Name), typeName(s.Name))
	e.Emit(0, "}")
	return e.Bytes(), nil
}
