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

// Package syntax parses LCM schema source into the type model consumed
// by code generation. Validation that the generator relies on happens
// here: runtime array dimensions must name an earlier scalar integer
// member, fixed dimensions must be non-negative integer literals, and
// constants must have legal types and parseable values.
package syntax

import (
	"strconv"
	"strings"

	"github.com/miquelmassot/lcm/schema"
)

// A File is the parse result of one schema file.
type File struct {
	// Package is the dotted package of the last package statement, or
	// empty if the file has none.
	Package string

	Structs []*schema.Struct
}

// Parse parses one LCM schema file.
func Parse(src []byte) (*File, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: tokens}
	return p.parseFile()
}

type parser struct {
	toks []token
	pos  int
	pkg  string

	// Comment lines not yet attached to a declaration. A comment on the
	// same line as preceding code is discarded rather than attached to
	// the next declaration.
	pending  []string
	lastLine int
}

func (p *parser) peek() token {
	for p.toks[p.pos].kind == T_COMMENT {
		tok := p.toks[p.pos]
		if tok.span.Line != p.lastLine {
			p.pending = append(p.pending, commentText(tok.text)...)
		}
		p.pos++
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.peek()
	if tok.kind != T_EOF {
		p.pos++
		p.lastLine = tok.span.Line
	}
	return tok
}

func (p *parser) expect(kind TokenKind, want string) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return token{}, errUnexpectedToken(want, tok)
	}
	return tok, nil
}

func (p *parser) takeComment() string {
	comment := strings.Join(p.pending, "\n")
	p.pending = nil
	return comment
}

func commentText(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimLeft(line, " \t")
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimPrefix(line, " ")
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}
	// Block comments often start and end with empty lines once the
	// decoration is stripped.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (p *parser) parseFile() (*File, error) {
	file := &File{}
	for {
		tok := p.peek()
		if tok.kind == T_EOF {
			return file, nil
		}
		if tok.kind != T_IDENT {
			return nil, errExpectedDeclaration(tok)
		}
		switch tok.text {
		case "package":
			if err := p.parsePackage(); err != nil {
				return nil, err
			}
		case "struct":
			s, err := p.parseStruct()
			if err != nil {
				return nil, err
			}
			file.Structs = append(file.Structs, s)
		default:
			return nil, errExpectedDeclaration(tok)
		}
	}
}

func (p *parser) parsePackage() error {
	p.pending = nil
	p.next()
	name, _, err := p.parseDottedName("package name")
	if err != nil {
		return err
	}
	if _, err := p.expect(T_SEMI, "';'"); err != nil {
		return err
	}
	p.pkg = name
	return nil
}

func (p *parser) parseStruct() (*schema.Struct, error) {
	comment := p.takeComment()
	p.next()
	nameTok, err := p.expect(T_IDENT, "struct name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(T_OPEN_CURL, "'{'"); err != nil {
		return nil, err
	}

	s := &schema.Struct{
		Name: schema.TypeName{
			Package: p.pkg,
			Short:   nameTok.text,
		},
		Comment: comment,
	}
	for {
		tok := p.peek()
		if tok.kind == T_CLOSE_CURL {
			p.next()
			p.pending = nil
			return s, nil
		}
		if tok.kind != T_IDENT {
			return nil, errUnexpectedToken("a member or constant declaration", tok)
		}
		if tok.text == "const" {
			err = p.parseConst(s)
		} else {
			err = p.parseMembers(s)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseConst(s *schema.Struct) error {
	comment := p.takeComment()
	p.next()
	typeTok, err := p.expect(T_IDENT, "constant type")
	if err != nil {
		return err
	}
	if !schema.IsLegalConstType(typeTok.text) {
		return errIllegalConstType(typeTok.text, typeTok.span)
	}
	for {
		nameTok, err := p.expect(T_IDENT, "constant name")
		if err != nil {
			return err
		}
		for _, c := range s.Constants {
			if c.Name == nameTok.text {
				return errDuplicateConstant(nameTok.text, nameTok.span)
			}
		}
		if _, err := p.expect(T_EQ, "'='"); err != nil {
			return err
		}
		valTok, err := p.expect(T_NUMBER, "constant value")
		if err != nil {
			return err
		}
		if !constValueOK(typeTok.text, valTok.text) {
			return errInvalidConstValue(
				nameTok.text, typeTok.text, valTok.text, valTok.span,
			)
		}
		s.Constants = append(s.Constants, schema.Constant{
			Name:    nameTok.text,
			Type:    typeTok.text,
			Value:   valTok.text,
			Comment: comment,
		})
		if p.peek().kind == T_COMMA {
			p.next()
			continue
		}
		_, err = p.expect(T_SEMI, "';'")
		return err
	}
}

func constValueOK(typeName, value string) bool {
	switch typeName {
	case schema.Int8, schema.Int16, schema.Int32, schema.Int64:
		bits := map[string]int{
			schema.Int8:  8,
			schema.Int16: 16,
			schema.Int32: 32,
			schema.Int64: 64,
		}[typeName]
		_, err := strconv.ParseInt(value, 0, bits)
		return err == nil
	case schema.Float, schema.Double:
		_, err := strconv.ParseFloat(value, 64)
		return err == nil
	}
	return false
}

func (p *parser) parseMembers(s *schema.Struct) error {
	comment := p.takeComment()
	typeName, _, err := p.parseDottedName("member type")
	if err != nil {
		return err
	}

	memberType := schema.MakeTypeName(typeName)
	if memberType.Package == "" && !schema.IsPrimitive(memberType.Short) {
		// Unqualified struct references resolve to the current package.
		memberType.Package = p.pkg
	}

	for {
		nameTok, err := p.expect(T_IDENT, "member name")
		if err != nil {
			return err
		}
		if s.Member(nameTok.text) != nil {
			return errDuplicateMember(nameTok.text, nameTok.span)
		}
		dims, err := p.parseDimensions(s, nameTok.text)
		if err != nil {
			return err
		}
		s.Members = append(s.Members, schema.Member{
			Name:       nameTok.text,
			Type:       memberType,
			Dimensions: dims,
			Comment:    comment,
		})
		if p.peek().kind == T_COMMA {
			p.next()
			continue
		}
		_, err = p.expect(T_SEMI, "';'")
		return err
	}
}

func (p *parser) parseDimensions(s *schema.Struct, arrayName string) ([]schema.Dimension, error) {
	var dims []schema.Dimension
	for p.peek().kind == T_OPEN_SQUARE {
		p.next()
		tok := p.next()
		switch tok.kind {
		case T_NUMBER:
			if n, err := strconv.ParseInt(tok.text, 10, 64); err != nil || n < 0 {
				return nil, errInvalidFixedDimension(tok.text, tok.span)
			}
			dims = append(dims, schema.Dimension{
				Mode: schema.DimFixed,
				Size: tok.text,
			})
		case T_IDENT:
			sizeField := s.Member(tok.text)
			if sizeField == nil {
				return nil, errSizeFieldNotFound(tok.text, arrayName, tok.span)
			}
			if len(sizeField.Dimensions) > 0 {
				return nil, errSizeFieldIsArray(tok.text, tok.span)
			}
			if !sizeField.Type.IsPrimitive() || !schema.IsInteger(sizeField.Type.Short) {
				return nil, errSizeFieldNotInteger(
					tok.text, sizeField.Type.Full(), tok.span,
				)
			}
			dims = append(dims, schema.Dimension{
				Mode: schema.DimRuntime,
				Size: tok.text,
			})
		default:
			return nil, errUnexpectedToken("an array dimension", tok)
		}
		if _, err := p.expect(T_CLOSE_SQUARE, "']'"); err != nil {
			return nil, err
		}
	}
	return dims, nil
}

func (p *parser) parseDottedName(want string) (string, Span, error) {
	first, err := p.expect(T_IDENT, want)
	if err != nil {
		return "", Span{}, err
	}
	parts := []string{first.text}
	for p.peek().kind == T_DOT {
		p.next()
		part, err := p.expect(T_IDENT, want)
		if err != nil {
			return "", Span{}, err
		}
		parts = append(parts, part.text)
	}
	return strings.Join(parts, "."), first.span, nil
}
