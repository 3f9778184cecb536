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

package syntax

import (
	"fmt"
)

type TokenKind uint8

const (
	T_EOF TokenKind = iota

	T_COMMENT

	T_SEMI
	T_COMMA
	T_DOT
	T_EQ

	T_OPEN_CURL
	T_CLOSE_CURL
	T_OPEN_SQUARE
	T_CLOSE_SQUARE

	T_NUMBER
	T_IDENT
)

func (k TokenKind) String() string {
	switch k {
	case T_EOF:
		return "EOF"
	case T_COMMENT:
		return "COMMENT"
	case T_SEMI:
		return "';'"
	case T_COMMA:
		return "','"
	case T_DOT:
		return "'.'"
	case T_EQ:
		return "'='"
	case T_OPEN_CURL:
		return "'{'"
	case T_CLOSE_CURL:
		return "'}'"
	case T_OPEN_SQUARE:
		return "'['"
	case T_CLOSE_SQUARE:
		return "']'"
	case T_NUMBER:
		return "NUMBER"
	case T_IDENT:
		return "IDENT"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// A Span is the line and column of a token, 1-based.
type Span struct {
	Line   int
	Column int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

type token struct {
	kind TokenKind
	text string
	span Span
}

type lexer struct {
	src  []byte
	off  int
	line int
	col  int
}

func scan(src []byte) ([]token, error) {
	l := &lexer{
		src:  src,
		line: 1,
		col:  1,
	}
	var tokens []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.kind == T_EOF {
			return tokens, nil
		}
	}
}

func (l *lexer) span() Span {
	return Span{Line: l.line, Column: l.col}
}

func (l *lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.off+i] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.off += n
}

func (l *lexer) next() (token, error) {
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			l.advance(1)
			continue
		}
		break
	}
	if l.off >= len(l.src) {
		return token{kind: T_EOF, span: l.span()}, nil
	}

	span := l.span()
	c := l.src[l.off]
	switch c {
	case ';':
		return l.punct(T_SEMI, span), nil
	case ',':
		return l.punct(T_COMMA, span), nil
	case '.':
		return l.punct(T_DOT, span), nil
	case '=':
		return l.punct(T_EQ, span), nil
	case '{':
		return l.punct(T_OPEN_CURL, span), nil
	case '}':
		return l.punct(T_CLOSE_CURL, span), nil
	case '[':
		return l.punct(T_OPEN_SQUARE, span), nil
	case ']':
		return l.punct(T_CLOSE_SQUARE, span), nil
	case '/':
		return l.nextComment(span)
	}
	if isDigit(c) || c == '-' || c == '+' {
		return l.nextNumber(span), nil
	}
	if isIdentStart(c) {
		return l.nextIdent(span), nil
	}
	return token{}, errUnexpectedChar(c, span)
}

func (l *lexer) punct(kind TokenKind, span Span) token {
	text := string(l.src[l.off : l.off+1])
	l.advance(1)
	return token{kind: kind, text: text, span: span}
}

func (l *lexer) nextComment(span Span) (token, error) {
	if l.off+1 >= len(l.src) {
		return token{}, errUnexpectedChar('/', span)
	}
	switch l.src[l.off+1] {
	case '/':
		end := l.off + 2
		for end < len(l.src) && l.src[end] != '\n' {
			end++
		}
		text := string(l.src[l.off+2 : end])
		l.advance(end - l.off)
		return token{kind: T_COMMENT, text: text, span: span}, nil
	case '*':
		end := l.off + 2
		for {
			if end+1 >= len(l.src) {
				return token{}, errUnterminatedComment(span)
			}
			if l.src[end] == '*' && l.src[end+1] == '/' {
				break
			}
			end++
		}
		text := string(l.src[l.off+2 : end])
		l.advance(end + 2 - l.off)
		return token{kind: T_COMMENT, text: text, span: span}, nil
	}
	return token{}, errUnexpectedChar('/', span)
}

func (l *lexer) nextNumber(span Span) token {
	end := l.off + 1
	for end < len(l.src) {
		c := l.src[end]
		if isAlnum(c) || c == '.' {
			end++
			continue
		}
		// Exponent sign, as in 1.5e-3.
		if (c == '+' || c == '-') && (l.src[end-1] == 'e' || l.src[end-1] == 'E') {
			end++
			continue
		}
		break
	}
	text := string(l.src[l.off:end])
	l.advance(end - l.off)
	return token{kind: T_NUMBER, text: text, span: span}
}

func (l *lexer) nextIdent(span Span) token {
	end := l.off + 1
	for end < len(l.src) && isIdentChar(l.src[end]) {
		end++
	}
	text := string(l.src[l.off:end])
	l.advance(end - l.off)
	return token{kind: T_IDENT, text: text, span: span}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return c == '_' || isAlnum(c)
}
