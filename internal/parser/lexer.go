// Copyright 2026 The swaggerguard Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thammet/swaggerguard/syntax"
)

var keywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "checked": true, "class": true, "const": true,
	"continue": true, "decimal": true, "default": true, "delegate": true, "do": true,
	"double": true, "else": true, "enum": true, "event": true, "explicit": true, "extern": true,
	"false": true, "finally": true, "fixed": true, "float": true, "for": true, "foreach": true,
	"goto": true, "if": true, "implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true, "namespace": true, "new": true,
	"null": true, "object": true, "operator": true, "out": true, "override": true,
	"params": true, "private": true, "protected": true, "public": true, "readonly": true,
	"ref": true, "return": true, "sbyte": true, "sealed": true, "short": true, "sizeof": true,
	"stackalloc": true, "static": true, "string": true, "struct": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true, "typeof": true, "uint": true,
	"ulong": true, "unchecked": true, "unsafe": true, "ushort": true, "using": true,
	"virtual": true, "void": true, "volatile": true, "while": true,
}

// Multi-character punctuators, longest first. Angle brackets are never combined
// so that nested generic argument lists close one token at a time.
var punctuators = []string{
	"=>", "::", "==", "!=", "<=", "&&", "||", "++", "--", "->",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "??",
}

const bom = "\uFEFF"

type lexer struct {
	file *token.File
	src  string
	off  int

	// lineStart is true while only whitespace has been seen on the current line.
	lineStart bool
}

// lex splits src into tokens. The last token is always [syntax.EOF].
// Token positions are relative to file; with a nil file they are [token.NoPos].
func lex(file *token.File, src string) ([]*syntax.Token, error) {
	l := &lexer{file: file, src: src, lineStart: true}

	var toks []*syntax.Token

	for {
		start := l.off

		if err := l.skipTrivia(); err != nil {
			return nil, err
		}

		leading := l.src[start:l.off]

		if l.off >= len(l.src) {
			toks = append(toks, &syntax.Token{Kind: syntax.EOF, Leading: leading, Pos: l.pos(l.off)})

			return toks, nil
		}

		tok, err := l.scan()
		if err != nil {
			return nil, err
		}

		tok.Leading = leading
		toks = append(toks, tok)
		l.lineStart = false
	}
}

func (l *lexer) pos(off int) token.Pos {
	if l.file == nil {
		return token.NoPos
	}

	return l.file.Pos(off)
}

func (l *lexer) errorf(off int, format string, args ...any) error {
	return newError(l.pos(off), format, args...)
}

func (l *lexer) skipTrivia() error {
	for l.off < len(l.src) {
		c := l.src[l.off]

		switch {
		case c == '\n':
			l.off++
			l.lineStart = true

		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			l.off++

		case strings.HasPrefix(l.src[l.off:], bom):
			l.off += len(bom)

		case strings.HasPrefix(l.src[l.off:], "//"):
			l.skipLine()

		case strings.HasPrefix(l.src[l.off:], "/*"):
			end := strings.Index(l.src[l.off+2:], "*/")
			if end < 0 {
				return l.errorf(l.off, "comment not terminated")
			}

			l.off += 2 + end + 2

		case c == '#' && l.lineStart:
			l.skipLine()

		default:
			return nil
		}
	}

	return nil
}

// skipLine advances to the next newline, leaving it unconsumed.
func (l *lexer) skipLine() {
	if i := strings.IndexByte(l.src[l.off:], '\n'); i >= 0 {
		l.off += i
	} else {
		l.off = len(l.src)
	}
}

func (l *lexer) scan() (*syntax.Token, error) {
	start := l.off
	c := l.src[l.off]

	kind := syntax.Punct

	var err error

	switch {
	case c == '"' || isStringPrefix(l.src[l.off:]):
		kind = syntax.String
		err = l.scanString()

	case c == '\'':
		kind = syntax.Char
		err = l.scanChar()

	case c == '@' || isIdentStart(l.src[l.off:]):
		kind = syntax.Ident

		switch {
		case !l.scanIdent():
			l.off++ // lone '@'
			kind = syntax.Punct

		case keywords[l.src[start:l.off]]:
			kind = syntax.Keyword
		}

	case isDigit(c) || (c == '.' && l.off+1 < len(l.src) && isDigit(l.src[l.off+1])):
		kind = syntax.Number
		l.scanNumber()

	default:
		l.scanPunct()
	}

	if err != nil {
		return nil, err
	}

	return &syntax.Token{Kind: kind, Text: l.src[start:l.off], Pos: l.pos(start)}, nil
}

func isStringPrefix(s string) bool {
	i := 0
	for i < len(s) && (s[i] == '$' || s[i] == '@') {
		i++
	}

	return i > 0 && i < len(s) && s[i] == '"'
}

func isIdentStart(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Pc, r)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// scanIdent consumes an identifier with an optional verbatim '@' prefix.
func (l *lexer) scanIdent() bool {
	off := l.off
	if l.src[off] == '@' {
		off++
	}

	if off >= len(l.src) || !isIdentStart(l.src[off:]) {
		return false
	}

	for off < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[off:])
		if !isIdentPart(r) {
			break
		}

		off += size
	}

	l.off = off

	return true
}

func (l *lexer) scanNumber() {
	for l.off < len(l.src) {
		c := l.src[l.off]

		switch {
		case isDigit(c), c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			l.off++

		case c == '.' && l.off+1 < len(l.src) && isDigit(l.src[l.off+1]):
			l.off++

		default:
			return
		}
	}
}

func (l *lexer) scanPunct() {
	rest := l.src[l.off:]
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p) {
			l.off += len(p)

			return
		}
	}

	_, size := utf8.DecodeRuneInString(rest)
	l.off += size
}

func (l *lexer) scanChar() error {
	start := l.off
	l.off++ // opening quote

	for l.off < len(l.src) {
		switch l.src[l.off] {
		case '\\':
			l.off += 2

		case '\'':
			l.off++

			return nil

		case '\n':
			return l.errorf(start, "character literal not terminated")

		default:
			l.off++
		}
	}

	return l.errorf(start, "character literal not terminated")
}

// scanString consumes regular, verbatim, interpolated and raw string literals.
func (l *lexer) scanString() error {
	start := l.off

	var dollars int

	verbatim := false

	for l.src[l.off] != '"' {
		if l.src[l.off] == '$' {
			dollars++
		} else {
			verbatim = true
		}

		l.off++
	}

	if !verbatim && strings.HasPrefix(l.src[l.off:], `"""`) {
		return l.scanRawString(start)
	}

	l.off++ // opening quote

	for l.off < len(l.src) {
		c := l.src[l.off]

		switch {
		case c == '"':
			if verbatim && l.off+1 < len(l.src) && l.src[l.off+1] == '"' {
				l.off += 2

				continue
			}

			l.off++

			return nil

		case c == '\\' && !verbatim:
			l.off += 2

		case c == '\n' && !verbatim:
			return l.errorf(start, "string literal not terminated")

		case c == '{' && dollars > 0:
			if l.off+1 < len(l.src) && l.src[l.off+1] == '{' {
				l.off += 2

				continue
			}

			if err := l.skipInterpolation(start); err != nil {
				return err
			}

		default:
			l.off++
		}
	}

	return l.errorf(start, "string literal not terminated")
}

// skipInterpolation consumes an interpolation hole starting at '{'.
func (l *lexer) skipInterpolation(start int) error {
	depth := 0

	for l.off < len(l.src) {
		c := l.src[l.off]

		switch {
		case c == '{':
			depth++
			l.off++

		case c == '}':
			depth--
			l.off++

			if depth == 0 {
				return nil
			}

		case c == '"' || isStringPrefix(l.src[l.off:]):
			if err := l.scanString(); err != nil {
				return err
			}

		case c == '\'':
			if err := l.scanChar(); err != nil {
				return err
			}

		default:
			l.off++
		}
	}

	return l.errorf(start, "string literal not terminated")
}

func (l *lexer) scanRawString(start int) error {
	quotes := 0
	for l.off < len(l.src) && l.src[l.off] == '"' {
		quotes++
		l.off++
	}

	delim := strings.Repeat(`"`, quotes)

	end := strings.Index(l.src[l.off:], delim)
	if end < 0 {
		return l.errorf(start, "raw string literal not terminated")
	}

	l.off += end + quotes

	return nil
}
