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

	"github.com/thammet/swaggerguard/syntax"
)

// modifiers lists the declaration modifiers, including contextual ones.
var modifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "internal": true, "static": true,
	"virtual": true, "override": true, "abstract": true, "sealed": true, "async": true,
	"extern": true, "unsafe": true, "new": true, "readonly": true, "partial": true,
	"required": true, "file": true, "volatile": true, "const": true, "fixed": true,
}

// PredefinedTypes maps the C# type keywords to their metadata names.
var PredefinedTypes = map[string]string{
	"bool": "System.Boolean", "byte": "System.Byte", "sbyte": "System.SByte",
	"char": "System.Char", "decimal": "System.Decimal", "double": "System.Double",
	"float": "System.Single", "int": "System.Int32", "uint": "System.UInt32",
	"long": "System.Int64", "ulong": "System.UInt64", "short": "System.Int16",
	"ushort": "System.UInt16", "object": "System.Object", "string": "System.String",
	"void": "System.Void",
}

// ParseFile parses a C# source file. Token positions are taken from file, which
// must have been added to a [token.FileSet] with the size of src.
func ParseFile(file *token.File, src string) (*syntax.CompilationUnit, error) {
	toks, err := lex(file, src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}

	return p.compilationUnit()
}

// ParseAttributeArgument parses a single attribute argument, such as
// "Type = typeof(Widget)". The resulting tokens carry no positions.
func ParseAttributeArgument(text string) (*syntax.AttributeArgument, error) {
	p, err := fragment(text)
	if err != nil {
		return nil, err
	}

	arg, ok := p.attributeArgument()
	if !ok || !p.atEOF() {
		return nil, newError(token.NoPos, "invalid attribute argument %q", text)
	}

	return arg, nil
}

// ParseType parses a type name, such as "Task<Widget>". The resulting tokens carry no positions.
func ParseType(text string) (*syntax.TypeSyntax, error) {
	p, err := fragment(text)
	if err != nil {
		return nil, err
	}

	typ, ok := p.typeSyntax()
	if !ok || !p.atEOF() {
		return nil, newError(token.NoPos, "invalid type %q", text)
	}

	return typ, nil
}

func fragment(text string) (*parser, error) {
	toks, err := lex(nil, text)
	if err != nil {
		return nil, err
	}

	return &parser{toks: toks}, nil
}

type parser struct {
	toks []*syntax.Token
	i    int
}

func (p *parser) peek() *syntax.Token { return p.peekN(0) }

func (p *parser) peekN(n int) *syntax.Token {
	if i := p.i + n; i < len(p.toks) {
		return p.toks[i]
	}

	return p.toks[len(p.toks)-1]
}

func (p *parser) next() *syntax.Token {
	t := p.toks[p.i]
	if t.Kind != syntax.EOF {
		p.i++
	}

	return t
}

func (p *parser) atEOF() bool { return p.peek().Kind == syntax.EOF }

func (p *parser) at(text string) bool { return p.peek().Is(text) }

func (p *parser) atIdent(text string) bool {
	t := p.peek()

	return t.Kind == syntax.Ident && t.Text == text
}

func (p *parser) accept(text string) *syntax.Token {
	if p.at(text) {
		return p.next()
	}

	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return newError(p.peek().Pos, format, args...)
}

func (p *parser) compilationUnit() (*syntax.CompilationUnit, error) {
	var members []syntax.Node

	for !p.atEOF() {
		m, err := p.namespaceMember()
		if err != nil {
			return nil, err
		}

		members = append(members, m)
	}

	return &syntax.CompilationUnit{Members: members, EOF: p.next()}, nil
}

// namespaceMember parses a using directive, a namespace or a member of a namespace.
func (p *parser) namespaceMember() (syntax.Node, error) {
	switch {
	case p.at("using") || (p.atIdent("global") && p.peekN(1).Is("using")):
		start := p.i
		if u, ok := p.usingDirective(); ok {
			return u, nil
		}

		p.i = start

		return p.opaque()

	case p.at("namespace"):
		return p.namespaceDecl()

	case p.atGlobalAttribute():
		list, err := p.balanced("[", "]")
		if err != nil {
			return nil, err
		}

		return &syntax.MemberDecl{Tokens: list.Tokens}, nil

	default:
		return p.member(false)
	}
}

func (p *parser) usingDirective() (*syntax.UsingDirective, bool) {
	u := &syntax.UsingDirective{}

	if p.atIdent("global") {
		u.Global = p.next()
	}

	u.Using = p.next()
	u.Static = p.accept("static")

	if p.peek().Kind == syntax.Ident && p.peekN(1).Is("=") {
		u.Alias, u.AliasEquals = p.next(), p.next()
	}

	name, ok := p.typeSyntax()
	if !ok || !p.at(";") {
		return nil, false
	}

	u.Name, u.Semicolon = name, p.next()

	return u, true
}

func (p *parser) namespaceDecl() (*syntax.NamespaceDecl, error) {
	n := &syntax.NamespaceDecl{Keyword: p.next()}

	name, ok := p.typeSyntax()
	if !ok || name.Tuple != nil {
		return nil, p.errorf("namespace name expected")
	}

	n.Name = name

	if semi := p.accept(";"); semi != nil {
		n.Semicolon = semi

		for !p.atEOF() {
			m, err := p.namespaceMember()
			if err != nil {
				return nil, err
			}

			n.Members = append(n.Members, m)
		}

		return n, nil
	}

	if n.Open = p.accept("{"); n.Open == nil {
		return nil, p.errorf("'{' expected")
	}

	for !p.at("}") {
		if p.atEOF() {
			return nil, p.errorf("'}' expected")
		}

		m, err := p.namespaceMember()
		if err != nil {
			return nil, err
		}

		n.Members = append(n.Members, m)
	}

	n.Close = p.next()
	n.Semicolon = p.accept(";")

	return n, nil
}

// member parses a type declaration, a method (inside types) or an opaque member.
func (p *parser) member(inType bool) (syntax.Node, error) {
	start := p.i

	lists, ok := p.attributeLists()
	if !ok {
		p.i = start

		return p.opaque()
	}

	mods := p.modifiers()

	switch {
	case p.at("class") || p.at("struct") || p.at("interface") || p.atRecord():
		afterModifiers := p.i
		if c, err := p.classDecl(lists, mods); err == nil {
			return c, nil
		} else if !p.recoverable(afterModifiers) {
			return nil, err
		}

		p.i = start

		return p.opaque()

	case inType:
		if m, ok := p.methodDecl(lists, mods); ok {
			return m, nil
		}
	}

	p.i = start

	return p.opaque()
}

// recoverable reports whether a type declaration starting at index start can be
// skipped as an opaque member, which requires its braces to balance.
func (p *parser) recoverable(start int) bool {
	p.i = start
	_, err := p.opaque()

	return err == nil
}

func (p *parser) atRecord() bool {
	if !p.atIdent("record") {
		return false
	}

	next := p.peekN(1)

	return next.Kind == syntax.Ident || next.Is("class") || next.Is("struct")
}

func (p *parser) modifiers() []*syntax.Token {
	var mods []*syntax.Token

	for {
		t := p.peek()
		if (t.Kind != syntax.Keyword && t.Kind != syntax.Ident) || !modifiers[t.Text] {
			return mods
		}

		// A contextual modifier followed by '(' or ';' is a name, not a modifier.
		if t.Kind == syntax.Ident {
			if next := p.peekN(1); next.Is("(") || next.Is(";") || next.Is("=") || next.Is("{") {
				return mods
			}
		}

		mods = append(mods, p.next())
	}
}

func (p *parser) classDecl(lists []*syntax.AttributeList, mods []*syntax.Token) (*syntax.ClassDecl, error) {
	c := &syntax.ClassDecl{AttributeLists: lists, Modifiers: mods}

	c.Keywords = append(c.Keywords, p.next())
	if c.Keywords[0].Text == "record" {
		if kw := p.accept("class"); kw != nil {
			c.Keywords = append(c.Keywords, kw)
		} else if kw := p.accept("struct"); kw != nil {
			c.Keywords = append(c.Keywords, kw)
		}
	}

	if p.peek().Kind != syntax.Ident {
		return nil, p.errorf("identifier expected")
	}

	c.Identifier = p.next()

	if p.at("<") {
		list, err := p.balanced("<", ">")
		if err != nil {
			return nil, err
		}

		c.TypeParameterList = list
	}

	if p.at("(") {
		list, err := p.balanced("(", ")")
		if err != nil {
			return nil, err
		}

		c.ParameterList = list
	}

	if p.at(":") {
		base, ok := p.baseList()
		if !ok {
			return nil, p.errorf("base type expected")
		}

		c.BaseList = base
	}

	if p.atIdent("where") {
		c.ConstraintClauses = p.until("{", ";")
	}

	if semi := p.accept(";"); semi != nil {
		c.Semicolon = semi

		return c, nil
	}

	if c.Open = p.accept("{"); c.Open == nil {
		return nil, p.errorf("'{' expected")
	}

	for !p.at("}") {
		if p.atEOF() {
			return nil, p.errorf("'}' expected")
		}

		m, err := p.member(true)
		if err != nil {
			return nil, err
		}

		c.Members = append(c.Members, m)
	}

	c.Close = p.next()
	c.Semicolon = p.accept(";")

	return c, nil
}

func (p *parser) baseList() (*syntax.BaseList, bool) {
	b := &syntax.BaseList{Colon: p.next()}

	for {
		typ, ok := p.typeSyntax()
		if !ok {
			return nil, false
		}

		b.Types = append(b.Types, typ)

		comma := p.accept(",")
		if comma == nil {
			return b, true
		}

		b.Commas = append(b.Commas, comma)
	}
}

// methodDecl tries to parse a method after its attributes and modifiers.
// It reports false, leaving the position undefined, when the member is not a method.
func (p *parser) methodDecl(lists []*syntax.AttributeList, mods []*syntax.Token) (*syntax.MethodDecl, bool) {
	m := &syntax.MethodDecl{AttributeLists: lists, Modifiers: mods}

	ret, ok := p.typeSyntax()
	if !ok {
		return nil, false
	}

	m.ReturnType = ret

	var explicit []*syntax.Token

	for {
		if p.peek().Kind != syntax.Ident {
			return nil, false
		}

		id := p.next()

		var params *syntax.TokenList

		if p.at("<") {
			list, err := p.balanced("<", ">")
			if err != nil {
				return nil, false
			}

			params = list
		}

		if p.at(".") {
			explicit = append(explicit, id)
			if params != nil {
				explicit = append(explicit, params.Tokens...)
			}

			explicit = append(explicit, p.next())

			continue
		}

		m.Identifier, m.TypeParameterList = id, params

		break
	}

	if len(explicit) > 0 {
		m.ExplicitInterface = &syntax.TokenList{Tokens: explicit}
	}

	if !p.at("(") {
		return nil, false
	}

	params, err := p.balanced("(", ")")
	if err != nil {
		return nil, false
	}

	m.ParameterList = params

	if p.atIdent("where") {
		m.ConstraintClauses = p.until("{", "=>", ";")
	}

	switch {
	case p.at("{"):
		body, err := p.balanced("{", "}")
		if err != nil {
			return nil, false
		}

		m.Body = body

	case p.at("=>"):
		m.ExpressionBody = p.until(";")
		if m.Semicolon = p.accept(";"); m.Semicolon == nil {
			return nil, false
		}

	case p.at(";"):
		m.Semicolon = p.next()

	default:
		return nil, false
	}

	return m, true
}

// opaque consumes a member up to its terminating ';' or closing brace.
func (p *parser) opaque() (*syntax.MemberDecl, error) {
	var toks []*syntax.Token

	depth := 0

	for {
		t := p.peek()

		switch {
		case t.Kind == syntax.EOF:
			if depth > 0 || len(toks) == 0 {
				return nil, p.errorf("unexpected end of file")
			}

			return &syntax.MemberDecl{Tokens: toks}, nil

		case depth == 0 && t.Is("}"):
			if len(toks) == 0 {
				return nil, p.errorf("unexpected '}'")
			}

			return &syntax.MemberDecl{Tokens: toks}, nil

		case t.Is("(") || t.Is("[") || t.Is("{"):
			depth++

		case t.Is(")") || t.Is("]") || t.Is("}"):
			depth--
		}

		toks = append(toks, p.next())

		if depth != 0 {
			continue
		}

		switch {
		case t.Is(";"):
			return &syntax.MemberDecl{Tokens: toks}, nil

		case t.Is("}"):
			switch {
			case p.at("="):
				continue // property initializer
			case p.at(";"):
				toks = append(toks, p.next())
			}

			return &syntax.MemberDecl{Tokens: toks}, nil
		}
	}
}

// balanced consumes a bracketed token run, open and close included.
func (p *parser) balanced(open, close string) (*syntax.TokenList, error) {
	var toks []*syntax.Token

	depth := 0

	for {
		t := p.peek()
		if t.Kind == syntax.EOF {
			return nil, p.errorf("'%s' expected", close)
		}

		switch {
		case t.Is(open):
			depth++
		case t.Is(close):
			depth--
		}

		toks = append(toks, p.next())

		if depth == 0 {
			return &syntax.TokenList{Tokens: toks}, nil
		}
	}
}

// until consumes tokens up to, but excluding, one of the stop tokens at bracket depth zero.
func (p *parser) until(stops ...string) *syntax.TokenList {
	var toks []*syntax.Token

	depth := 0

	for !p.atEOF() {
		t := p.peek()

		if depth == 0 {
			for _, s := range stops {
				if t.Is(s) {
					return &syntax.TokenList{Tokens: toks}
				}
			}
		}

		switch {
		case t.Is("(") || t.Is("[") || t.Is("{"):
			depth++
		case t.Is(")") || t.Is("]") || t.Is("}"):
			depth--
		}

		toks = append(toks, p.next())
	}

	return &syntax.TokenList{Tokens: toks}
}
