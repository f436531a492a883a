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

import "github.com/thammet/swaggerguard/syntax"

// attributeLists parses consecutive attribute sections.
func (p *parser) attributeLists() ([]*syntax.AttributeList, bool) {
	var lists []*syntax.AttributeList

	for p.at("[") {
		list, ok := p.attributeList()
		if !ok {
			return nil, false
		}

		lists = append(lists, list)
	}

	return lists, true
}

// atGlobalAttribute reports whether the next attribute section targets the assembly or module.
func (p *parser) atGlobalAttribute() bool {
	if !p.at("[") || !p.peekN(2).Is(":") {
		return false
	}

	t := p.peekN(1)

	return t.Kind == syntax.Ident && (t.Text == "assembly" || t.Text == "module")
}

func (p *parser) attributeList() (*syntax.AttributeList, bool) {
	l := &syntax.AttributeList{Open: p.next()}

	if t := p.peek(); (t.Kind == syntax.Ident || t.Kind == syntax.Keyword) && p.peekN(1).Is(":") {
		l.Target, l.TargetColon = p.next(), p.next()
	}

	for !p.at("]") {
		attr, ok := p.attribute()
		if !ok {
			return nil, false
		}

		l.Attributes = append(l.Attributes, attr)

		comma := p.accept(",")
		if comma == nil {
			break
		}

		l.Commas = append(l.Commas, comma)
	}

	if len(l.Attributes) == 0 {
		return nil, false
	}

	if l.Close = p.accept("]"); l.Close == nil {
		return nil, false
	}

	return l, true
}

func (p *parser) attribute() (*syntax.Attribute, bool) {
	name, ok := p.typeSyntax()
	if !ok {
		return nil, false
	}

	a := &syntax.Attribute{Name: name}

	if !p.at("(") {
		return a, true
	}

	args := &syntax.AttributeArgumentList{Open: p.next()}

	for !p.at(")") {
		arg, ok := p.attributeArgument()
		if !ok {
			return nil, false
		}

		args.Arguments = append(args.Arguments, arg)

		comma := p.accept(",")
		if comma == nil {
			break
		}

		args.Commas = append(args.Commas, comma)
	}

	if args.Close = p.accept(")"); args.Close == nil {
		return nil, false
	}

	a.ArgumentList = args

	return a, true
}

func (p *parser) attributeArgument() (*syntax.AttributeArgument, bool) {
	arg := &syntax.AttributeArgument{}

	if p.peek().Kind == syntax.Ident {
		switch next := p.peekN(1); {
		case next.Is("="):
			arg.NameEquals = &syntax.NameEquals{Name: p.next(), Equals: p.next()}
		case next.Is(":"):
			arg.NameColon = &syntax.NameColon{Name: p.next(), Colon: p.next()}
		}
	}

	expr, ok := p.argumentExpr()
	if !ok {
		return nil, false
	}

	arg.Expression = expr

	return arg, true
}

func (p *parser) atArgumentEnd() bool {
	return p.at(",") || p.at(")") || p.atEOF()
}

func (p *parser) argumentExpr() (syntax.Expr, bool) {
	start := p.i

	if p.at("typeof") {
		if e, ok := p.typeOf(); ok && p.atArgumentEnd() {
			return e, true
		}

		p.i = start
	}

	if isLiteral(p.peek()) {
		lit := &syntax.LiteralExpr{Token: p.next()}
		if p.atArgumentEnd() {
			return lit, true
		}

		p.i = start
	}

	var toks []*syntax.Token

	depth := 0

	for !p.atEOF() && (depth > 0 || !p.atArgumentEnd()) {
		t := p.peek()

		switch {
		case t.Is("(") || t.Is("[") || t.Is("{"):
			depth++

		case t.Is(")") || t.Is("]") || t.Is("}"):
			if depth == 0 {
				return nil, false
			}

			depth--
		}

		toks = append(toks, p.next())
	}

	if len(toks) == 0 || depth != 0 {
		return nil, false
	}

	return &syntax.RawExpr{Tokens: toks}, true
}

func isLiteral(t *syntax.Token) bool {
	switch t.Kind {
	case syntax.Number, syntax.String, syntax.Char:
		return true

	case syntax.Keyword:
		return t.Text == "true" || t.Text == "false" || t.Text == "null"

	default:
		return false
	}
}

func (p *parser) typeOf() (*syntax.TypeOfExpr, bool) {
	e := &syntax.TypeOfExpr{Keyword: p.next()}

	if e.Open = p.accept("("); e.Open == nil {
		return nil, false
	}

	typ, ok := p.typeSyntax()
	if !ok {
		return nil, false
	}

	e.Type = typ

	if e.Close = p.accept(")"); e.Close == nil {
		return nil, false
	}

	return e, true
}
