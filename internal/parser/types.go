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

// typeSyntax parses a type name. On failure the position is undefined.
func (p *parser) typeSyntax() (*syntax.TypeSyntax, bool) {
	t := &syntax.TypeSyntax{}

	if p.at("(") {
		tuple, ok := p.tupleType()
		if !ok {
			return nil, false
		}

		t.Tuple = tuple
		p.typeSuffixes(t)

		return t, true
	}

	if p.atIdent("global") && p.peekN(1).Is("::") {
		t.Global, t.ColonColon = p.next(), p.next()
	}

	for {
		id := p.peek()

		_, predefined := PredefinedTypes[id.Text]

		switch {
		case id.Kind == syntax.Ident:
		case id.Kind == syntax.Keyword && predefined && len(t.Segments) == 0:
		default:
			return nil, false
		}

		seg := &syntax.NameSegment{Identifier: p.next()}

		if !predefined && p.at("<") {
			start := p.i
			if args, ok := p.typeArgumentList(); ok {
				seg.TypeArgs = args
			} else {
				p.i = start
			}
		}

		t.Segments = append(t.Segments, seg)

		if predefined || !p.at(".") || p.peekN(1).Kind != syntax.Ident {
			break
		}

		t.Dots = append(t.Dots, p.next())
	}

	p.typeSuffixes(t)

	return t, true
}

// tupleType parses a tuple type of at least two elements, each optionally named.
func (p *parser) tupleType() (*syntax.TupleType, bool) {
	tt := &syntax.TupleType{Open: p.next()}

	for {
		typ, ok := p.typeSyntax()
		if !ok {
			return nil, false
		}

		e := &syntax.TupleElement{Type: typ}
		if p.peek().Kind == syntax.Ident {
			e.Name = p.next()
		}

		tt.Elements = append(tt.Elements, e)

		comma := p.accept(",")
		if comma == nil {
			break
		}

		tt.Commas = append(tt.Commas, comma)
	}

	if tt.Close = p.accept(")"); tt.Close == nil || len(tt.Elements) < 2 {
		return nil, false
	}

	return tt, true
}

func (p *parser) typeArgumentList() (*syntax.TypeArgumentList, bool) {
	l := &syntax.TypeArgumentList{Less: p.next()}

	// Unbound generic: <> or <,,>.
	for p.at(",") {
		l.Commas = append(l.Commas, p.next())
	}

	if l.Greater = p.accept(">"); l.Greater != nil {
		return l, true
	}

	if len(l.Commas) > 0 {
		return nil, false
	}

	for {
		arg, ok := p.typeSyntax()
		if !ok {
			return nil, false
		}

		l.Args = append(l.Args, arg)

		comma := p.accept(",")
		if comma == nil {
			break
		}

		l.Commas = append(l.Commas, comma)
	}

	if l.Greater = p.accept(">"); l.Greater == nil {
		return nil, false
	}

	return l, true
}

func (p *parser) typeSuffixes(t *syntax.TypeSyntax) {
	for {
		switch {
		case p.at("?"), p.at("*"):
			t.Suffixes = append(t.Suffixes, p.next())

		case p.at("["):
			n := 1
			for p.peekN(n).Is(",") {
				n++
			}

			if !p.peekN(n).Is("]") {
				return
			}

			for range n + 1 {
				t.Suffixes = append(t.Suffixes, p.next())
			}

		default:
			return
		}
	}
}
