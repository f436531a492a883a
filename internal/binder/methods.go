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

package binder

import (
	"strconv"
	"strings"

	"github.com/thammet/swaggerguard/symbols"
	"github.com/thammet/swaggerguard/syntax"
)

// Method implements [symbols.Method].
type Method struct {
	name      string
	ret       *Type
	void      bool
	static    bool
	container *Type
	attrs     []symbols.Attribute
	locs      []symbols.Location
	decl      *syntax.MethodDecl
}

var _ symbols.Method = (*Method)(nil)

// Name implements [symbols.Method].
func (m *Method) Name() string { return m.name }

// ReturnType implements [symbols.Method].
func (m *Method) ReturnType() symbols.Type { return m.ret }

// ReturnsVoid implements [symbols.Method].
func (m *Method) ReturnsVoid() bool { return m.void }

// IsStatic implements [symbols.Method].
func (m *Method) IsStatic() bool { return m.static }

// ContainingType implements [symbols.Method].
func (m *Method) ContainingType() symbols.Type { return m.container }

// Attributes implements [symbols.Method].
func (m *Method) Attributes() []symbols.Attribute { return m.attrs }

// Locations implements [symbols.Method].
func (m *Method) Locations() []symbols.Location { return m.locs }

// Syntax returns the declaration the method was bound from.
func (m *Method) Syntax() *syntax.MethodDecl { return m.decl }

// Attribute implements [symbols.Attribute].
type Attribute struct {
	class *Type
	args  []symbols.Constant
	named []symbols.NamedArgument
	loc   symbols.Location
}

var _ symbols.Attribute = (*Attribute)(nil)

// Class implements [symbols.Attribute].
func (a *Attribute) Class() symbols.Type { return a.class }

// ConstructorArguments implements [symbols.Attribute].
func (a *Attribute) ConstructorArguments() []symbols.Constant { return a.args }

// NamedArguments implements [symbols.Attribute].
func (a *Attribute) NamedArguments() []symbols.NamedArgument { return a.named }

// Location implements [symbols.Attribute].
func (a *Attribute) Location() symbols.Location { return a.loc }

func (c *Compilation) bindMethods(s *site) {
	for _, member := range s.decl.Members {
		decl, ok := member.(*syntax.MethodDecl)
		if !ok {
			continue
		}

		ms := s.scope
		if names := typeParameterNames(decl.TypeParameterList); len(names) > 0 {
			ms = &scope{parent: s.scope, typeParams: make(map[string]*Type, len(names))}
			for _, name := range names {
				ms.typeParams[name] = c.newTypeParameter(name)
			}
		}

		m := &Method{
			name:      decl.Identifier.ValueText(),
			ret:       c.bindType(ms, decl.ReturnType),
			void:      isVoid(decl.ReturnType),
			static:    decl.HasModifier("static"),
			container: s.typ,
			decl:      decl,
			locs: []symbols.Location{
				{Pos: decl.Identifier.Pos, End: decl.Identifier.End()},
			},
		}

		for _, list := range decl.AttributeLists {
			if list.Target != nil && list.Target.ValueText() != "method" {
				continue
			}

			for _, attr := range list.Attributes {
				m.attrs = append(m.attrs, c.bindAttribute(ms, attr))
			}
		}

		c.methods = append(c.methods, m)
	}
}

func isVoid(ts *syntax.TypeSyntax) bool {
	return len(ts.Segments) == 1 && len(ts.Suffixes) == 0 && ts.Segments[0].Identifier.Is("void")
}

func (c *Compilation) bindAttribute(s *scope, attr *syntax.Attribute) *Attribute {
	a := &Attribute{
		class: c.bindAttributeClass(s, attr.Name),
		loc:   symbols.Location{Pos: attr.Pos(), End: attr.End()},
	}

	if attr.ArgumentList == nil {
		return a
	}

	for _, arg := range attr.ArgumentList.Arguments {
		value := c.constant(s, arg.Expression)

		if arg.NameEquals != nil {
			a.named = append(a.named, symbols.NamedArgument{Name: arg.NameEquals.Name.ValueText(), Value: value})
		} else {
			a.args = append(a.args, value)
		}
	}

	return a
}

// constant evaluates an attribute argument.
func (c *Compilation) constant(s *scope, e syntax.Expr) symbols.Constant {
	switch e := e.(type) {
	case *syntax.TypeOfExpr:
		t := c.bindType(s, e.Type)
		if t.kind == symbols.ErrorType {
			return symbols.Constant{Kind: symbols.ErrorConstant, Value: syntax.Text(e)}
		}

		return symbols.Constant{Kind: symbols.TypeConstant, Value: symbols.Type(t)}

	case *syntax.LiteralExpr:
		if v, ok := literal(e.Token); ok {
			return symbols.Constant{Kind: symbols.PrimitiveConstant, Value: v}
		}

	case *syntax.RawExpr:
		if v, ok := signedNumber(e.Tokens); ok {
			return symbols.Constant{Kind: symbols.PrimitiveConstant, Value: v}
		}
	}

	return symbols.Constant{Kind: symbols.ExpressionConstant, Value: syntax.Text(e)}
}

func literal(t *syntax.Token) (any, bool) {
	switch t.Kind {
	case syntax.Number:
		return number(t.Text)

	case syntax.String:
		return stringValue(t.Text)

	case syntax.Char:
		s, err := strconv.Unquote(t.Text)

		return s, err == nil

	case syntax.Keyword:
		switch t.Text {
		case "true":
			return true, true
		case "false":
			return false, true
		case "null":
			return nil, true
		}
	}

	return nil, false
}

// signedNumber evaluates a negated numeric literal such as -1.
func signedNumber(toks []*syntax.Token) (any, bool) {
	if len(toks) != 2 || !toks[0].Is("-") || toks[1].Kind != syntax.Number {
		return nil, false
	}

	switch v, ok := number(toks[1].Text); v := v.(type) {
	case int64:
		return -v, ok
	case float64:
		return -v, ok
	default:
		return nil, false
	}
}

// number parses an integer or real literal, ignoring digit separators and type suffixes.
func number(text string) (any, bool) {
	s := strings.ToLower(strings.ReplaceAll(text, "_", ""))

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0b") {
		s = strings.TrimRight(s, "ul")
		v, err := strconv.ParseInt(s, 0, 64)

		return v, err == nil
	}

	if strings.ContainsAny(s, ".e") || strings.HasSuffix(s, "f") || strings.HasSuffix(s, "d") || strings.HasSuffix(s, "m") {
		v, err := strconv.ParseFloat(strings.TrimRight(s, "fdm"), 64)

		return v, err == nil
	}

	v, err := strconv.ParseInt(strings.TrimRight(s, "ul"), 10, 64)

	return v, err == nil
}

// stringValue decodes regular and verbatim string literals.
// Interpolated and raw strings are not constants.
func stringValue(text string) (any, bool) {
	switch {
	case strings.HasPrefix(text, `@"`):
		return strings.ReplaceAll(text[2:len(text)-1], `""`, `"`), true

	case strings.HasPrefix(text, `"""`), !strings.HasPrefix(text, `"`):
		return nil, false

	default:
		s, err := strconv.Unquote(strings.ReplaceAll(text, `\'`, `'`))

		return s, err == nil
	}
}
