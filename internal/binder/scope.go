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
	"strings"

	"github.com/thammet/swaggerguard/syntax"
)

// scope is a name lookup context. Scopes form a chain from the innermost
// method or type out to the global namespace.
type scope struct {
	parent *scope

	// Namespace scopes.
	namespace   string
	isNamespace bool
	usings      []string
	aliases     map[string]*syntax.TypeSyntax
	statics     []*syntax.TypeSyntax

	// Type and method scopes.
	typ        *Type
	typeParams map[string]*Type
}

func newNamespaceScope(parent *scope, namespace string) *scope {
	return &scope{parent: parent, namespace: namespace, isNamespace: true}
}

// enter returns the scopes for a namespace declaration: one per dotted component.
func enter(parent *scope, name string) *scope {
	s := parent
	for part := range strings.SplitSeq(name, ".") {
		s = newNamespaceScope(s, qualify(s.namespace, part))
	}

	return s
}

// addUsings records the using directives among members.
func (s *scope) addUsings(members []syntax.Node, global bool) {
	for _, m := range members {
		u, ok := m.(*syntax.UsingDirective)
		if !ok || (u.Global != nil) != global {
			continue
		}

		switch {
		case u.Alias != nil:
			if s.aliases == nil {
				s.aliases = make(map[string]*syntax.TypeSyntax)
			}

			s.aliases[u.Alias.ValueText()] = u.Name

		case u.Static != nil:
			s.statics = append(s.statics, u.Name)

		default:
			s.usings = append(s.usings, namespaceName(u.Name))
		}
	}
}

func typeScope(parent *scope, t *Type) *scope {
	s := &scope{parent: parent, typ: t}

	for _, p := range t.params {
		if s.typeParams == nil {
			s.typeParams = make(map[string]*Type, len(t.params))
		}

		s.typeParams[p.name] = p
	}

	return s
}

// namespaceName joins the identifiers of a dotted name.
func namespaceName(ts *syntax.TypeSyntax) string {
	var b strings.Builder

	for i, seg := range ts.Segments {
		if i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(seg.Identifier.ValueText())
	}

	return b.String()
}

// typeParameterNames extracts the names from a type parameter list such as <in T, [A] U>.
func typeParameterNames(list *syntax.TokenList) []string {
	if list == nil {
		return nil
	}

	var (
		names []string
		depth int
	)

	for t := range syntax.Tokens(list) {
		switch {
		case t.Is("["):
			depth++
		case t.Is("]"):
			depth--
		case depth == 0 && t.Kind == syntax.Ident:
			names = append(names, t.ValueText())
		}
	}

	return names
}
