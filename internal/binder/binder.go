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

// Package binder builds the semantic model of parsed C# sources.
//
// A [Compilation] declares the source types of all documents next to the types of
// a reference [metadata.Catalog], resolves base lists and type syntax, and exposes
// the method symbols through the [symbols.Compilation] interface.
package binder

import (
	"iter"
	"maps"
	"slices"

	"github.com/thammet/swaggerguard/internal/metadata"
	"github.com/thammet/swaggerguard/symbols"
	"github.com/thammet/swaggerguard/syntax"
)

// Compilation implements [symbols.Compilation].
//
// A Compilation is immutable after [Bind] returns and safe for concurrent use.
type Compilation struct {
	types       map[string]*Type
	constructed map[string]*Type
	errors      map[string]*Type
	methods     []*Method
	sites       []*site
	ids         int
}

var _ symbols.Compilation = (*Compilation)(nil)

// site is one declaration of a source type together with its lookup scope.
type site struct {
	decl  *syntax.ClassDecl
	typ   *Type
	scope *scope // scope inside the type
}

// Bind creates the compilation of the given syntax trees against a reference catalog.
func Bind(catalog *metadata.Catalog, units ...*syntax.CompilationUnit) *Compilation {
	c := &Compilation{
		types:       make(map[string]*Type),
		constructed: make(map[string]*Type),
		errors:      make(map[string]*Type),
	}

	if catalog != nil {
		c.declareReferences(catalog)
	}

	global := newNamespaceScope(nil, "")
	for _, u := range units {
		global.addUsings(u.Members, true)
	}

	for _, u := range units {
		file := newNamespaceScope(global, "")
		file.addUsings(u.Members, false)
		c.declareMembers(file, nil, u.Members)
	}

	c.resolveBases()

	for _, s := range c.sites {
		c.bindMethods(s)
	}

	return c
}

// TypeByMetadataName implements [symbols.Compilation].
func (c *Compilation) TypeByMetadataName(name string) symbols.Type {
	if t, ok := c.types[name]; ok {
		return t
	}

	return nil
}

// Methods implements [symbols.Compilation].
func (c *Compilation) Methods() iter.Seq[symbols.Method] {
	return func(yield func(symbols.Method) bool) {
		for _, m := range c.methods {
			if !yield(m) {
				return
			}
		}
	}
}

func (c *Compilation) nextID() int {
	c.ids++

	return c.ids
}

func (c *Compilation) declareReferences(catalog *metadata.Catalog) {
	for _, ti := range catalog.Types {
		kind := symbols.Class

		switch ti.Kind {
		case metadata.Struct:
			kind = symbols.Struct
		case metadata.Interface:
			kind = symbols.Interface
		case metadata.Enum:
			kind = symbols.Enum
		}

		t := c.newDefinition(ti.Name, displayOf(ti.Name), kind, nil)
		t.baseName = ti.Base
		c.types[ti.Name] = t
	}
}

// declareMembers declares the types among members. container is nil at namespace level.
func (c *Compilation) declareMembers(s *scope, container *Type, members []syntax.Node) {
	for _, m := range members {
		switch m := m.(type) {
		case *syntax.NamespaceDecl:
			ns := enter(s, namespaceName(m.Name))
			ns.addUsings(m.Members, false)
			c.declareMembers(ns, nil, m.Members)

		case *syntax.ClassDecl:
			c.declareClass(s, container, m)

		case *syntax.MemberDecl:
			if name, ok := enumName(m); ok {
				c.declareType(s, container, name, symbols.Enum, nil)
			}
		}
	}
}

func (c *Compilation) declareClass(s *scope, container *Type, decl *syntax.ClassDecl) {
	kind := symbols.Class

	switch decl.Keywords[len(decl.Keywords)-1].Text {
	case "struct":
		kind = symbols.Struct
	case "interface":
		kind = symbols.Interface
	}

	t := c.declareType(s, container, decl.Identifier.ValueText(), kind, typeParameterNames(decl.TypeParameterList))

	inner := typeScope(s, t)
	st := &site{decl: decl, typ: t, scope: inner}
	t.sites = append(t.sites, st)
	c.sites = append(c.sites, st)

	c.declareMembers(inner, t, decl.Members)
}

// declareType creates or, for partial declarations, reuses a source type definition.
func (c *Compilation) declareType(s *scope, container *Type, name string, kind symbols.TypeKind, params []string) *Type {
	var metadataName, plain string

	if container != nil {
		metadataName = container.metadata + "+" + arityName(name, len(params))
		plain = container.display + "." + name
	} else {
		metadataName = qualify(s.namespace, arityName(name, len(params)))
		plain = qualify(s.namespace, name)
	}

	if t, ok := c.types[metadataName]; ok && len(t.sites) > 0 {
		return t
	}

	t := c.newDefinition(metadataName, plain, kind, params)
	c.types[metadataName] = t

	return t
}

// enumName finds the name of an enum declaration kept as an opaque member.
func enumName(m *syntax.MemberDecl) (string, bool) {
	depth := 0

	for i, t := range m.Tokens {
		switch {
		case t.Is("[") || t.Is("("):
			depth++
		case t.Is("]") || t.Is(")"):
			depth--
		case t.Is("{") || t.Is(";") || t.Is("="):
			return "", false
		case depth == 0 && t.Is("enum") && i+1 < len(m.Tokens) && m.Tokens[i+1].Kind == syntax.Ident:
			return m.Tokens[i+1].ValueText(), true
		}
	}

	return "", false
}

// resolveBases assigns base types. An assignment that would close a cycle is dropped.
func (c *Compilation) resolveBases() {
	object := c.types["System.Object"]

	names := slices.Sorted(maps.Keys(c.types))

	for _, name := range names {
		if t := c.types[name]; len(t.sites) == 0 && t.baseName != "" {
			c.setBase(t, c.types[t.baseName])
		}
	}

	for _, s := range c.sites {
		t := s.typ
		if t.base != nil {
			continue // partial declaration already resolved
		}

		switch t.kind {
		case symbols.Interface:
			continue

		case symbols.Struct:
			c.setBase(t, c.types["System.ValueType"])

			continue

		case symbols.Enum:
			c.setBase(t, c.types["System.Enum"])

			continue
		}

		var base *Type

		for _, other := range t.sites {
			if other.decl.BaseList == nil || len(other.decl.BaseList.Types) == 0 {
				continue
			}

			b := c.bindType(other.scope, other.decl.BaseList.Types[0])
			if b.kind == symbols.Class || b.kind == symbols.ErrorType {
				base = b
			}

			break
		}

		if (base == nil || base.derives(t)) && t != object {
			base = object
		}

		c.setBase(t, base)
	}

	// Enums declared in source have no sites.
	for _, name := range names {
		if t := c.types[name]; t.kind == symbols.Enum && t.base == nil && t.baseName == "" {
			c.setBase(t, c.types["System.Enum"])
		}
	}
}

func (c *Compilation) setBase(t, base *Type) {
	if base == nil || base.derives(t) {
		return
	}

	t.base = base
}
