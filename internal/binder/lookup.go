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
	"slices"

	"github.com/thammet/swaggerguard/internal/parser"
	"github.com/thammet/swaggerguard/syntax"
)

// bindType resolves type syntax in scope s. Names that cannot be resolved yield an error type.
func (c *Compilation) bindType(s *scope, ts *syntax.TypeSyntax) *Type {
	t := c.resolve(s, ts, "")
	if t == nil {
		return c.errorType(syntax.Text(ts))
	}

	return c.applySuffixes(t, ts)
}

// bindAttributeClass resolves an attribute name, preferring the name with an "Attribute" suffix.
func (c *Compilation) bindAttributeClass(s *scope, ts *syntax.TypeSyntax) *Type {
	if t := c.resolve(s, ts, "Attribute"); t != nil {
		return t
	}

	if t := c.resolve(s, ts, ""); t != nil {
		return t
	}

	return c.errorType(syntax.Text(ts))
}

func (c *Compilation) applySuffixes(t *Type, ts *syntax.TypeSyntax) *Type {
	for i := 0; i < len(ts.Suffixes); i++ {
		switch tok := ts.Suffixes[i]; {
		case tok.Is("?"):
			t = c.nullable(t)

		case tok.Is("["):
			rank := 1
			for i++; i < len(ts.Suffixes) && ts.Suffixes[i].Is(","); i++ {
				rank++
			}

			t = c.array(t, rank)

		default:
			return c.errorType(syntax.Text(ts))
		}
	}

	return t
}

// segment is a name component with its bound type arguments.
type segment struct {
	name  string
	arity int
	args  []*Type // nil for unbound generic names such as List<>
}

func (c *Compilation) segments(s *scope, ts *syntax.TypeSyntax, suffix string) []segment {
	segs := make([]segment, len(ts.Segments))

	for i, ns := range ts.Segments {
		seg := segment{name: ns.Identifier.ValueText()}

		if a := ns.TypeArgs; a != nil {
			if len(a.Args) == 0 {
				seg.arity = len(a.Commas) + 1
			} else {
				seg.arity = len(a.Args)
				for _, arg := range a.Args {
					seg.args = append(seg.args, c.bindType(s, arg))
				}
			}
		}

		segs[i] = seg
	}

	segs[len(segs)-1].name += suffix

	return segs
}

// resolve looks up the type named by ts, without suffixes. It returns nil when the name is unknown.
func (c *Compilation) resolve(s *scope, ts *syntax.TypeSyntax, suffix string) *Type {
	if ts.Tuple != nil && suffix == "" {
		return c.tuple(s, ts.Tuple)
	}

	if len(ts.Segments) == 0 {
		return nil
	}

	if first := ts.Segments[0].Identifier; first.Kind == syntax.Keyword {
		if suffix != "" {
			return nil
		}

		return c.types[parser.PredefinedTypes[first.Text]]
	}

	segs := c.segments(s, ts, suffix)

	if ts.Global != nil {
		return c.qualified("", segs)
	}

	if t := c.lookup(s, segs[0]); t != nil {
		return c.nested(t, segs[1:])
	}

	if len(segs) == 1 {
		return nil
	}

	for sc := s; sc != nil; sc = sc.parent {
		if !sc.isNamespace {
			continue
		}

		if target, ok := sc.aliases[segs[0].name]; ok && segs[0].arity == 0 {
			return c.qualified(namespaceName(target), segs[1:])
		}

		if t := c.qualified(sc.namespace, segs); t != nil {
			return t
		}
	}

	return nil
}

// tuple binds a tuple type to the System.ValueTuple with its element types.
// Element names are not part of the type.
func (c *Compilation) tuple(s *scope, tt *syntax.TupleType) *Type {
	elems := make([]*Type, len(tt.Elements))
	for i, e := range tt.Elements {
		elems[i] = c.bindType(s, e.Type)
	}

	return c.valueTuple(elems)
}

// valueTuple constructs System.ValueTuple over elems, nesting the elements past the
// seventh in the TRest argument. It returns nil without the ValueTuple definitions.
func (c *Compilation) valueTuple(elems []*Type) *Type {
	args := elems

	if len(elems) > tupleRest {
		rest := c.valueTuple(elems[tupleRest:])
		if rest == nil {
			return nil
		}

		args = append(slices.Clip(elems[:tupleRest]), rest)
	}

	def, ok := c.types[arityName(valueTupleName, len(args))]
	if !ok {
		return nil
	}

	return c.construct(def, args)
}

// lookup resolves a simple name by walking the scope chain outwards.
func (c *Compilation) lookup(s *scope, seg segment) *Type {
	name := arityName(seg.name, seg.arity)

	for sc := s; sc != nil; sc = sc.parent {
		if p, ok := sc.typeParams[seg.name]; ok && seg.arity == 0 {
			return p
		}

		if sc.typ != nil {
			if t := c.memberType(sc.typ, name); t != nil {
				return c.instantiate(t, seg)
			}
		}

		if !sc.isNamespace {
			continue
		}

		if t, ok := c.types[qualify(sc.namespace, name)]; ok {
			return c.instantiate(t, seg)
		}

		if target, ok := sc.aliases[seg.name]; ok && seg.arity == 0 {
			if t := c.resolve(sc.parent, target, ""); t != nil {
				return t
			}
		}

		for _, u := range sc.usings {
			if t, ok := c.types[qualify(u, name)]; ok {
				return c.instantiate(t, seg)
			}
		}

		for _, st := range sc.statics {
			if container := c.resolve(sc.parent, st, ""); container != nil {
				if t := c.memberType(container, name); t != nil {
					return c.instantiate(t, seg)
				}
			}
		}
	}

	return nil
}

// qualified resolves a dotted name relative to namespace. The longest namespace prefix
// naming a type wins; the remaining segments are nested types.
func (c *Compilation) qualified(namespace string, segs []segment) *Type {
	for i := len(segs); i > 0; i-- {
		ns, ok := namespace, true

		for _, seg := range segs[:i-1] {
			if seg.arity > 0 {
				ok = false

				break
			}

			ns = qualify(ns, seg.name)
		}

		if !ok {
			continue
		}

		last := segs[i-1]
		if t, found := c.types[qualify(ns, arityName(last.name, last.arity))]; found {
			return c.nested(c.instantiate(t, last), segs[i:])
		}
	}

	return nil
}

// nested resolves the remaining segments as types nested in t.
func (c *Compilation) nested(t *Type, segs []segment) *Type {
	for _, seg := range segs {
		if t == nil {
			return nil
		}

		inner := c.memberType(t, arityName(seg.name, seg.arity))
		if inner == nil {
			return nil
		}

		t = c.instantiate(inner, seg)
	}

	return t
}

// memberType finds a type nested in t or inherited from one of its base types.
func (c *Compilation) memberType(t *Type, name string) *Type {
	for b := t; b != nil; b = b.baseType() {
		def := b
		if def.def != nil {
			def = def.def
		}

		if def.metadata == "" {
			continue
		}

		if inner, ok := c.types[def.metadata+"+"+name]; ok {
			return inner
		}
	}

	return nil
}

func (c *Compilation) instantiate(def *Type, seg segment) *Type {
	if seg.args == nil {
		return def
	}

	return c.construct(def, seg.args)
}
