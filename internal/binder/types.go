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
	"strconv"
	"strings"

	"github.com/thammet/swaggerguard/symbols"
)

// keywords maps special types to the keyword they are displayed with.
var keywords = map[string]string{
	"System.Boolean": "bool", "System.Byte": "byte", "System.SByte": "sbyte",
	"System.Char": "char", "System.Decimal": "decimal", "System.Double": "double",
	"System.Single": "float", "System.Int32": "int", "System.UInt32": "uint",
	"System.Int64": "long", "System.UInt64": "ulong", "System.Int16": "short",
	"System.UInt16": "ushort", "System.Object": "object", "System.String": "string",
	"System.Void": "void",
}

const (
	nullableName   = "System.Nullable`1"
	valueTupleName = "System.ValueTuple"

	// tupleRest is the number of elements a ValueTuple holds before TRest.
	tupleRest = 7
)

// Type implements [symbols.Type].
//
// Types are interned per compilation, so pointer identity is type identity.
type Type struct {
	id   int
	name string
	kind symbols.TypeKind

	// metadata is the metadata name of a definition, empty for all other types.
	metadata string

	// plain is the qualified display name without type arguments.
	plain   string
	display string

	arity  int
	params []*Type

	base     *Type
	baseName string // base metadata name of a referenced type

	def  *Type // generic definition of a constructed type
	args []*Type

	elem *Type // element type of an array
	rank int

	sites []*site // source declarations, more than one for partial types
}

var _ symbols.Type = (*Type)(nil)

// Name implements [symbols.Type].
func (t *Type) Name() string { return t.name }

// String implements [symbols.Type].
func (t *Type) String() string { return t.display }

// Kind implements [symbols.Type].
func (t *Type) Kind() symbols.TypeKind { return t.kind }

// BaseType implements [symbols.Type].
func (t *Type) BaseType() symbols.Type {
	if b := t.baseType(); b != nil {
		return b
	}

	return nil
}

// MetadataName returns the metadata name of a type definition.
func (t *Type) MetadataName() string { return t.metadata }

func (t *Type) baseType() *Type {
	if t.def != nil {
		return t.def.base
	}

	return t.base
}

// derives reports whether walking the base chain of t reaches target.
func (t *Type) derives(target *Type) bool {
	for c := t; c != nil; c = c.baseType() {
		if c == target {
			return true
		}
	}

	return false
}

func (t *Type) isValueType() bool {
	return t.kind == symbols.Struct || t.kind == symbols.Enum
}

// arityName appends the generic arity suffix used in metadata names.
func arityName(name string, arity int) string {
	if arity == 0 {
		return name
	}

	return name + "`" + strconv.Itoa(arity)
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}

	return namespace + "." + name
}

// displayOf renders a metadata name: nested types joined with '.', arity suffixes removed.
func displayOf(metadata string) string {
	parts := strings.Split(metadata, "+")
	for i, p := range parts {
		if j := strings.LastIndexByte(p, '`'); j >= 0 {
			parts[i] = p[:j]
		}
	}

	return strings.Join(parts, ".")
}

// simpleName returns the unqualified name of a metadata name without its arity.
func simpleName(metadata string) string {
	name := metadata
	if i := strings.LastIndexAny(name, ".+"); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.LastIndexByte(name, '`'); i >= 0 {
		name = name[:i]
	}

	return name
}

func withArguments(plain string, args []*Type) string {
	return plain + "<" + joinDisplay(args) + ">"
}

func joinDisplay(ts []*Type) string {
	var b strings.Builder

	for i, t := range ts {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(t.display)
	}

	return b.String()
}

// tupleElements flattens the arguments of a constructed ValueTuple, following TRest.
// It returns nil for other types.
func tupleElements(def *Type, args []*Type) []*Type {
	if !strings.HasPrefix(def.metadata, valueTupleName+"`") {
		return nil
	}

	if len(args) <= tupleRest {
		return args
	}

	rest := args[tupleRest]
	if rest.def == nil {
		return nil
	}

	more := tupleElements(rest.def, rest.args)
	if more == nil {
		return nil
	}

	return append(slices.Clip(args[:tupleRest]), more...)
}

// newDefinition creates a type definition. Generic parameters without known names are numbered.
func (c *Compilation) newDefinition(metadata, plain string, kind symbols.TypeKind, params []string) *Type {
	t := &Type{
		id:       c.nextID(),
		name:     simpleName(metadata),
		kind:     kind,
		metadata: metadata,
		plain:    plain,
	}

	t.arity = len(params)
	if i := strings.LastIndexByte(metadata, '`'); i >= 0 && !strings.Contains(metadata[i:], "+") {
		if n, err := strconv.Atoi(metadata[i+1:]); err == nil && n > len(params) {
			t.arity = n
		}
	}

	for i := range t.arity {
		name := "T"
		if i < len(params) {
			name = params[i]
		} else if t.arity > 1 {
			name += strconv.Itoa(i + 1)
		}

		t.params = append(t.params, c.newTypeParameter(name))
	}

	switch {
	case t.arity > 0:
		t.display = withArguments(plain, t.params)

	case keywords[metadata] != "":
		t.display = keywords[metadata]

	default:
		t.display = plain
	}

	return t
}

func (c *Compilation) newTypeParameter(name string) *Type {
	return &Type{id: c.nextID(), name: name, kind: symbols.TypeParameter, display: name}
}

// errorType returns the type standing in for a name that could not be resolved.
func (c *Compilation) errorType(text string) *Type {
	if t, ok := c.errors[text]; ok {
		return t
	}

	name := text
	if i := strings.LastIndexAny(name, ".:"); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}

	t := &Type{id: c.nextID(), name: name, kind: symbols.ErrorType, display: text}
	c.errors[text] = t

	return t
}

// construct instantiates a generic definition.
func (c *Compilation) construct(def *Type, args []*Type) *Type {
	var key strings.Builder

	key.WriteString(strconv.Itoa(def.id))

	for _, a := range args {
		key.WriteByte(',')
		key.WriteString(strconv.Itoa(a.id))
	}

	if t, ok := c.constructed[key.String()]; ok {
		return t
	}

	t := &Type{
		id:    c.nextID(),
		name:  def.name,
		kind:  def.kind,
		plain: def.plain,
		def:   def,
		args:  args,
	}

	switch elems := tupleElements(def, args); {
	case def.metadata == nullableName && len(args) == 1:
		t.display = args[0].display + "?"

	case len(elems) > 1:
		t.display = "(" + joinDisplay(elems) + ")"

	default:
		t.display = withArguments(def.plain, args)
	}

	c.constructed[key.String()] = t

	return t
}

// array returns the array type with the given element type and rank.
func (c *Compilation) array(elem *Type, rank int) *Type {
	key := "[" + strconv.Itoa(elem.id) + "," + strconv.Itoa(rank)
	if t, ok := c.constructed[key]; ok {
		return t
	}

	t := &Type{
		id:      c.nextID(),
		kind:    symbols.Array,
		display: elem.display + "[" + strings.Repeat(",", rank-1) + "]",
		base:    c.types["System.Array"],
		elem:    elem,
		rank:    rank,
	}

	c.constructed[key] = t

	return t
}

// nullable returns T? for value types. Nullable reference annotations do not change the type.
func (c *Compilation) nullable(t *Type) *Type {
	def, ok := c.types[nullableName]
	if !ok || !t.isValueType() {
		return t
	}

	return c.construct(def, []*Type{t})
}
