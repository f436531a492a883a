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

package symbols

import (
	"fmt"
	"go/token"
	"iter"
	"strconv"
)

// TypeKind classifies a [Type].
type TypeKind uint8

const (
	// Class is a reference type declared with class or record.
	Class TypeKind = iota

	// Struct is a value type.
	Struct

	// Interface is an interface type.
	Interface

	// Enum is an enumeration type.
	Enum

	// Array is a single or multi-dimensional array.
	Array

	// TypeParameter is a generic type parameter.
	TypeParameter

	// ErrorType is a type the host could not resolve.
	ErrorType
)

// Type is the semantic view of a type.
//
// Implementations must be comparable, since type identity is decided with ==.
type Type interface {
	// Name is the simple name of the type, without namespace or type arguments.
	Name() string

	// String returns the display form, fully qualified with type arguments, e.g.
	// "System.Threading.Tasks.Task<Shop.Widget>".
	String() string

	// Kind classifies the type.
	Kind() TypeKind

	// BaseType returns the direct base type, or nil at the root of the chain.
	BaseType() Type
}

// Identical reports whether a and b denote the same type.
// A nil type never matches, not even another nil type.
func Identical(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}

	return a == b
}

// ConstantKind tags the payload of a [Constant].
type ConstantKind uint8

const (
	// PrimitiveConstant is a literal: number, string, character, boolean or null.
	PrimitiveConstant ConstantKind = iota

	// TypeConstant is a type reference, as produced by typeof(T).
	TypeConstant

	// ExpressionConstant is an expression the host did not evaluate; the value is its source text.
	ExpressionConstant

	// ErrorConstant is an argument that could not be bound.
	ErrorConstant
)

// Constant is a typed attribute argument value.
type Constant struct {
	Kind  ConstantKind
	Value any
}

// Type returns the type payload of a [TypeConstant].
func (c Constant) Type() (Type, bool) {
	if c.Kind != TypeConstant {
		return nil, false
	}

	t, ok := c.Value.(Type)

	return t, ok && t != nil
}

// String renders the payload the way the host would display it.
func (c Constant) String() string {
	switch v := c.Value.(type) {
	case nil:
		return "null"

	case string:
		return v

	case bool:
		return strconv.FormatBool(v)

	case fmt.Stringer:
		return v.String()

	default:
		return fmt.Sprint(v)
	}
}

// NamedArgument is an attribute argument assigned by name, as in Type = typeof(T).
type NamedArgument struct {
	Name  string
	Value Constant
}

// Location is a source range in a [token.FileSet].
type Location struct {
	Pos, End token.Pos
}

// IsValid reports whether the location refers to source.
func (l Location) IsValid() bool {
	return l.Pos.IsValid()
}

// Attribute is an attribute instance attached to a symbol.
type Attribute interface {
	// Class is the attribute's declared type.
	Class() Type

	// ConstructorArguments returns the positional arguments in source order.
	ConstructorArguments() []Constant

	// NamedArguments returns the property assignments in source order.
	NamedArguments() []NamedArgument

	// Location is the attribute's source range.
	Location() Location
}

// Method is the semantic view of a method.
type Method interface {
	Name() string

	// ReturnType is the resolved return type. It is the void type when ReturnsVoid is true.
	ReturnType() Type

	ReturnsVoid() bool

	// IsStatic reports whether the method is declared static.
	IsStatic() bool

	// ContainingType is the type declaring the method.
	ContainingType() Type

	// Attributes returns the attributes applied to the method itself, excluding return-targeted ones.
	Attributes() []Attribute

	// Locations returns the method's source locations, the identifier first.
	Locations() []Location
}

// Compilation is the read-only symbol graph of one compilation.
type Compilation interface {
	// TypeByMetadataName looks up a type by its fully qualified metadata name,
	// e.g. "System.Threading.Tasks.Task" or "System.Collections.Generic.List`1".
	// It returns nil when the name cannot be resolved.
	TypeByMetadataName(name string) Type

	// Methods yields all method symbols declared in source.
	Methods() iter.Seq[Method]
}
