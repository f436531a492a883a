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

// Package classify decides whether a method is a controller action and whether its
// response-type annotations match its return type.
//
// A method is in scope when it returns a value, carries an attribute derived from
// the route attribute base and is declared on a type derived from the controller
// base. In-scope methods violate the rule unless one of their response-type
// annotations declares a payload type whose display string equals the normalized
// return type.
package classify

import (
	"strings"

	"github.com/thammet/swaggerguard/internal/config"
	"github.com/thammet/swaggerguard/symbols"
)

// Classifier evaluates methods of one compilation.
//
// A Classifier holds no mutable state and is safe for concurrent use.
type Classifier struct {
	route        symbols.Type
	controller   symbols.Type
	responseType symbols.Type
	asyncWrapper symbols.Type
	names        config.Names
}

// New resolves the well-known types in comp. Names that cannot be resolved
// match nothing.
func New(comp symbols.Compilation, names config.Names) *Classifier {
	return &Classifier{
		route:        comp.TypeByMetadataName(names.RouteAttribute),
		controller:   comp.TypeByMetadataName(names.Controller),
		responseType: comp.TypeByMetadataName(names.ResponseTypeAttribute),
		asyncWrapper: comp.TypeByMetadataName(names.AsyncWrapper),
		names:        names,
	}
}

// Result is the classification of one method.
type Result struct {
	// InScope reports whether the method is a controller action.
	InScope bool

	// Violation reports whether no response-type annotation matches the return type.
	Violation bool

	// Malformed lists response-type annotations without a payload type.
	Malformed []symbols.Attribute
}

// Evaluate classifies m. Annotations are only inspected for methods in scope.
func (c *Classifier) Evaluate(m symbols.Method) Result {
	if !c.IsInScope(m) {
		return Result{}
	}

	annotations := c.annotations(m)
	if len(annotations) == 0 {
		return Result{InScope: true, Violation: true}
	}

	expected := c.Normalize(m.ReturnType().String())

	r := Result{InScope: true, Violation: true}

	for _, a := range annotations {
		declared, ok := SwaggerType(a)
		if !ok {
			r.Malformed = append(r.Malformed, a)

			continue
		}

		if declared == expected {
			r.Violation = false
		}
	}

	return r
}

// IsInScope reports whether m is a controller action with an observable return value.
func (c *Classifier) IsInScope(m symbols.Method) bool {
	if m.ReturnsVoid() || symbols.Identical(m.ReturnType(), c.asyncWrapper) {
		return false
	}

	routed := false

	for _, a := range m.Attributes() {
		if derivesFrom(a.Class(), c.route) {
			routed = true

			break
		}
	}

	return routed && derivesFrom(m.ContainingType(), c.controller)
}

// Violation reports whether m is in scope and none of its response-type annotations
// match its return type.
func (c *Classifier) Violation(m symbols.Method) bool {
	return c.Evaluate(m).Violation
}

// annotations returns the attributes whose class is identical to the response-type attribute.
func (c *Classifier) annotations(m symbols.Method) []symbols.Attribute {
	var as []symbols.Attribute

	for _, a := range m.Attributes() {
		if symbols.Identical(a.Class(), c.responseType) {
			as = append(as, a)
		}
	}

	return as
}

// Normalize strips one layer of asynchronous wrapping, first in its short and then in
// its fully qualified form: "Task<Foo>" and "System.Threading.Tasks.Task<Foo>" both become "Foo".
func (c *Classifier) Normalize(name string) string {
	return Normalize(name, c.names.AsyncWrapperShort, c.names.AsyncWrapper)
}

// Normalize strips "<short><" and then "<full><" from name, each time dropping the
// final character as the matching closing bracket.
func Normalize(name, short, full string) string {
	for _, prefix := range [...]string{short, full} {
		if prefix == "" {
			continue
		}

		if p := prefix + "<"; len(name) > len(p) && strings.HasPrefix(name, p) {
			name = name[len(p) : len(name)-1]
		}
	}

	return name
}

// SwaggerType extracts the declared payload type of a response-type annotation:
// the first type-valued positional argument, else the type-valued named argument Type.
func SwaggerType(a symbols.Attribute) (string, bool) {
	for _, arg := range a.ConstructorArguments() {
		if t, ok := arg.Type(); ok {
			return t.String(), true
		}
	}

	for _, arg := range a.NamedArguments() {
		if arg.Name != "Type" {
			continue
		}

		if t, ok := arg.Value.Type(); ok {
			return t.String(), true
		}
	}

	return "", false
}

// derivesFrom walks the base chain of t and reports whether it reaches target.
// A nil target never matches.
func derivesFrom(t, target symbols.Type) bool {
	if target == nil {
		return false
	}

	for ; t != nil; t = t.BaseType() {
		if symbols.Identical(t, target) {
			return true
		}
	}

	return false
}
