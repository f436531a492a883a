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

package classify_test

import (
	"iter"
	"maps"

	"github.com/thammet/swaggerguard/symbols"
)

type fakeType struct {
	name    string
	display string
	base    *fakeType
}

func (t *fakeType) Name() string { return t.name }

func (t *fakeType) String() string {
	if t.display != "" {
		return t.display
	}

	return t.name
}

func (t *fakeType) Kind() symbols.TypeKind { return symbols.Class }

func (t *fakeType) BaseType() symbols.Type {
	if t.base == nil {
		return nil
	}

	return t.base
}

type fakeAttribute struct {
	class symbols.Type
	args  []symbols.Constant
	named []symbols.NamedArgument
}

func (a *fakeAttribute) Class() symbols.Type                      { return a.class }
func (a *fakeAttribute) ConstructorArguments() []symbols.Constant { return a.args }
func (a *fakeAttribute) NamedArguments() []symbols.NamedArgument  { return a.named }
func (a *fakeAttribute) Location() symbols.Location               { return symbols.Location{} }

type fakeMethod struct {
	name      string
	ret       symbols.Type
	void      bool
	container symbols.Type
	attrs     []symbols.Attribute
}

func (m *fakeMethod) Name() string                    { return m.name }
func (m *fakeMethod) ReturnType() symbols.Type        { return m.ret }
func (m *fakeMethod) ReturnsVoid() bool               { return m.void }
func (m *fakeMethod) IsStatic() bool                  { return false }
func (m *fakeMethod) ContainingType() symbols.Type    { return m.container }
func (m *fakeMethod) Attributes() []symbols.Attribute { return m.attrs }
func (m *fakeMethod) Locations() []symbols.Location   { return nil }

type fakeCompilation map[string]*fakeType

func (c fakeCompilation) TypeByMetadataName(name string) symbols.Type {
	if t, ok := c[name]; ok {
		return t
	}

	return nil
}

func (c fakeCompilation) Methods() iter.Seq[symbols.Method] {
	return func(func(symbols.Method) bool) {}
}

// world is a small ASP.NET Core-like type universe.
type world struct {
	comp fakeCompilation

	object, attribute, route, httpGet, controllerBase, controller *fakeType
	responseType, task, widget, other, apiBase, widgets, unrelated *fakeType
}

func newWorld() *world {
	w := &world{}

	w.object = &fakeType{name: "object"}
	w.attribute = &fakeType{name: "Attribute", display: "System.Attribute", base: w.object}
	w.route = &fakeType{name: "HttpMethodAttribute", base: w.attribute}
	w.httpGet = &fakeType{name: "HttpGetAttribute", base: w.route}
	w.controllerBase = &fakeType{name: "ControllerBase", base: w.object}
	w.controller = &fakeType{name: "Controller", base: w.controllerBase}
	w.responseType = &fakeType{name: "ProducesResponseTypeAttribute", base: w.attribute}
	w.task = &fakeType{name: "Task", display: "System.Threading.Tasks.Task", base: w.object}
	w.widget = &fakeType{name: "Widget", display: "Shop.Widget", base: w.object}
	w.other = &fakeType{name: "OtherType", display: "Shop.OtherType", base: w.object}
	w.apiBase = &fakeType{name: "ApiBase", base: w.controller}
	w.widgets = &fakeType{name: "WidgetsController", base: w.apiBase}
	w.unrelated = &fakeType{name: "X", base: w.object}

	w.comp = fakeCompilation{
		"Microsoft.AspNetCore.Mvc.Routing.HttpMethodAttribute":   w.route,
		"Microsoft.AspNetCore.Mvc.Controller":                    w.controller,
		"Microsoft.AspNetCore.Mvc.ProducesResponseTypeAttribute": w.responseType,
		"System.Threading.Tasks.Task":                            w.task,
	}

	return w
}

func (w *world) without(names ...string) fakeCompilation {
	c := maps.Clone(w.comp)
	for _, name := range names {
		delete(c, name)
	}

	return c
}

func generic(def *fakeType, arg symbols.Type) *fakeType {
	return &fakeType{name: def.name, display: def.String() + "<" + arg.String() + ">", base: def}
}

func typeOf(t symbols.Type) symbols.Constant {
	return symbols.Constant{Kind: symbols.TypeConstant, Value: t}
}

func status(code int64) symbols.Constant {
	return symbols.Constant{Kind: symbols.PrimitiveConstant, Value: code}
}
