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

package binder_test

import (
	"go/token"
	"testing"

	. "github.com/thammet/swaggerguard/internal/binder"
	"github.com/thammet/swaggerguard/internal/metadata"
	"github.com/thammet/swaggerguard/internal/parser"
	"github.com/thammet/swaggerguard/symbols"
	"github.com/thammet/swaggerguard/syntax"
)

func bind(tb testing.TB, srcs ...string) *Compilation {
	tb.Helper()

	catalog, err := metadata.Default()
	if err != nil {
		tb.Fatalf("Can't load default catalog: %v", err)
	}

	fset := token.NewFileSet()

	units := make([]*syntax.CompilationUnit, 0, len(srcs))
	for _, src := range srcs {
		file := fset.AddFile("test.cs", -1, len(src))

		cu, err := parser.ParseFile(file, src)
		if err != nil {
			tb.Fatalf("Failed to parse source %q: %v", src, err)
		}

		units = append(units, cu)
	}

	return Bind(catalog, units...)
}

func method(tb testing.TB, c *Compilation, name string) symbols.Method {
	tb.Helper()

	for m := range c.Methods() {
		if m.Name() == name {
			return m
		}
	}

	tb.Fatalf("Method %s not found", name)

	return nil
}

func TestReturnTypeDisplay(t *testing.T) {
	t.Parallel()

	const src = `using System.Threading.Tasks;
using System.Collections.Generic;
using Mvc = Microsoft.AspNetCore.Mvc;

namespace Shop.Api
{
    public class Widget { public class Part { } }

    public enum Color { Red }

    public class C<TItem>
    {
        public Task<Widget> A() => null;
        public System.Threading.Tasks.Task<List<int>> B() => null;
        public int? C1() => null;
        public Widget[] D() => null;
        public string[,] E() => null;
        public Task F() => null;
        public void G() { }
        public Widget.Part H() => null;
        public Missing I() => null;
        public TItem J() => default;
        public T K<T>() => default;
        public Mvc.IActionResult L() => null;
        public global::Shop.Api.Widget M() => null;
        public Dictionary<string, Color?> N() => null;
        public Task<Widget?> O() => null;
        public Task<(int, string)> P() => null;
        public (int Count, Widget Item)? Q() => null;
        public (int, int, int, int, int, int, int, string) R() => default;
        public System.ValueTuple<int, Widget> S() => default;
        public (Missing, int[]) T1() => default;
        public (int Id, Widget Part) U() => default;
    }
}
`

	c := bind(t, src)

	tests := [...]struct {
		method string
		want   string
		kind   symbols.TypeKind
	}{
		{"A", "System.Threading.Tasks.Task<Shop.Api.Widget>", symbols.Class},
		{"B", "System.Threading.Tasks.Task<System.Collections.Generic.List<int>>", symbols.Class},
		{"C1", "int?", symbols.Struct},
		{"D", "Shop.Api.Widget[]", symbols.Array},
		{"E", "string[,]", symbols.Array},
		{"F", "System.Threading.Tasks.Task", symbols.Class},
		{"G", "void", symbols.Struct},
		{"H", "Shop.Api.Widget.Part", symbols.Class},
		{"I", "Missing", symbols.ErrorType},
		{"J", "TItem", symbols.TypeParameter},
		{"K", "T", symbols.TypeParameter},
		{"L", "Microsoft.AspNetCore.Mvc.IActionResult", symbols.Interface},
		{"M", "Shop.Api.Widget", symbols.Class},
		{"N", "System.Collections.Generic.Dictionary<string, Shop.Api.Color?>", symbols.Class},
		{"O", "System.Threading.Tasks.Task<Shop.Api.Widget>", symbols.Class},
		{"P", "System.Threading.Tasks.Task<(int, string)>", symbols.Class},
		{"Q", "(int, Shop.Api.Widget)?", symbols.Struct},
		{"R", "(int, int, int, int, int, int, int, string)", symbols.Struct},
		{"S", "(int, Shop.Api.Widget)", symbols.Struct},
		{"T1", "(Missing, int[])", symbols.Struct},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			ret := method(t, c, tt.method).ReturnType()

			if got := ret.String(); got != tt.want {
				t.Errorf("ReturnType() = %q, want %q", got, tt.want)
			}

			if got := ret.Kind(); got != tt.kind {
				t.Errorf("Kind() = %d, want %d", got, tt.kind)
			}
		})
	}

	if !method(t, c, "G").ReturnsVoid() {
		t.Error("G does not return void")
	}

	if a, o := method(t, c, "A").ReturnType(), method(t, c, "O").ReturnType(); a != o {
		t.Error("Task<Widget> and Task<Widget?> are not identical")
	}

	if s, u := method(t, c, "S").ReturnType(), method(t, c, "U").ReturnType(); s != u {
		t.Error("ValueTuple<int, Widget> and (int Id, Widget Part) are not identical")
	}
}

func TestBaseTypes(t *testing.T) {
	t.Parallel()

	const src = `using Microsoft.AspNetCore.Mvc;

namespace Shop
{
    public class A : B, IDisposable { }
    public partial class B : ApiBase { }
    public partial class B { }
    public abstract class ApiBase : Controller { }
    public class X : IDisposable { }
    public struct S { }
    public interface IDisposable { }
    public class Loop1 : Loop2 { }
    public class Loop2 : Loop1 { }
}
`

	c := bind(t, src)

	chain := func(name string) []string {
		var names []string

		for t := c.TypeByMetadataName(name); t != nil; t = t.BaseType() {
			names = append(names, t.String())
		}

		return names
	}

	tests := [...]struct {
		name string
		want []string
	}{
		{"Shop.A", []string{"Shop.A", "Shop.B", "Shop.ApiBase", "Microsoft.AspNetCore.Mvc.Controller", "Microsoft.AspNetCore.Mvc.ControllerBase", "object"}},
		{"Shop.X", []string{"Shop.X", "object"}},
		{"Shop.S", []string{"Shop.S", "System.ValueType", "object"}},
		{"Shop.IDisposable", []string{"Shop.IDisposable"}},
		{"Shop.Loop1", []string{"Shop.Loop1", "Shop.Loop2", "object"}},
	}

	for _, tt := range tests {
		got := chain(tt.name)
		if len(got) != len(tt.want) {
			t.Errorf("Base chain of %s = %v, want %v", tt.name, got, tt.want)

			continue
		}

		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Base chain of %s = %v, want %v", tt.name, got, tt.want)

				break
			}
		}
	}

	if got := c.TypeByMetadataName("Shop.Unknown"); got != nil {
		t.Errorf("TypeByMetadataName() = %v, want nil", got)
	}
}

func TestAttributes(t *testing.T) {
	t.Parallel()

	const src = `using Microsoft.AspNetCore.Mvc;
using Microsoft.AspNetCore.Http;

namespace Shop;

public class Widget { }

public class WidgetsController : Controller
{
    [HttpGet("{id}")]
    [ProducesResponseType(StatusCodes.Status200OK, Type = typeof(Widget))]
    [ProducesResponseTypeAttribute(typeof(Widget), 200)]
    [return: Produces("application/json")]
    [Unknown(-1, "a\tb", @"c""d", 'x', 2.5, true, null)]
    public Widget Get(int id) => null;
}
`

	c := bind(t, src)
	m := method(t, c, "Get")

	attrs := m.Attributes()
	if len(attrs) != 4 {
		t.Fatalf("Got %d attributes, want 4", len(attrs))
	}

	classes := [...]string{
		"Microsoft.AspNetCore.Mvc.HttpGetAttribute",
		"Microsoft.AspNetCore.Mvc.ProducesResponseTypeAttribute",
		"Microsoft.AspNetCore.Mvc.ProducesResponseTypeAttribute",
		"Unknown",
	}

	for i, want := range classes {
		if got := attrs[i].Class().String(); got != want {
			t.Errorf("Attribute %d class = %q, want %q", i, got, want)
		}
	}

	if attrs[1].Class() != attrs[2].Class() {
		t.Error("Attribute classes are not identical")
	}

	if got := attrs[3].Class().Kind(); got != symbols.ErrorType {
		t.Errorf("Unknown attribute kind = %d, want ErrorType", got)
	}

	route := c.TypeByMetadataName("Microsoft.AspNetCore.Mvc.Routing.HttpMethodAttribute")
	if attrs[0].Class().BaseType() != route {
		t.Error("HttpGet does not derive from HttpMethodAttribute")
	}

	named := attrs[1].NamedArguments()
	if len(named) != 1 || named[0].Name != "Type" {
		t.Fatalf("Named arguments = %v", named)
	}

	if typ, ok := named[0].Value.Type(); !ok || typ.String() != "Shop.Widget" {
		t.Errorf("Type argument = %v", named[0].Value)
	}

	if args := attrs[1].ConstructorArguments(); len(args) != 1 || args[0].Kind != symbols.ExpressionConstant ||
		args[0].String() != "StatusCodes.Status200OK" {
		t.Errorf("Status argument = %v", args)
	}

	if args := attrs[2].ConstructorArguments(); len(args) != 2 || args[0].Kind != symbols.TypeConstant {
		t.Errorf("Positional type argument = %v", args)
	}

	want := []any{int64(-1), "a\tb", `c"d`, "x", 2.5, true, nil}

	args := attrs[3].ConstructorArguments()
	if len(args) != len(want) {
		t.Fatalf("Got %d literal arguments, want %d", len(args), len(want))
	}

	for i, w := range want {
		if args[i].Kind != symbols.PrimitiveConstant || args[i].Value != w {
			t.Errorf("Argument %d = %#v, want %#v", i, args[i], w)
		}
	}

	if loc := m.Locations()[0]; !loc.IsValid() {
		t.Error("Method location is invalid")
	}
}

func TestErrorConstant(t *testing.T) {
	t.Parallel()

	const src = `class C
{
    [ProducesResponseType(typeof(Missing))]
    public int M() => 0;
}
`

	c := bind(t, src)

	args := method(t, c, "M").Attributes()[0].ConstructorArguments()
	if len(args) != 1 || args[0].Kind != symbols.ErrorConstant {
		t.Errorf("Arguments = %v, want one error constant", args)
	}

	if _, ok := args[0].Type(); ok {
		t.Error("Error constant has a type")
	}
}

func TestGlobalUsings(t *testing.T) {
	t.Parallel()

	c := bind(t,
		"global using Microsoft.AspNetCore.Mvc;\n",
		"namespace N { class C : Controller { IActionResult M() => null; } }\n",
	)

	if got, want := method(t, c, "M").ReturnType().String(), "Microsoft.AspNetCore.Mvc.IActionResult"; got != want {
		t.Errorf("ReturnType() = %q, want %q", got, want)
	}

	if got, want := method(t, c, "M").ContainingType().BaseType().String(), "Microsoft.AspNetCore.Mvc.Controller"; got != want {
		t.Errorf("BaseType() = %q, want %q", got, want)
	}
}
