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

package syntax_test

import (
	"go/token"
	"strings"
	"testing"

	"github.com/thammet/swaggerguard/internal/parser"
	. "github.com/thammet/swaggerguard/syntax"
)

const source = `namespace Shop
{
    public class WidgetsController : Controller
    {
        [HttpGet]
        public Task<Widget> Get() { return null; }

        public int Count() => 0;
    }
}
`

func parse(tb testing.TB, src string) (*token.File, *CompilationUnit) {
	tb.Helper()

	fset := token.NewFileSet()
	file := fset.AddFile("test.cs", -1, len(src))

	cu, err := parser.ParseFile(file, src)
	if err != nil {
		tb.Fatalf("Failed to parse source: %v", err)
	}

	return file, cu
}

func TestFindMethodAt(t *testing.T) {
	t.Parallel()

	file, cu := parse(t, source)

	tests := [...]struct {
		name   string
		needle string
		want   string
		found  bool
	}{
		{"identifier", "Get()", "Get", true},
		{"attribute", "HttpGet", "Get", true},
		{"body", "return null", "Get", true},
		{"expression_body", "=> 0", "Count", true},
		{"class", "WidgetsController", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pos := file.Pos(indexOf(t, source, tt.needle))

			m, ok := FindMethodAt(cu, pos)
			if ok != tt.found {
				t.Fatalf("FindMethodAt() found = %t, want %t", ok, tt.found)
			}

			if ok && m.Identifier.Text != tt.want {
				t.Errorf("FindMethodAt() = %s, want %s", m.Identifier.Text, tt.want)
			}
		})
	}
}

func TestReplaceSharesSubtrees(t *testing.T) {
	t.Parallel()

	_, cu := parse(t, source)

	var get, count *MethodDecl

	Inspect(cu, func(n Node) bool {
		if m, ok := n.(*MethodDecl); ok {
			switch m.Identifier.Text {
			case "Get":
				get = m
			case "Count":
				count = m
			}
		}

		return true
	})

	if get == nil || count == nil {
		t.Fatal("Methods not found")
	}

	repl := *get
	repl.Identifier = NewToken(Ident, "Fetch", get.Identifier.Leading)

	root, ok := Replace(cu, get, &repl).(*CompilationUnit)
	if !ok {
		t.Fatalf("Replace() returned %T", root)
	}

	if root == cu {
		t.Fatal("Replace() did not rebuild the root")
	}

	if got, want := FullText(cu), source; got != want {
		t.Errorf("Original tree changed: %q", got)
	}

	wantText := "        public Task<Widget> Fetch() { return null; }"
	if got := FullText(root); !strings.Contains(got, wantText) {
		t.Errorf("Replaced tree = %q, want it to contain %q", got, wantText)
	}

	var shared bool

	Inspect(root, func(n Node) bool {
		if n == Node(count) {
			shared = true
		}

		return true
	})

	if !shared {
		t.Error("Untouched sibling was not shared")
	}

	if same := Replace(cu, &repl, get); same != Node(cu) {
		t.Error("Replace() of a foreign node changed the tree")
	}
}

func TestReplaceTupleElement(t *testing.T) {
	t.Parallel()

	const src = "class C { (int Id, Widget Item)? Get() => default; }"

	_, cu := parse(t, src)

	var widget *TypeSyntax

	Inspect(cu, func(n Node) bool {
		if ts, ok := n.(*TypeSyntax); ok && Text(ts) == "Widget" {
			widget = ts
		}

		return true
	})

	if widget == nil {
		t.Fatal("Tuple element type not found")
	}

	repl := *widget
	repl.Segments = []*NameSegment{{Identifier: NewToken(Ident, "Gadget", " ")}}

	root := Replace(cu, widget, &repl)

	if got, want := FullText(root), "class C { (int Id, Gadget Item)? Get() => default; }"; got != want {
		t.Errorf("FullText() = %q, want %q", got, want)
	}

	if got := FullText(cu); got != src {
		t.Errorf("Original tree changed: %q", got)
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	_, cu := parse(t, source)

	m, ok := FindMethodAt(cu, cu.Pos())
	if ok {
		t.Fatalf("Unexpected method %s at start", m.Identifier.Text)
	}

	var ret *TypeSyntax

	Inspect(cu, func(n Node) bool {
		if m, ok := n.(*MethodDecl); ok && ret == nil {
			ret = m.ReturnType
		}

		return true
	})

	if got, want := Text(ret), "Task<Widget>"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	if got, want := FullText(ret), " Task<Widget>"; got != want {
		t.Errorf("FullText() = %q, want %q", got, want)
	}
}

func indexOf(tb testing.TB, s, sub string) int {
	tb.Helper()

	i := strings.Index(s, sub)
	if i < 0 {
		tb.Fatalf("%q not found", sub)
	}

	return i
}
