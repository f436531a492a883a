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

// Package testsource provides utilities for parsing and binding C# source code in tests.
//
// It handles the boilerplate of setting up file sets, wrapping method fragments in a
// controller and reading golden archives.
package testsource

import (
	"fmt"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/thammet/swaggerguard/internal/binder"
	"github.com/thammet/swaggerguard/internal/metadata"
	"github.com/thammet/swaggerguard/internal/parser"
	"github.com/thammet/swaggerguard/syntax"
)

// Parse parses a single C# source file named test.cs.
func Parse(tb testing.TB, src string) (*token.FileSet, *syntax.CompilationUnit) {
	tb.Helper()

	fset := token.NewFileSet()

	return fset, parse(tb, fset, "test.cs", src)
}

// Bind parses the sources and binds them against the default metadata catalog.
func Bind(tb testing.TB, srcs ...string) (*token.FileSet, []*syntax.CompilationUnit, *binder.Compilation) {
	tb.Helper()

	catalog, err := metadata.Default()
	if err != nil {
		tb.Fatalf("Can't load default catalog: %v", err)
	}

	fset := token.NewFileSet()

	units := make([]*syntax.CompilationUnit, 0, len(srcs))
	for i, src := range srcs {
		units = append(units, parse(tb, fset, fmt.Sprintf("test%d.cs", i), src))
	}

	return fset, units, binder.Bind(catalog, units...)
}

// Wrap places method declarations inside a controller class in namespace Test.
//
// The controller imports the ASP.NET Core MVC and task namespaces, so fragments can use
// short attribute and type names.
func Wrap(members string) string {
	const (
		header = "using System.Collections.Generic;\nusing System.Threading.Tasks;\n" +
			"using Microsoft.AspNetCore.Mvc;\n\nnamespace Test\n{\n" +
			"    public class TestController : Controller\n    {\n"
		suffix = "    }\n}\n"
	)

	var b strings.Builder
	b.Grow(len(header) + len(members) + len(suffix))

	b.WriteString(header)
	b.WriteString(members)
	b.WriteString(suffix)

	return b.String()
}

// Archive reads a txtar archive and returns its files by name together with the comment.
func Archive(tb testing.TB, path string) (comment string, files map[string]string) {
	tb.Helper()

	a, err := txtar.ParseFile(path)
	if err != nil {
		tb.Fatalf("Can't read archive %s: %v", path, err)
	}

	files = make(map[string]string, len(a.Files))
	for _, f := range a.Files {
		files[f.Name] = string(f.Data)
	}

	return string(a.Comment), files
}

func parse(tb testing.TB, fset *token.FileSet, filename, src string) *syntax.CompilationUnit {
	tb.Helper()

	file := fset.AddFile(filename, -1, len(src))

	cu, err := parser.ParseFile(file, src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return cu
}
