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

package report_test

import (
	"bytes"
	"encoding/json"
	"go/token"
	"strings"
	"testing"

	"github.com/thammet/swaggerguard/analyzer/level"
	"github.com/thammet/swaggerguard/internal/config"
	. "github.com/thammet/swaggerguard/internal/report"
	"github.com/thammet/swaggerguard/internal/testsource"
	"github.com/thammet/swaggerguard/symbols"
)

const src = `using Microsoft.AspNetCore.Mvc;

class WidgetsController : Controller
{
    [HttpGet]
    [ProducesResponseType(200)]
    public Widget Get() => null;
}
`

func bind(t *testing.T) (*token.FileSet, symbols.Method) {
	t.Helper()

	fset, _, comp := testsource.Bind(t, src)

	for m := range comp.Methods() {
		return fset, m
	}

	t.Fatal("No method found")

	return nil, nil
}

func TestMissing(t *testing.T) {
	t.Parallel()

	fset, m := bind(t)

	d := Missing(m, config.DefaultNames(), level.SeverityWarning)

	if d.Rule != MissingSwaggerAnnotations || !d.Fixable {
		t.Errorf("Got %+v, want fixable %s", d, MissingSwaggerAnnotations)
	}

	const want = "Controller action 'Get' has no ProducesResponseType annotation matching its return type"
	if d.Message != want {
		t.Errorf("Message = %q, want %q", d.Message, want)
	}

	if p := fset.Position(d.Pos); p.Line != 7 || p.Column != 19 {
		t.Errorf("Diagnostic at %v, want 7:19", p)
	}

	if got := int(d.End - d.Pos); got != len("Get") {
		t.Errorf("Diagnostic spans %d characters, want %d", got, len("Get"))
	}
}

func TestMalformed(t *testing.T) {
	t.Parallel()

	fset, m := bind(t)

	d := Malformed(m, m.Attributes()[1], config.DefaultNames(), level.SeverityWarning)

	if d.Rule != MalformedSwaggerAnnotation || d.Fixable {
		t.Errorf("Got %+v, want unfixable %s", d, MalformedSwaggerAnnotation)
	}

	if p := fset.Position(d.Pos); p.Line != 6 {
		t.Errorf("Diagnostic at %v, want line 6", p)
	}
}

func TestFixTitle(t *testing.T) {
	t.Parallel()

	if got, want := FixTitle(config.DefaultNames()), "Add ProducesResponseType annotation"; got != want {
		t.Errorf("FixTitle() = %q, want %q", got, want)
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	ds := []Diagnostic{
		{Rule: "B", Pos: 20},
		{Rule: MissingSwaggerAnnotations, Pos: 10},
		{Rule: MalformedSwaggerAnnotation, Pos: 10},
		{Rule: "A", Pos: 20},
	}

	Sort(ds)

	want := []string{MalformedSwaggerAnnotation, MissingSwaggerAnnotations, "A", "B"}
	for i, d := range ds {
		if d.Rule != want[i] {
			t.Errorf("Diagnostic %d rule = %s, want %s", i, d.Rule, want[i])
		}
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	ds := []Diagnostic{
		{Severity: level.SeverityError},
		{Severity: level.SeverityWarning},
		{Severity: level.SeverityInfo},
		{Severity: level.SeverityOff},
	}

	if got := Count(ds, level.SeverityWarning); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestInternal(t *testing.T) {
	t.Parallel()

	d := Internal(token.NoPos, "method %s without location", "Get")

	if d.Message != "Internal Error: method Get without location" || d.Severity != level.SeverityError {
		t.Errorf("Got %+v", d)
	}
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	fset, m := bind(t)

	ds := []Diagnostic{
		Missing(m, config.DefaultNames(), level.SeverityWarning),
		{Rule: "Hidden", Severity: level.SeverityOff, Message: "hidden"},
		Internal(token.NoPos, "oops"),
	}

	var buf bytes.Buffer
	if err := NewPrinter(fset, false).Fprint(&buf, ds); err != nil {
		t.Fatalf("Fprint() failed: %v", err)
	}

	want := "test0.cs:7:19: warning: Controller action 'Get' has no ProducesResponseType annotation " +
		"matching its return type [MissingSwaggerAnnotations]\n" +
		"-: error: Internal Error: oops [InternalError]\n"

	if got := buf.String(); got != want {
		t.Errorf("Got:\n%s\nWant:\n%s", got, want)
	}

	buf.Reset()

	if err := NewPrinter(fset, true).Fprint(&buf, ds[:1]); err != nil {
		t.Fatalf("Fprint() failed: %v", err)
	}

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Colored output has no escape sequences: %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	fset, m := bind(t)

	ds := []Diagnostic{
		Missing(m, config.DefaultNames(), level.SeverityError),
		{Rule: "Hidden", Severity: level.SeverityOff},
	}

	var buf bytes.Buffer
	if err := JSON(&buf, fset, ds, FixTitle(config.DefaultNames())); err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}

	var out OutputJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", out.Count)
	}

	d := out.Diagnostics[0]

	if d.Severity != level.SeverityError || d.Rule != MissingSwaggerAnnotations {
		t.Errorf("Got %+v", d)
	}

	if d.Location.File != "test0.cs" || d.Location.StartLine != 7 || d.Location.EndCol != 22 {
		t.Errorf("Location = %+v", d.Location)
	}

	if d.Fix != "Add ProducesResponseType annotation" {
		t.Errorf("Fix = %q", d.Fix)
	}
}
