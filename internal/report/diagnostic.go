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

// Package report builds, orders and renders diagnostics.
package report

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"

	"github.com/thammet/swaggerguard/analyzer/level"
	"github.com/thammet/swaggerguard/internal/config"
	"github.com/thammet/swaggerguard/symbols"
)

// Rule identifiers.
const (
	// MissingSwaggerAnnotations flags controller actions without a matching response-type annotation.
	MissingSwaggerAnnotations = "MissingSwaggerAnnotations"

	// MalformedSwaggerAnnotation flags response-type annotations that declare no payload type.
	MalformedSwaggerAnnotation = "MalformedSwaggerAnnotation"

	// SyntaxError reports source files that could not be parsed.
	SyntaxError = "SyntaxError"

	// InternalError reports inconsistencies in the host model.
	InternalError = "InternalError"
)

// Diagnostic is a single finding. Diagnostics are values and never modified after creation.
type Diagnostic struct {
	Rule     string
	Severity level.Severity
	Pos, End token.Pos
	Message  string

	// Fixable reports whether [FixTitle] applies to the diagnostic.
	Fixable bool
}

// FixTitle returns the title of the code fix adding a response-type annotation.
func FixTitle(names config.Names) string {
	return "Add " + names.ResponseTypeShortName() + " annotation"
}

// Missing creates the diagnostic for an action without a matching response-type annotation.
// It is located at the method identifier.
func Missing(m symbols.Method, names config.Names, severity level.Severity) Diagnostic {
	d := Diagnostic{
		Rule:     MissingSwaggerAnnotations,
		Severity: severity,
		Message: fmt.Sprintf("Controller action '%s' has no %s annotation matching its return type",
			m.Name(), names.ResponseTypeShortName()),
		Fixable: true,
	}

	if locs := m.Locations(); len(locs) > 0 {
		d.Pos, d.End = locs[0].Pos, locs[0].End
	}

	return d
}

// Malformed creates the diagnostic for a response-type annotation without payload type.
func Malformed(m symbols.Method, a symbols.Attribute, names config.Names, severity level.Severity) Diagnostic {
	loc := a.Location()

	return Diagnostic{
		Rule:     MalformedSwaggerAnnotation,
		Severity: severity,
		Pos:      loc.Pos,
		End:      loc.End,
		Message: fmt.Sprintf("%s annotation on '%s' declares no response type",
			names.ResponseTypeShortName(), m.Name()),
	}
}

// Syntax creates the diagnostic for a parse failure.
func Syntax(pos token.Pos, msg string) Diagnostic {
	return Diagnostic{
		Rule:     SyntaxError,
		Severity: level.SeverityError,
		Pos:      pos,
		End:      pos,
		Message:  msg,
	}
}

// Internal creates a diagnostic for an internal inconsistency.
func Internal(pos token.Pos, format string, args ...any) Diagnostic {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	return Diagnostic{
		Rule:     InternalError,
		Severity: level.SeverityError,
		Pos:      pos,
		End:      pos,
		Message:  string(msg),
	}
}

// Sort orders diagnostics by position, then by rule.
func Sort(ds []Diagnostic) {
	slices.SortStableFunc(ds, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Pos, b.Pos),
			cmp.Compare(a.Rule, b.Rule),
		)
	})
}

// Count returns the number of diagnostics at or above the given severity.
func Count(ds []Diagnostic, min level.Severity) int {
	n := 0

	for _, d := range ds {
		if d.Severity.AtLeast(min) {
			n++
		}
	}

	return n
}
