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

package report

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"

	"github.com/fatih/color"

	"github.com/thammet/swaggerguard/analyzer/level"
)

// Printer renders diagnostics as text.
type Printer struct {
	fset *token.FileSet

	location, rule *color.Color
	severity       map[level.Severity]*color.Color
}

// NewPrinter returns a [Printer] resolving positions in fset. Colors are forced on or off.
func NewPrinter(fset *token.FileSet, colored bool) *Printer {
	p := &Printer{
		fset:     fset,
		location: color.New(color.Bold),
		rule:     color.New(color.Faint),
		severity: map[level.Severity]*color.Color{
			level.SeverityError:   color.New(color.FgRed, color.Bold),
			level.SeverityWarning: color.New(color.FgYellow, color.Bold),
			level.SeverityInfo:    color.New(color.FgCyan),
		},
	}

	for _, c := range p.colors() {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) colors() []*color.Color {
	cs := []*color.Color{p.location, p.rule}
	for _, c := range p.severity {
		cs = append(cs, c)
	}

	return cs
}

// Fprint writes one line per diagnostic:
//
//	path:line:col: warning: message [Rule]
func (p *Printer) Fprint(w io.Writer, ds []Diagnostic) error {
	for _, d := range ds {
		sev, ok := p.severity[d.Severity]
		if !ok {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: %s: %s %s\n",
			p.location.Sprint(p.position(d.Pos)),
			sev.Sprint(d.Severity),
			d.Message,
			p.rule.Sprint("["+d.Rule+"]"),
		); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) position(pos token.Pos) string {
	if !pos.IsValid() || p.fset == nil {
		return "-"
	}

	return p.fset.Position(pos).String()
}

// LocationJSON is a source range in JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line,omitempty"`
	StartCol  int    `json:"start_col,omitempty"`
	EndLine   int    `json:"end_line,omitempty"`
	EndCol    int    `json:"end_col,omitempty"`
}

// DiagnosticJSON is a diagnostic in JSON output.
type DiagnosticJSON struct {
	Severity level.Severity `json:"severity"`
	Rule     string         `json:"rule"`
	Message  string         `json:"message"`
	Location LocationJSON   `json:"location"`
	Fix      string         `json:"fix,omitempty"`
}

// OutputJSON is the root of the JSON output.
type OutputJSON struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// JSON writes ds as an indented JSON document. fixTitle is attached to fixable diagnostics.
func JSON(w io.Writer, fset *token.FileSet, ds []Diagnostic, fixTitle string) error {
	out := OutputJSON{Diagnostics: make([]DiagnosticJSON, 0, len(ds))}

	for _, d := range ds {
		if !d.Severity.Enabled() {
			continue
		}

		dj := DiagnosticJSON{
			Severity: d.Severity,
			Rule:     d.Rule,
			Message:  d.Message,
			Location: location(fset, d.Pos, d.End),
		}

		if d.Fixable {
			dj.Fix = fixTitle
		}

		out.Diagnostics = append(out.Diagnostics, dj)
	}

	out.Count = len(out.Diagnostics)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func location(fset *token.FileSet, pos, end token.Pos) LocationJSON {
	if fset == nil || !pos.IsValid() {
		return LocationJSON{}
	}

	start := fset.Position(pos)
	loc := LocationJSON{File: start.Filename, StartLine: start.Line, StartCol: start.Column}

	if end.IsValid() {
		e := fset.Position(end)
		loc.EndLine, loc.EndCol = e.Line, e.Column
	}

	return loc
}
