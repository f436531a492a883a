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

package workspace

import (
	"go/token"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/thammet/swaggerguard/internal/parser"
	"github.com/thammet/swaggerguard/syntax"
)

// Document is one source file. Documents are values: edits produce new documents.
type Document struct {
	// Path is the file name as given on load.
	Path string

	// Source is the full text of the document.
	Source string

	// Root is the parsed tree, nil when the source has syntax errors.
	Root *syntax.CompilationUnit

	// Err is the syntax error, if any.
	Err error

	loaded    string
	file      *token.File
	generated bool
	pragmas   []pragma
}

// pragma is a #pragma warning directive. An empty rule list applies to all rules.
type pragma struct {
	off     int
	disable bool
	rules   []string
}

func newDocument(file *token.File, path, src string) *Document {
	d := &Document{Path: path, Source: src, loaded: src, file: file}

	d.Root, d.Err = parser.ParseFile(file, src)
	d.generated = generatedName(path) || generatedHeader(src)
	d.pragmas = pragmas(src)

	return d
}

// WithRoot returns a copy of d holding root and its text. Positions of the copy still
// refer to the original file.
func (d *Document) WithRoot(root *syntax.CompilationUnit) *Document {
	c := *d
	c.Root = root
	c.Source = syntax.FullText(root)

	return &c
}

// File returns the token file of the document.
func (d *Document) File() *token.File {
	return d.file
}

// Generated reports whether the document is generated code.
func (d *Document) Generated() bool {
	return d.generated
}

// Changed reports whether the text of d differs from the text it was loaded with.
func (d *Document) Changed() bool {
	return d.Source != d.loaded
}

// Suppressed reports whether diagnostics for rule are disabled at pos by a
// #pragma warning directive.
func (d *Document) Suppressed(rule string, pos token.Pos) bool {
	if d.file == nil || !pos.IsValid() {
		return false
	}

	off := d.file.Offset(pos)
	suppressed := false

	for _, p := range d.pragmas {
		if p.off > off {
			break
		}

		if len(p.rules) == 0 || slices.Contains(p.rules, rule) {
			suppressed = p.disable
		}
	}

	return suppressed
}

var generatedSuffixes = [...]string{".g.cs", ".g.i.cs", ".designer.cs", ".generated.cs"}

func generatedName(path string) bool {
	name := strings.ToLower(filepath.Base(path))

	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return strings.HasPrefix(name, "temporarygeneratedfile_")
}

// generatedHeader reports whether one of the comments at the top of src marks the file as generated.
func generatedHeader(src string) bool {
	src = strings.TrimPrefix(src, "\uFEFF")

	for line := range strings.Lines(src) {
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, "//"), strings.HasPrefix(line, "/*"), strings.HasPrefix(line, "*"):
			if strings.Contains(line, "<auto-generated") || strings.Contains(line, "<autogenerated") {
				return true
			}

		default:
			return false
		}
	}

	return false
}

var pragmaPattern = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*pragma[ \t]+warning[ \t]+(disable|restore)\b([^\r\n]*)`)

func pragmas(src string) []pragma {
	var ps []pragma

	for _, m := range pragmaPattern.FindAllStringSubmatchIndex(src, -1) {
		p := pragma{off: m[0], disable: src[m[2]:m[3]] == "disable"}

		list := src[m[4]:m[5]]
		if i := strings.Index(list, "//"); i >= 0 {
			list = list[:i]
		}

		for rule := range strings.SplitSeq(list, ",") {
			if rule = strings.TrimSpace(rule); rule != "" {
				p.rules = append(p.rules, rule)
			}
		}

		ps = append(ps, p)
	}

	return ps
}
