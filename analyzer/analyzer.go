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

package analyzer

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"runtime/trace"

	"github.com/thammet/swaggerguard/internal/metadata"
	"github.com/thammet/swaggerguard/internal/report"
	"github.com/thammet/swaggerguard/internal/workspace"
)

// Public API constants for the swaggerguard analyzer.
const (
	name = "swaggerguard"
	doc  = `swaggerguard detects controller actions without matching response-type annotations`
	url  = "https://pkg.go.dev/github.com/thammet/swaggerguard"
)

// Diagnostic is a single finding of an analyzer run.
type Diagnostic = report.Diagnostic

// Analyzer checks C# sources for controller actions without a matching
// ProducesResponseType annotation and fixes them.
type Analyzer struct {
	Name string
	Doc  string
	URL  string

	// Flags binds the analyzer options to command line flags.
	Flags flag.FlagSet

	r *runOptions
}

// Result is the outcome of [Analyzer.Check].
type Result struct {
	// Workspace holds the loaded documents.
	Workspace *workspace.Workspace

	// Diagnostics are the unsuppressed findings in source order.
	Diagnostics []Diagnostic
}

// New creates a new instance of the swaggerguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		r:    makeRunOptions(opts),
	}

	registerFlags(a.r, &a.Flags)

	return a
}

// Configure applies additional options.
func (a *Analyzer) Configure(opts ...Option) {
	Options(opts).apply(a.r)
}

// FixTitle returns the title of the code fix.
func (a *Analyzer) FixTitle() string {
	return report.FixTitle(a.r.names)
}

// Check loads the C# sources named by paths and reports controller actions
// without a matching response-type annotation.
func (a *Analyzer) Check(ctx context.Context, paths ...string) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "Check")
	defer task.End()

	slog.LogAttrs(ctx, slog.LevelDebug, "Checking sources",
		slog.Any("paths", paths),
		slog.Any("names", a.r.names),
		slog.Int("jobs", a.r.jobs))

	catalog, err := a.Catalog()
	if err != nil {
		return nil, err
	}

	ws, err := workspace.Load(ctx, paths, a.r.jobs)
	if err != nil {
		return nil, err
	}

	diagnostics, err := a.r.runner().Run(ctx, ws.Compilation(catalog), ws)
	if err != nil {
		return nil, err
	}

	diagnostics = append(diagnostics, ws.SyntaxErrors()...)
	diagnostics = ws.Filter(diagnostics)
	report.Sort(diagnostics)

	return &Result{Workspace: ws, Diagnostics: diagnostics}, nil
}

// Fix adds a response-type annotation for every fixable diagnostic of res and returns
// the changed documents. Nothing is written to disk.
func (a *Analyzer) Fix(ctx context.Context, res *Result) ([]*workspace.Document, error) {
	ctx, task := trace.NewTask(ctx, "Fix")
	defer task.End()

	return res.Workspace.Fix(ctx, res.Diagnostics, a.r.names)
}

// Catalog returns the built-in metadata merged with the configured references.
func (a *Analyzer) Catalog() (*metadata.Catalog, error) {
	def, err := metadata.Default()
	if err != nil {
		return nil, fmt.Errorf("default metadata: %w", err)
	}

	catalogs := []*metadata.Catalog{def}

	for _, path := range a.r.references {
		c, err := metadata.Load(path)
		if err != nil {
			return nil, err
		}

		catalogs = append(catalogs, c)
	}

	return metadata.Merge(catalogs...), nil
}
