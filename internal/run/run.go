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

package run

import (
	"context"
	"go/token"
	"log/slog"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/thammet/swaggerguard/internal/classify"
	"github.com/thammet/swaggerguard/internal/config"
	"github.com/thammet/swaggerguard/internal/report"
	"github.com/thammet/swaggerguard/symbols"
)

// Files answers per-file questions about source positions.
type Files interface {
	// Generated reports whether pos lies in a generated file.
	Generated(pos token.Pos) bool
}

// Run classifies every method of comp and returns the diagnostics in source order.
//
// Methods are classified concurrently; each worker writes only its own result slot.
// Cancellation is checked before a method is handed to the classifier.
func (o *Options) Run(ctx context.Context, comp symbols.Compilation, files Files) ([]report.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "SwaggerGuard")
	defer task.End()

	if !o.Severity.Enabled() && !o.MalformedSeverity.Enabled() {
		return nil, nil
	}

	c := classify.New(comp, o.Names)

	methods := o.methods(ctx, comp, files)
	results := make([][]report.Diagnostic, len(methods))

	g, gctx := errgroup.WithContext(ctx)
	if o.Jobs > 0 {
		g.SetLimit(o.Jobs)
	}

	for i, m := range methods {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = o.evaluate(c, m)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	diagnostics := slices.Concat(results...)
	report.Sort(diagnostics)

	slog.LogAttrs(ctx, slog.LevelDebug, "Classified methods",
		slog.Int("methods", len(methods)),
		slog.Int("diagnostics", len(diagnostics)))

	return diagnostics, nil
}

// methods collects the candidate methods, skipping generated files unless enabled.
func (o *Options) methods(ctx context.Context, comp symbols.Compilation, files Files) []symbols.Method {
	defer trace.StartRegion(ctx, "CollectMethods").End()

	generated := o.Behavior.Enabled(config.IncludeGenerated)
	instanceOnly := o.Behavior.Enabled(config.InstanceOnly)

	var ms []symbols.Method

	for m := range comp.Methods() {
		if instanceOnly && m.IsStatic() {
			continue
		}

		if !generated && files != nil {
			if locs := m.Locations(); len(locs) > 0 && files.Generated(locs[0].Pos) {
				continue
			}
		}

		ms = append(ms, m)
	}

	return ms
}

func (o *Options) evaluate(c *classify.Classifier, m symbols.Method) []report.Diagnostic {
	r := c.Evaluate(m)
	if !r.InScope {
		return nil
	}

	var ds []report.Diagnostic

	if len(m.Locations()) == 0 {
		ds = append(ds, report.Internal(token.NoPos, "Method %s without source location", m.Name()))
	}

	if r.Violation && o.Severity.Enabled() {
		ds = append(ds, report.Missing(m, o.Names, o.Severity))
	}

	if o.Behavior.Enabled(config.ReportMalformed) && o.MalformedSeverity.Enabled() {
		for _, a := range r.Malformed {
			ds = append(ds, report.Malformed(m, a, o.Names, o.MalformedSeverity))
		}
	}

	return ds
}
