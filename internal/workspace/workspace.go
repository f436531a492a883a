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

// Package workspace loads C# source files, produces their compilation and applies fixes.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thammet/swaggerguard/internal/binder"
	"github.com/thammet/swaggerguard/internal/config"
	"github.com/thammet/swaggerguard/internal/metadata"
	"github.com/thammet/swaggerguard/internal/parser"
	"github.com/thammet/swaggerguard/internal/report"
	"github.com/thammet/swaggerguard/internal/synth"
	"github.com/thammet/swaggerguard/syntax"
)

// ErrNoSources is returned when no C# source files were found.
var ErrNoSources = errors.New("no C# source files found")

// Workspace is a set of documents sharing one [token.FileSet].
type Workspace struct {
	Fset      *token.FileSet
	Documents []*Document

	byFile map[*token.File]*Document
}

// New returns an empty workspace.
func New() *Workspace {
	return &Workspace{
		Fset:   token.NewFileSet(),
		byFile: make(map[*token.File]*Document),
	}
}

// skipDirs are build output and tooling directories never searched for sources.
var skipDirs = map[string]bool{"bin": true, "obj": true, ".git": true, ".vs": true, "node_modules": true}

// Load reads the C# files named by paths. Directories are searched recursively.
// Files are read and parsed concurrently, at most jobs at a time.
func Load(ctx context.Context, paths []string, jobs int) (*Workspace, error) {
	defer trace.StartRegion(ctx, "Load").End()

	files, err := sourceFiles(paths)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, ErrNoSources
	}

	srcs := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			srcs[i] = string(b)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ws := New()

	// Files are added in order so positions do not depend on scheduling.
	handles := make([]*token.File, len(files))
	for i, path := range files {
		handles[i] = ws.Fset.AddFile(path, -1, len(srcs[i]))
	}

	docs := make([]*Document, len(files))

	g, gctx = errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			docs[i] = newDocument(handles[i], files[i], srcs[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, d := range docs {
		ws.add(d)
	}

	slog.LogAttrs(ctx, slog.LevelDebug, "Loaded workspace", slog.Int("documents", len(docs)))

	return ws, nil
}

// sourceFiles expands directories and returns the .cs files in sorted order without duplicates.
func sourceFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, filepath.Clean(path))

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir():
				if p != path && skipDirs[d.Name()] {
					return filepath.SkipDir
				}

			case strings.EqualFold(filepath.Ext(p), ".cs"):
				files = append(files, p)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("can't search %s: %w", path, err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// AddSource parses src as a document named path and adds it to the workspace.
func (w *Workspace) AddSource(path, src string) *Document {
	d := newDocument(w.Fset.AddFile(path, -1, len(src)), path, src)
	w.add(d)

	return d
}

func (w *Workspace) add(d *Document) {
	w.Documents = append(w.Documents, d)
	w.byFile[d.file] = d
}

// Document returns the document containing pos, or nil.
func (w *Workspace) Document(pos token.Pos) *Document {
	if !pos.IsValid() {
		return nil
	}

	return w.byFile[w.Fset.File(pos)]
}

// Generated reports whether pos lies in a generated document.
func (w *Workspace) Generated(pos token.Pos) bool {
	d := w.Document(pos)

	return d != nil && d.Generated()
}

// Compilation binds all parsed documents against catalog.
func (w *Workspace) Compilation(catalog *metadata.Catalog) *binder.Compilation {
	units := make([]*syntax.CompilationUnit, 0, len(w.Documents))

	for _, d := range w.Documents {
		if d.Root != nil {
			units = append(units, d.Root)
		}
	}

	return binder.Bind(catalog, units...)
}

// SyntaxErrors returns a diagnostic for every document that failed to parse.
func (w *Workspace) SyntaxErrors() []report.Diagnostic {
	var ds []report.Diagnostic

	for _, d := range w.Documents {
		if d.Err == nil {
			continue
		}

		pos := token.NoPos

		var perr *parser.Error
		if errors.As(d.Err, &perr) {
			pos = perr.Pos
		}

		if !pos.IsValid() {
			pos = d.file.Pos(0)
		}

		ds = append(ds, report.Syntax(pos, d.Err.Error()))
	}

	return ds
}

// Filter removes diagnostics suppressed by #pragma warning directives.
func (w *Workspace) Filter(ds []report.Diagnostic) []report.Diagnostic {
	return slices.DeleteFunc(slices.Clone(ds), func(diag report.Diagnostic) bool {
		d := w.Document(diag.Pos)

		return d != nil && d.Suppressed(diag.Rule, diag.Pos)
	})
}

// Fix applies the response-type fix for every fixable diagnostic and returns the changed
// documents. Fixes are applied document by document; the workspace itself is not modified.
func (w *Workspace) Fix(ctx context.Context, ds []report.Diagnostic, names config.Names) ([]*Document, error) {
	defer trace.StartRegion(ctx, "Fix").End()

	positions := make(map[*Document][]token.Pos)

	for _, diag := range ds {
		if !diag.Fixable {
			continue
		}

		d := w.Document(diag.Pos)
		if d == nil || d.Root == nil {
			continue
		}

		positions[d] = append(positions[d], diag.Pos)
	}

	var (
		changed []*Document
		errs    []error
	)

	for _, d := range w.Documents {
		ps, ok := positions[d]
		if !ok {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		root, err := synth.FixAll(d.Root, ps, names)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Path, err))
		}

		cu, ok := root.(*syntax.CompilationUnit)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: unexpected root %T", d.Path, root))

			continue
		}

		if fixed := d.WithRoot(cu); fixed.Changed() {
			changed = append(changed, fixed)
		}

		slog.LogAttrs(ctx, slog.LevelDebug, "Fixed document", slog.String("path", d.Path), slog.Int("fixes", len(ps)))
	}

	return changed, errors.Join(errs...)
}

// Write stores the text of docs in their files, keeping the file mode.
func Write(docs []*Document) error {
	for _, d := range docs {
		mode := fs.FileMode(0o644)
		if info, err := os.Stat(d.Path); err == nil {
			mode = info.Mode().Perm()
		}

		if err := os.WriteFile(d.Path, []byte(d.Source), mode); err != nil {
			return err
		}
	}

	return nil
}
