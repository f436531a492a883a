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

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thammet/swaggerguard/internal/report"
	"github.com/thammet/swaggerguard/internal/workspace"
)

func (app *app) fixCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [flags] [path...]",
		Short: "Add missing response-type annotations",
		Long: `Add a response-type annotation declaring the return type to every controller action
reported by check. Diagnostics that cannot be fixed are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			res, err := app.a.Check(ctx, paths(args)...)
			if err != nil {
				return err
			}

			changed, err := app.a.Fix(ctx, res)
			if err != nil {
				return err
			}

			verb := "Fixed"
			if dryRun {
				verb = "Would fix"
			} else if err := workspace.Write(changed); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range changed {
				fmt.Fprintf(out, "%s %s\n", verb, filepath.ToSlash(d.Path))
			}

			slog.LogAttrs(ctx, slog.LevelDebug, "Fix complete",
				slog.Int("documents", len(changed)),
				slog.Bool("dry-run", dryRun))

			var remaining []report.Diagnostic

			for _, d := range res.Diagnostics {
				if !d.Fixable || dryRun {
					remaining = append(remaining, d)
				}
			}

			if err := app.print(out, "text", res, remaining); err != nil {
				return err
			}

			return status(remaining)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report files that would change without writing them")

	return cmd
}
