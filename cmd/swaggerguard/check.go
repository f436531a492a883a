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
	"io"

	"github.com/spf13/cobra"

	"github.com/thammet/swaggerguard/analyzer"
	"github.com/thammet/swaggerguard/analyzer/level"
	"github.com/thammet/swaggerguard/internal/report"
)

func (app *app) checkCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [flags] [path...]",
		Short: "Report controller actions without matching response-type annotations",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.a.Check(cmd.Context(), paths(args)...)
			if err != nil {
				return err
			}

			if err := app.print(cmd.OutOrStdout(), format, res, res.Diagnostics); err != nil {
				return err
			}

			return status(res.Diagnostics)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")

	return cmd
}

// print renders ds in the requested format.
func (app *app) print(w io.Writer, format string, res *analyzer.Result, ds []report.Diagnostic) error {
	switch format {
	case "text":
		return report.NewPrinter(res.Workspace.Fset, app.colored(w)).Fprint(w, ds)

	case "json":
		return report.JSON(w, res.Workspace.Fset, ds, app.a.FixTitle())

	default:
		return fmt.Errorf("unsupported format %q (must be text or json)", format)
	}
}

// status returns [errFindings] when ds contains warnings or errors.
func status(ds []report.Diagnostic) error {
	if n := report.Count(ds, level.SeverityWarning); n > 0 {
		return fmt.Errorf("%w: %d", errFindings, n)
	}

	return nil
}
