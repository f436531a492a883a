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
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/thammet/swaggerguard/analyzer"
	"github.com/thammet/swaggerguard/internal/settings"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	a *analyzer.Analyzer

	config     string
	color      string
	verbose    bool
	references []string
}

func newRootCommand() *cobra.Command {
	app := &app{a: analyzer.New()}

	root := &cobra.Command{
		Use:   "swaggerguard",
		Short: "Check ASP.NET Core controllers for missing response-type annotations",
		Long: `swaggerguard reports controller actions whose return type is not declared by a
ProducesResponseType annotation and adds the missing annotations.`,
		Version:           version(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.config, "config", "", "settings file (default: nearest "+settings.FileName+")")
	flags.StringVar(&app.color, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "log progress to standard error")
	flags.StringSliceVar(&app.references, "reference", nil, "additional metadata catalog (.yaml or .msgpack)")
	flags.AddGoFlagSet(&app.a.Flags)

	root.AddCommand(
		app.checkCommand(),
		app.fixCommand(),
		app.catalogCommand(),
		versionCommand(),
	)

	return root
}

// setup installs the logger and configures the analyzer from the settings file.
// Flags set on the command line override settings.
func (app *app) setup(cmd *cobra.Command, args []string) error {
	if app.verbose {
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		slog.SetDefault(slog.New(handler))
	}

	if _, err := colorMode(app.color); err != nil {
		return err
	}

	changed := make(map[string]string)
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })

	s, path, err := app.settings(args)
	if err != nil {
		return err
	}

	opts := s.Options()
	if path != "" {
		slog.LogAttrs(cmd.Context(), slog.LevelDebug, "Using settings",
			slog.String("path", path),
			analyzer.Options(opts).LogAttr())
	}

	app.a.Configure(opts...)

	for name, value := range changed {
		if app.a.Flags.Lookup(name) == nil {
			continue
		}

		if err := app.a.Flags.Set(name, value); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}

	if len(app.references) > 0 {
		app.a.Configure(analyzer.WithReferences(app.references))
	}

	return nil
}

// settings loads the configured settings file or the nearest one above the first path.
func (app *app) settings(args []string) (settings.Settings, string, error) {
	path := app.config

	if path == "" {
		start := "."
		if len(args) > 0 {
			start = args[0]
			if fi, err := os.Stat(start); err == nil && !fi.IsDir() {
				start = filepath.Dir(start)
			}
		}

		found, ok, err := settings.Find(start)
		if err != nil || !ok {
			return settings.Settings{}, "", err
		}

		path = found
	}

	s, err := settings.Load(path)
	if err != nil {
		return settings.Settings{}, "", err
	}

	return s, path, nil
}

type colorSetting string

const (
	colorAuto colorSetting = "auto"
	colorOn   colorSetting = "on"
	colorOff  colorSetting = "off"
)

func colorMode(value string) (colorSetting, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// colored reports whether output to w is colorized.
func (app *app) colored(w io.Writer) bool {
	mode, _ := colorMode(app.color)

	switch mode {
	case colorOn:
		return true

	case colorOff:
		return false

	default:
		f, ok := w.(*os.File)

		return ok && os.Getenv("NO_COLOR") == "" && isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// paths returns the command arguments, defaulting to the working directory.
func paths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}

	return slices.Clone(args)
}
