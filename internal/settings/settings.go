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

// Package settings reads swaggerguard options from a swaggerguard.toml file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/thammet/swaggerguard/analyzer"
	"github.com/thammet/swaggerguard/analyzer/level"
)

// FileName is the name of the settings file.
const FileName = "swaggerguard.toml"

// Settings represents the contents of a settings file. Unset values keep the
// analyzer defaults.
type Settings struct {
	// Severity sets the severity of missing annotation diagnostics.
	Severity *level.Severity `toml:"severity"`
	// MalformedSeverity sets the severity of malformed annotation diagnostics.
	MalformedSeverity *level.Severity `toml:"malformed-severity"`
	// Generated enables checks of generated files.
	Generated *bool `toml:"generated"`
	// Malformed enables reports of annotations without a response type.
	Malformed *bool `toml:"malformed"`
	// InstanceOnly restricts checks to instance methods.
	InstanceOnly *bool `toml:"instance-only"`
	// Jobs limits the number of concurrent jobs.
	Jobs *int `toml:"jobs"`
	// References lists metadata catalogs, relative to the settings file.
	References *[]string `toml:"references"`

	// Names overrides the well-known names.
	Names Names `toml:"names"`
}

// Names are the [names] table of a settings file.
type Names struct {
	RouteAttribute        *string `toml:"route-attribute"`
	Controller            *string `toml:"controller"`
	ResponseTypeAttribute *string `toml:"response-type-attribute"`
	SuccessStatusCode     *string `toml:"success-status-code"`
	AsyncWrapper          *string `toml:"async-wrapper"`
	AsyncWrapperShort     *string `toml:"async-wrapper-short"`
}

// Options converts [Settings] into a list of [analyzer.Option].
// It applies settings only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Severity, analyzer.WithSeverity)
	opts = appendOption(opts, s.MalformedSeverity, analyzer.WithMalformedSeverity)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Malformed, analyzer.WithMalformed)
	opts = appendOption(opts, s.InstanceOnly, analyzer.WithInstanceOnly)
	opts = appendOption(opts, s.Jobs, analyzer.WithJobs)
	opts = appendOption(opts, s.References, analyzer.WithReferences)

	opts = appendOption(opts, s.Names.RouteAttribute, analyzer.WithRouteAttribute)
	opts = appendOption(opts, s.Names.Controller, analyzer.WithController)
	opts = appendOption(opts, s.Names.ResponseTypeAttribute, analyzer.WithResponseTypeAttribute)
	opts = appendOption(opts, s.Names.SuccessStatusCode, analyzer.WithSuccessStatusCode)
	opts = appendOption(opts, s.Names.AsyncWrapper, analyzer.WithAsyncWrapper)
	opts = appendOption(opts, s.Names.AsyncWrapperShort, analyzer.WithAsyncWrapperShort)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Find looks for a settings file in startDir and its parents.
// It returns false when there is none.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

// Load reads a settings file. Unknown keys are an error.
func Load(path string) (Settings, error) {
	var s Settings

	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return Settings{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if s.References != nil {
		dir := filepath.Dir(path)

		refs := make([]string, 0, len(*s.References))
		for _, ref := range *s.References {
			if !filepath.IsAbs(ref) {
				ref = filepath.Join(dir, filepath.FromSlash(ref))
			}

			refs = append(refs, ref)
		}

		s.References = &refs
	}

	return s, nil
}
