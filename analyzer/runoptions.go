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
	"runtime"

	"github.com/thammet/swaggerguard/analyzer/level"
	"github.com/thammet/swaggerguard/internal/config"
	"github.com/thammet/swaggerguard/internal/run"
)

// runOptions represent configuration options for the swaggerguard analyzer.
type runOptions struct {
	// names are the well-known type names the rule matches against.
	names config.Names

	// behavior holds behavioral options.
	behavior config.Behavior

	// severity is the severity of missing annotation diagnostics.
	severity level.Severity

	// malformed is the severity of malformed annotation diagnostics.
	malformed level.Severity

	// jobs limits the number of concurrently parsed files and classified methods.
	jobs int

	// references are additional metadata catalogs.
	references []string
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		names:     config.DefaultNames(),
		behavior:  config.DefaultBehavior(),
		severity:  level.SeverityWarning,
		malformed: level.SeverityWarning,
		jobs:      runtime.GOMAXPROCS(0),
	}
}

// runner returns the classification stage configured by r.
func (r *runOptions) runner() *run.Options {
	return &run.Options{
		Names:             r.names,
		Behavior:          r.behavior,
		Severity:          r.severity,
		MalformedSeverity: r.malformed,
		Jobs:              r.jobs,
	}
}
