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
	"runtime"

	"github.com/thammet/swaggerguard/analyzer/level"
	"github.com/thammet/swaggerguard/internal/config"
)

// Options represent configuration options for a swaggerguard run.
type Options struct {
	// Names are the well-known type names the rule matches against.
	Names config.Names

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Severity is the severity of missing annotation diagnostics.
	Severity level.Severity

	// MalformedSeverity is the severity of malformed annotation diagnostics.
	MalformedSeverity level.Severity

	// Jobs limits the number of methods classified concurrently.
	Jobs int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Names:             config.DefaultNames(),
		Behavior:          config.DefaultBehavior(),
		Severity:          level.SeverityWarning,
		MalformedSeverity: level.SeverityWarning,
		Jobs:              runtime.GOMAXPROCS(0),
	}
}
