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

package run_test

import (
	"context"
	"errors"
	"go/token"
	"testing"

	"github.com/thammet/swaggerguard/analyzer/level"
	"github.com/thammet/swaggerguard/internal/config"
	"github.com/thammet/swaggerguard/internal/report"
	. "github.com/thammet/swaggerguard/internal/run"
	"github.com/thammet/swaggerguard/internal/testsource"
)

const actions = `        [HttpGet]
        public Task<Widget> Get() => null;

        [HttpGet("all")]
        [ProducesResponseType(typeof(List<Widget>), 200)]
        public Task<List<Widget>> All() => null;

        [HttpPost]
        [ProducesResponseType(200)]
        public Widget Post() => null;

        [HttpDelete]
        public static Widget Delete() => null;

        [HttpPut]
        public Task Put() => null;

        public Widget Helper() => null;
`

type allGenerated bool

func (g allGenerated) Generated(token.Pos) bool { return bool(g) }

func rules(ds []report.Diagnostic) []string {
	var rs []string
	for _, d := range ds {
		rs = append(rs, d.Rule)
	}

	return rs
}

func TestRun(t *testing.T) {
	t.Parallel()

	malformedOff := DefaultOptions()
	malformedOff.Behavior.Set(config.ReportMalformed, false)

	instanceOnly := DefaultOptions()
	instanceOnly.Behavior.Set(config.InstanceOnly, true)

	generated := DefaultOptions()
	generated.Behavior.Set(config.IncludeGenerated, true)

	off := DefaultOptions()
	off.Severity = level.SeverityOff

	sequential := DefaultOptions()
	sequential.Jobs = 1

	const (
		missing   = report.MissingSwaggerAnnotations
		malformed = report.MalformedSwaggerAnnotation
	)

	tests := [...]struct {
		name    string
		options *Options
		files   Files
		want    []string
	}{
		{"default", DefaultOptions(), nil, []string{missing, malformed, missing, missing}},
		{"sequential", sequential, nil, []string{missing, malformed, missing, missing}},
		{"malformed_off", malformedOff, nil, []string{missing, missing, missing}},
		{"instance_only", instanceOnly, nil, []string{missing, malformed, missing}},
		{"generated_skipped", DefaultOptions(), allGenerated(true), nil},
		{"generated_included", generated, allGenerated(true), []string{missing, malformed, missing, missing}},
		{"severity_off", off, nil, []string{malformed}},
	}

	_, _, comp := testsource.Bind(t, testsource.Wrap(actions))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ds, err := tt.options.Run(t.Context(), comp, tt.files)
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}

			got := rules(ds)
			if len(got) != len(tt.want) {
				t.Fatalf("Got diagnostics %v, want %v", got, tt.want)
			}

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Diagnostic %d = %s, want %s", i, got[i], tt.want[i])
				}
			}

			for i := 1; i < len(ds); i++ {
				if ds[i].Pos < ds[i-1].Pos {
					t.Errorf("Diagnostics not in source order")
				}
			}
		})
	}
}

func TestRunMessages(t *testing.T) {
	t.Parallel()

	_, _, comp := testsource.Bind(t, testsource.Wrap(actions))

	ds, err := DefaultOptions().Run(t.Context(), comp, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := [...]string{
		"Controller action 'Get' has no ProducesResponseType annotation matching its return type",
		"ProducesResponseType annotation on 'Post' declares no response type",
		"Controller action 'Post' has no ProducesResponseType annotation matching its return type",
		"Controller action 'Delete' has no ProducesResponseType annotation matching its return type",
	}

	if len(ds) != len(want) {
		t.Fatalf("Got %d diagnostics, want %d", len(ds), len(want))
	}

	for i, d := range ds {
		if d.Message != want[i] {
			t.Errorf("Diagnostic %d = %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	_, _, comp := testsource.Bind(t, testsource.Wrap(actions))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := DefaultOptions().Run(ctx, comp, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}

func TestRunTupleActions(t *testing.T) {
	t.Parallel()

	_, _, comp := testsource.Bind(t, testsource.Wrap(`        [HttpGet("pair")]
        public Task<(int, string)> Pair() => null;

        [HttpGet("counted")]
        [ProducesResponseType(typeof((int, string)), 200)]
        public (int Count, string Name) Counted() => default;

        [HttpGet("many")]
        [ProducesResponseType(typeof((int, int, int, int, int, int, int, int)), 200)]
        public Task<(int, int, int, int, int, int, int, int)> Many() => null;
`))

	ds, err := DefaultOptions().Run(t.Context(), comp, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	const want = "Controller action 'Pair' has no ProducesResponseType annotation matching its return type"

	if len(ds) != 1 || ds[0].Message != want {
		t.Errorf("Got diagnostics %v, want %q", ds, want)
	}
}
