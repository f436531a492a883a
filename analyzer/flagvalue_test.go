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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "github.com/thammet/swaggerguard/analyzer"
	"github.com/thammet/swaggerguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Config
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.ReportMalformed,
			args:    []string{"-generated"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.IncludeGenerated,
			args:    []string{"-generated=false"},
			want:    false,
		},
		{
			name:    "On",
			initial: config.ReportMalformed,
			args:    []string{"-generated=on"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.IncludeGenerated
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "generated", "check generated files")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("IncludeGenerated enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if tt.initial != value && !flags.Enabled(tt.initial) {
				t.Errorf("Unrelated flag %v cleared", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewBehaviorValue(&flags, config.InstanceOnly), "instance-only", "check instance methods only")

	if err := fs.Parse([]string{"-instance-only=maybe"}); err == nil {
		t.Error("Parse accepted an invalid boolean")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.ReportMalformed)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.ReportMalformed)
	fs.Var(fv, "malformed", "report annotations without response type")

	const expectedUsage = `
  -malformed
    	report annotations without response type (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{
		"severity", "malformed-severity", "generated", "malformed", "instance-only", "jobs",
		"route-attribute", "controller", "response-type-attribute", "success-status-code",
		"async-wrapper", "async-wrapper-short",
	} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Flag -%s not registered", name)
		}
	}

	if err := a.Flags.Parse([]string{"-severity=error", "-response-type-attribute=Acme.ResponseTypeAttribute"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := a.FixTitle(), "Add ResponseType annotation"; got != want {
		t.Errorf("FixTitle() = %q, want %q", got, want)
	}
}
