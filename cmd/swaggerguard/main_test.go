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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thammet/swaggerguard/internal/metadata"
)

const controller = `using System.Threading.Tasks;
using Microsoft.AspNetCore.Mvc;

namespace Shop
{
    public class Widget { }

    public class WidgetsController : Controller
    {
        [HttpGet]
        public Task<Widget> Get() => null;

        [HttpPost]
        [ProducesResponseType(201)]
        public Widget Post() => null;

        public static Widget Create() => null;

        [HttpPut]
        public static Widget Replace() => null;
    }
}
`

const fixed = `using System.Threading.Tasks;
using Microsoft.AspNetCore.Mvc;

namespace Shop
{
    public class Widget { }

    public class WidgetsController : Controller
    {
        [HttpGet]
        [ProducesResponseType(Microsoft.AspNetCore.Http.StatusCodes.Status200OK, Type = typeof(Widget))]
        public Task<Widget> Get() => null;

        [HttpPost]
        [ProducesResponseType(201)]
        [ProducesResponseType(Microsoft.AspNetCore.Http.StatusCodes.Status200OK, Type = typeof(Widget))]
        public Widget Post() => null;

        public static Widget Create() => null;

        [HttpPut]
        [ProducesResponseType(Microsoft.AspNetCore.Http.StatusCodes.Status200OK, Type = typeof(Widget))]
        public static Widget Replace() => null;
    }
}
`

func project(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600))
	}

	return dir
}

func run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer

	code = execute(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"WidgetsController.cs": controller})

	tests := [...]struct {
		name string
		args []string
		code int
		want []string
	}{
		{
			name: "default",
			code: 1,
			want: []string{
				"WidgetsController.cs:11:29: warning: Controller action 'Get' has no ProducesResponseType annotation matching its return type [MissingSwaggerAnnotations]",
				"WidgetsController.cs:14:10: warning: ProducesResponseType annotation on 'Post' declares no response type [MalformedSwaggerAnnotation]",
				"WidgetsController.cs:15:23: warning: Controller action 'Post' has no ProducesResponseType annotation matching its return type [MissingSwaggerAnnotations]",
				"WidgetsController.cs:20:30: warning: Controller action 'Replace' has no ProducesResponseType annotation matching its return type [MissingSwaggerAnnotations]",
			},
		},
		{
			name: "flags",
			args: []string{"--instance-only", "--malformed=false", "--severity=error"},
			code: 1,
			want: []string{
				"WidgetsController.cs:11:29: error: Controller action 'Get'",
				"WidgetsController.cs:15:23: error: Controller action 'Post'",
			},
		},
		{
			name: "info",
			args: []string{"--severity=info", "--malformed-severity=off"},
			code: 0,
			want: []string{
				"WidgetsController.cs:11:29: info:",
				"WidgetsController.cs:15:23: info:",
				"WidgetsController.cs:20:30: info:",
			},
		},
		{
			name: "off",
			args: []string{"--severity=off", "--malformed-severity=off"},
			code: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"check", "--color=off"}, tt.args...)
			code, stdout, stderr := run(append(args, dir)...)

			assert.Equal(t, tt.code, code, "stderr: %s", stderr)

			lines := strings.Split(strings.TrimSpace(stdout), "\n")
			if len(tt.want) == 0 {
				assert.Empty(t, strings.TrimSpace(stdout))

				return
			}

			require.Len(t, lines, len(tt.want), stdout)

			for i, want := range tt.want {
				assert.Contains(t, filepath.ToSlash(lines[i]), want)
			}
		})
	}
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"WidgetsController.cs": controller})

	code, stdout, _ := run("check", "--format=json", "--malformed=false", dir)
	assert.Equal(t, 1, code)

	var out struct {
		Diagnostics []struct {
			Rule     string `json:"rule"`
			Severity string `json:"severity"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out), stdout)

	require.Len(t, out.Diagnostics, 3)

	for _, d := range out.Diagnostics {
		assert.Equal(t, "MissingSwaggerAnnotations", d.Rule)
		assert.Equal(t, "warning", d.Severity)
	}
}

func TestSettingsFile(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		"WidgetsController.cs": controller,
		"swaggerguard.toml":    "severity = \"error\"\nmalformed = false\ninstance-only = true\n",
	})

	code, stdout, stderr := run("check", dir)
	assert.Equal(t, 1, code, stderr)
	assert.Equal(t, 2, strings.Count(stdout, ": error: "), stdout)

	// Flags override the settings file.
	code, stdout, stderr = run("check", "--instance-only=false", "--severity=info", dir)
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, 3, strings.Count(stdout, ": info: "), stdout)

	code, _, stderr = run("check", "--config", filepath.Join(dir, "missing.toml"), dir)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "missing.toml")
}

func TestInvalidSettings(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		"WidgetsController.cs": controller,
		"swaggerguard.toml":    "shadow = true\n",
	})

	code, _, stderr := run("check", dir)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown keys shadow")
}

func TestFix(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"WidgetsController.cs": controller})
	path := filepath.Join(dir, "WidgetsController.cs")

	code, stdout, stderr := run("fix", "--color=off", "--dry-run", dir)
	assert.Equal(t, 1, code, stderr)
	assert.Contains(t, stdout, "Would fix ")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, controller, string(b), "dry run leaves files alone")

	code, stdout, stderr = run("fix", "--color=off", dir)
	assert.Equal(t, 1, code, "malformed annotation remains: %s", stderr)
	assert.Contains(t, stdout, "Fixed ")
	assert.Contains(t, stdout, "[MalformedSwaggerAnnotation]")
	assert.NotContains(t, stdout, "[MissingSwaggerAnnotations]")

	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixed, string(b))

	code, stdout, _ = run("check", "--malformed=false", dir)
	assert.Equal(t, 0, code, stdout)
	assert.Empty(t, stdout)
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ref := filepath.Join(dir, "contracts.yaml")
	require.NoError(t, os.WriteFile(ref, []byte("types:\n  - { name: Shop.Contracts.Widget, kind: class }\n"), 0o600))

	code, stdout, stderr := run("catalog", "--reference", ref)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "name: Shop.Contracts.Widget")
	assert.Contains(t, stdout, "name: Microsoft.AspNetCore.Mvc.Controller")

	out := filepath.Join(dir, "catalog.msgpack")

	code, _, stderr = run("catalog", "--reference", ref, "-o", out)
	require.Equal(t, 0, code, stderr)

	c, err := metadata.Load(out)
	require.NoError(t, err)

	def, err := metadata.Default()
	require.NoError(t, err)
	assert.Len(t, c.Types, len(def.Types)+1)

	code, _, stderr = run("catalog", "--format", "xml")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unsupported format")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	code, stdout, _ := run("version", "--format=json")
	require.Equal(t, 0, code)

	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))

	assert.Equal(t, "swaggerguard", payload.Tool)
	assert.NotEmpty(t, payload.Version)
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	code, _, stderr := run("check", "--color=sometimes", t.TempDir())
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid --color value")

	code, _, stderr = run("check", "--severity=loud", t.TempDir())
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown severity")

	code, _, stderr = run("check", t.TempDir())
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "no C# source files")
}
