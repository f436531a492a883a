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

// Command swaggerguard reports ASP.NET Core controller actions whose return type is
// not declared by a ProducesResponseType annotation, and adds the missing annotations.
//
// Usage:
//
//	swaggerguard check [flags] [path...]
//	swaggerguard fix [flags] [path...]
//
// Paths name C# files or directories; the default is the working directory.
// Settings are read from the nearest swaggerguard.toml unless --config is given,
// command line flags take precedence.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// errFindings is returned by commands that reported diagnostics at warning level or above.
var errFindings = errors.New("diagnostics reported")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code:
// 0 on success, 1 when diagnostics were reported and 2 on failure.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	switch err := cmd.Execute(); {
	case err == nil:
		return 0

	case errors.Is(err, errFindings):
		return 1

	default:
		fmt.Fprintf(stderr, "swaggerguard: %v\n", err)

		return 2
	}
}
