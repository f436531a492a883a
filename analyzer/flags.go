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
	"flag"

	"github.com/thammet/swaggerguard/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(r *runOptions, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(&r.severity, "severity", "severity of missing annotation diagnostics (error, warning, info, off)")
	flags.Var(&r.malformed, "malformed-severity", "severity of malformed annotation diagnostics")

	flags.Var(behaviorValue(&r.behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(behaviorValue(&r.behavior, config.ReportMalformed), "malformed", "report annotations without response type")
	flags.Var(behaviorValue(&r.behavior, config.InstanceOnly), "instance-only", "check instance methods only")

	flags.IntVar(&r.jobs, "jobs", r.jobs, "maximum number of concurrent jobs")

	flags.StringVar(&r.names.RouteAttribute, "route-attribute", r.names.RouteAttribute, "metadata name of the route attribute base type")
	flags.StringVar(&r.names.Controller, "controller", r.names.Controller, "metadata name of the controller base type")
	flags.StringVar(&r.names.ResponseTypeAttribute, "response-type-attribute", r.names.ResponseTypeAttribute, "metadata name of the response-type annotation")
	flags.StringVar(&r.names.SuccessStatusCode, "success-status-code", r.names.SuccessStatusCode, "status code expression inserted by fixes")
	flags.StringVar(&r.names.AsyncWrapper, "async-wrapper", r.names.AsyncWrapper, "metadata name of the asynchronous wrapper type")
	flags.StringVar(&r.names.AsyncWrapperShort, "async-wrapper-short", r.names.AsyncWrapperShort, "short name of the asynchronous wrapper type")
}
