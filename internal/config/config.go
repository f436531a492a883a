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

package config

import (
	"log/slog"
	"strings"
)

// Config represents behavioral options for the rule.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// ReportMalformed enables diagnostics for response-type annotations without a payload type.
	ReportMalformed

	// InstanceOnly restricts the rule to instance methods.
	InstanceOnly
)

// Behavior is the set of enabled [Config] flags.
type Behavior = BitMask[Config]

// DefaultBehavior returns the behavior flags enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask(ReportMalformed)
}

// Names are the well-known names the rule matches against.
//
// Swapping them adapts the rule to a different annotation ecosystem.
type Names struct {
	// RouteAttribute is the metadata name of the HTTP verb/route attribute base type.
	RouteAttribute string

	// Controller is the metadata name of the controller base type.
	Controller string

	// ResponseTypeAttribute is the metadata name of the response-type annotation.
	ResponseTypeAttribute string

	// SuccessStatusCode is the source text of the success status code expression.
	SuccessStatusCode string

	// AsyncWrapper is the metadata name of the asynchronous wrapper type.
	AsyncWrapper string

	// AsyncWrapperShort is the short name of the asynchronous wrapper type.
	AsyncWrapperShort string
}

// DefaultNames returns the ASP.NET Core names.
func DefaultNames() Names {
	return Names{
		RouteAttribute:        "Microsoft.AspNetCore.Mvc.Routing.HttpMethodAttribute",
		Controller:            "Microsoft.AspNetCore.Mvc.Controller",
		ResponseTypeAttribute: "Microsoft.AspNetCore.Mvc.ProducesResponseTypeAttribute",
		SuccessStatusCode:     "Microsoft.AspNetCore.Http.StatusCodes.Status200OK",
		AsyncWrapper:          "System.Threading.Tasks.Task",
		AsyncWrapperShort:     "Task",
	}
}

// ResponseTypeShortName returns the name the response-type annotation is applied with,
// e.g. "ProducesResponseType" for "Microsoft.AspNetCore.Mvc.ProducesResponseTypeAttribute".
func (n Names) ResponseTypeShortName() string {
	name := n.ResponseTypeAttribute
	if i := strings.LastIndexAny(name, ".+"); i >= 0 {
		name = name[i+1:]
	}

	if short := strings.TrimSuffix(name, "Attribute"); short != "" {
		return short
	}

	return name
}

// LogValue implements [slog.LogValuer].
func (n Names) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("route", n.RouteAttribute),
		slog.String("controller", n.Controller),
		slog.String("response-type", n.ResponseTypeAttribute),
		slog.String("status", n.SuccessStatusCode),
		slog.String("async", n.AsyncWrapper),
		slog.String("async-short", n.AsyncWrapperShort),
	)
}
