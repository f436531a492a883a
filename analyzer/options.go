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
	"log/slog"
	"slices"

	"github.com/thammet/swaggerguard/analyzer/level"
	"github.com/thammet/swaggerguard/internal/config"
)

// Option configures specific behavior of a [New] swaggerguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSeverity is an [Option] to configure the severity of missing annotation diagnostics.
func WithSeverity(severity level.Severity) Option { return severityOption{severity: severity} }

type severityOption struct{ severity level.Severity }

func (o severityOption) apply(r *runOptions) {
	r.severity = o.severity
}

func (o severityOption) LogAttr() slog.Attr {
	return slog.String("severity", o.severity.String())
}

// WithMalformedSeverity is an [Option] to configure the severity of malformed annotation diagnostics.
func WithMalformedSeverity(severity level.Severity) Option {
	return malformedSeverityOption{severity: severity}
}

type malformedSeverityOption struct{ severity level.Severity }

func (o malformedSeverityOption) apply(r *runOptions) {
	r.malformed = o.severity
}

func (o malformedSeverityOption) LogAttr() slog.Attr {
	return slog.String("malformed-severity", o.severity.String())
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMalformed is an [Option] to configure diagnostics for response-type annotations without payload type.
func WithMalformed(malformed bool) Option { return malformedOption{malformed: malformed} }

type malformedOption struct{ malformed bool }

func (o malformedOption) apply(r *runOptions) {
	r.behavior.Set(config.ReportMalformed, o.malformed)
}

func (o malformedOption) LogAttr() slog.Attr {
	return slog.Bool("malformed", o.malformed)
}

// WithInstanceOnly is an [Option] to restrict the rule to instance methods.
func WithInstanceOnly(instanceOnly bool) Option { return instanceOnlyOption{instanceOnly: instanceOnly} }

type instanceOnlyOption struct{ instanceOnly bool }

func (o instanceOnlyOption) apply(r *runOptions) {
	r.behavior.Set(config.InstanceOnly, o.instanceOnly)
}

func (o instanceOnlyOption) LogAttr() slog.Attr {
	return slog.Bool("instance-only", o.instanceOnly)
}

// WithJobs is an [Option] to limit concurrency. Values below one remove the limit.
func WithJobs(jobs int) Option { return jobsOption{jobs: jobs} }

type jobsOption struct{ jobs int }

func (o jobsOption) apply(r *runOptions) {
	r.jobs = o.jobs
}

func (o jobsOption) LogAttr() slog.Attr {
	return slog.Int("jobs", o.jobs)
}

// WithReferences is an [Option] to add metadata catalogs for referenced assemblies.
func WithReferences(paths []string) Option { return referencesOption{paths: slices.Clone(paths)} }

type referencesOption struct{ paths []string }

func (o referencesOption) apply(r *runOptions) {
	r.references = append(r.references, o.paths...)
}

func (o referencesOption) LogAttr() slog.Attr {
	return slog.Any("references", o.paths)
}

// nameOption overrides one of the well-known type names.
type nameOption struct {
	key   string
	value string
	field func(n *config.Names) *string
}

func (o nameOption) apply(r *runOptions) {
	*o.field(&r.names) = o.value
}

func (o nameOption) LogAttr() slog.Attr {
	return slog.String(o.key, o.value)
}

// WithRouteAttribute is an [Option] to set the metadata name of the route attribute base type.
func WithRouteAttribute(name string) Option {
	return nameOption{"route-attribute", name, func(n *config.Names) *string { return &n.RouteAttribute }}
}

// WithController is an [Option] to set the metadata name of the controller base type.
func WithController(name string) Option {
	return nameOption{"controller", name, func(n *config.Names) *string { return &n.Controller }}
}

// WithResponseTypeAttribute is an [Option] to set the metadata name of the response-type annotation.
func WithResponseTypeAttribute(name string) Option {
	return nameOption{"response-type-attribute", name, func(n *config.Names) *string { return &n.ResponseTypeAttribute }}
}

// WithSuccessStatusCode is an [Option] to set the status code expression inserted by fixes.
func WithSuccessStatusCode(expr string) Option {
	return nameOption{"success-status-code", expr, func(n *config.Names) *string { return &n.SuccessStatusCode }}
}

// WithAsyncWrapper is an [Option] to set the metadata name of the asynchronous wrapper type.
func WithAsyncWrapper(name string) Option {
	return nameOption{"async-wrapper", name, func(n *config.Names) *string { return &n.AsyncWrapper }}
}

// WithAsyncWrapperShort is an [Option] to set the short name of the asynchronous wrapper type.
func WithAsyncWrapperShort(name string) Option {
	return nameOption{"async-wrapper-short", name, func(n *config.Names) *string { return &n.AsyncWrapperShort }}
}
