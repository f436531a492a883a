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

// Package analyzer implements the swaggerguard check for ASP.NET Core controllers.
//
// # Overview
//
// SwaggerGuard detects controller actions whose response type is not documented with a
// ProducesResponseType annotation matching the declared return type, and offers a fix
// adding one.
//
// A method is checked when it returns a value, carries an HTTP verb attribute such as
// [HttpGet] and is declared on a type derived from Controller. One layer of Task<T> is
// unwrapped before comparing.
//
// # Example
//
// Before:
//
//	[HttpGet("{id}")]
//	public async Task<Widget> Get(int id)
//	{
//	    return await _store.Find(id);
//	}
//
// After applying swaggerguard's suggested fix:
//
//	[HttpGet("{id}")]
//	[ProducesResponseType(Microsoft.AspNetCore.Http.StatusCodes.Status200OK, Type = typeof(Widget))]
//	public async Task<Widget> Get(int id)
//	{
//	    return await _store.Find(id);
//	}
//
// # Suppression
//
// Diagnostics are suppressed with #pragma warning disable MissingSwaggerAnnotations.
// Generated files are skipped unless [WithGenerated] is set.
package analyzer
