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

package level

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type Severity -linecomment

// Severity specifies how a diagnostic is reported.
type Severity uint8

const (
	// SeverityWarning reports the diagnostic as a warning.
	SeverityWarning Severity = iota // warning

	// SeverityError reports the diagnostic as an error.
	SeverityError // error

	// SeverityInfo reports the diagnostic as information only.
	SeverityInfo // info

	// SeverityOff disables the diagnostic.
	SeverityOff // off
)

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityWarning, SeverityError, SeverityInfo, SeverityOff:
		return []byte(s.String()), nil

	default:
		return nil, fmt.Errorf("unknown severity %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "warning", "warn":
		*s = SeverityWarning

	case "error":
		*s = SeverityError

	case "info", "suggestion":
		*s = SeverityInfo

	case "off", "none", "false":
		*s = SeverityOff

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}

// Set implements [flag.Value].
func (s *Severity) Set(text string) error { return s.UnmarshalText([]byte(text)) }

// Enabled reports whether diagnostics with this severity are reported at all.
func (s Severity) Enabled() bool { return s != SeverityOff }

// AtLeast reports whether s is enabled and at least as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s.Enabled() && s.rank() >= min.rank()
}

func (s Severity) rank() int {
	switch s {
	case SeverityInfo:
		return 1

	case SeverityWarning:
		return 2

	case SeverityError:
		return 3

	default:
		return 0
	}
}
