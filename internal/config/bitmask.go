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

// BitMask is the set of behavior flags enabled for the rule, such as [IncludeGenerated]
// or [ReportMalformed]. The zero value has every flag disabled.
type BitMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	bits T
}

// NewBitMask returns a [BitMask] with flags enabled.
func NewBitMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, f := range flags {
		b.bits |= f
	}

	return b
}

// Set turns flag on or off, as the boolean command line flags and settings do.
func (b *BitMask[T]) Set(flag T, on bool) {
	if on {
		b.bits |= flag

		return
	}

	b.bits &^= flag
}

// Enabled reports whether flag is turned on.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.bits&flag != 0
}
