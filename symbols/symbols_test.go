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

package symbols_test

import (
	"testing"

	. "github.com/thammet/swaggerguard/symbols"
)

type named struct {
	name string
	base Type
}

func (n *named) Name() string   { return n.name }
func (n *named) String() string { return n.name }
func (*named) Kind() TypeKind   { return Class }
func (n *named) BaseType() Type { return n.base }

func TestIdentical(t *testing.T) {
	t.Parallel()

	a, b := &named{name: "A"}, &named{name: "A"}

	tests := []struct {
		name string
		x, y Type
		want bool
	}{
		{"same", a, a, true},
		{"equal names", a, b, false},
		{"left nil", nil, a, false},
		{"right nil", a, nil, false},
		{"both nil", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Identical(tt.x, tt.y); got != tt.want {
				t.Errorf("Identical() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstantString(t *testing.T) {
	t.Parallel()

	widget := &named{name: "Shop.Widget"}

	tests := []struct {
		name  string
		value Constant
		want  string
	}{
		{"type", Constant{Kind: TypeConstant, Value: Type(widget)}, "Shop.Widget"},
		{"int", Constant{Kind: PrimitiveConstant, Value: int64(200)}, "200"},
		{"string", Constant{Kind: PrimitiveConstant, Value: "text/plain"}, "text/plain"},
		{"bool", Constant{Kind: PrimitiveConstant, Value: true}, "true"},
		{"null", Constant{Kind: PrimitiveConstant}, "null"},
		{"expression", Constant{Kind: ExpressionConstant, Value: "StatusCodes.Status200OK"}, "StatusCodes.Status200OK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	if typ, ok := (Constant{Kind: PrimitiveConstant, Value: "x"}).Type(); ok || typ != nil {
		t.Errorf("Type() of a primitive = %v, %v, want nil, false", typ, ok)
	}
}
