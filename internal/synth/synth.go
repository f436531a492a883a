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

// Package synth adds response-type annotations to method declarations.
//
// Trees are never modified. Each edit builds a new method declaration that shares
// every untouched field with the original and splices it into a new tree with
// [syntax.Replace].
package synth

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/thammet/swaggerguard/internal/classify"
	"github.com/thammet/swaggerguard/internal/config"
	"github.com/thammet/swaggerguard/internal/parser"
	"github.com/thammet/swaggerguard/syntax"
)

var (
	// ErrNoMethod is returned when no method declaration encloses the fix position.
	ErrNoMethod = errors.New("no method declaration at position")

	// ErrNoReturnType is returned for declarations without a return type.
	ErrNoReturnType = errors.New("method declaration has no return type")
)

// Fix adds a response-type annotation to the method declaration enclosing pos and
// returns the new tree.
func Fix(root syntax.Node, pos token.Pos, names config.Names) (syntax.Node, error) {
	old, ok := syntax.FindMethodAt(root, pos)
	if !ok {
		return root, fmt.Errorf("%w %d", ErrNoMethod, pos)
	}

	m, err := AddAnnotation(old, names)
	if err != nil {
		return root, err
	}

	return syntax.Replace(root, old, m), nil
}

// FixAll applies [Fix] at every position in turn. Positions refer to root; they stay valid
// across edits since untouched tokens are shared between tree versions.
func FixAll(root syntax.Node, positions []token.Pos, names config.Names) (syntax.Node, error) {
	var errs []error

	for _, pos := range positions {
		r, err := Fix(root, pos, names)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		root = r
	}

	return root, errors.Join(errs...)
}

// AddAnnotation returns a copy of m with one new attribute list appended to its
// attribute lists:
//
//	[ProducesResponseType(Microsoft.AspNetCore.Http.StatusCodes.Status200OK, Type = typeof(Widget))]
//
// The payload type is the normalized return type as written. The new list is placed
// on its own line at the indentation of the declaration; on a single-line declaration
// it is separated by a space.
func AddAnnotation(m *syntax.MethodDecl, names config.Names) (*syntax.MethodDecl, error) {
	if m.ReturnType == nil {
		return nil, ErrNoReturnType
	}

	attr, err := annotation(m, names)
	if err != nil {
		return nil, err
	}

	first := firstToken(m)

	newline := "\n"
	if strings.Contains(first.Leading, "\r\n") {
		newline = "\r\n"
	}

	sep := newline + indentation(first.Leading)

	// head is the token following the attribute lists.
	head := firstToken(m.ReturnType)
	if len(m.Modifiers) > 0 {
		head = m.Modifiers[0]
	}

	var open, lead string

	switch i := strings.IndexByte(head.Leading, '\n'); {
	case len(m.AttributeLists) == 0:
		// The new list becomes the first token and takes over the declaration's trivia.
		open, lead = head.Leading, sep

	case i >= 0:
		// A comment trailing the last list stays on its line.
		trailing := strings.TrimSuffix(head.Leading[:i], "\r")
		open, lead = trailing+sep, head.Leading[len(trailing):]

	default:
		open, lead = " ", head.Leading
	}

	list := &syntax.AttributeList{
		Open:       syntax.NewToken(syntax.Punct, "[", open),
		Attributes: []*syntax.Attribute{attr},
		Close:      syntax.NewToken(syntax.Punct, "]", ""),
	}

	c := *m

	// Only the trivia of head changes, its text and position are kept.
	if lead != head.Leading {
		moved := syntax.NewToken(head.Kind, head.Text, lead)
		moved.Pos = head.Pos

		if len(m.Modifiers) > 0 {
			c.Modifiers = slices.Clone(m.Modifiers)
			c.Modifiers[0] = moved
		} else {
			c.ReturnType = withFirstToken(m.ReturnType, moved)
		}
	}

	c.AttributeLists = append(slices.Clip(m.AttributeLists), list)

	return &c, nil
}

func annotation(m *syntax.MethodDecl, names config.Names) (*syntax.Attribute, error) {
	name, err := parser.ParseType(names.ResponseTypeShortName())
	if err != nil {
		return nil, fmt.Errorf("response-type attribute name: %w", err)
	}

	status, err := parser.ParseAttributeArgument(names.SuccessStatusCode)
	if err != nil {
		return nil, fmt.Errorf("success status code: %w", err)
	}

	payload := classify.Normalize(syntax.Text(m.ReturnType), names.AsyncWrapperShort, names.AsyncWrapper)

	typ, err := parser.ParseAttributeArgument(" Type = typeof(" + payload + ")")
	if err != nil {
		return nil, fmt.Errorf("payload type: %w", err)
	}

	return &syntax.Attribute{
		Name: name,
		ArgumentList: &syntax.AttributeArgumentList{
			Open:      syntax.NewToken(syntax.Punct, "(", ""),
			Arguments: []*syntax.AttributeArgument{status, typ},
			Commas:    []*syntax.Token{syntax.NewToken(syntax.Punct, ",", "")},
			Close:     syntax.NewToken(syntax.Punct, ")", ""),
		},
	}, nil
}

func firstToken(n syntax.Node) *syntax.Token {
	for t := range syntax.Tokens(n) {
		return t
	}

	return syntax.NewToken(syntax.EOF, "", "")
}

// indentation returns the whitespace following the last line break in leading.
func indentation(leading string) string {
	i := strings.LastIndexByte(leading, '\n')
	if i < 0 {
		return ""
	}

	line := leading[i+1:]
	if strings.TrimLeft(line, " \t") != "" {
		return ""
	}

	return line
}

func withFirstToken(t *syntax.TypeSyntax, tok *syntax.Token) *syntax.TypeSyntax {
	c := *t

	switch {
	case c.Global != nil:
		c.Global = tok

		return &c

	case c.Tuple != nil:
		tuple := *c.Tuple
		tuple.Open = tok
		c.Tuple = &tuple

		return &c
	}

	c.Segments = slices.Clone(t.Segments)
	seg := *c.Segments[0]
	seg.Identifier = tok
	c.Segments[0] = &seg

	return &c
}
