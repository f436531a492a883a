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

package syntax

import "go/token"

// TokenKind classifies a lexical [Token].
type TokenKind uint8

const (
	// EOF terminates a compilation unit and carries its trailing trivia.
	EOF TokenKind = iota

	// Ident is an identifier, possibly verbatim (@class).
	Ident

	// Keyword is a reserved word.
	Keyword

	// Number is a numeric literal.
	Number

	// String is a string literal in any of its forms.
	String

	// Char is a character literal.
	Char

	// Punct is an operator or punctuator.
	Punct
)

// Token is a lexical token together with the trivia preceding it.
//
// Tokens are immutable and shared between tree versions. Synthesized tokens carry
// [token.NoPos].
type Token struct {
	Kind TokenKind

	// Text is the token's source text.
	Text string

	// Leading holds the whitespace, comments and preprocessor lines before the token.
	Leading string

	// Pos is the position of the first character of Text.
	Pos token.Pos
}

// NewToken creates a synthesized token.
func NewToken(kind TokenKind, text, leading string) *Token {
	return &Token{Kind: kind, Text: text, Leading: leading}
}

// End returns the position immediately after the token's text.
func (t *Token) End() token.Pos {
	if !t.Pos.IsValid() {
		return token.NoPos
	}

	return t.Pos + token.Pos(len(t.Text))
}

// Is reports whether t is the punctuator or keyword with the given text.
func (t *Token) Is(text string) bool {
	return t != nil && (t.Kind == Punct || t.Kind == Keyword) && t.Text == text
}

// ValueText returns the identifier without a verbatim '@' prefix.
func (t *Token) ValueText() string {
	if t.Kind == Ident && len(t.Text) > 1 && t.Text[0] == '@' {
		return t.Text[1:]
	}

	return t.Text
}
