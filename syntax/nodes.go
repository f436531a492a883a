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

// Node is an immutable syntax tree node.
//
// Nodes are never modified after construction; edits produce new nodes that share
// every untouched subtree with the original (see [Replace]).
type Node interface {
	// Pos returns the position of the first token that has one.
	Pos() token.Pos

	// End returns the end position of the last token that has one.
	End() token.Pos

	walk(yield func(*Token) bool) bool
	children() []Node
}

// Expr is an attribute argument expression.
type Expr interface {
	Node
	exprNode()
}

// CompilationUnit is the root of a source file.
type CompilationUnit struct {
	// Members are *UsingDirective, *NamespaceDecl, *ClassDecl or *MemberDecl nodes.
	Members []Node
	EOF     *Token
}

// UsingDirective is a using directive, optionally global, static or aliased.
type UsingDirective struct {
	Global      *Token
	Using       *Token
	Static      *Token
	Alias       *Token
	AliasEquals *Token
	Name        *TypeSyntax
	Semicolon   *Token
}

// NamespaceDecl is a block or file-scoped namespace declaration.
type NamespaceDecl struct {
	Keyword *Token
	Name    *TypeSyntax

	// Open and Close are nil for a file-scoped namespace.
	Open    *Token
	Members []Node
	Close   *Token

	// Semicolon terminates a file-scoped namespace header, or optionally follows Close.
	Semicolon *Token
}

// FileScoped reports whether the namespace is declared with a semicolon instead of a block.
func (n *NamespaceDecl) FileScoped() bool { return n.Open == nil }

// ClassDecl is a class, struct, record or interface declaration.
type ClassDecl struct {
	AttributeLists    []*AttributeList
	Modifiers         []*Token
	Keywords          []*Token // class, struct, interface, record, record class, record struct
	Identifier        *Token
	TypeParameterList *TokenList
	ParameterList     *TokenList // record primary constructor
	BaseList          *BaseList
	ConstraintClauses *TokenList
	Open              *Token
	Members           []Node
	Close             *Token
	Semicolon         *Token
}

// BaseList is the list of base types following a colon.
type BaseList struct {
	Colon  *Token
	Types  []*TypeSyntax
	Commas []*Token
}

// MethodDecl is a method declaration.
type MethodDecl struct {
	AttributeLists    []*AttributeList
	Modifiers         []*Token
	ReturnType        *TypeSyntax
	ExplicitInterface *TokenList // e.g. "IService." including the trailing dot
	Identifier        *Token
	TypeParameterList *TokenList
	ParameterList     *TokenList
	ConstraintClauses *TokenList
	Body              *TokenList // braces included
	ExpressionBody    *TokenList // "=>" and the expression
	Semicolon         *Token
}

// HasModifier reports whether the method carries the given modifier keyword.
func (m *MethodDecl) HasModifier(text string) bool {
	for _, mod := range m.Modifiers {
		if mod.Text == text {
			return true
		}
	}

	return false
}

// MemberDecl is a member the parser keeps as an opaque token run:
// fields, properties, constructors, operators, events, enums and delegates.
type MemberDecl struct {
	Tokens []*Token
}

// TokenList is an opaque run of tokens, such as a parameter list or a method body.
type TokenList struct {
	Tokens []*Token
}

// AttributeList is a bracketed attribute section, e.g. [HttpGet, Route("x")].
type AttributeList struct {
	Open        *Token
	Target      *Token // e.g. "return" or "method"
	TargetColon *Token
	Attributes  []*Attribute
	Commas      []*Token
	Close       *Token
}

// Attribute is a single attribute application.
type Attribute struct {
	Name         *TypeSyntax
	ArgumentList *AttributeArgumentList
}

// AttributeArgumentList is the parenthesized argument list of an attribute.
type AttributeArgumentList struct {
	Open      *Token
	Arguments []*AttributeArgument
	Commas    []*Token
	Close     *Token
}

// AttributeArgument is a positional, name-colon or name-equals attribute argument.
type AttributeArgument struct {
	NameEquals *NameEquals
	NameColon  *NameColon
	Expression Expr
}

// NameEquals is the "Name =" prefix of a property assignment.
type NameEquals struct {
	Name   *Token
	Equals *Token
}

// NameColon is the "name:" prefix of a named constructor argument.
type NameColon struct {
	Name  *Token
	Colon *Token
}

// TypeSyntax is a possibly qualified, possibly generic type name with suffixes.
// A tuple type has no segments.
type TypeSyntax struct {
	Global     *Token // "global"
	ColonColon *Token // "::"
	Segments   []*NameSegment
	Dots       []*Token
	Tuple      *TupleType
	Suffixes   []*Token // "?", "*", "[", ",", "]"
}

// TupleType is a tuple type, e.g. (int Id, string Name).
type TupleType struct {
	Open     *Token
	Elements []*TupleElement
	Commas   []*Token
	Close    *Token
}

// TupleElement is one element of a [TupleType] with an optional name.
type TupleElement struct {
	Type *TypeSyntax
	Name *Token
}

// NameSegment is one dotted part of a [TypeSyntax].
type NameSegment struct {
	Identifier *Token
	TypeArgs   *TypeArgumentList
}

// TypeArgumentList is a generic argument list, e.g. <int, string>.
type TypeArgumentList struct {
	Less    *Token
	Args    []*TypeSyntax
	Commas  []*Token
	Greater *Token
}

// TypeOfExpr is typeof(T).
type TypeOfExpr struct {
	Keyword *Token
	Open    *Token
	Type    *TypeSyntax
	Close   *Token
}

// LiteralExpr is a single literal token.
type LiteralExpr struct {
	Token *Token
}

// RawExpr is any other expression, kept as tokens.
type RawExpr struct {
	Tokens []*Token
}

func (*TypeOfExpr) exprNode()  {}
func (*LiteralExpr) exprNode() {}
func (*RawExpr) exprNode()     {}

// Pos and End implementations.

func (n *CompilationUnit) Pos() token.Pos       { return firstPos(n) }
func (n *CompilationUnit) End() token.Pos       { return lastEnd(n) }
func (n *UsingDirective) Pos() token.Pos        { return firstPos(n) }
func (n *UsingDirective) End() token.Pos        { return lastEnd(n) }
func (n *NamespaceDecl) Pos() token.Pos         { return firstPos(n) }
func (n *NamespaceDecl) End() token.Pos         { return lastEnd(n) }
func (n *ClassDecl) Pos() token.Pos             { return firstPos(n) }
func (n *ClassDecl) End() token.Pos             { return lastEnd(n) }
func (n *BaseList) Pos() token.Pos              { return firstPos(n) }
func (n *BaseList) End() token.Pos              { return lastEnd(n) }
func (n *MethodDecl) Pos() token.Pos            { return firstPos(n) }
func (n *MethodDecl) End() token.Pos            { return lastEnd(n) }
func (n *MemberDecl) Pos() token.Pos            { return firstPos(n) }
func (n *MemberDecl) End() token.Pos            { return lastEnd(n) }
func (n *TokenList) Pos() token.Pos             { return firstPos(n) }
func (n *TokenList) End() token.Pos             { return lastEnd(n) }
func (n *AttributeList) Pos() token.Pos         { return firstPos(n) }
func (n *AttributeList) End() token.Pos         { return lastEnd(n) }
func (n *Attribute) Pos() token.Pos             { return firstPos(n) }
func (n *Attribute) End() token.Pos             { return lastEnd(n) }
func (n *AttributeArgumentList) Pos() token.Pos { return firstPos(n) }
func (n *AttributeArgumentList) End() token.Pos { return lastEnd(n) }
func (n *AttributeArgument) Pos() token.Pos     { return firstPos(n) }
func (n *AttributeArgument) End() token.Pos     { return lastEnd(n) }
func (n *NameEquals) Pos() token.Pos            { return firstPos(n) }
func (n *NameEquals) End() token.Pos            { return lastEnd(n) }
func (n *NameColon) Pos() token.Pos             { return firstPos(n) }
func (n *NameColon) End() token.Pos             { return lastEnd(n) }
func (n *TypeSyntax) Pos() token.Pos            { return firstPos(n) }
func (n *TypeSyntax) End() token.Pos            { return lastEnd(n) }
func (n *TypeOfExpr) Pos() token.Pos            { return firstPos(n) }
func (n *TypeOfExpr) End() token.Pos            { return lastEnd(n) }
func (n *LiteralExpr) Pos() token.Pos           { return firstPos(n) }
func (n *LiteralExpr) End() token.Pos           { return lastEnd(n) }
func (n *RawExpr) Pos() token.Pos               { return firstPos(n) }
func (n *RawExpr) End() token.Pos               { return lastEnd(n) }
