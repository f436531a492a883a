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

import (
	"go/token"
	"io"
	"iter"
	"strings"
)

// Tokens yields the tokens of n in source order.
func Tokens(n Node) iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		if n != nil {
			n.walk(yield)
		}
	}
}

// FullText returns the source text of n including all trivia.
func FullText(n Node) string {
	var b strings.Builder
	_ = Print(&b, n)

	return b.String()
}

// Text returns the source text of n without the trivia preceding its first token.
func Text(n Node) string {
	var b strings.Builder

	first := true
	for t := range Tokens(n) {
		if !first {
			b.WriteString(t.Leading)
		}

		b.WriteString(t.Text)
		first = false
	}

	return b.String()
}

// Print writes the full text of n to w.
func Print(w io.Writer, n Node) error {
	for t := range Tokens(n) {
		if _, err := io.WriteString(w, t.Leading); err != nil {
			return err
		}

		if _, err := io.WriteString(w, t.Text); err != nil {
			return err
		}
	}

	return nil
}

// Inspect traverses the tree rooted at n in depth-first order. If f returns false,
// the children of the node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for _, c := range n.children() {
		Inspect(c, f)
	}
}

// PathTo returns the chain of nodes from root down to the innermost node whose
// range contains pos. It returns nil when pos lies outside root.
func PathTo(root Node, pos token.Pos) []Node {
	if root == nil || !contains(root, pos) {
		return nil
	}

	path := []Node{root}

	for n := root; ; {
		next := Node(nil)

		for _, c := range n.children() {
			if contains(c, pos) {
				next = c

				break
			}
		}

		if next == nil {
			return path
		}

		path = append(path, next)
		n = next
	}
}

// FindMethodAt returns the innermost method declaration enclosing pos.
func FindMethodAt(root Node, pos token.Pos) (*MethodDecl, bool) {
	path := PathTo(root, pos)
	for i := len(path) - 1; i >= 0; i-- {
		if m, ok := path[i].(*MethodDecl); ok {
			return m, true
		}
	}

	return nil, false
}

func contains(n Node, pos token.Pos) bool {
	start, end := n.Pos(), n.End()

	return start.IsValid() && start <= pos && pos < end
}

func firstPos(n Node) token.Pos {
	for t := range Tokens(n) {
		if t.Pos.IsValid() {
			return t.Pos
		}
	}

	return token.NoPos
}

func lastEnd(n Node) token.Pos {
	end := token.NoPos

	for t := range Tokens(n) {
		if t.Pos.IsValid() {
			end = t.End()
		}
	}

	return end
}

func emit(yield func(*Token) bool, ts ...*Token) bool {
	for _, t := range ts {
		if t != nil && !yield(t) {
			return false
		}
	}

	return true
}

func emitAll[T Node](yield func(*Token) bool, ns []T) bool {
	for _, n := range ns {
		if !n.walk(yield) {
			return false
		}
	}

	return true
}

func emitSeparated[T Node](yield func(*Token) bool, items []T, seps []*Token) bool {
	for i, n := range items {
		if !n.walk(yield) {
			return false
		}

		if i < len(seps) && !emit(yield, seps[i]) {
			return false
		}
	}

	for i := len(items); i < len(seps); i++ {
		if !emit(yield, seps[i]) {
			return false
		}
	}

	return true
}

func emitNode(yield func(*Token) bool, n Node) bool {
	if n == nil {
		return true
	}

	return n.walk(yield)
}

func (n *CompilationUnit) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emitAll(yield, n.Members) && emit(yield, n.EOF)
}

func (n *UsingDirective) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Global, n.Using, n.Static, n.Alias, n.AliasEquals) &&
		n.Name.walk(yield) &&
		emit(yield, n.Semicolon)
}

func (n *NamespaceDecl) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	if !emit(yield, n.Keyword) || !n.Name.walk(yield) {
		return false
	}

	if n.FileScoped() {
		return emit(yield, n.Semicolon) && emitAll(yield, n.Members)
	}

	return emit(yield, n.Open) && emitAll(yield, n.Members) && emit(yield, n.Close, n.Semicolon)
}

func (n *ClassDecl) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emitAll(yield, n.AttributeLists) &&
		emit(yield, n.Modifiers...) &&
		emit(yield, n.Keywords...) &&
		emit(yield, n.Identifier) &&
		n.TypeParameterList.walk(yield) &&
		n.ParameterList.walk(yield) &&
		n.BaseList.walk(yield) &&
		n.ConstraintClauses.walk(yield) &&
		emit(yield, n.Open) &&
		emitAll(yield, n.Members) &&
		emit(yield, n.Close, n.Semicolon)
}

func (n *BaseList) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Colon) && emitSeparated(yield, n.Types, n.Commas)
}

func (n *MethodDecl) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emitAll(yield, n.AttributeLists) &&
		emit(yield, n.Modifiers...) &&
		n.ReturnType.walk(yield) &&
		n.ExplicitInterface.walk(yield) &&
		emit(yield, n.Identifier) &&
		n.TypeParameterList.walk(yield) &&
		n.ParameterList.walk(yield) &&
		n.ConstraintClauses.walk(yield) &&
		n.Body.walk(yield) &&
		n.ExpressionBody.walk(yield) &&
		emit(yield, n.Semicolon)
}

func (n *MemberDecl) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Tokens...)
}

func (n *TokenList) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Tokens...)
}

func (n *AttributeList) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Open, n.Target, n.TargetColon) &&
		emitSeparated(yield, n.Attributes, n.Commas) &&
		emit(yield, n.Close)
}

func (n *Attribute) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return n.Name.walk(yield) && n.ArgumentList.walk(yield)
}

func (n *AttributeArgumentList) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Open) && emitSeparated(yield, n.Arguments, n.Commas) && emit(yield, n.Close)
}

func (n *AttributeArgument) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return n.NameEquals.walk(yield) && n.NameColon.walk(yield) && emitNode(yield, n.Expression)
}

func (n *NameEquals) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Name, n.Equals)
}

func (n *NameColon) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Name, n.Colon)
}

func (n *TypeSyntax) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	if !emit(yield, n.Global, n.ColonColon) {
		return false
	}

	for i, seg := range n.Segments {
		if i > 0 && i-1 < len(n.Dots) && !emit(yield, n.Dots[i-1]) {
			return false
		}

		if !seg.walk(yield) {
			return false
		}
	}

	return n.Tuple.walk(yield) && emit(yield, n.Suffixes...)
}

func (t *TupleType) walk(yield func(*Token) bool) bool {
	if t == nil {
		return true
	}

	if !emit(yield, t.Open) {
		return false
	}

	for i, e := range t.Elements {
		if i > 0 && i-1 < len(t.Commas) && !emit(yield, t.Commas[i-1]) {
			return false
		}

		if !e.Type.walk(yield) || !emit(yield, e.Name) {
			return false
		}
	}

	return emit(yield, t.Close)
}

func (s *NameSegment) walk(yield func(*Token) bool) bool {
	if s == nil {
		return true
	}

	if !emit(yield, s.Identifier) {
		return false
	}

	if a := s.TypeArgs; a != nil {
		return emit(yield, a.Less) && emitSeparated(yield, a.Args, a.Commas) && emit(yield, a.Greater)
	}

	return true
}

func (n *TypeOfExpr) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Keyword, n.Open) && n.Type.walk(yield) && emit(yield, n.Close)
}

func (n *LiteralExpr) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Token)
}

func (n *RawExpr) walk(yield func(*Token) bool) bool {
	if n == nil {
		return true
	}

	return emit(yield, n.Tokens...)
}

// children implementations. Nil fields are omitted.

func appendNode[T interface {
	Node
	comparable
}](ns []Node, n T) []Node {
	var null T
	if n == null {
		return ns
	}

	return append(ns, n)
}

func appendNodes[T Node](ns []Node, s []T) []Node {
	for _, n := range s {
		ns = append(ns, n)
	}

	return ns
}

func (n *CompilationUnit) children() []Node {
	if n == nil {
		return nil
	}

	return appendNodes(nil, n.Members)
}

func (n *UsingDirective) children() []Node {
	if n == nil {
		return nil
	}

	return appendNode(nil, n.Name)
}

func (n *NamespaceDecl) children() []Node {
	if n == nil {
		return nil
	}

	return appendNodes(appendNode(nil, n.Name), n.Members)
}

func (n *ClassDecl) children() []Node {
	if n == nil {
		return nil
	}

	ns := appendNodes(nil, n.AttributeLists)
	ns = appendNode(ns, n.TypeParameterList)
	ns = appendNode(ns, n.ParameterList)
	ns = appendNode(ns, n.BaseList)
	ns = appendNode(ns, n.ConstraintClauses)

	return appendNodes(ns, n.Members)
}

func (n *BaseList) children() []Node {
	if n == nil {
		return nil
	}

	return appendNodes(nil, n.Types)
}

func (n *MethodDecl) children() []Node {
	if n == nil {
		return nil
	}

	ns := appendNodes(nil, n.AttributeLists)
	ns = appendNode(ns, n.ReturnType)
	ns = appendNode(ns, n.ExplicitInterface)
	ns = appendNode(ns, n.TypeParameterList)
	ns = appendNode(ns, n.ParameterList)
	ns = appendNode(ns, n.ConstraintClauses)
	ns = appendNode(ns, n.Body)

	return appendNode(ns, n.ExpressionBody)
}

func (*MemberDecl) children() []Node { return nil }

func (*TokenList) children() []Node { return nil }

func (n *AttributeList) children() []Node {
	if n == nil {
		return nil
	}

	return appendNodes(nil, n.Attributes)
}

func (n *Attribute) children() []Node {
	if n == nil {
		return nil
	}

	return appendNode(appendNode(nil, n.Name), n.ArgumentList)
}

func (n *AttributeArgumentList) children() []Node {
	if n == nil {
		return nil
	}

	return appendNodes(nil, n.Arguments)
}

func (n *AttributeArgument) children() []Node {
	if n == nil {
		return nil
	}

	ns := appendNode(nil, n.NameEquals)
	ns = appendNode(ns, n.NameColon)

	if n.Expression != nil {
		ns = append(ns, n.Expression)
	}

	return ns
}

func (*NameEquals) children() []Node { return nil }

func (*NameColon) children() []Node { return nil }

func (n *TypeSyntax) children() []Node {
	if n == nil {
		return nil
	}

	var ns []Node

	for _, seg := range n.Segments {
		if seg.TypeArgs != nil {
			ns = appendNodes(ns, seg.TypeArgs.Args)
		}
	}

	if n.Tuple != nil {
		for _, e := range n.Tuple.Elements {
			ns = appendNode(ns, e.Type)
		}
	}

	return ns
}

func (n *TypeOfExpr) children() []Node {
	if n == nil {
		return nil
	}

	return appendNode(nil, n.Type)
}

func (*LiteralExpr) children() []Node { return nil }

func (*RawExpr) children() []Node { return nil }
