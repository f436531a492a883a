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

import "slices"

// Replace returns a new tree in which the node old is replaced by replacement.
//
// Only the ancestors of old are rebuilt; all other subtrees are shared with root.
// Replace returns root itself when old does not occur in the tree or when
// replacement does not fit the slot old occupies.
func Replace(root, old, replacement Node) Node {
	if r, ok := replace(root, old, replacement); ok {
		return r
	}

	return root
}

func replace(n, old, repl Node) (Node, bool) {
	if n == nil {
		return nil, false
	}

	if n == old {
		return repl, true
	}

	switch n := n.(type) {
	case *CompilationUnit:
		if members, ok := replaceIn(n.Members, old, repl); ok {
			c := *n
			c.Members = members

			return &c, true
		}

	case *UsingDirective:
		if name, ok := replaceField(n.Name, old, repl); ok {
			c := *n
			c.Name = name

			return &c, true
		}

	case *NamespaceDecl:
		if name, ok := replaceField(n.Name, old, repl); ok {
			c := *n
			c.Name = name

			return &c, true
		}

		if members, ok := replaceIn(n.Members, old, repl); ok {
			c := *n
			c.Members = members

			return &c, true
		}

	case *ClassDecl:
		return replaceClass(n, old, repl)

	case *BaseList:
		if types, ok := replaceIn(n.Types, old, repl); ok {
			c := *n
			c.Types = types

			return &c, true
		}

	case *MethodDecl:
		return replaceMethod(n, old, repl)

	case *AttributeList:
		if attrs, ok := replaceIn(n.Attributes, old, repl); ok {
			c := *n
			c.Attributes = attrs

			return &c, true
		}

	case *Attribute:
		if name, ok := replaceField(n.Name, old, repl); ok {
			c := *n
			c.Name = name

			return &c, true
		}

		if args, ok := replaceField(n.ArgumentList, old, repl); ok {
			c := *n
			c.ArgumentList = args

			return &c, true
		}

	case *AttributeArgumentList:
		if args, ok := replaceIn(n.Arguments, old, repl); ok {
			c := *n
			c.Arguments = args

			return &c, true
		}

	case *AttributeArgument:
		if n.Expression == nil {
			break
		}

		if r, ok := replace(n.Expression, old, repl); ok {
			if e, fits := r.(Expr); fits {
				c := *n
				c.Expression = e

				return &c, true
			}
		}

	case *TypeSyntax:
		return replaceInType(n, old, repl)

	case *TypeOfExpr:
		if typ, ok := replaceField(n.Type, old, repl); ok {
			c := *n
			c.Type = typ

			return &c, true
		}
	}

	return n, false
}

func replaceClass(n *ClassDecl, old, repl Node) (Node, bool) {
	if lists, ok := replaceIn(n.AttributeLists, old, repl); ok {
		c := *n
		c.AttributeLists = lists

		return &c, true
	}

	if base, ok := replaceField(n.BaseList, old, repl); ok {
		c := *n
		c.BaseList = base

		return &c, true
	}

	if members, ok := replaceIn(n.Members, old, repl); ok {
		c := *n
		c.Members = members

		return &c, true
	}

	return n, false
}

func replaceMethod(n *MethodDecl, old, repl Node) (Node, bool) {
	if lists, ok := replaceIn(n.AttributeLists, old, repl); ok {
		c := *n
		c.AttributeLists = lists

		return &c, true
	}

	if ret, ok := replaceField(n.ReturnType, old, repl); ok {
		c := *n
		c.ReturnType = ret

		return &c, true
	}

	c := *n

	for _, field := range []**TokenList{
		&c.ExplicitInterface, &c.TypeParameterList, &c.ParameterList,
		&c.ConstraintClauses, &c.Body, &c.ExpressionBody,
	} {
		if list, ok := replaceField(*field, old, repl); ok {
			*field = list

			return &c, true
		}
	}

	return n, false
}

func replaceInType(n *TypeSyntax, old, repl Node) (Node, bool) {
	for i, seg := range n.Segments {
		if seg.TypeArgs == nil {
			continue
		}

		args, ok := replaceIn(seg.TypeArgs.Args, old, repl)
		if !ok {
			continue
		}

		targs := *seg.TypeArgs
		targs.Args = args

		s := *seg
		s.TypeArgs = &targs

		c := *n
		c.Segments = slices.Clone(n.Segments)
		c.Segments[i] = &s

		return &c, true
	}

	if n.Tuple == nil {
		return n, false
	}

	for i, e := range n.Tuple.Elements {
		typ, ok := replaceField(e.Type, old, repl)
		if !ok {
			continue
		}

		el := *e
		el.Type = typ

		tuple := *n.Tuple
		tuple.Elements = slices.Clone(n.Tuple.Elements)
		tuple.Elements[i] = &el

		c := *n
		c.Tuple = &tuple

		return &c, true
	}

	return n, false
}

func replaceIn[T Node](s []T, old, repl Node) ([]T, bool) {
	for i, child := range s {
		r, ok := replace(child, old, repl)
		if !ok {
			continue
		}

		t, fits := r.(T)
		if !fits {
			return s, false
		}

		out := slices.Clone(s)
		out[i] = t

		return out, true
	}

	return s, false
}

func replaceField[T interface {
	Node
	comparable
}](f T, old, repl Node) (T, bool) {
	var null T
	if f == null {
		return f, false
	}

	r, ok := replace(f, old, repl)
	if !ok {
		return f, false
	}

	t, fits := r.(T)
	if !fits {
		return f, false
	}

	return t, true
}
