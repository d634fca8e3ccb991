// Copyright 2020-2021 Dolthub, Inc.
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

package transform

import (
	"github.com/dolthub/go-index-rewriter/sql"
)

// Inspect performs a pre-order traversal of the sql.Node tree;
// First, it does f(node) and if cont = true, then Inspect is recursively called on node's children.
// Unlike InspectExpr, traversal goes top down and stops when f returns false.
func Inspect(node sql.Node, f func(sql.Node) bool) (cont bool) {
	if !f(node) {
		return false
	}

	// Avoid allocating []sql.Node
	if n, ok := node.(sql.UnaryNode); ok {
		return Inspect(n.Child(), f)
	}

	for _, child := range node.Children() {
		if !Inspect(child, f) {
			return false
		}
	}
	return true
}

// InspectExpressions traverses the plan and calls f on every expression of
// every node, stopping as soon as f returns false.
func InspectExpressions(node sql.Node, f func(sql.Node, sql.Expression) bool) (cont bool) {
	return Inspect(node, func(n sql.Node) bool {
		ne, ok := n.(sql.Expressioner)
		if !ok {
			return true
		}
		for _, e := range ne.Expressions() {
			if !f(n, e) {
				return false
			}
		}
		return true
	})
}
