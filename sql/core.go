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

package sql

import (
	"fmt"
	"strings"
)

// Row is a tuple of values.
type Row []interface{}

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Tableable is something that has a table.
type Tableable interface {
	// Table returns the table name.
	Table() string
}

// Expression is a combination of one or more SQL expressions. Expressions are
// immutable: WithChildren always returns a new expression and never modifies
// the receiver, so subtrees may be shared freely between trees.
type Expression interface {
	fmt.Stringer
	// Resolved returns whether the expression is resolved.
	Resolved() bool
	// Type returns the expression type.
	Type() Type
	// IsNullable returns whether the expression can be null.
	IsNullable() bool
	// Eval evaluates the given row and returns a result.
	Eval(ctx *Context, row Row) (interface{}, error)
	// Children returns the children expressions of this expression.
	Children() []Expression
	// WithChildren returns a copy of the expression with children replaced.
	// It will return an error if the number of children is different than
	// the current number of children. They must be given in the same order
	// as they are returned by Children.
	WithChildren(children ...Expression) (Expression, error)
}

// Node is a node in the execution plan tree.
type Node interface {
	fmt.Stringer
	// Resolved returns whether the node is resolved.
	Resolved() bool
	// Children nodes.
	Children() []Node
	// WithChildren returns a copy of the node with children replaced.
	// It will return an error if the number of children is different than
	// the current number of children. They must be given in the same order
	// as they are returned by Children.
	WithChildren(children ...Node) (Node, error)
}

// Expressioner is a node that contains expressions.
type Expressioner interface {
	// Expressions returns the list of expressions contained by the node.
	Expressions() []Expression
	// WithExpressions returns a copy of the node with expressions replaced.
	// It will return an error if the number of expressions is different than
	// the current number of expressions. They must be given in the same order
	// as they are returned by Expressions.
	WithExpressions(exprs ...Expression) (Node, error)
}

// UnaryNode is a node that has only one child.
type UnaryNode interface {
	Node
	Child() Node
}

// Table represents the backend of a SQL table.
type Table interface {
	Nameable
	fmt.Stringer
	// Schema returns the table's schema.
	Schema() Schema
}

// Databaser is a node or table that belongs to a database.
type Databaser interface {
	// Database returns the database name.
	Database() string
}

// Database represents the database.
type Database interface {
	Nameable
	// GetTableInsensitive retrieves the table with the given case-insensitive
	// name. The boolean is false when no such table exists.
	GetTableInsensitive(ctx *Context, tblName string) (Table, bool, error)
}

// GetTableInsensitive implements a case-insensitive map lookup for tables keyed
// off of the table name. An exact match is preferred.
func GetTableInsensitive(tblName string, tables map[string]Table) (Table, bool) {
	if tbl, ok := tables[tblName]; ok {
		return tbl, true
	}

	lwrName := strings.ToLower(tblName)
	for k, tbl := range tables {
		if lwrName == strings.ToLower(k) {
			return tbl, true
		}
	}

	return nil, false
}
