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

package plan

import (
	"fmt"

	"github.com/dolthub/go-index-rewriter/sql"
)

// UnresolvedTable is a table reference in the FROM clause that has not been
// bound to a catalog table yet.
type UnresolvedTable struct {
	name     string
	database string
}

var _ sql.Nameable = (*UnresolvedTable)(nil)
var _ sql.Databaser = (*UnresolvedTable)(nil)

// NewUnresolvedTable creates a new UnresolvedTable node. The database may be
// empty to mean the current one.
func NewUnresolvedTable(name, database string) *UnresolvedTable {
	return &UnresolvedTable{name: name, database: database}
}

// Name implements the Nameable interface.
func (t *UnresolvedTable) Name() string {
	return t.name
}

// Database implements the Databaser interface.
func (t *UnresolvedTable) Database() string {
	return t.database
}

// Resolved implements the Resolvable interface.
func (*UnresolvedTable) Resolved() bool {
	return false
}

// Children implements the Node interface.
func (*UnresolvedTable) Children() []sql.Node {
	return nil
}

// WithChildren implements the Node interface.
func (t *UnresolvedTable) WithChildren(children ...sql.Node) (sql.Node, error) {
	return NillaryWithChildren(t, children...)
}

func (t *UnresolvedTable) String() string {
	if t.database == "" {
		return fmt.Sprintf("UnresolvedTable(%s)", t.name)
	}
	return fmt.Sprintf("UnresolvedTable(%s.%s)", t.database, t.name)
}

// TableAlias is a node that acts as a table with a given name.
type TableAlias struct {
	UnaryNode
	name string
}

var _ sql.Nameable = (*TableAlias)(nil)

// NewTableAlias returns a new Table alias node.
func NewTableAlias(name string, node sql.Node) *TableAlias {
	return &TableAlias{UnaryNode: UnaryNode{node}, name: name}
}

// Name implements the Nameable interface.
func (t *TableAlias) Name() string {
	return t.name
}

// WithChildren implements the Node interface.
func (t *TableAlias) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(t, len(children), 1)
	}
	return NewTableAlias(t.name, children[0]), nil
}

func (t *TableAlias) String() string {
	pr := sql.NewTreePrinter()
	pr.WriteNode("TableAlias(%s)", t.name)
	pr.WriteChildren(t.child.String())
	return pr.String()
}
