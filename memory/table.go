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

package memory

import (
	"github.com/dolthub/go-index-rewriter/sql"
)

// Table represents an in-memory database table. It only carries the
// definition of the table, which is what the analyzer binds columns against.
type Table struct {
	name     string
	database string
	schema   sql.Schema
}

var _ sql.Table = (*Table)(nil)
var _ sql.Databaser = (*Table)(nil)

// NewTable creates a new Table with the given name and schema. Columns without
// a source are attributed to the table.
func NewTable(name string, schema sql.Schema) *Table {
	return newTable("", name, schema)
}

func newTable(database, name string, schema sql.Schema) *Table {
	s := make(sql.Schema, len(schema))
	for i, col := range schema {
		c := *col
		if c.Source == "" {
			c.Source = name
		}
		if c.DatabaseSource == "" {
			c.DatabaseSource = database
		}
		s[i] = &c
	}

	return &Table{
		name:     name,
		database: database,
		schema:   s,
	}
}

// Name implements the sql.Table interface.
func (t *Table) Name() string {
	return t.name
}

// Database implements the sql.Databaser interface.
func (t *Table) Database() string {
	return t.database
}

// Schema implements the sql.Table interface.
func (t *Table) Schema() sql.Schema {
	return t.schema
}

func (t *Table) String() string {
	p := sql.NewTreePrinter()

	name := t.name
	if t.database != "" {
		name = t.database + "." + name
	}
	p.WriteNode("Table(%s)", name)

	var cols []string
	for _, col := range t.schema {
		cols = append(cols, col.String()+" "+col.Physical().String())
	}
	if len(cols) > 0 {
		p.WriteChildren(cols...)
	}
	return p.String()
}
