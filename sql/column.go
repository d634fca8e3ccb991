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

// Column is the definition of a table column.
// As SQL:2016 puts it:
//
//	A column is a named component of a table. It has a data type, a default,
//	and a nullability characteristic.
type Column struct {
	// Name is the name of the column.
	Name string
	// Type is the data type of the column.
	Type Type
	// Nullable is true if the column can contain NULL values, or false
	// otherwise.
	Nullable bool
	// Source is the name of the table this column came from.
	Source string
	// DatabaseSource is the name of the database this column came from.
	DatabaseSource string
	// Family is the column family the column is physically stored in. It is
	// empty for primary key columns, which live in the row key.
	Family string
	// PrimaryKey is true if the column is part of the primary key.
	PrimaryKey bool
	// SortOrder is the order of the column's encoded bytes.
	SortOrder SortOrder
}

// Physical returns the physical type the column is stored with.
func (c *Column) Physical() PhysicalType {
	return c.Type.Physical().WithOrder(c.SortOrder)
}

func (c *Column) String() string {
	if c.Family == "" {
		return c.Name
	}
	return fmt.Sprintf("%s.%s", c.Family, c.Name)
}

// Schema is the definition of a table.
type Schema []*Column

// Contains returns whether the schema contains a column with the given name.
func (s Schema) Contains(column string, source string) bool {
	return s.IndexOf(column, source) >= 0
}

// IndexOf returns the index of the given column in the schema or -1 if it's
// not present.
func (s Schema) IndexOf(column, source string) int {
	column = strings.ToLower(column)
	source = strings.ToLower(source)
	for i, col := range s {
		if strings.ToLower(col.Name) == column && strings.ToLower(col.Source) == source {
			return i
		}
	}
	return -1
}

// Families returns the distinct column families of the schema, in the order
// they first appear.
func (s Schema) Families() []string {
	var families []string
	seen := make(map[string]bool)
	for _, col := range s {
		if col.Family == "" || seen[strings.ToLower(col.Family)] {
			continue
		}
		seen[strings.ToLower(col.Family)] = true
		families = append(families, col.Family)
	}
	return families
}

// ColumnRef is a column resolved against a table binding.
type ColumnRef struct {
	Database string
	Table    string
	Column   *Column
}

func (r *ColumnRef) String() string {
	if r.Database == "" {
		return fmt.Sprintf("%s.%s", r.Table, r.Column)
	}
	return fmt.Sprintf("%s.%s.%s", r.Database, r.Table, r.Column)
}

// ColumnResolver resolves column references against a fixed table binding.
type ColumnResolver interface {
	// ResolveColumn returns the column identified by the optional database
	// and table qualifiers and the column name. It fails with
	// ErrColumnNotFound or ErrTableColumnNotFound when there is no such
	// column and with ErrAmbiguousColumnName when the qualifiers do not pick
	// a single one.
	ResolveColumn(ctx *Context, database, table, name string) (*ColumnRef, error)
}
