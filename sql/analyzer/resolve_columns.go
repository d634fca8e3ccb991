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

package analyzer

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-index-rewriter/sql"
)

// TableResolver resolves column references against a single table. A column
// may be qualified with the table name, or with its alias when the statement
// gives one, or with the name of the column family it's stored in.
type TableResolver struct {
	database string
	table    sql.Table
	alias    string
}

var _ sql.ColumnResolver = (*TableResolver)(nil)

// NewTableResolver returns a resolver bound to the given table of the given
// database. The alias may be empty.
func NewTableResolver(database string, table sql.Table, alias string) *TableResolver {
	return &TableResolver{database: database, table: table, alias: alias}
}

// Name returns the name columns of the table can be qualified with.
func (r *TableResolver) Name() string {
	if r.alias != "" {
		return r.alias
	}
	return r.table.Name()
}

func (r *TableResolver) String() string {
	name := r.table.Name()
	if r.database != "" {
		name = r.database + "." + name
	}
	if r.alias != "" {
		return fmt.Sprintf("%s as %s", name, r.alias)
	}
	return name
}

// ResolveColumn implements the sql.ColumnResolver interface.
func (r *TableResolver) ResolveColumn(ctx *sql.Context, database, table, name string) (*sql.ColumnRef, error) {
	if database != "" && !strings.EqualFold(database, r.database) {
		return nil, sql.ErrTableNotFound.New(database + "." + table)
	}

	var family string
	if table != "" && !strings.EqualFold(table, r.Name()) {
		if !r.hasFamily(table) {
			return nil, sql.ErrTableNotFound.New(table)
		}
		family = table
	}

	var found []*sql.Column
	for _, col := range r.table.Schema() {
		if !strings.EqualFold(col.Name, name) {
			continue
		}
		if family != "" && !strings.EqualFold(col.Family, family) {
			continue
		}
		found = append(found, col)
	}

	switch len(found) {
	case 0:
		if table == "" {
			return nil, sql.ErrColumnNotFound.New(name)
		}
		return nil, sql.ErrTableColumnNotFound.New(table, name)
	case 1:
		return &sql.ColumnRef{Database: r.database, Table: r.Name(), Column: found[0]}, nil
	default:
		var families []string
		for _, col := range found {
			families = append(families, col.String())
		}
		return nil, sql.ErrAmbiguousColumnName.New(name, strings.Join(families, ", "))
	}
}

func (r *TableResolver) hasFamily(family string) bool {
	for _, col := range r.table.Schema() {
		if col.Family != "" && strings.EqualFold(col.Family, family) {
			return true
		}
	}
	return false
}
