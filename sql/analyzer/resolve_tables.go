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
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/plan"
	"github.com/dolthub/go-index-rewriter/sql/transform"
)

// ErrMultipleTables is returned when a statement reads from more than one
// table, which can't be bound to a single index.
var ErrMultipleTables = errors.NewKind("statement reads from more than one table: %s and %s")

// resolveTable finds the table the statement reads from and binds a column
// resolver to it, using the alias the statement gives to the table if any.
func resolveTable(ctx *sql.Context, db sql.Database, n sql.Node) (*TableResolver, error) {
	span, ctx := ctx.Span("resolve_tables")
	defer span.Finish()

	var (
		table *plan.UnresolvedTable
		alias string
		err   error
	)
	transform.Inspect(n, func(node sql.Node) bool {
		switch node := node.(type) {
		case *plan.TableAlias:
			if t, ok := node.Child().(*plan.UnresolvedTable); ok {
				if table != nil {
					err = ErrMultipleTables.New(table.Name(), t.Name())
					return false
				}
				table, alias = t, node.Name()
			}
			return false
		case *plan.UnresolvedTable:
			if table != nil {
				err = ErrMultipleTables.New(table.Name(), node.Name())
				return false
			}
			table = node
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, sql.ErrTableNotFound.New("")
	}

	if table.Database() != "" && !strings.EqualFold(table.Database(), db.Name()) {
		return nil, sql.ErrDatabaseNotFound.New(table.Database())
	}

	t, ok, err := db.GetTableInsensitive(ctx, table.Name())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, sql.ErrTableNotFound.New(table.Name())
	}

	return NewTableResolver(db.Name(), t, alias), nil
}
