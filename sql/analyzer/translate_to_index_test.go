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
	"testing"

	"github.com/stretchr/testify/require"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-index-rewriter/memory"
	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/expression"
	"github.com/dolthub/go-index-rewriter/sql/plan"
	"github.com/dolthub/go-index-rewriter/sql/transform"
	"github.com/dolthub/go-index-rewriter/sql/types"
)

// indexedTable returns a table with columns in two families, f1 and f2:
//
//	id  BIGINT       primary key
//	f1.a INTEGER     nullable, stored as a DECIMAL in the index
//	f1.b VARCHAR     nullable
//	f2.c CHAR(10)    nullable, stored as a VARCHAR in the index
//	f2.d INTEGER     not null
//	f2.e DATE        nullable, stored as a DECIMAL in the index
//	f1.k INTEGER     not null, descending
//	f1.x INTEGER     not null
//	f2.x VARCHAR     not null
func indexedTable() *memory.Table {
	db := memory.NewDatabase("db")
	t, err := db.CreateTable(sql.NewEmptyContext(), "t", sql.Schema{
		{Name: "id", Type: types.Int64, PrimaryKey: true},
		{Name: "a", Type: types.Int32, Nullable: true, Family: "f1"},
		{Name: "b", Type: types.Varchar(20), Nullable: true, Family: "f1"},
		{Name: "c", Type: types.Char(10), Nullable: true, Family: "f2"},
		{Name: "d", Type: types.Int32, Family: "f2"},
		{Name: "e", Type: types.Date, Nullable: true, Family: "f2"},
		{Name: "k", Type: types.Int32, Family: "f1", SortOrder: sql.Descending},
		{Name: "x", Type: types.Int32, Family: "f1"},
		{Name: "x", Type: types.Varchar(5), Family: "f2"},
	})
	if err != nil {
		panic(err)
	}
	return t
}

func indexedDatabase() *memory.Database {
	db := memory.NewDatabase("db")
	db.AddTable("t", indexedTable())
	return db
}

func indexCol(name, label string) *expression.UnresolvedColumn {
	return expression.NewUnresolvedColumnWithLabel(name, label)
}

func TestTranslateToIndex(t *testing.T) {
	table := plan.NewUnresolvedTable("t", "")
	one := expression.NewLiteral(int32(1), types.Int32)
	col := expression.NewUnresolvedColumn
	qcol := expression.NewUnresolvedQualifiedColumn

	tests := []struct {
		name     string
		node     sql.Node
		expected sql.Node
		err      *errors.Kind
	}{
		{
			name:     "aliased column keeps its alias",
			node:     plan.NewProject([]sql.Expression{expression.NewAlias("x", qcol("f1", "b"))}, table),
			expected: plan.NewProject([]sql.Expression{expression.NewAlias("x", indexCol("f1:b", "f1.b"))}, table),
		},
		{
			name:     "nullable fixed width column is converted",
			node:     plan.NewProject([]sql.Expression{qcol("f1", "a")}, table),
			expected: plan.NewProject([]sql.Expression{expression.NewConvert(indexCol("f1:a", "f1.a"), types.Int32)}, table),
		},
		{
			name:     "nullable date is converted",
			node:     plan.NewProject([]sql.Expression{col("e")}, table),
			expected: plan.NewProject([]sql.Expression{expression.NewConvert(indexCol("f2:e", "e"), types.Date)}, table),
		},
		{
			name:     "nullable char is not converted",
			node:     plan.NewProject([]sql.Expression{col("c")}, table),
			expected: plan.NewProject([]sql.Expression{indexCol("f2:c", "c")}, table),
		},
		{
			name:     "descending column is not converted",
			node:     plan.NewProject([]sql.Expression{col("k")}, table),
			expected: plan.NewProject([]sql.Expression{indexCol("f1:k", "k")}, table),
		},
		{
			name:     "primary key column",
			node:     plan.NewProject([]sql.Expression{expression.NewUnresolvedFullyQualifiedColumn("db", "t", "id")}, table),
			expected: plan.NewProject([]sql.Expression{indexCol(":id", "db.t.id")}, table),
		},
		{
			name:     "star",
			node:     plan.NewProject([]sql.Expression{expression.NewStar()}, table),
			expected: plan.NewProject([]sql.Expression{expression.NewIndexStar()}, table),
		},
		{
			name:     "family star",
			node:     plan.NewProject([]sql.Expression{expression.NewFamilyStar("f2"), col("d")}, table),
			expected: plan.NewProject([]sql.Expression{expression.NewIndexFamilyStar("f2"), indexCol("f2:d", "d")}, table),
		},
		{
			name: "star in group by select list",
			node: plan.NewGroupBy(
				[]sql.Expression{expression.NewStar()},
				[]sql.Expression{col("b")},
				table,
			),
			expected: plan.NewGroupBy(
				[]sql.Expression{expression.NewIndexStar()},
				[]sql.Expression{indexCol("f1:b", "b")},
				table,
			),
		},
		{
			name: "filter and sort",
			node: plan.NewSort(
				[]plan.SortField{{Column: col("d"), Order: plan.Descending}},
				plan.NewProject(
					[]sql.Expression{col("b")},
					plan.NewFilter(expression.NewGreaterThan(col("a"), one), table),
				),
			),
			expected: plan.NewSort(
				[]plan.SortField{{Column: indexCol("f2:d", "d"), Order: plan.Descending}},
				plan.NewProject(
					[]sql.Expression{indexCol("f1:b", "b")},
					plan.NewFilter(expression.NewGreaterThan(expression.NewConvert(indexCol("f1:a", "a"), types.Int32), one), table),
				),
			),
		},
		{
			name: "order by alias",
			node: plan.NewSort(
				[]plan.SortField{{Column: col("total"), Order: plan.Ascending}},
				plan.NewProject([]sql.Expression{expression.NewAlias("total", expression.NewPlus(col("d"), one))}, table),
			),
			expected: plan.NewSort(
				[]plan.SortField{{Column: col("total"), Order: plan.Ascending}},
				plan.NewProject([]sql.Expression{expression.NewAlias("total", expression.NewPlus(indexCol("f2:d", "d"), one))}, table),
			),
		},
		{
			name: "having alias",
			node: plan.NewHaving(
				expression.NewGreaterThan(col("n"), one),
				plan.NewGroupBy(
					[]sql.Expression{col("b"), expression.NewAlias("n", expression.NewUnresolvedFunction("count", true, expression.NewStar()))},
					[]sql.Expression{col("b")},
					table,
				),
			),
			expected: plan.NewHaving(
				expression.NewGreaterThan(col("n"), one),
				plan.NewGroupBy(
					[]sql.Expression{indexCol("f1:b", "b"), expression.NewAlias("n", expression.NewUnresolvedFunction("count", true, expression.NewStar()))},
					[]sql.Expression{indexCol("f1:b", "b")},
					table,
				),
			),
		},
		{
			name: "alias is not visible in the filter",
			node: plan.NewProject(
				[]sql.Expression{expression.NewAlias("total", col("d"))},
				plan.NewFilter(expression.NewIsNull(col("total")), table),
			),
			err: sql.ErrColumnNotFound,
		},
		{
			name: "qualified reference to an alias is a column",
			node: plan.NewSort(
				[]plan.SortField{{Column: qcol("f2", "d")}},
				plan.NewProject([]sql.Expression{expression.NewAlias("d", col("b"))}, table),
			),
			expected: plan.NewSort(
				[]plan.SortField{{Column: indexCol("f2:d", "f2.d")}},
				plan.NewProject([]sql.Expression{expression.NewAlias("d", indexCol("f1:b", "b"))}, table),
			),
		},
		{
			name: "unknown column",
			node: plan.NewProject([]sql.Expression{col("a"), col("nope")}, table),
			err:  sql.ErrColumnNotFound,
		},
		{
			name: "unknown column in family",
			node: plan.NewProject([]sql.Expression{qcol("f1", "c")}, table),
			err:  sql.ErrTableColumnNotFound,
		},
		{
			name: "ambiguous column",
			node: plan.NewProject([]sql.Expression{col("x")}, table),
			err:  sql.ErrAmbiguousColumnName,
		},
		{
			name: "unknown table",
			node: plan.NewProject([]sql.Expression{qcol("u", "a")}, table),
			err:  sql.ErrTableNotFound,
		},
	}

	resolver := NewTableResolver("db", indexedTable(), "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := sql.NewEmptyContext()

			result, same, err := TranslateToIndex(ctx, tt.node, resolver)
			if tt.err != nil {
				require.Error(err)
				require.True(tt.err.Is(err), "unexpected error: %s", err)
				require.Nil(result)
				return
			}

			require.NoError(err)
			require.Equal(transform.NewTree, same)
			require.Equal(tt.expected, result)
		})
	}
}

func TestTranslateToIndexNoColumns(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	resolver := NewTableResolver("db", indexedTable(), "")

	nodes := []sql.Node{
		plan.NewProject([]sql.Expression{expression.NewLiteral(int32(1), types.Int32)}, plan.NewUnresolvedTable("t", "")),
		plan.NewLimit(5, plan.NewDistinct(plan.NewUnresolvedTable("t", "db"))),
		plan.NewProject([]sql.Expression{expression.NewIndexStar(), expression.NewIndexFamilyStar("f1")}, plan.NewUnresolvedTable("t", "")),
		plan.NewProject([]sql.Expression{
			expression.NewAlias("n", expression.NewUnresolvedFunction("count", true, expression.NewStar())),
		}, plan.NewUnresolvedTable("t", "")),
	}

	for _, n := range nodes {
		result, same, err := TranslateToIndex(ctx, n, resolver)
		require.NoError(err)
		require.Equal(transform.SameTree, same)
		require.Same(n, result)
	}
}

func TestTranslateToIndexSharesUnchangedSubtrees(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	resolver := NewTableResolver("db", indexedTable(), "")

	one := expression.NewLiteral(int32(1), types.Int32)
	plus := expression.NewPlus(expression.NewUnresolvedQualifiedColumn("f1", "b"), one)
	table := plan.NewUnresolvedTable("t", "")
	n := plan.NewProject([]sql.Expression{plus}, table)

	result, same, err := TranslateToIndex(ctx, n, resolver)
	require.NoError(err)
	require.Equal(transform.NewTree, same)

	project := result.(*plan.Project)
	require.Same(table, project.Child())

	newPlus := project.Projections[0].(*expression.Arithmetic)
	require.Same(one, newPlus.Right)
	require.Equal(indexCol("f1:b", "f1.b"), newPlus.Left)
	require.Equal("(f1.b + 1)", newPlus.String())

	// the input is left untouched
	require.Same(plus, n.Projections[0])
	require.Equal(expression.NewUnresolvedQualifiedColumn("f1", "b"), plus.Left)
}

func TestTranslateToIndexSingleCast(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	resolver := NewTableResolver("db", indexedTable(), "")

	n := plan.NewFilter(
		expression.NewAnd(
			expression.NewEquals(expression.NewUnresolvedColumn("a"), expression.NewUnresolvedColumn("d")),
			expression.NewIsNull(expression.NewUnresolvedColumn("a")),
		),
		plan.NewUnresolvedTable("t", ""),
	)

	result, _, err := TranslateToIndex(ctx, n, resolver)
	require.NoError(err)

	var casts, columns int
	transform.InspectExpressions(result, func(_ sql.Node, e sql.Expression) bool {
		transform.InspectExpr(e, func(e sql.Expression) bool {
			switch e := e.(type) {
			case *expression.Convert:
				casts++
				_, ok := e.Child.(*expression.UnresolvedColumn)
				require.True(ok, "cast must wrap the column directly")
			case *expression.UnresolvedColumn:
				columns++
			}
			return false
		})
		return true
	})
	require.Equal(2, casts)
	require.Equal(3, columns)
	require.Equal("((convert(a, INTEGER) = d) AND convert(a, INTEGER) IS NULL)", result.(*plan.Filter).Expression.String())
}
