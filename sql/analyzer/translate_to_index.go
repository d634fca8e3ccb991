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

	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/expression"
	"github.com/dolthub/go-index-rewriter/sql/index"
	"github.com/dolthub/go-index-rewriter/sql/plan"
	"github.com/dolthub/go-index-rewriter/sql/transform"
)

// TranslateToIndex rewrites the plan so it reads from the index table of the
// columns known to the resolver instead of from the data table:
//   - every column reference becomes an unqualified reference to the index
//     column, labelled with the text of the original reference;
//   - references to columns whose index encoding can't be compared byte for
//     byte with the data encoding are converted back to the data type;
//   - stars in the select list become stars over the index table. Stars used
//     as function arguments, as in count(*), are left alone.
//
// The plan is returned as is, with transform.SameTree, when nothing had to be
// rewritten. Resolver errors are returned unchanged along with a nil node.
func TranslateToIndex(ctx *sql.Context, n sql.Node, resolver sql.ColumnResolver) (sql.Node, transform.TreeIdentity, error) {
	return translateToIndex(ctx, nil, n, resolver)
}

func translateToIndex(ctx *sql.Context, a *Analyzer, n sql.Node, resolver sql.ColumnResolver) (sql.Node, transform.TreeIdentity, error) {
	span, ctx := ctx.Span("translate_to_index")
	defer span.Finish()

	aliases := projectedAliases(n)

	return transform.NodeExprsWithNode(n, func(node sql.Node, e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
		switch e := e.(type) {
		case *expression.UnresolvedColumn:
			if isAliasReference(node, e, aliases) {
				a.Log("column %s refers to a projected alias, skipping", e)
				return e, transform.SameTree, nil
			}
			return translateColumn(ctx, a, e, resolver)
		case *expression.Star:
			if e.IndexScoped() || !isSelectItem(node, e) {
				return e, transform.SameTree, nil
			}
			return expression.NewIndexStar(), transform.NewTree, nil
		case *expression.FamilyStar:
			if e.IndexScoped() || !isSelectItem(node, e) {
				return e, transform.SameTree, nil
			}
			return expression.NewIndexFamilyStar(e.Family()), transform.NewTree, nil
		default:
			return e, transform.SameTree, nil
		}
	})
}

func translateColumn(ctx *sql.Context, a *Analyzer, col *expression.UnresolvedColumn, resolver sql.ColumnResolver) (sql.Expression, transform.TreeIdentity, error) {
	ref, err := resolver.ResolveColumn(ctx, col.Database(), col.Table(), col.Name())
	if err != nil {
		return nil, transform.SameTree, err
	}

	dataCol := ref.Column
	indexType, err := index.ColumnPhysicalType(dataCol)
	if err != nil {
		return nil, transform.SameTree, err
	}

	name := index.ColumnName(dataCol)
	var result sql.Expression = expression.NewUnresolvedColumnWithLabel(name, col.String())
	if !sql.BytesComparable(dataCol.Physical(), indexType) {
		result = expression.NewConvert(result, dataCol.Type)
		a.Log("column %s is stored as %s in the index, converting to %s", ref, indexType, dataCol.Type)
	}

	a.Log("translated column %s to index column %q", ref, name)
	return result, transform.NewTree, nil
}

// projectedAliases returns the lowercased names of the aliases defined by the
// select list of the plan.
func projectedAliases(n sql.Node) map[string]bool {
	aliases := make(map[string]bool)
	transform.Inspect(n, func(node sql.Node) bool {
		var exprs []sql.Expression
		switch node := node.(type) {
		case *plan.Project:
			exprs = node.Projections
		case *plan.GroupBy:
			exprs = node.SelectedExprs
		}
		for _, e := range exprs {
			if alias, ok := e.(*expression.Alias); ok {
				aliases[strings.ToLower(alias.Name())] = true
			}
		}
		return true
	})
	return aliases
}

// isAliasReference returns whether the column is an unqualified reference to
// a projected alias. Aliases are only visible in the ORDER BY and HAVING
// clauses.
func isAliasReference(n sql.Node, col *expression.UnresolvedColumn, aliases map[string]bool) bool {
	if col.Table() != "" || col.Database() != "" {
		return false
	}
	switch n.(type) {
	case *plan.Sort, *plan.Having:
		return aliases[strings.ToLower(col.Name())]
	default:
		return false
	}
}

// isSelectItem returns whether the expression is an item of the select list
// of the node, as opposed to a part of one.
func isSelectItem(n sql.Node, e sql.Expression) bool {
	var items []sql.Expression
	switch n := n.(type) {
	case *plan.Project:
		items = n.Projections
	case *plan.GroupBy:
		items = n.SelectedExprs
	}
	for _, item := range items {
		if item == e {
			return true
		}
	}
	return false
}
