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

package rewriter_test

import (
	"fmt"

	rewriter "github.com/dolthub/go-index-rewriter"
	"github.com/dolthub/go-index-rewriter/memory"
	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/expression"
	"github.com/dolthub/go-index-rewriter/sql/plan"
	"github.com/dolthub/go-index-rewriter/sql/types"
)

func Example() {
	ctx := sql.NewEmptyContext()
	e := rewriter.NewDefault(createTestDatabase(ctx))

	// SELECT name, age AS years FROM mytable WHERE age > 18 ORDER BY age DESC
	age := expression.NewUnresolvedColumn("age")
	n := plan.NewSort(
		[]plan.SortField{{Column: age, Order: plan.Descending}},
		plan.NewProject(
			[]sql.Expression{expression.NewUnresolvedColumn("name"), expression.NewAlias("years", age)},
			plan.NewFilter(
				expression.NewGreaterThan(age, expression.NewLiteral(int32(18), types.Int32)),
				plan.NewUnresolvedTable("mytable", ""),
			),
		),
	)

	translated, err := e.Translate(ctx, n)
	checkIfError(err)

	fmt.Print(translated)
	name := translated.Children()[0].(*plan.Project).Projections[0].(*expression.UnresolvedColumn)
	fmt.Printf("%s reads from %s\n", name, name.Name())

	// Output: Sort(convert(age, INTEGER) DESC)
	//  └─ Project(name, convert(age, INTEGER) as years)
	//      └─ Filter((convert(age, INTEGER) > 18))
	//          └─ UnresolvedTable(mytable)
	// name reads from info:name
}

func checkIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func createTestDatabase(ctx *sql.Context) sql.Database {
	db := memory.NewDatabase("mydb")
	_, err := db.CreateTable(ctx, "mytable", sql.Schema{
		{Name: "id", Type: types.Int64, PrimaryKey: true},
		{Name: "name", Type: types.Varchar(50), Nullable: true, Family: "info"},
		{Name: "age", Type: types.Int32, Nullable: true, Family: "info"},
	})
	checkIfError(err)
	return db
}
