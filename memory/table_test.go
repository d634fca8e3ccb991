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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/types"
)

func TestTable(t *testing.T) {
	require := require.New(t)

	schema := sql.Schema{
		{Name: "id", Type: types.Int64, PrimaryKey: true},
		{Name: "a", Type: types.Int32, Nullable: true, Family: "f", SortOrder: sql.Descending},
	}
	table := NewTable("t", schema)

	require.Equal("t", table.Name())
	require.Equal("", table.Database())
	require.Len(table.Schema(), 2)
	for _, col := range table.Schema() {
		require.Equal("t", col.Source)
	}
	require.Equal("", schema[0].Source, "schema given to the table is copied")

	require.Equal("Table(t)\n"+
		" ├─ id SIGNED_INT(8) ASC\n"+
		" └─ f.a SIGNED_INT(4) DESC\n", table.String())
}

func TestDatabase(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	db := NewDatabase("db")
	require.Equal("db", db.Name())

	created, err := db.CreateTable(ctx, "Test", sql.Schema{{Name: "a", Type: types.Text}})
	require.NoError(err)
	require.Equal("db", created.Database())
	require.Equal("db", created.Schema()[0].DatabaseSource)
	require.Equal("Test", created.Schema()[0].Source)

	_, err = db.CreateTable(ctx, "Test", nil)
	require.True(sql.ErrTableAlreadyExists.Is(err))

	db.AddTable("other", NewTable("other", nil))

	tbl, ok, err := db.GetTableInsensitive(ctx, "test")
	require.NoError(err)
	require.True(ok)
	require.Same(created, tbl)

	_, ok, err = db.GetTableInsensitive(ctx, "missing")
	require.NoError(err)
	require.False(ok)

	names, err := db.GetTableNames(ctx)
	require.NoError(err)
	require.Equal([]string{"Test", "other"}, names)
	require.Len(db.Tables(), 2)
}
