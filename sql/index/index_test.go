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

package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/types"
)

func TestColumnName(t *testing.T) {
	require := require.New(t)

	require.Equal("a:b", ColumnName(&sql.Column{Name: "b", Family: "a", Type: types.Int32}))
	require.Equal(":id", ColumnName(&sql.Column{Name: "id", PrimaryKey: true, Type: types.Int64}))
}

func TestColumnType(t *testing.T) {
	tests := []struct {
		name     string
		typ      sql.Type
		nullable bool
		exp      sql.Type
	}{
		{"not null integer", types.Int32, false, types.Int32},
		{"nullable integer", types.Int32, true, types.InternalDecimalType},
		{"nullable unsigned", types.Uint64, true, types.InternalDecimalType},
		{"nullable double", types.Float64, true, types.InternalDecimalType},
		{"nullable date", types.Date, true, types.InternalDecimalType},
		{"nullable timestamp", types.Timestamp, true, types.InternalDecimalType},
		{"nullable char", types.Char(10), true, types.Varchar(10)},
		{"not null char", types.Char(10), false, types.Char(10)},
		{"nullable binary", types.Binary(4), true, types.Varbinary(4)},
		{"nullable varchar", types.Varchar(20), true, types.Varchar(20)},
		{"nullable decimal", types.MustCreateDecimalType(10, 2), true, types.MustCreateDecimalType(10, 2)},
		{"nullable boolean", types.Boolean, true, types.Boolean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := ColumnType(&sql.Column{Name: "c", Family: "f", Type: tt.typ, Nullable: tt.nullable})
			require.NoError(t, err)
			require.Equal(t, tt.exp, typ)
		})
	}
}

func TestColumnPhysicalType(t *testing.T) {
	require := require.New(t)

	col := &sql.Column{Name: "c", Family: "f", Type: types.Int32, Nullable: true, SortOrder: sql.Descending}
	pt, err := ColumnPhysicalType(col)
	require.NoError(err)
	require.Equal(sql.PhysicalType{Encoding: sql.EncodingDecimal, Order: sql.Descending}, pt)
	require.False(sql.BytesComparable(col.Physical(), pt))

	col = &sql.Column{Name: "c", Family: "f", Type: types.Char(3), Nullable: true}
	pt, err = ColumnPhysicalType(col)
	require.NoError(err)
	require.Equal(sql.PhysicalType{Encoding: sql.EncodingVarchar}, pt)
	require.True(sql.BytesComparable(col.Physical(), pt))

	col = &sql.Column{Name: "id", PrimaryKey: true, Type: types.Int64}
	pt, err = ColumnPhysicalType(col)
	require.NoError(err)
	require.True(sql.BytesComparable(col.Physical(), pt))
}
