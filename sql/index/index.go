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

// Package index maps data table columns onto the columns of a secondary index
// table. An index row stores each indexed value in its key, so nullable values
// of fixed width types have to be stored with a variable width encoding that
// can represent the absence of a value.
package index

import (
	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/types"
)

// ColumnNameSeparator separates the family of a data column from its name in
// the name of the index column.
const ColumnNameSeparator = ":"

// ColumnName returns the name of the index column holding the given data
// column. Primary key columns have no family and keep only the separator.
func ColumnName(col *sql.Column) string {
	return col.Family + ColumnNameSeparator + col.Name
}

// ColumnType returns the logical type of the index column holding the given
// data column.
func ColumnType(col *sql.Column) (sql.Type, error) {
	typ := col.Type
	if !col.Nullable || !typ.Physical().FixedWidth() || types.IsBoolean(typ) {
		return typ, nil
	}

	switch {
	case types.IsNumber(typ), types.IsTime(typ):
		return types.InternalDecimalType, nil
	case types.IsText(typ):
		return types.Varchar(typ.(types.StringType).Length()), nil
	case types.IsBinary(typ):
		return types.Varbinary(typ.(types.StringType).Length()), nil
	default:
		return nil, sql.ErrInvalidType.New(typ)
	}
}

// ColumnPhysicalType returns how the index column holding the given data
// column is encoded. It keeps the sort order of the data column.
func ColumnPhysicalType(col *sql.Column) (sql.PhysicalType, error) {
	typ, err := ColumnType(col)
	if err != nil {
		return sql.PhysicalType{}, err
	}
	return typ.Physical().WithOrder(col.SortOrder), nil
}
