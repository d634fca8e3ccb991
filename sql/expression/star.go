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

package expression

import (
	"fmt"

	"github.com/dolthub/go-index-rewriter/sql"
)

// Star represents the selection of all available fields.
// This is just a placeholder node, it will not actually be evaluated
// but converted to a series of columns when the query is analyzed.
// An index scoped star is expanded against the columns of the index table
// instead of the columns of the base table.
type Star struct {
	indexScoped bool
}

// NewStar returns a new Star expression.
func NewStar() *Star {
	return new(Star)
}

// NewIndexStar returns a new Star expression scoped to the index table.
func NewIndexStar() *Star {
	return &Star{indexScoped: true}
}

// IndexScoped returns whether the star expands against the index table.
func (s *Star) IndexScoped() bool { return s.indexScoped }

// Resolved implements the Expression interface.
func (*Star) Resolved() bool {
	return false
}

// Children implements the Expression interface.
func (*Star) Children() []sql.Expression {
	return nil
}

// IsNullable implements the Expression interface.
func (*Star) IsNullable() bool {
	panic("star is just a placeholder node, but IsNullable was called")
}

// Type implements the Expression interface.
func (*Star) Type() sql.Type {
	panic("star is just a placeholder node, but Type was called")
}

func (*Star) String() string {
	return "*"
}

// Eval implements the Expression interface.
func (*Star) Eval(ctx *sql.Context, r sql.Row) (interface{}, error) {
	panic("star is just a placeholder node, but Eval was called")
}

// WithChildren implements the Expression interface.
func (s *Star) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(children), 0)
	}
	return s, nil
}

// FamilyStar represents the selection of all the columns of a column family,
// as in `family.*`. Like Star, it is a placeholder that is expanded during
// analysis.
type FamilyStar struct {
	family      string
	indexScoped bool
}

// NewFamilyStar returns a new FamilyStar expression for the given family.
func NewFamilyStar(family string) *FamilyStar {
	return &FamilyStar{family: family}
}

// NewIndexFamilyStar returns a new FamilyStar expression for the given
// family, scoped to the index table.
func NewIndexFamilyStar(family string) *FamilyStar {
	return &FamilyStar{family: family, indexScoped: true}
}

// Family returns the column family.
func (s *FamilyStar) Family() string { return s.family }

// IndexScoped returns whether the star expands against the index table.
func (s *FamilyStar) IndexScoped() bool { return s.indexScoped }

// Resolved implements the Expression interface.
func (*FamilyStar) Resolved() bool {
	return false
}

// Children implements the Expression interface.
func (*FamilyStar) Children() []sql.Expression {
	return nil
}

// IsNullable implements the Expression interface.
func (*FamilyStar) IsNullable() bool {
	panic("family star is just a placeholder node, but IsNullable was called")
}

// Type implements the Expression interface.
func (*FamilyStar) Type() sql.Type {
	panic("family star is just a placeholder node, but Type was called")
}

func (s *FamilyStar) String() string {
	return fmt.Sprintf("%s.*", s.family)
}

// Eval implements the Expression interface.
func (*FamilyStar) Eval(ctx *sql.Context, r sql.Row) (interface{}, error) {
	panic("family star is just a placeholder node, but Eval was called")
}

// WithChildren implements the Expression interface.
func (s *FamilyStar) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(children), 0)
	}
	return s, nil
}
