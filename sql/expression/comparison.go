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
	"github.com/dolthub/go-index-rewriter/sql/types"
)

const (
	EqualsOp             = "="
	NotEqualsOp          = "!="
	GreaterThanOp        = ">"
	GreaterThanOrEqualOp = ">="
	LessThanOp           = "<"
	LessThanOrEqualOp    = "<="
)

// Comparison is an expression that compares an expression against another.
type Comparison struct {
	BinaryExpression
	Op string
}

var _ sql.Expression = (*Comparison)(nil)

// NewComparison creates a new comparison between two expressions.
func NewComparison(left, right sql.Expression, op string) *Comparison {
	return &Comparison{BinaryExpression{Left: left, Right: right}, op}
}

// NewEquals returns a new Equals comparison.
func NewEquals(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, EqualsOp)
}

// NewNotEquals returns a new NotEquals comparison.
func NewNotEquals(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, NotEqualsOp)
}

// NewGreaterThan returns a new GreaterThan comparison.
func NewGreaterThan(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, GreaterThanOp)
}

// NewGreaterThanOrEqual returns a new GreaterThanOrEqual comparison.
func NewGreaterThanOrEqual(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, GreaterThanOrEqualOp)
}

// NewLessThan returns a new LessThan comparison.
func NewLessThan(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, LessThanOp)
}

// NewLessThanOrEqual returns a new LessThanOrEqual comparison.
func NewLessThanOrEqual(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, LessThanOrEqualOp)
}

// Type implements the Expression interface.
func (*Comparison) Type() sql.Type {
	return types.Boolean
}

func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left, c.Op, c.Right)
}

// WithChildren implements the Expression interface.
func (c *Comparison) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(c, len(children), 2)
	}
	return NewComparison(children[0], children[1], c.Op), nil
}

// Compare the two given values using the type of the left expression.
func (c *Comparison) Compare(a, b interface{}) (int, error) {
	return c.Left.Type().Compare(a, b)
}

// Eval implements the Expression interface.
func (c *Comparison) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	l, r, err := c.evalBoth(ctx, row)
	if err != nil {
		return nil, err
	}
	if l == nil || r == nil {
		return nil, nil
	}

	cmp, err := c.Compare(l, r)
	if err != nil {
		return nil, err
	}

	switch c.Op {
	case EqualsOp:
		return cmp == 0, nil
	case NotEqualsOp:
		return cmp != 0, nil
	case GreaterThanOp:
		return cmp > 0, nil
	case GreaterThanOrEqualOp:
		return cmp >= 0, nil
	case LessThanOp:
		return cmp < 0, nil
	case LessThanOrEqualOp:
		return cmp <= 0, nil
	default:
		return nil, ErrUnsupportedOperator.New(c.Op)
	}
}
