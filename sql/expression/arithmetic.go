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

	"github.com/shopspring/decimal"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-index-rewriter/sql"
	"github.com/dolthub/go-index-rewriter/sql/types"
)

// ErrUnsupportedOperator is returned when an arithmetic operator is unknown.
var ErrUnsupportedOperator = errors.NewKind("unsupported arithmetic operator: %s")

const (
	PlusOp  = "+"
	MinusOp = "-"
	MultOp  = "*"
	DivOp   = "/"
)

// Arithmetic expressions (+, -, *, /).
type Arithmetic struct {
	BinaryExpression
	Op string
}

var _ sql.Expression = (*Arithmetic)(nil)

// NewArithmetic creates a new Arithmetic sql.Expression.
func NewArithmetic(left, right sql.Expression, op string) *Arithmetic {
	return &Arithmetic{BinaryExpression{Left: left, Right: right}, op}
}

// NewPlus creates a new Arithmetic + sql.Expression.
func NewPlus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, PlusOp)
}

// NewMinus creates a new Arithmetic - sql.Expression.
func NewMinus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, MinusOp)
}

// NewMult creates a new Arithmetic * sql.Expression.
func NewMult(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, MultOp)
}

// NewDiv creates a new Arithmetic / sql.Expression.
func NewDiv(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, DivOp)
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left, a.Op, a.Right)
}

// IsNullable implements the sql.Expression interface. Division by zero
// yields NULL.
func (a *Arithmetic) IsNullable() bool {
	return a.Op == DivOp || a.BinaryExpression.IsNullable()
}

// Type returns the greatest type for given operation.
func (a *Arithmetic) Type() sql.Type {
	lt, rt := a.Left.Type(), a.Right.Type()
	if a.Op == DivOp || types.IsDecimal(lt) || types.IsDecimal(rt) {
		return types.InternalDecimalType
	}

	ln, lok := lt.(types.NumberTypeImpl_)
	rn, rok := rt.(types.NumberTypeImpl_)
	switch {
	case !lok || !rok:
		return types.InternalDecimalType
	case ln.IsFloat() || rn.IsFloat():
		return types.Float64
	case ln.IsUnsigned() && rn.IsUnsigned():
		return types.Uint64
	default:
		return types.Int64
	}
}

// WithChildren implements the Expression interface.
func (a *Arithmetic) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 2)
	}
	return NewArithmetic(children[0], children[1], a.Op), nil
}

// Eval implements the Expression interface.
func (a *Arithmetic) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, rval, err := a.evalBoth(ctx, row)
	if err != nil {
		return nil, err
	}
	if lval == nil || rval == nil {
		return nil, nil
	}

	l, err := types.InternalDecimalType.Convert(lval)
	if err != nil {
		return nil, err
	}
	r, err := types.InternalDecimalType.Convert(rval)
	if err != nil {
		return nil, err
	}
	ld, rd := l.(decimal.Decimal), r.(decimal.Decimal)

	var res decimal.Decimal
	switch a.Op {
	case PlusOp:
		res = ld.Add(rd)
	case MinusOp:
		res = ld.Sub(rd)
	case MultOp:
		res = ld.Mul(rd)
	case DivOp:
		if rd.IsZero() {
			return nil, nil
		}
		res = ld.Div(rd)
	default:
		return nil, ErrUnsupportedOperator.New(a.Op)
	}

	return a.Type().Convert(res)
}
