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

package types

import (
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/dolthub/go-index-rewriter/sql"
)

const (
	// DecimalTypeMaxPrecision returns the maximum precision allowed for the Decimal type.
	DecimalTypeMaxPrecision = 65
	// DecimalTypeMaxScale returns the maximum scale allowed for the Decimal type.
	DecimalTypeMaxScale = 30
)

// InternalDecimalType is the widest decimal type. Index columns that widen a
// nullable fixed width column are stored with it.
var InternalDecimalType = DecimalType_{precision: DecimalTypeMaxPrecision, scale: DecimalTypeMaxScale}

// DecimalType_ is an arbitrary precision decimal type.
type DecimalType_ struct {
	precision uint8
	scale     uint8
}

var _ sql.Type = DecimalType_{}

// CreateDecimalType creates a DecimalType with the given precision and scale.
func CreateDecimalType(precision uint8, scale uint8) (DecimalType_, error) {
	if precision == 0 || precision > DecimalTypeMaxPrecision {
		return DecimalType_{}, fmt.Errorf("decimal precision %d out of range", precision)
	}
	if scale > DecimalTypeMaxScale || scale > precision {
		return DecimalType_{}, fmt.Errorf("decimal scale %d out of range for precision %d", scale, precision)
	}
	return DecimalType_{precision: precision, scale: scale}, nil
}

// MustCreateDecimalType is the same as CreateDecimalType except it panics on errors.
func MustCreateDecimalType(precision uint8, scale uint8) DecimalType_ {
	dt, err := CreateDecimalType(precision, scale)
	if err != nil {
		panic(err)
	}
	return dt
}

// Precision returns the total number of digits.
func (t DecimalType_) Precision() uint8 { return t.precision }

// Scale returns the number of digits after the decimal point.
func (t DecimalType_) Scale() uint8 { return t.scale }

// Convert implements Type interface. Values are returned as decimal.Decimal
// rounded to the type's scale.
func (t DecimalType_) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	var d decimal.Decimal
	switch value := v.(type) {
	case decimal.Decimal:
		d = value
	case string:
		var err error
		d, err = decimal.NewFromString(value)
		if err != nil {
			return nil, sql.ErrConvertingToDecimal.Wrap(err, v)
		}
	case float32, float64:
		d = decimal.NewFromFloat(cast.ToFloat64(value))
	case time.Time:
		d = decimal.NewFromInt(value.UnixMilli())
	case uint64:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(value), 0)
	default:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return nil, sql.ErrConvertingToDecimal.Wrap(err, v)
		}
		d = decimal.NewFromInt(i)
	}

	return d.Round(int32(t.scale)), nil
}

// Compare implements Type interface.
func (t DecimalType_) Compare(a, b interface{}) (int, error) {
	if hasNulls, res := compareNulls(a, b); hasNulls {
		return res, nil
	}

	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}
	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}
	return ca.(decimal.Decimal).Cmp(cb.(decimal.Decimal)), nil
}

// Equals implements Type interface.
func (t DecimalType_) Equals(other sql.Type) bool {
	o, ok := other.(DecimalType_)
	return ok && o.precision == t.precision && o.scale == t.scale
}

// Physical implements Type interface.
func (t DecimalType_) Physical() sql.PhysicalType {
	return sql.PhysicalType{Encoding: sql.EncodingDecimal}
}

func (t DecimalType_) String() string {
	return fmt.Sprintf("DECIMAL(%d,%d)", t.precision, t.scale)
}
