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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-index-rewriter/sql"
)

func TestNumberConvert(t *testing.T) {
	tests := []struct {
		typ    sql.Type
		inp    interface{}
		exp    interface{}
		expErr bool
	}{
		{Int8, int64(12), int8(12), false},
		{Int16, "-7", int16(-7), false},
		{Int32, decimal.NewFromFloat(5.7), int32(5), false},
		{Int64, 3.0, int64(3), false},
		{Uint32, "42", uint32(42), false},
		{Uint64, uint8(1), uint64(1), false},
		{Float32, "1.5", float32(1.5), false},
		{Float64, decimal.NewFromFloat(2.25), float64(2.25), false},
		{Int32, nil, nil, false},
		{Int32, "abc", nil, true},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%v %v", test.typ, test.inp), func(t *testing.T) {
			val, err := test.typ.Convert(test.inp)
			if test.expErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.exp, val)
		})
	}
}

func TestNumberCompare(t *testing.T) {
	tests := []struct {
		typ sql.Type
		a   interface{}
		b   interface{}
		exp int
	}{
		{Int32, 1, 2, -1},
		{Int32, int64(2), "2", 0},
		{Uint64, uint64(10), 3, 1},
		{Float64, 1.5, 1.25, 1},
		{Int64, nil, 1, -1},
		{Int64, 1, nil, 1},
		{Int64, nil, nil, 0},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%v %v %v", test.typ, test.a, test.b), func(t *testing.T) {
			cmp, err := test.typ.Compare(test.a, test.b)
			require.NoError(t, err)
			assert.Equal(t, test.exp, cmp)
		})
	}
}

func TestNumberPhysical(t *testing.T) {
	require := require.New(t)

	require.Equal(sql.PhysicalType{Encoding: sql.EncodingSignedInt, Width: 4}, Int32.Physical())
	require.Equal(sql.PhysicalType{Encoding: sql.EncodingUnsignedInt, Width: 8}, Uint64.Physical())
	require.Equal(sql.PhysicalType{Encoding: sql.EncodingFloat, Width: 8}, Float64.Physical())

	require.True(Int32.Equals(Int32))
	require.False(Int32.Equals(Int64))
	require.False(Int32.Equals(Uint32))
	require.False(Int32.Equals(Text))
	require.True(IsNumber(Float32))
	require.False(IsNumber(InternalDecimalType))
}

func TestDecimal(t *testing.T) {
	require := require.New(t)

	dt := MustCreateDecimalType(10, 2)
	require.Equal("DECIMAL(10,2)", dt.String())
	require.Equal(sql.PhysicalType{Encoding: sql.EncodingDecimal}, dt.Physical())
	require.True(dt.Equals(MustCreateDecimalType(10, 2)))
	require.False(dt.Equals(InternalDecimalType))

	v, err := dt.Convert("3.14159")
	require.NoError(err)
	require.True(decimal.RequireFromString("3.14").Equal(v.(decimal.Decimal)))

	v, err = dt.Convert(int32(7))
	require.NoError(err)
	require.True(decimal.NewFromInt(7).Equal(v.(decimal.Decimal)))

	v, err = dt.Convert(uint64(18446744073709551615))
	require.NoError(err)
	require.Equal("18446744073709551615", v.(decimal.Decimal).String())

	_, err = dt.Convert("not a number")
	require.Error(err)
	require.True(sql.ErrConvertingToDecimal.Is(err))

	cmp, err := dt.Compare("1.001", 1)
	require.NoError(err)
	require.Equal(0, cmp)

	_, err = CreateDecimalType(0, 0)
	require.Error(err)
	_, err = CreateDecimalType(5, 6)
	require.Error(err)
	require.Panics(func() { MustCreateDecimalType(66, 0) })
}
