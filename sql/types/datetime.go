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
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/dolthub/go-index-rewriter/sql"
)

var (
	// Date is a date with day precision.
	Date = DatetimeType{timestamp: false}
	// Timestamp is a date and time with nanosecond precision.
	Timestamp = DatetimeType{timestamp: true}
)

// DatetimeType is a DATE or TIMESTAMP type. Values are time.Time in UTC.
type DatetimeType struct {
	timestamp bool
}

var _ sql.Type = DatetimeType{}

// Convert implements Type interface.
func (t DatetimeType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	// Decimals hold milliseconds since the epoch, the way index columns
	// widen nullable dates.
	if d, ok := v.(decimal.Decimal); ok {
		v = time.UnixMilli(d.IntPart())
	}

	tm, err := cast.ToTimeE(v)
	if err != nil {
		return nil, sql.ErrInvalidType.Wrap(err, t.String())
	}
	tm = tm.UTC()
	if !t.timestamp {
		tm = tm.Truncate(24 * time.Hour)
	}
	return tm, nil
}

// Compare implements Type interface.
func (t DatetimeType) Compare(a, b interface{}) (int, error) {
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
	return ca.(time.Time).Compare(cb.(time.Time)), nil
}

// Equals implements Type interface.
func (t DatetimeType) Equals(other sql.Type) bool {
	o, ok := other.(DatetimeType)
	return ok && o.timestamp == t.timestamp
}

// Physical implements Type interface.
func (t DatetimeType) Physical() sql.PhysicalType {
	if t.timestamp {
		return sql.PhysicalType{Encoding: sql.EncodingTimestamp, Width: 12}
	}
	return sql.PhysicalType{Encoding: sql.EncodingDate, Width: 8}
}

func (t DatetimeType) String() string {
	if t.timestamp {
		return "TIMESTAMP"
	}
	return "DATE"
}
