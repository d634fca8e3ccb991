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
	"github.com/spf13/cast"

	"github.com/dolthub/go-index-rewriter/sql"
)

// Boolean is the BOOLEAN type.
var Boolean sql.Type = booleanType{}

type booleanType struct{}

func (booleanType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, sql.ErrInvalidType.Wrap(err, "BOOLEAN")
	}
	return b, nil
}

func (t booleanType) Compare(a, b interface{}) (int, error) {
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

	switch {
	case ca == cb:
		return 0, nil
	case ca == false:
		return -1, nil
	default:
		return 1, nil
	}
}

func (booleanType) Equals(other sql.Type) bool {
	_, ok := other.(booleanType)
	return ok
}

func (booleanType) Physical() sql.PhysicalType {
	return sql.PhysicalType{Encoding: sql.EncodingBoolean, Width: 1}
}

func (booleanType) String() string {
	return "BOOLEAN"
}
