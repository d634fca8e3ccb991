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
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/dolthub/go-index-rewriter/sql"
)

// Text is a VARCHAR without a declared maximum length.
var Text = MustCreateString(false, false, 0)

// Blob is a VARBINARY without a declared maximum length.
var Blob = MustCreateString(true, false, 0)

// StringType is a CHAR, VARCHAR, BINARY or VARBINARY type.
type StringType struct {
	binary     bool
	fixedWidth bool
	length     int
}

var _ sql.Type = StringType{}

// CreateString creates a new string type. Fixed width types must declare a
// positive length; a length of 0 means unbounded for variable width types.
func CreateString(binary, fixedWidth bool, length int) (StringType, error) {
	if length < 0 || (fixedWidth && length == 0) {
		return StringType{}, fmt.Errorf("invalid string length %d", length)
	}
	return StringType{binary: binary, fixedWidth: fixedWidth, length: length}, nil
}

// MustCreateString is the same as CreateString except it panics on errors.
func MustCreateString(binary, fixedWidth bool, length int) StringType {
	st, err := CreateString(binary, fixedWidth, length)
	if err != nil {
		panic(err)
	}
	return st
}

// Char returns a fixed width text type of the given length.
func Char(length int) StringType { return MustCreateString(false, true, length) }

// Varchar returns a variable width text type with the given maximum length.
func Varchar(length int) StringType { return MustCreateString(false, false, length) }

// Binary returns a fixed width binary type of the given length.
func Binary(length int) StringType { return MustCreateString(true, true, length) }

// Varbinary returns a variable width binary type with the given maximum length.
func Varbinary(length int) StringType { return MustCreateString(true, false, length) }

// Length returns the declared length, 0 if unbounded.
func (t StringType) Length() int { return t.length }

// Convert implements Type interface. Text values are returned as string and
// binary values as []byte.
func (t StringType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	var s string
	if b, ok := v.([]byte); ok {
		s = string(b)
	} else {
		var err error
		s, err = cast.ToStringE(v)
		if err != nil {
			return nil, sql.ErrInvalidType.Wrap(err, t.String())
		}
	}

	if t.fixedWidth {
		s = strings.TrimRight(s, " ")
	}
	if t.length > 0 && len(s) > t.length {
		return nil, sql.ErrLengthBeyondLimit.New(s, t.length)
	}

	if t.binary {
		return []byte(s), nil
	}
	return s, nil
}

// Compare implements Type interface.
func (t StringType) Compare(a, b interface{}) (int, error) {
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

	if t.binary {
		return bytes.Compare(ca.([]byte), cb.([]byte)), nil
	}
	return strings.Compare(ca.(string), cb.(string)), nil
}

// Equals implements Type interface.
func (t StringType) Equals(other sql.Type) bool {
	o, ok := other.(StringType)
	return ok && o == t
}

// Physical implements Type interface.
func (t StringType) Physical() sql.PhysicalType {
	switch {
	case t.binary && t.fixedWidth:
		return sql.PhysicalType{Encoding: sql.EncodingBinary, Width: t.length}
	case t.binary:
		return sql.PhysicalType{Encoding: sql.EncodingVarbinary}
	case t.fixedWidth:
		return sql.PhysicalType{Encoding: sql.EncodingChar, Width: t.length}
	default:
		return sql.PhysicalType{Encoding: sql.EncodingVarchar}
	}
}

func (t StringType) String() string {
	var name string
	switch {
	case t.binary && t.fixedWidth:
		name = "BINARY"
	case t.binary:
		name = "VARBINARY"
	case t.fixedWidth:
		name = "CHAR"
	default:
		name = "VARCHAR"
	}
	if t.length == 0 {
		return name
	}
	return fmt.Sprintf("%s(%d)", name, t.length)
}
