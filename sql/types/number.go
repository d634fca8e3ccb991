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
	"cmp"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/dolthub/go-index-rewriter/sql"
)

var (
	// Int8 is an integer of 8 bits
	Int8 = NumberTypeImpl_{kind: signedKind, width: 1, name: "TINYINT"}
	// Uint8 is an unsigned integer of 8 bits
	Uint8 = NumberTypeImpl_{kind: unsignedKind, width: 1, name: "UNSIGNED_TINYINT"}
	// Int16 is an integer of 16 bits
	Int16 = NumberTypeImpl_{kind: signedKind, width: 2, name: "SMALLINT"}
	// Uint16 is an unsigned integer of 16 bits
	Uint16 = NumberTypeImpl_{kind: unsignedKind, width: 2, name: "UNSIGNED_SMALLINT"}
	// Int32 is an integer of 32 bits.
	Int32 = NumberTypeImpl_{kind: signedKind, width: 4, name: "INTEGER"}
	// Uint32 is an unsigned integer of 32 bits.
	Uint32 = NumberTypeImpl_{kind: unsignedKind, width: 4, name: "UNSIGNED_INT"}
	// Int64 is an integer of 64 bits.
	Int64 = NumberTypeImpl_{kind: signedKind, width: 8, name: "BIGINT"}
	// Uint64 is an unsigned integer of 64 bits.
	Uint64 = NumberTypeImpl_{kind: unsignedKind, width: 8, name: "UNSIGNED_LONG"}
	// Float32 is a floating point number of 32 bits.
	Float32 = NumberTypeImpl_{kind: floatKind, width: 4, name: "FLOAT"}
	// Float64 is a floating point number of 64 bits.
	Float64 = NumberTypeImpl_{kind: floatKind, width: 8, name: "DOUBLE"}
)

type numberKind byte

const (
	signedKind numberKind = iota
	unsignedKind
	floatKind
)

// NumberTypeImpl_ is a fixed width integer or floating point type.
type NumberTypeImpl_ struct {
	kind  numberKind
	width int
	name  string
}

var _ sql.Type = NumberTypeImpl_{}

// IsSigned returns whether the type is a signed integer.
func (t NumberTypeImpl_) IsSigned() bool { return t.kind == signedKind }

// IsUnsigned returns whether the type is an unsigned integer.
func (t NumberTypeImpl_) IsUnsigned() bool { return t.kind == unsignedKind }

// IsFloat returns whether the type is a floating point type.
func (t NumberTypeImpl_) IsFloat() bool { return t.kind == floatKind }

// Convert implements Type interface.
func (t NumberTypeImpl_) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if d, ok := v.(decimal.Decimal); ok {
		if t.kind == floatKind {
			v, _ = d.Float64()
		} else {
			v = d.IntPart()
		}
	}

	switch t.kind {
	case signedKind:
		switch t.width {
		case 1:
			return cast.ToInt8E(v)
		case 2:
			return cast.ToInt16E(v)
		case 4:
			return cast.ToInt32E(v)
		default:
			return cast.ToInt64E(v)
		}
	case unsignedKind:
		switch t.width {
		case 1:
			return cast.ToUint8E(v)
		case 2:
			return cast.ToUint16E(v)
		case 4:
			return cast.ToUint32E(v)
		default:
			return cast.ToUint64E(v)
		}
	default:
		if t.width == 4 {
			return cast.ToFloat32E(v)
		}
		return cast.ToFloat64E(v)
	}
}

// Compare implements Type interface.
func (t NumberTypeImpl_) Compare(a, b interface{}) (int, error) {
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

	switch t.kind {
	case signedKind:
		return cmp.Compare(cast.ToInt64(ca), cast.ToInt64(cb)), nil
	case unsignedKind:
		return cmp.Compare(cast.ToUint64(ca), cast.ToUint64(cb)), nil
	default:
		return cmp.Compare(cast.ToFloat64(ca), cast.ToFloat64(cb)), nil
	}
}

// Equals implements Type interface.
func (t NumberTypeImpl_) Equals(other sql.Type) bool {
	o, ok := other.(NumberTypeImpl_)
	return ok && o.kind == t.kind && o.width == t.width
}

// Physical implements Type interface.
func (t NumberTypeImpl_) Physical() sql.PhysicalType {
	enc := sql.EncodingSignedInt
	switch t.kind {
	case unsignedKind:
		enc = sql.EncodingUnsignedInt
	case floatKind:
		enc = sql.EncodingFloat
	}
	return sql.PhysicalType{Encoding: enc, Width: t.width}
}

func (t NumberTypeImpl_) String() string {
	return t.name
}
