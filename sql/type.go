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

package sql

import "fmt"

// Type represents a SQL logical type. The byte level layout of a value of
// the type is described separately by its PhysicalType.
type Type interface {
	fmt.Stringer
	// Compare returns an integer comparing two values.
	// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
	Compare(a, b interface{}) (int, error)
	// Convert a value of a compatible type to a most accurate type.
	Convert(v interface{}) (interface{}, error)
	// Equals returns whether the given type is the same logical type.
	Equals(other Type) bool
	// Physical returns the default encoding used to store values of this
	// type in ascending order.
	Physical() PhysicalType
}

// Encoding identifies the byte layout used to store a value.
type Encoding byte

const (
	// EncodingSignedInt is a big endian integer with the sign bit flipped.
	EncodingSignedInt Encoding = iota + 1
	// EncodingUnsignedInt is a big endian unsigned integer.
	EncodingUnsignedInt
	// EncodingFloat is an IEEE 754 float with sign and exponent adjusted to sort.
	EncodingFloat
	// EncodingDecimal is a variable length, order preserving decimal.
	EncodingDecimal
	// EncodingChar is a fixed width, space padded string.
	EncodingChar
	// EncodingVarchar is a variable length, separator terminated string.
	EncodingVarchar
	// EncodingBinary is a fixed width byte array.
	EncodingBinary
	// EncodingVarbinary is a variable length byte array.
	EncodingVarbinary
	// EncodingBoolean is a single byte boolean.
	EncodingBoolean
	// EncodingDate is milliseconds since the epoch as a signed long.
	EncodingDate
	// EncodingTimestamp is a date followed by the nanosecond remainder.
	EncodingTimestamp
)

var encodingNames = map[Encoding]string{
	EncodingSignedInt:   "SIGNED_INT",
	EncodingUnsignedInt: "UNSIGNED_INT",
	EncodingFloat:       "FLOAT",
	EncodingDecimal:     "DECIMAL",
	EncodingChar:        "CHAR",
	EncodingVarchar:     "VARCHAR",
	EncodingBinary:      "BINARY",
	EncodingVarbinary:   "VARBINARY",
	EncodingBoolean:     "BOOLEAN",
	EncodingDate:        "DATE",
	EncodingTimestamp:   "TIMESTAMP",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ENCODING(%d)", byte(e))
}

// SortOrder is the order in which encoded bytes of a column sort.
type SortOrder byte

const (
	// Ascending stores values as encoded.
	Ascending SortOrder = iota
	// Descending stores values with every byte inverted.
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "DESC"
	}
	return "ASC"
}

// PhysicalType describes how the value of a column is laid out in bytes.
type PhysicalType struct {
	Encoding Encoding
	// Width is the number of bytes of a fixed width encoding, or 0 for a
	// variable width one.
	Width int
	Order SortOrder
}

// FixedWidth returns whether values of this physical type always have the
// same length.
func (p PhysicalType) FixedWidth() bool {
	return p.Width > 0
}

// WithOrder returns a copy of the physical type with the given sort order.
func (p PhysicalType) WithOrder(o SortOrder) PhysicalType {
	p.Order = o
	return p
}

func (p PhysicalType) String() string {
	if p.FixedWidth() {
		return fmt.Sprintf("%s(%d) %s", p.Encoding, p.Width, p.Order)
	}
	return fmt.Sprintf("%s %s", p.Encoding, p.Order)
}

// BytesComparable returns whether values encoded with a and with b can be
// compared and sorted on their raw bytes without being converted first.
// The relation is symmetric.
func BytesComparable(a, b PhysicalType) bool {
	if a.Order != b.Order {
		return false
	}
	if a.Encoding == b.Encoding {
		return a.Width == b.Width
	}
	return sameFamily(a.Encoding, b.Encoding, EncodingChar, EncodingVarchar) ||
		sameFamily(a.Encoding, b.Encoding, EncodingBinary, EncodingVarbinary)
}

func sameFamily(a, b, x, y Encoding) bool {
	return (a == x && b == y) || (a == y && b == x)
}
