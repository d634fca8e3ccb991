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

import "github.com/dolthub/go-index-rewriter/sql"

// IsNumber checks if t is a fixed width integer or float type.
func IsNumber(t sql.Type) bool {
	_, ok := t.(NumberTypeImpl_)
	return ok
}

// IsDecimal checks if t is a DECIMAL type.
func IsDecimal(t sql.Type) bool {
	_, ok := t.(DecimalType_)
	return ok
}

// IsText checks if t is a CHAR or VARCHAR type.
func IsText(t sql.Type) bool {
	st, ok := t.(StringType)
	return ok && !st.binary
}

// IsBinary checks if t is a BINARY or VARBINARY type.
func IsBinary(t sql.Type) bool {
	st, ok := t.(StringType)
	return ok && st.binary
}

// IsTime checks if t is a DATE or TIMESTAMP type.
func IsTime(t sql.Type) bool {
	_, ok := t.(DatetimeType)
	return ok
}

// IsBoolean checks if t is the BOOLEAN type.
func IsBoolean(t sql.Type) bool {
	_, ok := t.(booleanType)
	return ok
}

// compareNulls compares two values, and returns true if either is null.
// The returned integer represents the ordering, with nil ordered first.
func compareNulls(a interface{}, b interface{}) (bool, int) {
	if a == nil && b == nil {
		return true, 0
	} else if a == nil {
		return true, -1
	} else if b == nil {
		return true, 1
	}
	return false, 0
}
