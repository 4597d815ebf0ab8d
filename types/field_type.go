// Copyright 2023 The flink Authors.
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

// Type byte codes of the engine's SQL types.
const (
	TypeUnspecified byte = iota
	TypeBoolean
	TypeLong
	TypeDouble
	TypeString
)

// FieldType records the type information of a column or an expression result.
type FieldType struct {
	Tp byte
}

// NewFieldType returns a FieldType with the given type byte.
func NewFieldType(tp byte) *FieldType {
	return &FieldType{Tp: tp}
}

// Clone returns a copy of itself. Cloning a nil type is a nil type.
func (ft *FieldType) Clone() *FieldType {
	if ft == nil {
		return nil
	}
	ret := *ft
	return &ret
}

// Equal checks whether two FieldTypes are the same.
func (ft *FieldType) Equal(other *FieldType) bool {
	if ft == nil || other == nil {
		return ft == other
	}
	return ft.Tp == other.Tp
}

// String implements fmt.Stringer interface.
func (ft *FieldType) String() string {
	switch ft.Tp {
	case TypeBoolean:
		return "boolean"
	case TypeLong:
		return "long"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	}
	return "unspecified"
}
