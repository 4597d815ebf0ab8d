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

package model

import "strings"

// CIStr is a case insensitive string. Function and column names are matched
// on the lower-case form but keep the original spelling for display.
type CIStr struct {
	O string `json:"O"` // Original string.
	L string `json:"L"` // Lower case string.
}

// String implements fmt.Stringer interface.
func (s CIStr) String() string {
	return s.O
}

// NewCIStr creates a new CIStr.
func NewCIStr(s string) CIStr {
	return CIStr{
		O: s,
		L: strings.ToLower(s),
	}
}
