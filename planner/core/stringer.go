// Copyright 2024 The flink Authors.
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

package core

import (
	"strings"
)

// ToString explains a plan in one line, child before parent.
func ToString(p Plan) string {
	strs, _ := toString(p, []string{}, []int{})
	return strings.Join(strs, "->")
}

func toString(in Plan, strs []string, idxs []int) ([]string, []int) {
	if x, ok := in.(LogicalPlan); ok {
		if len(x.Children()) > 1 {
			idxs = append(idxs, len(strs))
		}
		for _, c := range x.Children() {
			strs, idxs = toString(c, strs, idxs)
		}
	}

	var str string
	switch x := in.(type) {
	case *DataSource:
		str = "DataSource(" + x.TableName.O + ")"
	case *LogicalProjection:
		str = "Projection(" + x.ExplainInfo() + ")"
	case *LogicalTableFunctionScan:
		str = "TableFunctionScan(" + x.Call.String() + ")"
	case *LogicalApply:
		last := len(idxs) - 1
		idx := idxs[last]
		children := strs[idx:]
		strs = strs[:idx]
		idxs = idxs[:last]
		str = "Apply{" + strings.Join(children, "->") + "}"
	default:
		str = in.TP()
	}
	strs = append(strs, str)
	return strs, idxs
}
