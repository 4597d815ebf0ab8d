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
	"github.com/daohuoskeru/flink/expression"
)

// getTableFunctionScan resolves the table function scan reached from proj
// through a chain of projections. It returns false when the chain bottoms
// out on anything else.
func getTableFunctionScan(proj *LogicalProjection) (*LogicalTableFunctionScan, bool) {
	if len(proj.Children()) != 1 {
		return nil, false
	}
	switch x := proj.Children()[0].(type) {
	case *LogicalTableFunctionScan:
		return x, true
	case *LogicalProjection:
		return getTableFunctionScan(x)
	}
	return nil, false
}

// mergedProjection collapses a chain of stacked projections into a single
// equivalent projection whose child is the chain's bottom-most input. The
// merged expressions are produced by substituting each column reference with
// the child projection's expression at that offset; the output schema of the
// top projection is preserved.
func mergedProjection(proj *LogicalProjection) *LogicalProjection {
	child, ok := proj.Children()[0].(*LogicalProjection)
	if !ok {
		return proj
	}
	merged := mergedProjection(child)
	exprs := make([]expression.Expression, 0, len(proj.Exprs))
	for _, expr := range proj.Exprs {
		exprs = append(exprs, expression.ColumnSubstitute(expr, merged.Exprs))
	}
	np := LogicalProjection{Exprs: exprs}.Init(proj.SCtx())
	np.SetSchema(proj.Schema().Clone())
	np.SetChildren(merged.Children()...)
	return np
}
