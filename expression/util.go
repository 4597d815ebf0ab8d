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

package expression

import (
	"fmt"

	"github.com/daohuoskeru/flink/parser/model"
)

// Column2Exprs converts []*Column to []Expression.
func Column2Exprs(cols []*Column) []Expression {
	result := make([]Expression, 0, len(cols))
	for _, col := range cols {
		result = append(result, col)
	}
	return result
}

// ExtractColumns extracts all columns from an expression, in pre-order.
func ExtractColumns(expr Expression) []*Column {
	switch v := expr.(type) {
	case *Column:
		return []*Column{v}
	case *ScalarFunction:
		var cols []*Column
		for _, arg := range v.GetArgs() {
			cols = append(cols, ExtractColumns(arg)...)
		}
		return cols
	}
	return nil
}

// ColumnSubstitute substitutes every column in expr with the expression at
// the column's Index in newExprs. Correlated columns and literals are left
// untouched. The input expression is not mutated.
func ColumnSubstitute(expr Expression, newExprs []Expression) Expression {
	switch v := expr.(type) {
	case *Column:
		if v.Index >= 0 && v.Index < len(newExprs) {
			return newExprs[v.Index].Clone()
		}
		return v
	case *ScalarFunction:
		newSf := v.Clone().(*ScalarFunction)
		args := newSf.GetArgs()
		for i, arg := range args {
			args[i] = ColumnSubstitute(arg, newExprs)
		}
		return newSf
	}
	return expr
}

// UniquifyNames makes the given names unique under the configured case
// sensitivity. The prefix of already-unique names is never altered: only a
// later duplicate is renamed, to `name_N` with the smallest free N. The
// input slice is not mutated.
func UniquifyNames(names []model.CIStr, caseSensitive bool) []model.CIStr {
	key := func(name model.CIStr) string {
		if caseSensitive {
			return name.O
		}
		return name.L
	}
	seen := make(map[string]struct{}, len(names))
	result := make([]model.CIStr, 0, len(names))
	for _, name := range names {
		candidate := name
		for i := 1; ; i++ {
			if _, dup := seen[key(candidate)]; !dup {
				break
			}
			candidate = model.NewCIStr(fmt.Sprintf("%s_%d", name.O, i))
		}
		seen[key(candidate)] = struct{}{}
		result = append(result, candidate)
	}
	return result
}
