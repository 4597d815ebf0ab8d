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

	"github.com/daohuoskeru/flink/sessionctx"
	"github.com/daohuoskeru/flink/types"
)

// Expression represents all scalar expressions in the plan layer. Expression
// trees are treated as immutable by the optimizer: rewrites build new nodes
// instead of mutating shared ones.
type Expression interface {
	fmt.Stringer

	// Eval evaluates the expression against a row.
	Eval(row []types.Datum) (types.Datum, error)

	// GetType gets the expression return type.
	GetType() *types.FieldType

	// Clone copies the expression totally.
	Clone() Expression

	// Equal checks whether two expressions are equal.
	Equal(ctx sessionctx.Context, e Expression) bool
}

// EvalBool evaluates an expression to a boolean value.
func EvalBool(expr Expression, row []types.Datum) (bool, error) {
	data, err := expr.Eval(row)
	if err != nil {
		return false, err
	}
	if data.IsNull() {
		return false, nil
	}
	return data.ToBool()
}

// CloneExprs deep copies a slice of expressions.
func CloneExprs(exprs []Expression) []Expression {
	result := make([]Expression, 0, len(exprs))
	for _, e := range exprs {
		result = append(result, e.Clone())
	}
	return result
}
