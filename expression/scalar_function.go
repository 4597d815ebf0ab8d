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
	"strings"

	"github.com/pingcap/errors"

	"github.com/daohuoskeru/flink/parser/model"
	"github.com/daohuoskeru/flink/sessionctx"
	"github.com/daohuoskeru/flink/types"
)

// ScalarFunction is a function call expression. The same node kind also
// carries table function calls, which produce rows through EvalTable and
// reject scalar evaluation.
type ScalarFunction struct {
	FuncName model.CIStr
	RetType  *types.FieldType
	Function *baseBuiltinFunc
}

// GetArgs gets the arguments of the function.
func (sf *ScalarFunction) GetArgs() []Expression {
	return sf.Function.getArgs()
}

// Runtime reports which runtime the function body executes in.
func (sf *ScalarFunction) Runtime() EvalRuntime {
	return sf.Function.runtime()
}

// Eval implements Expression interface.
func (sf *ScalarFunction) Eval(row []types.Datum) (types.Datum, error) {
	if sf.Function.isTableFunc() {
		return types.Datum{}, errors.Errorf("table function %s used in scalar context", sf.FuncName.O)
	}
	args, err := sf.Function.evalArgs(row)
	if err != nil {
		return types.Datum{}, errors.Trace(err)
	}
	return sf.Function.fc.eval(args)
}

// EvalTable evaluates a table function call against a row, returning the
// generated rows.
func (sf *ScalarFunction) EvalTable(row []types.Datum) ([][]types.Datum, error) {
	if !sf.Function.isTableFunc() {
		return nil, errors.Errorf("%s is not a table function", sf.FuncName.O)
	}
	args, err := sf.Function.evalArgs(row)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return sf.Function.fc.evalTable(args)
}

// GetType implements Expression interface.
func (sf *ScalarFunction) GetType() *types.FieldType {
	return sf.RetType
}

// Clone implements Expression interface.
func (sf *ScalarFunction) Clone() Expression {
	return &ScalarFunction{
		FuncName: sf.FuncName,
		RetType:  sf.RetType.Clone(),
		Function: sf.Function.clone(),
	}
}

// Equal implements Expression interface.
func (sf *ScalarFunction) Equal(ctx sessionctx.Context, e Expression) bool {
	other, ok := e.(*ScalarFunction)
	if !ok {
		return false
	}
	if sf.FuncName.L != other.FuncName.L {
		return false
	}
	args, otherArgs := sf.GetArgs(), other.GetArgs()
	if len(args) != len(otherArgs) {
		return false
	}
	for i := range args {
		if !args[i].Equal(ctx, otherArgs[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer interface.
func (sf *ScalarFunction) String() string {
	var sb strings.Builder
	sb.WriteString(sf.FuncName.L)
	sb.WriteString("(")
	for i, arg := range sf.GetArgs() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// NewFunction creates a function call expression. It errors on an unknown
// function name or an arity violation.
func NewFunction(_ sessionctx.Context, funcName string, retType *types.FieldType, args ...Expression) (Expression, error) {
	fc, ok := getFunctionClass(funcName)
	if !ok {
		return nil, errors.Errorf("unknown function %s", funcName)
	}
	if err := fc.verifyArgs(args); err != nil {
		return nil, errors.Trace(err)
	}
	return &ScalarFunction{
		FuncName: model.NewCIStr(funcName),
		RetType:  retType,
		Function: &baseBuiltinFunc{args: args, fc: fc},
	}, nil
}

// NewFunctionInternal is similar to NewFunction, but it panics if any error
// occurs. Use it only when the call is known to be valid by construction.
func NewFunctionInternal(ctx sessionctx.Context, funcName string, retType *types.FieldType, args ...Expression) Expression {
	expr, err := NewFunction(ctx, funcName, retType, args...)
	if err != nil {
		panic(err)
	}
	return expr
}
