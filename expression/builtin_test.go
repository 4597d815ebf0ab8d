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

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daohuoskeru/flink/types"
)

func TestNewFunctionErrors(t *testing.T) {
	ctx := newTestContext()
	strTp := types.NewFieldType(types.TypeString)

	_, err := NewFunction(ctx, "no_such_func", strTp, strCol("x", 0))
	require.Error(t, err)

	_, err = NewFunction(ctx, "upper", strTp)
	require.Error(t, err)
	_, err = NewFunction(ctx, "upper", strTp, strCol("x", 0), strCol("y", 1))
	require.Error(t, err)

	// Function names resolve case-insensitively.
	f, err := NewFunction(ctx, "UPPER", strTp, strCol("x", 0))
	require.NoError(t, err)
	require.True(t, IsNonPythonCall(f))
}

func TestScalarEval(t *testing.T) {
	ctx := newTestContext()
	strTp := types.NewFieldType(types.TypeString)
	longTp := types.NewFieldType(types.TypeLong)
	row := []types.Datum{types.NewStringDatum("ab"), types.NewIntDatum(3)}

	cases := []struct {
		expr Expression
		want types.Datum
	}{
		{NewFunctionInternal(ctx, "upper", strTp, strCol("x", 0)), types.NewStringDatum("AB")},
		{NewFunctionInternal(ctx, "length", longTp, strCol("x", 0)), types.NewIntDatum(2)},
		{NewFunctionInternal(ctx, "plus", longTp,
			&Column{RetType: longTp, Index: 1},
			&Constant{Value: types.NewIntDatum(4), RetType: longTp}), types.NewIntDatum(7)},
		{NewFunctionInternal(ctx, "concat", strTp, strCol("x", 0), strCol("x", 0)), types.NewStringDatum("abab")},
		{NewFunctionInternal(ctx, "py_upper", strTp, strCol("x", 0)), types.NewStringDatum("AB")},
	}
	for _, ca := range cases {
		got, err := ca.expr.Eval(row)
		require.NoError(t, err, "expr %s", ca.expr)
		require.True(t, ca.want.Equals(got), "expr %s got %s", ca.expr, got)
	}
}

func TestTableEval(t *testing.T) {
	ctx := newTestContext()
	strTp := types.NewFieldType(types.TypeString)
	row := []types.Datum{types.NewStringDatum("a,b"), types.NewStringDatum(",")}

	call := NewFunctionInternal(ctx, "split", strTp, strCol("x", 0), strCol("y", 1)).(*ScalarFunction)
	rows, err := call.EvalTable(row)
	require.NoError(t, err)
	require.Equal(t, [][]types.Datum{
		{types.NewStringDatum("a")},
		{types.NewStringDatum("b")},
	}, rows)

	// A table function rejects scalar evaluation, and the other way round.
	_, err = call.Eval(row)
	require.Error(t, err)
	scalar := NewFunctionInternal(ctx, "upper", strTp, strCol("x", 0)).(*ScalarFunction)
	_, err = scalar.EvalTable(row)
	require.Error(t, err)
}

func TestEvalBool(t *testing.T) {
	ctx := newTestContext()
	longTp := types.NewFieldType(types.TypeLong)
	row := []types.Datum{types.NewIntDatum(0), types.NewStringDatum("x")}

	cases := []struct {
		expr Expression
		want bool
	}{
		{&Column{RetType: longTp, Index: 0}, false},
		{strCol("y", 1), true},
		{NewZero(), false},
		// Null short-circuits to false without error.
		{&Constant{Value: types.Datum{}, RetType: longTp}, false},
		{NewFunctionInternal(ctx, "plus", longTp,
			&Column{RetType: longTp, Index: 0},
			&Constant{Value: types.NewIntDatum(2), RetType: longTp}), true},
	}
	for _, ca := range cases {
		got, err := EvalBool(ca.expr, row)
		require.NoError(t, err, "expr %s", ca.expr)
		require.Equal(t, ca.want, got, "expr %s", ca.expr)
	}

	_, err := EvalBool(strCol("z", 9), row)
	require.Error(t, err)
}

func TestColumnEvalOutOfRange(t *testing.T) {
	row := []types.Datum{types.NewStringDatum("a")}
	_, err := strCol("x", 3).Eval(row)
	require.Error(t, err)
}
