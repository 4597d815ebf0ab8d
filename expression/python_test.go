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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daohuoskeru/flink/parser/model"
	"github.com/daohuoskeru/flink/sessionctx"
	"github.com/daohuoskeru/flink/types"
	"github.com/daohuoskeru/flink/util/mock"
)

func newTestContext() sessionctx.Context {
	return mock.NewContext()
}

func init() {
	RegisterPythonScalarFunc("py_upper", 1, 1, func(args []types.Datum) (d types.Datum, err error) {
		if args[0].IsNull() {
			return d, nil
		}
		d.SetString(strings.ToUpper(args[0].GetString()))
		return d, nil
	})
	RegisterPythonTableFunc("py_split", 2, 2, func(args []types.Datum) ([][]types.Datum, error) {
		if args[0].IsNull() || args[1].IsNull() {
			return nil, nil
		}
		parts := strings.Split(args[0].GetString(), args[1].GetString())
		rows := make([][]types.Datum, 0, len(parts))
		for _, p := range parts {
			rows = append(rows, []types.Datum{types.NewStringDatum(p)})
		}
		return rows, nil
	})
}

func strCol(name string, idx int) *Column {
	return &Column{
		ColName: model.NewCIStr(name),
		RetType: types.NewFieldType(types.TypeString),
		Index:   idx,
	}
}

func TestCallClassification(t *testing.T) {
	ctx := newTestContext()
	strTp := types.NewFieldType(types.TypeString)
	x := strCol("x", 0)

	pyCall := NewFunctionInternal(ctx, "py_upper", strTp, x)
	genCall := NewFunctionInternal(ctx, "upper", strTp, x)
	nested := NewFunctionInternal(ctx, "upper", strTp, pyCall)
	mixedTable := NewFunctionInternal(ctx, "py_split", strTp, genCall, x)

	cases := []struct {
		expr        Expression
		isPy        bool
		isGen       bool
		containsPy  bool
		containsGen bool
	}{
		{x, false, false, false, false},
		{NewZero(), false, false, false, false},
		{pyCall, true, false, true, false},
		{genCall, false, true, false, true},
		// The root call decides "is", any node decides "contains".
		{nested, false, true, true, true},
		{mixedTable, true, false, true, true},
	}
	for _, ca := range cases {
		require.Equal(t, ca.isPy, IsPythonCall(ca.expr), "expr %s", ca.expr)
		require.Equal(t, ca.isGen, IsNonPythonCall(ca.expr), "expr %s", ca.expr)
		require.Equal(t, ca.containsPy, ContainsPythonCall(ca.expr), "expr %s", ca.expr)
		require.Equal(t, ca.containsGen, ContainsNonPythonCall(ca.expr), "expr %s", ca.expr)
	}
}

func TestDeeplyNestedContains(t *testing.T) {
	ctx := newTestContext()
	strTp := types.NewFieldType(types.TypeString)
	inner := NewFunctionInternal(ctx, "py_upper", strTp, strCol("x", 0))
	expr := inner
	for i := 0; i < 4; i++ {
		expr = NewFunctionInternal(ctx, "lower", strTp, expr)
	}
	require.True(t, ContainsPythonCall(expr))
	require.True(t, ContainsNonPythonCall(expr))
	require.False(t, IsPythonCall(expr))
}
