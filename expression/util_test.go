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

	"github.com/daohuoskeru/flink/parser/model"
	"github.com/daohuoskeru/flink/types"
)

func names(ss ...string) []model.CIStr {
	result := make([]model.CIStr, 0, len(ss))
	for _, s := range ss {
		result = append(result, model.NewCIStr(s))
	}
	return result
}

func asStrings(ns []model.CIStr) []string {
	result := make([]string, 0, len(ns))
	for _, n := range ns {
		result = append(result, n.O)
	}
	return result
}

func TestUniquifyNames(t *testing.T) {
	cases := []struct {
		in            []string
		caseSensitive bool
		out           []string
	}{
		{[]string{"a", "b", "c"}, false, []string{"a", "b", "c"}},
		{[]string{"a", "a"}, false, []string{"a", "a_1"}},
		{[]string{"a", "a", "a"}, false, []string{"a", "a_1", "a_2"}},
		// The rename itself must not collide with a later name.
		{[]string{"a", "a", "a_1"}, false, []string{"a", "a_1", "a_1_1"}},
		{[]string{"f0", "f0", "f1"}, false, []string{"f0", "f0_1", "f1"}},
		// Case-insensitive naming treats A and a as duplicates.
		{[]string{"A", "a"}, false, []string{"A", "a_1"}},
		{[]string{"A", "a"}, true, []string{"A", "a"}},
	}
	for _, ca := range cases {
		in := names(ca.in...)
		got := UniquifyNames(in, ca.caseSensitive)
		require.Equal(t, ca.out, asStrings(got), "input %v", ca.in)
		// The input slice stays untouched.
		require.Equal(t, ca.in, asStrings(in))
	}
}

func TestColumnSubstitute(t *testing.T) {
	ctx := newTestContext()
	strTp := types.NewFieldType(types.TypeString)
	x, y := strCol("x", 0), strCol("y", 1)
	repl := []Expression{
		NewFunctionInternal(ctx, "upper", strTp, strCol("s", 0)),
		strCol("t", 1),
	}

	expr := NewFunctionInternal(ctx, "concat", strTp, x, y)
	got := ColumnSubstitute(expr, repl)
	require.Equal(t, "concat(upper(s), t)", got.String())
	// The original expression keeps its own arguments.
	require.Equal(t, "concat(x, y)", expr.String())

	// A constant passes through untouched.
	c := NewZero()
	require.Same(t, Expression(c), ColumnSubstitute(c, repl))

	// A column beyond the replacement list stays as is.
	z := strCol("z", 5)
	require.Same(t, Expression(z), ColumnSubstitute(z, repl))
}

func TestColumn2Exprs(t *testing.T) {
	x, y := strCol("x", 0), strCol("y", 1)
	exprs := Column2Exprs([]*Column{x, y})
	require.Len(t, exprs, 2)
	require.Same(t, Expression(x), exprs[0])
	require.Same(t, Expression(y), exprs[1])
	require.Empty(t, Column2Exprs(nil))
}

func TestExtractColumns(t *testing.T) {
	ctx := newTestContext()
	strTp := types.NewFieldType(types.TypeString)
	x, y := strCol("x", 0), strCol("y", 1)
	expr := NewFunctionInternal(ctx, "concat",
		strTp, NewFunctionInternal(ctx, "upper", strTp, x), y, x)
	cols := ExtractColumns(expr)
	require.Equal(t, []*Column{x, y, x}, cols)
	require.Nil(t, ExtractColumns(NewZero()))
}
