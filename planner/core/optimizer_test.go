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
	"context"
	"testing"

	"github.com/pingcap/failpoint"
	"github.com/stretchr/testify/require"

	"github.com/daohuoskeru/flink/expression"
	"github.com/daohuoskeru/flink/types"
)

func buildMixedApply(t *testing.T) *LogicalApply {
	ctx := MockContext()
	ds := buildDataSource(ctx, "t", []string{"x", "y"}, []byte{types.TypeString, types.TypeString},
		[][]types.Datum{{types.NewStringDatum("a b"), types.NewStringDatum(" ")}})
	call := expression.NewFunctionInternal(ctx, "py_split", types.NewFieldType(types.TypeString),
		expression.NewFunctionInternal(ctx, "upper", types.NewFieldType(types.TypeString), col(ds.Schema(), 0)),
		col(ds.Schema(), 1))
	scan := buildScan(ctx, call, "s0", types.TypeString)
	return buildApply(ctx, InnerJoin, ds, scan)
}

func TestLogicalOptimizeFlagGating(t *testing.T) {
	apply := buildMixedApply(t)
	result, err := LogicalOptimize(context.Background(), 0, apply)
	require.NoError(t, err)
	require.Same(t, LogicalPlan(apply), result)

	apply = buildMixedApply(t)
	result, err = LogicalOptimize(context.Background(), FlagPythonCorrelateSplit, apply)
	require.NoError(t, err)
	_, ok := result.(*LogicalProjection)
	require.True(t, ok)
}

func TestLogicalOptimizeFailpoint(t *testing.T) {
	require.NoError(t, failpoint.Enable(mockLogicalOptimizeErr, "return(true)"))
	defer func() {
		require.NoError(t, failpoint.Disable(mockLogicalOptimizeErr))
	}()
	_, err := LogicalOptimize(context.Background(), FlagPythonCorrelateSplit, buildMixedApply(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mock logical optimize error")
}

func TestRuleName(t *testing.T) {
	require.Equal(t, "python_correlate_split", (&pythonCorrelateSplitter{}).name())
}
