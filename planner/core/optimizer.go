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

	"github.com/pingcap/errors"
	"github.com/pingcap/failpoint"
)

// Optimizer rule flags. The i-th bit enables the i-th rule in optRuleList.
const (
	// FlagPythonCorrelateSplit enables splitting mixed-runtime table
	// function calls below a correlated apply.
	FlagPythonCorrelateSplit uint64 = 1 << iota
)

var optRuleList = []logicalOptRule{
	&pythonCorrelateSplitter{},
}

// logicalOptRule means a logical optimizing rule, which contains
// optimize and name methods.
type logicalOptRule interface {
	optimize(context.Context, LogicalPlan) (LogicalPlan, error)
	name() string
}

// mockLogicalOptimizeErr makes LogicalOptimize fail before any rule runs.
const mockLogicalOptimizeErr = "github.com/daohuoskeru/flink/planner/core/mockLogicalOptimizeErr"

// LogicalOptimize runs the enabled logical rules over the plan, in list
// order, and returns the optimized plan.
func LogicalOptimize(ctx context.Context, flag uint64, logic LogicalPlan) (LogicalPlan, error) {
	// Evaluated directly so tests can trip the failpoint without the
	// source rewrite step.
	if _, err := failpoint.Eval(mockLogicalOptimizeErr); err == nil {
		return nil, errors.New("mock logical optimize error")
	}
	var err error
	for i, rule := range optRuleList {
		// The order of flags is the same as the order of rules in the list.
		if flag&(1<<uint(i)) == 0 {
			continue
		}
		logic, err = rule.optimize(ctx, logic)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}
	return logic, nil
}
