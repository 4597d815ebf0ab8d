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

package core

import (
	"github.com/daohuoskeru/flink/sessionctx"
)

// Plan type names used by explain output.
const (
	// TypeDataSource is the type of DataSource.
	TypeDataSource = "DataSource"
	// TypeProj is the type of Projection.
	TypeProj = "Projection"
	// TypeApply is the type of Apply.
	TypeApply = "Apply"
	// TypeTableFunctionScan is the type of TableFunctionScan.
	TypeTableFunctionScan = "TableFunctionScan"
)

// Init initializes LogicalProjection.
func (p LogicalProjection) Init(ctx sessionctx.Context) *LogicalProjection {
	p.baseLogicalPlan = newBaseLogicalPlan(ctx, TypeProj, &p)
	return &p
}

// Init initializes LogicalApply.
func (la LogicalApply) Init(ctx sessionctx.Context) *LogicalApply {
	la.baseLogicalPlan = newBaseLogicalPlan(ctx, TypeApply, &la)
	return &la
}

// Init initializes LogicalTableFunctionScan.
func (ts LogicalTableFunctionScan) Init(ctx sessionctx.Context) *LogicalTableFunctionScan {
	ts.baseLogicalPlan = newBaseLogicalPlan(ctx, TypeTableFunctionScan, &ts)
	return &ts
}

// Init initializes DataSource.
func (ds DataSource) Init(ctx sessionctx.Context) *DataSource {
	ds.baseLogicalPlan = newBaseLogicalPlan(ctx, TypeDataSource, &ds)
	return &ds
}
