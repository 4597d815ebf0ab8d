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
	"fmt"
	"strings"

	"github.com/daohuoskeru/flink/expression"
	"github.com/daohuoskeru/flink/parser/model"
	"github.com/daohuoskeru/flink/types"
)

// JoinType contains CrossJoin, InnerJoin, LeftOuterJoin.
type JoinType int

const (
	// InnerJoin means inner join.
	InnerJoin JoinType = iota
	// LeftOuterJoin means left join.
	LeftOuterJoin
	// CrossJoin means cross join.
	CrossJoin
)

// String implements fmt.Stringer interface.
func (tp JoinType) String() string {
	switch tp {
	case InnerJoin:
		return "inner join"
	case LeftOuterJoin:
		return "left outer join"
	case CrossJoin:
		return "cross join"
	}
	return "unsupported join type"
}

// LogicalProjection represents a select fields plan.
type LogicalProjection struct {
	logicalSchemaProducer

	Exprs []expression.Expression
}

// ExplainInfo implements Plan interface.
func (p *LogicalProjection) ExplainInfo() string {
	exprStrs := make([]string, 0, len(p.Exprs))
	for _, expr := range p.Exprs {
		exprStrs = append(exprStrs, expr.String())
	}
	return strings.Join(exprStrs, ", ")
}

// LogicalApply gets one row from outer executor and gets one row from inner
// executor according to outer row. The inner side may reference outer row
// values through the correlation id.
type LogicalApply struct {
	logicalSchemaProducer

	JoinType JoinType

	// CorrelationID identifies the correlation variable the right side
	// resolves outer fields through.
	CorrelationID int64

	// RequiredColumns are the outer row offsets the right side requires.
	RequiredColumns []int
}

// ExplainInfo implements Plan interface.
func (la *LogicalApply) ExplainInfo() string {
	return fmt.Sprintf("%v, correlation:%d", la.JoinType, la.CorrelationID)
}

// LogicalTableFunctionScan generates zero or more rows per invocation of a
// table function call. All calls inside Call must belong to one runtime; the
// correlate split rule restores that invariant when plan building breaks it.
type LogicalTableFunctionScan struct {
	logicalSchemaProducer

	// Call is the table function call, a *expression.ScalarFunction.
	Call expression.Expression

	// ElemType is the element type of the generated rows, nil when the
	// rows are structured by the schema alone.
	ElemType *types.FieldType

	// ColMappings maps generated columns to input columns, nil when there
	// is no mapping.
	ColMappings []int
}

// ExplainInfo implements Plan interface.
func (ts *LogicalTableFunctionScan) ExplainInfo() string {
	return ts.Call.String()
}

// DataSource is an in-memory relation, the leaf of a logical plan tree.
type DataSource struct {
	logicalSchemaProducer

	TableName model.CIStr

	Rows [][]types.Datum
}

// ExplainInfo implements Plan interface.
func (ds *DataSource) ExplainInfo() string {
	return "table:" + ds.TableName.O
}
