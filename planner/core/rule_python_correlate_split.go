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
	"fmt"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/daohuoskeru/flink/expression"
	"github.com/daohuoskeru/flink/parser/model"
	"github.com/daohuoskeru/flink/sessionctx"
	"github.com/daohuoskeru/flink/util/logutil"
)

// pythonCorrelateSplitter splits a table function scan below an apply when
// the scan's call mixes Python and general calls. The calls of the runtime
// the scan cannot host are lifted into a projection below the apply's left
// input and evaluated there once per outer row, the scan keeps references to
// the lifted values, and a trailing projection restores the apply's visible
// output schema.
//
// For a Python scan over left fields x, y:
//
//	Apply{left->TableFunctionScan(py_func(upper(x), y))}
//
// becomes
//
//	Projection(x, y, <scan fields>)
//	  ->Apply{Projection(x, y, upper(x))->TableFunctionScan(py_func($2, y))}
type pythonCorrelateSplitter struct {
}

// rightShape is the resolved form of the apply's right operand: the table
// function scan, plus the merged projection wrapping it when the scan is not
// the direct child. Resolving once at match time saves the rewrite from
// re-inspecting operator kinds.
type rightShape struct {
	scan *LogicalTableFunctionScan
	proj *LogicalProjection
}

func (s *pythonCorrelateSplitter) optimize(ctx context.Context, p LogicalPlan) (LogicalPlan, error) {
	if apply, ok := p.(*LogicalApply); ok {
		if shape, ok := s.matches(apply); ok {
			np, err := s.onMatch(apply, shape)
			if err != nil {
				return nil, errors.Trace(err)
			}
			p = np
		}
	}
	for i, child := range p.Children() {
		newChild, err := s.optimize(ctx, child)
		if err != nil {
			return nil, errors.Trace(err)
		}
		p.SetChild(i, newChild)
	}
	return p, nil
}

// matches resolves the apply's right operand and reports whether the scan's
// call is a pure call of one runtime containing at least one call of the
// other. Any failure to resolve the shape is a plain no-match, never an
// error.
func (s *pythonCorrelateSplitter) matches(apply *LogicalApply) (rightShape, bool) {
	var shape rightShape
	if len(apply.Children()) != 2 {
		return shape, false
	}
	switch x := apply.Children()[1].(type) {
	case *LogicalTableFunctionScan:
		shape.scan = x
	case *LogicalProjection:
		scan, ok := getTableFunctionScan(x)
		if !ok {
			return shape, false
		}
		shape.scan = scan
		shape.proj = mergedProjection(x)
	default:
		return shape, false
	}
	call, ok := shape.scan.Call.(*expression.ScalarFunction)
	if !ok {
		return shape, false
	}
	matched := expression.IsPythonCall(call) && expression.ContainsNonPythonCall(call) ||
		expression.IsNonPythonCall(call) && expression.ContainsPythonCall(call)
	return shape, matched
}

func (s *pythonCorrelateSplitter) onMatch(apply *LogicalApply, shape rightShape) (LogicalPlan, error) {
	sctx := apply.SCtx()
	left := apply.Children()[0]
	primitiveLeftFieldCount := left.Schema().Len()

	// Extract general calls from a Python table function, or Python calls
	// from a general table function.
	var isForeign func(expression.Expression) bool
	if expression.IsNonPythonCall(shape.scan.Call) {
		isForeign = expression.IsPythonCall
	} else {
		isForeign = expression.IsNonPythonCall
	}
	extracted := make([]*expression.ScalarFunction, 0, 4)
	splitter := &scalarFunctionSplitter{
		sctx:      sctx,
		offset:    primitiveLeftFieldCount,
		extracted: &extracted,
		isForeign: isForeign,
	}

	newScan, err := s.createNewScan(shape.scan, splitter)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var rightNewInput LogicalPlan = newScan
	if shape.proj != nil {
		// The projection referenced the scan's output schema, which the
		// rebuild does not alter, so its expressions carry over as is.
		proj := LogicalProjection{Exprs: expression.CloneExprs(shape.proj.Exprs)}.Init(sctx)
		proj.SetSchema(shape.proj.Schema().Clone())
		proj.SetChildren(newScan)
		rightNewInput = proj
	}

	leftProj := s.createLeftProjection(sctx, left, extracted)

	newApply := LogicalApply{
		JoinType:        apply.JoinType,
		CorrelationID:   apply.CorrelationID,
		RequiredColumns: append([]int(nil), apply.RequiredColumns...),
	}.Init(sctx)
	newApply.SetChildren(leftProj, rightNewInput)
	newApply.SetSchema(buildApplySchema(leftProj.Schema(), rightNewInput.Schema()))

	topProj, err := s.createTopProjection(sctx, apply, newApply, primitiveLeftFieldCount, len(extracted))
	if err != nil {
		return nil, errors.Trace(err)
	}
	logutil.BgLogger().Debug("split mixed-runtime correlated table function scan",
		zap.String("call", shape.scan.Call.String()),
		zap.Int("extracted", len(extracted)))
	return topProj, nil
}

// scalarFunctionSplitter replaces every maximal foreign-runtime call in an
// expression tree with a reference to a field behind offset, and collects
// the extracted calls in first-encounter order. The position of a call in
// the extraction list is the offset-relative index of the field that will
// carry its value.
type scalarFunctionSplitter struct {
	sctx      sessionctx.Context
	offset    int
	extracted *[]*expression.ScalarFunction
	isForeign func(expression.Expression) bool
}

func (s *scalarFunctionSplitter) split(expr expression.Expression) (expression.Expression, error) {
	sf, ok := expr.(*expression.ScalarFunction)
	if !ok {
		// Field references and literals stay as they are. Their indices
		// remain valid because extracted fields are assigned indices
		// strictly above the original field count.
		return expr, nil
	}
	if s.isForeign(sf) {
		pos := len(*s.extracted)
		*s.extracted = append(*s.extracted, sf)
		return &expression.Column{
			UniqueID: s.sctx.GetSessionVars().AllocPlanColumnID(),
			ColName:  model.NewCIStr(fmt.Sprintf("f%d", pos)),
			RetType:  sf.RetType.Clone(),
			Index:    s.offset + pos,
		}, nil
	}
	args := sf.GetArgs()
	newArgs := make([]expression.Expression, 0, len(args))
	for _, arg := range args {
		newArg, err := s.split(arg)
		if err != nil {
			return nil, errors.Trace(err)
		}
		newArgs = append(newArgs, newArg)
	}
	newSf, err := expression.NewFunction(s.sctx, sf.FuncName.L, sf.RetType.Clone(), newArgs...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return newSf, nil
}

// createNewScan splits the scan's call operand by operand and rebuilds the
// scan around the transformed call. The call node itself is never split, its
// function identity must survive the rewrite.
func (s *pythonCorrelateSplitter) createNewScan(scan *LogicalTableFunctionScan, splitter *scalarFunctionSplitter) (*LogicalTableFunctionScan, error) {
	call := scan.Call.(*expression.ScalarFunction)
	args := call.GetArgs()
	newArgs := make([]expression.Expression, 0, len(args))
	for _, arg := range args {
		newArg, err := splitter.split(arg)
		if err != nil {
			return nil, errors.Trace(err)
		}
		newArgs = append(newArgs, newArg)
	}
	newCall, err := expression.NewFunction(splitter.sctx, call.FuncName.L, call.RetType.Clone(), newArgs...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	newScan := LogicalTableFunctionScan{
		Call:        newCall,
		ElemType:    scan.ElemType,
		ColMappings: scan.ColMappings,
	}.Init(splitter.sctx)
	newScan.SetSchema(scan.Schema().Clone())
	newScan.SetChildren(scan.Children()...)
	return newScan, nil
}

// createLeftProjection builds the projection below the new apply: the
// original left fields followed by the extracted calls, now evaluated once
// per outer row outside the scan. The synthesized field names are uniquified
// against the original ones; the original names are never altered.
func (s *pythonCorrelateSplitter) createLeftProjection(sctx sessionctx.Context, left LogicalPlan, extracted []*expression.ScalarFunction) *LogicalProjection {
	leftSchema := left.Schema()
	exprs := make([]expression.Expression, 0, leftSchema.Len()+len(extracted))
	names := make([]model.CIStr, 0, leftSchema.Len()+len(extracted))
	for i, col := range leftSchema.Columns {
		ref := col.Clone().(*expression.Column)
		ref.Index = i
		exprs = append(exprs, ref)
		names = append(names, col.ColName)
	}
	for i, call := range extracted {
		exprs = append(exprs, call)
		names = append(names, model.NewCIStr(fmt.Sprintf("f%d", i)))
	}
	names = expression.UniquifyNames(names, sctx.GetSessionVars().SchemaCaseSensitive)

	proj := LogicalProjection{Exprs: exprs}.Init(sctx)
	cols := make([]*expression.Column, 0, len(exprs))
	for i, expr := range exprs {
		cols = append(cols, &expression.Column{
			UniqueID: sctx.GetSessionVars().AllocPlanColumnID(),
			ColName:  names[i],
			RetType:  expr.GetType().Clone(),
			Index:    i,
		})
	}
	proj.SetSchema(expression.NewSchema(cols...))
	proj.SetChildren(left)
	return proj
}

// createTopProjection restores the original visible output schema, hiding
// the extracted value fields sitting between the original left fields and
// the right-hand fields.
func (s *pythonCorrelateSplitter) createTopProjection(sctx sessionctx.Context, origApply, newApply *LogicalApply, primitiveLeftFieldCount, extractedCount int) (*LogicalProjection, error) {
	offset := primitiveLeftFieldCount + extractedCount
	exprs := make([]expression.Expression, 0, newApply.Schema().Len()-extractedCount)
	for i, col := range newApply.Schema().Columns {
		if i >= primitiveLeftFieldCount && i < offset {
			continue
		}
		ref := col.Clone().(*expression.Column)
		ref.Index = i
		exprs = append(exprs, ref)
	}
	origSchema := origApply.Schema()
	if len(exprs) != origSchema.Len() {
		return nil, errors.Errorf("correlate split built %d visible columns, the original apply has %d", len(exprs), origSchema.Len())
	}
	proj := LogicalProjection{Exprs: exprs}.Init(sctx)
	cols := make([]*expression.Column, 0, origSchema.Len())
	for i, col := range origSchema.Columns {
		newCol := col.Clone().(*expression.Column)
		newCol.Index = i
		cols = append(cols, newCol)
	}
	proj.SetSchema(expression.NewSchema(cols...))
	proj.SetChildren(newApply)
	return proj, nil
}

// buildApplySchema re-derives the apply's output schema from its children,
// assigning row offsets over the concatenated width.
func buildApplySchema(lSchema, rSchema *expression.Schema) *expression.Schema {
	schema := expression.MergeSchema(lSchema, rSchema)
	for i, col := range schema.Columns {
		col.Index = i
	}
	return schema
}

func (*pythonCorrelateSplitter) name() string {
	return "python_correlate_split"
}
