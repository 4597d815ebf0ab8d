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
	"strconv"

	"github.com/daohuoskeru/flink/expression"
	"github.com/daohuoskeru/flink/sessionctx"
)

// Plan is the description of an execution flow.
type Plan interface {
	// Schema gets the row schema produced by the plan.
	Schema() *expression.Schema

	// ID gets the plan ID.
	ID() int

	// TP gets the plan type.
	TP() string

	// ExplainID gets the ID in explain statement.
	ExplainID() fmt.Stringer

	// ExplainInfo returns operator information to be explained.
	ExplainInfo() string

	// SCtx returns the session context the plan was built with.
	SCtx() sessionctx.Context
}

// LogicalPlan is a tree of logical operators.
type LogicalPlan interface {
	Plan

	// Children gets all the children.
	Children() []LogicalPlan

	// SetChildren sets the children for the plan.
	SetChildren(...LogicalPlan)

	// SetChild sets the ith child for the plan.
	SetChild(i int, child LogicalPlan)
}

// basePlan implements the base Plan interface.
// Should be used as embedded struct in Plan implementations.
type basePlan struct {
	tp  string
	id  int
	ctx sessionctx.Context
}

func newBasePlan(ctx sessionctx.Context, tp string) basePlan {
	ctx.GetSessionVars().PlanID++
	return basePlan{
		tp:  tp,
		id:  ctx.GetSessionVars().PlanID,
		ctx: ctx,
	}
}

// ID implements Plan ID interface.
func (p *basePlan) ID() int {
	return p.id
}

// TP implements Plan interface.
func (p *basePlan) TP() string {
	return p.tp
}

// ExplainID implements Plan interface.
func (p *basePlan) ExplainID() fmt.Stringer {
	return explainID(p.tp + "_" + strconv.Itoa(p.id))
}

// ExplainInfo implements Plan interface.
func (p *basePlan) ExplainInfo() string {
	return "N/A"
}

// SCtx implements Plan Context interface.
func (p *basePlan) SCtx() sessionctx.Context {
	return p.ctx
}

type explainID string

func (e explainID) String() string {
	return string(e)
}

type baseLogicalPlan struct {
	basePlan

	self     LogicalPlan
	children []LogicalPlan
}

func newBaseLogicalPlan(ctx sessionctx.Context, tp string, self LogicalPlan) baseLogicalPlan {
	return baseLogicalPlan{
		basePlan: newBasePlan(ctx, tp),
		self:     self,
	}
}

// ExplainInfo implements Plan interface.
func (p *baseLogicalPlan) ExplainInfo() string {
	return ""
}

// Schema implements Plan Schema interface.
func (p *baseLogicalPlan) Schema() *expression.Schema {
	return p.children[0].Schema()
}

// Children implements LogicalPlan Children interface.
func (p *baseLogicalPlan) Children() []LogicalPlan {
	return p.children
}

// SetChildren implements LogicalPlan SetChildren interface.
func (p *baseLogicalPlan) SetChildren(children ...LogicalPlan) {
	p.children = children
}

// SetChild implements LogicalPlan SetChild interface.
func (p *baseLogicalPlan) SetChild(i int, child LogicalPlan) {
	p.children[i] = child
}

// logicalSchemaProducer stores the schema for the logical plans who can
// produce schema directly for other plans.
type logicalSchemaProducer struct {
	baseLogicalPlan

	schema *expression.Schema
}

// Schema implements the Plan.Schema interface.
func (s *logicalSchemaProducer) Schema() *expression.Schema {
	return s.schema
}

// SetSchema sets the logical schema producer's schema.
func (s *logicalSchemaProducer) SetSchema(schema *expression.Schema) {
	s.schema = schema
}
