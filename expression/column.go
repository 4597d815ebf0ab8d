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
	"strconv"

	"github.com/pingcap/errors"

	"github.com/daohuoskeru/flink/parser/model"
	"github.com/daohuoskeru/flink/sessionctx"
	"github.com/daohuoskeru/flink/types"
)

// Column represents a column reference. Index is the zero-based offset into
// the row schema the column is evaluated against; it must be kept valid by
// every plan rewrite.
type Column struct {
	ColName model.CIStr
	RetType *types.FieldType

	// UniqueID is the unique id of this column, allocated by the session.
	// Columns synthesized by re-indexing rewrites always carry one.
	UniqueID int64

	// Index is used for execution, to tell the column's position in the
	// given row.
	Index int
}

// Eval implements Expression interface.
func (col *Column) Eval(row []types.Datum) (types.Datum, error) {
	if col.Index < 0 || col.Index >= len(row) {
		return types.Datum{}, errors.Errorf("column index %d out of range, row width %d", col.Index, len(row))
	}
	return row[col.Index], nil
}

// GetType implements Expression interface.
func (col *Column) GetType() *types.FieldType {
	return col.RetType
}

// Clone implements Expression interface.
func (col *Column) Clone() Expression {
	newCol := *col
	return &newCol
}

// Equal implements Expression interface.
func (col *Column) Equal(_ sessionctx.Context, expr Expression) bool {
	newCol, ok := expr.(*Column)
	if !ok {
		return false
	}
	return col.EqualColumn(newCol)
}

// EqualColumn checks whether two column references are the same. Columns with
// allocated unique ids compare by id, others compare by row offset.
func (col *Column) EqualColumn(other *Column) bool {
	if col.UniqueID != 0 && other.UniqueID != 0 {
		return col.UniqueID == other.UniqueID
	}
	return col.Index == other.Index
}

// String implements fmt.Stringer interface.
func (col *Column) String() string {
	if col.ColName.O != "" {
		return col.ColName.O
	}
	return "$" + strconv.Itoa(col.Index)
}

// CorrelatedColumn stands for a column produced by the outer side of a
// correlated apply. Data is bound to the current outer row during execution.
type CorrelatedColumn struct {
	Column

	Data *types.Datum
}

// Eval implements Expression interface.
func (col *CorrelatedColumn) Eval(_ []types.Datum) (types.Datum, error) {
	if col.Data == nil {
		return types.Datum{}, nil
	}
	return *col.Data, nil
}

// Clone implements Expression interface.
func (col *CorrelatedColumn) Clone() Expression {
	// The Data pointer is deliberately shared, it is the binding slot
	// filled by the apply executor.
	newCol := *col
	return &newCol
}

// Equal implements Expression interface.
func (col *CorrelatedColumn) Equal(_ sessionctx.Context, expr Expression) bool {
	other, ok := expr.(*CorrelatedColumn)
	if !ok {
		return false
	}
	return col.EqualColumn(&other.Column)
}

// String implements fmt.Stringer interface.
func (col *CorrelatedColumn) String() string {
	return "cor." + col.Column.String()
}
