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
	"github.com/daohuoskeru/flink/sessionctx"
	"github.com/daohuoskeru/flink/types"
)

// Constant stands for a literal value.
type Constant struct {
	Value   types.Datum
	RetType *types.FieldType
}

// NewZero stands for constant of 0.
func NewZero() *Constant {
	return &Constant{
		Value:   types.NewIntDatum(0),
		RetType: types.NewFieldType(types.TypeLong),
	}
}

// Eval implements Expression interface.
func (c *Constant) Eval(_ []types.Datum) (types.Datum, error) {
	return c.Value, nil
}

// GetType implements Expression interface.
func (c *Constant) GetType() *types.FieldType {
	return c.RetType
}

// Clone implements Expression interface.
func (c *Constant) Clone() Expression {
	con := *c
	return &con
}

// Equal implements Expression interface.
func (c *Constant) Equal(_ sessionctx.Context, expr Expression) bool {
	other, ok := expr.(*Constant)
	if !ok {
		return false
	}
	return c.Value.Equals(other.Value)
}

// String implements fmt.Stringer interface.
func (c *Constant) String() string {
	return c.Value.String()
}
