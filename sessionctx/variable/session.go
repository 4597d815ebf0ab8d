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

package variable

import "go.uber.org/atomic"

// SessionVars carries the session scoped state the plan layer depends on.
type SessionVars struct {
	// PlanID is the unique id of logical and physical plan.
	PlanID int

	// SchemaCaseSensitive reports whether output schema names are compared
	// case sensitively when uniquifying projection field names.
	SchemaCaseSensitive bool

	planColumnID atomic.Int64
}

// NewSessionVars creates a SessionVars with default values.
func NewSessionVars() *SessionVars {
	return &SessionVars{}
}

// AllocPlanColumnID allocates a column id for the plan builder.
func (s *SessionVars) AllocPlanColumnID() int64 {
	return s.planColumnID.Add(1)
}
