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

// Package mock provides a sessionctx.Context for testing and embedded use.
package mock

import (
	"github.com/daohuoskeru/flink/sessionctx"
	"github.com/daohuoskeru/flink/sessionctx/variable"
)

var _ sessionctx.Context = (*Context)(nil)

// Context represents a mocked sessionctx.Context.
type Context struct {
	sessionVars *variable.SessionVars
}

// GetSessionVars implements the sessionctx.Context interface.
func (c *Context) GetSessionVars() *variable.SessionVars {
	return c.sessionVars
}

// NewContext creates a new mocked sessionctx.Context.
func NewContext() *Context {
	return &Context{
		sessionVars: variable.NewSessionVars(),
	}
}
