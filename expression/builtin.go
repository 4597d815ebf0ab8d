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
	"strings"
	"sync"

	"github.com/pingcap/errors"

	"github.com/daohuoskeru/flink/types"
)

// EvalRuntime tells which runtime a function body executes in. General
// functions run natively inside the engine, Python functions are dispatched
// to the Python worker. The two runtimes cannot co-execute within a single
// table function scan, which is what the correlate split rule untangles.
type EvalRuntime int

// Runtimes a function can belong to.
const (
	RuntimeGeneral EvalRuntime = iota
	RuntimePython
)

// String implements fmt.Stringer interface.
func (r EvalRuntime) String() string {
	if r == RuntimePython {
		return "python"
	}
	return "general"
}

type evalFn func(args []types.Datum) (types.Datum, error)

type tableEvalFn func(args []types.Datum) ([][]types.Datum, error)

// functionClass describes one registered function: its arity contract, the
// runtime it runs in, and exactly one of the scalar or table bodies.
type functionClass struct {
	name    string
	minArgs int
	maxArgs int // -1 means unlimited.
	rt      EvalRuntime

	eval      evalFn
	evalTable tableEvalFn
}

func (fc *functionClass) verifyArgs(args []Expression) error {
	l := len(args)
	if l < fc.minArgs || (fc.maxArgs != -1 && l > fc.maxArgs) {
		return errors.Errorf("number of arguments of %s must be in [%d, %d], got %d", fc.name, fc.minArgs, fc.maxArgs, l)
	}
	return nil
}

var (
	funcMu sync.RWMutex
	funcs  = map[string]*functionClass{}
)

func registerFunctionClass(fc *functionClass) {
	funcMu.Lock()
	defer funcMu.Unlock()
	funcs[strings.ToLower(fc.name)] = fc
}

func getFunctionClass(name string) (*functionClass, bool) {
	funcMu.RLock()
	defer funcMu.RUnlock()
	fc, ok := funcs[strings.ToLower(name)]
	return fc, ok
}

// RegisterPythonScalarFunc registers a Python scalar UDF. The body is the
// engine-side stub that forwards the call to the Python worker; tests
// register plain Go closures.
func RegisterPythonScalarFunc(name string, minArgs, maxArgs int, body func(args []types.Datum) (types.Datum, error)) {
	registerFunctionClass(&functionClass{
		name:    name,
		minArgs: minArgs,
		maxArgs: maxArgs,
		rt:      RuntimePython,
		eval:    body,
	})
}

// RegisterPythonTableFunc registers a Python table UDF producing zero or
// more rows per invocation.
func RegisterPythonTableFunc(name string, minArgs, maxArgs int, body func(args []types.Datum) ([][]types.Datum, error)) {
	registerFunctionClass(&functionClass{
		name:      name,
		minArgs:   minArgs,
		maxArgs:   maxArgs,
		rt:        RuntimePython,
		evalTable: body,
	})
}

// RegisterTableFunc registers a general (native) table function.
func RegisterTableFunc(name string, minArgs, maxArgs int, body func(args []types.Datum) ([][]types.Datum, error)) {
	registerFunctionClass(&functionClass{
		name:      name,
		minArgs:   minArgs,
		maxArgs:   maxArgs,
		rt:        RuntimeGeneral,
		evalTable: body,
	})
}

// baseBuiltinFunc binds the argument expressions to a function class.
type baseBuiltinFunc struct {
	args []Expression
	fc   *functionClass
}

func (b *baseBuiltinFunc) getArgs() []Expression {
	return b.args
}

func (b *baseBuiltinFunc) runtime() EvalRuntime {
	return b.fc.rt
}

func (b *baseBuiltinFunc) isTableFunc() bool {
	return b.fc.evalTable != nil
}

func (b *baseBuiltinFunc) clone() *baseBuiltinFunc {
	return &baseBuiltinFunc{
		args: CloneExprs(b.args),
		fc:   b.fc,
	}
}

func (b *baseBuiltinFunc) evalArgs(row []types.Datum) ([]types.Datum, error) {
	datums := make([]types.Datum, 0, len(b.args))
	for _, arg := range b.args {
		d, err := arg.Eval(row)
		if err != nil {
			return nil, errors.Trace(err)
		}
		datums = append(datums, d)
	}
	return datums, nil
}

func evalNumericPair(name string, args []types.Datum, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (d types.Datum, err error) {
	for _, a := range args {
		if a.IsNull() {
			return d, nil
		}
	}
	if args[0].Kind() == types.KindInt64 && args[1].Kind() == types.KindInt64 {
		d.SetInt64(intOp(args[0].GetInt64(), args[1].GetInt64()))
		return d, nil
	}
	a, err := toFloat(args[0])
	if err != nil {
		return d, errors.Annotatef(err, "%s left operand", name)
	}
	b, err := toFloat(args[1])
	if err != nil {
		return d, errors.Annotatef(err, "%s right operand", name)
	}
	d.SetFloat64(floatOp(a, b))
	return d, nil
}

func toFloat(d types.Datum) (float64, error) {
	switch d.Kind() {
	case types.KindInt64:
		return float64(d.GetInt64()), nil
	case types.KindFloat64:
		return d.GetFloat64(), nil
	}
	return 0, errors.Errorf("cannot convert %s to numeric", d)
}

func init() {
	registerFunctionClass(&functionClass{
		name: "plus", minArgs: 2, maxArgs: 2, rt: RuntimeGeneral,
		eval: func(args []types.Datum) (types.Datum, error) {
			return evalNumericPair("plus", args,
				func(a, b int64) int64 { return a + b },
				func(a, b float64) float64 { return a + b })
		},
	})
	registerFunctionClass(&functionClass{
		name: "minus", minArgs: 2, maxArgs: 2, rt: RuntimeGeneral,
		eval: func(args []types.Datum) (types.Datum, error) {
			return evalNumericPair("minus", args,
				func(a, b int64) int64 { return a - b },
				func(a, b float64) float64 { return a - b })
		},
	})
	registerFunctionClass(&functionClass{
		name: "mul", minArgs: 2, maxArgs: 2, rt: RuntimeGeneral,
		eval: func(args []types.Datum) (types.Datum, error) {
			return evalNumericPair("mul", args,
				func(a, b int64) int64 { return a * b },
				func(a, b float64) float64 { return a * b })
		},
	})
	registerFunctionClass(&functionClass{
		name: "abs", minArgs: 1, maxArgs: 1, rt: RuntimeGeneral,
		eval: func(args []types.Datum) (d types.Datum, err error) {
			if args[0].IsNull() {
				return d, nil
			}
			if args[0].Kind() == types.KindInt64 {
				v := args[0].GetInt64()
				if v < 0 {
					v = -v
				}
				d.SetInt64(v)
				return d, nil
			}
			f, err := toFloat(args[0])
			if err != nil {
				return d, err
			}
			if f < 0 {
				f = -f
			}
			d.SetFloat64(f)
			return d, nil
		},
	})
	registerFunctionClass(&functionClass{
		name: "concat", minArgs: 1, maxArgs: -1, rt: RuntimeGeneral,
		eval: func(args []types.Datum) (d types.Datum, err error) {
			var sb strings.Builder
			for _, a := range args {
				if a.IsNull() {
					return d, nil
				}
				sb.WriteString(a.String())
			}
			d.SetString(sb.String())
			return d, nil
		},
	})
	registerFunctionClass(&functionClass{
		name: "upper", minArgs: 1, maxArgs: 1, rt: RuntimeGeneral,
		eval: func(args []types.Datum) (d types.Datum, err error) {
			if args[0].IsNull() {
				return d, nil
			}
			d.SetString(strings.ToUpper(args[0].GetString()))
			return d, nil
		},
	})
	registerFunctionClass(&functionClass{
		name: "lower", minArgs: 1, maxArgs: 1, rt: RuntimeGeneral,
		eval: func(args []types.Datum) (d types.Datum, err error) {
			if args[0].IsNull() {
				return d, nil
			}
			d.SetString(strings.ToLower(args[0].GetString()))
			return d, nil
		},
	})
	registerFunctionClass(&functionClass{
		name: "length", minArgs: 1, maxArgs: 1, rt: RuntimeGeneral,
		eval: func(args []types.Datum) (d types.Datum, err error) {
			if args[0].IsNull() {
				return d, nil
			}
			d.SetInt64(int64(len(args[0].GetString())))
			return d, nil
		},
	})

	// Native table functions.
	registerFunctionClass(&functionClass{
		name: "split", minArgs: 2, maxArgs: 2, rt: RuntimeGeneral,
		evalTable: func(args []types.Datum) ([][]types.Datum, error) {
			if args[0].IsNull() || args[1].IsNull() {
				return nil, nil
			}
			parts := strings.Split(args[0].GetString(), args[1].GetString())
			rows := make([][]types.Datum, 0, len(parts))
			for _, p := range parts {
				rows = append(rows, []types.Datum{types.NewStringDatum(p)})
			}
			return rows, nil
		},
	})
	registerFunctionClass(&functionClass{
		name: "generate_series", minArgs: 1, maxArgs: 1, rt: RuntimeGeneral,
		evalTable: func(args []types.Datum) ([][]types.Datum, error) {
			if args[0].IsNull() {
				return nil, nil
			}
			n := args[0].GetInt64()
			rows := make([][]types.Datum, 0, n)
			for i := int64(0); i < n; i++ {
				rows = append(rows, []types.Datum{types.NewIntDatum(i)})
			}
			return rows, nil
		},
	})
}
