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

package expression

// IsPythonCall returns whether the expression is a call to a Python UDF.
// Non-call expressions are neither Python nor general calls.
func IsPythonCall(expr Expression) bool {
	sf, ok := expr.(*ScalarFunction)
	return ok && sf.Runtime() == RuntimePython
}

// IsNonPythonCall returns whether the expression is a call evaluated by the
// general (native) runtime.
func IsNonPythonCall(expr Expression) bool {
	sf, ok := expr.(*ScalarFunction)
	return ok && sf.Runtime() == RuntimeGeneral
}

// ContainsPythonCall checks whether the expression subtree, the root node
// included, contains a Python call.
func ContainsPythonCall(expr Expression) bool {
	return containsCall(expr, RuntimePython)
}

// ContainsNonPythonCall checks whether the expression subtree, the root node
// included, contains a general call.
func ContainsNonPythonCall(expr Expression) bool {
	return containsCall(expr, RuntimeGeneral)
}

func containsCall(expr Expression, rt EvalRuntime) bool {
	sf, ok := expr.(*ScalarFunction)
	if !ok {
		return false
	}
	if sf.Runtime() == rt {
		return true
	}
	for _, arg := range sf.GetArgs() {
		if containsCall(arg, rt) {
			return true
		}
	}
	return false
}
