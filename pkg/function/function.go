// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package function

import (
	"fmt"
	"strings"

	"github.com/consensys/go-blackbox/pkg/expr/ast"
	"github.com/consensys/go-blackbox/pkg/expr/eval"
	"github.com/consensys/go-blackbox/pkg/ratfn"
	"github.com/consensys/go-blackbox/pkg/util/poly"
)

// Function is a named-parameter arithmetic expression, such as "(x, y) x*y+1".
type Function struct {
	// Params holds the declared parameter names, in order.
	Params []string
	// Body holds the expression text following the parameter list.
	Body string
	// Tree is the parsed body, whose variables index into Params.
	Tree ast.Node
}

// Arity returns the number of parameters of this function.
func (p Function) Arity() uint {
	return uint(len(p.Params))
}

// Eval evaluates this function at a given point.  The number of arguments
// must match the arity.
func (p Function) Eval(args []float64) (float64, error) {
	return eval.Evaluate(p.Tree, args, p.Arity())
}

// Identical determines whether this function and another denote the same
// rational function, using a given oracle.  Parameters are matched by
// position, not by name.
func (p Function) Identical(other Function, oracle ratfn.Oracle) (bool, error) {
	if p.Arity() != other.Arity() || oracle.Arity != p.Arity() {
		return false, fmt.Errorf("arity mismatch (%d vs %d, oracle %d)", p.Arity(), other.Arity(), oracle.Arity)
	}
	//
	return oracle.Equivalent(p.Tree, other.Tree)
}

// Variable returns the name of the ith parameter.
func (p Function) Variable(index uint) string {
	return p.Params[index]
}

func (p Function) String() string {
	return fmt.Sprintf("(%s) %s", strings.Join(p.Params, ", "), p.Body)
}

// IsApprox checks whether a guessed value is close enough to an actual value.
func IsApprox(guess, actual float64) bool {
	return poly.DefaultTolerance.Equal(guess, actual)
}
