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
package eval

import (
	"fmt"

	"github.com/consensys/go-blackbox/pkg/expr/ast"
)

// DomainError signals that an expression is not defined at the point being
// evaluated.
type DomainError struct {
	// Operation identifies what went wrong (e.g. "Division by zero").
	Operation string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: The arguments provided are outside the domain, the function value is not "+
		"well-defined.", e.Operation)
}

// Evaluate a given tree at a given point, where the tree was parsed over a
// given number of parameters.  Exactly one argument must be supplied per
// parameter.  Evaluation fails only when dividing by exactly zero; infinities
// and NaNs are never produced by division.
func Evaluate(tree ast.Node, args []float64, arity uint) (float64, error) {
	if uint(len(args)) != arity {
		panic(fmt.Sprintf("expected %d arguments, got %d", arity, len(args)))
	}
	//
	return ast.Fold[float64](tree, evaluator{args})
}

// Evaluator interprets trees as real numbers, given values for each variable.
type evaluator struct {
	args []float64
}

func (p evaluator) Number(value float64) float64 {
	return value
}

func (p evaluator) Variable(index uint) float64 {
	return p.args[index]
}

func (p evaluator) Negate(value float64) float64 {
	return -value
}

func (p evaluator) Combine(acc float64, op ast.Operator, next float64) (float64, error) {
	switch op {
	case ast.ADD:
		return acc + next, nil
	case ast.SUB:
		return acc - next, nil
	case ast.MUL:
		return acc * next, nil
	case ast.DIV:
		if next == 0 {
			return 0, &DomainError{"Division by zero"}
		}
		//
		return acc / next, nil
	default:
		panic(fmt.Sprintf("unknown operator %s", op))
	}
}
