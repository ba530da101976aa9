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
package ast

import "fmt"

// Folder determines how a tree is interpreted when folded bottom-up.  Any
// external context (e.g. the arguments at which a function is evaluated) is
// held by the folder itself.
type Folder[R any] interface {
	// Number interprets a numeric literal.
	Number(value float64) R
	// Variable interprets a reference to the parameter at a given index.
	Variable(index uint) R
	// Negate transforms the interpretation of a negated subtree.
	Negate(R) R
	// Combine the running result of a chain with its next operand, as
	// connected by the given operator.  This can fail, for example, when
	// dividing by zero.
	Combine(acc R, op Operator, next R) (R, error)
}

// Fold interprets a tree using a given folder.  Children are always folded
// before their parent, and each chain is then folded from left to right,
// starting from the result of its first operand.  The first error encountered
// aborts the fold.
func Fold[R any](node Node, folder Folder[R]) (R, error) {
	var empty R
	//
	switch n := node.(type) {
	case *Number:
		return folder.Number(n.Value), nil
	case *Variable:
		return folder.Variable(n.Index), nil
	case *Negation:
		operand, err := Fold(n.Operand, folder)
		if err != nil {
			return empty, err
		}
		//
		return folder.Negate(operand), nil
	case *Chain:
		return foldChain(n, folder)
	default:
		panic(fmt.Sprintf("unknown node %T", node))
	}
}

func foldChain[R any](chain *Chain, folder Folder[R]) (R, error) {
	var (
		empty   R
		results = make([]R, len(chain.Operands))
		err     error
	)
	// Fold operands
	for i, operand := range chain.Operands {
		if results[i], err = Fold(operand, folder); err != nil {
			return empty, err
		}
	}
	// Combine left to right
	acc := results[0]
	//
	for i, op := range chain.Operators {
		if acc, err = folder.Combine(acc, op, results[i+1]); err != nil {
			return empty, err
		}
	}
	//
	return acc, nil
}
