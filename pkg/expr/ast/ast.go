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

import (
	"fmt"
	"slices"
)

// Node represents a node in the abstract syntax tree of an arithmetic
// expression.  This is a closed set of variants: Number, Variable, Negation and
// Chain.  Nodes are immutable once constructed, and are interpreted by folding
// over them (see Fold).
type Node interface {
	// Marks the closed set of node types.
	node()
}

// Operator identifies one of the four binary arithmetic operators.
type Operator uint8

const (
	// ADD signals "+"
	ADD Operator = iota
	// SUB signals "-"
	SUB
	// MUL signals "*"
	MUL
	// DIV signals "/"
	DIV
)

// IsAdditive determines whether this operator belongs to the additive class
// (i.e. "+" or "-").
func (op Operator) IsAdditive() bool {
	return op == ADD || op == SUB
}

func (op Operator) String() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	default:
		return fmt.Sprintf("Operator(%d)", uint8(op))
	}
}

// Number represents a numeric literal.
type Number struct {
	Value float64
}

// NewNumber constructs a numeric literal.
func NewNumber(value float64) *Number {
	return &Number{value}
}

// Variable refers to a parameter of the enclosing function by its (0-based)
// position in the parameter list.  The index is valid for the arity under
// which the tree was parsed, but the arity itself is not held by the tree.
type Variable struct {
	Index uint
}

// NewVariable constructs a reference to the parameter at a given index.
func NewVariable(index uint) *Variable {
	return &Variable{index}
}

// Negation represents unary minus applied once to its operand.
type Negation struct {
	Operand Node
}

// NewNegation constructs a negation of a given operand.
func NewNegation(operand Node) *Negation {
	return &Negation{operand}
}

// Chain represents a flattened sequence of operands of the same precedence
// class, joined by one fewer operators than operands and evaluated left to
// right.  For example, "a - b + c" is a chain of three operands with the
// operators "-" and "+".  A chain always has at least one operator, and its
// operators are either all additive or all multiplicative.
type Chain struct {
	Operators []Operator
	Operands  []Node
}

// NewChain constructs a chain from its operators and operands, whilst checking
// the invariants of chains are maintained.
func NewChain(operators []Operator, operands []Node) *Chain {
	if len(operators) == 0 {
		panic("chain requires at least one operator")
	} else if len(operands) != len(operators)+1 {
		panic(fmt.Sprintf("chain of %d operators requires %d operands (was %d)", len(operators),
			len(operators)+1, len(operands)))
	}
	//
	additive := operators[0].IsAdditive()
	//
	for _, op := range operators[1:] {
		if op.IsAdditive() != additive {
			panic("chain mixes additive and multiplicative operators")
		}
	}
	//
	return &Chain{slices.Clone(operators), slices.Clone(operands)}
}

func (*Number) node()   {}
func (*Variable) node() {}
func (*Negation) node() {}
func (*Chain) node()    {}
