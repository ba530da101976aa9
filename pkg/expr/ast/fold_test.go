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
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/consensys/go-blackbox/pkg/util/assert"
)

// Renders trees as fully parenthesised strings, which exposes the order in
// which the fold visits nodes.
type printer struct {
	names []string
}

func (p printer) Number(value float64) string { return fmt.Sprint(value) }
func (p printer) Variable(index uint) string  { return p.names[index] }
func (p printer) Negate(s string) string      { return "-" + s }

func (p printer) Combine(acc string, op Operator, next string) (string, error) {
	return fmt.Sprintf("(%s%s%s)", acc, op, next), nil
}

// Counts combinations, failing once a limit is reached.
type counter struct {
	limit uint
	count *uint
}

func (p counter) Number(float64) uint { return 1 }
func (p counter) Variable(uint) uint  { return 1 }
func (p counter) Negate(n uint) uint  { return n }

func (p counter) Combine(acc uint, _ Operator, next uint) (uint, error) {
	*p.count++
	//
	if *p.count > p.limit {
		return 0, errors.New("limit reached")
	}
	//
	return acc + next, nil
}

func Test_Fold_01(t *testing.T) {
	// x - y + 2
	tree := NewChain([]Operator{SUB, ADD}, []Node{NewVariable(0), NewVariable(1), NewNumber(2)})
	//
	checkPrint(t, tree, "((x-y)+2)")
}

func Test_Fold_02(t *testing.T) {
	// -(x * y / 3)
	tree := NewNegation(NewChain([]Operator{MUL, DIV}, []Node{NewVariable(0), NewVariable(1), NewNumber(3)}))
	//
	checkPrint(t, tree, "-((x*y)/3)")
}

func Test_Fold_03(t *testing.T) {
	// x * (y + 1)
	inner := NewChain([]Operator{ADD}, []Node{NewVariable(1), NewNumber(1)})
	tree := NewChain([]Operator{MUL}, []Node{NewVariable(0), inner})
	//
	checkPrint(t, tree, "(x*(y+1))")
}

func Test_Fold_04(t *testing.T) {
	var (
		count uint
		inner = NewChain([]Operator{ADD, ADD}, []Node{NewNumber(1), NewNumber(2), NewNumber(3)})
		tree  = NewChain([]Operator{MUL}, []Node{inner, NewVariable(0)})
	)
	// Three combinations succeed
	n, err := Fold[uint](tree, counter{3, &count})
	assert.NoError(t, err)
	assert.Equal(t, uint(4), n)
	// Limit hit on the final (outer) combination
	count = 0
	_, err = Fold[uint](tree, counter{2, &count})
	assert.Error(t, err)
	assert.Equal(t, uint(3), count)
}

func Test_Chain_01(t *testing.T) {
	checkPanics(t, func() { NewChain(nil, []Node{NewNumber(1)}) })
	checkPanics(t, func() { NewChain([]Operator{ADD}, []Node{NewNumber(1)}) })
	checkPanics(t, func() {
		NewChain([]Operator{ADD, MUL}, []Node{NewNumber(1), NewNumber(2), NewNumber(3)})
	})
}

func Test_Operator_01(t *testing.T) {
	var ops []string
	//
	for _, op := range []Operator{ADD, SUB, MUL, DIV} {
		ops = append(ops, op.String())
	}
	//
	assert.Equal(t, "+-*/", strings.Join(ops, ""))
	assert.True(t, SUB.IsAdditive())
	assert.False(t, DIV.IsAdditive())
}

func checkPrint(t *testing.T, tree Node, expected string) {
	t.Helper()
	//
	actual, err := Fold[string](tree, printer{[]string{"x", "y"}})
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func checkPanics(t *testing.T, fn func()) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	//
	fn()
}
