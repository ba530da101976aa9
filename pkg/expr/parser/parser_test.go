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
package parser

import (
	"testing"

	"github.com/consensys/go-blackbox/pkg/expr/ast"
	"github.com/consensys/go-blackbox/pkg/util/assert"
	"github.com/google/go-cmp/cmp"
)

var (
	x = ast.NewVariable(0)
	y = ast.NewVariable(1)
)

func num(v float64) ast.Node {
	return ast.NewNumber(v)
}

func chain(ops []ast.Operator, args ...ast.Node) ast.Node {
	return ast.NewChain(ops, args)
}

func Test_Parse_01(t *testing.T) {
	checkParse(t, []string{"x", "y"}, "x+y", chain([]ast.Operator{ast.ADD}, x, y))
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, []string{"x"}, "2*x+1",
		chain([]ast.Operator{ast.ADD}, chain([]ast.Operator{ast.MUL}, num(2), x), num(1)))
}

func Test_Parse_03(t *testing.T) {
	// Multiplicative chains accumulate left to right into a single chain.
	checkParse(t, []string{"x", "y"}, "x / y * 2 / x",
		chain([]ast.Operator{ast.DIV, ast.MUL, ast.DIV}, x, y, num(2), x))
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, []string{"x", "y"}, "x - y + 3 - x",
		chain([]ast.Operator{ast.SUB, ast.ADD, ast.SUB}, x, y, num(3), x))
}

func Test_Parse_05(t *testing.T) {
	// Even negations cancel, odd negations collapse to one
	checkParse(t, []string{"x"}, "--x", x)
	checkParse(t, []string{"x"}, "---x", ast.NewNegation(x))
	checkParse(t, []string{"x"}, "- - - - x", x)
	checkParse(t, []string{"x"}, "-(x)", ast.NewNegation(x))
}

func Test_Parse_06(t *testing.T) {
	checkParse(t, []string{"x"}, "(x+1)*(x-1)",
		chain([]ast.Operator{ast.MUL},
			chain([]ast.Operator{ast.ADD}, x, num(1)),
			chain([]ast.Operator{ast.SUB}, x, num(1))))
}

func Test_Parse_07(t *testing.T) {
	// Redundant brackets leave no trace
	checkParse(t, []string{"x"}, "((x))", x)
	checkParse(t, nil, "((1.5))", num(1.5))
	checkParse(t, nil, ".5", num(0.5))
}

func Test_Parse_08(t *testing.T) {
	// x - -1 is a binary minus followed by a negated numeral
	checkParse(t, []string{"x"}, "x--1", chain([]ast.Operator{ast.SUB}, x, ast.NewNegation(num(1))))
	checkParse(t, []string{"x"}, "x*-x", chain([]ast.Operator{ast.MUL}, x, ast.NewNegation(x)))
}

func Test_Parse_09(t *testing.T) {
	// Determinism
	params := []string{"a", "b"}
	t1, errs1 := Parse(params, "a*(b-1)/a + 2")
	t2, errs2 := Parse(params, "a*(b-1)/a + 2")
	//
	assert.Equal(t, 0, len(errs1))
	assert.Equal(t, 0, len(errs2))
	assert.Equal(t, "", cmp.Diff(t1, t2))
}

func Test_Parse_10(t *testing.T) {
	// Parameter index follows position in the list
	checkParse(t, []string{"a", "b", "c"}, "c", ast.NewVariable(2))
}

func Test_ParseInvalid_01(t *testing.T) {
	checkParseError(t, []string{"x"}, "(x+1", 0, "(",
		"the open parenthesis `(` at position `0` has no corresponding close parenthesis `)` at position `4`")
}

func Test_ParseInvalid_02(t *testing.T) {
	checkParseError(t, []string{"x"}, "x@1", 1, "@",
		"invalid token `@` identified at position `1`; the only allowed operations are "+
			"`+`, `-`, `*`, `/`, and parentheses `(`, `)`")
}

func Test_ParseInvalid_03(t *testing.T) {
	checkParseError(t, []string{"x"}, "x+y", 2, "y",
		"the variable `y` used at position `2` is not provided in the list of parameters")
}

func Test_ParseInvalid_04(t *testing.T) {
	checkParseError(t, []string{"x"}, "x*", 2, "", "missing token expected at position `2`")
	checkParseError(t, []string{"x"}, "", 0, "", "missing token expected at position `0`")
	checkParseError(t, []string{"x"}, "---", 3, "", "missing token expected at position `3`")
}

func Test_ParseInvalid_05(t *testing.T) {
	checkParseError(t, []string{"x"}, "x)", 1, ")",
		"extraneous token `)` identified at position `1`, after the end of the expression")
	checkParseError(t, []string{"x"}, "x x", 2, "x",
		"extraneous token `x` identified at position `2`, after the end of the expression")
	checkParseError(t, []string{"x"}, "0123", 1, "123",
		"extraneous token `123` identified at position `1`, after the end of the expression")
}

func Test_ParseInvalid_06(t *testing.T) {
	checkParseError(t, []string{"x"}, "x*/2", 2, "/",
		"invalid token `/` identified at position `2`; the only allowed operations are "+
			"`+`, `-`, `*`, `/`, and parentheses `(`, `)`")
	checkParseError(t, []string{"x"}, "()", 1, ")",
		"invalid token `)` identified at position `1`; the only allowed operations are "+
			"`+`, `-`, `*`, `/`, and parentheses `(`, `)`")
}

func Test_ParseInvalid_07(t *testing.T) {
	// First error wins, even with a later unbalanced bracket
	checkParseError(t, []string{"x"}, "(y+(x", 1, "y",
		"the variable `y` used at position `1` is not provided in the list of parameters")
}

func Test_ParseInvalid_08(t *testing.T) {
	// Unrecognised characters trailing a complete expression
	checkParseError(t, []string{"x"}, "x @", 2, "@",
		"invalid token `@` identified at position `2`; the only allowed operations are "+
			"`+`, `-`, `*`, `/`, and parentheses `(`, `)`")
	checkParseError(t, []string{"x"}, "(x)^2", 3, "^",
		"invalid token `^` identified at position `3`; the only allowed operations are "+
			"`+`, `-`, `*`, `/`, and parentheses `(`, `)`")
}

func checkParse(t *testing.T, params []string, input string, expected ast.Node) {
	t.Helper()
	//
	actual, errs := Parse(params, input)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error parsing %q: %s", input, errs[0].Message())
	} else if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("unexpected tree for %q (-expected +actual):\n%s", input, diff)
	}
}

func checkParseError(t *testing.T, params []string, input string, position int, token string, msg string) {
	t.Helper()
	//
	tree, errs := Parse(params, input)
	//
	if len(errs) != 1 {
		t.Fatalf("expected one error parsing %q, got %d (tree %v)", input, len(errs), tree)
	}
	//
	assert.Equal(t, position, errs[0].Position(), "position for %q", input)
	assert.Equal(t, token, errs[0].Text(), "token for %q", input)
	assert.Equal(t, msg, errs[0].Message(), "message for %q", input)
}
