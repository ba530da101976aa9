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
package lex

import (
	"slices"
	"testing"
	"unicode"

	"github.com/consensys/go-blackbox/pkg/util/assert"
	"github.com/consensys/go-blackbox/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	var tokens = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "(", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{RBRACE, source.NewSpan(1, 2)},
		{END_OF, source.NewSpan(2, 2)},
	}

	checkLexer(t, "()", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens = []Token{}

	checkLexer(t, "x", 1, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{WSPACE, source.NewSpan(1, 3)},
		{RBRACE, source.NewSpan(3, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, "( \t)", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{NUMBER, source.NewSpan(1, 3)},
		{RBRACE, source.NewSpan(3, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, "(90)", 0, tokens...)
}

func TestLexer_06(t *testing.T) {
	// Lexing stops at the first unmatched character.
	var tokens = []Token{
		{NUMBER, source.NewSpan(0, 2)},
	}

	checkLexer(t, "12x3", 2, tokens...)
}

func TestLexer_Remove(t *testing.T) {
	var (
		lexer  = NewLexer([]rune("( 1 )"), rules...)
		tokens = Remove(lexer.Collect(), WSPACE)
	)
	//
	assert.Equal(t, []uint{LBRACE, NUMBER, RBRACE, END_OF}, kinds(tokens))
}

func TestScanner_Sequence(t *testing.T) {
	rule := Sequence(
		Unit('a'),
		Unit('b'),
		Unit('c'),
	)
	assert.Equal(t, uint(0), rule([]rune{'a', 'c', 'c'}))
	assert.Equal(t, uint(0), rule([]rune{'a', 'b'}))
	assert.Equal(t, uint(3), rule([]rune{'a', 'b', 'c', 'd'}))
}

func TestScanner_Then(t *testing.T) {
	rule := Then(Unit('a'), Unit('b'), Many(Unit('c')))
	//
	assert.Equal(t, uint(0), rule([]rune("bc")))
	assert.Equal(t, uint(1), rule([]rune("a")))
	assert.Equal(t, uint(2), rule([]rune("ac")))
	assert.Equal(t, uint(3), rule([]rune("acc")))
	assert.Equal(t, uint(4), rule([]rune("abcc")))
}

func TestScanner_Matches(t *testing.T) {
	assert.True(t, Matches(number, []rune("123")))
	assert.False(t, Matches(number, []rune("12a")))
	assert.False(t, Matches(number, []rune("")))
}

func TestScanner_Satisfies(t *testing.T) {
	rule := Many(Satisfies(unicode.IsLetter))
	//
	assert.Equal(t, uint(3), rule([]rune("abc1")))
	assert.Equal(t, uint(0), rule([]rune("1abc")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const NUMBER uint = 4

// Rule for describing whitespace
var whitespace Scanner[rune] = Many(Or(Unit(' '), Unit('\t')))

// Rule for describing numbers
var number Scanner[rune] = Many(Within('0', '9'))

// lexing rules
var rules []LexRule[rune] = []LexRule[rune]{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(whitespace, WSPACE),
	Rule(number, NUMBER),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer(items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	//
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}

func kinds(tokens []Token) []uint {
	var ks []uint
	//
	for _, t := range tokens {
		ks = append(ks, t.Kind)
	}
	//
	return ks
}
