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
	"unicode"

	"github.com/consensys/go-blackbox/pkg/util/source"
	"github.com/consensys/go-blackbox/pkg/util/source/lex"
)

// END_OF signals "end of input"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// ADD signals "+"
const ADD uint = 2

// SUB signals "-"
const SUB uint = 3

// MUL signals "*"
const MUL uint = 4

// DIV signals "/"
const DIV uint = 5

// LBRACE signals "("
const LBRACE uint = 6

// RBRACE signals ")"
const RBRACE uint = 7

// NUMBER signals a decimal numeral
const NUMBER uint = 8

// IDENTIFIER signals a variable name
const IDENTIFIER uint = 9

// UNKNOWN signals a single character which is not part of the language.  These
// are rejected by the parser, not the lexer.
const UNKNOWN uint = 10

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Satisfies(unicode.IsSpace))

// Rule for describing numbers, which are either "0" or have no leading zeros,
// with an optional fractional part.  A fractional part on its own (e.g. ".5")
// is also permitted.
var (
	digit    = lex.Within('0', '9')
	integer  = lex.Or(lex.Unit('0'), lex.Then(lex.Within('1', '9'), lex.Many(digit)))
	fraction = lex.Sequence(lex.Unit('.'), lex.Many(digit))
	unsigned = lex.Or(
		lex.Then(integer, lex.Then(lex.Unit('.'), lex.Many(digit))),
		fraction,
	)
	// Numeral accepts an optionally signed decimal numeral.  Observe that, when
	// lexing expressions, a leading "-" is always taken as an operator since
	// that rule comes first.
	Numeral = lex.Or(lex.Sequence(lex.Unit('-'), unsigned), unsigned)
)

// Rule for describing identifiers, which are runs of ASCII letters only.
var identifier lex.Scanner[rune] = lex.Many(lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z')))

// Rule for any other (non-whitespace) character
var unknown lex.Scanner[rune] = lex.Satisfies(func(r rune) bool { return !unicode.IsSpace(r) })

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(Numeral, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(unknown, UNKNOWN),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of tokens, with whitespace removed.
// This cannot fail, since every character is matched by some rule (possibly
// UNKNOWN), and the sequence always finishes with an END_OF token.
func Lex(srcfile source.File) []lex.Token {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Sanity check
	if lexer.Remaining() != 0 {
		panic("unmatched input")
	}
	// Remove any whitespace
	return lex.Remove(tokens, WHITESPACE)
}

// IsNumeral checks whether a given string is an optionally signed decimal
// numeral in its entirety.
func IsNumeral(text string) bool {
	return lex.Matches(Numeral, []rune(text))
}

// IsIdentifier checks whether a given string is a valid identifier in its
// entirety.
func IsIdentifier(text string) bool {
	return lex.Matches(identifier, []rune(text))
}
