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

	"github.com/consensys/go-blackbox/pkg/util/source"
)

// Token associates a kind with a given range of characters in the text being
// scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of characters with a given
// kind.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer provides a top-level construct for tokenising a given input.  Rules
// are tried in the order given, with the first matching rule determining the
// kind of token produced.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules}
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining determines how many items from the original sequence are left.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Next attempts to match the next token.  This fails when either the input is
// exhausted (including any end-of-file marker), or no rule matches.
func (p *Lexer[T]) Next() (Token, bool) {
	if p.index > len(p.items) {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			token := Token{r.kind, source.NewSpan(p.index, end)}
			// Advance past the token.  An empty token can only arise at the
			// end of the input, and moves us beyond it.
			if end == p.index {
				p.index++
			} else {
				p.index = end
			}
			//
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect is a convenience function which lexes all remaining tokens in one
// go, producing an array of tokens.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for {
		token, ok := p.Next()
		if !ok {
			return tokens
		}
		//
		tokens = append(tokens, token)
	}
}

// Remove drops all tokens of the given kinds (e.g. whitespace) from a token
// sequence, returning what remains.
func Remove(tokens []Token, kinds ...uint) []Token {
	return slices.DeleteFunc(tokens, func(t Token) bool {
		return slices.Contains(kinds, t.Kind)
	})
}
