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
	"fmt"
	"slices"
	"strconv"

	"github.com/consensys/go-blackbox/pkg/expr/ast"
	"github.com/consensys/go-blackbox/pkg/util/source"
	"github.com/consensys/go-blackbox/pkg/util/source/lex"
)

// Parse a given expression over a given list of parameter names, producing an
// abstract syntax tree or a syntax error.  The parameter names determine the
// arity of the expression, and each identifier in the expression must match
// one of them.  Parameter names are assumed to be unique.
func Parse(params []string, text string) (ast.Node, []source.SyntaxError) {
	srcfile := source.NewSourceFile("expression", text)
	//
	return NewParser(srcfile, params).Parse()
}

// ADDITIVE captures the operators of the lowest precedence class.
var ADDITIVE = []uint{ADD, SUB}

// MULTIPLICATIVE captures the operators of the highest precedence class.
var MULTIPLICATIVE = []uint{MUL, DIV}

// Maps operator tokens to their operators.
var operators = map[uint]ast.Operator{
	ADD: ast.ADD,
	SUB: ast.SUB,
	MUL: ast.MUL,
	DIV: ast.DIV,
}

// ============================================================================
// Parser
// ============================================================================

// Parser is a recursive-descent parser for arithmetic expressions, implementing
// the following grammar:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := ('-')* primary
//	primary    := number | identifier | '(' expression ')'
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Names of the declared parameters, in order.
	params []string
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file and parameter
// list.
func NewParser(srcfile *source.File, params []string) *Parser {
	return &Parser{srcfile, nil, params, 0}
}

// Parse the source file as a single expression.  Parsing stops at the first
// error encountered.
func (p *Parser) Parse() (ast.Node, []source.SyntaxError) {
	// Convert source file into tokens
	p.tokens = Lex(*p.srcfile)
	p.index = 0
	//
	expr, errs := p.parseExpr()
	//
	if len(errs) > 0 {
		return nil, errs
	} else if lookahead := p.lookahead(); lookahead.Kind == UNKNOWN {
		return nil, p.invalidToken(lookahead)
	} else if lookahead.Kind != END_OF {
		msg := fmt.Sprintf("extraneous token `%s` identified at position `%d`, after the end of the expression",
			p.string(lookahead), lookahead.Span.Start())
		//
		return nil, p.syntaxErrors(lookahead, msg)
	}
	//
	return expr, nil
}

func (p *Parser) parseExpr() (ast.Node, []source.SyntaxError) {
	return p.parseChain(p.parseTerm, ADDITIVE...)
}

func (p *Parser) parseTerm() (ast.Node, []source.SyntaxError) {
	return p.parseChain(p.parseFactor, MULTIPLICATIVE...)
}

// Parse a sequence of one or more operands separated by operators from a given
// precedence class.  Operands are accumulated strictly left to right, such
// that "a / b * c" gives a single chain of three operands.  When no operator
// is present, the sole operand is returned as is.
func (p *Parser) parseChain(operand func() (ast.Node, []source.SyntaxError), kinds ...uint) (ast.Node,
	[]source.SyntaxError) {
	var (
		ops  []ast.Operator
		arg  ast.Node
		errs []source.SyntaxError
	)
	//
	if arg, errs = operand(); len(errs) > 0 {
		return nil, errs
	}
	//
	args := []ast.Node{arg}
	//
	for p.follows(kinds...) {
		// Consume connective
		ops = append(ops, operators[p.lookahead().Kind])
		p.index++
		//
		if arg, errs = operand(); len(errs) > 0 {
			return nil, errs
		}
		// Accumulate arguments
		args = append(args, arg)
	}
	//
	if len(ops) == 0 {
		return args[0], nil
	}
	//
	return ast.NewChain(ops, args), nil
}

// Parse a primary expression preceded by zero or more negations.  Only an odd
// number of negations gives rise to a negation node.
func (p *Parser) parseFactor() (ast.Node, []source.SyntaxError) {
	var negated bool
	//
	for p.match(SUB) {
		negated = !negated
	}
	//
	primary, errs := p.parsePrimary()
	//
	if len(errs) > 0 {
		return nil, errs
	} else if negated {
		return ast.NewNegation(primary), nil
	}
	//
	return primary, nil
}

func (p *Parser) parsePrimary() (ast.Node, []source.SyntaxError) {
	var lookahead = p.lookahead()
	//
	switch lookahead.Kind {
	case END_OF:
		msg := fmt.Sprintf("missing token expected at position `%d`", lookahead.Span.Start())
		return nil, p.syntaxErrors(lookahead, msg)
	case NUMBER:
		return p.parseNumber()
	case IDENTIFIER:
		return p.parseVariable()
	case LBRACE:
		return p.parseBracketed()
	default:
		return nil, p.invalidToken(lookahead)
	}
}

// Report a token which cannot appear at this point, or at all.
func (p *Parser) invalidToken(token lex.Token) []source.SyntaxError {
	msg := fmt.Sprintf("invalid token `%s` identified at position `%d`; the only allowed operations are "+
		"`+`, `-`, `*`, `/`, and parentheses `(`, `)`", p.string(token), token.Span.Start())
	//
	return p.syntaxErrors(token, msg)
}

func (p *Parser) parseNumber() (ast.Node, []source.SyntaxError) {
	token := p.next()
	//
	value, err := strconv.ParseFloat(p.string(token), 64)
	if err != nil {
		msg := fmt.Sprintf("numeric literal `%s` at position `%d` is out of range", p.string(token),
			token.Span.Start())
		//
		return nil, p.syntaxErrors(token, msg)
	}
	//
	return ast.NewNumber(value), nil
}

func (p *Parser) parseVariable() (ast.Node, []source.SyntaxError) {
	var (
		token = p.next()
		name  = p.string(token)
		index = slices.Index(p.params, name)
	)
	//
	if index < 0 {
		msg := fmt.Sprintf("the variable `%s` used at position `%d` is not provided in the list of parameters",
			name, token.Span.Start())
		//
		return nil, p.syntaxErrors(token, msg)
	}
	//
	return ast.NewVariable(uint(index)), nil
}

func (p *Parser) parseBracketed() (ast.Node, []source.SyntaxError) {
	var open = p.next()
	//
	expr, errs := p.parseExpr()
	//
	if len(errs) > 0 {
		return nil, errs
	} else if lookahead := p.lookahead(); !p.match(RBRACE) {
		msg := fmt.Sprintf("the open parenthesis `(` at position `%d` has no corresponding close parenthesis `)` "+
			"at position `%d`", open.Span.Start(), lookahead.Span.Start())
		//
		return nil, p.syntaxErrors(open, msg)
	}
	// Brackets are not retained in the tree
	return expr, nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Lookahead returns the next token.  This must exist because END_OF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Next returns the next token and advances past it.
func (p *Parser) next() lex.Token {
	token := p.lookahead()
	p.index++
	//
	return token
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
