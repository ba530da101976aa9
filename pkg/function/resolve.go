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
	"strconv"
	"strings"
	"unicode"

	"github.com/consensys/go-blackbox/pkg/expr/parser"
)

// ResolveError signals that a parameter or argument list is malformed.
type ResolveError struct {
	msg string
}

func (e *ResolveError) Error() string {
	return e.msg
}

func resolveErrorf(format string, args ...any) *ResolveError {
	return &ResolveError{fmt.Sprintf(format, args...)}
}

// Resolve a function given as text of the form "(x, y) <expression>".  The
// parameters are separated by commas and/or whitespace, and must be distinct
// alphabetical names.  When arity is non-negative, exactly that many
// parameters are required.  Malformed parameter lists give a *ResolveError,
// whilst malformed expressions give a *source.SyntaxError.
func Resolve(text string, arity int) (Function, error) {
	var fn Function
	//
	list, body, err := splitList(text, "parameter")
	if err != nil {
		return fn, err
	}
	//
	params := splitSeparated(list)
	//
	if arity >= 0 && len(params) != arity {
		return fn, countError("parameter", len(params), arity)
	}
	//
	indices := make(map[string]int)
	//
	for i, param := range params {
		switch {
		case param == "":
			return fn, resolveErrorf("Empty parameter identified at index `%d`.\nThe parameters must be "+
				"alphabetical only, and must be comma- and/or whitespace-separated.", i)
		case !parser.IsIdentifier(param):
			return fn, resolveErrorf("Invalid parameter `%s` identified at index `%d`.\nThe parameters must be "+
				"alphabetical only, and must be comma- and/or whitespace-separated.", param, i)
		}
		//
		if j, ok := indices[param]; ok {
			return fn, resolveErrorf("Duplicate parameter `%s` identified at indices `%d` and `%d`.\nThe "+
				"parameters must be unique, and must be comma- and/or whitespace-separated.", param, j, i)
		}
		//
		indices[param] = i
	}
	//
	tree, errs := parser.Parse(params, body)
	if len(errs) > 0 {
		return fn, &errs[0]
	}
	//
	return Function{params, body, tree}, nil
}

// ResolveCall resolves an argument list of the form "(1, -2.5) <rest>",
// returning the arguments along with whatever text follows the list.  The
// arguments are separated by commas and/or whitespace and there must be
// exactly arity of them, each being a decimal numeral.
func ResolveCall(text string, arity uint) ([]float64, string, error) {
	list, rest, err := splitList(text, "argument")
	if err != nil {
		return nil, "", err
	}
	//
	items := splitSeparated(list)
	//
	if len(items) != int(arity) {
		return nil, "", countError("argument", len(items), int(arity))
	}
	//
	args := make([]float64, len(items))
	//
	for i, item := range items {
		switch {
		case item == "":
			return nil, "", resolveErrorf("Empty argument identified at index `%d`.\nThe arguments must be "+
				"numeric only, and must be comma- and/or whitespace-separated.", i)
		case !parser.IsNumeral(item):
			return nil, "", resolveErrorf("Invalid argument `%s` identified at index `%d`.\nThe arguments must "+
				"be numeric only, and must be comma- and/or whitespace-separated.", item, i)
		}
		//
		if args[i], err = strconv.ParseFloat(item, 64); err != nil {
			return nil, "", resolveErrorf("Invalid argument `%s` identified at index `%d`.\nThe argument is "+
				"out of range.", item, i)
		}
	}
	//
	return args, rest, nil
}

// Split text of the form "(...) rest" into the contents of the parentheses and
// the (trimmed) remainder.  The list ends at the first close parenthesis.
func splitList(text string, kind string) (string, string, error) {
	text = strings.TrimSpace(text)
	brace := strings.IndexRune(text, ')')
	//
	if !strings.HasPrefix(text, "(") || brace < 0 {
		return "", "", resolveErrorf("The list of %ss must be wrapped in parentheses `()`.", kind)
	}
	//
	return text[1:brace], strings.TrimSpace(text[brace+1:]), nil
}

// Split a list into items separated either by a comma (with optional
// surrounding whitespace) or by whitespace alone.  Consecutive commas give
// rise to empty items, whilst an empty list has no items at all.
func splitSeparated(list string) []string {
	var (
		runes = []rune(strings.TrimSpace(list))
		items []string
		start = 0
	)
	//
	if len(runes) == 0 {
		return nil
	}
	//
	for i := 0; i < len(runes); {
		if n := separator(runes[i:]); n > 0 {
			items = append(items, string(runes[start:i]))
			i += n
			start = i
		} else {
			i++
		}
	}
	//
	return append(items, string(runes[start:]))
}

// Determine the length of the separator at the start of the given text (if
// any).  A separator consisting of a comma swallows whitespace on both sides.
func separator(text []rune) int {
	var i = 0
	//
	for i < len(text) && unicode.IsSpace(text[i]) {
		i++
	}
	//
	if i < len(text) && text[i] == ',' {
		i++
		//
		for i < len(text) && unicode.IsSpace(text[i]) {
			i++
		}
	}
	//
	return i
}

func countError(kind string, n int, arity int) *ResolveError {
	return resolveErrorf("`%d` %s(s) identified.\nThe number of %ss must be exactly `%d`, the same as the "+
		"game function.", n, kind, kind, arity)
}
