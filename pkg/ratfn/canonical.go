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
package ratfn

import (
	"fmt"

	"github.com/consensys/go-blackbox/pkg/expr/ast"
	"github.com/consensys/go-blackbox/pkg/util/poly"
)

// LimitError signals that canonicalisation was abandoned because some
// intermediate polynomial grew beyond the permitted number of terms.
type LimitError struct {
	// Limit which was exceeded
	Limit uint
	// Number of terms reached
	Terms uint
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("expression too complex: canonical form reached %d terms (limit is %d)", e.Terms, e.Limit)
}

// Canonicalize converts a tree into a ratio of polynomials over a given number
// of variables.  This never fails: a division by an expression which is
// identically zero silently yields a zero denominator.  Note that the number
// of terms can grow multiplicatively with the depth of nested sums and
// quotients; see Canonicalizer for a bounded alternative.
func Canonicalize(tree ast.Node, arity uint) Rational {
	r, err := Canonicalizer{Arity: arity}.Canonicalize(tree)
	// Sanity check
	if err != nil {
		panic(err)
	}
	//
	return r
}

// Canonicalizer converts trees into ratios of polynomials, optionally bounding
// the size of the polynomials produced along the way.
type Canonicalizer struct {
	// Arity determines the number of variables
	Arity uint
	// MaxTerms bounds the number of terms in any numerator or denominator
	// produced whilst canonicalising (where 0 means unbounded).
	MaxTerms uint
}

// Canonicalize a given tree, or fail because it is too large.
func (p Canonicalizer) Canonicalize(tree ast.Node) (Rational, error) {
	return ast.Fold[Rational](tree, p)
}

// Number implementation for the ast.Folder interface.
func (p Canonicalizer) Number(value float64) Rational {
	return Rational{poly.NewConstant(p.Arity, value), poly.NewConstant(p.Arity, 1)}
}

// Variable implementation for the ast.Folder interface.
func (p Canonicalizer) Variable(index uint) Rational {
	return Rational{poly.NewVariable(p.Arity, index), poly.NewConstant(p.Arity, 1)}
}

// Negate implementation for the ast.Folder interface.
func (p Canonicalizer) Negate(r Rational) Rational {
	return r.Neg()
}

// Combine implementation for the ast.Folder interface.
func (p Canonicalizer) Combine(acc Rational, op ast.Operator, next Rational) (Rational, error) {
	var res Rational
	//
	switch op {
	case ast.ADD:
		res = acc.Add(next)
	case ast.SUB:
		res = acc.Sub(next)
	case ast.MUL:
		res = acc.Mul(next)
	case ast.DIV:
		res = acc.Div(next)
	default:
		panic(fmt.Sprintf("unknown operator %s", op))
	}
	//
	if n := max(res.Numerator.Len(), res.Denominator.Len()); p.MaxTerms != 0 && n > p.MaxTerms {
		return res, &LimitError{p.MaxTerms, n}
	}
	//
	return res, nil
}
