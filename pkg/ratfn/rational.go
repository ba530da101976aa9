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

	"github.com/consensys/go-blackbox/pkg/util/poly"
)

// Rational is an (unreduced) ratio of two multivariate polynomials.  No common
// factors are ever cancelled, and denominators which happen to be the
// constant 1 are still held as full polynomials.
type Rational struct {
	Numerator   poly.Polynomial
	Denominator poly.Polynomial
}

// NewRational constructs a rational from a numerator and denominator of the
// same arity.
func NewRational(numerator, denominator poly.Polynomial) Rational {
	if numerator.Arity() != denominator.Arity() {
		panic(fmt.Sprintf("incompatible arities (%d vs %d)", numerator.Arity(), denominator.Arity()))
	}
	//
	return Rational{numerator, denominator}
}

// Arity returns the number of variables over which this rational is defined.
func (p Rational) Arity() uint {
	return p.Numerator.Arity()
}

// Len returns the total number of terms held by this rational.
func (p Rational) Len() uint {
	return p.Numerator.Len() + p.Denominator.Len()
}

// Add returns the sum a/b + c/d = (ad + cb) / bd.
func (p Rational) Add(other Rational) Rational {
	var (
		top = p.Numerator.Mul(other.Denominator).Add(other.Numerator.Mul(p.Denominator))
		bot = p.Denominator.Mul(other.Denominator)
	)
	//
	return Rational{top, bot}
}

// Sub returns the difference a/b - c/d = (ad - cb) / bd.
func (p Rational) Sub(other Rational) Rational {
	var (
		top = p.Numerator.Mul(other.Denominator).Sub(other.Numerator.Mul(p.Denominator))
		bot = p.Denominator.Mul(other.Denominator)
	)
	//
	return Rational{top, bot}
}

// Mul returns the product a/b * c/d = ac / bd.
func (p Rational) Mul(other Rational) Rational {
	return Rational{p.Numerator.Mul(other.Numerator), p.Denominator.Mul(other.Denominator)}
}

// Div returns the quotient a/b / c/d = ad / bc.  Observe that no check is made
// as to whether c is the zero polynomial.
func (p Rational) Div(other Rational) Rational {
	return Rational{p.Numerator.Mul(other.Denominator), p.Denominator.Mul(other.Numerator)}
}

// Neg returns -a/b.
func (p Rational) Neg() Rational {
	return Rational{p.Numerator.Neg(), p.Denominator}
}

// Eval evaluates this rational at a given point.  This follows ordinary
// floating-point division, hence can give an infinity or NaN.
func (p Rational) Eval(point []float64) float64 {
	return p.Numerator.Eval(point) / p.Denominator.Eval(point)
}

// String constructs a diagnostic representation of this rational, assuming an
// environment which maps variable indices to names.
func String(r Rational, env func(uint) string) string {
	return fmt.Sprintf("(%s)/(%s)", poly.String(r.Numerator, env), poly.String(r.Denominator, env))
}
