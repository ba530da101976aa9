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
package poly

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Polynomial is a sparse multivariate polynomial with real coefficients over a
// fixed number of variables (its arity).  Each term is keyed by its monomial,
// and monomials absent from the mapping have an implicit coefficient of zero.
// Observe that terms whose coefficient has cancelled to zero may still be
// present; these are treated identically to absent terms when comparing.
// Polynomials are immutable: every operation returns a fresh polynomial.
type Polynomial struct {
	arity uint
	terms map[Monomial]float64
}

// Zero constructs the zero polynomial of a given arity.
func Zero(arity uint) Polynomial {
	return Polynomial{arity, map[Monomial]float64{}}
}

// NewConstant constructs the polynomial consisting of a single constant term.
func NewConstant(arity uint, value float64) Polynomial {
	return Polynomial{arity, map[Monomial]float64{ConstantMonomial(arity): value}}
}

// NewVariable constructs the polynomial x_i for the given variable index.
func NewVariable(arity uint, index uint) Polynomial {
	return Polynomial{arity, map[Monomial]float64{VariableMonomial(arity, index): 1}}
}

// NewPolynomial constructs a polynomial from a given set of terms.  Every
// monomial must have the given arity.
func NewPolynomial(arity uint, terms map[Monomial]float64) Polynomial {
	res := Zero(arity)
	//
	for m, c := range terms {
		res.addTerm(m, c)
	}
	//
	return res
}

// Arity returns the number of variables over which this polynomial is defined.
func (p Polynomial) Arity() uint {
	return p.arity
}

// Len returns the number of terms held by this polynomial, including any whose
// coefficient has cancelled to zero.
func (p Polynomial) Len() uint {
	return uint(len(p.terms))
}

// Coefficient returns the coefficient of a given monomial in this polynomial,
// which is zero if the monomial is not present.
func (p Polynomial) Coefficient(m Monomial) float64 {
	return p.terms[m]
}

// Monomials returns the monomials of this polynomial in a deterministic order.
func (p Polynomial) Monomials() []Monomial {
	monomials := make([]Monomial, 0, len(p.terms))
	//
	for m := range p.terms {
		monomials = append(monomials, m)
	}
	//
	slices.SortFunc(monomials, Monomial.Cmp)
	//
	return monomials
}

// IsZero checks whether every coefficient of this polynomial is exactly zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p.terms {
		if c != 0 {
			return false
		}
	}
	//
	return true
}

// Add returns the sum of this polynomial and another.
func (p Polynomial) Add(other Polynomial) Polynomial {
	p.checkArity(other)
	//
	res := p.clone()
	//
	for m, c := range other.terms {
		res.terms[m] += c
	}
	//
	return res
}

// Sub returns the difference of this polynomial and another.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.Add(other.Neg())
}

// Neg returns this polynomial with every coefficient negated.
func (p Polynomial) Neg() Polynomial {
	res := Zero(p.arity)
	//
	for m, c := range p.terms {
		res.terms[m] = -c
	}
	//
	return res
}

// Mul returns the product of this polynomial and another.  Every pair of terms
// contributes the product of their coefficients to the monomial obtained by
// adding their exponent vectors.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	p.checkArity(other)
	//
	res := Zero(p.arity)
	//
	for lm, lc := range p.terms {
		for rm, rc := range other.terms {
			res.terms[lm.Mul(rm)] += lc * rc
		}
	}
	//
	return res
}

// Eval evaluates this polynomial at a given point, which must supply one value
// per variable.
func (p Polynomial) Eval(point []float64) float64 {
	if uint(len(point)) != p.arity {
		panic(fmt.Sprintf("expected %d values, got %d", p.arity, len(point)))
	}
	//
	var sum float64
	//
	for m, c := range p.terms {
		term := c
		//
		for i, e := range m.Exponents() {
			term *= math.Pow(point[i], float64(e))
		}
		//
		sum += term
	}
	//
	return sum
}

// ApproxEqual determines whether two polynomials agree coefficient-wise, up to
// a given tolerance, over every monomial present in either.
func ApproxEqual(lhs, rhs Polynomial, tolerance Tolerance) bool {
	lhs.checkArity(rhs)
	//
	for m, c := range lhs.terms {
		if !tolerance.Equal(c, rhs.terms[m]) {
			return false
		}
	}
	//
	for m, c := range rhs.terms {
		if _, ok := lhs.terms[m]; !ok && !tolerance.Equal(0, c) {
			return false
		}
	}
	//
	return true
}

// String constructs a suitable string representation for a given polynomial
// assuming an environment which maps variable indices to names.  This is
// intended for diagnostics only.
func String(poly Polynomial, env func(uint) string) string {
	var buf strings.Builder
	//
	if poly.Len() == 0 {
		return "0"
	}
	//
	for i, m := range poly.Monomials() {
		coeff := poly.Coefficient(m)
		//
		if i != 0 {
			buf.WriteString("+")
		}
		// Various cases to improve readability
		switch {
		case m.Degree() == 0:
			buf.WriteString(formatFloat(coeff))
		case coeff == 1:
			buf.WriteString(m.String(env))
		default:
			buf.WriteString("(")
			buf.WriteString(formatFloat(coeff))
			buf.WriteString("*")
			buf.WriteString(m.String(env))
			buf.WriteString(")")
		}
	}
	//
	return buf.String()
}

func (p Polynomial) addTerm(m Monomial, c float64) {
	if m.Arity() != p.arity {
		panic(fmt.Sprintf("monomial arity %d does not match polynomial arity %d", m.Arity(), p.arity))
	}
	//
	p.terms[m] += c
}

func (p Polynomial) clone() Polynomial {
	res := Zero(p.arity)
	//
	for m, c := range p.terms {
		res.terms[m] = c
	}
	//
	return res
}

func (p Polynomial) checkArity(other Polynomial) {
	if p.arity != other.arity {
		panic(fmt.Sprintf("incompatible polynomial arities (%d vs %d)", p.arity, other.arity))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
