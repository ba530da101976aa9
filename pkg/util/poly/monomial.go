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
	"cmp"
	"encoding/binary"
	"fmt"
	"strings"
)

// Monomial identifies a product of variables raised to non-negative integer
// powers, such as x^2*z, through its exponent vector.  Thus, for the variables
// x, y, z the monomial x^2*z has exponent vector [2,0,1].  The vector is held
// in a packed form so that monomials are comparable, and can therefore be used
// directly as map keys with value equality.
type Monomial struct {
	// Exponents packed as a sequence of unsigned varints, one per variable.
	packed string
}

// NewMonomial constructs a monomial from its exponent vector, whose length
// determines the arity.
func NewMonomial(exponents ...uint) Monomial {
	var buf []byte
	//
	for _, e := range exponents {
		buf = binary.AppendUvarint(buf, uint64(e))
	}
	//
	return Monomial{string(buf)}
}

// ConstantMonomial returns the monomial of a given arity whose exponents are
// all zero (i.e. the monomial "1").
func ConstantMonomial(arity uint) Monomial {
	return NewMonomial(make([]uint, arity)...)
}

// VariableMonomial returns the monomial of a given arity which consists of
// exactly one variable, identified by its index.
func VariableMonomial(arity uint, index uint) Monomial {
	if index >= arity {
		panic(fmt.Sprintf("variable index %d out of bounds for arity %d", index, arity))
	}
	//
	exponents := make([]uint, arity)
	exponents[index] = 1
	//
	return NewMonomial(exponents...)
}

// Exponents returns the exponent vector of this monomial.
func (p Monomial) Exponents() []uint {
	var (
		buf       = []byte(p.packed)
		exponents = make([]uint, 0, len(buf))
	)
	//
	for len(buf) > 0 {
		e, n := binary.Uvarint(buf)
		exponents = append(exponents, uint(e))
		buf = buf[n:]
	}
	//
	return exponents
}

// Arity returns the number of variables over which this monomial is defined.
func (p Monomial) Arity() uint {
	return uint(len(p.Exponents()))
}

// Degree returns the total degree of this monomial, that is the sum of its
// exponents.
func (p Monomial) Degree() uint {
	var degree uint
	//
	for _, e := range p.Exponents() {
		degree += e
	}
	//
	return degree
}

// Mul returns the product of this monomial and another, obtained by adding
// their exponent vectors component-wise.  Both must have the same arity.
func (p Monomial) Mul(other Monomial) Monomial {
	var (
		lhs = p.Exponents()
		rhs = other.Exponents()
	)
	//
	if len(lhs) != len(rhs) {
		panic(fmt.Sprintf("incompatible monomial arities (%d vs %d)", len(lhs), len(rhs)))
	}
	//
	for i := range lhs {
		lhs[i] += rhs[i]
	}
	//
	return NewMonomial(lhs...)
}

// Cmp orders monomials by total degree and then lexicographically by their
// exponent vectors.  This gives a stable order for printing and iteration.
func (p Monomial) Cmp(other Monomial) int {
	var (
		lhs = p.Exponents()
		rhs = other.Exponents()
	)
	//
	if c := cmp.Compare(p.Degree(), other.Degree()); c != 0 {
		return -c
	}
	//
	for i := 0; i < min(len(lhs), len(rhs)); i++ {
		if c := cmp.Compare(lhs[i], rhs[i]); c != 0 {
			return -c
		}
	}
	//
	return cmp.Compare(uint(len(lhs)), uint(len(rhs)))
}

// String constructs a suitable string representation for this monomial
// assuming an environment which maps variable indices to names.  The constant
// monomial is written as "1".
func (p Monomial) String(env func(uint) string) string {
	var factors []string
	//
	for i, e := range p.Exponents() {
		switch {
		case e == 0:
			continue
		case e == 1:
			factors = append(factors, env(uint(i)))
		default:
			factors = append(factors, fmt.Sprintf("%s^%d", env(uint(i)), e))
		}
	}
	//
	if len(factors) == 0 {
		return "1"
	}
	//
	return strings.Join(factors, "*")
}
