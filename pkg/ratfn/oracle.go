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
	"github.com/consensys/go-blackbox/pkg/expr/ast"
	"github.com/consensys/go-blackbox/pkg/util"
	"github.com/consensys/go-blackbox/pkg/util/poly"
	log "github.com/sirupsen/logrus"
)

// Equivalent determines whether two trees over the same number of variables
// denote the same rational function, using the default tolerance.
func Equivalent(lhs, rhs ast.Node, arity uint) bool {
	return Identical(Canonicalize(lhs, arity), Canonicalize(rhs, arity), poly.DefaultTolerance)
}

// Identical determines whether two rationals denote the same function, that is
// whether a/b == c/d.  This is decided by cross-multiplication (i.e. a*d ==
// c*b) comparing coefficients up to a given tolerance, so that no division is
// ever performed.  Observe that two rationals with structurally zero
// denominators (e.g. 0/0) are always deemed identical.
func Identical(lhs, rhs Rational, tolerance poly.Tolerance) bool {
	var (
		l = lhs.Numerator.Mul(rhs.Denominator)
		r = rhs.Numerator.Mul(lhs.Denominator)
	)
	//
	return poly.ApproxEqual(l, r, tolerance)
}

// Oracle decides equivalence of trees over a fixed number of variables, with a
// given tolerance and (optional) bound on the size of canonical forms.
type Oracle struct {
	Arity     uint
	Tolerance poly.Tolerance
	MaxTerms  uint
}

// NewOracle constructs an oracle for a given arity with the default tolerance
// and no bound on the size of canonical forms.
func NewOracle(arity uint) Oracle {
	return Oracle{arity, poly.DefaultTolerance, 0}
}

// Equivalent determines whether two trees denote the same rational function.
// This fails only when the size bound (if any) is exceeded.
func (p Oracle) Equivalent(lhs, rhs ast.Node) (bool, error) {
	var (
		stats         = util.NewPerfStats()
		canonicalizer = Canonicalizer{p.Arity, p.MaxTerms}
	)
	//
	l, err := canonicalizer.Canonicalize(lhs)
	if err != nil {
		return false, err
	}
	//
	r, err := canonicalizer.Canonicalize(rhs)
	if err != nil {
		return false, err
	}
	//
	result := Identical(l, r, p.Tolerance)
	//
	log.Debugf("canonical forms have %d and %d terms (identical: %t)", l.Len(), r.Len(), result)
	stats.Log("equivalence check")
	//
	return result, nil
}
