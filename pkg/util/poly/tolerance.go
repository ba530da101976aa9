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

import "math"

// Tolerance determines when two real coefficients are deemed equal, combining
// an absolute threshold (for coefficients near zero) with a relative one (for
// large coefficients).  This compensates for rounding accumulated whilst
// expanding products of polynomials.
type Tolerance struct {
	Absolute float64 `yaml:"absolute"`
	Relative float64 `yaml:"relative"`
}

// DefaultTolerance is used unless configured otherwise.
var DefaultTolerance = Tolerance{Absolute: 1e-9, Relative: 1e-9}

// Equal checks whether |a-b| < max(abs, rel * max(|a|,|b|)).
func (p Tolerance) Equal(a, b float64) bool {
	threshold := max(p.Absolute, p.Relative*max(math.Abs(a), math.Abs(b)))
	//
	return math.Abs(a-b) < threshold
}
