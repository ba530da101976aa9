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
	"cmp"
)

// Scanner is a function which accepts some prefix of the given items (or not).
// It returns the number of items matched, where zero signals failure.
type Scanner[T any] func(items []T) uint

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Observe that there is an implicit left-to-right
// order of evaluation: the first scanner to match wins, even if a later one would
// match more.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of items.  That is, for this scanner to match,
// it must match all the given items (one after the other) in their given order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i := range chars {
			if items[i] != chars[i] {
				// fail
				return 0
			}
		}
		// success
		return uint(len(chars))
	}
}

// Within accepts any single item within a given (inclusive) range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Satisfies accepts any single item for which the given predicate holds.
func Satisfies[T any](predicate func(T) bool) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && predicate(items[0]) {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches one or more repetitions of a given scanner, as many as
// possible.  Since a match of length zero signals failure, no repetitions at
// all is a failure.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if n := acceptor(items[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// Sequence matches all the scanners in order.  Each scanner consumes the input
// right after the previous one ends, and every scanner must match.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := uint(0)
		//
		for _, scanner := range scanners {
			if n == uint(len(items)) {
				return 0
			}
			//
			m := scanner(items[n:])
			if m == 0 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// Then matches a required scanner followed by zero or more optional tails.
// Each tail is attempted, in order, immediately after whatever has been
// matched so far; a tail which does not match is simply skipped.
func Then[T any](head Scanner[T], tails ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := head(items)
		//
		if n == 0 {
			return 0
		}
		//
		for _, tail := range tails {
			n += tail(items[n:])
		}
		//
		return n
	}
}

// Eof matches the end of the input stream.  Observe that this "consumes" one
// item, even though none is present, in order that it signals success.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}

// Matches determines whether a given scanner accepts the whole of the given
// items, and nothing less.
func Matches[T any](scanner Scanner[T], items []T) bool {
	return len(items) > 0 && scanner(items) == uint(len(items))
}
