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

// Package congruence implements a static analysis over the expression IR in
// pkg/ir that, for any integer-typed expression e, computes a pair
// (modulus, remainder) such that e mod modulus == remainder is a sound claim
// for every value e may take at runtime. It is an abstract interpretation:
// the transfer functions below are the whole of the analysis.
package congruence

// ModulusRemainder is the abstract value of the analysis: a claim that the
// analyzed expression is congruent to Remainder modulo Modulus.
//
// Invariants:
//   - Modulus >= 0.
//   - Modulus == 0 means the expression is exactly the constant Remainder.
//   - Modulus == 1 means no information; Remainder must be 0.
//   - Modulus > 1 implies 0 <= Remainder < Modulus.
type ModulusRemainder struct {
	Modulus, Remainder int64
}

// Trivial is the always-true claim: no information.
var Trivial = ModulusRemainder{Modulus: 1, Remainder: 0}

// Constant returns the exact claim that an expression equals v.
func Constant(v int64) ModulusRemainder {
	return ModulusRemainder{Modulus: 0, Remainder: v}
}

// Gcd returns the greatest common divisor of two non-negative integers,
// with the conventions Gcd(a, 0) == a and Gcd(0, b) == b. Both conventions
// matter here: Modulus == 0 is how a constant is encoded, and folding a
// constant into a gcd must leave the other operand untouched.
func Gcd(a, b int64) int64 {
	if a < b {
		a, b = b, a
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Mod reduces a into the range [0, m) for m > 0. Mod(a, 0) returns a
// unchanged, the convention that lets the constant case (Modulus == 0) flow
// through the same arithmetic as every other case.
func Mod(a, m int64) int64 {
	if m == 0 {
		return a
	}

	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// UnifyAlternatives is the join used by Min, Max, and Select: given two
// possible values for an expression, it returns a single ModulusRemainder
// that over-approximates both.
//
// For example, unifying 30*k+13 and 40*k+27 first collapses to 10*k+3 and
// 10*k+7, then to 2*k+1 and 2*k+1, landing on 2*k+1.
func UnifyAlternatives(a, b ModulusRemainder) ModulusRemainder {
	modulus := Gcd(a.Modulus, b.Modulus)

	diff := a.Remainder - b.Remainder
	if diff < 0 {
		diff = -diff
	}

	modulus = Gcd(diff, modulus)

	ra := Mod(a.Remainder, modulus)
	rb := Mod(b.Remainder, modulus)

	if ra != rb {
		panic(InternalErrorf("unify_alternatives postcondition violated: %d != %d (modulus %d)", ra, rb, modulus))
	}

	return ModulusRemainder{Modulus: modulus, Remainder: ra}
}
