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
package congruence

import (
	"github.com/lhc180/Halide/pkg/ir"
)

// catchAnalysisError recovers a panicking *AnalysisError raised by the
// analyzer and returns it as a normal error. Any other panic (a genuine bug,
// not a modeled failure mode) is re-raised.
func catchAnalysisError(err *error) {
	if r := recover(); r != nil {
		if ae, ok := r.(*AnalysisError); ok {
			*err = ae
			return
		}

		panic(r)
	}
}

// ModulusRemainderOf analyzes e with an empty scope and returns the sound
// congruence claim (modulus, remainder). It returns a non-nil error if e
// (or a node reachable from it) is outside the analyzer's domain, or if the
// analysis detects an internal inconsistency.
func ModulusRemainderOf(e ir.Node) (mr ModulusRemainder, err error) {
	defer catchAnalysisError(&err)

	a := &analyzer{scope: NewScope()}

	return a.analyze(e), nil
}

// ModulusRemainderIn analyzes e against a caller-provided scope snapshot.
// The snapshot is copied in; callers may reuse or mutate the map afterward.
func ModulusRemainderIn(e ir.Node, scope map[string]ModulusRemainder) (mr ModulusRemainder, err error) {
	defer catchAnalysisError(&err)

	a := &analyzer{scope: NewScopeFrom(scope)}

	return a.analyze(e), nil
}

// ReduceExprModulo computes modulus_remainder(e) = (M, R) and, if the
// caller's modulus m evenly divides M, returns R mod m. Otherwise the
// caller's question isn't uniquely determined by the analysis and ok is
// false.
//
// For example, if the analysis says e = 16*k + 13 and the caller asks for e
// mod 8, then since 16 % 8 == 0 the answer is 13 % 8 == 5. But if the
// analysis says e = 6*k + 3, then e mod 8 could be 1, 3, 5, or 7, so ok is
// false.
//
// m must be strictly positive, per spec.md §6's precondition; m <= 0 is
// rejected as a domain error rather than left to panic on the modulo below.
func ReduceExprModulo(e ir.Node, m int64) (remainder int64, ok bool, err error) {
	if m <= 0 {
		return 0, false, DomainErrorf("reduce_expr_modulo: modulus must be positive, got %d", m)
	}

	mr, err := ModulusRemainderOf(e)
	if err != nil {
		return 0, false, err
	}

	if mr.Modulus%m != 0 {
		return 0, false, nil
	}

	return Mod(mr.Remainder, m), true, nil
}
