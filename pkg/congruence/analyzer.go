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

// analyzer holds the scope for the duration of one top-level call to
// ModulusRemainderOf / ModulusRemainderIn. It owns no other state and is
// never reused across calls: every invocation gets a fresh analyzer.
type analyzer struct {
	scope *Scope
}

// analyze is the structural recursion at the heart of the package: for each
// node kind, compute children's ModulusRemainder first (where applicable),
// then combine. Any node kind outside the analyzer's domain panics with a
// *AnalysisError; callers reach that error via ModulusRemainderOf's recover.
func (a *analyzer) analyze(n ir.Node) ModulusRemainder {
	switch t := n.(type) {
	case ir.IntImm:
		// The only source of a non-zero Modulus == 0: everything downstream
		// treats Modulus == 0 as "constant Remainder".
		return Constant(t.Value)

	case ir.FloatImm:
		panic(DomainErrorf("modulus_remainder of float"))

	case ir.Cast:
		// No assumptions about sign-extension or truncation behaviour.
		return Trivial

	case ir.Var:
		if v, ok := a.scope.Lookup(t.Name); ok {
			return v
		}

		return Trivial

	case ir.Add:
		x, y := a.analyze(t.A), a.analyze(t.B)
		m := Gcd(x.Modulus, y.Modulus)

		return ModulusRemainder{Modulus: m, Remainder: Mod(x.Remainder+y.Remainder, m)}

	case ir.Sub:
		x, y := a.analyze(t.A), a.analyze(t.B)
		m := Gcd(x.Modulus, y.Modulus)

		return ModulusRemainder{Modulus: m, Remainder: Mod(x.Remainder-y.Remainder, m)}

	case ir.Mul:
		return a.analyzeMul(a.analyze(t.A), a.analyze(t.B))

	case ir.Div:
		// Sharper results require provable divisibility that would normally
		// be eliminated by a prior simplification pass.
		return Trivial

	case ir.Mod:
		return a.analyzeMod(a.analyze(t.A), a.analyze(t.B))

	case ir.Min:
		return UnifyAlternatives(a.analyze(t.A), a.analyze(t.B))

	case ir.Max:
		return UnifyAlternatives(a.analyze(t.A), a.analyze(t.B))

	case ir.EQ:
		panic(DomainErrorf("modulus_remainder of bool"))
	case ir.NE:
		panic(DomainErrorf("modulus_remainder of bool"))
	case ir.LT:
		panic(DomainErrorf("modulus_remainder of bool"))
	case ir.LE:
		panic(DomainErrorf("modulus_remainder of bool"))
	case ir.GT:
		panic(DomainErrorf("modulus_remainder of bool"))
	case ir.GE:
		panic(DomainErrorf("modulus_remainder of bool"))
	case ir.And:
		panic(DomainErrorf("modulus_remainder of bool"))
	case ir.Or:
		panic(DomainErrorf("modulus_remainder of bool"))
	case ir.Not:
		panic(DomainErrorf("modulus_remainder of bool"))

	case ir.Select:
		// The condition is boolean-typed and is not analyzed.
		return UnifyAlternatives(a.analyze(t.TrueValue), a.analyze(t.FalseValue))

	case ir.Load:
		return Trivial

	case ir.Ramp:
		panic(DomainErrorf("modulus_remainder of vector"))
	case ir.Broadcast:
		panic(DomainErrorf("modulus_remainder of vector"))

	case ir.Call:
		return Trivial

	case ir.Let:
		value := a.analyze(t.Value)
		a.scope.Push(t.Name, value)

		body := a.analyze(t.Body)
		a.scope.Pop(t.Name)

		return body

	case ir.LetStmt, ir.PrintStmt, ir.AssertStmt, ir.Pipeline, ir.For,
		ir.Store, ir.Provide, ir.Allocate, ir.Realize, ir.Block:
		panic(DomainErrorf("modulus_remainder of statement"))

	default:
		panic(InternalErrorf("unhandled node kind %T", n))
	}
}

// analyzeMul implements the Mul transfer function, case split in the order
// given by spec.md §4.3. The final fallback is the corrected form noted in
// spec.md §9: the computed remainder is assigned to the result, not lost in
// a local that nothing reads.
func (a *analyzer) analyzeMul(x, y ModulusRemainder) ModulusRemainder {
	switch {
	case x.Modulus == 0:
		// x is the constant x.Remainder.
		return ModulusRemainder{Modulus: x.Remainder * y.Modulus, Remainder: x.Remainder * y.Remainder}
	case y.Modulus == 0:
		// y is the constant y.Remainder.
		return ModulusRemainder{Modulus: y.Remainder * x.Modulus, Remainder: x.Remainder * y.Remainder}
	case x.Remainder == 0 && y.Remainder == 0:
		// multiple times multiple
		return ModulusRemainder{Modulus: x.Modulus * y.Modulus, Remainder: 0}
	case x.Remainder == 0:
		return ModulusRemainder{Modulus: x.Modulus * Gcd(y.Modulus, y.Remainder), Remainder: 0}
	case y.Remainder == 0:
		return ModulusRemainder{Modulus: y.Modulus * Gcd(x.Modulus, x.Remainder), Remainder: 0}
	default:
		// All our tricks failed. Convert both to the same modulus and
		// multiply.
		m := Gcd(x.Modulus, y.Modulus)
		return ModulusRemainder{Modulus: m, Remainder: Mod(x.Remainder*y.Remainder, m)}
	}
}

// analyzeMod implements Mod by treating "a mod b" as "a + z*b" for an
// unknown integer z, per spec.md §4.3.
func (a *analyzer) analyzeMod(x, y ModulusRemainder) ModulusRemainder {
	m := Gcd(x.Modulus, y.Modulus)
	m = Gcd(m, y.Remainder)

	return ModulusRemainder{Modulus: m, Remainder: Mod(x.Remainder, m)}
}
