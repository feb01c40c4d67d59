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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhc180/Halide/pkg/ir"
)

func TestGcd(t *testing.T) {
	assert.Equal(t, int64(6), Gcd(12, 18))
	assert.Equal(t, int64(5), Gcd(0, 5))
	assert.Equal(t, int64(5), Gcd(5, 0))
	assert.Equal(t, int64(0), Gcd(0, 0))
	assert.Equal(t, int64(1), Gcd(7, 13))
}

func TestMod(t *testing.T) {
	assert.Equal(t, int64(42), Mod(42, 0))
	assert.Equal(t, int64(1), Mod(7, 3))
	assert.Equal(t, int64(2), Mod(-1, 3))
	assert.Equal(t, int64(0), Mod(-9, 3))
}

func TestUnifyAlternativesIdempotent(t *testing.T) {
	for _, v := range []ModulusRemainder{
		Trivial,
		Constant(5),
		{Modulus: 6, Remainder: 3},
	} {
		assert.Equal(t, v, UnifyAlternatives(v, v))
	}
}

func TestUnifyAlternativesExample(t *testing.T) {
	a := ModulusRemainder{Modulus: 30, Remainder: 13}
	b := ModulusRemainder{Modulus: 40, Remainder: 27}

	got := UnifyAlternatives(a, b)
	assert.Equal(t, ModulusRemainder{Modulus: 2, Remainder: 1}, got)
}

func TestSelfTestTable(t *testing.T) {
	require.NoError(t, SelfTest())
}

func TestConstantPreservation(t *testing.T) {
	mr, err := ModulusRemainderOf(ir.IntImm{Value: 17})
	require.NoError(t, err)
	assert.Equal(t, Constant(17), mr)
}

func TestLetEquivalence(t *testing.T) {
	x := ir.Var{Name: "x"}
	value := ir.Add{A: ir.Mul{A: ir.IntImm{Value: 3}, B: x}, B: ir.IntImm{Value: 4}}
	body := ir.Var{Name: "y"}

	letExpr := ir.Let{Name: "y", Value: value, Body: body}

	letResult, err := ModulusRemainderOf(letExpr)
	require.NoError(t, err)

	valueResult, err := ModulusRemainderOf(value)
	require.NoError(t, err)

	scoped, err := ModulusRemainderIn(body, map[string]ModulusRemainder{"y": valueResult})
	require.NoError(t, err)

	assert.Equal(t, scoped, letResult)
}

func TestDivIsTrivial(t *testing.T) {
	mr, err := ModulusRemainderOf(ir.Div{A: ir.IntImm{Value: 10}, B: ir.IntImm{Value: 2}})
	require.NoError(t, err)
	assert.Equal(t, Trivial, mr)
}

func TestCastIsTrivial(t *testing.T) {
	mr, err := ModulusRemainderOf(ir.Cast{Value: ir.IntImm{Value: 7}})
	require.NoError(t, err)
	assert.Equal(t, Trivial, mr)
}

func TestLoadAndCallAreOpaque(t *testing.T) {
	mr, err := ModulusRemainderOf(ir.Load{Name: "buf", Index: ir.IntImm{Value: 0}})
	require.NoError(t, err)
	assert.Equal(t, Trivial, mr)

	mr, err = ModulusRemainderOf(ir.Call{Name: "sin", Args: []ir.Node{ir.IntImm{Value: 0}}})
	require.NoError(t, err)
	assert.Equal(t, Trivial, mr)
}

func TestUnboundVariableIsTrivial(t *testing.T) {
	mr, err := ModulusRemainderOf(ir.Var{Name: "z"})
	require.NoError(t, err)
	assert.Equal(t, Trivial, mr)
}

func TestSelectUnifiesBranches(t *testing.T) {
	cond := ir.EQ{A: ir.Var{Name: "x"}, B: ir.IntImm{Value: 0}}
	trueBranch := ir.Add{A: ir.Mul{A: ir.IntImm{Value: 6}, B: ir.Var{Name: "x"}}, B: ir.IntImm{Value: 2}}
	falseBranch := ir.Add{A: ir.Mul{A: ir.IntImm{Value: 4}, B: ir.Var{Name: "y"}}, B: ir.IntImm{Value: 2}}

	mr, err := ModulusRemainderOf(ir.Select{Cond: cond, TrueValue: trueBranch, FalseValue: falseBranch})
	require.NoError(t, err)
	assert.Equal(t, ModulusRemainder{Modulus: 2, Remainder: 0}, mr)
}

func TestDomainErrorsAreRejected(t *testing.T) {
	cases := map[string]ir.Node{
		"float":     ir.FloatImm{Value: 1.5},
		"vector":    ir.Ramp{Base: ir.IntImm{Value: 0}, Stride: ir.IntImm{Value: 1}, Lanes: 4},
		"broadcast": ir.Broadcast{Value: ir.IntImm{Value: 0}, Lanes: 4},
		"bool":      ir.EQ{A: ir.IntImm{Value: 0}, B: ir.IntImm{Value: 0}},
		"statement": ir.Block{Stmts: []ir.Node{ir.PrintStmt{Args: []ir.Node{ir.IntImm{Value: 0}}}}},
	}

	for name, n := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ModulusRemainderOf(n)
			require.Error(t, err)

			var ae *AnalysisError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, DomainError, ae.Kind)
		})
	}
}

func TestReduceExprModulo(t *testing.T) {
	expr := add(add(mul(lit(30), variable("x")), lit(3)), add(mul(lit(40), variable("y")), lit(2)))

	r, ok, err := ReduceExprModulo(expr, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(0), r)

	_, ok, err = ReduceExprModulo(expr, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReduceExprModuloRejectsNonPositiveModulus(t *testing.T) {
	expr := lit(123)

	for _, m := range []int64{0, -5} {
		_, ok, err := ReduceExprModulo(expr, m)
		require.Error(t, err)
		assert.False(t, ok)

		var ae *AnalysisError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, DomainError, ae.Kind)
	}
}
