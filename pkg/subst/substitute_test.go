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
package subst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lhc180/Halide/pkg/congruence"
	"github.com/lhc180/Halide/pkg/ir"
)

func TestSubstituteReplacesFreeVariable(t *testing.T) {
	expr := ir.Add{A: ir.Var{Name: "x"}, B: ir.IntImm{Value: 1}}
	got := Substitute("x", ir.IntImm{Value: 41}, expr)

	assert.Equal(t, ir.Add{A: ir.IntImm{Value: 41}, B: ir.IntImm{Value: 1}}, got)
}

func TestSubstituteLeavesOtherVariablesAlone(t *testing.T) {
	expr := ir.Add{A: ir.Var{Name: "x"}, B: ir.Var{Name: "y"}}
	got := Substitute("x", ir.IntImm{Value: 41}, expr)

	assert.Equal(t, ir.Add{A: ir.IntImm{Value: 41}, B: ir.Var{Name: "y"}}, got)
}

func TestSubstituteRecursesIntoLetBodyIncludingShadowedName(t *testing.T) {
	// substitute("x", 41, let x = x+1 in x*2) replaces every occurrence of
	// x, including inside the body that rebinds it -- the source behaviour
	// this pass preserves (spec.md §9).
	expr := ir.Let{
		Name:  "x",
		Value: ir.Add{A: ir.Var{Name: "x"}, B: ir.IntImm{Value: 1}},
		Body:  ir.Mul{A: ir.Var{Name: "x"}, B: ir.IntImm{Value: 2}},
	}

	got := Substitute("x", ir.IntImm{Value: 41}, expr)

	want := ir.Let{
		Name:  "x",
		Value: ir.Add{A: ir.IntImm{Value: 41}, B: ir.IntImm{Value: 1}},
		Body:  ir.Mul{A: ir.IntImm{Value: 41}, B: ir.IntImm{Value: 2}},
	}

	assert.Equal(t, want, got)
}

func TestSubstituteThenAnalyzeIsConsistent(t *testing.T) {
	// substitute(x, 6, 10*x) should analyze to the exact constant 60.
	expr := ir.Mul{A: ir.IntImm{Value: 10}, B: ir.Var{Name: "x"}}
	replaced := Substitute("x", ir.IntImm{Value: 6}, expr)

	mr, err := congruence.ModulusRemainderOf(replaced)
	assert.NoError(t, err)
	assert.Equal(t, congruence.Constant(60), mr)
}

func TestSubstituteOverStatements(t *testing.T) {
	stmt := ir.Store{Name: "buf", Index: ir.Var{Name: "i"}, Value: ir.Var{Name: "x"}}
	got := Substitute("x", ir.IntImm{Value: 7}, stmt)

	assert.Equal(t, ir.Store{Name: "buf", Index: ir.Var{Name: "i"}, Value: ir.IntImm{Value: 7}}, got)
}
