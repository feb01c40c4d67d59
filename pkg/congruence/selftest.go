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
	"fmt"

	"github.com/lhc180/Halide/pkg/ir"
)

// selfTestCase is one entry of the acceptance table from spec.md §6/§8.
type selfTestCase struct {
	name     string
	expr     ir.Node
	expected ModulusRemainder
}

func variable(name string) ir.Node { return ir.Var{Name: name} }
func lit(v int64) ir.Node          { return ir.IntImm{Value: v} }

func mul(a, b ir.Node) ir.Node { return ir.Mul{A: a, B: b} }
func add(a, b ir.Node) ir.Node { return ir.Add{A: a, B: b} }
func sub(a, b ir.Node) ir.Node { return ir.Sub{A: a, B: b} }

// selfTestTable builds the seed acceptance tests named in spec.md §8.
func selfTestTable() []selfTestCase {
	x, y := variable("x"), variable("y")

	return []selfTestCase{
		{
			name:     "(30x+3)+(40y+2)",
			expr:     add(add(mul(lit(30), x), lit(3)), add(mul(lit(40), y), lit(2))),
			expected: ModulusRemainder{Modulus: 10, Remainder: 5},
		},
		{
			name:     "(6x+3)*(4y+1)",
			expr:     mul(add(mul(lit(6), x), lit(3)), add(mul(lit(4), y), lit(1))),
			expected: ModulusRemainder{Modulus: 2, Remainder: 1},
		},
		{
			name:     "max(30x-24, 40y+31)",
			expr:     ir.Max{A: sub(mul(lit(30), x), lit(24)), B: add(mul(lit(40), y), lit(31))},
			expected: ModulusRemainder{Modulus: 5, Remainder: 1},
		},
		{
			name:     "10x-33y",
			expr:     sub(mul(lit(10), x), mul(lit(33), y)),
			expected: ModulusRemainder{Modulus: 1, Remainder: 0},
		},
		{
			name:     "10x-35y",
			expr:     sub(mul(lit(10), x), mul(lit(35), y)),
			expected: ModulusRemainder{Modulus: 5, Remainder: 0},
		},
		{
			name:     "123",
			expr:     lit(123),
			expected: ModulusRemainder{Modulus: 0, Remainder: 123},
		},
		{
			name:     "let y = x*3+4 in y*3+4",
			expr:     ir.Let{Name: "y", Value: add(mul(x, lit(3)), lit(4)), Body: add(mul(y, lit(3)), lit(4))},
			expected: ModulusRemainder{Modulus: 9, Remainder: 7},
		},
	}
}

// SelfTest builds each expression in the acceptance table and checks that
// ModulusRemainderOf returns exactly the expected (modulus, remainder). It
// returns the first mismatch or analysis error it finds, or nil if every
// case passes. This is the Go analogue of the original's
// modulus_remainder_test(), minus the process-exiting side effect: callers
// (e.g. the CLI's `selftest` command) decide what "failed" means for them.
func SelfTest() error {
	for _, tc := range selfTestTable() {
		got, err := ModulusRemainderOf(tc.expr)
		if err != nil {
			return fmt.Errorf("modulus_remainder_test: %s: %w", tc.name, err)
		}

		if got != tc.expected {
			return fmt.Errorf("modulus_remainder_test: %s: expected (%d, %d), got (%d, %d)",
				tc.name, tc.expected.Modulus, tc.expected.Remainder, got.Modulus, got.Remainder)
		}
	}

	return nil
}
