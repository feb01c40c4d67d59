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
package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lhc180/Halide/pkg/congruence"
	"github.com/lhc180/Halide/pkg/ir"
)

// demoExpr is (30*x + 3) + (40*y + 2), the first row of the acceptance
// table. Building expressions from program text is out of this module's
// scope (see spec.md §1: pretty-printing and parsing are external
// collaborators), so the demo command analyzes a fixed expression rather
// than one read from a flag.
func demoExpr() ir.Node {
	x, y := ir.Var{Name: "x"}, ir.Var{Name: "y"}

	return ir.Add{
		A: ir.Add{A: ir.Mul{A: ir.IntImm{Value: 30}, B: x}, B: ir.IntImm{Value: 3}},
		B: ir.Add{A: ir.Mul{A: ir.IntImm{Value: 40}, B: y}, B: ir.IntImm{Value: 2}},
	}
}

func newReduceCmd() *cobra.Command {
	var modulus int64

	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Reduce the demo expression (30*x+3)+(40*y+2) modulo --modulus",
		RunE: func(cmd *cobra.Command, args []string) error {
			if modulus <= 0 {
				return fmt.Errorf("--modulus must be positive, got %d", modulus)
			}

			expr := demoExpr()

			mr, err := congruence.ModulusRemainderOf(expr)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"modulus":   mr.Modulus,
				"remainder": mr.Remainder,
			}).Info("analyzed demo expression")

			remainder, ok, err := congruence.ReduceExprModulo(expr, modulus)
			if err != nil {
				return err
			}

			if !ok {
				log.WithField("modulus", modulus).Warn("analysis modulus is not a multiple of the requested modulus; no unique answer")
				return nil
			}

			log.WithFields(log.Fields{
				"modulus":   modulus,
				"remainder": remainder,
			}).Info("reduced demo expression")

			return nil
		},
	}

	cmd.Flags().Int64Var(&modulus, "modulus", 5, "modulus to reduce the demo expression by")

	return cmd
}
