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

// Package subst implements a single IR-to-IR rewrite: replacing every
// occurrence of a named variable (bound or free) with a given replacement expression. It is
// included alongside pkg/congruence because both share the same recursive
// visitor discipline over pkg/ir, not because substitution depends on the
// congruence analysis (it doesn't).
package subst

import "github.com/lhc180/Halide/pkg/ir"

// Substitute returns a structurally identical copy of n with every
// ir.Var{Name: name} occurrence replaced by replacement. Every other node
// kind is rebuilt from recursively-substituted children.
//
// No capture avoidance is performed, and shadowing inside Let is not handled
// specially: a Let that rebinds name will still have occurrences of name in
// its body substituted, exactly as in the source this pass is ported from.
// Callers are responsible for ensuring replacement introduces no accidental
// capture.
func Substitute(name string, replacement ir.Node, n ir.Node) ir.Node {
	switch t := n.(type) {
	case ir.IntImm, ir.FloatImm:
		return n

	case ir.Cast:
		return ir.Cast{Value: Substitute(name, replacement, t.Value)}

	case ir.Var:
		if t.Name == name {
			return replacement
		}

		return t

	case ir.Add:
		return ir.Add{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.Sub:
		return ir.Sub{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.Mul:
		return ir.Mul{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.Div:
		return ir.Div{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.Mod:
		return ir.Mod{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.Min:
		return ir.Min{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.Max:
		return ir.Max{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}

	case ir.EQ:
		return ir.EQ{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.NE:
		return ir.NE{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.LT:
		return ir.LT{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.LE:
		return ir.LE{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.GT:
		return ir.GT{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.GE:
		return ir.GE{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.And:
		return ir.And{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.Or:
		return ir.Or{A: Substitute(name, replacement, t.A), B: Substitute(name, replacement, t.B)}
	case ir.Not:
		return ir.Not{A: Substitute(name, replacement, t.A)}

	case ir.Select:
		return ir.Select{
			Cond:       Substitute(name, replacement, t.Cond),
			TrueValue:  Substitute(name, replacement, t.TrueValue),
			FalseValue: Substitute(name, replacement, t.FalseValue),
		}

	case ir.Load:
		return ir.Load{Name: t.Name, Index: Substitute(name, replacement, t.Index)}

	case ir.Ramp:
		return ir.Ramp{
			Base:   Substitute(name, replacement, t.Base),
			Stride: Substitute(name, replacement, t.Stride),
			Lanes:  t.Lanes,
		}
	case ir.Broadcast:
		return ir.Broadcast{Value: Substitute(name, replacement, t.Value), Lanes: t.Lanes}

	case ir.Call:
		return ir.Call{Name: t.Name, Args: substituteAll(name, replacement, t.Args)}

	case ir.Let:
		return ir.Let{
			Name:  t.Name,
			Value: Substitute(name, replacement, t.Value),
			Body:  Substitute(name, replacement, t.Body),
		}

	case ir.LetStmt:
		return ir.LetStmt{
			Name:  t.Name,
			Value: Substitute(name, replacement, t.Value),
			Body:  Substitute(name, replacement, t.Body),
		}

	case ir.PrintStmt:
		return ir.PrintStmt{Args: substituteAll(name, replacement, t.Args)}

	case ir.AssertStmt:
		return ir.AssertStmt{
			Condition: Substitute(name, replacement, t.Condition),
			Message:   Substitute(name, replacement, t.Message),
		}

	case ir.Pipeline:
		return ir.Pipeline{
			Name:    t.Name,
			Produce: Substitute(name, replacement, t.Produce),
			Update:  Substitute(name, replacement, t.Update),
			Consume: Substitute(name, replacement, t.Consume),
		}

	case ir.For:
		return ir.For{
			Name:   t.Name,
			Min:    Substitute(name, replacement, t.Min),
			Extent: Substitute(name, replacement, t.Extent),
			Body:   Substitute(name, replacement, t.Body),
		}

	case ir.Store:
		return ir.Store{
			Name:  t.Name,
			Index: Substitute(name, replacement, t.Index),
			Value: Substitute(name, replacement, t.Value),
		}

	case ir.Provide:
		return ir.Provide{
			Name:   t.Name,
			Args:   substituteAll(name, replacement, t.Args),
			Values: substituteAll(name, replacement, t.Values),
		}

	case ir.Allocate:
		return ir.Allocate{
			Name:    t.Name,
			Extents: substituteAll(name, replacement, t.Extents),
			Body:    Substitute(name, replacement, t.Body),
		}

	case ir.Realize:
		return ir.Realize{
			Name:   t.Name,
			Bounds: substituteAll(name, replacement, t.Bounds),
			Body:   Substitute(name, replacement, t.Body),
		}

	case ir.Block:
		return ir.Block{Stmts: substituteAll(name, replacement, t.Stmts)}

	default:
		panic("subst: unhandled node kind")
	}
}

func substituteAll(name string, replacement ir.Node, nodes []ir.Node) []ir.Node {
	if nodes == nil {
		return nil
	}

	out := make([]ir.Node, len(nodes))
	for i, n := range nodes {
		out[i] = Substitute(name, replacement, n)
	}

	return out
}
