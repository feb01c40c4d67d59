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

// Package ir defines the closed set of expression and statement node kinds
// that the congruence analysis in pkg/congruence discriminates over. The
// package deliberately holds only data: no evaluation, no simplification, no
// pretty-printing. Those are the job of the enclosing compiler, not of this
// module.
package ir

// Node is implemented by every expression and statement kind in the IR. It
// is intentionally a single sealed interface rather than separate Expr and
// Stmt interfaces: the analyzer in pkg/congruence must be able to reject a
// statement-typed Node fed to it by mistake, and a closed sum type makes
// that a type switch rather than a compile error waiting to happen.
type Node interface {
	// irNode is unexported so Node can only be implemented by types declared
	// in this package, which keeps the set of kinds a type switch must cover
	// closed. The compiler does not check a type switch for exhaustiveness;
	// pkg/congruence's analyzer reports an unlisted kind at run time.
	irNode()
}

// ============================================================================
// Literals, casts, variables
// ============================================================================

// IntImm is an integer literal.
type IntImm struct {
	Value int64
}

// FloatImm is a floating-point literal. The congruence analysis has nothing
// to say about float-typed expressions; feeding one to the analyzer is a
// domain error.
type FloatImm struct {
	Value float64
}

// Cast converts Value from one numeric type to another. The target width and
// signedness are not modeled here; the analyzer treats every Cast the same
// way regardless (see pkg/congruence).
type Cast struct {
	Value Node
}

// Var is a reference to a named variable, resolved against whatever scope
// the analyzer was given.
type Var struct {
	Name string
}

func (IntImm) irNode()   {}
func (FloatImm) irNode() {}
func (Cast) irNode()     {}
func (Var) irNode()      {}
