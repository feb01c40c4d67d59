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
package ir

// Load reads a scalar value from a named buffer at Index. It is opaque to
// the congruence analysis: nothing is known about the value read.
type Load struct {
	Name  string
	Index Node
}

// Call invokes a named, opaque function (an intrinsic, an extern, or a
// user-defined function) with Args. Like Load, its result carries no
// congruence information.
type Call struct {
	Name string
	Args []Node
}

func (Load) irNode() {}
func (Call) irNode() {}
