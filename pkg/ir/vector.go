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

// Ramp constructs a vector of Lanes values starting at Base and increasing by
// Stride each lane. Vector-typed nodes are outside the analysis's domain.
type Ramp struct {
	Base, Stride Node
	Lanes        int
}

// Broadcast replicates Value across Lanes vector lanes.
type Broadcast struct {
	Value Node
	Lanes int
}

func (Ramp) irNode()      {}
func (Broadcast) irNode() {}
