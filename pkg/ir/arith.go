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

// Add is the sum of two integer-typed expressions.
type Add struct{ A, B Node }

// Sub is the difference of two integer-typed expressions.
type Sub struct{ A, B Node }

// Mul is the product of two integer-typed expressions.
type Mul struct{ A, B Node }

// Div is truncating integer division.
type Div struct{ A, B Node }

// Mod is the remainder of truncating integer division.
type Mod struct{ A, B Node }

// Min takes the lesser of two integer-typed expressions.
type Min struct{ A, B Node }

// Max takes the greater of two integer-typed expressions.
type Max struct{ A, B Node }

func (Add) irNode() {}
func (Sub) irNode() {}
func (Mul) irNode() {}
func (Div) irNode() {}
func (Mod) irNode() {}
func (Min) irNode() {}
func (Max) irNode() {}
