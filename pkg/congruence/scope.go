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

// binding is one entry in the Scope stack.
type binding struct {
	name  string
	value ModulusRemainder
}

// Scope is a last-in-first-out stack of name -> ModulusRemainder bindings.
// Lookup returns the top-most binding for a name, giving lexical shadowing
// for free: a vector of (name, value) pairs scanned from the top, rather
// than a persistent map, because the discipline here is strictly
// push-on-enter / pop-on-exit of a single Let at a time.
type Scope struct {
	bindings []binding
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// NewScopeFrom seeds a scope with a caller-provided snapshot. The snapshot
// is copied in; mutating the returned Scope never affects the caller's map.
func NewScopeFrom(seed map[string]ModulusRemainder) *Scope {
	s := &Scope{bindings: make([]binding, 0, len(seed))}
	for name, value := range seed {
		s.bindings = append(s.bindings, binding{name: name, value: value})
	}

	return s
}

// Push adds a new binding for name, shadowing any existing binding of the
// same name until the matching Pop.
func (s *Scope) Push(name string, value ModulusRemainder) {
	s.bindings = append(s.bindings, binding{name: name, value: value})
}

// Pop removes the most recently pushed binding. The caller must pass the
// same name it pushed; a mismatch indicates the push/pop discipline has been
// violated somewhere in the analyzer.
func (s *Scope) Pop(name string) {
	n := len(s.bindings)
	if n == 0 || s.bindings[n-1].name != name {
		panic(InternalErrorf("scope pop/push mismatch for %q", name))
	}

	s.bindings = s.bindings[:n-1]
}

// Lookup returns the top-most binding for name, if any.
func (s *Scope) Lookup(name string) (ModulusRemainder, bool) {
	for i := len(s.bindings) - 1; i >= 0; i-- {
		if s.bindings[i].name == name {
			return s.bindings[i].value, true
		}
	}

	return ModulusRemainder{}, false
}
