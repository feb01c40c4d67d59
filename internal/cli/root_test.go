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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfTestCmdSucceeds(t *testing.T) {
	root := NewRootCmd()

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"selftest"})

	assert.NoError(t, root.Execute())
}

func TestReduceCmdSucceeds(t *testing.T) {
	root := NewRootCmd()

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"reduce", "--modulus", "3"})

	assert.NoError(t, root.Execute())
}

func TestReduceCmdRejectsNonPositiveModulus(t *testing.T) {
	for _, modulus := range []string{"0", "-1"} {
		root := NewRootCmd()

		var out bytes.Buffer

		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs([]string{"reduce", "--modulus", modulus})

		assert.Error(t, root.Execute())
	}
}
