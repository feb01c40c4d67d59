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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lhc180/Halide/pkg/congruence"
)

func newSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Build the seed acceptance expressions and check their (modulus, remainder)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := congruence.SelfTest(); err != nil {
				log.WithError(err).Error("modulus_remainder self-test failed")
				return err
			}

			log.Info("modulus_remainder self-test passed")

			return nil
		},
	}
}
