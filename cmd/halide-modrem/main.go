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

// Command halide-modrem is a small front end over pkg/congruence: it exists
// to run the analysis's self-test table outside of `go test`, the same way
// go-corset's cmd/corset wraps its compiler passes in a cobra command tree.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/lhc180/Halide/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("halide-modrem failed")
		os.Exit(1)
	}
}
