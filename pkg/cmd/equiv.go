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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-blackbox/pkg/function"
	"github.com/consensys/go-blackbox/pkg/ratfn"
	"github.com/spf13/cobra"
)

var equivCmd = &cobra.Command{
	Use:   "equiv [flags] function function",
	Short: "check whether two functions are identical.",
	Long: `Check whether two functions of the same arity are identical, in
	the sense that they denote the same rational function.  Parameters are
	matched by position, not by name.  The exit code is 0 when the functions
	are identical, and 1 otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := readConfig(cmd)
		//
		lhs, err := function.Resolve(args[0], -1)
		if err != nil {
			exitWithError(err)
		}
		//
		rhs, err := function.Resolve(args[1], int(lhs.Arity()))
		if err != nil {
			exitWithError(err)
		}
		//
		oracle := ratfn.Oracle{Arity: lhs.Arity(), Tolerance: cfg.Tolerance, MaxTerms: cfg.MaxTerms}
		//
		identical, err := lhs.Identical(rhs, oracle)
		if err != nil {
			exitWithError(err)
		} else if !identical {
			fmt.Println("not identical")
			os.Exit(1)
		}
		//
		fmt.Println("identical")
	},
}

func init() {
	rootCmd.AddCommand(equivCmd)
}
