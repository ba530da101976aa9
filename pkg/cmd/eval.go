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

var evalCmd = &cobra.Command{
	Use:   "eval [flags] function arguments",
	Short: "evaluate a function at a given point.",
	Long: `Evaluate a given function at a given point.  For example,
	"blackbox eval '(x, y) x*y+1' '(2, 3)'" gives 7.  The canonical
	(rational) form of the function can also be printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		fn, err := function.Resolve(args[0], -1)
		if err != nil {
			exitWithError(err)
		}
		// Print canonical form (if requested)
		if GetFlag(cmd, "canonical") {
			printCanonical(fn, readConfig(cmd).MaxTerms)
		}
		//
		point, _, err := function.ResolveCall(args[1], fn.Arity())
		if err != nil {
			exitWithError(err)
		}
		//
		result, err := fn.Eval(point)
		if err != nil {
			exitWithError(err)
		}
		//
		fmt.Println(formatFloat(result))
	},
}

func printCanonical(fn function.Function, maxTerms uint) {
	canonicalizer := ratfn.Canonicalizer{Arity: fn.Arity(), MaxTerms: maxTerms}
	//
	r, err := canonicalizer.Canonicalize(fn.Tree)
	if err != nil {
		exitWithError(err)
	}
	//
	fmt.Println(ratfn.String(r, fn.Variable))
}

func init() {
	evalCmd.Flags().Bool("canonical", false, "print the canonical form of the function")
	rootCmd.AddCommand(evalCmd)
}
