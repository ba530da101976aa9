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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-blackbox/pkg/config"
	"github.com/consensys/go-blackbox/pkg/expr/eval"
	"github.com/consensys/go-blackbox/pkg/ratfn"
	"github.com/consensys/go-blackbox/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetFloat gets an expected float flag, or exits if an error arises.
func GetFloat(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the configuration, starting from the configuration file (if
// given) or the defaults, and then applying any flags explicitly set.
func readConfig(cmd *cobra.Command) config.Config {
	var (
		cfg = config.Default()
		err error
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		if cfg, err = config.Load(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if cmd.Flags().Changed("abs-tol") {
		cfg.Tolerance.Absolute = GetFloat(cmd, "abs-tol")
	}
	//
	if cmd.Flags().Changed("rel-tol") {
		cfg.Tolerance.Relative = GetFloat(cmd, "rel-tol")
	}
	//
	if cmd.Flags().Changed("max-terms") {
		cfg.MaxTerms = GetUint(cmd, "max-terms")
	}
	// Flags may have invalidated the configuration
	if err = cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

// Report an error and exit.  Evaluation failures exit with a different code
// from malformed inputs.
func exitWithError(err error) {
	var (
		derr *eval.DomainError
		lerr *ratfn.LimitError
	)
	//
	fmt.Println(formatError(err))
	//
	if errors.As(err, &derr) || errors.As(err, &lerr) {
		os.Exit(4)
	}
	//
	os.Exit(2)
}

// Format an error for display, highlighting the offending text of a syntax
// error.
func formatError(err error) string {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		return formatSyntaxError(serr)
	}
	//
	return err.Error()
}

// Format a syntax error with appropriate highlighting.  Expressions occupy a
// single line, so the highlight is simply placed beneath it.
func formatSyntaxError(err *source.SyntaxError) string {
	var (
		builder strings.Builder
		span    = err.Span()
		line    = string(err.SourceFile().Contents())
	)
	// Print error
	builder.WriteString(err.Message())
	builder.WriteString("\n")
	// Print line
	builder.WriteString(line)
	builder.WriteString("\n")
	// Print indent
	builder.WriteString(strings.Repeat(" ", span.Start()))
	// Print highlight (at least one caret, even for end-of-input)
	builder.WriteString(strings.Repeat("^", max(1, span.Length())))
	//
	return builder.String()
}
