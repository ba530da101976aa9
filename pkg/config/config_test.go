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
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-blackbox/pkg/util/assert"
	"github.com/consensys/go-blackbox/pkg/util/poly"
	"go.uber.org/multierr"
)

func Test_Config_01(t *testing.T) {
	cfg, err := Parse([]byte(""))
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Config_02(t *testing.T) {
	cfg, err := Parse([]byte("tolerance:\n  absolute: 1e-6\nmax_terms: 500\n"))
	assert.NoError(t, err)
	// Omitted fields keep their defaults
	assert.Equal(t, poly.Tolerance{Absolute: 1e-6, Relative: 1e-9}, cfg.Tolerance)
	assert.Equal(t, uint(500), cfg.MaxTerms)
	assert.Equal(t, DefaultPoints, cfg.Points)
}

func Test_Config_03(t *testing.T) {
	cfg, err := Parse([]byte("points:\n  query: 3\n  wrong_guess: 5\n"))
	assert.NoError(t, err)
	assert.Equal(t, uint(3), cfg.Points.Query)
	assert.Equal(t, uint(5), cfg.Points.WrongGuess)
	assert.Equal(t, uint(1), cfg.Points.WrongSubmit)
}

func Test_Config_04(t *testing.T) {
	_, err := Parse([]byte("tolerances: 1\n"))
	assert.Error(t, err)
	//
	_, err = Parse([]byte("max_terms: [1, 2\n"))
	assert.Error(t, err)
}

func Test_Config_05(t *testing.T) {
	// All problems are reported, not just the first
	_, err := Parse([]byte("tolerance:\n  absolute: -1\n  relative: -1\npoints:\n  query: 0\n"))
	assert.Error(t, err)
	assert.Equal(t, 3, len(multierr.Errors(err)))
}

func Test_Config_06(t *testing.T) {
	err := Config{Tolerance: poly.Tolerance{}, Points: DefaultPoints}.Validate()
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "tolerance must be positive"), "unexpected error %s", err)
}

func Test_Load_01(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "blackbox.yaml")
	//
	assert.NoError(t, os.WriteFile(filename, []byte("max_terms: 10\n"), 0o600))
	//
	cfg, err := Load(filename)
	assert.NoError(t, err)
	assert.Equal(t, uint(10), cfg.MaxTerms)
}

func Test_Load_02(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "missing.yaml")
	//
	_, err := Load(filename)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), filename), "error %s does not name the file", err)
}
