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
	"bytes"
	"io"
	"os"

	"github.com/consensys/go-blackbox/pkg/util/poly"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Points determines how many points each kind of game move costs.  Lower
// totals are better.
type Points struct {
	Query         uint `yaml:"query"`
	WrongGuess    uint `yaml:"wrong_guess"`
	CorrectGuess  uint `yaml:"correct_guess"`
	WrongSubmit   uint `yaml:"wrong_submit"`
	CorrectSubmit uint `yaml:"correct_submit"`
}

// DefaultPoints charges one point per query, two per wrong guess and one per
// wrong submission.
var DefaultPoints = Points{Query: 1, WrongGuess: 2, CorrectGuess: 0, WrongSubmit: 1, CorrectSubmit: 0}

// Config holds the tunable parameters of the engine and the game.
type Config struct {
	// Tolerance used when comparing coefficients of canonical forms, and when
	// judging guesses.
	Tolerance poly.Tolerance `yaml:"tolerance"`
	// MaxTerms bounds the size of any intermediate polynomial arising during
	// canonicalization (0 = unbounded).
	MaxTerms uint `yaml:"max_terms"`
	// Points charged for game moves.
	Points Points `yaml:"points"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{poly.DefaultTolerance, 0, DefaultPoints}
}

// Load a configuration from a YAML file.  Any field omitted from the file
// keeps its default value.  Unknown fields are rejected.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", filename)
	}
	//
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading config %s", filename)
	}
	//
	return cfg, nil
}

// Parse a configuration from the contents of a YAML document, and validate it.
func Parse(data []byte) (Config, error) {
	var (
		cfg     = Default()
		decoder = yaml.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.KnownFields(true)
	// An empty document leaves everything at the defaults
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "malformed yaml")
	}
	//
	return cfg, cfg.Validate()
}

// Validate checks that the configuration makes sense, reporting every problem
// found.
func (p Config) Validate() error {
	var err error
	//
	if p.Tolerance.Absolute < 0 {
		err = multierr.Append(err, errors.Errorf("negative absolute tolerance %g", p.Tolerance.Absolute))
	}
	//
	if p.Tolerance.Relative < 0 {
		err = multierr.Append(err, errors.Errorf("negative relative tolerance %g", p.Tolerance.Relative))
	}
	//
	if p.Tolerance.Absolute == 0 && p.Tolerance.Relative == 0 {
		err = multierr.Append(err, errors.New("tolerance must be positive (absolute or relative)"))
	}
	//
	if p.Points.Query == 0 {
		err = multierr.Append(err, errors.New("queries must cost at least one point"))
	}
	//
	if p.Points.CorrectGuess > p.Points.WrongGuess {
		err = multierr.Append(err, errors.Errorf("correct guesses (%d) cost more than wrong ones (%d)",
			p.Points.CorrectGuess, p.Points.WrongGuess))
	}
	//
	if p.Points.CorrectSubmit > p.Points.WrongSubmit {
		err = multierr.Append(err, errors.Errorf("correct submissions (%d) cost more than wrong ones (%d)",
			p.Points.CorrectSubmit, p.Points.WrongSubmit))
	}
	//
	return err
}
