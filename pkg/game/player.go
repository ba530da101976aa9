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
package game

import (
	"github.com/consensys/go-blackbox/pkg/config"
	"github.com/consensys/go-blackbox/pkg/function"
)

// Query records a function value revealed to a player.
type Query struct {
	Args   []float64
	Result float64
}

// Guess records an attempt by a player to predict a function value.
type Guess struct {
	Args    []float64
	Value   float64
	Result  float64
	Correct bool
}

// Submission records an attempt by a player to identify the secret function.
type Submission struct {
	Function function.Function
	Correct  bool
}

// Player holds the history of moves made by a given player.
type Player struct {
	Name        string
	Queries     []Query
	Guesses     []Guess
	Submissions []Submission
}

// Won checks whether this player has made a correct submission.
func (p *Player) Won() bool {
	for _, s := range p.Submissions {
		if s.Correct {
			return true
		}
	}
	//
	return false
}

// Standing summarises the moves of a player, as shown on the leaderboard.
type Standing struct {
	Name               string
	Queries            uint
	CorrectGuesses     uint
	WrongGuesses       uint
	CorrectSubmissions uint
	WrongSubmissions   uint
	Points             uint
	Won                bool
}

// Standing computes the standing of this player under a given points scheme.
func (p *Player) Standing(points config.Points) Standing {
	var s = Standing{Name: p.Name, Queries: uint(len(p.Queries))}
	//
	for _, g := range p.Guesses {
		if g.Correct {
			s.CorrectGuesses++
		} else {
			s.WrongGuesses++
		}
	}
	//
	for _, sub := range p.Submissions {
		if sub.Correct {
			s.CorrectSubmissions++
		} else {
			s.WrongSubmissions++
		}
	}
	//
	s.Won = s.CorrectSubmissions > 0
	s.Points = points.Query*s.Queries +
		points.CorrectGuess*s.CorrectGuesses + points.WrongGuess*s.WrongGuesses +
		points.CorrectSubmit*s.CorrectSubmissions + points.WrongSubmit*s.WrongSubmissions
	//
	return s
}

// Clone this player, such that the copy shares no mutable state.
func (p *Player) clone() Player {
	var c = Player{Name: p.Name}
	//
	c.Queries = append(c.Queries, p.Queries...)
	c.Guesses = append(c.Guesses, p.Guesses...)
	c.Submissions = append(c.Submissions, p.Submissions...)
	//
	return c
}
