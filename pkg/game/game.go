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
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/consensys/go-blackbox/pkg/config"
	"github.com/consensys/go-blackbox/pkg/expr/parser"
	"github.com/consensys/go-blackbox/pkg/function"
	"github.com/consensys/go-blackbox/pkg/ratfn"
	log "github.com/sirupsen/logrus"
)

// ErrAlreadyWon signals that a player who has already won attempted another
// move.
var ErrAlreadyWon = errors.New("you have already won the game")

// ErrMissingValue signals a guess without a guess value.
var ErrMissingValue = errors.New("no guess value identified")

// InvalidValueError signals a guess value which is not a numeral.
type InvalidValueError struct {
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid guess value `%s` identified.\nYour guess value must be numeric only.", e.Value)
}

// Game is a single round of the guessing game, where players try to identify
// a secret function by querying its values at chosen points.  A game is safe
// for concurrent use by many players.
type Game struct {
	mux     sync.Mutex
	secret  function.Function
	oracle  ratfn.Oracle
	points  config.Points
	players map[string]*Player
}

// New constructs a game around a given secret function, using the tolerance,
// term bound and points scheme of a given configuration.
func New(secret function.Function, cfg config.Config) *Game {
	oracle := ratfn.Oracle{Arity: secret.Arity(), Tolerance: cfg.Tolerance, MaxTerms: cfg.MaxTerms}
	//
	log.Debugf("new game with function on %d variable(s)", secret.Arity())
	//
	return &Game{secret: secret, oracle: oracle, points: cfg.Points, players: make(map[string]*Player)}
}

// Arity returns the number of parameters of the secret function.
func (g *Game) Arity() uint {
	return g.secret.Arity()
}

// Query reveals the value of the secret function at a given point, written as
// an argument list such as "(1, 2)".
func (g *Game) Query(name string, call string) (float64, error) {
	g.mux.Lock()
	defer g.mux.Unlock()
	//
	if err := g.checkNotWon(name); err != nil {
		return 0, err
	}
	//
	args, _, err := function.ResolveCall(call, g.Arity())
	if err != nil {
		return 0, err
	}
	//
	result, err := g.secret.Eval(args)
	if err != nil {
		return 0, err
	}
	//
	player := g.player(name)
	player.Queries = append(player.Queries, Query{args, result})
	//
	log.Debugf("%s queried %v = %g", name, args, result)
	//
	return result, nil
}

// Guess checks a predicted value of the secret function at a given point,
// written as an argument list followed by the value, such as "(1, 2) 3.5".
func (g *Game) Guess(name string, call string) (bool, error) {
	g.mux.Lock()
	defer g.mux.Unlock()
	//
	if err := g.checkNotWon(name); err != nil {
		return false, err
	}
	//
	args, text, err := function.ResolveCall(call, g.Arity())
	if err != nil {
		return false, err
	} else if text == "" {
		return false, ErrMissingValue
	} else if !parser.IsNumeral(text) {
		return false, &InvalidValueError{text}
	}
	//
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return false, &InvalidValueError{text}
	}
	//
	result, err := g.secret.Eval(args)
	if err != nil {
		return false, err
	}
	//
	correct := g.oracle.Tolerance.Equal(value, result)
	player := g.player(name)
	player.Guesses = append(player.Guesses, Guess{args, value, result, correct})
	//
	log.Debugf("%s guessed %v = %g (correct: %t)", name, args, value, correct)
	//
	return correct, nil
}

// Submit checks whether a given function, such as "(a, b) a*b", is identical
// to the secret function.  A correct submission wins the game.
func (g *Game) Submit(name string, text string) (bool, error) {
	g.mux.Lock()
	defer g.mux.Unlock()
	//
	if err := g.checkNotWon(name); err != nil {
		return false, err
	}
	//
	fn, err := function.Resolve(text, int(g.Arity()))
	if err != nil {
		return false, err
	}
	//
	correct, err := fn.Identical(g.secret, g.oracle)
	if err != nil {
		return false, err
	}
	//
	player := g.player(name)
	player.Submissions = append(player.Submissions, Submission{fn, correct})
	//
	if correct {
		log.Infof("%s won the game", name)
	} else {
		log.Debugf("%s submitted %s (wrong)", name, fn)
	}
	//
	return correct, nil
}

// History returns a copy of the moves made by a given player, or false if the
// player has made no successful moves.
func (g *Game) History(name string) (Player, bool) {
	g.mux.Lock()
	defer g.mux.Unlock()
	//
	if player, ok := g.players[name]; ok {
		return player.clone(), true
	}
	//
	return Player{}, false
}

// Leaderboard returns the standings of all players, ordered by points
// (highest first), and then by name.
func (g *Game) Leaderboard() []Standing {
	g.mux.Lock()
	defer g.mux.Unlock()
	//
	standings := make([]Standing, 0, len(g.players))
	//
	for _, player := range g.players {
		standings = append(standings, player.Standing(g.points))
	}
	//
	slices.SortFunc(standings, func(l, r Standing) int {
		if c := cmp.Compare(r.Points, l.Points); c != 0 {
			return c
		}
		//
		return cmp.Compare(l.Name, r.Name)
	})
	//
	return standings
}

// Winners returns the names of all players who have won, in sorted order.
func (g *Game) Winners() []string {
	g.mux.Lock()
	defer g.mux.Unlock()
	//
	var winners []string
	//
	for name, player := range g.players {
		if player.Won() {
			winners = append(winners, name)
		}
	}
	//
	slices.Sort(winners)
	//
	return winners
}

// Secret returns the secret function, which is typically revealed when the
// game finishes.
func (g *Game) Secret() function.Function {
	return g.secret
}

func (g *Game) checkNotWon(name string) error {
	if player, ok := g.players[name]; ok && player.Won() {
		return ErrAlreadyWon
	}
	//
	return nil
}

// Get the player with a given name, registering them if necessary.
func (g *Game) player(name string) *Player {
	player, ok := g.players[name]
	//
	if !ok {
		player = &Player{Name: name}
		g.players[name] = player
	}
	//
	return player
}
