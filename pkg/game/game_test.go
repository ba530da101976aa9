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
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/consensys/go-blackbox/pkg/config"
	"github.com/consensys/go-blackbox/pkg/expr/eval"
	"github.com/consensys/go-blackbox/pkg/function"
	"github.com/consensys/go-blackbox/pkg/util/assert"
)

func Test_Game_01(t *testing.T) {
	game := newGame(t, "(x, y) x*y + 1")
	//
	assert.Equal(t, uint(2), game.Arity())
	checkQuery(t, game, "alice", "(2, 3)", 7)
	checkQuery(t, game, "alice", "(0 -1.5)", 1)
	//
	history, ok := game.History("alice")
	assert.True(t, ok, "expected history for alice")
	assert.Equal(t, 2, len(history.Queries))
	assert.Equal(t, []float64{0, -1.5}, history.Queries[1].Args)
}

func Test_Game_02(t *testing.T) {
	var derr *eval.DomainError
	//
	game := newGame(t, "(x) 1/x")
	_, err := game.Query("alice", "(0)")
	assert.True(t, errors.As(err, &derr), "expected domain error, got %v", err)
	// Failed moves are not recorded
	_, ok := game.History("alice")
	assert.False(t, ok, "expected no history")
	//
	var rerr *function.ResolveError
	_, err = game.Query("alice", "(1, 2)")
	assert.True(t, errors.As(err, &rerr), "expected resolve error, got %v", err)
}

func Test_Game_03(t *testing.T) {
	game := newGame(t, "(x) 2*x+1")
	//
	checkGuess(t, game, "bob", "(3) 7", true)
	checkGuess(t, game, "bob", "(3) 7.0000000001", true)
	checkGuess(t, game, "bob", "(3) 8", false)
	//
	_, err := game.Guess("bob", "(3)")
	assert.True(t, errors.Is(err, ErrMissingValue), "expected missing value, got %v", err)
	//
	var verr *InvalidValueError
	_, err = game.Guess("bob", "(3) seven")
	assert.True(t, errors.As(err, &verr), "expected invalid value, got %v", err)
}

func Test_Game_04(t *testing.T) {
	game := newGame(t, "(x) (x+1)*(x-1)")
	//
	checkSubmit(t, game, "carol", "(x) x*x+1", false)
	checkSubmit(t, game, "carol", "(y) y*y-1", true)
	// Winners cannot play on
	_, err := game.Query("carol", "(1)")
	assert.True(t, errors.Is(err, ErrAlreadyWon), "expected already won, got %v", err)
	_, err = game.Submit("carol", "(x) x*x-1")
	assert.True(t, errors.Is(err, ErrAlreadyWon), "expected already won, got %v", err)
	//
	assert.Equal(t, []string{"carol"}, game.Winners())
}

func Test_Game_05(t *testing.T) {
	game := newGame(t, "(x, y) x+y")
	// Wrong arity for submission
	_, err := game.Submit("dave", "(x) x")
	assert.Error(t, err)
	//
	_, ok := game.History("dave")
	assert.False(t, ok, "expected no history")
}

func Test_Leaderboard_01(t *testing.T) {
	game := newGame(t, "(x) x*x")
	// alice: 2 queries + 1 wrong submission + correct = 3
	checkQuery(t, game, "alice", "(1)", 1)
	checkQuery(t, game, "alice", "(2)", 4)
	checkSubmit(t, game, "alice", "(x) x", false)
	checkSubmit(t, game, "alice", "(x) x*x", true)
	// bob: 1 query + 1 wrong guess + 1 correct guess = 3
	checkQuery(t, game, "bob", "(3)", 9)
	checkGuess(t, game, "bob", "(4) 15", false)
	checkGuess(t, game, "bob", "(4) 16", true)
	// eve: 4 queries = 4
	for i := 1; i <= 4; i++ {
		checkQuery(t, game, "eve", fmt.Sprintf("(%d)", i), float64(i*i))
	}
	//
	board := game.Leaderboard()
	assert.Equal(t, 3, len(board))
	checkStanding(t, board[0], "eve", 4)
	checkStanding(t, board[1], "alice", 3)
	checkStanding(t, board[2], "bob", 3)
	//
	assert.True(t, board[1].Won, "expected alice to have won")
	assert.Equal(t, uint(1), board[2].WrongGuesses)
	assert.Equal(t, uint(1), board[2].CorrectGuesses)
	assert.Equal(t, uint(1), board[1].WrongSubmissions)
}

func Test_Leaderboard_02(t *testing.T) {
	var (
		cfg = config.Default()
		fn  = resolve(t, "(x) x")
	)
	//
	cfg.Points.Query = 5
	game := New(fn, cfg)
	checkQuery(t, game, "alice", "(1)", 1)
	//
	checkStanding(t, game.Leaderboard()[0], "alice", 5)
}

func Test_Concurrent_01(t *testing.T) {
	var (
		game = newGame(t, "(x) 3*x")
		wg   sync.WaitGroup
	)
	//
	for i := 0; i < 8; i++ {
		wg.Add(1)
		//
		go func(name string) {
			defer wg.Done()
			//
			for j := 0; j < 10; j++ {
				if _, err := game.Query(name, fmt.Sprintf("(%d)", j)); err != nil {
					t.Error(err)
				}
			}
		}(fmt.Sprintf("player%d", i))
	}
	//
	wg.Wait()
	//
	for _, standing := range game.Leaderboard() {
		assert.Equal(t, uint(10), standing.Points)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func resolve(t *testing.T, text string) function.Function {
	t.Helper()
	//
	fn, err := function.Resolve(text, -1)
	if err != nil {
		t.Fatalf("resolving %q: %v", text, err)
	}
	//
	return fn
}

func newGame(t *testing.T, secret string) *Game {
	return New(resolve(t, secret), config.Default())
}

func checkQuery(t *testing.T, game *Game, name string, call string, expected float64) {
	t.Helper()
	//
	result, err := game.Query(name, call)
	assert.NoError(t, err)
	assert.Approx(t, expected, result, 1e-12)
}

func checkGuess(t *testing.T, game *Game, name string, call string, expected bool) {
	t.Helper()
	//
	correct, err := game.Guess(name, call)
	assert.NoError(t, err)
	assert.Equal(t, expected, correct)
}

func checkSubmit(t *testing.T, game *Game, name string, text string, expected bool) {
	t.Helper()
	//
	correct, err := game.Submit(name, text)
	assert.NoError(t, err)
	assert.Equal(t, expected, correct)
}

func checkStanding(t *testing.T, standing Standing, name string, points uint) {
	t.Helper()
	//
	assert.Equal(t, name, standing.Name)
	assert.Equal(t, points, standing.Points)
}
