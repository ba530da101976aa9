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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-blackbox/pkg/function"
	"github.com/consensys/go-blackbox/pkg/game"
	"github.com/consensys/go-blackbox/pkg/util/termio"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [flags] function",
	Short: "play the guessing game with a secret function.",
	Long: `Host an interactive game around a given secret function.  Players
	take turns at the prompt to query values of the function, guess values,
	and finally submit a function they believe is identical to the secret.
	Each query or wrong answer costs points.  Type "help" for commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := readConfig(cmd)
		//
		secret, err := function.Resolve(args[0], -1)
		if err != nil {
			exitWithError(err)
		}
		//
		console, err := termio.NewConsole("> ")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		s := newSession(console, game.New(secret, cfg), GetString(cmd, "player"))
		err = s.run()
		// Restore terminal before reporting any error
		if rerr := console.Restore(); rerr != nil {
			fmt.Println(rerr)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

const playHelp = `Commands:
  query (<arguments>)                  query the function value at a point
  guess (<arguments>) <value>          guess the function value at a point
  submit (<parameters>) <expression>   submit a function
  player <name>                        switch to another player
  history                              list your past moves
  leaderboard                          show the game points leaderboard
  quit                                 finish the game
`

// A session connects a console to a game, with the moves being made on behalf
// of the current player.
type session struct {
	console *termio.Console
	game    *game.Game
	player  string
}

func newSession(console *termio.Console, g *game.Game, player string) *session {
	return &session{console, g, player}
}

// Run the session until the input is exhausted or the game is finished.
func (s *session) run() error {
	s.console.Printf("A new game has begun, with a function on `%d` variable(s).\n", s.game.Arity())
	//
	for {
		line, err := s.console.ReadLine()
		finished := errors.Is(err, io.EOF) || errors.Is(err, termio.ErrInterrupted)
		//
		if err != nil && !finished {
			return err
		} else if line != "" && !s.dispatch(line) {
			break
		} else if finished {
			break
		}
	}
	//
	s.finish()
	//
	return nil
}

// Dispatch a single line of input, returning false when the game is over.
func (s *session) dispatch(line string) bool {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	//
	switch command {
	case "":
		// ignore blank lines
	case "query", "q":
		if result, err := s.game.Query(s.player, rest); err != nil {
			s.report(err)
		} else {
			s.console.Printf("Your query result is `%s`.\n", formatFloat(result))
		}
	case "guess", "g":
		if correct, err := s.game.Guess(s.player, rest); err != nil {
			s.report(err)
		} else {
			s.console.Printf("Your guess value is %s\n", s.verdict(correct, "correct!", "wrong."))
		}
	case "submit", "s":
		if correct, err := s.game.Submit(s.player, rest); err != nil {
			s.report(err)
		} else {
			s.console.Printf("Your submission is %s\n", s.verdict(correct, "correct, you win the game!", "wrong."))
		}
	case "player", "p":
		if rest == "" {
			s.console.Printf("The current player is `%s`.\n", s.player)
		} else {
			s.player = rest
		}
	case "history", "h":
		s.history()
	case "leaderboard", "lb":
		s.leaderboard()
	case "help":
		s.console.Printf("%s", playHelp)
	case "quit", "exit":
		return false
	default:
		s.console.Printf("Unknown command `%s` (type \"help\" for commands).\n", command)
	}
	//
	return true
}

func (s *session) finish() {
	s.console.Printf("The game has finished; the function was `%s`.\n", s.game.Secret())
	s.leaderboard()
}

func (s *session) history() {
	player, ok := s.game.History(s.player)
	if !ok {
		s.console.Printf("You have made no moves yet.\n")
		return
	}
	//
	queries := termio.NewTablePrinter("Arguments", "Result")
	for _, q := range player.Queries {
		queries.AddRow(formatArgs(q.Args), formatFloat(q.Result))
	}
	//
	guesses := termio.NewTablePrinter("Arguments", "Value", "")
	for _, g := range player.Guesses {
		guesses.AddRow(formatArgs(g.Args), formatFloat(g.Value), mark(g.Correct))
	}
	//
	submissions := termio.NewTablePrinter("Function", "")
	for _, sub := range player.Submissions {
		submissions.AddRow(sub.Function.String(), mark(sub.Correct))
	}
	//
	s.console.Printf("Your past queries:\n")
	queries.Print(s.console.Writer())
	s.console.Printf("Your past guesses:\n")
	guesses.Print(s.console.Writer())
	s.console.Printf("Your past submissions:\n")
	submissions.Print(s.console.Writer())
}

func (s *session) leaderboard() {
	table := termio.NewTablePrinter("", "Queries", "Guesses", "Submissions", "Points")
	//
	for _, st := range s.game.Leaderboard() {
		name := st.Name
		if st.Won {
			name = fmt.Sprintf("%s (won)", name)
		}
		//
		table.AddRow(name, strconv.FormatUint(uint64(st.Queries), 10),
			fmt.Sprintf("%d / %d", st.CorrectGuesses, st.WrongGuesses),
			fmt.Sprintf("%d / %d", st.CorrectSubmissions, st.WrongSubmissions),
			strconv.FormatUint(uint64(st.Points), 10))
	}
	//
	s.console.Printf("Game points leaderboard:\n")
	table.Print(s.console.Writer())
}

func (s *session) verdict(correct bool, yes string, no string) string {
	if correct {
		return s.console.Styled(termio.ColourAnsiEscape(termio.TERM_GREEN), yes)
	}
	//
	return s.console.Styled(termio.ColourAnsiEscape(termio.TERM_RED), no)
}

func (s *session) report(err error) {
	s.console.Printf("%s\n", s.console.Styled(termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW), formatError(err)))
}

func formatArgs(args []float64) string {
	strs := make([]string, len(args))
	//
	for i, arg := range args {
		strs[i] = formatFloat(arg)
	}
	//
	return strings.Join(strs, ", ")
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

func mark(correct bool) string {
	if correct {
		return "yes"
	}
	//
	return "no"
}

func init() {
	playCmd.Flags().StringP("player", "p", "player", "name of the initial player")
	rootCmd.AddCommand(playCmd)
}
