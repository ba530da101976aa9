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
package termio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted signals that the user ended the prompt with Ctrl-C, or with
// Ctrl-D on an empty line.  An interactive terminal cannot tell these apart
// from its input being closed.
var ErrInterrupted = errors.New("interrupted")

// Console provides a line-oriented prompt.  When attached to an interactive
// terminal, this supports line editing and history.  Otherwise, lines are read
// verbatim (e.g. from a pipe).
type Console struct {
	// file descriptor of the terminal (if any).
	fd int
	// Underlying terminal (if interactive)
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
	// Line reader (if not interactive)
	reader *bufio.Reader
	// Output destination
	out io.Writer
	// Escapes are enabled only on terminals.
	escapes bool
}

// NewConsole constructs a console over stdin / stdout, using an interactive
// terminal when stdin is one.
func NewConsole(prompt string) (*Console, error) {
	fd := int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return NewLineConsole(os.Stdin, os.Stdout), nil
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	console := NewTerminalConsole(screen, prompt)
	console.fd = fd
	console.state = state
	// Size the terminal (if possible) so long lines wrap properly
	if w, h, err := term.GetSize(fd); err == nil {
		_ = console.xterm.SetSize(w, h)
	}
	//
	return console, nil
}

// NewTerminalConsole constructs an interactive console over a given screen,
// which is assumed to be in raw mode already.
func NewTerminalConsole(screen io.ReadWriter, prompt string) *Console {
	xterm := term.NewTerminal(screen, prompt)
	//
	return &Console{-1, xterm, nil, nil, xterm, true}
}

// NewLineConsole constructs a non-interactive console over a given reader and
// writer.  No prompt is shown and no escapes are written.
func NewLineConsole(in io.Reader, out io.Writer) *Console {
	return &Console{-1, nil, nil, bufio.NewReader(in), out, false}
}

// ReadLine reads the next line of input, with surrounding whitespace removed.
// When the input is exhausted this returns io.EOF (or ErrInterrupted for an
// interactive terminal), possibly alongside a final unterminated line which
// should still be processed.
func (c *Console) ReadLine() (string, error) {
	if c.xterm != nil {
		line, err := c.xterm.ReadLine()
		//
		switch {
		case errors.Is(err, term.ErrPasteIndicator):
			// Pasted lines are as good as typed ones
			return strings.TrimSpace(line), nil
		case errors.Is(err, io.EOF):
			return strings.TrimSpace(line), ErrInterrupted
		}
		//
		return strings.TrimSpace(line), err
	}
	//
	line, err := c.reader.ReadString('\n')
	//
	return strings.TrimSpace(line), err
}

// Printf writes formatted output to the console.  In raw mode, line feeds are
// translated by the terminal itself.
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// Styled wraps some text in a given escape, provided escapes are enabled.
func (c *Console) Styled(escape AnsiEscape, text string) string {
	if !c.escapes {
		return text
	}
	//
	return escape.Wrap(text)
}

// Writer returns the underlying output of this console.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Restore terminal to its original state.
func (c *Console) Restore() error {
	if c.state == nil {
		return nil
	}
	//
	return term.Restore(c.fd, c.state)
}
