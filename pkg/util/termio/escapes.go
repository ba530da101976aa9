package termio

import (
	"fmt"
	"strings"
)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape is a sequence of SGR (Select Graphic Rendition) parameters, such
// as bold or a foreground colour.
type AnsiEscape struct {
	params []string
}

// BoldAnsiEscape constructs an escape for bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"1"}}
}

// ColourAnsiEscape constructs an escape for a given foreground colour.
func ColourAnsiEscape(col uint) AnsiEscape {
	return AnsiEscape{nil}.FgColour(col)
}

// FgColour extends this escape with a foreground colour.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	params := append(p.params[:len(p.params):len(p.params)], fmt.Sprintf("%d", 30+col))
	//
	return AnsiEscape{params}
}

// Build the escape sequence.
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("\033[%sm", strings.Join(p.params, ";"))
}

// Wrap some text in this escape, resetting afterwards.
func (p AnsiEscape) Wrap(text string) string {
	return fmt.Sprintf("%s%s\033[0m", p.Build(), text)
}
