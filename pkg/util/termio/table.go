package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter lays out rows of text in aligned columns, with a header row
// separated from the body.
type TablePrinter struct {
	widths []int
	header []string
	rows   [][]string
}

// NewTablePrinter constructs an empty table with the given column headings.
func NewTablePrinter(header ...string) *TablePrinter {
	p := &TablePrinter{widths: make([]int, len(header)), header: header}
	p.updateWidths(header)
	//
	return p
}

// AddRow appends a row to this table, which must have one value per column.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	p.updateWidths(vals)
	p.rows = append(p.rows, vals)
}

// Height returns the number of rows (excluding the header).
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Print this table to a given writer.
func (p *TablePrinter) Print(out io.Writer) {
	p.printRow(out, p.header)
	//
	for j, width := range p.widths {
		if j > 0 {
			fmt.Fprint(out, "-+-")
		}
		//
		fmt.Fprint(out, strings.Repeat("-", width))
	}
	//
	fmt.Fprintln(out)
	//
	for _, row := range p.rows {
		p.printRow(out, row)
	}
}

func (p *TablePrinter) printRow(out io.Writer, row []string) {
	for j, col := range row {
		if j > 0 {
			fmt.Fprint(out, " | ")
		}
		// Left-align first column, right-align the rest
		padding := strings.Repeat(" ", p.widths[j]-utf8.RuneCountInString(col))
		if j == 0 {
			fmt.Fprint(out, col, padding)
		} else {
			fmt.Fprint(out, padding, col)
		}
	}
	//
	fmt.Fprintln(out)
}

func (p *TablePrinter) updateWidths(vals []string) {
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], utf8.RuneCountInString(val))
	}
}
