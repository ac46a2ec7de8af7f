// seehuhn.de/go/text2pdf - convert plain text files to PDF
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package layout splits a plain text byte stream into pages of lines,
// following the conventions of line printers.
//
// Tabs are expanded to spaces, a carriage return which is not followed by
// a newline starts a new pass over the same line (overstrike), and form
// feeds can be used to force page breaks.  The bytes of every line are
// escaped so that they can be used as the body of a PDF literal string.
package layout

import "fmt"

// Options controls the layout of the text.
type Options struct {
	// CharsPerLine is the number of columns after which a line wraps.
	// Zero disables wrapping.
	CharsPerLine int

	// TruncateAt, if positive, is the number of columns after which the
	// remainder of a line is discarded.  Wrapping only happens if
	// CharsPerLine is smaller than TruncateAt.
	TruncateAt int

	// TabWidth is the distance between tab stops.  Values smaller than 1
	// are treated as 1.
	TabWidth int

	// LinesPerPage is the number of lines in each column of a page.
	// Values smaller than 1 are treated as 1.
	LinesPerPage int

	// Columns is the number of text columns per page, 1 or 2.
	Columns int

	// FormFeed, if set, makes form feed characters end the current page.
	// Otherwise form feeds are ignored.
	FormFeed bool

	// StrictEscapes selects how control characters and bytes outside the
	// ASCII range are written.  By default a backslash is inserted before
	// the raw byte.  If StrictEscapes is set, a three-digit octal escape
	// sequence is used instead.
	StrictEscapes bool
}

// Line is one printed line.  Each segment holds the escaped bytes of one
// pass over the line.  A line with more than one segment uses overstrike:
// all segments are printed starting at the same position.
type Line struct {
	Segments [][]byte
}

// Overstrike reports whether the line consists of more than one pass.
func (l Line) Overstrike() bool {
	return len(l.Segments) > 1
}

// EndReason describes why a page ended.
type EndReason int

// These are the possible reasons for a page break.
const (
	EndLines    EndReason = iota + 1 // the line budget was exhausted
	EndFormFeed                      // a form feed was found
	EndInput                         // the input was exhausted
)

func (r EndReason) String() string {
	switch r {
	case EndLines:
		return "lines"
	case EndFormFeed:
		return "form feed"
	case EndInput:
		return "end of input"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}

// Page is one page of output.
type Page struct {
	// Columns holds the lines of each text column.  There is always at
	// least one column, but the columns may be empty.
	Columns [][]Line

	// End gives the reason why the page ended.
	End EndReason
}

// NumLines returns the total number of lines on the page.
func (p *Page) NumLines() int {
	n := 0
	for _, col := range p.Columns {
		n += len(col)
	}
	return n
}
