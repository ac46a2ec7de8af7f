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

package layout

import (
	"bufio"
	"io"
)

// Engine reads text and produces pages.
type Engine struct {
	r   *bufio.Reader
	opt Options

	done bool
	err  error
}

// NewEngine returns an Engine which reads text from r.
func NewEngine(r io.Reader, opt *Options) *Engine {
	e := &Engine{
		r: bufio.NewReader(r),
	}
	if opt != nil {
		e.opt = *opt
	}
	if e.opt.TabWidth < 1 {
		e.opt.TabWidth = 1
	}
	if e.opt.LinesPerPage < 1 {
		e.opt.LinesPerPage = 1
	}
	e.opt.Columns = min(max(e.opt.Columns, 1), 2)
	return e
}

// NextPage returns the next page of text.
// After the last page, io.EOF is returned.
// Every input, even an empty one, produces at least one page.
func (e *Engine) NextPage() (*Page, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.done {
		return nil, io.EOF
	}

	page := &Page{}
	for col := 0; col < e.opt.Columns; col++ {
		lines, end, err := e.readColumn()
		if err != nil {
			e.err = err
			return nil, err
		}
		page.Columns = append(page.Columns, lines)
		page.End = end

		switch end {
		case EndLines:
			// A form feed directly at the end of a full page does not
			// start another page.
			more, err := e.more(true)
			if err != nil {
				e.err = err
				return nil, err
			}
			if !more {
				page.End = EndInput
			}
		case EndFormFeed:
			more, err := e.more(false)
			if err != nil {
				e.err = err
				return nil, err
			}
			if !more {
				page.End = EndInput
			}
		}
		if page.End != EndLines {
			break
		}
	}

	if page.End == EndInput {
		e.done = true
	}
	return page, nil
}

func (e *Engine) readColumn() ([]Line, EndReason, error) {
	var lines []Line
	for len(lines) < e.opt.LinesPerPage {
		line, term, err := e.readLine()
		if err != nil {
			return nil, 0, err
		}
		if line == nil {
			return lines, EndInput, nil
		}
		lines = append(lines, *line)

		switch term {
		case termFormFeed:
			if len(lines) == e.opt.LinesPerPage {
				// The line budget takes precedence, so that one more
				// form feed directly after this line is skipped.
				return lines, EndLines, nil
			}
			return lines, EndFormFeed, nil
		case termEOF:
			return lines, EndInput, nil
		}
	}
	return lines, EndLines, nil
}

type terminator int

const (
	termNewline terminator = iota
	termFormFeed
	termWrap
	termEOF
)

// readLine reads the next line of input.  If the input is exhausted before
// any byte is read, the returned line is nil.
func (e *Engine) readLine() (*Line, terminator, error) {
	line := &Line{Segments: [][]byte{nil}}
	seg := 0

	wrap := e.opt.CharsPerLine
	if e.opt.TruncateAt > 0 && wrap >= e.opt.TruncateAt {
		wrap = 0
	}
	trunc := e.opt.TruncateAt
	tab := e.opt.TabWidth

	col := 0
	consumed := false
	crPending := false
	for {
		if wrap > 0 && col >= wrap {
			return line, termWrap, nil
		}

		c, err := e.r.ReadByte()
		if err == io.EOF {
			if !consumed {
				return nil, termEOF, nil
			}
			return line, termEOF, nil
		} else if err != nil {
			return nil, 0, err
		}
		consumed = true

		switch {
		case c == '\n':
			return line, termNewline, nil
		case c == '\f' && e.opt.FormFeed:
			return line, termFormFeed, nil
		case c == '\f':
			continue
		case c == '\r':
			crPending = true
			col = 0
			continue
		}

		if crPending {
			line.Segments = append(line.Segments, nil)
			seg++
			crPending = false
		}
		if trunc > 0 && col >= trunc {
			continue
		}

		buf := line.Segments[seg]
		switch {
		case c == '\t':
			pad := tab - col%tab
			if trunc > 0 && col+pad > trunc {
				pad = trunc - col
			}
			for i := 0; i < pad; i++ {
				buf = append(buf, ' ')
			}
			col += pad
		case c == '(' || c == ')' || c == '\\':
			buf = append(buf, '\\', c)
			col++
		case c >= 32 && c < 127:
			buf = append(buf, c)
			col++
		case e.opt.StrictEscapes:
			buf = append(buf, '\\', '0'+c>>6, '0'+(c>>3)&7, '0'+c&7)
			col++
		default:
			buf = append(buf, '\\', c)
			col++
		}
		line.Segments[seg] = buf
	}
}

// more reports whether any input is left.  If skipFormFeed is set,
// a single form feed at the current position is consumed first.
func (e *Engine) more(skipFormFeed bool) (bool, error) {
	b, err := e.r.Peek(1)
	if err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if !skipFormFeed || b[0] != '\f' {
		return true, nil
	}

	_, err = e.r.Discard(1)
	if err != nil {
		return false, err
	}
	_, err = e.r.Peek(1)
	if err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
