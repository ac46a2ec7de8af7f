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

// Package graphics writes PDF content streams.
//
// The [Writer] emits one operator per line.  Errors are sticky: once an
// operation fails, or an operator is used in the wrong context, the error
// is stored in [Writer.Err] and all later operations do nothing.
package graphics

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content io.Writer
	Err     error

	currentObject objectType
	nesting       []pairType

	startX, startY     float64 // start of the current subpath
	currentX, currentY float64 // current point

	// Set records which text state parameters have been set
	// in the current text object.
	Set StateBits
}

// StateBits is a bit mask for the parameters which must be set before
// text can be shown.
type StateBits uint8

// The text state parameters tracked by the Writer.
const (
	StateTextFont StateBits = 1 << iota
	StateTextLeading
)

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		currentObject: objPage,
	}
}

// Close checks that all q/Q and BT/ET pairs are balanced.
// The underlying io.Writer is not closed.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if len(w.nesting) > 0 {
		return fmt.Errorf("%d unclosed graphics operator pair(s)", len(w.nesting))
	}
	if w.currentObject != objPage {
		return fmt.Errorf("content stream ends in %s object", w.currentObject)
	}
	return nil
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) mustBeSet(cmd string, bits StateBits) bool {
	if w.Set&bits == bits {
		return true
	}
	w.Err = fmt.Errorf("%s: text state not set (missing 0x%02x)", cmd, bits&^w.Set)
	return false
}

func (w *Writer) coord(x float64) string {
	return format(math.Round(x*1e6) / 1e6)
}

// See Figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}

func format(x float64) string {
	if x == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
