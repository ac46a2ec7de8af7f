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

// Package ornament draws page backgrounds which imitate continuous
// line printer paper.
package ornament

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/text2pdf/graphics"
)

// None is a page decorator which draws nothing.
type None struct{}

// Decorate implements the document.Decorator interface.
func (None) Decorate(*graphics.Writer, rect.Rect) {}

// Greenbar draws the background of "green bar" listing paper: pale green
// horizontal bars, a small "HCCC" mark, and tractor feed holes along both
// margins.  The pattern uses a fixed 9pt grid and does not depend on the
// line spacing of the text.
type Greenbar struct{}

const (
	gridStep   = 9.0
	firstLine  = 4*gridStep - (gridStep/4 - 1) // 34.75
	barHeight  = 3                             // bars are three grid lines high
	barMargin  = 30.0
	holeMargin = 15.0
	holeRadius = 1.0

	// bezierTangent is the relative length of the tangents for
	// approximating a quarter ellipse by a cubic Bezier curve.
	bezierTangent = 0.551784
)

// Decorate implements the document.Decorator interface.
func (Greenbar) Decorate(w *graphics.Writer, box rect.Rect) {
	w.PushGraphicsState()

	// bars
	w.SetLineWidth(barHeight * gridStep)
	w.SetStrokeRGB(0.8, 1, 0.8)
	y := box.LLy + firstLine
	for i := barHeight; i <= 60; i++ {
		if i%(2*barHeight) == 0 {
			w.MoveTo(box.LLx+barMargin, y)
			w.LineTo(box.URx-barMargin, y)
			w.Stroke()
		}
		y += gridStep
	}

	y += (barHeight - 1) * gridStep
	drawMark(w, box.LLx+barMargin, y)

	// tractor feed holes
	w.SetLineWidth(gridStep)
	w.SetStrokeRGB(0.3, 0.3, 0.3)
	y = box.LLy + firstLine
	for i := 0; i <= 61; i++ {
		if i%4 == 0 {
			ellipse(w, vec.Vec2{X: box.LLx + holeMargin, Y: y}, holeRadius, holeRadius)
			ellipse(w, vec.Vec2{X: box.URx - holeMargin, Y: y}, holeRadius, holeRadius)
		}
		y += gridStep
	}

	w.PopGraphicsState()
}

// drawMark draws the letters "HCCC" using straight strokes, with the lower
// left corner at (x, y).
func drawMark(w *graphics.Writer, x, y float64) {
	const (
		height  = 27.0
		width   = 18.0
		advance = 26.0
	)

	w.SetLineWidth(3)
	line := func(x0, y0, x1, y1 float64) {
		w.MoveTo(x0, y0)
		w.LineTo(x1, y1)
		w.Stroke()
	}

	line(x, y, x, y+height)
	line(x, y+13, x+width, y+13)
	line(x+width, y, x+width, y+height)
	for range 3 {
		x += advance
		line(x, y, x, y+height)
		line(x, y+1, x+width, y+1)
		line(x, y+height-1, x+width, y+height-1)
	}
}

// ellipse strokes an axis-aligned ellipse, using four cubic Bezier curves.
func ellipse(w *graphics.Writer, c vec.Vec2, rx, ry float64) {
	tx := rx * bezierTangent
	ty := ry * bezierTangent
	at := func(dx, dy float64) vec.Vec2 {
		return c.Add(vec.Vec2{X: dx, Y: dy})
	}

	start := at(-rx, 0)
	w.MoveTo(start.X, start.Y)
	quarters := [4][3]vec.Vec2{
		{at(-rx, ty), at(-tx, ry), at(0, ry)},
		{at(tx, ry), at(rx, ty), at(rx, 0)},
		{at(rx, -ty), at(tx, -ry), at(0, -ry)},
		{at(-tx, -ry), at(-rx, -ty), at(-rx, 0)},
	}
	for _, q := range quarters {
		w.CurveTo(q[0].X, q[0].Y, q[1].X, q[1].Y, q[2].X, q[2].Y)
	}
	w.CloseAndStroke()
}
